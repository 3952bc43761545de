package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/livecode"
	"github.com/iw2rmb/livecode/discover"
	"github.com/iw2rmb/livecode/editor"
	"github.com/iw2rmb/livecode/internal/config"
)

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	watch := flag.Bool("watch", false, "reload the file when it changes on disk")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: livecode [flags] <file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(livecode.VersionTag())
		return nil
	}
	if flag.NArg() != 1 {
		flag.Usage()
		return errors.New("exactly one file is required")
	}
	path := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	text, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	language := cfg.LanguageFor(path)
	disc, err := discover.New(cfg.Discoverer, language)
	if err != nil {
		return err
	}

	var hl editor.Highlighter
	if h, err := editor.NewChromaHighlighter(language, cfg.UI.SyntaxTheme); err != nil {
		logger.Warn().Err(err).Str("language", language).Msg("syntax highlighting disabled")
	} else {
		hl = h
	}

	logger.Info().
		Str("file", path).
		Str("language", language).
		Str("discoverer", cfg.Discoverer).
		Msg("starting")

	m := newApp(path, editor.Config{
		Text:         string(text),
		ShowLineNums: cfg.UI.ShowLineNumbers,
		TabWidth:     cfg.UI.TabWidth,
		Style:        editor.DefaultStyle(),
		Highlighter:  hl,
		Discoverer:   disc,
		Editables:    cfg.Editables.Enabled,
		Logger:       &logger,
	}, logger)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *watch {
		w, err := newFileWatcher(path, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		go w.Run(ctx, p.Send)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// newLogger writes JSON logs to the configured file. Without a file every
// event is discarded.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	if cfg.Log.File == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).Level(cfg.LogLevel()).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}
