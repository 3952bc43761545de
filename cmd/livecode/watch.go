package main

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// fileWatcher reports content changes of a single file. It watches the
// parent directory so editors that replace the file on save are still seen.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	log     zerolog.Logger
}

func newFileWatcher(path string, log zerolog.Logger) (*fileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &fileWatcher{
		watcher: fsw,
		path:    absPath,
		log:     log.With().Str("component", "watcher").Logger(),
	}, nil
}

// Run forwards a fileChangedMsg to send for every write or re-create of the
// watched file until ctx is done or the watcher is closed.
func (w *fileWatcher) Run(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if msg, ok := w.handle(ev); ok {
				send(msg)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch")
		}
	}
}

func (w *fileWatcher) handle(ev fsnotify.Event) (tea.Msg, bool) {
	if filepath.Clean(ev.Name) != w.path {
		return nil, false
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return nil, false
	}
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.log.Warn().Err(err).Str("file", w.path).Msg("reload")
		return nil, false
	}
	w.log.Debug().Str("op", ev.Op.String()).Int("bytes", len(data)).Msg("file changed")
	return fileChangedMsg{text: string(data)}, true
}

func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}
