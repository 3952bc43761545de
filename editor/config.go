package editor

import (
	"github.com/rs/zerolog"

	"github.com/iw2rmb/livecode/discover"
	"github.com/iw2rmb/livecode/editable"
	"github.com/iw2rmb/livecode/internal/grapheme"
	"github.com/iw2rmb/livecode/session"
)

// Config configures the editor Model.
type Config struct {
	// Initial text.
	Text string

	// Rendering options.
	ShowLineNums bool
	// TabWidth is the tab stop distance in cells. Zero means 4.
	TabWidth int
	Style    Style
	// Highlighter is optional; nil renders plain text.
	Highlighter Highlighter

	// KeyMap defaults to DefaultKeyMap when it has no bindings.
	KeyMap   KeyMap
	ReadOnly bool

	// Discoverer finds numeric literals. Editables start on when Editables
	// is set.
	Discoverer discover.Discoverer
	Editables  bool

	Logger *zerolog.Logger

	// Forwarded to session.Options.
	OnChange func(session.ChangeEvent)
	OnTap    func(id editable.ID)
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = grapheme.DefaultTabWidth
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
