package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/livecode/editor"
)

var statusStyle = lipgloss.NewStyle().Faint(true)

// fileChangedMsg carries new file contents read by the watcher.
type fileChangedMsg struct {
	text string
}

// savedMsg reports the outcome of a ctrl+s write.
type savedMsg struct {
	err error
}

type app struct {
	editor editor.Model
	path   string
	status string
	log    zerolog.Logger
	width  int
}

func newApp(path string, cfg editor.Config, log zerolog.Logger) app {
	a := app{
		editor: editor.New(cfg),
		path:   path,
		log:    log,
	}
	a.status = a.modeStatus()
	return a
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return a, tea.Quit
		case "ctrl+s":
			return a, saveCmd(a.path, a.editor.Text())
		}
	case editor.TapMsg:
		a.status = fmt.Sprintf("drag %s sideways to change it", msg.Text)
		return a, nil
	case editor.EditablesToggledMsg:
		a.status = a.modeStatus()
		return a, nil
	case fileChangedMsg:
		a.editor = a.editor.SetText(msg.text)
		a.status = "reloaded " + a.path
		return a, nil
	case savedMsg:
		if msg.err != nil {
			a.log.Error().Err(msg.err).Str("file", a.path).Msg("save")
			a.status = "save failed: " + msg.err.Error()
		} else {
			a.status = "saved " + a.path
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	status := statusStyle.MaxWidth(maxInt(a.width, 1)).Render(a.status)
	return a.editor.View() + "\n" + status
}

func (a app) modeStatus() string {
	if a.editor.Session().EditablesEnabled() {
		return "live numbers on (ctrl+t to toggle, ctrl+s to save)"
	}
	return "live numbers off (ctrl+t to toggle, ctrl+s to save)"
}

func saveCmd(path, text string) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: os.WriteFile(path, []byte(text), 0o644)}
	}
}

func editorHeight(total int) int {
	h := total - 1
	if h < 0 {
		return 0
	}
	return h
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
