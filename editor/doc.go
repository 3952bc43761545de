// Package editor provides a Bubble Tea editor component backed by a
// session.Session.
//
// The component turns keystrokes into whole-text input for the session,
// decodes mouse drags on numeric literals into session drag gestures and
// renders the text with a line-number gutter, syntax highlighting and
// underlined literal markings.
package editor
