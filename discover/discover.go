// Package discover finds numeric literal tokens in source text.
//
// A Discoverer plays the part of the host's syntax walk: it reports the ranges
// of number tokens, and the editable registry decides which of them parse as
// editable literals.
package discover

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iw2rmb/livecode/buffer"
)

var (
	// ErrUnknownKind is returned by New for an unrecognised discoverer kind.
	ErrUnknownKind = errors.New("unknown discoverer kind")

	// ErrUnsupportedLanguage is returned when no grammar or lexer exists for a language.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Kinds accepted by New.
const (
	KindTreeSitter = "treesitter"
	KindChroma     = "chroma"
)

// Discoverer reports the ranges of numeric literal tokens in a buffer, in
// document order. Ranges never span lines.
type Discoverer interface {
	Literals(ctx context.Context, buf *buffer.Buffer) ([]buffer.Range, error)
}

// Func adapts a plain function to Discoverer.
type Func func(ctx context.Context, buf *buffer.Buffer) ([]buffer.Range, error)

func (f Func) Literals(ctx context.Context, buf *buffer.Buffer) ([]buffer.Range, error) {
	return f(ctx, buf)
}

// New returns the discoverer of the given kind for language.
func New(kind, language string) (Discoverer, error) {
	switch strings.ToLower(kind) {
	case KindTreeSitter:
		return NewTreeSitter(language)
	case KindChroma:
		return NewChroma(language)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// DetectLanguage returns the language name for a file path, based on its
// extension, or "javascript" when nothing matches.
func DetectLanguage(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".ts":
		return "typescript"
	case ".c", ".h":
		return "c"
	case ".rs":
		return "rust"
	case ".lua":
		return "lua"
	default:
		return "javascript"
	}
}
