package discover

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/iw2rmb/livecode/buffer"
)

// TreeSitter walks a tree-sitter syntax tree and reports number nodes.
type TreeSitter struct {
	lang        *sitter.Language
	numberTypes map[string]bool
}

// NewTreeSitter returns a TreeSitter discoverer for "javascript" or "go".
func NewTreeSitter(language string) (*TreeSitter, error) {
	switch strings.ToLower(language) {
	case "javascript", "js":
		return &TreeSitter{
			lang:        javascript.GetLanguage(),
			numberTypes: map[string]bool{"number": true},
		}, nil
	case "go", "golang":
		return &TreeSitter{
			lang:        golang.GetLanguage(),
			numberTypes: map[string]bool{"int_literal": true, "float_literal": true},
		}, nil
	default:
		return nil, fmt.Errorf("%w: tree-sitter has no grammar for %q", ErrUnsupportedLanguage, language)
	}
}

func (d *TreeSitter) Literals(ctx context.Context, buf *buffer.Buffer) ([]buffer.Range, error) {
	src := []byte(buf.Text())

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(d.lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	var out []buffer.Range
	d.walk(tree.RootNode(), func(start, end uint32) {
		r, ok := byteRange(buf, int(start), int(end))
		if ok {
			out = append(out, r)
		}
	})
	return out, nil
}

func (d *TreeSitter) walk(node *sitter.Node, emit func(start, end uint32)) {
	if node == nil {
		return
	}
	if d.numberTypes[node.Type()] {
		emit(signedStart(node), node.EndByte())
		return
	}
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		d.walk(node.Child(i), emit)
	}
}

// signedStart extends a number by a directly preceding unary minus, so "-5"
// is edited as one literal.
func signedStart(node *sitter.Node) uint32 {
	parent := node.Parent()
	if parent == nil || parent.Type() != "unary_expression" {
		return node.StartByte()
	}
	op := parent.ChildByFieldName("operator")
	if op == nil || op.Type() != "-" || op.EndByte() != node.StartByte() {
		return node.StartByte()
	}
	return op.StartByte()
}

func byteRange(buf *buffer.Buffer, start, end int) (buffer.Range, bool) {
	policy := buffer.ConvertPolicy{ClampMode: buffer.OffsetError}
	s, ok := buf.PosFromByteOffset(start, policy)
	if !ok {
		return buffer.Range{}, false
	}
	e, ok := buf.PosFromByteOffset(end, policy)
	if !ok || s.Line != e.Line {
		return buffer.Range{}, false
	}
	return buffer.Range{Start: s, End: e}, true
}
