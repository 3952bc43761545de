// Package editable implements live value editables: widgets bound to a range
// of source text that rewrite that text as the user drags them.
//
// Number is the numeric-literal editable. Registry keeps the live editables of
// a buffer, indexed by line, and shifts their anchors when a sibling on the
// same line changes length.
package editable
