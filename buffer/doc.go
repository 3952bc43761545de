// Package buffer implements the immutable text model behind a live-code editor.
//
// Positions are (Line, Column) pairs: Line is 1-based, Column is a 0-based
// character (rune) index within the line. Offsets count characters from the
// start of the text, with each '\n' counting as one character.
//
// A Buffer is never mutated. Every edit operation returns the new full text,
// from which the caller builds the next Buffer.
package buffer
