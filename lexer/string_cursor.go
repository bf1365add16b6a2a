package lexer

import (
	"fmt"
	"unicode/utf8"
)

// Position of a character within the input.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		filename = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// StringCursor is a Cursor over in-memory source text.
//
// The token under construction starts at the position of the first Advance;
// skips before that move the pending start past the skipped characters,
// while skips after it are lookahead only. If a recognizer marks an end and
// then consumes nothing, the token is zero width at the marked position.
type StringCursor struct {
	source  string
	pos     Position
	start   Position
	end     Position
	started bool
}

// NewStringCursor returns a cursor over source. The filename is only used
// in positions.
func NewStringCursor(filename, source string) *StringCursor {
	pos := Position{Filename: filename, Line: 1, Column: 1}
	return &StringCursor{source: source, pos: pos, start: pos, end: pos}
}

// NewBytesCursor returns a cursor over a byte slice.
func NewBytesCursor(filename string, source []byte) *StringCursor {
	return NewStringCursor(filename, string(source))
}

// Lookahead returns the current character, or EOF at end of input.
func (c *StringCursor) Lookahead() rune {
	if c.pos.Offset >= len(c.source) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.pos.Offset:])
	return r
}

// EOF reports whether the cursor is at end of input.
func (c *StringCursor) EOF() bool {
	return c.pos.Offset >= len(c.source)
}

// Skip consumes the current character without adding it to the token.
func (c *StringCursor) Skip() {
	if c.EOF() {
		return
	}
	c.move()
	if !c.started {
		c.start = c.pos
	}
}

// Advance consumes the current character as part of the token.
func (c *StringCursor) Advance() {
	if c.EOF() {
		return
	}
	c.move()
	c.started = true
}

// MarkEnd marks the current position as the end of the token.
func (c *StringCursor) MarkEnd() {
	c.end = c.pos
}

// Pos returns the position of the current lookahead character.
func (c *StringCursor) Pos() Position {
	return c.pos
}

// Token returns the text between the token start and the last marked end,
// or the empty string for a zero width token.
func (c *StringCursor) Token() string {
	start, end := c.TokenPos()
	return c.source[start.Offset:end.Offset]
}

// TokenPos returns the start position and last marked end position of the
// recognized token. A start that only skipped past the marked end collapses
// to the mark, so an inserted token is zero width at the marked position.
func (c *StringCursor) TokenPos() (start, end Position) {
	start, end = c.start, c.end
	if start.Offset > end.Offset {
		start = end
	}
	return start, end
}

func (c *StringCursor) move() {
	r, size := utf8.DecodeRuneInString(c.source[c.pos.Offset:])
	c.pos.Offset += size
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
}
