package lexer

// EOF is returned by Lookahead at end of input.
const EOF rune = -1

// A Cursor is a lookahead stream of characters positioned inside source
// text being tokenized.
//
// Skip and Advance both consume one character. Advance includes the
// character in the token under construction; Skip excludes it, for
// characters a recognizer must look past (whitespace, comments, characters
// consumed only to decide). MarkEnd commits the current position as the
// definite end of the token; characters consumed after the last MarkEnd are
// lookahead only and are handed back to the host for re-lexing.
type Cursor interface {
	// Lookahead returns the current character, or EOF at end of input.
	Lookahead() rune
	// Skip consumes the current character without adding it to the token.
	Skip()
	// Advance consumes the current character as part of the token.
	Advance()
	// MarkEnd marks the current position as the end of the token.
	MarkEnd()
	// EOF reports whether the cursor is at end of input.
	EOF() bool
}
