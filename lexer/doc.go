// Package lexer defines the character cursor recognizers read lookahead
// from, and a string-backed implementation of it.
//
// The primary interface is Cursor. Hosts that stream source text from an
// incremental parse tree provide their own implementation; StringCursor
// serves hosts and tests that keep source in memory.
package lexer
