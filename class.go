package ktlex

import "github.com/ktlex/ktlex/lexer"

// scanClass recognizes the `class` keyword. The token is the keyword
// alone; the rest of the header is then scanned raw, without consuming it
// into the token, only to record whether the signature reaches a
// terminator before any line break. Both state flags are written
// unconditionally for the next automatic semicolon decision.
func (s *Scanner) scanClass(cur lexer.Cursor) bool {
	if !scanWhitespaceAndComments(cur) {
		return false
	}
	for _, r := range "class" {
		if cur.Lookahead() != r {
			return false
		}
		cur.Advance()
	}
	if isWordChar(cur.Lookahead()) {
		return false
	}
	cur.MarkEnd()

	sigEnded := false
scan:
	for {
		if cur.EOF() {
			sigEnded = true
			break
		}
		switch cur.Lookahead() {
		case ';', '{':
			sigEnded = true
			break scan
		case '\n', '\r':
			break scan
		default:
			cur.Skip()
		}
	}

	s.state.IsClassDecl = true
	s.state.ClassSigEnded = sigEnded
	return true
}

// scanPrimaryConstructor recognizes the `constructor` keyword on the same
// line as its class header. The cross-newline case is handled inside the
// automatic semicolon recognizer instead.
func scanPrimaryConstructor(cur lexer.Cursor) bool {
	for isSpace(cur.Lookahead()) {
		cur.Skip()
	}
	if cur.Lookahead() != 'c' {
		return false
	}
	for _, r := range "constructor" {
		if cur.Lookahead() != r {
			return false
		}
		cur.Advance()
	}
	if isWordChar(cur.Lookahead()) {
		return false
	}
	cur.MarkEnd()
	return true
}
