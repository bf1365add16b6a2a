package ktlex

import "github.com/ktlex/ktlex/lexer"

// scanSafeNav recognizes the `?.` operator. Whitespace and comments may
// separate the two characters; the token spans from the `?` through the
// `.`.
func scanSafeNav(cur lexer.Cursor) bool {
	cur.MarkEnd()
	if !scanWhitespaceAndComments(cur) {
		return false
	}
	if cur.Lookahead() != '?' {
		return false
	}
	cur.Advance()
	if !scanWhitespaceAndComments(cur) {
		return false
	}
	if cur.Lookahead() != '.' {
		return false
	}
	cur.Advance()
	cur.MarkEnd()
	return true
}
