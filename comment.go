package ktlex

import "github.com/ktlex/ktlex/lexer"

// scanMultilineComment recognizes a block comment, counting nested
// delimiters. An unterminated comment at end of input is accepted as a
// comment token rather than rejected, so a truncated source still lexes.
func scanMultilineComment(cur lexer.Cursor) bool {
	if cur.Lookahead() != '/' {
		return false
	}
	cur.Advance()
	if cur.Lookahead() != '*' {
		return false
	}
	cur.Advance()

	afterStar := false
	depth := 1
	for {
		if cur.EOF() {
			cur.MarkEnd()
			return true
		}
		switch cur.Lookahead() {
		case '*':
			cur.Advance()
			afterStar = true
		case '/':
			cur.Advance()
			if afterStar {
				afterStar = false
				depth--
				if depth == 0 {
					cur.MarkEnd()
					return true
				}
			} else if cur.Lookahead() == '*' {
				depth++
				cur.Advance()
			}
		default:
			cur.Advance()
			afterStar = false
		}
	}
}
