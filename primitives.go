package ktlex

import (
	"unicode"

	"github.com/ktlex/ktlex/lexer"
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// isWordChar reports whether r can continue an identifier.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanWord skips the current character, already known to match the first
// letter of a keyword, then skip-matches the given continuation. The
// keyword must end at a non-identifier character, so a longer identifier
// that merely starts with it does not match.
func scanWord(cur lexer.Cursor, word string) bool {
	cur.Skip()
	for _, r := range word {
		if cur.Lookahead() != r {
			return false
		}
		cur.Skip()
	}
	return !isWordChar(cur.Lookahead())
}

// scanWhitespaceAndComments skips runs of whitespace, `//` line comments
// and `/* */` block comments. It reports false on a `/` that starts
// neither comment form; the slash is not an error, the caller reinterprets
// it. An unterminated block comment runs to end of input.
func scanWhitespaceAndComments(cur lexer.Cursor) bool {
	for {
		for isSpace(cur.Lookahead()) {
			cur.Skip()
		}
		if cur.Lookahead() != '/' {
			return true
		}
		cur.Skip()
		switch cur.Lookahead() {
		case '/':
			cur.Skip()
			for !cur.EOF() && cur.Lookahead() != '\n' {
				cur.Skip()
			}
		case '*':
			cur.Skip()
			for {
				if cur.EOF() {
					return true
				}
				if cur.Lookahead() == '*' {
					cur.Skip()
					if cur.Lookahead() == '/' {
						cur.Skip()
						break
					}
					continue
				}
				cur.Skip()
			}
		default:
			return false
		}
	}
}
