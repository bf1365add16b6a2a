package ktlex

import (
	"unicode"

	"github.com/ktlex/ktlex/lexer"
)

// scanAutomaticSemicolon decides whether an implicit statement terminator
// must be synthesized at the current position. The class header flags are
// consumed up front, on every attempt, whether or not one is inserted.
func (s *Scanner) scanAutomaticSemicolon(cur lexer.Cursor) bool {
	isClassDecl, sigEnded := s.state.consume()
	shouldScanConstructor := isClassDecl && !sigEnded

	cur.MarkEnd()

	// Scan the rest of the current line: an explicit `;` satisfies the
	// request, end of input always inserts, and the first line break or
	// non-whitespace character ends the scan.
	sameline := true
	for {
		if cur.EOF() {
			return true
		}
		la := cur.Lookahead()
		if la == ';' {
			cur.Advance()
			cur.MarkEnd()
			return true
		}
		if !isSpace(la) {
			break
		}
		if la == '\n' {
			cur.Skip()
			sameline = false
			break
		}
		if la == '\r' {
			cur.Skip()
			if cur.Lookahead() == '\n' {
				cur.Skip()
			}
			sameline = false
			break
		}
		cur.Skip()
	}

	if !scanWhitespaceAndComments(cur) {
		return false
	}

	if sameline {
		switch cur.Lookahead() {
		// An import statement always requires a terminator, even mid-line,
		// but no other word starting with `i` does.
		case 'i':
			return scanWord(cur, "mport")
		case ';':
			cur.Advance()
			cur.MarkEnd()
			return true
		default:
			return false
		}
	}

	switch cur.Lookahead() {
	case ',', '.', ':', '*', '%', '>', '<', '=', '{', '[', '(', '?', '|', '&', '/':
		// The next token continues the previous statement.
		return false

	case '+', '-':
		// `++`, `--` and signed numeric literals begin a new statement; a
		// lone sign is a binary operator continuing the previous line.
		sign := cur.Lookahead()
		cur.Skip()
		next := cur.Lookahead()
		return next == sign || unicode.IsDigit(next)

	case '!':
		// `!=` continues the previous expression, a unary `!` does not.
		cur.Skip()
		return cur.Lookahead() != '='

	case 'c':
		cur.Skip()
		switch cur.Lookahead() {
		case 'a':
			// A `catch` clause continues the try block.
			return !scanWord(cur, "tch")
		case 'o':
			if scanWord(cur, "nstructor") && shouldScanConstructor {
				return false
			}
			return true
		default:
			return true
		}

	case 'f':
		return !scanWord(cur, "inally")

	case 'e':
		return !scanWord(cur, "lse")

	case 'i':
		cur.Skip()
		if cur.Lookahead() != 'n' {
			return true
		}
		cur.Skip()
		if !unicode.IsLetter(cur.Lookahead()) {
			// A bare `in` operator continues the previous statement.
			return false
		}
		if cur.Lookahead() == 't' && scanWord(cur, "ernal") {
			// `internal` may be the first modifier of a primary
			// constructor following an open class header.
			return !(shouldScanConstructor && scanConstructorAhead(cur))
		}
		return false

	case 'p', '@':
		return !(shouldScanConstructor && scanConstructorAhead(cur))

	case ';':
		cur.Advance()
		cur.MarkEnd()
		return true

	default:
		return true
	}
}

// scanConstructorAhead looks past visibility modifiers and annotations,
// each separated by whitespace or comments, for a `constructor` keyword.
// Only skips are used, so a failed probe never moves a token boundary.
func scanConstructorAhead(cur lexer.Cursor) bool {
	for {
		if !scanWhitespaceAndComments(cur) {
			return false
		}
		switch cur.Lookahead() {
		case 'c':
			return scanWord(cur, "onstructor")
		case 'i':
			if !scanWord(cur, "nternal") {
				return false
			}
		case 'p':
			cur.Skip()
			switch cur.Lookahead() {
			case 'u':
				if !scanWord(cur, "blic") {
					return false
				}
			case 'r':
				cur.Skip()
				switch cur.Lookahead() {
				case 'i':
					if !scanWord(cur, "vate") {
						return false
					}
				case 'o':
					if !scanWord(cur, "tected") {
						return false
					}
				default:
					return false
				}
			default:
				return false
			}
		case '@':
			cur.Skip()
			if !unicode.IsLetter(cur.Lookahead()) {
				return false
			}
			for unicode.IsLetter(cur.Lookahead()) {
				cur.Skip()
			}
		default:
			return false
		}
	}
}
