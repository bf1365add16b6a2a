package ktlex

import "github.com/ktlex/ktlex/lexer"

// scanLineSep consumes horizontal whitespace up to and including one line
// break. LF, CR and CRLF each count as a single break; a CR followed by
// anything other than LF terminates the break without consuming the
// follower.
func scanLineSep(cur lexer.Cursor) bool {
	seenCR := false
	for {
		switch cur.Lookahead() {
		case ' ', '\t', '\v':
			cur.Advance()
		case '\n':
			cur.Advance()
			return true
		case '\r':
			if seenCR {
				return true
			}
			seenCR = true
			cur.Advance()
		default:
			return seenCR
		}
	}
}

// scanImportListDelimiter decides whether a contiguous run of import
// statements has ended: at end of input, at a blank line, or at a first
// line break followed by anything other than another `import` keyword.
func scanImportListDelimiter(cur lexer.Cursor) bool {
	cur.MarkEnd()
	if cur.EOF() {
		return true
	}
	if !scanLineSep(cur) {
		return false
	}
	// A blank line always ends the list.
	if scanLineSep(cur) {
		cur.MarkEnd()
		return true
	}
	for {
		switch cur.Lookahead() {
		case ' ', '\t', '\v':
			cur.Advance()
		case 'i':
			return !scanWord(cur, "mport")
		default:
			return true
		}
	}
}

// scanImportDot scans a `.` inside an import path. A trailing dot followed
// by a line break and another `import` produces a zero width automatic
// semicolon before the dot instead, so a malformed import cannot swallow
// the statement after it.
func scanImportDot(cur lexer.Cursor) (Kind, bool) {
	if cur.Lookahead() != '.' {
		return 0, false
	}
	cur.MarkEnd()
	cur.Advance()

	foundNewline := false
	for isSpace(cur.Lookahead()) {
		if cur.Lookahead() == '\n' || cur.Lookahead() == '\r' {
			foundNewline = true
		}
		cur.Skip()
	}
	if foundNewline && cur.Lookahead() == 'i' && scanWord(cur, "mport") {
		return AutomaticSemicolon, true
	}

	cur.MarkEnd()
	return ImportDot, true
}
