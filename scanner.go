package ktlex

import "github.com/ktlex/ktlex/lexer"

// Scanner recognizes the token kinds the grammar delegates to hand-written
// code. A Scanner is owned by exactly one parser instance; recognizers
// never block and perform no I/O, but the owner must not run two scans
// against the same Scanner concurrently.
type Scanner struct {
	state State
}

// New returns a Scanner with both state flags cleared.
func New() *Scanner {
	return &Scanner{}
}

// Reset clears the scanner state.
func (s *Scanner) Reset() {
	s.state = State{}
}

// State returns a copy of the current cross-call state.
func (s *Scanner) State() State {
	return s.state
}

// Scan makes exactly one recognition attempt, plus the documented safe
// navigation fallback, against the kinds in valid. It reports the
// recognized kind, or false when no delegated kind applies and the
// grammar's alternative productions take over. A false result never
// corrupts scanner state; the host backtracks the cursor.
func (s *Scanner) Scan(cur lexer.Cursor, valid Valid) (Kind, bool) {
	if valid[AutomaticSemicolon] {
		if s.scanAutomaticSemicolon(cur) {
			return AutomaticSemicolon, true
		}
		// Both an automatic semicolon and safe navigation can begin at a
		// `?`, in different grammatical positions.
		if valid[SafeNav] && cur.Lookahead() == '?' && scanSafeNav(cur) {
			return SafeNav, true
		}
		// A declined semicolon attempt is final for the delegated kinds;
		// only the auxiliary tokens may still match here.
		if kind, ok := scanAuxiliary(cur, valid); ok {
			return kind, true
		}
		if valid[MultilineComment] && scanMultilineComment(cur) {
			return MultilineComment, true
		}
		return 0, false
	}

	if valid[SafeNav] {
		if scanSafeNav(cur) {
			return SafeNav, true
		}
		return 0, false
	}

	if kind, ok := scanAuxiliary(cur, valid); ok {
		return kind, true
	}

	if valid[ImportListDelimiter] {
		if scanImportListDelimiter(cur) {
			return ImportListDelimiter, true
		}
		return 0, false
	}

	if valid[MultilineComment] {
		for isSpace(cur.Lookahead()) {
			cur.Skip()
		}
		if scanMultilineComment(cur) {
			return MultilineComment, true
		}
	}

	if valid[Class] && s.scanClass(cur) {
		return Class, true
	}

	return 0, false
}

// scanAuxiliary tries the stateless import path and primary constructor
// tokens restored from the original scanner.
func scanAuxiliary(cur lexer.Cursor, valid Valid) (Kind, bool) {
	if valid[ImportDot] {
		if kind, ok := scanImportDot(cur); ok {
			return kind, true
		}
	}
	if valid[PrimaryConstructor] && scanPrimaryConstructor(cur) {
		return PrimaryConstructor, true
	}
	return 0, false
}
