package ktlex

// SerializedStateSize is the exact length in bytes of a serialized scanner
// state.
const SerializedStateSize = 2

// State is the cross-call scanner state shared between the class header
// recognizer, which writes it, and the automatic semicolon recognizer,
// which consumes it.
type State struct {
	// IsClassDecl is set when the most recently recognized token was the
	// `class` keyword. It means a class header was just opened and not yet
	// followed by any other recognized token.
	IsClassDecl bool
	// ClassSigEnded records whether that class header reached `;`, `{` or
	// end of input before any line break. Only meaningful while
	// IsClassDecl is set.
	ClassSigEnded bool
}

// consume returns both flags and unconditionally clears them. The automatic
// semicolon recognizer reads the state at most once after it is set,
// whether or not the attempt succeeds.
func (s *State) consume() (isClassDecl, sigEnded bool) {
	isClassDecl, sigEnded = s.IsClassDecl, s.ClassSigEnded
	s.IsClassDecl = false
	s.ClassSigEnded = false
	return isClassDecl, sigEnded
}

// Serialize writes the state into buf and returns the number of bytes
// written: SerializedStateSize, or 0 when buf is too small.
func (s *Scanner) Serialize(buf []byte) int {
	if len(buf) < SerializedStateSize {
		return 0
	}
	buf[0] = boolByte(s.state.IsClassDecl)
	buf[1] = boolByte(s.state.ClassSigEnded)
	return SerializedStateSize
}

// Deserialize restores state previously written by Serialize. Anything
// other than exactly SerializedStateSize bytes resets both flags: unknown
// or corrupt state means no pending class header.
func (s *Scanner) Deserialize(buf []byte) {
	if len(buf) != SerializedStateSize {
		s.state = State{}
		return
	}
	s.state = State{
		IsClassDecl:   buf[0] != 0,
		ClassSigEnded: buf[1] != 0,
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
