package ktlex

import "fmt"

// Kind identifies an externally scanned token.
type Kind int

const (
	// AutomaticSemicolon is an implicit statement terminator synthesized
	// from context rather than spelled in the source.
	AutomaticSemicolon Kind = iota
	// ImportListDelimiter marks the end of a contiguous run of import
	// statements.
	ImportListDelimiter
	// SafeNav is the `?.` operator, whose two characters may be separated
	// by whitespace and comments.
	SafeNav
	// Class is the `class` keyword opening a class header.
	Class
	// MultilineComment is a `/* */` comment, possibly nested.
	MultilineComment
	// ImportDot is a `.` inside an import path.
	ImportDot
	// PrimaryConstructor is the `constructor` keyword of a primary
	// constructor on the same line as its class header.
	PrimaryConstructor

	numKinds
)

var kindNames = [...]string{
	AutomaticSemicolon:  "automatic-semicolon",
	ImportListDelimiter: "import-list-delimiter",
	SafeNav:             "safe-nav",
	Class:               "class",
	MultilineComment:    "multiline-comment",
	ImportDot:           "import-dot",
	PrimaryConstructor:  "primary-constructor",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindNames returns the names of all token kinds, in kind order.
func KindNames() []string {
	names := make([]string, numKinds)
	copy(names, kindNames[:])
	return names
}

// ParseKind returns the Kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown token kind %q", name)
}

// Valid is the set of token kinds the grammar considers applicable at the
// current parse position.
type Valid [numKinds]bool

// ValidFor builds a Valid set containing the given kinds.
func ValidFor(kinds ...Kind) Valid {
	var v Valid
	for _, k := range kinds {
		v[k] = true
	}
	return v
}
