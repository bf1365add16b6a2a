package ktlex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ktlex/ktlex"
	"github.com/ktlex/ktlex/lexer"
)

// scanASI queries a fresh scanner for an automatic semicolon; input is the
// source text following the position where the grammar asks.
func scanASI(t *testing.T, input string) bool {
	t.Helper()
	cur := lexer.NewStringCursor("", input)
	kind, ok := ktlex.New().Scan(cur, ktlex.ValidFor(ktlex.AutomaticSemicolon))
	if ok {
		require.Equal(t, ktlex.AutomaticSemicolon, kind)
	}
	return ok
}

func TestAutomaticSemicolonSameLine(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		insert bool
	}{
		{"EOF", "", true},
		{"EOFAfterSpaces", "   ", true},
		{"ExplicitSemicolon", ";", true},
		{"SemicolonAfterSpaces", "  ; x", true},
		{"Identifier", " b", false},
		{"Import", " import foo.bar", true},
		{"ImportLookalike", " impostor", false},
		{"Else", " else y", false},
		{"SemicolonAfterComment", " /* c */ ;", true},
		{"StraySlash", " / 2", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.insert, scanASI(t, test.input))
		})
	}
}

func TestAutomaticSemicolonAfterLineBreak(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		insert bool
	}{
		{"Identifier", "\nb", true},
		{"CRLF", "\r\nb", true},
		{"CR", "\rb", true},
		{"Comma", "\n, y", false},
		{"Dot", "\n.foo()", false},
		{"OpenBrace", "\n{ }", false},
		{"OpenParen", "\n(x)", false},
		{"Question", "\n?: y", false},
		{"Ampersand", "\n&& y", false},
		{"BinaryPlus", "\n+ b", false},
		{"SignedLiteral", "\n+1", true},
		{"PrefixIncrement", "\n++b", true},
		{"BinaryMinus", "\n- x", false},
		{"NegativeLiteral", "\n-2", true},
		{"PrefixDecrement", "\n--x", true},
		{"UnaryNot", "\n!x", true},
		{"NotEquals", "\n!= y", false},
		{"Catch", "\ncatch (e: E) {}", false},
		{"CatchLookalike", "\ncoffee", true},
		{"CatchPrefix", "\ncatches", true},
		{"Finally", "\nfinally {}", false},
		{"FinallyLookalike", "\nfinal", true},
		{"Else", "\nelse x", false},
		{"ElseLookalike", "\nelsewhere", true},
		{"InOperator", "\nin x", false},
		{"Instanceof", "\ninstanceof y", false},
		{"InternalNoClassHeader", "\ninternal val x", true},
		{"Identifier_i", "\nid", true},
		{"Import", "\nimport b", true},
		{"ExplicitSemicolon", "\n;", true},
		{"CommentThenIdentifier", "\n// note\nb", true},
		{"CommentThenDot", "\n/* note */ .b", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.insert, scanASI(t, test.input))
		})
	}
}

// openClassHeader recognizes the class keyword of source on s, leaving the
// header flags set for the next automatic semicolon decision.
func openClassHeader(t *testing.T, s *ktlex.Scanner, source string) {
	t.Helper()
	cur := lexer.NewStringCursor("", source)
	kind, ok := s.Scan(cur, ktlex.ValidFor(ktlex.Class))
	require.True(t, ok)
	require.Equal(t, ktlex.Class, kind)
	require.Equal(t, "class", cur.Token())
}

func TestConstructorSuppression(t *testing.T) {
	tests := []struct {
		name   string
		header string // full class declaration source
		rest   string // source following the class header, where ASI is offered
		insert bool
	}{
		{"PublicConstructor", "class Foo\npublic constructor(x: Int)", "\npublic constructor(x: Int)", false},
		{"PrivateConstructor", "class Foo\nprivate constructor(x: Int)", "\nprivate constructor(x: Int)", false},
		{"ProtectedConstructor", "class Foo\nprotected constructor(x: Int)", "\nprotected constructor(x: Int)", false},
		{"InternalConstructor", "class Foo\ninternal constructor(x: Int)", "\ninternal constructor(x: Int)", false},
		{"BareConstructor", "class Foo\nconstructor(x: Int)", "\nconstructor(x: Int)", false},
		{"AnnotatedConstructor", "class Foo\n@Inject constructor(x: Int)", "\n@Inject constructor(x: Int)", false},
		{"StackedModifiers", "class Foo\npublic @Inject internal constructor(x: Int)", "\npublic @Inject internal constructor(x: Int)", false},
		{"HeaderAlreadyClosed", "class Foo;\npublic constructor(x: Int)", "\npublic constructor(x: Int)", true},
		{"HeaderClosedByBrace", "class Foo {\npublic constructor(x: Int)", "\npublic constructor(x: Int)", true},
		{"PublicValIsNewStatement", "class Foo\npublic val x = 1", "\npublic val x = 1", true},
		{"ConstructorCallNotKeyword", "class Foo\nconstructors()", "\nconstructors()", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := ktlex.New()
			openClassHeader(t, s, test.header)
			_, ok := s.Scan(lexer.NewStringCursor("", test.rest), ktlex.ValidFor(ktlex.AutomaticSemicolon))
			require.Equal(t, test.insert, ok)
		})
	}
}

func TestClassHeaderFlagsConsumedOnce(t *testing.T) {
	s := ktlex.New()
	openClassHeader(t, s, "class Foo\nconstructor(x: Int)")
	require.Equal(t, ktlex.State{IsClassDecl: true}, s.State())

	// The first decision consumes the flags and suppresses insertion.
	_, ok := s.Scan(lexer.NewStringCursor("", "\nconstructor(x: Int)"), ktlex.ValidFor(ktlex.AutomaticSemicolon))
	require.False(t, ok)
	require.Equal(t, ktlex.State{}, s.State())

	// An identical second query sees cleared flags and inserts.
	_, ok = s.Scan(lexer.NewStringCursor("", "\nconstructor(x: Int)"), ktlex.ValidFor(ktlex.AutomaticSemicolon))
	require.True(t, ok)
}

func TestClassHeaderFlagsClearedOnFailedAttempt(t *testing.T) {
	s := ktlex.New()
	openClassHeader(t, s, "class Foo\nconstructor(x: Int)")

	// A declined attempt still consumes the flags.
	_, ok := s.Scan(lexer.NewStringCursor("", "\n.b"), ktlex.ValidFor(ktlex.AutomaticSemicolon))
	require.False(t, ok)
	require.Equal(t, ktlex.State{}, s.State())
}

func TestAutomaticSemicolonTokenExtent(t *testing.T) {
	// Inserted terminators are zero width at the query position.
	cur := lexer.NewStringCursor("", "\nb")
	_, ok := ktlex.New().Scan(cur, ktlex.ValidFor(ktlex.AutomaticSemicolon))
	require.True(t, ok)
	start, end := cur.TokenPos()
	require.Equal(t, 0, start.Offset)
	require.Equal(t, 0, end.Offset)

	// An explicit semicolon is consumed into the token.
	cur = lexer.NewStringCursor("", " ;x")
	_, ok = ktlex.New().Scan(cur, ktlex.ValidFor(ktlex.AutomaticSemicolon))
	require.True(t, ok)
	require.Equal(t, ";", cur.Token())
}
