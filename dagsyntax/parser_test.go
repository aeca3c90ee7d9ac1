package dagsyntax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/booldag/dag"
	"github.com/katalvlaran/booldag/dagsyntax"
)

// TestParse_NegatedGroupConjunction covers a hand-built expression
// mixing a negated parenthesized conjunction with a negated literal.
func TestParse_NegatedGroupConjunction(t *testing.T) {
	a := dag.NewArena()

	got, err := dagsyntax.Parse(a, "([0][1]')'([2]')")
	require.NoError(t, err)

	want := dag.Conjoin(a,
		dag.Invert(a, dag.Conjoin(a, dag.Literal(a, 0, true), dag.Literal(a, 1, false))),
		dag.Literal(a, 2, false),
	)

	require.Equal(t, want, got)
}

func TestParse_EmptyStringIsOne(t *testing.T) {
	a := dag.NewArena()

	got, err := dagsyntax.Parse(a, "")
	require.NoError(t, err)
	require.Equal(t, dag.One, got)
}

func TestParse_RejectsUnrecognizedByte(t *testing.T) {
	a := dag.NewArena()

	_, err := dagsyntax.Parse(a, "[0] [1]")
	require.Error(t, err)

	var parseErr *dagsyntax.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 3, parseErr.Offset)
}

func TestParse_PermissiveWhitespaceOption(t *testing.T) {
	a := dag.NewArena()

	got, err := dagsyntax.Parse(a, "[0] [1]", dagsyntax.WithPermissiveWhitespace())
	require.NoError(t, err)

	want := dag.Conjoin(a, dag.Literal(a, 0, true), dag.Literal(a, 1, true))
	require.Equal(t, want, got)
}

func TestParse_UnclosedBracket(t *testing.T) {
	a := dag.NewArena()

	_, err := dagsyntax.Parse(a, "[0")
	require.ErrorIs(t, err, dagsyntax.ErrSyntax)
}

func TestParse_UnclosedParen(t *testing.T) {
	a := dag.NewArena()

	_, err := dagsyntax.Parse(a, "([0]")
	require.ErrorIs(t, err, dagsyntax.ErrSyntax)
}

func TestParse_TrailingCloseParen(t *testing.T) {
	a := dag.NewArena()

	_, err := dagsyntax.Parse(a, "[0])")
	require.ErrorIs(t, err, dagsyntax.ErrSyntax)
}
