package dag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/booldag/dag"
)

func TestIdentitiesAndAnnihilators(t *testing.T) {
	a := dag.NewArena()
	x := dag.Literal(a, 0, true)

	require.Equal(t, x, dag.Disjoin(a, x, dag.Zero))
	require.Equal(t, x, dag.Conjoin(a, x, dag.One))
	require.Equal(t, dag.One, dag.Disjoin(a, x, dag.One))
	require.Equal(t, dag.Zero, dag.Conjoin(a, x, dag.Zero))
}

func TestCommutativity(t *testing.T) {
	a := dag.NewArena()
	x := dag.Literal(a, 0, true)
	y := dag.Literal(a, 1, true)

	require.Equal(t, dag.Disjoin(a, x, y), dag.Disjoin(a, y, x))
	require.Equal(t, dag.Conjoin(a, x, y), dag.Conjoin(a, y, x))
}

func TestInvolution(t *testing.T) {
	a := dag.NewArena()
	x := dag.Disjoin(a, dag.Literal(a, 0, true), dag.Literal(a, 1, false))

	require.Equal(t, x, dag.Invert(a, dag.Invert(a, x)))
}

// TestDeMorgan_HandleEquality checks that De Morgan holds at the level
// of handle equality, not merely logical equivalence: invert(x|y) and
// invert(x)&invert(y) must intern to the identical node.
func TestDeMorgan_HandleEquality(t *testing.T) {
	a := dag.NewArena()
	l0 := dag.Literal(a, 0, true)
	l1 := dag.Literal(a, 1, true)

	lhs := dag.Invert(a, dag.Disjoin(a, l0, l1))
	rhs := dag.Conjoin(a, dag.Invert(a, l0), dag.Invert(a, l1))

	require.Equal(t, lhs, rhs)

	lhsAnd := dag.Invert(a, dag.Conjoin(a, l0, l1))
	rhsOr := dag.Disjoin(a, dag.Invert(a, l0), dag.Invert(a, l1))

	require.Equal(t, lhsAnd, rhsOr)
}

func TestComplementation(t *testing.T) {
	a := dag.NewArena()
	x := dag.Disjoin(a, dag.Literal(a, 0, true), dag.Literal(a, 1, false))

	require.Equal(t, dag.One, dag.Disjoin(a, x, dag.Invert(a, x)))
	require.Equal(t, dag.Zero, dag.Conjoin(a, x, dag.Invert(a, x)))
}

func TestIdempotence(t *testing.T) {
	a := dag.NewArena()
	x := dag.Literal(a, 0, true)

	require.Equal(t, x, dag.Disjoin(a, x, x))
	require.Equal(t, x, dag.Conjoin(a, x, x))
}

func TestDisjoinConjoin_NAryFold(t *testing.T) {
	a := dag.NewArena()
	l0 := dag.Literal(a, 0, true)
	l1 := dag.Literal(a, 1, true)
	l2 := dag.Literal(a, 2, true)

	folded := dag.Disjoin(a, l0, l1, l2)
	manual := dag.Disjoin(a, dag.Disjoin(a, l0, l1), l2)

	require.Equal(t, manual, folded)
}
