package star_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkeur/starswap/star"
)

// k=2, m=1, the two centres simply traded values: one centre-centre swap
// suffices, beta=1.
func TestDecompose_SingleCentreSwap(t *testing.T) {
	x0 := []int{2, 1, 0, 3}
	y := identity(4)
	p, err := star.NewProblem(2, 1, x0, y)
	require.NoError(t, err)

	beta, err := p.Decompose()
	require.NoError(t, err)
	assert.Equal(t, 1, beta)
}

// k=3, m=1, the misplaced values form a node-level 3-cycle (nodes 2, 5, 4)
// and a swap of nodes 0 and 3; at group level W holds two 2-cycles
// (0<->1 and 1<->2): beta=2.
func TestDecompose_ThreeCycle(t *testing.T) {
	x0 := []int{3, 1, 5, 0, 2, 4}
	y := identity(6)
	p, err := star.NewProblem(3, 1, x0, y)
	require.NoError(t, err)

	beta, err := p.Decompose()
	require.NoError(t, err)
	assert.Equal(t, 2, beta)
}

// x0 already equal to y -> beta=0 and RouteSimple needs no swaps at all.
func TestDecompose_AlreadySorted(t *testing.T) {
	x0 := identity(8)
	y := identity(8)
	p, err := star.NewProblem(2, 3, x0, y)
	require.NoError(t, err)

	beta, err := p.Decompose()
	require.NoError(t, err)
	assert.Equal(t, 0, beta)

	p.Reset()
	a, err := p.RouteSimple()
	require.NoError(t, err)
	assert.Equal(t, 0, a)
	assert.Equal(t, 0, p.Ns)
}

// Bound: beta must never exceed the Nsb a correct router actually spends.
func TestDecompose_BetaIsALowerBoundOnRouteSimpleNsb(t *testing.T) {
	cases := []struct {
		k, m int
		x0   []int
	}{
		{2, 1, []int{2, 1, 0, 3}},
		{3, 1, []int{3, 1, 5, 0, 2, 4}},
		{3, 2, []int{2, 1, 3, 4, 5, 0, 6, 7, 8}},
	}

	for _, c := range cases {
		y := identity(len(c.x0))

		dp, err := star.NewProblem(c.k, c.m, c.x0, y)
		require.NoError(t, err)
		beta, err := dp.Decompose()
		require.NoError(t, err)

		rp, err := star.NewProblem(c.k, c.m, c.x0, y)
		require.NoError(t, err)
		a, err := rp.RouteSimple()
		require.NoError(t, err)

		assert.LessOrEqual(t, beta, rp.Nsb, "k=%d m=%d x0=%v", c.k, c.m, c.x0)
		assert.LessOrEqual(t, rp.Nsb, rp.Ns, "k=%d m=%d x0=%v", c.k, c.m, c.x0)
		assert.GreaterOrEqual(t, a, 0, "k=%d m=%d x0=%v", c.k, c.m, c.x0)
	}
}

func TestDecompose_LeavesWRestoredAfterReturning(t *testing.T) {
	x0 := []int{3, 1, 5, 0, 2, 4}
	y := identity(6)
	p, err := star.NewProblem(3, 1, x0, y)
	require.NoError(t, err)

	_, err = p.Decompose()
	require.NoError(t, err)

	// W restored from x must reflect the (unmoved) x0 against y, i.e. match
	// a freshly built Problem's matrix.
	fresh, err := star.NewProblem(3, 1, x0, y)
	require.NoError(t, err)

	empty, err := p.EmptyGraph()
	require.NoError(t, err)
	freshEmpty, err := fresh.EmptyGraph()
	require.NoError(t, err)
	assert.Equal(t, freshEmpty, empty)
	assert.Equal(t, fresh.MoveMatrix(), p.MoveMatrix())
}

// k=4, m=5, a single 4-cycle over the centres (identity elsewhere): one
// 4-cycle costs one centre-centre swap less than its length, beta=3.
func TestDecompose_SingleFourCycleOverCentres(t *testing.T) {
	k, m := 4, 5
	n := k * (m + 1)
	x0 := identity(n)
	// Rotate the centre values one group forward: 0 -> 6 -> 12 -> 18 -> 0.
	x0[0], x0[6], x0[12], x0[18] = 6, 12, 18, 0
	y := identity(n)

	p, err := star.NewProblem(k, m, x0, y)
	require.NoError(t, err)

	beta, err := p.Decompose()
	require.NoError(t, err)
	assert.Equal(t, 3, beta)
}

// k=5, m=2, x0 = reverse(y). Groups 0<->4 and 1<->3 trade all their
// values pairwise (six 2-cycles), group 2 keeps its own values, so the
// optimum cycle cover costs exactly 6 centre-centre swaps.
func TestDecompose_ReversedPermutation(t *testing.T) {
	k, m := 5, 2
	n := k * (m + 1)
	x0 := make([]int, n)
	for i := range x0 {
		x0[i] = n - 1 - i
	}
	y := identity(n)

	dp, err := star.NewProblem(k, m, x0, y)
	require.NoError(t, err)
	beta, err := dp.Decompose()
	require.NoError(t, err)
	assert.Equal(t, 6, beta)

	rp, err := star.NewProblem(k, m, x0, y)
	require.NoError(t, err)
	_, err = rp.RouteSimple()
	require.NoError(t, err)

	assert.LessOrEqual(t, beta, rp.Nsb)
	assert.LessOrEqual(t, rp.Nsb, n)

	// The router's postcondition is group membership, not node-exact order:
	// every value must at least have reached its destination group.
	for j := 0; j < n; j++ {
		assert.Equal(t, j/(m+1), rp.X[j]/(m+1), "node %d", j)
	}
}

// k=3, m=2, x0 shaped so W is a pure 3-cycle with weight 2 on every edge:
// two 3-cycles, beta = 4.
func TestDecompose_DoubleThreeCycle(t *testing.T) {
	// Each centre keeps its own value; both leaves of every group hold the
	// next group's leaf values.
	x0 := []int{0, 4, 5, 3, 7, 8, 6, 1, 2}
	y := identity(9)

	p, err := star.NewProblem(3, 2, x0, y)
	require.NoError(t, err)

	beta, err := p.Decompose()
	require.NoError(t, err)
	assert.Equal(t, 4, beta)
}
