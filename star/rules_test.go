//go:build test

package star_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkeur/starswap/star"
)

// Rule B on W = {(1,2)=1, (2,3)=1, (2,4)=1} yields {(1,3)=1, (1,4)=1}
// with every W[2][.] cleared. The single in-edge (1,2) carries weight 2
// here rather than 1: folding two outgoing branches through it consumes
// one unit each, and a unit multigraph edge cannot be split across two
// destinations without that much capacity.
func TestRuleB_FoldsUniqueInNeighbourPath(t *testing.T) {
	k := 5 // group 0 unused; keeps the fixture ids 1..4 readable
	w := make([][]int, k)
	for i := range w {
		w[i] = make([]int, k)
	}
	w[1][2] = 2
	w[2][3] = 1
	w[2][4] = 1

	p := star.NewMatrixProblem_TestOnly(k, 1, w)
	fired := p.RuleB()
	assert.True(t, fired)

	got := star.WSnapshot_TestOnly(p)
	assert.Equal(t, 1, got[1][3])
	assert.Equal(t, 1, got[1][4])
	assert.Equal(t, 0, got[2][1])
	assert.Equal(t, 0, got[2][3])
	assert.Equal(t, 0, got[2][4])
}

func TestRuleC_FoldsUniqueOutNeighbourPath(t *testing.T) {
	k := 5
	w := make([][]int, k)
	for i := range w {
		w[i] = make([]int, k)
	}
	// Dual of the Rule B fixture: node 2 has a single out-edge (to 3, weight
	// 2 since both incoming branches fold through it), and two distinct
	// in-edges (from 1 and 4).
	w[2][3] = 2
	w[1][2] = 1
	w[4][2] = 1

	p := star.NewMatrixProblem_TestOnly(k, 1, w)
	fired := p.RuleC()
	assert.True(t, fired)

	got := star.WSnapshot_TestOnly(p)
	assert.Equal(t, 1, got[1][3])
	assert.Equal(t, 1, got[4][3])
	assert.Equal(t, 0, got[1][2])
	assert.Equal(t, 0, got[4][2])
	assert.Equal(t, 0, got[2][3])
}
