// SPDX-License-Identifier: MIT

//go:build test

package star

// Test-only bridge exposing the unexported move-matrix fields to star_test
// so rule- and cycle-level tests can set up and inspect W/Wc directly
// instead of reverse-engineering an (x0, y) pair that happens to produce a
// given matrix. Compiles only under `-tags test`; invisible in production
// builds.

// NewMatrixProblem_TestOnly builds a Problem around the given W directly,
// skipping NewProblem's (x0, y) derivation. Wc starts zeroed, x/y are left
// as an arbitrary identity so that group/centre helpers still work; callers
// exercising cycle or rule routines only care about W.
func NewMatrixProblem_TestOnly(k, m int, w [][]int) *Problem {
	n := k * (m + 1)
	p := &Problem{
		K: k, M: m, N: n,
		x0:    make([]int, n),
		X:     make([]int, n),
		Y:     make([]int, n),
		yInv:  make([]int, n),
		W:     make([][]int, k),
		Wc:    make([][]int, k),
		c2use: make([]CentreState, k),
		cycle: make([]int, k+1),
		ndist: make([]int, k),
		np:    make([]int, k),
	}
	for i := 0; i < n; i++ {
		p.x0[i] = i
		p.X[i] = i
		p.Y[i] = i
		p.yInv[i] = i
	}
	for i := 0; i < k; i++ {
		p.W[i] = append([]int(nil), w[i]...)
		p.Wc[i] = make([]int, k)
	}
	return p
}

// WSnapshot_TestOnly returns a defensive copy of the current W.
func WSnapshot_TestOnly(p *Problem) [][]int {
	out := make([][]int, p.K)
	for i, row := range p.W {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// SetWc_TestOnly overwrites Wc directly, for tests exercising DelCycle's
// forced-edge predicates without going through ShortestPaths.
func SetWc_TestOnly(p *Problem, wc [][]int) {
	for i, row := range wc {
		p.Wc[i] = append([]int(nil), row...)
	}
}
