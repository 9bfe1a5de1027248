package star

// MinCycleLen returns the length of a shortest directed cycle in W
// restricted to edges with positive weight; self-loops (diagonal entries)
// are ignored. It scans every possible start node and keeps the minimum
// length cycle discovered through any of them via a layered BFS over the
// reused ndist scratch buffer.
//
// Behavior is only meaningful when W has at least one off-diagonal cycle
// (callers must check EmptyGraph first, exactly as Decompose does); with no
// cycle present this returns 0.
//
// Complexity: O(k^2) per start, O(k^3) worst case overall.
func (p *Problem) MinCycleLen() int {
	lmin := 0
	for s := 0; s < p.K; s++ {
		if l := p.shortestCycleThrough(s); l > 0 && (lmin == 0 || l < lmin) {
			lmin = l
		}
	}
	return lmin
}

// shortestCycleThrough finds the shortest directed cycle that departs from
// and returns to s, by expanding the graph layer by layer from s and
// stopping as soon as an edge back to s is found from a node at distance
// >= 1. It re-scans all k nodes at each layer rather than maintaining an
// explicit queue, since k is always small (<=100).
func (p *Problem) shortestCycleThrough(s int) int {
	for i := range p.ndist {
		p.ndist[i] = noCycle
	}
	p.ndist[s] = 0

	for length := 0; length <= p.K; length++ {
		sawFrontier := false
		for u := 0; u < p.K; u++ {
			if p.ndist[u] != length {
				continue
			}
			sawFrontier = true
			for v := 0; v < p.K; v++ {
				if v == u || p.W[u][v] == 0 {
					continue
				}
				if length >= 1 && v == s {
					return length + 1
				}
				if p.ndist[v] == noCycle {
					p.ndist[v] = length + 1
				}
			}
		}
		if !sawFrontier {
			break
		}
	}

	return 0
}

// ShortestPaths counts weighted shortest paths from pi to pj, seeding the
// capacity at pi with the reverse edge weight W[pj][pi]. It returns the
// common shortest-path length and true iff the accumulated path count at pj
// does not exceed that seed capacity — i.e., the path from pi to pj is
// "unique enough" that consuming it will not oversubscribe the edge
// (pj, pi) a caller intends to pair it with.
//
// Side effect: writes a witness shortest path (pi ... pj) into the shared
// cycle scratch buffer, most significant index first, terminated by
// noCycle.
//
// Complexity: O(k^2).
func (p *Problem) ShortestPaths(pi, pj int) (length int, forced bool) {
	for i := range p.ndist {
		p.ndist[i] = noCycle
	}
	for i := range p.np {
		p.np[i] = 0
	}
	for i := range p.cycle {
		p.cycle[i] = noCycle
	}

	p.ndist[pi] = 0
	p.np[pi] = p.W[pj][pi]

	for length = 0; p.np[pj] == 0; length++ {
		sawFrontier := false
		for u := 0; u < p.K; u++ {
			if p.ndist[u] != length {
				continue
			}
			sawFrontier = true
			for v := 0; v < p.K; v++ {
				if v == u || p.W[u][v] == 0 {
					continue
				}
				contribution := min(p.np[u], p.W[u][v])
				if length >= 1 && v == pj {
					p.np[v] += contribution
				} else if p.ndist[v] == noCycle || p.ndist[v] == length+1 {
					p.np[v] += contribution
					p.ndist[v] = length + 1
				}
			}
		}
		if !sawFrontier {
			// No further frontier to expand but pj still unreached: pi
			// cannot reach pj at all, which should not happen for an edge
			// the driver already confirmed is in W. Treat as unforced.
			return length, false
		}
		if length > p.N {
			return length, false
		}
	}

	// Backtrack one witness path pi -> ... -> pj into cycle, most distant
	// node first, by walking predecessors whose distance matches each step.
	p.cycle[0] = pi
	p.cycle[length] = pj
	cur := pj
	for step := length - 1; step > 0; step-- {
		for u := 0; u < p.K; u++ {
			if u != cur && p.W[u][cur] > 0 && p.ndist[u] == step {
				p.cycle[step] = u
				cur = u
				break
			}
		}
	}

	return length, p.np[pj] <= p.np[pi]
}

// EmptyGraph reports whether every off-diagonal entry of W is zero, i.e.
// every value currently sits in its destination group already. It also
// checks the W[i][i'] <= m+1 capacity invariant, returning
// ErrInvariantViolation if it is ever violated.
func (p *Problem) EmptyGraph() (bool, error) {
	empty := true
	for i := 0; i < p.K; i++ {
		for j := 0; j < p.K; j++ {
			if p.W[i][j] > p.M+1 {
				return false, errInvariantf("EmptyGraph", "W entry exceeds m+1 capacity")
			}
			if i != j && p.W[i][j] != 0 {
				empty = false
			}
		}
	}
	return empty, nil
}

// OutDegree returns the number of distinct groups g' != g with
// W[g][g'] > 0. W is assumed already current.
func (p *Problem) OutDegree(g int) int {
	deg := 0
	for j := 0; j < p.K; j++ {
		if j != g && p.W[g][j] > 0 {
			deg++
		}
	}
	return deg
}
