package star

// handleCycle cancels the 2-cycle between groups i and j, if any: it
// removes min(W[i][j], W[j][i]) units from both directions and returns the
// amount removed. Two-cycles are "free" — swapping the pair directly costs
// one centre-centre swap each, so every unit cancelled here reduces beta by
// one without any further search.
func (p *Problem) handleCycle(i, j int) int {
	if i == j {
		return 0
	}
	n2 := min(p.W[i][j], p.W[j][i])
	p.W[i][j] -= n2
	p.W[j][i] -= n2
	return n2
}

// Del2Cycles cancels every 2-cycle present in W and returns the total
// amount removed, summing handleCycle over every unordered pair of groups.
func (p *Problem) Del2Cycles() int {
	count := 0
	for i := 0; i < p.K; i++ {
		for j := i + 1; j < p.K; j++ {
			count += p.handleCycle(i, j)
		}
	}
	return count
}

// delCycleCond is one of the eight admissibility predicates DelCycle may be
// asked to apply, in increasing order of permissiveness.
type delCycleCond int

const (
	condUniqueDegree1Exact   delCycleCond = iota // cnt=1, outdeg(s)=1, len=L
	condUniqueDegree1                            // cnt=1, outdeg(s)=1
	condUniqueExact                              // cnt=1, len=L
	condUnique                                   // cnt=1
	condCapacityDegree1Exact                     // len=L, np[s]<=W[s][g2], outdeg(s)=1
	condCapacityExact                            // len=L, np[s]<=W[s][g2]
	condLenExact                                 // len=L
	condAlways                                   // always accept
)

// DelCycle searches for a single directed cycle departing centre s,
// accepting the first candidate next hop g2 whose resulting cycle satisfies
// cond, and removes it from W (and Wc, where positive) if found. It reports
// whether a cycle was removed.
//
// For each g2 with W[s][g2] > 0, it runs a layered BFS from g2 back to s
// (the edge (s, g2) already consumed), tracking the total length of the
// cycle closed when s is re-reached (len), the number of the cycle's edges,
// including (s, g2), that are marked in Wc (cnt, a proxy for "this path is
// forced"), and a weighted
// path count np mirroring ShortestPaths. condLenExact counts raw edges
// into np instead of weighted contributions; its predicate only looks at
// the cycle length.
func (p *Problem) DelCycle(s, L int, cond delCycleCond) bool {
	for g2 := 0; g2 < p.K; g2++ {
		if g2 == s || p.W[s][g2] == 0 {
			continue
		}
		length, cnt, npAtS, ok := p.cycleSearch(s, g2, cond)
		if !ok {
			continue
		}
		if p.acceptsCycle(cond, s, g2, L, length, cnt, npAtS) {
			p.removeCycleVia(length)
			return true
		}
	}
	return false
}

// cycleSearch runs a layered BFS from g2 looking for the closing edge back
// to s, mirroring shortestCycleThrough's layer-rescan structure but
// additionally counting Wc-forced edges along the witnessed cycle (for
// cond 6, np accumulates raw edge counts instead of weighted ones; the
// forced-edge count is the same for every cond). It reports the total cycle length (including the
// initial edge s->g2 and the closing edge back to s), the forced-edge
// count over the whole cycle, and np[s] (the weighted arrival count at s,
// used by conditions 4 and 5). The full cycle s, g2, ..., s is left in
// p.cycle[0:length] on success, ready for removeCycleVia.
func (p *Problem) cycleSearch(s, g2 int, cond delCycleCond) (length, cnt, npAtS int, ok bool) {
	// condLenExact asks for raw edge counts instead of weighted min()
	// contributions; the conditions that actually consume np (the two
	// capacity checks) want the weighted form.
	weighted := cond != condLenExact

	for i := range p.ndist {
		p.ndist[i] = noCycle
	}
	for i := range p.np {
		p.np[i] = 0
	}
	p.ndist[g2] = 0
	p.np[g2] = p.W[s][g2]

	step := func(u, v int) int {
		if weighted {
			return min(p.np[u], p.W[u][v])
		}
		return 1
	}

	for d := 0; ; d++ {
		sawFrontier := false
		for u := 0; u < p.K; u++ {
			if p.ndist[u] != d {
				continue
			}
			sawFrontier = true
			if d >= 1 && p.W[u][s] > 0 {
				p.np[s] += step(u, s)
				p.buildCyclePath(s, g2, u, d)
				return d + 2, p.forcedEdgeCount(d + 2), p.np[s], true
			}
			for v := 0; v < p.K; v++ {
				if v == u || v == s || p.W[u][v] == 0 {
					continue
				}
				if p.ndist[v] == noCycle {
					p.ndist[v] = d + 1
				}
				p.np[v] += step(u, v)
			}
		}
		if !sawFrontier {
			return 0, 0, 0, false
		}
		if d > p.N {
			return 0, 0, 0, false
		}
	}
}

// buildCyclePath reconstructs the cycle s, g2, ..., u (a cyclic sequence of
// d+2 nodes, with the closing edge u->s implicit from the last entry back
// to the first) into p.cycle[0:d+2], backtracking from u to g2 through
// predecessors whose ndist matches each step (ndist still holds the BFS
// state from the cycleSearch call that just found this cycle).
func (p *Problem) buildCyclePath(s, g2, u, d int) {
	p.cycle[0] = s
	p.cycle[1] = g2
	cur := u
	for idx := d + 1; idx > 1; idx-- {
		p.cycle[idx] = cur
		if idx == 2 {
			break
		}
		for v := 0; v < p.K; v++ {
			if v != cur && p.W[v][cur] > 0 && p.ndist[v] == idx-2 {
				cur = v
				break
			}
		}
	}
}

// forcedEdgeCount counts how many of the cycleLen edges currently held in
// p.cycle[0:cycleLen] are marked in Wc.
func (p *Problem) forcedEdgeCount(cycleLen int) int {
	cnt := 0
	for i := 0; i < cycleLen; i++ {
		u, v := p.cycle[i], p.cycle[(i+1)%cycleLen]
		if p.Wc[u][v] > 0 {
			cnt++
		}
	}
	return cnt
}

// acceptsCycle evaluates the predicate table for cond against a candidate
// cycle s -> g2 -> ... -> s of the given length, forced-edge count cnt, and
// weighted arrival count npAtS at s.
func (p *Problem) acceptsCycle(cond delCycleCond, s, g2, L, length, cnt, npAtS int) bool {
	switch cond {
	case condUniqueDegree1Exact:
		return cnt == 1 && p.OutDegree(s) == 1 && length == L
	case condUniqueDegree1:
		return cnt == 1 && p.OutDegree(s) == 1
	case condUniqueExact:
		return cnt == 1 && length == L
	case condUnique:
		return cnt == 1
	case condCapacityDegree1Exact:
		return length == L && npAtS <= p.W[s][g2] && p.OutDegree(s) == 1
	case condCapacityExact:
		return length == L && npAtS <= p.W[s][g2]
	case condLenExact:
		return length == L
	case condAlways:
		return true
	default:
		return false
	}
}

// removeCycleVia decrements W (and Wc, while positive) along every edge of
// the cyclic node sequence cycleSearch left in p.cycle[0:length].
func (p *Problem) removeCycleVia(length int) {
	for i := 0; i < length; i++ {
		u, v := p.cycle[i], p.cycle[(i+1)%length]
		p.W[u][v]--
		if p.Wc[u][v] > 0 {
			p.Wc[u][v]--
		}
	}
}

// DelCycles removes every cycle of exact length L and returns the count
// removed. L == 2 delegates to Del2Cycles (handleCycle already operates
// pairwise without needing a directional walk). L >= 3 repeatedly searches
// for a walk of length L whose edges are at least (L-1)/L forced (i.e. come
// from Wc), removing it and restarting the scan from s = 0 whenever one is
// found, since removal invalidates any BFS state already gathered.
func (p *Problem) DelCycles(L int) int {
	if L == 2 {
		return p.Del2Cycles()
	}

	count := 0
	for s := 0; s < p.K; s++ {
		if p.removeOneWalkOfLength(s, L) {
			count++
			s = -1 // restart the outer scan
		}
	}
	return count
}

// removeOneWalkOfLength performs an iterative backtracking search for a
// single directed walk of exact length L starting and ending at s, such
// that at least L-1 of its L edges are currently marked in Wc. It removes
// the first such walk found (decrementing W and Wc along it) and reports
// whether one was found.
func (p *Problem) removeOneWalkOfLength(s, L int) bool {
	walk := make([]int, 0, L+1)
	walk = append(walk, s)
	forced := 0

	var dfs func(u, depth int) bool
	dfs = func(u, depth int) bool {
		if depth == L {
			if u != s {
				return false
			}
			if forced < L-1 {
				return false
			}
			for i := 0; i < L; i++ {
				a, b := walk[i], walk[(i+1)%L]
				p.W[a][b]--
				if p.Wc[a][b] > 0 {
					p.Wc[a][b]--
				}
			}
			return true
		}
		for v := 0; v < p.K; v++ {
			if p.W[u][v] == 0 {
				continue
			}
			if v == s && depth+1 != L {
				continue
			}
			if v != s && contains(walk, v) {
				continue
			}
			wasForced := p.Wc[u][v] > 0
			if wasForced {
				forced++
			}
			walk = append(walk, v)
			if dfs(v, depth+1) {
				return true
			}
			walk = walk[:len(walk)-1]
			if wasForced {
				forced--
			}
		}
		return false
	}

	return dfs(s, 0)
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
