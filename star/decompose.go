package star

// Decompose computes beta, the minimum number of centre-centre swaps any
// routing consistent with the current state must perform, by repeatedly
// stripping cycles from the move multigraph W. It leaves X untouched — all
// work happens on W/Wc, which are restored to a clean snapshot of X before
// returning (see SetW).
//
// Each outer pass picks the current shortest cycle length L and spends up
// to three attempts removing cycles of that length: bulk removal first (the
// cheap, always-correct case), then the rewrite rules once bulk removal
// stops making progress while cycles of length L remain (the pass ends as
// soon as no cycle of length L is left), and finally a single best-effort
// DelCycle under progressively weaker admissibility conditions. Exhausting
// all three without progress is the one case this returns
// ErrNoAdmissibleCycle for — it should not happen for a well-formed
// instance, and indicates the decomposition got stuck.
func (p *Problem) Decompose() (beta int, err error) {
	beta = p.N
	for i := 0; i < p.K; i++ {
		beta -= p.W[i][i]
	}
	beta -= p.Del2Cycles()

	for i := 0; i < p.K; i++ {
		for j := range p.Wc[i] {
			p.Wc[i][j] = 0
		}
	}

	for {
		empty, err := p.EmptyGraph()
		if err != nil {
			return 0, err
		}
		if empty {
			break
		}

		L := p.MinCycleLen()
		if err := p.decomposePass(L, &beta); err != nil {
			return 0, err
		}
	}

	p.SetW()
	return beta, nil
}

// decomposePass runs the bounded 3-attempt inner loop from the driver
// pseudocode for one fixed target length L, restarting itself (Niter reset
// to -1) every time a removal actually makes progress, since that can
// change the shortest cycle length in W and invalidate any iteration
// already done against the stale L.
func (p *Problem) decomposePass(L int, beta *int) error {
	for niter := 0; niter <= 2; niter++ {
		p.rebuildWc()

		if c := p.DelCycles(L); c > 0 {
			*beta -= c
			niter = -1
			continue
		}

		if p.MinCycleLen() != L {
			return nil
		}

		switch niter {
		case 1:
			if p.RuleB() || p.RuleC() {
				return nil
			}
		case 2:
			return p.lastResortRemoval(L, beta)
		}
	}
	return nil
}

// rebuildWc marks Wc[i][i'] = 1 for every edge (i, i') of W whose reverse
// shortest path i' -> i is "forced" (ShortestPaths reports forced == true),
// i.e. exactly the precondition DelCycles/DelCycle rely on for their
// forced-edge counting.
func (p *Problem) rebuildWc() {
	for i := 0; i < p.K; i++ {
		for ip := 0; ip < p.K; ip++ {
			p.Wc[i][ip] = 0
			if ip == i || p.W[i][ip] == 0 {
				continue
			}
			if _, forced := p.ShortestPaths(ip, i); forced {
				p.Wc[i][ip] = 1
			}
		}
	}
}

// lastResortRemoval is the driver's final fallback, tried once every
// rewrite rule and bulk removal has failed to make progress on length L:
// attempt a single DelCycle under each of conditions 2, 5 and 6 in turn,
// taking the first that succeeds. Exhausting all three without success
// means the decomposition cannot proceed and is reported as
// ErrNoAdmissibleCycle.
func (p *Problem) lastResortRemoval(L int, beta *int) error {
	for _, cond := range []delCycleCond{condUniqueExact, condCapacityExact, condLenExact} {
		for s := 0; s < p.K; s++ {
			if p.DelCycle(s, L, cond) {
				*beta--
				return nil
			}
		}
	}
	return ErrNoAdmissibleCycle
}
