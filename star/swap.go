package star

// markUsed applies the "mark BEING_USED" transition from Swap's effect list:
// it folds a used-this-stage flag into whatever state a group is already in,
// which is why BeingUsedCorrect exists as a distinct state from Correct —
// a group can be both "already fully populated" and "touched this stage".
func (s CentreState) markUsed() CentreState {
	switch s {
	case Free:
		return BeingUsed
	case Correct:
		return BeingUsedCorrect
	default:
		return s
	}
}

// Swap exchanges the values at nodes i and j and reports whether the swap
// was accepted. (i, j) must be an edge of the routing graph: either i is a
// centre and j a leaf of the same group, or both are centres of distinct
// groups — Swap does not itself check this; callers only ever construct
// edges from group arithmetic.
//
// A swap is denied (returns false) without mutating anything if either
// endpoint's group is currently blocked for the rest of this stage (see
// CentreState.blocksSwap). Denial is a routine control-flow signal, not an
// error: callers retry after the next newStage.
func (p *Problem) Swap(i, j int) bool {
	gi, gj := p.group(i), p.group(j)
	if p.c2use[gi].blocksSwap() || p.c2use[gj].blocksSwap() {
		return false
	}

	p.X[i], p.X[j] = p.X[j], p.X[i]
	if p.isCentre(j) {
		p.Nsb++
	}
	p.c2use[gi] = p.c2use[gi].markUsed()
	p.c2use[gj] = p.c2use[gj].markUsed()
	p.Ns++

	p.SetW()

	for _, g := range [2]int{gi, gj} {
		centre := p.centreOf(g)
		if p.W[g][g] != p.M+1 {
			continue
		}
		if p.X[centre] == p.Y[centre] {
			p.c2use[g] = Sorted
		} else {
			p.c2use[g] = BeingUsedCorrect
		}
	}

	if p.onSwap != nil {
		p.onSwap(SwapRecord{I: i, J: j, CentreCentre: p.isCentre(i) && p.isCentre(j)})
	}

	return true
}
