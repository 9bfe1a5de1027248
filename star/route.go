package star

// RouteSimple runs the baseline constructive router: visit groups in
// order, and for every donor group with values destined for the current
// target group, stage then execute one centre-centre swap until the donor
// is drained. It mutates X in place and returns Moves() as counted before
// routing began; the final swap/stage counters are left on Problem
// (Ns, Nsb, Depth).
//
// RouteSimple does not compute a lower bound; it is a correct but
// unoptimized router suitable as a baseline against Decompose's beta.
func (p *Problem) RouteSimple() (int, error) {
	a := p.Moves()

	for gi := 0; gi < p.K; gi++ {
		for gj := gi + 1; gj < p.K; gj++ {
			for p.W[gj][gi] > 0 {
				p.newStage()

				outFired, err := p.setOut(gi)
				if err != nil {
					return 0, err
				}
				inFired, err := p.setN(gj, gi)
				if err != nil {
					return 0, err
				}
				if outFired || inFired {
					p.newStage()
				}

				p.Swap(p.centreOf(gi), p.centreOf(gj))
			}
		}
	}

	// Close with a stage boundary rather than a bare finalize: the last
	// centre-centre swap can leave a group BeingUsedCorrect, and only the
	// stage demotion makes it Correct and therefore finalizable.
	p.newStage()

	return a, nil
}

// setOut ensures the centre of gi does not hold a value destined for gi
// itself: if it does, it swaps that value out to some leaf of gi whose own
// value is destined elsewhere, freeing the centre to receive an incoming
// centre-centre swap. Reports whether a swap fired.
//
// If the centre does hold such a value but every leaf of gi is also
// destined for gi, there is no leaf to swap with — an impossible state for
// a well-formed instance (it would mean the whole group is already home,
// which SetW would have reflected on the diagonal). This is reported as
// ErrInvariantViolation rather than silently ignored.
func (p *Problem) setOut(gi int) (bool, error) {
	centre := p.centreOf(gi)
	if p.destStar(centre) != gi {
		return false, nil
	}
	for l := 1; l <= p.M; l++ {
		leaf := centre + l
		if p.destStar(leaf) != gi {
			p.Swap(centre, leaf)
			return true, nil
		}
	}
	return false, errInvariantf("setOut", "group has no leaf to swap out despite centre misplaced")
}

// setN is the dual of setOut: it ensures the centre of the donor group gj
// holds a value destined for the target group gi, swapping one in from a
// leaf of gj if the centre does not already hold one. Reports the same
// ErrInvariantViolation as setOut if no such leaf exists, which should not
// happen since the caller only invokes setN while W[gj][gi] > 0.
func (p *Problem) setN(gj, gi int) (bool, error) {
	centre := p.centreOf(gj)
	if p.destStar(centre) == gi {
		return false, nil
	}
	for l := 1; l <= p.M; l++ {
		leaf := centre + l
		if p.destStar(leaf) == gi {
			p.Swap(centre, leaf)
			return true, nil
		}
	}
	return false, errInvariantf("setN", "donor group has no leaf destined for target despite W[gj][gi] > 0")
}
