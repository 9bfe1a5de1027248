package star

// Result encapsulates the output of a full router run: the lower bound,
// the move count, the swap counters, and the full swap trace.
type Result struct {
	// Beta is the lower bound Decompose computed on the initial instance.
	Beta int

	// A is Moves() as counted before RouteSimple began.
	A int

	// Ns is the total number of swaps RouteSimple applied.
	Ns int

	// Nsb is how many of those swaps were centre-centre.
	Nsb int

	// Depth is the final stage counter.
	Depth int

	// Swaps is the ordered trace of every swap RouteSimple applied.
	Swaps []SwapRecord
}

// Run resets the instance to its initial state, computes Decompose's lower
// bound on it, then executes RouteSimple while recording every swap,
// returning both halves in one Result. This is the entry point the CLI
// uses; callers wanting just one half can call Decompose or RouteSimple
// directly instead.
func (p *Problem) Run() (Result, error) {
	p.Reset()
	beta, err := p.Decompose()
	if err != nil {
		return Result{}, err
	}

	p.Reset()

	prev := p.onSwap
	var swaps []SwapRecord
	p.onSwap = func(rec SwapRecord) {
		swaps = append(swaps, rec)
		if prev != nil {
			prev(rec)
		}
	}
	defer func() { p.onSwap = prev }()

	a, err := p.RouteSimple()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Beta:  beta,
		A:     a,
		Ns:    p.Ns,
		Nsb:   p.Nsb,
		Depth: p.Depth,
		Swaps: swaps,
	}, nil
}
