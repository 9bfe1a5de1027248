package star

// Size bounds on a routing instance: k and m are each restricted to
// [1,100]. NewProblem enforces them for anything coming from an external
// source (CLI, file loader).
const (
	MinCentres = 1
	MaxCentres = 100
	MinLeaves  = 1
	MaxLeaves  = 100
)

// NewProblem validates (k, m, x0, y) and constructs a ready-to-use Problem:
// W/Wc are already built from x0 against y. x0 and y must each be
// permutations of 0..n-1 where n = k*(m+1); violations return the
// ErrBadInput sentinel itself, without naming the vector or index that
// failed.
//
// Complexity: O(n) validation + O(n) to build the inverse lookup and the
// initial move matrix.
func NewProblem(k, m int, x0, y []int, opts ...Option) (*Problem, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fixedLeaves != nil {
		m = *cfg.fixedLeaves
	}

	if k < MinCentres || k > MaxCentres || m < MinLeaves || m > MaxLeaves {
		return nil, ErrBadInput
	}

	// Guard the k*(m+1) multiplication before it's used to size slices.
	if k > (1<<31-1)/(m+1) {
		return nil, ErrAllocFailure
	}
	n := k * (m + 1)

	if len(x0) != n || len(y) != n {
		return nil, ErrBadInput
	}
	if err := validatePermutation(x0); err != nil {
		return nil, err
	}
	if err := validatePermutation(y); err != nil {
		return nil, err
	}

	p := &Problem{
		K: k, M: m, N: n,
		x0:    append([]int(nil), x0...),
		X:     append([]int(nil), x0...),
		Y:     append([]int(nil), y...),
		yInv:  make([]int, n),
		W:     make([][]int, k),
		Wc:    make([][]int, k),
		c2use: make([]CentreState, k),
		cycle: make([]int, k+1),
		ndist: make([]int, k),
		np:    make([]int, k),
	}
	for i := 0; i < k; i++ {
		p.W[i] = make([]int, k)
		p.Wc[i] = make([]int, k)
	}
	for node, v := range p.Y {
		p.yInv[v] = node
	}

	p.onSwap = cfg.onSwap
	p.onStage = cfg.onStage

	p.Reset()

	return p, nil
}

// validatePermutation reports ErrBadInput iff v is not a permutation of
// 0..len(v)-1, in one O(n) pass with a seen-set.
func validatePermutation(v []int) error {
	n := len(v)
	seen := make([]bool, n)
	for _, val := range v {
		if val < 0 || val >= n || seen[val] {
			return ErrBadInput
		}
		seen[val] = true
	}
	return nil
}

// Reset restores X to x0, clears the round counters (Depth, Ns, Nsb), frees
// every centre (all states become Free), and rebuilds W/Wc. Callers reuse
// one Problem across RouteSimple and Decompose by Reset-ing between runs,
// since both mutate shared state.
func (p *Problem) Reset() {
	copy(p.X, p.x0)
	p.Depth = 0
	p.Ns = 0
	p.Nsb = 0
	for i := range p.c2use {
		p.c2use[i] = Free
	}
	p.SetW()
}

// newStage begins a new stage: BeingUsed centres become Free again,
// BeingUsed|Correct centres revert to plain Correct, Depth increments, and
// any group now eligible to finalize gets its last centre–leaf swap
// applied immediately. Finalizing on every stage boundary, not just at the
// end of routing, is what frees a finished group's centre for later
// stages.
func (p *Problem) newStage() {
	for g := range p.c2use {
		p.c2use[g] = p.c2use[g].demote()
	}
	p.Depth++
	if p.onStage != nil {
		p.onStage(p.Depth)
	}
	p.SetW()
	p.finalize()
}

// finalize applies the pending centre–leaf swap for every group flagged
// Correct: the group already holds every value it needs, but the centre
// itself holds a value destined elsewhere. It swaps the centre with
// whichever leaf holds the value the centre's own node requires (Y at that
// node), then marks the group Sorted. Returns true iff any group remains
// unsorted afterward.
func (p *Problem) finalize() bool {
	busy := false
	for g := 0; g < p.K; g++ {
		if p.c2use[g] == Correct {
			centre := p.centreOf(g)
			want := p.Y[centre]
			for l := 1; l <= p.M; l++ {
				if p.X[centre+l] == want {
					if p.Swap(centre, centre+l) {
						p.c2use[g] = Sorted
					}
					break
				}
			}
		}
		if p.c2use[g] != Sorted {
			busy = true
		}
	}
	return busy
}

// Moves reports n - Σ_i W[i][i], the number of values not yet in their
// destination group.
func (p *Problem) Moves() int {
	a := p.N
	for i := 0; i < p.K; i++ {
		a -= p.W[i][i]
	}
	return a
}

// destStar returns the group to which the value currently at node j must be
// routed: g(inv(Y, X[j])).
func (p *Problem) destStar(j int) int {
	return p.group(p.yInv[p.X[j]])
}

// destIsCentre reports whether the value currently at node j belongs at a
// centre node.
func (p *Problem) destIsCentre(j int) bool {
	return p.yInv[p.X[j]]%(p.M+1) == 0
}
