package star

// RuleB applies the "unique in-neighbour" rewrite: for every node i with
// exactly one j such that W[j][i] > 0, and every i' != i, j with
// W[i][i'] > 0, the path j -> i -> i' is replaced by a direct edge j -> i'
// (j's only route into i is fated to continue on to i' anyway, so folding
// the hop changes nothing about the swaps eventually required). Reports
// whether any rewrite fired.
func (p *Problem) RuleB() bool {
	fired := false
	for i := 0; i < p.K; i++ {
		j, ok := p.uniqueInNeighbour(i)
		if !ok {
			continue
		}
		for ip := 0; ip < p.K; ip++ {
			if ip == i || ip == j || p.W[i][ip] == 0 {
				continue
			}
			p.W[j][i]--
			p.W[i][ip]--
			p.W[j][ip]++
			fired = true
		}
	}
	return fired
}

// RuleC applies the dual "unique out-neighbour" rewrite: for every node i
// with exactly one j' such that W[i][j'] > 0, and every j != i, j' with
// W[j][i] > 0, the path j -> i -> j' is replaced by j -> j'.
func (p *Problem) RuleC() bool {
	fired := false
	for i := 0; i < p.K; i++ {
		jp, ok := p.uniqueOutNeighbour(i)
		if !ok {
			continue
		}
		for j := 0; j < p.K; j++ {
			if j == i || j == jp || p.W[j][i] == 0 {
				continue
			}
			p.W[j][i]--
			p.W[i][jp]--
			p.W[j][jp]++
			fired = true
		}
	}
	return fired
}

// uniqueInNeighbour reports the sole j with W[j][i] > 0, if exactly one
// such j exists.
func (p *Problem) uniqueInNeighbour(i int) (j int, ok bool) {
	found := -1
	for u := 0; u < p.K; u++ {
		if u == i || p.W[u][i] == 0 {
			continue
		}
		if found != -1 {
			return 0, false
		}
		found = u
	}
	if found == -1 {
		return 0, false
	}
	return found, true
}

// uniqueOutNeighbour reports the sole j' with W[i][j'] > 0, if exactly one
// such j' exists.
func (p *Problem) uniqueOutNeighbour(i int) (jp int, ok bool) {
	found := -1
	for v := 0; v < p.K; v++ {
		if v == i || p.W[i][v] == 0 {
			continue
		}
		if found != -1 {
			return 0, false
		}
		found = v
	}
	if found == -1 {
		return 0, false
	}
	return found, true
}
