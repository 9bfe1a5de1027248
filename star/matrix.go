package star

// SetW rebuilds the move multigraph W and its centre-destination companion
// Wc from the current state X against the target Y. It must be called
// after every mutation of X and before any cycle routine inspects W; Swap
// and Reset already do this, so callers outside this package rarely need to
// invoke it directly.
//
// W[i][i'] counts values currently in group i whose destination group is
// i'; diagonal entries count values already home. Wc[i][i'] counts the
// subset of those values whose destination is exactly the centre of i'.
//
// Complexity: O(n).
func (p *Problem) SetW() {
	for i := 0; i < p.K; i++ {
		row, rowc := p.W[i], p.Wc[i]
		for j := range row {
			row[j] = 0
			rowc[j] = 0
		}
	}

	for j := 0; j < p.N; j++ {
		di := p.destStar(j)
		gi := p.group(j)
		p.W[gi][di]++
		if p.destIsCentre(j) {
			p.Wc[gi][di]++
		}
	}
}

// MoveMatrix returns a defensive copy of the current k×k move multigraph W,
// for callers (the CLI, loggers) that want to display it without being able
// to mutate the Problem's internal state through the returned slices.
func (p *Problem) MoveMatrix() [][]int {
	out := make([][]int, p.K)
	for i, row := range p.W {
		out[i] = append([]int(nil), row...)
	}
	return out
}
