package instance

// Instance is the decoded form of a .fcs file: the star-graph shape (K
// centres, M leaves each) and a starting permutation X over 0..n-1, n =
// K*(M+1). Values are stored 0-based; the file format itself is 1-based.
type Instance struct {
	K, M    int
	X       []int
	Comment string
}
