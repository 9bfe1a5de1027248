// Package instance reads and writes the .fcs instance file format: a
// line-oriented, ASCII description of a star-routing problem's size and
// starting permutation. Loading validates the file's structure, the value
// count, the 1..n range and the absence of duplicates; star.NewProblem
// repeats the permutation check and adds the k/m bounds checks.
package instance
