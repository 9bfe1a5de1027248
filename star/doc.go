// Package star implements routing of qubits (or any permutation of values)
// across a fully connected star graph: k centre nodes forming a complete
// graph among themselves, each carrying m leaves adjacent only to its own
// centre.
//
// Everything one routing instance needs lives on a single Problem value:
// the state vector x, the target permutation y, the move multigraph W and
// its centre-destination companion Wc, per-centre usage flags, and the
// round/stage counters. Every routine in this package takes *Problem by
// reference; there is no hidden state.
//
// Centrepiece is Problem.Decompose, which computes an optimal cycle
// decomposition of W and returns β, a provable lower bound on the number of
// expensive centre–centre swaps any router needs. Problem.RouteSimple is a
// baseline constructive router kept for comparison against β.
//
// Problem is not safe for concurrent use: the algorithms mutate W in place
// while backtracking over cycles, and a single stage must complete before
// another begins.
package star
