// SPDX-License-Identifier: MIT

package routerand

import "errors"

// ErrNeedRand indicates that a shuffle was requested without a source of
// randomness: callers must supply a *rand.Rand, even a seeded one, rather
// than relying on a package-level default. Permutation also returns it for
// a negative n.
var ErrNeedRand = errors.New("routerand: rng is required")
