// Package routerand generates randomized starting permutations for star
// instances via seeded Fisher-Yates shuffles. Every entry point takes an
// explicit *rand.Rand: no package-level RNG, no hidden global state, so a
// fixed seed reproduces the same instance everywhere.
package routerand
