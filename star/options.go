// SPDX-License-Identifier: MIT

package star

// buildConfig collects every Option's effect before NewProblem sizes and
// populates the Problem: some options (WithFixedLeaves) must be known before
// m is used to size buffers, others (WithSwapObserver) just set a field on
// the finished value. Keeping both kinds behind one Option type lets callers
// chain them without caring which phase each one actually applies in.
type buildConfig struct {
	fixedLeaves *int
	onSwap      func(SwapRecord)
	onStage     func(depth int)
}

// Option configures a Problem at construction time.
type Option func(*buildConfig)

// WithSwapObserver registers fn to be called after every swap Swap() accepts
// (not on denied or finalizing-no-op calls). The CLI uses this to emit its
// colorized trace; tests use it to record a swap log.
func WithSwapObserver(fn func(SwapRecord)) Option {
	return func(c *buildConfig) { c.onSwap = fn }
}

// WithStageObserver registers fn to be called at every stage boundary with
// the just-incremented Depth value, before the boundary's finalizing swaps
// run (so those swaps are observed under the new stage).
func WithStageObserver(fn func(depth int)) Option {
	return func(c *buildConfig) { c.onStage = fn }
}

// WithFixedLeaves pins NewProblem's m argument to m regardless of what the
// caller passed in, for harnesses that want every instance to share one
// group size no matter what an input file says. It is applied before
// (k, m) are validated and used to size buffers, so it takes effect even
// when the caller's m argument would otherwise be rejected by the
// [MinLeaves, MaxLeaves] bound.
func WithFixedLeaves(m int) Option {
	return func(c *buildConfig) { c.fixedLeaves = &m }
}
