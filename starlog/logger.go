package starlog

import (
	"log/slog"
	"os"

	"github.com/jkeur/starswap/star"
)

// Logger wraps a *slog.Logger with the handful of record shapes the router
// emits: one at every stage boundary, one per accepted swap, and one when
// Decompose finishes computing the lower bound. A nil *Logger is valid and
// simply means these events are not recorded — NewProblem never forces one
// on callers.
type Logger struct {
	base *slog.Logger
}

// New wraps h in a Logger. A nil handler falls back to a JSON handler on
// os.Stderr.
func New(h slog.Handler) *Logger {
	if h == nil {
		h = slog.NewJSONHandler(os.Stderr, nil)
	}
	return &Logger{base: slog.New(h)}
}

// Stage records a stage boundary: depth is the new stage counter.
func (l *Logger) Stage(depth int) {
	if l == nil {
		return
	}
	l.base.Info("stage", slog.Int("depth", depth))
}

// Swap records one accepted swap.
func (l *Logger) Swap(rec star.SwapRecord) {
	if l == nil {
		return
	}
	l.base.Info("swap",
		slog.Int("i", rec.I),
		slog.Int("j", rec.J),
		slog.Bool("centre_centre", rec.CentreCentre),
	)
}

// Decompose records the lower bound computed for an instance.
func (l *Logger) Decompose(beta int) {
	if l == nil {
		return
	}
	l.base.Info("decompose", slog.Int("beta", beta))
}

// Failure records a fatal routing error together with the move-matrix
// snapshot it left behind, before the error propagates to the caller.
func (l *Logger) Failure(err error, w [][]int) {
	if l == nil {
		return
	}
	l.base.Error("routing failed",
		slog.String("error", err.Error()),
		slog.String("w", PlainMatrixString(w)),
	)
}

// Route records the outcome of a completed routing run.
func (l *Logger) Route(moves, swaps, centreSwaps int) {
	if l == nil {
		return
	}
	l.base.Info("route",
		slog.Int("moves", moves),
		slog.Int("swaps", swaps),
		slog.Int("centre_swaps", centreSwaps),
	)
}
