// Package starlog provides structured logging and matrix pretty-printing
// for the router: a thin wrapper over log/slog for per-stage and per-swap
// records, plus a lipgloss-colored console renderer for the CLI.
package starlog
