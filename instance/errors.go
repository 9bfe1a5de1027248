// SPDX-License-Identifier: MIT

package instance

import (
	"errors"
	"fmt"
)

// ErrBadInput covers every structural failure of a .fcs file: a missing `p`
// or `x` line, a non-numeric field, a wrong value count, or a value outside
// 1..n. Callers branch with errors.Is; the wrapped detail is for humans.
var ErrBadInput = errors.New("instance: malformed .fcs input")

func loadErrorf(format string, args ...any) error {
	return &loadError{msg: fmt.Sprintf(format, args...)}
}

type loadError struct {
	msg string
}

func (e *loadError) Error() string { return "instance: " + e.msg }

func (e *loadError) Unwrap() error { return ErrBadInput }
