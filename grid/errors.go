// SPDX-License-Identifier: MIT
// Package: xychain/grid
//
// errors.go — sentinel errors for grid decoding.

package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is the umbrella for every decode failure.
var ErrMalformedGrid = errors.New("grid: malformed grid")

// ErrMalformedLink indicates a token that violates positional parity: a
// non-link symbol in a link position, or a link symbol in a cell position
// under WithStrictCells.
var ErrMalformedLink = fmt.Errorf("malformed link: %w", ErrMalformedGrid)

// ErrUnknownToken indicates a rune outside the five recognized tokens.
var ErrUnknownToken = fmt.Errorf("unknown token: %w", ErrMalformedGrid)

// PositionError locates a decode failure in the normalized grid.
// Row and Col are zero-based; Col counts runes.
type PositionError struct {
	Row, Col int
	Rune     rune
	Err      error
}

// Error implements error.
func (e *PositionError) Error() string {
	return fmt.Sprintf("grid: row %d col %d %q: %v", e.Row, e.Col, e.Rune, e.Err)
}

// Unwrap exposes the wrapped sentinel to errors.Is.
func (e *PositionError) Unwrap() error { return e.Err }
