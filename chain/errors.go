// SPDX-License-Identifier: MIT
// Package: xychain/chain
//
// errors.go — sentinel errors and the per-event error wrapper.
//
// Error policy:
//   • Only sentinel variables are exposed for classification.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every rejection produced by a fold is an *EventError carrying the index
//     of the offending event; errors.As recovers it.

package chain

import (
	"errors"
	"fmt"
)

// ErrDuplicateNode indicates an XAdded event names a node already present
// in the target X-chain.
var ErrDuplicateNode = errors.New("chain: duplicate node in x-chain")

// ErrDuplicateXChainInYChain indicates a YAdded event names an
// (X-chain, Y-chain) pair that is already recorded.
var ErrDuplicateXChainInYChain = errors.New("chain: duplicate x-chain in y-chain")

// ErrUnknownXChain indicates a YAdded event references an X-chain never
// established by a prior XAdded.
var ErrUnknownXChain = errors.New("chain: unknown x-chain")

// ErrNodeNotFoundInXChain indicates a YAdded event references a node that
// is not a member of the named X-chain.
var ErrNodeNotFoundInXChain = errors.New("chain: node not found in x-chain")

// ErrFixedIdentityViolation indicates a YAdded event presents a node id that
// differs from the identity fixed by the first event of that Y-chain.
// Only reported in strict mode (the default).
var ErrFixedIdentityViolation = errors.New("chain: y-chain node identity violated")

// ErrEmptyID indicates an event carries an empty identifier.
var ErrEmptyID = errors.New("chain: empty identifier")

// ErrUnknownEvent indicates a nil event or a type outside {XAdded, YAdded}.
var ErrUnknownEvent = errors.New("chain: unknown event")

// EventError reports the first event that broke an invariant.
//
// Index is the zero-based position of Event within the sequence applied to
// the State (for Reduce, the position within the input slice).
type EventError struct {
	Index int
	Event Event
	Err   error
}

// Error implements error.
func (e *EventError) Error() string {
	return fmt.Sprintf("event #%d %v: %v", e.Index, e.Event, e.Err)
}

// Unwrap exposes the wrapped sentinel to errors.Is.
func (e *EventError) Unwrap() error { return e.Err }

func duplicateNodeErr(e XAdded) error {
	return fmt.Errorf("node %q already in x-chain %q: %w", e.ID, e.ChainID, ErrDuplicateNode)
}

func unknownXChainErr(e YAdded) error {
	return fmt.Errorf("x-chain %q: %w", e.XChainID, ErrUnknownXChain)
}

func nodeNotFoundErr(e YAdded) error {
	return fmt.Errorf("node %q in x-chain %q: %w", e.ID, e.XChainID, ErrNodeNotFoundInXChain)
}

func fixedIdentityErr(e YAdded, fixed NodeID) error {
	return fmt.Errorf("y-chain %q is fixed to node %q, got %q: %w", e.YChainID, fixed, e.ID, ErrFixedIdentityViolation)
}

func duplicateMemberErr(e YAdded) error {
	return fmt.Errorf("x-chain %q already in y-chain %q: %w", e.XChainID, e.YChainID, ErrDuplicateXChainInYChain)
}
