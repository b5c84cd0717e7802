// SPDX-License-Identifier: MIT
// Package: xychain/chain
//
// event.go — the closed event sum type and sequence helpers.
//
// Event is sealed by an unexported method: only XAdded and YAdded satisfy it,
// and every dispatch site is a type switch whose default branch reports
// ErrUnknownEvent. A third variant therefore shows up at each switch rather
// than slipping through as a no-op.

package chain

import "fmt"

// Event is one entry of the append-only input log.
// Events are passed by value.
type Event interface {
	fmt.Stringer
	isEvent()
}

// XAdded appends node ID to X-chain ChainID.
type XAdded struct {
	ID      NodeID
	ChainID XChainID
}

// YAdded tags node ID of X-chain XChainID into Y-chain YChainID.
type YAdded struct {
	ID       NodeID
	XChainID XChainID
	YChainID YChainID
}

func (XAdded) isEvent() {}
func (YAdded) isEvent() {}

// String renders the event for logs and error messages.
func (e XAdded) String() string {
	return fmt.Sprintf("xAdded{id=%s chain=%s}", e.ID, e.ChainID)
}

// String renders the event for logs and error messages.
func (e YAdded) String() string {
	return fmt.Sprintf("yAdded{id=%s x=%s y=%s}", e.ID, e.XChainID, e.YChainID)
}

// ValidateEvent rejects nil or foreign events with ErrUnknownEvent and
// events carrying an empty identifier with ErrEmptyID.
// Complexity: O(1).
func ValidateEvent(e Event) error {
	switch ev := e.(type) {
	case XAdded:
		if ev.ID == "" || ev.ChainID == "" {
			return fmt.Errorf("%v: %w", ev, ErrEmptyID)
		}
	case YAdded:
		if ev.ID == "" || ev.XChainID == "" || ev.YChainID == "" {
			return fmt.Errorf("%v: %w", ev, ErrEmptyID)
		}
	default:
		return fmt.Errorf("%T: %w", e, ErrUnknownEvent)
	}

	return nil
}

// FirstXAdded returns the first XAdded in events.
func FirstXAdded(events []Event) (XAdded, bool) {
	for _, e := range events {
		if x, ok := e.(XAdded); ok {
			return x, true
		}
	}

	return XAdded{}, false
}

// FirstYAdded returns the first YAdded in events.
func FirstYAdded(events []Event) (YAdded, bool) {
	for _, e := range events {
		if y, ok := e.(YAdded); ok {
			return y, true
		}
	}

	return YAdded{}, false
}

// Split partitions events into an X phase and a Y phase.
// ok is false when some YAdded precedes an XAdded or when an event is
// neither variant; xs and ys are nil in that case.
// Complexity: O(n).
func Split(events []Event) (xs []XAdded, ys []YAdded, ok bool) {
	for _, e := range events {
		switch ev := e.(type) {
		case XAdded:
			if len(ys) > 0 {
				return nil, nil, false
			}
			xs = append(xs, ev)
		case YAdded:
			ys = append(ys, ev)
		default:
			return nil, nil, false
		}
	}

	return xs, ys, true
}
