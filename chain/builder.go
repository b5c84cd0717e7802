// SPDX-License-Identifier: MIT
// Package: xychain/chain
//
// builder.go — the fold: State, Apply, Reduce, Snapshot.
//
// Design contract:
//   • State is an explicit value owned by one fold; there is no package state.
//   • Apply is atomic per event: every precondition is checked before the
//     first write, so a rejected event leaves State exactly as it was.
//   • Reduce is all-or-nothing: the first rejection aborts the fold and no
//     graph is returned.

package chain

import (
	"fmt"

	"go.uber.org/zap"
)

// yEntry is one Y-chain: its fixed node identity and the X-chains it tags.
type yEntry struct {
	node    NodeID
	members *onceSet[XChainID]
}

// State accumulates the X-store and Y-store of a fold.
// A State is not safe for concurrent use.
type State struct {
	cfg     config
	xs      map[XChainID]*onceSet[NodeID]
	ys      map[YChainID]*yEntry
	applied int
}

// NewState returns an empty State configured by opts.
func NewState(opts ...Option) *State {
	return newState(newConfig(opts...))
}

func newState(cfg config) *State {
	return &State{
		cfg: cfg,
		xs:  make(map[XChainID]*onceSet[NodeID]),
		ys:  make(map[YChainID]*yEntry),
	}
}

// Applied returns the number of events accepted so far.
func (s *State) Applied() int { return s.applied }

// Apply validates e against the accumulated state and commits it.
// On rejection it returns an *EventError whose Index is Applied() and the
// state is unchanged.
// Complexity: O(1) amortized.
func (s *State) Apply(e Event) error {
	if err := s.apply(e); err != nil {
		s.cfg.logger.Debug("event rejected",
			zap.Int("index", s.applied),
			zap.Stringer("event", stringer{e}),
			zap.Error(err))
		return &EventError{Index: s.applied, Event: e, Err: err}
	}
	s.applied++

	return nil
}

func (s *State) apply(e Event) error {
	if err := ValidateEvent(e); err != nil {
		return err
	}
	switch ev := e.(type) {
	case XAdded:
		return s.applyXAdded(ev)
	case YAdded:
		return s.applyYAdded(ev)
	default:
		// ValidateEvent already rejects this; kept so the switch stays exhaustive.
		return fmt.Errorf("%T: %w", e, ErrUnknownEvent)
	}
}

func (s *State) applyXAdded(e XAdded) error {
	nodes, ok := s.xs[e.ChainID]
	if ok && nodes.has(e.ID) {
		return duplicateNodeErr(e)
	}
	if !ok {
		nodes = newOnceSet[NodeID]()
		s.xs[e.ChainID] = nodes
	}
	nodes.add(e.ID)

	return nil
}

func (s *State) applyYAdded(e YAdded) error {
	nodes, ok := s.xs[e.XChainID]
	if !ok {
		return unknownXChainErr(e)
	}
	if !nodes.has(e.ID) {
		return nodeNotFoundErr(e)
	}

	entry, ok := s.ys[e.YChainID]
	if ok {
		if !s.cfg.lenient && entry.node != e.ID {
			return fixedIdentityErr(e, entry.node)
		}
		if entry.members.has(e.XChainID) {
			return duplicateMemberErr(e)
		}
	} else {
		entry = &yEntry{node: e.ID, members: newOnceSet[XChainID]()}
		s.ys[e.YChainID] = entry
	}
	entry.members.add(e.XChainID)

	return nil
}

// Snapshot materializes the current state as a Graph that shares no memory
// with s. Every YMember carries the Y-chain's fixed identity.
// Complexity: O(total entries).
func (s *State) Snapshot() *Graph {
	g := NewGraph()
	for id, nodes := range s.xs {
		g.X[id] = nodes.values()
	}
	for id, entry := range s.ys {
		members := make([]YMember, 0, entry.members.len())
		for _, x := range entry.members.items {
			members = append(members, YMember{XChainID: x, NodeID: entry.node})
		}
		g.Y[id] = members
	}

	return g
}

// Reduce folds events in order into a fresh State and returns its snapshot.
// The first rejected event aborts the fold; the error wraps an *EventError
// identifying it and no graph is returned.
// Complexity: O(len(events)) plus the snapshot.
func Reduce(events []Event, opts ...Option) (*Graph, error) {
	s := NewState(opts...)
	for _, e := range events {
		if err := s.Apply(e); err != nil {
			return nil, fmt.Errorf("Reduce: %w", err)
		}
	}
	s.cfg.logger.Debug("fold complete",
		zap.Int("events", s.applied),
		zap.Int("xChains", len(s.xs)),
		zap.Int("yChains", len(s.ys)))

	return s.Snapshot(), nil
}

// stringer formats events that may be nil without tripping zap.Stringer.
type stringer struct{ e Event }

func (s stringer) String() string {
	if s.e == nil {
		return "<nil>"
	}
	return s.e.String()
}
