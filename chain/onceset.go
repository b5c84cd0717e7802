// SPDX-License-Identifier: MIT
// Package: xychain/chain
//
// onceset.go — insert-once ordered set.
//
// Both stores of the builder are made of onceSet values: X-chains hold node
// ids, Y-chains hold X-chain ids. add is partial (it refuses a value that is
// already present), which is what turns "no duplicates" into an enforced
// invariant.

package chain

// onceSet is an ordered set whose add fails instead of overwriting.
// The zero value is not usable; call newOnceSet.
type onceSet[T comparable] struct {
	items []T
	index map[T]int
}

func newOnceSet[T comparable]() *onceSet[T] {
	return &onceSet[T]{index: make(map[T]int)}
}

// add appends v and reports true, or reports false and leaves the set
// untouched when v is already present.
// Complexity: O(1) amortized.
func (s *onceSet[T]) add(v T) bool {
	if _, dup := s.index[v]; dup {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)

	return true
}

// has reports membership in O(1).
func (s *onceSet[T]) has(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *onceSet[T]) len() int { return len(s.items) }

// values returns a copy of the members in insertion order.
func (s *onceSet[T]) values() []T {
	return append([]T(nil), s.items...)
}
