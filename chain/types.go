// SPDX-License-Identifier: MIT
// Package: xychain/chain
//
// types.go — identifier kinds and the graph snapshot.

package chain

import "sort"

// XChainID names a directed X-chain.
type XChainID string

// YChainID names an undirected Y-chain (tag group).
type YChainID string

// NodeID is an opaque node identity shared by both relations.
type NodeID string

// YMember is one attachment of a Y-chain: the X-chain it tags and the
// Y-chain's fixed node identity, repeated for consumers that do not track
// the identity separately.
type YMember struct {
	XChainID XChainID `yaml:"xChainId" json:"xChainId"`
	NodeID   NodeID   `yaml:"nodeId" json:"nodeId"`
}

// Graph is the materialized output of a fold.
//
// X maps every X-chain to its node sequence in insertion order.
// Y maps every Y-chain to its members in attachment order.
// A Graph returned by Reduce or State.Snapshot shares no memory with the
// builder that produced it.
type Graph struct {
	X map[XChainID][]NodeID  `yaml:"x" json:"x"`
	Y map[YChainID][]YMember `yaml:"y" json:"y"`
}

// NewGraph returns an empty Graph with allocated maps.
func NewGraph() *Graph {
	return &Graph{
		X: make(map[XChainID][]NodeID),
		Y: make(map[YChainID][]YMember),
	}
}

// XChainIDs returns the X-chain ids in lexicographic order.
// Complexity: O(H log H).
func (g *Graph) XChainIDs() []XChainID {
	ids := make([]XChainID, 0, len(g.X))
	for id := range g.X {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// YChainIDs returns the Y-chain ids in lexicographic order.
// Complexity: O(K log K).
func (g *Graph) YChainIDs() []YChainID {
	ids := make([]YChainID, 0, len(g.Y))
	for id := range g.Y {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeIDs returns the distinct node ids across all X-chains in
// lexicographic order.
// Complexity: O(N log N) where N is the total number of X entries.
func (g *Graph) NodeIDs() []NodeID {
	seen := make(map[NodeID]struct{})
	ids := make([]NodeID, 0)
	for _, nodes := range g.X {
		for _, n := range nodes {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			ids = append(ids, n)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	for id, nodes := range g.X {
		out.X[id] = append([]NodeID(nil), nodes...)
	}
	for id, members := range g.Y {
		out.Y[id] = append([]YMember(nil), members...)
	}

	return out
}
