// SPDX-License-Identifier: MIT
// Package chain_test contains fixtures shared by the chain tests.
package chain_test

import "github.com/katalvlaran/xychain/chain"

// xa builds an XAdded appending node id to X-chain c.
func xa(id, c string) chain.Event {
	return chain.XAdded{ID: chain.NodeID(id), ChainID: chain.XChainID(c)}
}

// ya builds a YAdded tagging node id of X-chain x into Y-chain y.
func ya(id, x, y string) chain.Event {
	return chain.YAdded{ID: chain.NodeID(id), XChainID: chain.XChainID(x), YChainID: chain.YChainID(y)}
}

// scenarioEvents is the event sequence of the reference grid
//
//	o-x-o-x-o-x
//	  |       |
//	o-x-o     |
//	  |       |
//	  x-------x-o-o
//
// in decoder order: every XAdded first, then every YAdded by column.
func scenarioEvents() []chain.Event {
	return []chain.Event{
		xa("0", "0"), xa("1", "0"), xa("2", "0"), xa("3", "0"), xa("4", "0"), xa("5", "0"),
		xa("0", "1"), xa("1", "1"), xa("2", "1"),
		xa("1", "2"), xa("5", "2"), xa("6", "2"), xa("7", "2"),
		ya("1", "0", "1"), ya("1", "1", "1"), ya("1", "2", "1"),
		ya("3", "0", "3"),
		ya("5", "0", "5"), ya("5", "2", "5"),
	}
}

// scenarioGraph is the snapshot Reduce(scenarioEvents()) must produce.
func scenarioGraph() *chain.Graph {
	return &chain.Graph{
		X: map[chain.XChainID][]chain.NodeID{
			"0": {"0", "1", "2", "3", "4", "5"},
			"1": {"0", "1", "2"},
			"2": {"1", "5", "6", "7"},
		},
		Y: map[chain.YChainID][]chain.YMember{
			"1": {{XChainID: "0", NodeID: "1"}, {XChainID: "1", NodeID: "1"}, {XChainID: "2", NodeID: "1"}},
			"3": {{XChainID: "0", NodeID: "3"}},
			"5": {{XChainID: "0", NodeID: "5"}, {XChainID: "2", NodeID: "5"}},
		},
	}
}

// with returns a fresh copy of base with extra appended.
func with(base []chain.Event, extra ...chain.Event) []chain.Event {
	out := make([]chain.Event, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
