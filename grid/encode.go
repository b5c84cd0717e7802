// SPDX-License-Identifier: MIT
// Package: xychain/grid
//
// encode.go — graph snapshot → grid text.
//
// Rows are X-chains and columns are distinct nodes, both in lexicographic
// id order. Empty cells between two nodes of a row get a horizontal bridge;
// empty cells between two occupied cells of a column get a vertical bridge,
// which wins the cell when both apply. Bridges never extend past either end.

package grid

import (
	"strings"

	"github.com/katalvlaran/xychain/chain"
)

// pairKey identifies an (X-chain, node) cell.
type pairKey struct {
	x chain.XChainID
	n chain.NodeID
}

// span is the closed range of occupied indices along one row or column.
type span struct{ lo, hi int }

func (s *span) add(i int) {
	if s.lo < 0 || i < s.lo {
		s.lo = i
	}
	if i > s.hi {
		s.hi = i
	}
}

// inside reports whether i lies strictly between two occupied indices.
func (s span) inside(i int) bool { return s.lo >= 0 && s.lo < i && i < s.hi }

// Encode renders g on a 2H×2W grid and returns it normalized.
//
// A present node is drawn as NodeTagged when its (X-chain, node) pair
// belongs to a Y-chain (the first one by Y-chain id), else NodePlain. It gets
// a link to the right unless it is the last node of its X-chain, and a link
// below unless it is the last member of its Y-chain. "Last" compares the
// first occurrence with the final position, so snapshots that were built
// without duplicate checks render their duplicates as extra links.
// Complexity: O(H·W + total entries).
func Encode(g *chain.Graph) string {
	xIDs := g.XChainIDs()
	nodes := g.NodeIDs()
	h, w := len(xIDs), len(nodes)
	if h == 0 || w == 0 {
		return ""
	}

	col := make(map[chain.NodeID]int, w)
	for j, n := range nodes {
		col[n] = j
	}

	// position[i][j] is the first index of node j in X-chain i, or -1.
	position := make([][]int, h)
	rows := make([]span, h)
	cols := make([]span, w)
	for j := range cols {
		cols[j] = span{lo: -1, hi: -1}
	}
	for i, id := range xIDs {
		position[i] = make([]int, w)
		for j := range position[i] {
			position[i][j] = -1
		}
		rows[i] = span{lo: -1, hi: -1}
		for k, n := range g.X[id] {
			j := col[n]
			if position[i][j] < 0 {
				position[i][j] = k
			}
			rows[i].add(j)
			cols[j].add(i)
		}
	}

	// lastY[pair] reports whether the pair is the last member of the first
	// Y-chain (by id) that contains it.
	lastY := make(map[pairKey]bool)
	for _, yid := range g.YChainIDs() {
		members := g.Y[yid]
		first := make(map[pairKey]int, len(members))
		for k, m := range members {
			key := pairKey{m.XChainID, m.NodeID}
			if _, seen := first[key]; !seen {
				first[key] = k
			}
		}
		for key, k := range first {
			if _, claimed := lastY[key]; !claimed {
				lastY[key] = k == len(members)-1
			}
		}
	}

	m := make([][]rune, 2*h)
	for i := range m {
		m[i] = []rune(strings.Repeat(string(Blank), 2*w))
	}
	for i, id := range xIDs {
		last := len(g.X[id]) - 1
		for j, n := range nodes {
			r, c := 2*i, 2*j
			if k := position[i][j]; k >= 0 {
				isLastY, tagged := lastY[pairKey{id, n}]
				m[r][c] = rune(NodePlain)
				if tagged {
					m[r][c] = rune(NodeTagged)
					if !isLastY {
						m[r+1][c] = rune(VLink)
					}
				}
				if k != last {
					m[r][c+1] = rune(HLink)
				}
				continue
			}
			if rows[i].inside(j) {
				m[r][c], m[r][c+1] = rune(HLink), rune(HLink)
			}
			if cols[j].inside(i) {
				m[r][c], m[r+1][c] = rune(VLink), rune(VLink)
			}
		}
	}

	lines := make([]string, len(m))
	for i, row := range m {
		lines[i] = string(row)
	}

	return Normalize(strings.Join(lines, "\n"))
}
