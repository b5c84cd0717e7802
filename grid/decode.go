// SPDX-License-Identifier: MIT
// Package: xychain/grid
//
// decode.go — grid text → event sequence.
//
// Layout: even row and even column is a cell; odd rows carry vertical links;
// odd columns carry horizontal links. Cell (r, c) is node c/2 of X-chain r/2.
// A tagged cell also joins Y-chain c/2 with fixed identity c/2 (fixtures
// assume one Y-chain per column).

package grid

import (
	"strconv"

	"github.com/katalvlaran/xychain/chain"
)

// Parse normalizes text and returns its token matrix, checking every
// position against the parity rules.
// Complexity: O(len(text)).
func Parse(text string, opts ...DecodeOption) ([][]Token, error) {
	cfg := newDecodeConfig(opts...)
	rows := normalizeRows(text)
	out := make([][]Token, len(rows))
	for r, row := range rows {
		line := make([]Token, 0, len(row))
		c := 0
		for _, ch := range row {
			t, ok := ParseToken(ch)
			if !ok {
				return nil, &PositionError{Row: r, Col: c, Rune: ch, Err: ErrUnknownToken}
			}
			if !cfg.allowed(r, c, t) {
				return nil, &PositionError{Row: r, Col: c, Rune: ch, Err: ErrMalformedLink}
			}
			line = append(line, t)
			c++
		}
		out[r] = line
	}

	return out, nil
}

// allowed applies the parity rules to token t at (r, c).
func (cfg decodeConfig) allowed(r, c int, t Token) bool {
	oddRow, oddCol := r%2 == 1, c%2 == 1
	switch {
	case oddRow && oddCol:
		return t == Blank
	case oddCol:
		return t == HLink || t == Blank
	case oddRow:
		return t == VLink || t == Blank
	default:
		return !(cfg.strictCells && t.IsLink())
	}
}

// Decode turns a grid into an event sequence that rebuilds it.
//
// Every XAdded is emitted first (row-major), then every YAdded (column by
// column, top to bottom): X-chains are independent, Y-chains depend on them.
// Blank and link positions emit nothing.
// Complexity: O(len(text)).
func Decode(text string, opts ...DecodeOption) ([]chain.Event, error) {
	tokens, err := Parse(text, opts...)
	if err != nil {
		return nil, err
	}

	var xs []chain.Event
	tagged := make(map[int][]int) // column index → row indices, top to bottom
	maxCol := -1
	for r := 0; r < len(tokens); r += 2 {
		for c := 0; c < len(tokens[r]); c += 2 {
			t := tokens[r][c]
			if !t.IsNode() {
				continue
			}
			xi, ci := r/2, c/2
			xs = append(xs, chain.XAdded{ID: nodeID(ci), ChainID: xChainID(xi)})
			if t == NodeTagged {
				tagged[ci] = append(tagged[ci], xi)
				maxCol = max(maxCol, ci)
			}
		}
	}

	events := xs
	for ci := 0; ci <= maxCol; ci++ {
		for _, xi := range tagged[ci] {
			events = append(events, chain.YAdded{
				ID:       nodeID(ci),
				XChainID: xChainID(xi),
				YChainID: chain.YChainID(strconv.Itoa(ci)),
			})
		}
	}

	return events, nil
}

func nodeID(col int) chain.NodeID    { return chain.NodeID(strconv.Itoa(col)) }
func xChainID(row int) chain.XChainID { return chain.XChainID(strconv.Itoa(row)) }
