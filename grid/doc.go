// Package grid converts between chain graphs and ASCII grids used as
// human-readable test fixtures.
//
// Format:
//
//	o-x-o-x-o-x      o  node            x  node tagged into a Y-chain
//	  |       |      -  horizontal link |  vertical link
//	o-x-o     |      ' ' blank
//	  |       |
//	  x-------x-o-o
//
//   - Even rows hold X-chains (row r is X-chain r/2); even columns hold nodes
//     (column c is node c/2).
//   - Odd columns carry horizontal links, odd rows carry vertical links.
//   - Link symbols may also sit in cell positions: Encode draws them there to
//     bridge a gap, and Decode reads them as empty cells.
//
// Pipeline:
//
//	text ─Decode→ []chain.Event ─chain.Reduce→ *chain.Graph ─Encode→ text
//
// Round-tripping a fixture through this pipeline must reproduce Normalize(text).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for all decode failures.
//   - ErrMalformedLink: a token violates positional parity.
//   - ErrUnknownToken:  a rune outside the five tokens.
//
// Both carry a *PositionError with the zero-based row and column.
package grid
