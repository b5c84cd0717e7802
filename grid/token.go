// SPDX-License-Identifier: MIT
// Package: xychain/grid
//
// token.go — the five grid tokens.

package grid

// Token is one character of the grid.
type Token rune

const (
	// NodePlain is a node without a Y-tag.
	NodePlain Token = 'o'
	// NodeTagged is a node that participates in a Y-chain.
	NodeTagged Token = 'x'
	// HLink connects horizontally adjacent cells.
	HLink Token = '-'
	// VLink connects vertically adjacent cells.
	VLink Token = '|'
	// Blank is empty space; valid anywhere.
	Blank Token = ' '
)

// ParseToken maps r to its Token; ok is false for unrecognized runes.
func ParseToken(r rune) (Token, bool) {
	switch t := Token(r); t {
	case NodePlain, NodeTagged, HLink, VLink, Blank:
		return t, true
	default:
		return 0, false
	}
}

// IsNode reports whether t marks a node.
func (t Token) IsNode() bool { return t == NodePlain || t == NodeTagged }

// IsLink reports whether t is a link symbol.
func (t Token) IsLink() bool { return t == HLink || t == VLink }

// String renders the token as its grid character.
func (t Token) String() string { return string(rune(t)) }
