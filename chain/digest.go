// SPDX-License-Identifier: MIT
// Package: xychain/chain
//
// digest.go — content fingerprint of a Graph.

package chain

import (
	"bytes"
	"encoding/hex"
	"strconv"

	"lukechampine.com/blake3"
)

// Canonical renders g as a deterministic line format:
//
//	x "<chain>" "<node>" "<node>" ...
//	y "<ychain>" "<xchain>"="<node>" ...
//
// X lines come first, then Y lines, each sorted by id. Node order within an
// X-chain and member order within a Y-chain are preserved, since both are
// observable in the snapshot.
func (g *Graph) Canonical() []byte {
	var buf bytes.Buffer
	for _, id := range g.XChainIDs() {
		buf.WriteString("x ")
		buf.WriteString(strconv.Quote(string(id)))
		for _, n := range g.X[id] {
			buf.WriteByte(' ')
			buf.WriteString(strconv.Quote(string(n)))
		}
		buf.WriteByte('\n')
	}
	for _, id := range g.YChainIDs() {
		buf.WriteString("y ")
		buf.WriteString(strconv.Quote(string(id)))
		for _, m := range g.Y[id] {
			buf.WriteByte(' ')
			buf.WriteString(strconv.Quote(string(m.XChainID)))
			buf.WriteByte('=')
			buf.WriteString(strconv.Quote(string(m.NodeID)))
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// Digest returns the hex BLAKE3-256 of Canonical(). Two graphs have the same
// digest exactly when their snapshots are equal.
func (g *Graph) Digest() string {
	sum := blake3.Sum256(g.Canonical())
	return hex.EncodeToString(sum[:])
}
