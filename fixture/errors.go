// SPDX-License-Identifier: MIT
// Package: xychain/fixture
//
// errors.go — sentinels and the expect-kind table.

package fixture

import (
	"errors"
	"sort"

	"github.com/katalvlaran/xychain/chain"
	"github.com/katalvlaran/xychain/grid"
)

var (
	// ErrInvalidFixture indicates a fixture document failed to parse or validate.
	ErrInvalidFixture = errors.New("fixture: invalid fixture")

	// ErrMismatch indicates a fixture ran but its outcome differs from the expectation.
	ErrMismatch = errors.New("fixture: outcome mismatch")
)

// ExpectOK is the expectation of a fixture whose fold must succeed.
const ExpectOK = "ok"

// kindOther names an error that matches none of the known sentinels.
const kindOther = "error"

// kinds maps expect values to the sentinel they denote. KindOf checks them
// in the order of kindOrder.
var kinds = map[string]error{
	"duplicate_node":               chain.ErrDuplicateNode,
	"duplicate_x_chain_in_y_chain": chain.ErrDuplicateXChainInYChain,
	"unknown_x_chain":              chain.ErrUnknownXChain,
	"node_not_found_in_x_chain":    chain.ErrNodeNotFoundInXChain,
	"fixed_identity_violation":     chain.ErrFixedIdentityViolation,
	"empty_id":                     chain.ErrEmptyID,
	"unknown_event":                chain.ErrUnknownEvent,
	"malformed_grid":               grid.ErrMalformedGrid,
}

var kindOrder = func() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}()

func knownKind(kind string) bool {
	_, ok := kinds[kind]
	return ok
}

// Kinds lists the accepted error expectations in sorted order.
func Kinds() []string {
	return append([]string(nil), kindOrder...)
}

// KindOf classifies err: ExpectOK for nil, the matching kind for a known
// sentinel, "error" otherwise.
func KindOf(err error) string {
	if err == nil {
		return ExpectOK
	}
	for _, k := range kindOrder {
		if errors.Is(err, kinds[k]) {
			return k
		}
	}

	return kindOther
}
