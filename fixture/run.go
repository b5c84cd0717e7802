// SPDX-License-Identifier: MIT
// Package: xychain/fixture
//
// run.go — evaluating one fixture against the decode/fold/encode pipeline.

package fixture

import (
	"fmt"

	"github.com/katalvlaran/xychain/chain"
	"github.com/katalvlaran/xychain/grid"
)

// Result is the outcome of running one fixture.
type Result struct {
	Name string
	Path string

	// Kind is what the pipeline produced: ExpectOK or an error kind.
	Kind string
	// Got is the re-encoded grid; empty unless the fold succeeded.
	Got string
	// Digest is the snapshot digest; empty unless the fold succeeded.
	Digest string
	// Err is nil when the fixture met its expectation. It wraps ErrMismatch
	// or ErrInvalidFixture otherwise.
	Err error
}

// Passed reports whether the fixture met its expectation.
func (r Result) Passed() bool { return r.Err == nil }

// Run decodes the grid, appends the extra events, folds the result with
// opts and compares the outcome against the expectation.
func (f *Fixture) Run(opts ...chain.Option) Result {
	res := Result{Name: f.Name, Path: f.Path}

	expect := f.Expect
	if expect == "" {
		expect = ExpectOK
	}

	events, err := grid.Decode(f.Grid)
	var g *chain.Graph
	if err == nil {
		events = append(events, Events(f.Append)...)
		all := append([]chain.Option(nil), opts...)
		if f.Lenient {
			all = append(all, chain.WithLenientIdentity())
		}
		g, err = chain.Reduce(events, all...)
	}
	res.Kind = KindOf(err)
	if g != nil {
		res.Got = grid.Encode(g)
		res.Digest = g.Digest()
	}

	if res.Kind != expect {
		res.Err = fmt.Errorf("%s: expected %s, got %s (%v): %w", f.Name, expect, res.Kind, err, ErrMismatch)
		return res
	}
	if expect != ExpectOK {
		return res
	}

	want := f.Want
	if want == "" {
		want = f.Grid
	}
	if w := grid.Normalize(want); w != res.Got {
		res.Err = fmt.Errorf("%s: grid differs\nwant:\n%s\ngot:\n%s\n%w", f.Name, w, res.Got, ErrMismatch)
		return res
	}
	if f.Digest != "" && f.Digest != res.Digest {
		res.Err = fmt.Errorf("%s: digest %s, want %s: %w", f.Name, res.Digest, f.Digest, ErrMismatch)
	}

	return res
}
