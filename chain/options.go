// SPDX-License-Identifier: MIT
// Package: xychain/chain
//
// options.go — functional options for the builder.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless inputs; folds never panic.
//   • newConfig applies options in order; later options override earlier.
//
// Defaults:
//   • logger      = zap.NewNop()
//   • lenient     = false (fixed Y identity is enforced)
//   • parallelism = runtime.GOMAXPROCS(0)

package chain

import (
	"runtime"

	"go.uber.org/zap"
)

// Option customizes a fold before the first event is applied.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	lenient     bool
	parallelism int
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:      zap.NewNop(),
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes rejection and fold diagnostics to l at Debug level.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("chain: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithLenientIdentity disables the fixed-identity check on Y-chains: a
// YAdded presenting a different node id for a known Y-chain is accepted, and
// the snapshot keeps reporting the identity fixed by the first event.
func WithLenientIdentity() Option {
	return func(c *config) { c.lenient = true }
}

// WithParallelism bounds the number of X-chain partitions ReduceParallel
// inserts concurrently. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("chain: WithParallelism(n<1)")
	}
	return func(c *config) { c.parallelism = n }
}
