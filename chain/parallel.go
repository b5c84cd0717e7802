// SPDX-License-Identifier: MIT
// Package: xychain/chain
//
// parallel.go — optional concurrent X phase.
//
// X-chains have no ordering dependency on each other, so when every XAdded
// precedes every YAdded the X phase can be split per chain. Partitions are
// inserted concurrently and reconciled by the earliest failing input index,
// which makes the outcome identical to Reduce. The Y phase stays sequential.

package chain

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// indexedNode is one XAdded of a partition together with its input index.
type indexedNode struct {
	index int
	event XAdded
}

// partition is the X phase of a single chain.
type partition struct {
	chain  XChainID
	events []indexedNode

	// filled by the worker
	nodes   *onceSet[NodeID]
	failAt  int
	failErr error
}

// ReduceParallel computes the same result as Reduce, inserting X-chains
// concurrently (bounded by WithParallelism) when the input is phase-ordered.
// Inputs that interleave YAdded before XAdded fall back to Reduce.
// Cancellation of ctx aborts the fold with ctx.Err() wrapped.
// Complexity: O(len(events)) work, O(max partition) span for the X phase.
func ReduceParallel(ctx context.Context, events []Event, opts ...Option) (*Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ReduceParallel: %w", err)
	}
	cfg := newConfig(opts...)
	xs, ys, ok := Split(events)
	if !ok {
		cfg.logger.Debug("events not phase-ordered; folding sequentially", zap.Int("events", len(events)))
		return Reduce(events, opts...)
	}

	parts := partitionX(xs)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.parallelism)
	for _, p := range parts {
		p := p
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			p.insert()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("ReduceParallel: %w", err)
	}

	// Reconcile: the failure with the smallest input index is the one a
	// sequential fold would have hit first.
	var first *partition
	for _, p := range parts {
		if p.failErr != nil && (first == nil || p.failAt < first.failAt) {
			first = p
		}
	}
	if first != nil {
		e := xs[first.failAt]
		cfg.logger.Debug("event rejected",
			zap.Int("index", first.failAt),
			zap.Stringer("event", e),
			zap.Error(first.failErr))
		return nil, fmt.Errorf("ReduceParallel: %w", &EventError{Index: first.failAt, Event: e, Err: first.failErr})
	}

	s := newState(cfg)
	for _, p := range parts {
		s.xs[p.chain] = p.nodes
	}
	s.applied = len(xs)
	for _, e := range ys {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("ReduceParallel: %w", err)
		}
		if err := s.Apply(e); err != nil {
			return nil, fmt.Errorf("ReduceParallel: %w", err)
		}
	}
	cfg.logger.Debug("parallel fold complete",
		zap.Int("events", s.applied),
		zap.Int("partitions", len(parts)),
		zap.Int("yChains", len(s.ys)))

	return s.Snapshot(), nil
}

// partitionX groups the X phase by chain, keeping input order within each
// chain. Partitions are sorted by chain id for deterministic scheduling.
func partitionX(xs []XAdded) []*partition {
	byChain := make(map[XChainID]*partition)
	parts := make([]*partition, 0)
	for i, e := range xs {
		p, ok := byChain[e.ChainID]
		if !ok {
			p = &partition{chain: e.ChainID}
			byChain[e.ChainID] = p
			parts = append(parts, p)
		}
		p.events = append(p.events, indexedNode{index: i, event: e})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].chain < parts[j].chain })

	return parts
}

// insert builds the chain's onceSet, stopping at the first rejected event.
func (p *partition) insert() {
	p.nodes = newOnceSet[NodeID]()
	for _, in := range p.events {
		if err := ValidateEvent(in.event); err != nil {
			p.failAt, p.failErr = in.index, err
			return
		}
		if !p.nodes.add(in.event.ID) {
			p.failAt, p.failErr = in.index, duplicateNodeErr(in.event)
			return
		}
	}
}
