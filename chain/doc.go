// Package chain builds two-axis chain graphs from an append-only event log.
//
// What:
//
//   - An X-chain is a named, directed, duplicate-free sequence of nodes.
//   - A Y-chain is a named, unordered group of X-chains that all share one
//     fixed node identity.
//   - Two events build the graph: XAdded appends a node to an X-chain, and
//     YAdded tags an existing (X-chain, node) pair into a Y-chain.
//
// How:
//
//   - Reduce folds events in order through an explicit State and returns a
//     *Graph snapshot. The first invalid event aborts the fold.
//   - Every insertion goes through an insert-once ordered set, so duplicates
//     are rejected by the insertion itself and not by a later pass.
//   - ReduceParallel is an optional variant that inserts X-chains concurrently
//     and returns the same result as Reduce.
//
// Invariants (enforced per event, atomically):
//
//   - a node appears at most once per X-chain            (ErrDuplicateNode)
//   - a Y-chain references only established X-chains     (ErrUnknownXChain)
//   - a Y-chain references only nodes of that X-chain    (ErrNodeNotFoundInXChain)
//   - an X-chain appears at most once per Y-chain        (ErrDuplicateXChainInYChain)
//   - a Y-chain keeps the node identity it started with  (ErrFixedIdentityViolation,
//     disabled by WithLenientIdentity)
//
// Complexity:
//
//   - Apply: O(1) amortized.  Reduce: O(events + snapshot).
//
// Errors:
//
//   - Rejections are *EventError values carrying the index and the event;
//     errors.Is matches the sentinel, errors.As recovers the position.
package chain
