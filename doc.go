// Package xychain builds two-axis chain graphs from append-only event logs
// and renders them as ASCII grids.
//
// An X-chain is an ordered, duplicate-free sequence of nodes. A Y-chain
// links one node identity across several X-chains. Both grow only through
// events, and every event is checked before it is committed.
//
// Subpackages:
//
//	chain/   — events, the insert-once fold (Reduce, ReduceParallel), Graph snapshots, digests
//	grid/    — Normalize, Decode (grid → events), Encode (graph → grid)
//	fixture/ — YAML scenario files: parsing, validation, discovery, concurrent runs
//	cmd/xychain — CLI over the three packages
//
// Quick example:
//
//	o-x-o-x-o-x
//	  |       |
//	o-x-o     |
//	  |       |
//	  x-------x-o-o
//
// Three X-chains (rows) and three Y-chains (tagged columns 1, 3 and 5).
package xychain
