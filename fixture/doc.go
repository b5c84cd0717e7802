// Package fixture runs YAML scenario files through the grid and chain
// packages.
//
// A fixture names a grid, optional events appended after the decoded ones,
// and the expected outcome:
//
//	name: missing node
//	grid: |
//	  o-x
//	    |
//	    x-o
//	append:
//	  - {kind: yAdded, id: "9", xChainId: "1", yChainId: "9"}
//	expect: node_not_found_in_x_chain
//
// An "ok" fixture must also re-encode to its grid (or to want, when given)
// and may pin the snapshot digest.
//
// Discover finds files with doublestar patterns; Runner evaluates them with
// bounded concurrency and reports each outcome as a Result.
package fixture
