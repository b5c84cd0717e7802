// SPDX-License-Identifier: MIT
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/xychain/chain"
	"github.com/katalvlaran/xychain/grid"
)

// ExampleDecode turns a two-row fixture into events and rebuilds it.
//
//	o-x
//	  |
//	  x-o
//
// Row 0 is X-chain "0" with nodes 0 and 1; row 2 is X-chain "1" with nodes 1
// and 2. The tagged column joins both X-chains in Y-chain "1".
func ExampleDecode() {
	text := "o-x\n  |\n  x-o"

	events, err := grid.Decode(text)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range events {
		fmt.Println(e)
	}

	g, err := chain.Reduce(events)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(grid.Encode(g) == grid.Normalize(text))

	// Output:
	// xAdded{id=0 chain=0}
	// xAdded{id=1 chain=0}
	// xAdded{id=1 chain=1}
	// xAdded{id=2 chain=1}
	// yAdded{id=1 x=0 y=1}
	// yAdded{id=1 x=1 y=1}
	// true
}
