// SPDX-License-Identifier: MIT

package colormap_test

import (
	"fmt"

	"github.com/katalvlaran/hyperprep/colormap"
)

// ExampleVals2Bins reproduces the canonical binning example: edges 0, 1.1, …, 11.
func ExampleVals2Bins() {
	bins, err := colormap.Vals2Bins([]float64{0, 5, 10}, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(bins)
	// Output:
	// [0 4 9]
}

// ExampleVals2Colors maps values onto a two-color blend.
func ExampleVals2Colors() {
	colors, err := colormap.Vals2Colors([]float64{0, 10}, "blend:#000000,#ffffff", 2, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range colors {
		fmt.Println(c.Hex())
	}
	// Output:
	// #000000
	// #ffffff
}
