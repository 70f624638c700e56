// SPDX-License-Identifier: MIT

package series_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperprep/series"
)

// ExampleFrame_Matrix shows how text columns become indicator columns.
func ExampleFrame_Matrix() {
	f, err := series.NewFrame(
		series.Numeric("t", 0, 1, 2),
		series.Text("state", "on", "off", "on"),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	m, _ := f.Matrix()
	fmt.Println(f.ColumnNames())
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		fmt.Println(mat.Row(nil, i, m))
	}
	// Output:
	// [t state_off state_on]
	// [0 0 1]
	// [1 1 0]
	// [2 0 1]
}

// ExampleStack demonstrates the stacked view used for global statistics.
func ExampleStack() {
	a := mat.NewDense(2, 1, []float64{1, 2})
	b := mat.NewDense(1, 1, []float64{3})

	s, err := series.Stack([]*mat.Dense{a, b})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s.RawMatrix().Data)
	// Output:
	// [1 2 3]
}
