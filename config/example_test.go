// SPDX-License-Identifier: MIT

package config_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperprep/config"
)

func ExampleResolve() {
	xs := []*mat.Dense{mat.NewDense(2, 2, []float64{0, 1, 2, 3})}

	set, err := config.Resolve(xs, config.Set{"save_path": "out.png", "colors": "k"})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(set[config.KeyNDims], set[config.KeySave], set[config.KeyBackend])
	fmt.Println(config.RemoveHyperArgs(set))
	// Output:
	// 2 true interactive
	// map[color:k]
}
