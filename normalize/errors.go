// SPDX-License-Identifier: MIT
// Package: hyperprep/normalize
//
// errors.go - sentinel errors for the normalize package.

package normalize

import (
	"fmt"

	"github.com/katalvlaran/hyperprep"
)

// ErrConstantData indicates Scale was asked to rescale a dataset whose values
// are all identical (zero range, the mapping would divide by zero). Callers
// must special-case constant data.
var ErrConstantData = fmt.Errorf("normalize: all values identical, range is zero: %w", hyperprep.ErrDegenerateInput)

// normalizeErrorf tags err with the operation name.
func normalizeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
