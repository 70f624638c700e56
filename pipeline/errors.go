// SPDX-License-Identifier: MIT
// Package: hyperprep/pipeline
//
// errors.go - sentinel errors for option-driven stages.

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/hyperprep"
)

var (
	// ErrLabelLength indicates labels that are neither one per sample nor
	// one per series.
	ErrLabelLength = fmt.Errorf("pipeline: labels must be given per sample or per series: %w", hyperprep.ErrLengthMismatch)

	// ErrLabelType indicates a label value that cannot be used as a map key.
	ErrLabelType = fmt.Errorf("pipeline: labels must be comparable values: %w", hyperprep.ErrConfiguration)

	// ErrHueLength indicates hue values not given one per sample.
	ErrHueLength = fmt.Errorf("pipeline: hue must hold one value per sample: %w", hyperprep.ErrLengthMismatch)
)

// stageErrorf tags err with the failing stage.
func stageErrorf(stage string, err error) error {
	return fmt.Errorf("Prepare: %s: %w", stage, err)
}
