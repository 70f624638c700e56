// SPDX-License-Identifier: MIT
// Package: hyperprep/broadcast
//
// errors.go - sentinel errors for the broadcast package.

package broadcast

import (
	"fmt"

	"github.com/katalvlaran/hyperprep"
)

var (
	// ErrLengthMismatch indicates a sequence argument whose length is neither
	// 1 nor the series count.
	ErrLengthMismatch = fmt.Errorf("broadcast: arguments must be scalars or sequences as long as the series list: %w", hyperprep.ErrLengthMismatch)

	// ErrAliasConflict indicates both an alias and its canonical option name
	// were supplied (e.g. "colors" and "color").
	ErrAliasConflict = fmt.Errorf("broadcast: option given under both alias and canonical name: %w", hyperprep.ErrConfiguration)
)

// broadcastErrorf tags err with the operation name and a detail.
func broadcastErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
