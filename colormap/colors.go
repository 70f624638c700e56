// SPDX-License-Identifier: MIT
// Package: hyperprep/colormap
//
// colors.go - value → color mapping on top of Vals2Bins.

package colormap

import (
	"github.com/lucasb-eyer/go-colorful"
)

const opVals2Colors = "Vals2Colors"

// Vals2Colors bins vals exactly as Vals2Bins(vals, res) does and returns the
// palette color of every value's bin. A nil provider means Default().
//
// Errors:
//   - Vals2Bins errors (ErrBadResolution, ErrNoValues, ErrNonFinite).
//   - ErrUnknownPalette from the provider.
//   - ErrPaletteSize if the provider does not honor the requested size.
func Vals2Colors(vals []float64, name string, res int, p Provider) ([]colorful.Color, error) {
	bins, err := Vals2Bins(vals, res)
	if err != nil {
		return nil, colormapErrorf(opVals2Colors, err, "")
	}
	if p == nil {
		p = Default()
	}
	pal, err := p.Palette(name, res)
	if err != nil {
		return nil, colormapErrorf(opVals2Colors, err, "")
	}
	if len(pal) != res {
		return nil, colormapErrorf(opVals2Colors, ErrPaletteSize, "got %d colors, want %d", len(pal), res)
	}

	out := make([]colorful.Color, len(bins))
	for i, b := range bins {
		out[i] = pal[b]
	}

	return out, nil
}

// Vals2ColorsNested flattens nested values and maps them as one collection.
func Vals2ColorsNested(vals [][]float64, name string, res int, p Provider) ([]colorful.Color, error) {
	return Vals2Colors(Flatten(vals), name, res, p)
}
