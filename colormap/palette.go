// SPDX-License-Identifier: MIT
// Package: hyperprep/colormap
//
// palette.go - palette providers.
//
// Contract:
//   • A Provider returns exactly n colors for (name, n), or an error.
//   • Providers are read-only: the same instance may serve concurrent calls.
//   • The default provider synthesizes nothing itself beyond sampling: hue
//     wheels come from go-colorful, named tables from ColorBrewer.

package colormap

import (
	"image/color"
	"math"
	"strings"

	"github.com/aclements/go-gg/palette/brewer"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is the palette Vals2Colors uses when none is named.
const DefaultPalette = "GnBu_d"

const opPalette = "Palette"

// Provider resolves a palette name into exactly n colors.
type Provider interface {
	Palette(name string, n int) ([]colorful.Color, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(name string, n int) ([]colorful.Color, error)

// Palette calls f(name, n).
func (f ProviderFunc) Palette(name string, n int) ([]colorful.Color, error) { return f(name, n) }

// Hue-wheel parameters (lightness/saturation) for the "hls" and "husl" families.
const (
	hueOffset      = 0.01
	hlsLightness   = 0.6
	hlsSaturation  = 0.65
	huslSaturation = 0.9
	huslLightness  = 0.65
	huslHueSpan    = 359.0
)

// darkAnchor is the color "_d" palettes fade into.
const darkAnchor = "#333333"

// blendPrefix introduces an explicit color list: "blend:#aa0000,#0000aa".
const blendPrefix = "blend:"

// qualitative ColorBrewer sets are sampled by taking their first colors in
// order instead of interpolating.
var qualitative = map[string]bool{
	"Accent": true, "Dark2": true, "Paired": true, "Pastel1": true,
	"Pastel2": true, "Set1": true, "Set2": true, "Set3": true,
}

// Default returns the built-in Provider.
func Default() Provider { return defaultProvider{} }

type defaultProvider struct{}

// Palette implements Provider.
func (defaultProvider) Palette(name string, n int) ([]colorful.Color, error) {
	if n < 1 {
		return nil, colormapErrorf(opPalette, ErrBadResolution, "n=%d", n)
	}
	if strings.HasPrefix(name, blendPrefix) {
		return blendHex(strings.Split(strings.TrimPrefix(name, blendPrefix), ","), n)
	}
	if base, ok := strings.CutSuffix(name, "_d"); ok {
		return darkPalette(base, n)
	}
	if base, ok := strings.CutSuffix(name, "_r"); ok {
		p, err := basePalette(base, n)
		if err != nil {
			return nil, err
		}
		reverse(p)
		return p, nil
	}

	return basePalette(name, n)
}

// basePalette resolves an unsuffixed name.
func basePalette(name string, n int) ([]colorful.Color, error) {
	switch name {
	case "hls":
		return hueWheel(n, func(h float64) colorful.Color {
			return colorful.Hsl(h*360, hlsSaturation, hlsLightness)
		}), nil
	case "husl":
		return hueWheel(n, func(h float64) colorful.Color {
			return colorful.HSLuv(h*huslHueSpan, huslSaturation, huslLightness)
		}), nil
	}

	stops, err := brewerStops(name)
	if err != nil {
		return nil, err
	}
	out := make([]colorful.Color, n)
	if qualitative[name] {
		for i := range out {
			out[i] = stops[i%len(stops)]
		}
		return out, nil
	}
	// Sequential and diverging maps are sampled at interior points so neither
	// extreme (often near-white) is used.
	for i := range out {
		out[i] = gradient(stops, float64(i+1)/float64(n+1))
	}

	return out, nil
}

// darkPalette blends two mid colors of base towards darkAnchor.
func darkPalette(base string, n int) ([]colorful.Color, error) {
	reversed := false
	if b, ok := strings.CutSuffix(base, "_r"); ok {
		base, reversed = b, true
	}
	ends, err := basePalette(base, 2)
	if err != nil {
		return nil, err
	}
	anchor, _ := colorful.Hex(darkAnchor)
	stops := append(ends, anchor)
	if reversed {
		reverse(stops)
	}

	return sampleLinear(stops, n), nil
}

// blendHex linearly blends explicit hex colors.
func blendHex(hexes []string, n int) ([]colorful.Color, error) {
	stops := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(strings.TrimSpace(h))
		if err != nil {
			return nil, colormapErrorf(opPalette, ErrUnknownPalette, "bad color %q", h)
		}
		stops = append(stops, c)
	}
	if len(stops) == 0 {
		return nil, colormapErrorf(opPalette, ErrUnknownPalette, "empty blend")
	}

	return sampleLinear(stops, n), nil
}

// brewerStops returns the richest ColorBrewer variant of name.
func brewerStops(name string) ([]colorful.Color, error) {
	variants, ok := brewer.ByName[name]
	if !ok {
		return nil, colormapErrorf(opPalette, ErrUnknownPalette, "%q", name)
	}
	best := -1
	for levels := range variants {
		if levels > best {
			best = levels
		}
	}
	var stops []colorful.Color
	for _, c := range variants[best] {
		stops = append(stops, fromColor(c))
	}

	return stops, nil
}

// fromColor converts any image/color value to an opaque colorful.Color.
func fromColor(c color.Color) colorful.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)

	return colorful.Color{R: float64(rgba.R) / 255, G: float64(rgba.G) / 255, B: float64(rgba.B) / 255}
}

// hueWheel spaces n hues evenly around the circle starting at hueOffset.
func hueWheel(n int, at func(h float64) colorful.Color) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		h := math.Mod(float64(i)/float64(n)+hueOffset, 1)
		out[i] = at(h).Clamped()
	}

	return out
}

// sampleLinear samples the gradient through stops at n evenly spaced points
// including both ends.
func sampleLinear(stops []colorful.Color, n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		out[i] = gradient(stops, x)
	}

	return out
}

// gradient interpolates linearly in sRGB between evenly spaced stops, x ∈ [0,1].
func gradient(stops []colorful.Color, x float64) colorful.Color {
	if len(stops) == 1 || x <= 0 {
		return stops[0]
	}
	pos := x * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}

	return stops[i].BlendRgb(stops[i+1], pos-float64(i)).Clamped()
}

func reverse(cs []colorful.Color) {
	for l, r := 0, len(cs)-1; l < r; l, r = l+1, r-1 {
		cs[l], cs[r] = cs[r], cs[l]
	}
}
