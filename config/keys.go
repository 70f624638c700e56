// SPDX-License-Identifier: MIT
// Package: hyperprep/config
//
// keys.go - recognized option names and their kinds.

package config

// Recognized option names.
const (
	KeyNormalize    = "normalize"
	KeyNDims        = "ndims"
	KeyStyle        = "style"
	KeyPalette      = "palette"
	KeyNColors      = "n_colors"
	KeyAnimate      = "animate"
	KeyZoom         = "zoom"
	KeyChemtrails   = "chemtrails"
	KeyRotations    = "rotations"
	KeyDuration     = "duration"
	KeyFrameRate    = "frame_rate"
	KeyTailDuration = "tail_duration"
	KeyReturnData   = "return_data"
	KeySave         = "save"
	KeyShow         = "show"
	KeyLegend       = "legend"
	KeyLabels       = "labels"
	KeyExplore      = "explore"
	KeyPicker       = "picker"
	KeySavePath     = "save_path"
	KeyRes          = "res"
	KeyInterpVal    = "interp_val"
	KeyBackend      = "backend"
	KeyHue          = "hue"
)

// Renderer backends chosen from the show flag when no backend is given.
const (
	BackendInteractive = "interactive"
	BackendAgg         = "agg"
)

type kind uint8

const (
	kindBool kind = iota
	kindInt
	kindNumber // int or float64
	kindString
	kindSeq // nil or any slice/array
)

func (k kind) String() string {
	switch k {
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	default:
		return "sequence"
	}
}

// kinds lists every hyper option. Anything not in this table is a renderer
// style option.
var kinds = map[string]kind{
	KeyNormalize:    kindBool,
	KeyNDims:        kindInt,
	KeyStyle:        kindString,
	KeyPalette:      kindString,
	KeyNColors:      kindInt,
	KeyAnimate:      kindBool,
	KeyZoom:         kindNumber,
	KeyChemtrails:   kindBool,
	KeyRotations:    kindInt,
	KeyDuration:     kindNumber,
	KeyFrameRate:    kindInt,
	KeyTailDuration: kindNumber,
	KeyReturnData:   kindBool,
	KeySave:         kindBool,
	KeyShow:         kindBool,
	KeyLegend:       kindBool,
	KeyLabels:       kindSeq,
	KeyExplore:      kindBool,
	KeyPicker:       kindBool,
	KeySavePath:     kindString,
	KeyRes:          kindInt,
	KeyInterpVal:    kindInt,
	KeyBackend:      kindString,
	KeyHue:          kindSeq,
}

// IsHyper reports whether key names an option consumed by preparation
// rather than forwarded to the renderer.
func IsHyper(key string) bool {
	_, ok := kinds[key]
	return ok
}
