// Package colormap quantizes continuous values into equal-width bins and maps
// bins to colors through a palette.
//
// 🚀 Binning rule
//
//	Given values v and resolution res, the bin edges are res+1 evenly spaced
//	points from min(v) to max(v)+1. Each value takes the index of the
//	half-open interval [edge_k, edge_k+1) that contains it, clamped into
//	[0, res-1]. The extra unit at the top keeps the maximum inside the range.
//
//	Vals2Bins([0 5 10], 10) == [0 4 9]  (edges 0, 1.1, …, 11)
//
// 🎨 Palettes
//
//	Vals2Colors uses exactly the same binning and then looks every bin up in
//	a res-long palette obtained from a Provider. The default provider knows:
//	  • "hls", "husl"                 - evenly spaced hues (go-colorful)
//	  • ColorBrewer names ("GnBu", …) - from go-gg's brewer tables
//	  • "<name>_r"                    - reversed
//	  • "<name>_d"                    - dark variant blended towards #333333
//	  • "blend:#rrggbb,#rrggbb,…"     - linear blend of explicit colors
//
// Colors are colorful.Color values: R, G, B in [0, 1].
package colormap
