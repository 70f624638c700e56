// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperprep/config"
	"github.com/katalvlaran/hyperprep/pipeline"
)

// inputFlags are shared by every command that reads CSV data and options.
type inputFlags struct {
	configPath string
	header     bool
	normalize  bool
	animate    bool
	interp     int
	palette    string
	labels     string
	sets       []string
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "TOML option file")
	cmd.Flags().BoolVar(&f.header, "header", false, "first CSV row holds column names")
	cmd.Flags().BoolVar(&f.normalize, "normalize", false, "center and scale all series together")
	cmd.Flags().BoolVar(&f.animate, "animate", false, "upsample series with monotone cubic interpolation")
	cmd.Flags().IntVar(&f.interp, "interp", config.DefaultInterpVal, "interpolated points per input interval")
	cmd.Flags().StringVar(&f.palette, "palette", config.DefaultPalette, "palette for hue colors")
	cmd.Flags().StringVar(&f.labels, "labels", "", "comma separated labels, per sample or per series")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "extra option as key=value (repeatable)")
}

// options merges the option file with flags; flags given on the command
// line win.
func (f *inputFlags) options(cmd *cobra.Command) (config.Set, error) {
	set := config.Set{}
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		set = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("normalize") {
		set[config.KeyNormalize] = f.normalize
	}
	if flags.Changed("animate") {
		set[config.KeyAnimate] = f.animate
	}
	if flags.Changed("interp") {
		set[config.KeyInterpVal] = f.interp
	}
	if flags.Changed("palette") {
		set[config.KeyPalette] = f.palette
	}
	if flags.Changed("labels") {
		set[config.KeyLabels] = strings.Split(f.labels, ",")
	}
	for _, kv := range f.sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("--set %q: want key=value", kv)
		}
		set[k] = parseScalar(v)
	}

	return set, nil
}

// parseScalar reads a --set value as bool, int, float or string, in that
// order.
func parseScalar(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}

func newPrepareCmd(a *app) *cobra.Command {
	var f inputFlags
	cmd := &cobra.Command{
		Use:   "prepare FILE.csv...",
		Short: "Prepare CSV series and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args, f.header)
			if err != nil {
				return err
			}
			user, err := f.options(cmd)
			if err != nil {
				return err
			}
			res, err := pipeline.Prepare(in, user, pipeline.WithLogger(a.log))
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res)
		},
	}
	f.bind(cmd)

	return cmd
}

// document is the JSON shape of a pipeline.Result.
type document struct {
	Config     config.Set       `json:"config"`
	Series     [][][]float64    `json:"series"`
	Categories []int            `json:"categories,omitempty"`
	Bins       []int            `json:"bins,omitempty"`
	Colors     []string         `json:"colors,omitempty"`
	Style      []map[string]any `json:"style"`
}

func writeResult(w io.Writer, res *pipeline.Result) error {
	doc := document{
		Config:     res.Config,
		Series:     make([][][]float64, len(res.Series)),
		Categories: res.Categories,
		Bins:       res.Bins,
		Style:      res.Style,
	}
	for i, s := range res.Series {
		doc.Series[i] = rows(s)
	}
	for _, c := range res.Colors {
		doc.Colors = append(doc.Colors, c.Hex())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

func rows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}

	return out
}
