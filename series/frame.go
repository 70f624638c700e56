// SPDX-License-Identifier: MIT
// Package: hyperprep/series
//
// frame.go - minimal tabular frame and its conversion to a numeric matrix.
//
// Conversion policy (mirrors dummy encoding of tabular libraries):
//   • Numeric columns are copied in column order.
//   • Each text column expands into one indicator column per distinct level,
//     levels sorted lexicographically, appended after all numeric columns.
//   • A level present in a row yields 1, otherwise 0.

package series

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

const opFrameMatrix = "Frame.Matrix"

// Column is a named frame column. Exactly one of Values (numeric) or Levels
// (text) is used; a column with Levels set is treated as text.
type Column struct {
	Name   string
	Values []float64
	Levels []string
}

// IsText reports whether the column is categorical.
func (c Column) IsText() bool { return c.Levels != nil }

// Len returns the number of rows in the column.
func (c Column) Len() int {
	if c.IsText() {
		return len(c.Levels)
	}

	return len(c.Values)
}

// Frame is an ordered set of equally long columns.
type Frame struct {
	Columns []Column
}

// NewFrame builds a Frame and checks that every column has the same length.
func NewFrame(cols ...Column) (*Frame, error) {
	f := &Frame{Columns: cols}
	if _, err := f.rows(); err != nil {
		return nil, err
	}

	return f, nil
}

// Numeric is a convenience constructor for a numeric column.
func Numeric(name string, values ...float64) Column {
	return Column{Name: name, Values: values}
}

// Text is a convenience constructor for a categorical column.
func Text(name string, levels ...string) Column {
	if levels == nil {
		levels = []string{}
	}

	return Column{Name: name, Levels: levels}
}

// Rows returns the common column length.
func (f *Frame) Rows() int {
	n, _ := f.rows()
	return n
}

func (f *Frame) rows() (int, error) {
	if len(f.Columns) == 0 {
		return 0, seriesErrorf(opFrameMatrix, ErrEmpty, "frame has no columns")
	}
	n := f.Columns[0].Len()
	for _, c := range f.Columns[1:] {
		if c.Len() != n {
			return 0, seriesErrorf(opFrameMatrix, ErrRaggedFrame, "column %q has %d rows, want %d", c.Name, c.Len(), n)
		}
	}

	return n, nil
}

// ColumnNames returns the names of the columns Matrix produces, in order.
// Indicator columns are named "<column>_<level>".
func (f *Frame) ColumnNames() []string {
	var names []string
	for _, c := range f.Columns {
		if !c.IsText() {
			names = append(names, c.Name)
		}
	}
	for _, c := range f.Columns {
		if c.IsText() {
			for _, lvl := range sortedLevels(c.Levels) {
				names = append(names, c.Name+"_"+lvl)
			}
		}
	}

	return names
}

// Matrix converts the frame into a rows×k numeric matrix.
//
// Errors:
//   - ErrEmpty if the frame has no columns or no rows.
//   - ErrRaggedFrame if column lengths differ.
func (f *Frame) Matrix() (*mat.Dense, error) {
	n, err := f.rows()
	if err != nil {
		return nil, err
	}
	width := len(f.ColumnNames())
	if n == 0 || width == 0 {
		return nil, seriesErrorf(opFrameMatrix, ErrEmpty, "frame shape %dx%d", n, width)
	}

	out := mat.NewDense(n, width, nil)
	j := 0
	for _, c := range f.Columns {
		if c.IsText() {
			continue
		}
		out.SetCol(j, c.Values)
		j++
	}
	for _, c := range f.Columns {
		if !c.IsText() {
			continue
		}
		levels := sortedLevels(c.Levels)
		index := make(map[string]int, len(levels))
		for k, lvl := range levels {
			index[lvl] = j + k
		}
		for i, lvl := range c.Levels {
			out.Set(i, index[lvl], 1)
		}
		j += len(levels)
	}

	return out, nil
}

// sortedLevels returns the distinct levels of a text column, sorted.
func sortedLevels(levels []string) []string {
	seen := make(map[string]struct{}, len(levels))
	var out []string
	for _, lvl := range levels {
		if _, ok := seen[lvl]; ok {
			continue
		}
		seen[lvl] = struct{}{}
		out = append(out, lvl)
	}
	sort.Strings(out)

	return out
}
