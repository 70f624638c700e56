// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperprep/series"
)

// readFrame parses CSV records into a frame. A column whose every cell parses
// as a float is numeric; any other column is categorical text.
func readFrame(r io.Reader, header bool) (*series.Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: no records")
	}

	var names []string
	if header {
		names, records = records[0], records[1:]
		if len(records) == 0 {
			return nil, fmt.Errorf("read csv: header without rows")
		}
	} else {
		names = make([]string, len(records[0]))
		for j := range names {
			names[j] = "col" + strconv.Itoa(j)
		}
	}

	cols := make([]series.Column, len(names))
	for j, name := range names {
		cells := make([]string, len(records))
		for i, rec := range records {
			cells[i] = strings.TrimSpace(rec[j])
		}
		if vals, ok := parseFloats(cells); ok {
			cols[j] = series.Numeric(name, vals...)
		} else {
			cols[j] = series.Text(name, cells...)
		}
	}

	return series.NewFrame(cols...)
}

func parseFloats(cells []string) ([]float64, bool) {
	out := make([]float64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}

// readInput turns every CSV path into one frame of a series.Input.
func readInput(paths []string, header bool) (series.Input, error) {
	frames := make([]*series.Frame, len(paths))
	for i, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return series.Input{}, err
		}
		frames[i], err = readFrame(f, header)
		_ = f.Close()
		if err != nil {
			return series.Input{}, fmt.Errorf("%s: %w", p, err)
		}
	}

	return series.FromFrames(frames...), nil
}
