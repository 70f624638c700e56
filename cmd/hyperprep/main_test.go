// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestReadFrame_NumericAndText(t *testing.T) {
	src := "x, kind\n1.5, b\n2, a\n3, b\n"
	f, err := readFrame(strings.NewReader(src), true)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Rows())

	m, err := f.Matrix()
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c) // x + one-hot(a, b)
	assert.Equal(t, []float64{1.5, 0, 1}, mat.Row(nil, 0, m))
}

func TestReadFrame_Errors(t *testing.T) {
	_, err := readFrame(strings.NewReader(""), false)
	assert.Error(t, err)
	_, err = readFrame(strings.NewReader("a,b\n"), true)
	assert.Error(t, err)
	_, err = readFrame(strings.NewReader("1,2\n3\n"), false)
	assert.Error(t, err)
}

func TestParseScalar(t *testing.T) {
	assert.Equal(t, true, parseScalar("true"))
	assert.Equal(t, 3, parseScalar("3"))
	assert.Equal(t, 0.25, parseScalar("0.25"))
	assert.Equal(t, "--", parseScalar("--"))
}

func TestPrepareCmd(t *testing.T) {
	a := writeFile(t, "a.csv", "0,0\n1,1\n")
	b := writeFile(t, "b.csv", "2,2\n3,3\n")

	out, _, err := run(t, "prepare", "--labels", "p,q,p,q", "--set", "linewidth=2", a, b)
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{0, 1, 0, 1}, doc.Categories)
	assert.Equal(t, [][][]float64{{{0, 0}, {2, 2}}, {{1, 1}, {3, 3}}}, doc.Series)
	require.Len(t, doc.Style, 2)
	assert.EqualValues(t, 2, doc.Style[0]["linewidth"])
}

func TestPrepareCmd_ConfigFileAndVerbose(t *testing.T) {
	data := writeFile(t, "d.csv", "0\n1\n2\n")
	opts := writeFile(t, "o.toml", "animate = true\ninterp_val = 2\nhue = [0, 5, 10]\nres = 10\n")

	out, logs, err := run(t, "prepare", "-v", "--config", opts, data)
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []int{0, 4, 9}, doc.Bins)
	assert.Len(t, doc.Colors, 3)
	assert.Len(t, doc.Series[0], 4)
	assert.Contains(t, logs, "interpolated")
}

func TestPrepareCmd_FlagsOverrideFile(t *testing.T) {
	data := writeFile(t, "d.csv", "0\n1\n2\n")
	opts := writeFile(t, "o.toml", "animate = true\n")

	out, _, err := run(t, "prepare", "--config", opts, "--animate=false", data)
	require.NoError(t, err)
	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Series[0], 3)
}

func TestPrepareCmd_Errors(t *testing.T) {
	data := writeFile(t, "d.csv", "0\n1\n")

	_, _, err := run(t, "prepare", "--labels", "a,b,c", data)
	assert.Error(t, err)

	_, _, err = run(t, "prepare", "--set", "novalue", data)
	assert.Error(t, err)

	_, _, err = run(t, "prepare", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, _, err = run(t, "prepare")
	assert.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	data := writeFile(t, "d.csv", "name,x,y\na,0,1\nb,1,2\n")

	out, _, err := run(t, "config", "--header", "--set", "alpha=0.5", data)
	require.NoError(t, err)
	assert.Contains(t, out, "ndims = 3")
	assert.Contains(t, out, `palette = "hls"`)
	assert.Contains(t, out, "alpha = 0.5")
	assert.NotContains(t, out, "labels")
}

func TestPrepareCmd_NaNLabelsFromTOML(t *testing.T) {
	data := writeFile(t, "d.csv", "0\n1\n2\n")
	opts := writeFile(t, "o.toml", "labels = [nan, 1.0, nan]\n")

	assert.NotPanics(t, func() {
		_, _, err := run(t, "prepare", "--config", opts, data)
		// JSON has no NaN, so the labels cannot be echoed back.
		assert.Error(t, err)
	})

	out, _, err := run(t, "config", "--config", opts, data)
	require.NoError(t, err)
	assert.Contains(t, out, "labels")
}
