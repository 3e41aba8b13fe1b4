// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the command line and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeFile writes a test file in a temporary directory.
func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

// fastStyle writes a low resolution, plain text style file.
func fastStyle(t *testing.T) string {
	return writeFile(t, "fast.mplstyle", "text.usetex: false\nsavefig.dpi: 20\n")
}

func TestFit(t *testing.T) {
	csv := writeFile(t, "xy.csv", "dose,response\n1,3\n2,5\n3,7\n4,\n5,11\n6,13\n")
	out := t.TempDir()
	res, err := run(t, "fit", csv, "--x", "dose", "--y", "response", "--b", "50", "--seed", "7",
		"--style", fastStyle(t), "--out", out, "--name", "fit", "--ext", "png")
	require.NoError(t, err)

	var got fitResult
	require.NoError(t, yaml.Unmarshal([]byte(res), &got))
	require.NotNil(t, got.Summary)
	assert.InDelta(t, 2, got.Summary.Slope, 1e-9)
	assert.InDelta(t, 1, got.Summary.Intercept, 1e-9)
	assert.Equal(t, 5, got.Summary.N)
	assert.Equal(t, 1, got.Dropped)
	assert.Equal(t, 95.0, got.Confidence)
	assert.True(t, got.GridGenerated)
	assert.Equal(t, []string{filepath.Join(out, "fit.png")}, got.Files)
	assert.FileExists(t, filepath.Join(out, "fit.png"))

	again, err := run(t, "fit", csv, "--x", "dose", "--y", "response", "--b", "50", "--seed", "7", "--style", fastStyle(t))
	require.NoError(t, err)
	var got2 fitResult
	require.NoError(t, yaml.Unmarshal([]byte(again), &got2))
	assert.Equal(t, got.Summary, got2.Summary)
	assert.Nil(t, got2.Files)
}

func TestFitErrors(t *testing.T) {
	csv := writeFile(t, "xy.csv", "x,y\n1,1\n1,2\n")
	_, err := run(t, "fit", csv, "--style", fastStyle(t))
	assert.ErrorContains(t, err, "identical")

	_, err = run(t, "fit", csv, "--x", "dose")
	assert.ErrorContains(t, err, "no such column")

	_, err = run(t, "fit")
	assert.Error(t, err)

	_, err = run(t, "fit", csv, "--log-level", "loud")
	assert.ErrorContains(t, err, "log-level")
}

func TestJitter(t *testing.T) {
	csv := writeFile(t, "groups.csv", "wild_type,mutant\n1,2\n1.5,\n,3\n")
	out := t.TempDir()
	res, err := run(t, "jitter", csv, "--style", fastStyle(t), "--seed", "1", "--ylabel", "value",
		"--markers", "o", "--colors", "r,b", "--out", out, "--name", "jit", "--ext", "svg")
	require.NoError(t, err)
	assert.Contains(t, res, "wild_type")
	assert.FileExists(t, filepath.Join(out, "jit.svg"))

	_, err = run(t, "jitter", csv, "--colors", "r,g,b", "--style", fastStyle(t))
	assert.ErrorContains(t, err, "3 colors for 2 columns")
}

func TestHeatmap(t *testing.T) {
	csv := writeFile(t, "m.csv", ",a,b,c\nr0,1,2,3\nr1,4,NA,6\n")
	out := t.TempDir()
	res, err := run(t, "heatmap", csv, "--style", fastStyle(t), "--zlabel", "z", "--size", "2",
		"--out", out, "--name", "heat", "--ext", "png")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(res), &got))
	assert.Equal(t, 2, got["rows"])
	assert.Equal(t, 3, got["cols"])
	assert.FileExists(t, filepath.Join(out, "heat.png"))

	_, err = run(t, "heatmap", csv, "--vmin", "5", "--vmax", "1", "--style", fastStyle(t))
	assert.Error(t, err)
}

func TestStyle(t *testing.T) {
	res, err := run(t, "style")
	require.NoError(t, err)
	assert.Contains(t, res, "font.size: 15")

	res, err = run(t, "style", "--format", "toml", "--style", fastStyle(t))
	require.NoError(t, err)
	assert.Regexp(t, `usetex['"]? = false`, res)

	_, err = run(t, "style", "--format", "json")
	assert.Error(t, err)
}
