// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	data := "a, b,c_d\n1,2,3\n,NA,null\n4.5,NaN,-1e3\n"
	dt, err := ReadCSV(strings.NewReader(data), Detect)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c_d"}, dt.Names)
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, 3, dt.NumCols())
	assert.Nil(t, dt.RowNames)

	a, err := dt.Column("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, a[0])
	assert.True(t, math.IsNaN(a[1]))
	assert.Equal(t, 4.5, a[2])

	b := dt.Columns[1]
	assert.True(t, math.IsNaN(b[1]))
	assert.True(t, math.IsNaN(b[2]))

	c, err := dt.Column("c_d")
	require.NoError(t, err)
	assert.Equal(t, -1000.0, c[2])

	_, err = dt.Column("e")
	assert.ErrorIs(t, err, ErrNoColumn)
}

func TestReadCSVTabs(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader("x\ty\n1\t2\n"), Detect)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, dt.Names)
	assert.Equal(t, [][]float64{{1, 2}}, dt.Matrix())
}

func TestReadCSVRowNames(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader(",c1,c2\nr1,1,2\nr2,3,4\n"), Comma)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, dt.Names)
	assert.Equal(t, []string{"r1", "r2"}, dt.RowNames)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, dt.Matrix())
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), Comma)
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("a,b\n1,x\n"), Comma)
	assert.ErrorContains(t, err, `column "b"`)

	_, err = ReadCSV(strings.NewReader("a,b\n1\n"), Comma)
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	dt := New("a", "b")
	require.NoError(t, dt.AddRow(1, math.NaN()))
	require.NoError(t, dt.AddRow(2.5, 3))
	assert.Error(t, dt.AddRow(1))

	var buf bytes.Buffer
	require.NoError(t, dt.WriteCSV(&buf, Comma))
	assert.Equal(t, "a,b\n1,\n2.5,3\n", buf.String())

	fn := filepath.Join(t.TempDir(), "t.tsv")
	require.NoError(t, dt.SaveCSV(fn, Tab))
	rt, err := OpenCSV(fn, Detect)
	require.NoError(t, err)
	assert.Equal(t, dt.Names, rt.Names)
	assert.Equal(t, 2.5, rt.Columns[0][1])
	assert.True(t, math.IsNaN(rt.Columns[1][0]))

	_, err = OpenCSV(filepath.Join(t.TempDir(), "none.csv"), Comma)
	assert.Error(t, err)
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"d.csv": {Data: []byte("v\n1\n2\n")}}
	dt, err := OpenFS(fsys, "d.csv", Comma)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, dt.Columns[0])
}
