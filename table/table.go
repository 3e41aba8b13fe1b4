// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a simple table of named float64 columns,
// read from CSV files, with missing values as NaN.
package table

import (
	"fmt"
	"slices"

	"cogentcore.org/systyle/base/errors"
)

// ErrNoColumn is wrapped by errors for columns that are not in the table.
var ErrNoColumn = errors.New("table: no such column")

// Table is a set of named columns of the same length.
type Table struct {

	// Names are the column names.
	Names []string

	// Columns are the column values, in the same order as Names.
	Columns [][]float64

	// RowNames are the row labels, from an unnamed first CSV column,
	// or nil if there are none.
	RowNames []string
}

// New returns a new table with the given columns of zero rows.
func New(names ...string) *Table {
	dt := &Table{Names: names, Columns: make([][]float64, len(names))}
	for i := range dt.Columns {
		dt.Columns[i] = []float64{}
	}
	return dt
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int {
	if len(dt.Columns) == 0 {
		return len(dt.RowNames)
	}
	return len(dt.Columns[0])
}

// NumCols returns the number of columns.
func (dt *Table) NumCols() int {
	return len(dt.Columns)
}

// ColumnIndex returns the index of the named column, or -1.
func (dt *Table) ColumnIndex(name string) int {
	return slices.Index(dt.Names, name)
}

// Column returns the values of the named column.
func (dt *Table) Column(name string) ([]float64, error) {
	ci := dt.ColumnIndex(name)
	if ci < 0 {
		return nil, fmt.Errorf("%w: %q, have %v", ErrNoColumn, name, dt.Names)
	}
	return dt.Columns[ci], nil
}

// AddRow appends a row with one value per column.
func (dt *Table) AddRow(vals ...float64) error {
	if len(vals) != dt.NumCols() {
		return fmt.Errorf("table: row has %d values for %d columns", len(vals), dt.NumCols())
	}
	for i, v := range vals {
		dt.Columns[i] = append(dt.Columns[i], v)
	}
	return nil
}

// Matrix returns the table as row-major matrix rows.
func (dt *Table) Matrix() [][]float64 {
	m := make([][]float64, dt.NumRows())
	for r := range m {
		m[r] = make([]float64, dt.NumCols())
		for c, col := range dt.Columns {
			m[r][c] = col[r]
		}
	}
	return m
}
