// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/systyle/base/errors"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file -- reads the first line and detects tabs or commas
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// detectDelim returns Tab if the line has tabs, and Comma otherwise.
func detectDelim(line string) Delims {
	if strings.Contains(line, "\t") {
		return Tab
	}
	return Comma
}

// missing are the cell values read as NaN.
var missing = map[string]bool{
	"": true, "NA": true, "N/A": true, "NaN": true, "-NaN": true,
	"nan": true, "null": true, "NULL": true, "None": true,
}

// ParseValue parses a cell value, with missing values as NaN.
func ParseValue(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if missing[str] {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(str, 64)
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
func OpenCSV(filename string, delim Delims) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), delim)
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, delim Delims) (*Table, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads a table from a comma-separated-values (CSV) reader
// (where comma = any delimiter, specified in the delim arg). The first
// record has the column names. If the first name is empty, the first
// column has row names. All other cells must be numbers or missing:
// empty, NA, NaN or null.
func ReadCSV(r io.Reader, delim Delims) (*Table, error) {
	br := bufio.NewReader(r)
	if delim == Detect {
		line, err := br.Peek(4096)
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return nil, err
		}
		first, _, _ := strings.Cut(string(line), "\n")
		delim = detectDelim(first)
	}
	cr := csv.NewReader(br)
	cr.Comma = delim.Rune()
	cr.TrimLeadingSpace = true
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("table: no header in CSV data")
	}
	hdrs := rec[0]
	indexed := len(hdrs) > 0 && strings.TrimSpace(hdrs[0]) == ""
	if indexed {
		hdrs = hdrs[1:]
	}
	dt := New(hdrs...)
	for i, nm := range dt.Names {
		dt.Names[i] = strings.TrimSpace(nm)
	}
	for ri, row := range rec[1:] {
		if indexed {
			dt.RowNames = append(dt.RowNames, row[0])
			row = row[1:]
		}
		vals := make([]float64, len(row))
		for ci, str := range row {
			if vals[ci], err = ParseValue(str); err != nil {
				return nil, fmt.Errorf("table: row %d column %q: %w", ri+1, dt.Names[ci], err)
			}
		}
		if err := dt.AddRow(vals...); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// WriteCSV writes the table as comma-separated-values (CSV)
// (where comma = any delimiter, specified in the delim arg),
// with a header row of column names. NaN values are written empty.
func (dt *Table) WriteCSV(w io.Writer, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	hdrs := dt.Names
	if dt.RowNames != nil {
		hdrs = append([]string{""}, hdrs...)
	}
	if err := cw.Write(hdrs); err != nil {
		return err
	}
	for ri := range dt.NumRows() {
		var rec []string
		if dt.RowNames != nil {
			rec = append(rec, dt.RowNames[ri])
		}
		for _, col := range dt.Columns {
			v := col[ri]
			if math.IsNaN(v) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
func (dt *Table) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}
