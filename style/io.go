// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a style file format.
type Format int32

const (
	// YAML is used for .yaml, .yml, .mplstyle and matplotlibrc files,
	// which have "key: value" lines.
	YAML Format = iota

	// TOML is used for .toml files, with either quoted dotted keys
	// or nested tables.
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// FormatFor returns the format for the given file name, based on its extension.
func FormatFor(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml", ".mplstyle", ".matplotlibrc":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	if strings.HasSuffix(filename, "matplotlibrc") {
		return YAML, nil
	}
	return YAML, fmt.Errorf("style: unknown file format for %q", filename)
}

// ParseFormat returns the format for a name: yaml, yml or toml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("style: unknown format %q", name)
}

// Decode sets style parameters from the given style file data.
// Parameters not in the data are left unchanged.
func (st *Style) Decode(data []byte, format Format) error {
	params := map[string]any{}
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &params)
	default:
		err = yaml.Unmarshal(data, &params)
	}
	if err != nil {
		return fmt.Errorf("style: decoding %v: %w", format, err)
	}
	return st.SetParams(params)
}

// Read reads a style from the reader on top of the [Default] style.
func Read(r io.Reader, format Format) (*Style, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	st := Default()
	if err := st.Decode(data, format); err != nil {
		return nil, err
	}
	return st, nil
}

// Open reads a style file on top of the [Default] style, so that the
// file only needs to list parameters that differ. The format is
// determined by the file extension.
func Open(filename string) (*Style, error) {
	format, err := FormatFor(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return st, nil
}

// Encode writes all of the style parameters in the given format.
func (st *Style) Encode(w io.Writer, format Format) error {
	params := st.Params()
	var data []byte
	var err error
	switch format {
	case TOML:
		data, err = toml.Marshal(params)
	default:
		data, err = yaml.Marshal(params)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Save writes the style to the given file, in the format for its extension.
func (st *Style) Save(filename string) error {
	format, err := FormatFor(filename)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = st.Encode(f, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
