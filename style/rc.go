// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// rcFields maps rc parameter names to Style field indexes.
var rcFields = func() map[string]int {
	m := map[string]int{}
	typ := reflect.TypeFor[Style]()
	for i := range typ.NumField() {
		if key := typ.Field(i).Tag.Get("rc"); key != "" {
			m[key] = i
		}
	}
	return m
}()

// Keys returns the sorted list of rc parameter names used by [Style].
func Keys() []string {
	return slices.Sorted(maps.Keys(rcFields))
}

// Suggest returns the known rc parameter name most similar to key,
// and false if none is similar enough to be a likely typo.
func Suggest(key string) (string, bool) {
	lev := metrics.NewLevenshtein()
	best, score := "", 0.0
	for _, k := range Keys() {
		if s := strutil.Similarity(key, k, lev); s > score {
			best, score = k, s
		}
	}
	return best, score >= 0.7
}

// Set sets the rc parameter of given name to given value, which can be
// a string, bool, number or list, as decoded from a style file.
// Unknown names are stored in Extra, with a warning if they look like a typo.
func (st *Style) Set(key string, value any) error {
	idx, ok := rcFields[key]
	if !ok {
		if sug, ok := Suggest(key); ok {
			slog.Warn("style: unknown parameter", "key", key, "suggestion", sug)
		}
		if st.Extra == nil {
			st.Extra = map[string]any{}
		}
		st.Extra[key] = value
		return nil
	}
	fv := reflect.ValueOf(st).Elem().Field(idx)
	if err := setField(fv, value); err != nil {
		return fmt.Errorf("style: parameter %q: %w", key, err)
	}
	return nil
}

// setField sets the field from the value, leaving it
// unchanged if the value cannot be converted.
func setField(fv reflect.Value, value any) error {
	switch fv.Kind() {
	case reflect.String:
		s, err := toString(value)
		if err != nil {
			return err
		}
		fv.SetString(s)
	case reflect.Bool:
		b, err := toBool(value)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Float64:
		f, err := toFloat(value)
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Slice:
		return setSlice(fv, value)
	}
	return nil
}

// Get returns the value of the rc parameter of given name,
// from the Style fields or Extra. It returns false if not set.
func (st *Style) Get(key string) (any, bool) {
	if idx, ok := rcFields[key]; ok {
		return reflect.ValueOf(st).Elem().Field(idx).Interface(), true
	}
	v, ok := st.Extra[key]
	return v, ok
}

// Params returns all rc parameters as a map, including Extra.
func (st *Style) Params() map[string]any {
	m := make(map[string]any, len(rcFields)+len(st.Extra))
	maps.Copy(m, st.Extra)
	for key, idx := range rcFields {
		m[key] = reflect.ValueOf(st).Elem().Field(idx).Interface()
	}
	return m
}

// SetParams sets all the given parameters, in sorted key order.
// Nested maps are flattened to dotted names, so that font: {size: 12}
// sets font.size.
func (st *Style) SetParams(params map[string]any) error {
	flat := map[string]any{}
	flatten("", params, flat)
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		if err := st.Set(key, flat[key]); err != nil {
			return err
		}
	}
	return nil
}

func flatten(prefix string, m map[string]any, flat map[string]any) {
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(k, sub, flat)
			continue
		}
		flat[k] = v
	}
}

func toString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	case nil:
		return "", nil
	}
	return fmt.Sprint(v), nil
}

func toBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(x))
	}
	return false, fmt.Errorf("%v (%T) is not a bool", v, v)
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(x), 64)
	}
	return 0, fmt.Errorf("%v (%T) is not a number", v, v)
}

// toList converts a decoded list, or a comma separated string
// as in matplotlibrc files, to a list of values.
func toList(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case []string:
		l := make([]any, len(x))
		for i, s := range x {
			l[i] = s
		}
		return l
	case []float64:
		l := make([]any, len(x))
		for i, f := range x {
			l[i] = f
		}
		return l
	case string:
		parts := strings.Split(x, ",")
		l := make([]any, 0, len(parts))
		for _, p := range parts {
			if p = strings.Trim(strings.TrimSpace(p), `'"`); p != "" {
				l = append(l, p)
			}
		}
		return l
	}
	return []any{v}
}

func setSlice(fv reflect.Value, value any) error {
	list := toList(value)
	sl := reflect.MakeSlice(fv.Type(), len(list), len(list))
	for i, item := range list {
		switch fv.Type().Elem().Kind() {
		case reflect.String:
			s, err := toString(item)
			if err != nil {
				return err
			}
			sl.Index(i).SetString(s)
		case reflect.Float64:
			f, err := toFloat(item)
			if err != nil {
				return err
			}
			sl.Index(i).SetFloat(f)
		}
	}
	fv.Set(sl)
	return nil
}
