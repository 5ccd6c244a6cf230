// Package jsonx provides tri-state JSON fields for partial-update payloads.
// Every type tracks whether the key was present at all (Set) and, if present,
// whether it carried a usable value (Valid). A key that never appears leaves
// both false; an explicit null leaves Valid false. Numeric types accept JSON
// numbers as well as numeric strings.
package jsonx

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Float struct {
	Set   bool
	Valid bool
	Value float64
}

func (f *Float) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.Valid = false

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		f.Valid = true
		f.Value = v
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%q must be a number", v)
		}
		f.Valid = true
		f.Value = parsed
	default:
		return fmt.Errorf("expected a number, got %T", raw)
	}

	return nil
}

type Int struct {
	Set   bool
	Valid bool
	Value int
}

func (i *Int) UnmarshalJSON(data []byte) error {
	i.Set = true
	i.Valid = false

	var f Float
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	if !f.Valid {
		return nil
	}
	if f.Value != math.Trunc(f.Value) {
		return fmt.Errorf("%v must be an integer", f.Value)
	}

	i.Valid = true
	i.Value = int(f.Value)
	return nil
}

type String struct {
	Set   bool
	Valid bool
	Value string
}

func (s *String) UnmarshalJSON(data []byte) error {
	s.Set = true
	s.Valid = false

	if string(data) == "null" {
		return nil
	}

	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	s.Valid = true
	s.Value = v
	return nil
}

type StringList struct {
	Set   bool
	Valid bool
	Value []string
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	l.Set = true
	l.Valid = false

	if string(data) == "null" {
		return nil
	}

	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	l.Valid = true
	l.Value = v
	return nil
}

type StringMap struct {
	Set   bool
	Valid bool
	Value map[string]string
}

func (m *StringMap) UnmarshalJSON(data []byte) error {
	m.Set = true
	m.Valid = false

	if string(data) == "null" {
		return nil
	}

	var v map[string]string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	m.Valid = true
	m.Value = v
	return nil
}

// EncodeList serializes a list for storage in a text column. Nil encodes as
// the empty list so the column round-trips to [] rather than null.
func EncodeList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// EncodeMap is EncodeList for string-keyed mappings.
func EncodeMap(v map[string]string) string {
	if v == nil {
		v = map[string]string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// DecodeList parses a stored list column, tolerating the empty string left by
// a freshly-migrated row.
func DecodeList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	var v []string
	if err := json.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return []string{}
	}
	return v
}

// DecodeMap parses a stored mapping column.
func DecodeMap(s string) map[string]string {
	if strings.TrimSpace(s) == "" {
		return map[string]string{}
	}
	var v map[string]string
	if err := json.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return map[string]string{}
	}
	return v
}
