/*
extras.go - Loosely-typed side-table for unrecognized columns

PURPOSE:
  The loader is permissive: columns that are not part of a variant's
  declared schema are kept, not dropped. Values are coerced best-effort
  (float if the raw string contains a '.', else int, else kept as the raw
  string) and stored here in first-seen order, so a save round-trips them.

COERCION IS NOT VALIDATION:
  A value that fails numeric parsing is silently kept as a string. That is
  a documented degradation, not an error.
*/
package payroll

import (
	"strconv"
	"strings"
)

// =============================================================================
// EXTRA VALUE - string | int64 | float64
// =============================================================================

type ExtraKind int

const (
	KindString ExtraKind = iota
	KindInt
	KindFloat
)

type ExtraValue struct {
	Kind  ExtraKind
	Str   string
	Int   int64
	Float float64
}

func StringValue(s string) ExtraValue  { return ExtraValue{Kind: KindString, Str: s} }
func IntValue(i int64) ExtraValue      { return ExtraValue{Kind: KindInt, Int: i} }
func FloatValue(f float64) ExtraValue  { return ExtraValue{Kind: KindFloat, Float: f} }

// Coerce converts a raw cell into a typed value: '.' means float, otherwise
// int, and anything unparseable stays a string.
func Coerce(raw string) ExtraValue {
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
		return StringValue(raw)
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntValue(i)
	}
	return StringValue(raw)
}

// String renders the value as a CSV cell. Floats always carry a decimal
// point so they reload as floats.
func (v ExtraValue) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return v.Str
	}
}

// =============================================================================
// EXTRAS - Ordered key -> value table
// =============================================================================

// Extras is a small ordered mapping. Records carry few extras, so lookups
// are linear scans.
type Extras struct {
	fields []extraField
}

type extraField struct {
	key   string
	value ExtraValue
}

// Set adds or replaces a key, preserving first-seen order on replace.
func (x *Extras) Set(key string, v ExtraValue) {
	for i := range x.fields {
		if x.fields[i].key == key {
			x.fields[i].value = v
			return
		}
	}
	x.fields = append(x.fields, extraField{key: key, value: v})
}

func (x *Extras) Get(key string) (ExtraValue, bool) {
	for _, f := range x.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return ExtraValue{}, false
}

func (x *Extras) Len() int { return len(x.fields) }

func (x *Extras) Keys() []string {
	keys := make([]string, len(x.fields))
	for i, f := range x.fields {
		keys[i] = f.key
	}
	return keys
}

func (x *Extras) each(fn func(key string, v ExtraValue)) {
	for _, f := range x.fields {
		fn(f.key, f.value)
	}
}
