// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package models

import "strconv"

// ValueKind is the expected type of a configuration value as declared by
// the schema. It drives coercion of the raw file string into a canonical
// display value.
type ValueKind int

const (
	// KindString accepts any value verbatim.
	KindString ValueKind = iota

	// KindBool accepts 1/0, true/false, yes/no, on/off and renders as
	// "1" or "0".
	KindBool

	// KindInt accepts a base-10 integer and renders it canonically.
	KindInt

	// KindFloat accepts a decimal number and renders it canonically.
	KindFloat
)

// SchemaEntry describes one known configuration key: its built-in default,
// expected kind, and a short human-readable description. Entries are
// constructed once at process start and never mutate.
type SchemaEntry struct {
	Key         string
	Default     string
	Kind        ValueKind
	Description string
}

// boolTokens maps the raw spellings a boolean option accepts to its
// canonical display form.
var boolTokens = map[string]string{
	"1": "1", "true": "1", "yes": "1", "on": "1",
	"0": "0", "false": "0", "no": "0", "off": "0",
}

// Coerce normalizes raw according to the target kind. The target kind is
// authoritative: "1" coerces to boolean true for KindBool and to integer 1
// for KindInt. A raw value that cannot be parsed as the target kind is
// reported so the caller can fall back or fail.
func (k ValueKind) Coerce(raw string) (string, bool) {
	switch k {
	case KindBool:
		v, ok := boolTokens[raw]
		return v, ok
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	default:
		return raw, true
	}
}

// InferValue normalizes a raw value with no declared kind by probing
// bool, then integer, then float, falling back to the raw string. This is
// the one permissive path, used for keys missing from the schema.
func InferValue(raw string) string {
	for _, k := range []ValueKind{KindBool, KindInt, KindFloat} {
		if v, ok := k.Coerce(raw); ok {
			return v
		}
	}
	return raw
}
