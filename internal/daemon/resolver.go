// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package daemon

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/avolkov/nodeconf/internal/source"
	"github.com/avolkov/nodeconf/models"
)

// scopeOrder is the fixed lookup precedence across file scopes: global
// keys first, then the network sections in this exact sequence. First
// match wins. The order is a contract, never alphabetical.
var scopeOrder = []string{"", "main", "test", "signet", "regtest"}

// secretKeys lists daemon options whose values must never be shown in
// plaintext.
var secretKeys = map[string]bool{
	"rpcpassword": true,
}

const (
	secretMask    = "*****"
	emptySentinel = "<empty>"
)

// Resolve reads the daemon configuration file at path and returns the
// full entry list: every schema key in declaration order, followed by any
// keys the file sets that the schema does not know.
//
// A missing file is a valid empty source; every entry then carries its
// schema default with Enabled=false. A file that cannot be parsed as INI
// wraps source.ErrSourceFormat.
func Resolve(path string) ([]models.DaemonEntry, error) {
	raw, err := source.ReadFileIfExists(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	f, err := ini.LoadSources(ini.LoadOptions{AllowBooleanKeys: true}, []byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", source.ErrSourceFormat, path, err)
	}

	reg := DefaultRegistry()
	entries := make([]models.DaemonEntry, 0, len(reg.Entries()))
	found := make(map[string]bool)

	for i := range reg.Entries() {
		schema := &reg.Entries()[i]
		value := schema.Default
		enabled := false

		for _, scope := range scopeOrder {
			sec, ok := section(f, scope)
			if !ok || !sec.HasKey(schema.Key) {
				continue
			}
			value = coerceSchema(schema, sec.Key(schema.Key).String())
			enabled = true
			found[schema.Key] = true
			break
		}

		entries = append(entries, models.DaemonEntry{
			Key:     schema.Key,
			Value:   redact(schema.Key, value),
			Schema:  schema,
			Enabled: enabled,
		})
	}

	// Keys present in the file but absent from the schema are appended
	// after all schema-driven entries, always explicit, with permissive
	// bool→int→float→string inference.
	for _, scope := range scopeOrder {
		sec, ok := section(f, scope)
		if !ok {
			continue
		}
		for _, key := range sec.KeyStrings() {
			if _, known := reg.Lookup(key); known || found[key] {
				continue
			}
			found[key] = true
			entries = append(entries, models.DaemonEntry{
				Key:     key,
				Value:   redact(key, models.InferValue(sec.Key(key).String())),
				Enabled: true,
			})
		}
	}

	return entries, nil
}

// section maps the empty scope to the INI default section and reports
// whether the scope exists in the file at all.
func section(f *ini.File, scope string) (*ini.Section, bool) {
	name := scope
	if scope == "" {
		name = ini.DefaultSection
	}
	sec, err := f.GetSection(name)
	return sec, err == nil
}

// coerceSchema renders a raw file value through the schema kind. A value
// the kind cannot parse is shown verbatim rather than dropped; the daemon
// domain displays what the operator wrote.
func coerceSchema(schema *models.SchemaEntry, raw string) string {
	if v, ok := schema.Kind.Coerce(raw); ok {
		return v
	}
	return raw
}

// redact replaces secret values with fixed-width sentinels regardless of
// the actual secret length or content.
func redact(key, value string) string {
	if !secretKeys[key] {
		return value
	}
	if value == "" {
		return emptySentinel
	}
	return secretMask
}
