// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package models

// PoolEntry is a single resolved configuration value of the mining-pool
// service, ready for presentation. The TUI reads nothing but a slice of
// these; every value is already rendered, masked, and provenance-tagged.
type PoolEntry struct {
	// Section is the TOML table the key belongs to (e.g. "stratum").
	Section string

	// Key is the field name inside the section.
	Key string

	// Value is the display string: coerced, formatted, and redacted
	// for secret fields.
	Value string

	// IsDefault reports that the value was inherited from the built-in
	// default rather than explicitly confirmed by a source. A section
	// that restates the default counts as explicit.
	IsDefault bool
}

// DaemonEntry is a single resolved configuration value of the daemon
// (bitcoin.conf) domain.
type DaemonEntry struct {
	// Key is the configuration key as written in bitcoin.conf.
	Key string

	// Value is the display string, normalized through the schema kind.
	Value string

	// Schema points at the registry entry for known keys and is nil for
	// keys present in the file but absent from the registry.
	Schema *SchemaEntry

	// Enabled reports that the key was found in at least one scope of
	// the source file; false means the schema default is shown.
	Enabled bool
}
