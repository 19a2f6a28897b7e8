// Package pool resolves the mining-pool service configuration (TOML file
// plus P2POOL_-prefixed environment overrides) into a presentation-ready
// entry list.
//
// Resolution is a fixed pipeline: domain check, source merge, typed
// deserialization with defaults, semantic validation, flatten. The
// validation step is a one-way type-state conversion: Settings (fresh from
// the sources, derived fields untrusted) becomes ValidatedSettings, and
// flattening is defined on ValidatedSettings only, so unvalidated values
// can never reach the presentation layer.
package pool
