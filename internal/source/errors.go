package source

import "errors"

// Error kinds shared by the daemon and pool resolvers. Every failure a
// resolver returns wraps exactly one of these, so callers can classify
// with errors.Is without string matching.
var (
	// ErrDomainMismatch indicates the input does not belong to the
	// requested configuration domain: no recognized section marker in
	// the file and no relevant environment override.
	ErrDomainMismatch = errors.New("not a configuration of this domain")

	// ErrSourceFormat indicates the file could not be parsed at all as
	// the expected format (INI or TOML).
	ErrSourceFormat = errors.New("invalid source format")

	// ErrDeserialize indicates the file parsed structurally but its
	// fields do not match the expected shapes or required fields are
	// missing.
	ErrDeserialize = errors.New("invalid configuration shape")

	// ErrValidation indicates a semantic rule failed: wrong-network
	// address, oversized signature, malformed hex, or a dependent field
	// without its counterpart.
	ErrValidation = errors.New("invalid configuration value")
)
