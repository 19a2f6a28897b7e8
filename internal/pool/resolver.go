// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package pool

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"

	"github.com/avolkov/nodeconf/internal/source"
	"github.com/avolkov/nodeconf/models"
)

// EnvPrefix namespaces the environment overrides of the pool domain.
// P2POOL_STRATUM_PORT=9999 overrides stratum.port regardless of the file.
const EnvPrefix = "P2POOL_"

// sectionNames is the fixed set of recognized TOML tables. A file with
// none of these markers (and no environment override) is not a pool
// configuration.
var sectionNames = []string{"network", "store", "stratum", "miner", "bitcoinrpc", "logging", "api"}

// shape enforces the `validate` tags on the typed model; one instance is
// enough, validator.Validate is safe for concurrent use.
var shape = validator.New()

// sectionFlags records which tables were written out in the file text.
// The flatten step needs them to tell an inherited default apart from a
// section that explicitly restates one.
type sectionFlags struct {
	network bool
	stratum bool
	logging bool
}

// Resolve reads the pool configuration at path, overlays the P2POOL_
// overrides found in environ, validates, and flattens. It is a pure
// function of the file contents and the injected environment; pass
// source.EnvironMap(os.Environ()) for the real process environment.
//
// A missing file with overrides present still resolves; a file with no
// recognized section and no overrides wraps source.ErrDomainMismatch.
func Resolve(path string, environ map[string]string) ([]models.PoolEntry, error) {
	raw, err := source.ReadFileIfExists(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	overrides := source.FilterPrefix(environ, EnvPrefix)
	if len(overrides) == 0 && !source.HasSectionMarker(raw, sectionNames...) {
		return nil, fmt.Errorf("%w: %s is not a pool service configuration", source.ErrDomainMismatch, path)
	}

	k := koanf.New(".")
	if raw != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", source.ErrSourceFormat, path, err)
		}
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overridePaths(overrides), "."), nil); err != nil {
			return nil, fmt.Errorf("%w: environment overlay: %v", source.ErrSourceFormat, err)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", source.ErrDeserialize, path, err)
	}
	applyDefaults(&s, k)
	if err := shape.Struct(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrDeserialize, err)
	}

	validated, err := s.Validate()
	if err != nil {
		return nil, err
	}

	return validated.Flatten(sectionFlags{
		network: source.HasSectionMarker(raw, "network"),
		stratum: source.HasSectionMarker(raw, "stratum"),
		logging: source.HasSectionMarker(raw, "logging"),
	}), nil
}

// overridePaths maps stripped override names to koanf paths:
// STRATUM_PORT → stratum.port, STRATUM_START_DIFFICULTY →
// stratum.start_difficulty. The section token is matched against the
// fixed table list first, so multi-word field names survive the split.
// Unrecognized names are dropped; their presence already counted toward
// domain detection.
func overridePaths(overrides map[string]string) map[string]interface{} {
	paths := make(map[string]interface{}, len(overrides))
	for name, value := range overrides {
		lower := strings.ToLower(name)
		for _, sec := range sectionNames {
			if field, ok := strings.CutPrefix(lower, sec+"_"); ok && field != "" {
				paths[sec+"."+field] = value
				break
			}
		}
	}
	return paths
}
