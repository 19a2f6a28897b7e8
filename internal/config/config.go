// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

// Package config resolves the viewer's own runtime settings.
//
// These are the knobs of the nodeconf tool itself, not of the node
// applications it inspects. Values are assembled from built-in defaults
// overlaid with NODECONF_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ErrInvalidSettings indicates the assembled runtime settings are
// unusable (for example, an empty start directory).
var ErrInvalidSettings = errors.New("invalid runtime settings")

// Config holds the viewer's runtime settings.
type Config struct {
	// StartDir is the directory the file explorer opens in.
	// Env: NODECONF_START_DIR
	StartDir string `env:"START_DIR"`

	// LogFile is the path of the JSON log file. Empty selects a
	// "nodeconf.log" next to the executable.
	// Env: NODECONF_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

func defaults() Config {
	return Config{StartDir: "."}
}

// Get assembles the runtime settings: environment overlay first, built-in
// defaults filling the gaps, then validation.
func Get() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "NODECONF_"}); err != nil {
		return nil, fmt.Errorf("error getting env settings: %w", err)
	}
	if err := mergo.Merge(cfg, defaults()); err != nil {
		return nil, fmt.Errorf("error merging default settings: %w", err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.StartDir == "" {
		return fmt.Errorf("%w: start directory is empty", ErrInvalidSettings)
	}
	return nil
}
