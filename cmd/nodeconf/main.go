// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package main

import (
	"fmt"

	"github.com/avolkov/nodeconf/internal/config"
	"github.com/avolkov/nodeconf/internal/logger"
	"github.com/avolkov/nodeconf/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		fmt.Println("error loading settings:", err)
		return
	}

	log := logger.New("nodeconf", cfg.LogFile)
	log.Info().
		Str("version", orNA(buildVersion)).
		Str("date", orNA(buildDate)).
		Str("commit", orNA(buildCommit)).
		Msg("starting")

	if err := tui.Run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("tui run error")
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
