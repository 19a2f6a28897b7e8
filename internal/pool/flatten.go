// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package pool

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	btcec "github.com/btcsuite/btcd/btcec/v2"

	"github.com/avolkov/nodeconf/models"
)

const (
	secretMask    = "*****"
	emptySentinel = "<empty>"
	invalidPubkey = "<invalid pubkey>"
)

// row is one line of the flatten table: where the value goes, how to
// render it, whether it is present at all, and how to compute the default
// flag. A nil present means the row always emits; a nil isDefault means
// the row is always explicit.
type row struct {
	section   string
	key       string
	present   func() bool
	value     func() string
	isDefault func() bool
}

// Flatten walks the validated model in declaration order and produces the
// entry list the presentation layer consumes. The table below is the
// authoritative field order; output is stable across runs for the same
// input.
//
// The default-flag predicates intentionally differ by section: network,
// stratum, and logging fields require the owning section to be absent
// from the file text AND the value to equal the default, while store,
// bitcoinrpc, and api fields compare the value alone. Optional fields and
// secrets are always explicit.
func (v *ValidatedSettings) Flatten(flags sectionFlags) []models.PoolEntry {
	s := v.settings
	rows := make([]row, 0, 48)

	n := &s.Network
	netDefault := func(pred func() bool) func() bool {
		return func() bool { return !flags.network && pred() }
	}
	rows = append(rows,
		row{section: "network", key: "listen_address",
			value:     func() string { return n.ListenAddress },
			isDefault: netDefault(func() bool { return n.ListenAddress == defaultListenAddress })},
		row{section: "network", key: "dial_peers",
			value:     func() string { return strings.Join(n.DialPeers, ", ") },
			isDefault: netDefault(func() bool { return len(n.DialPeers) == 0 })},
		row{section: "network", key: "max_pending_incoming",
			value:     u32(&n.MaxPendingIncoming),
			isDefault: netDefault(func() bool { return n.MaxPendingIncoming == 10 })},
		row{section: "network", key: "max_pending_outgoing",
			value:     u32(&n.MaxPendingOutgoing),
			isDefault: netDefault(func() bool { return n.MaxPendingOutgoing == 10 })},
		row{section: "network", key: "max_established_incoming",
			value:     u32(&n.MaxEstablishedIncoming),
			isDefault: netDefault(func() bool { return n.MaxEstablishedIncoming == 50 })},
		row{section: "network", key: "max_established_outgoing",
			value:     u32(&n.MaxEstablishedOutgoing),
			isDefault: netDefault(func() bool { return n.MaxEstablishedOutgoing == 50 })},
		row{section: "network", key: "max_established_per_peer",
			value:     u32(&n.MaxEstablishedPerPeer),
			isDefault: netDefault(func() bool { return n.MaxEstablishedPerPeer == 1 })},
		row{section: "network", key: "max_workbase_per_second",
			value:     u32(&n.MaxWorkbasePerSecond),
			isDefault: netDefault(func() bool { return n.MaxWorkbasePerSecond == 10 })},
		row{section: "network", key: "max_userworkbase_per_second",
			value:     u32(&n.MaxUserworkbasePerSecond),
			isDefault: netDefault(func() bool { return n.MaxUserworkbasePerSecond == 10 })},
		row{section: "network", key: "max_miningshare_per_second",
			value:     u32(&n.MaxMiningsharePerSecond),
			isDefault: netDefault(func() bool { return n.MaxMiningsharePerSecond == 100 })},
		row{section: "network", key: "max_inventory_per_second",
			value:     u32(&n.MaxInventoryPerSecond),
			isDefault: netDefault(func() bool { return n.MaxInventoryPerSecond == 100 })},
		row{section: "network", key: "max_transaction_per_second",
			value:     u32(&n.MaxTransactionPerSecond),
			isDefault: netDefault(func() bool { return n.MaxTransactionPerSecond == 100 })},
		row{section: "network", key: "rate_limit_window_secs",
			value:     u64(&n.RateLimitWindowSecs),
			isDefault: netDefault(func() bool { return n.RateLimitWindowSecs == 1 })},
		row{section: "network", key: "max_requests_per_second",
			value:     u64(&n.MaxRequestsPerSecond),
			isDefault: netDefault(func() bool { return n.MaxRequestsPerSecond == 1 })},
		row{section: "network", key: "peer_inactivity_timeout_secs",
			value:     u64(&n.PeerInactivityTimeoutSecs),
			isDefault: netDefault(func() bool { return n.PeerInactivityTimeoutSecs == 60 })},
		row{section: "network", key: "dial_timeout_secs",
			value:     u64(&n.DialTimeoutSecs),
			isDefault: netDefault(func() bool { return n.DialTimeoutSecs == 30 })},
	)

	if st := s.Store; st != nil {
		rows = append(rows,
			row{section: "store", key: "path",
				value:     func() string { return *st.Path },
				isDefault: func() bool { return *st.Path == defaultStorePath }},
			row{section: "store", key: "background_task_frequency_hours",
				value:     u64(&st.BackgroundTaskFrequencyHours),
				isDefault: func() bool { return st.BackgroundTaskFrequencyHours == defaultStoreFreq }},
			row{section: "store", key: "pplns_ttl_days",
				value:     u64(&st.PPLNSTTLDays),
				isDefault: func() bool { return st.PPLNSTTLDays == defaultStoreTTL }},
		)
	}

	if st := s.Stratum; st != nil {
		checked := v.stratum
		stratumDefault := func(pred func() bool) func() bool {
			return func() bool { return !flags.stratum && pred() }
		}
		rows = append(rows,
			row{section: "stratum", key: "hostname",
				value:     func() string { return st.Hostname },
				isDefault: stratumDefault(func() bool { return st.Hostname == defaultHostname })},
			row{section: "stratum", key: "port",
				value:     func() string { return strconv.FormatUint(uint64(st.Port), 10) },
				isDefault: stratumDefault(func() bool { return st.Port == defaultStratumPort })},
			row{section: "stratum", key: "start_difficulty",
				value:     u64(&st.StartDifficulty),
				isDefault: stratumDefault(func() bool { return st.StartDifficulty == defaultStartDifficulty })},
			row{section: "stratum", key: "minimum_difficulty",
				value:     u64(&st.MinimumDifficulty),
				isDefault: stratumDefault(func() bool { return st.MinimumDifficulty == defaultMinimumDifficulty })},
			row{section: "stratum", key: "maximum_difficulty",
				present: func() bool { return st.MaximumDifficulty != nil },
				value:   func() string { return strconv.FormatUint(*st.MaximumDifficulty, 10) }},
			row{section: "stratum", key: "solo_address",
				present: func() bool { return st.SoloAddress != nil },
				value:   func() string { return *st.SoloAddress }},
			row{section: "stratum", key: "zmqpubhashblock",
				value:     func() string { return st.ZMQPubHashBlock },
				isDefault: stratumDefault(func() bool { return st.ZMQPubHashBlock == defaultZMQPubHashBlock })},
			row{section: "stratum", key: "bootstrap_address",
				present: func() bool { return st.BootstrapAddress != nil },
				value:   func() string { return *st.BootstrapAddress }},
			row{section: "stratum", key: "donation_address",
				present: func() bool { return st.DonationAddress != nil },
				value:   func() string { return *st.DonationAddress }},
			row{section: "stratum", key: "donation",
				present: func() bool { return st.Donation != nil },
				value:   func() string { return formatBasisPoints(*st.Donation) }},
			row{section: "stratum", key: "fee_address",
				present: func() bool { return st.FeeAddress != nil },
				value:   func() string { return *st.FeeAddress }},
			row{section: "stratum", key: "fee",
				present: func() bool { return st.Fee != nil },
				value:   func() string { return formatBasisPoints(*st.Fee) }},
			row{section: "stratum", key: "network",
				value:     func() string { return checked.network.String() },
				isDefault: stratumDefault(func() bool { return checked.network == defaultNetwork })},
			row{section: "stratum", key: "version_mask",
				value:     func() string { return fmt.Sprintf("%08x", checked.versionMask) },
				isDefault: stratumDefault(func() bool { return checked.versionMask == defaultVersionMask })},
			row{section: "stratum", key: "difficulty_multiplier",
				value:     func() string { return fmt.Sprintf("%.1f", st.DifficultyMultiplier) },
				isDefault: stratumDefault(func() bool { return st.DifficultyMultiplier == defaultMultiplier })},
			row{section: "stratum", key: "ignore_difficulty",
				present: func() bool { return st.IgnoreDifficulty != nil },
				value:   func() string { return strconv.FormatBool(*st.IgnoreDifficulty) }},
			row{section: "stratum", key: "pool_signature",
				present: func() bool { return st.PoolSignature != nil },
				value:   func() string { return *st.PoolSignature }},
		)
	}

	if m := s.Miner; m != nil {
		// Graceful degradation, and the only one: a structurally invalid
		// pubkey substitutes a sentinel instead of failing the load.
		rows = append(rows, row{section: "miner", key: "pubkey",
			value: func() string {
				if !validPubkey(*m.Pubkey) {
					return invalidPubkey
				}
				return *m.Pubkey
			}})
	}

	if b := s.BitcoinRPC; b != nil {
		rows = append(rows,
			row{section: "bitcoinrpc", key: "url",
				value:     func() string { return *b.URL },
				isDefault: func() bool { return *b.URL == defaultRPCURL }},
			row{section: "bitcoinrpc", key: "username",
				value:     func() string { return *b.Username },
				isDefault: func() bool { return *b.Username == defaultRPCUsername }},
			row{section: "bitcoinrpc", key: "password",
				value: func() string { return maskSecret(*b.Password) }},
		)
	}

	l := &s.Logging
	loggingDefault := func(pred func() bool) func() bool {
		return func() bool { return !flags.logging && pred() }
	}
	rows = append(rows,
		row{section: "logging", key: "file",
			present: func() bool { return l.File != nil },
			value:   func() string { return *l.File }},
		row{section: "logging", key: "level",
			value:     func() string { return l.Level },
			isDefault: loggingDefault(func() bool { return l.Level == defaultLogLevel })},
		row{section: "logging", key: "stats_dir",
			value:     func() string { return l.StatsDir },
			isDefault: loggingDefault(func() bool { return l.StatsDir == defaultStatsDir })},
	)

	if a := s.API; a != nil {
		rows = append(rows,
			row{section: "api", key: "hostname",
				value:     func() string { return *a.Hostname },
				isDefault: func() bool { return *a.Hostname == defaultAPIHostname }},
			row{section: "api", key: "port",
				value: func() string { return strconv.FormatUint(uint64(*a.Port), 10) }},
			row{section: "api", key: "auth_user",
				present: func() bool { return a.AuthUser != nil },
				value:   func() string { return *a.AuthUser }},
			row{section: "api", key: "auth_token",
				present: func() bool { return a.AuthToken != nil },
				value:   func() string { return maskSecret(*a.AuthToken) }},
		)
	}

	entries := make([]models.PoolEntry, 0, len(rows))
	for _, r := range rows {
		if r.present != nil && !r.present() {
			continue
		}
		e := models.PoolEntry{Section: r.section, Key: r.key, Value: r.value()}
		if r.isDefault != nil {
			e.IsDefault = r.isDefault()
		}
		entries = append(entries, e)
	}
	return entries
}

// formatBasisPoints renders an integer basis-point share with its
// percentage: 100 → "100 bp (1%)", 150 → "150 bp (1.50%)".
func formatBasisPoints(bp uint16) string {
	pct := float64(bp) / 100.0
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("%d bp (%.0f%%)", bp, pct)
	}
	return fmt.Sprintf("%d bp (%.2f%%)", bp, pct)
}

// maskSecret hides a secret behind a fixed-width mask so neither the
// content nor the length leaks into the entry list.
func maskSecret(s string) string {
	if s == "" {
		return emptySentinel
	}
	return secretMask
}

// validPubkey reports whether s is a well-formed compressed secp256k1
// public key in hex.
func validPubkey(s string) bool {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return false
	}
	_, err = btcec.ParsePubKey(raw)
	return err == nil
}

func u32(v *uint32) func() string {
	return func() string { return strconv.FormatUint(uint64(*v), 10) }
}

func u64(v *uint64) func() string {
	return func() string { return strconv.FormatUint(*v, 10) }
}
