// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package pool

import (
	koanf "github.com/knadh/koanf/v2"
)

// Intrinsic defaults. The flatten table compares resolved values against
// these same constants when computing the default flag, so keep the two
// in sync by construction: flatten.go references the constants, never
// literals.
const (
	defaultHostname          = "0.0.0.0"
	defaultStratumPort       = uint16(3333)
	defaultStartDifficulty   = uint64(10000)
	defaultMinimumDifficulty = uint64(100)
	defaultZMQPubHashBlock   = "tcp://127.0.0.1:28332"
	defaultNetwork           = NetworkSignet
	defaultVersionMask       = uint32(0x1fffe000)
	defaultVersionMaskHex    = "1fffe000"
	defaultMultiplier        = 1.0

	defaultListenAddress = "/ip4/0.0.0.0/tcp/6884"

	defaultStorePath = "./store.db"
	defaultStoreFreq = uint64(1)
	defaultStoreTTL  = uint64(7)

	defaultRPCURL      = "http://127.0.0.1:38332"
	defaultRPCUsername = "p2pool"

	defaultLogLevel = "info"
	defaultStatsDir = "./logs/stats"

	defaultAPIHostname = "127.0.0.1"
)

// fillDefault sets *dst to def unless the merged source view defines path.
// Presence is what decides: a key explicitly written as its type's zero or
// empty value is kept exactly as written.
func fillDefault[T any](k *koanf.Koanf, path string, dst *T, def T) {
	if !k.Exists(path) {
		*dst = def
	}
}

// applyDefaults fills every field absent from the sources with its
// intrinsic default. Optional sections keep their nil/non-nil identity:
// defaults never materialize a section the sources did not mention.
func applyDefaults(s *Settings, k *koanf.Koanf) {
	n := &s.Network
	fillDefault(k, "network.listen_address", &n.ListenAddress, defaultListenAddress)
	fillDefault(k, "network.max_pending_incoming", &n.MaxPendingIncoming, 10)
	fillDefault(k, "network.max_pending_outgoing", &n.MaxPendingOutgoing, 10)
	fillDefault(k, "network.max_established_incoming", &n.MaxEstablishedIncoming, 50)
	fillDefault(k, "network.max_established_outgoing", &n.MaxEstablishedOutgoing, 50)
	fillDefault(k, "network.max_established_per_peer", &n.MaxEstablishedPerPeer, 1)
	fillDefault(k, "network.max_workbase_per_second", &n.MaxWorkbasePerSecond, 10)
	fillDefault(k, "network.max_userworkbase_per_second", &n.MaxUserworkbasePerSecond, 10)
	fillDefault(k, "network.max_miningshare_per_second", &n.MaxMiningsharePerSecond, 100)
	fillDefault(k, "network.max_inventory_per_second", &n.MaxInventoryPerSecond, 100)
	fillDefault(k, "network.max_transaction_per_second", &n.MaxTransactionPerSecond, 100)
	fillDefault(k, "network.rate_limit_window_secs", &n.RateLimitWindowSecs, 1)
	fillDefault(k, "network.max_requests_per_second", &n.MaxRequestsPerSecond, 1)
	fillDefault(k, "network.peer_inactivity_timeout_secs", &n.PeerInactivityTimeoutSecs, 60)
	fillDefault(k, "network.dial_timeout_secs", &n.DialTimeoutSecs, 30)

	fillDefault(k, "logging.level", &s.Logging.Level, defaultLogLevel)
	fillDefault(k, "logging.stats_dir", &s.Logging.StatsDir, defaultStatsDir)

	if st := s.Stratum; st != nil {
		fillDefault(k, "stratum.hostname", &st.Hostname, defaultHostname)
		fillDefault(k, "stratum.port", &st.Port, defaultStratumPort)
		fillDefault(k, "stratum.start_difficulty", &st.StartDifficulty, defaultStartDifficulty)
		fillDefault(k, "stratum.minimum_difficulty", &st.MinimumDifficulty, defaultMinimumDifficulty)
		fillDefault(k, "stratum.zmqpubhashblock", &st.ZMQPubHashBlock, defaultZMQPubHashBlock)
		fillDefault(k, "stratum.network", &st.Network, string(defaultNetwork))
		fillDefault(k, "stratum.version_mask", &st.VersionMask, defaultVersionMaskHex)
		fillDefault(k, "stratum.difficulty_multiplier", &st.DifficultyMultiplier, defaultMultiplier)
	}

	if st := s.Store; st != nil {
		fillDefault(k, "store.background_task_frequency_hours", &st.BackgroundTaskFrequencyHours, defaultStoreFreq)
		fillDefault(k, "store.pplns_ttl_days", &st.PPLNSTTLDays, defaultStoreTTL)
	}
}
