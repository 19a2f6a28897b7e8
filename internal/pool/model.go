// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package pool

// Settings is the unvalidated typed model of a pool-service configuration,
// deserialized from the merged TOML/env view. Optional sections are nil
// pointers when absent from every source; scalar fields still hold their
// intrinsic defaults after applyDefaults has run.
//
// Struct tags:
//   - koanf    — key inside the owning TOML table.
//   - validate — shape requirements enforced right after unmarshalling;
//     a failure here is a deserialization error, not a semantic one.
//     Required fields are pointers, so `required` fires on absence (nil)
//     only: a key explicitly written as an empty string or zero is
//     present and passes.
type Settings struct {
	Network    NetworkSettings  `koanf:"network"`
	Store      *StoreSettings   `koanf:"store"`
	Stratum    *StratumSettings `koanf:"stratum"`
	Miner      *MinerSettings   `koanf:"miner"`
	BitcoinRPC *RPCSettings     `koanf:"bitcoinrpc"`
	Logging    LoggingSettings  `koanf:"logging"`
	API        *APISettings     `koanf:"api"`
}

// StratumSettings configures the stratum server side of the pool.
// Address-shaped fields stay raw strings here; their decoded forms exist
// only on the validated side.
type StratumSettings struct {
	Hostname             string  `koanf:"hostname"`
	Port                 uint16  `koanf:"port"`
	StartDifficulty      uint64  `koanf:"start_difficulty"`
	MinimumDifficulty    uint64  `koanf:"minimum_difficulty"`
	MaximumDifficulty    *uint64 `koanf:"maximum_difficulty"`
	SoloAddress          *string `koanf:"solo_address"`
	ZMQPubHashBlock      string  `koanf:"zmqpubhashblock"`
	BootstrapAddress     *string `koanf:"bootstrap_address"`
	DonationAddress      *string `koanf:"donation_address"`
	Donation             *uint16 `koanf:"donation"`
	FeeAddress           *string `koanf:"fee_address"`
	Fee                  *uint16 `koanf:"fee"`
	Network              string  `koanf:"network"`
	VersionMask          string  `koanf:"version_mask"`
	DifficultyMultiplier float64 `koanf:"difficulty_multiplier"`
	IgnoreDifficulty     *bool   `koanf:"ignore_difficulty"`
	PoolSignature        *string `koanf:"pool_signature"`
}

// NetworkSettings configures the p2p layer of the pool.
type NetworkSettings struct {
	ListenAddress             string   `koanf:"listen_address"`
	DialPeers                 []string `koanf:"dial_peers"`
	MaxPendingIncoming        uint32   `koanf:"max_pending_incoming"`
	MaxPendingOutgoing        uint32   `koanf:"max_pending_outgoing"`
	MaxEstablishedIncoming    uint32   `koanf:"max_established_incoming"`
	MaxEstablishedOutgoing    uint32   `koanf:"max_established_outgoing"`
	MaxEstablishedPerPeer     uint32   `koanf:"max_established_per_peer"`
	MaxWorkbasePerSecond      uint32   `koanf:"max_workbase_per_second"`
	MaxUserworkbasePerSecond  uint32   `koanf:"max_userworkbase_per_second"`
	MaxMiningsharePerSecond   uint32   `koanf:"max_miningshare_per_second"`
	MaxInventoryPerSecond     uint32   `koanf:"max_inventory_per_second"`
	MaxTransactionPerSecond   uint32   `koanf:"max_transaction_per_second"`
	RateLimitWindowSecs       uint64   `koanf:"rate_limit_window_secs"`
	MaxRequestsPerSecond      uint64   `koanf:"max_requests_per_second"`
	PeerInactivityTimeoutSecs uint64   `koanf:"peer_inactivity_timeout_secs"`
	DialTimeoutSecs           uint64   `koanf:"dial_timeout_secs"`
}

// StoreSettings configures the share store.
type StoreSettings struct {
	Path                         *string `koanf:"path" validate:"required"`
	BackgroundTaskFrequencyHours uint64  `koanf:"background_task_frequency_hours"`
	PPLNSTTLDays                 uint64  `koanf:"pplns_ttl_days"`
}

// MinerSettings identifies the local miner.
type MinerSettings struct {
	Pubkey *string `koanf:"pubkey" validate:"required"`
}

// RPCSettings configures the upstream bitcoind RPC connection. All three
// keys must be written when the section is; an explicitly empty password
// is accepted, a missing one is not.
type RPCSettings struct {
	URL      *string `koanf:"url" validate:"required"`
	Username *string `koanf:"username" validate:"required"`
	Password *string `koanf:"password" validate:"required"`
}

// LoggingSettings configures pool logging output.
type LoggingSettings struct {
	File     *string `koanf:"file"`
	Level    string  `koanf:"level"`
	StatsDir string  `koanf:"stats_dir"`
}

// APISettings configures the pool HTTP API.
type APISettings struct {
	Hostname  *string `koanf:"hostname" validate:"required"`
	Port      *uint16 `koanf:"port" validate:"required"`
	AuthUser  *string `koanf:"auth_user"`
	AuthToken *string `koanf:"auth_token"`
}
