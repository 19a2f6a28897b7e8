package pool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/nodeconf/internal/source"
	"github.com/avolkov/nodeconf/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const (
	signetAddr   = "tb1qyazxde6558qj6z3d9np5e6msmrspwpf6k0qggk"
	signetAddr2  = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"
	mainnetAddr  = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	validPubkeyS = "020202020202020202020202020202020202020202020202020202020202020202"
)

func writeCfg(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "p2pool.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func noEnv() map[string]string { return map[string]string{} }

func findPoolEntry(t *testing.T, entries []models.PoolEntry, section, key string) models.PoolEntry {
	t.Helper()
	for _, e := range entries {
		if e.Section == section && e.Key == key {
			return e
		}
	}
	t.Fatalf("entry %s.%s not found", section, key)
	return models.PoolEntry{}
}

const fullConfig = `
[network]
listen_address = "/ip4/127.0.0.1/tcp/6884"
dial_peers = ["p1", "p2"]

[store]
path = "./store.db"
background_task_frequency_hours = 24
pplns_ttl_days = 7

[stratum]
hostname = "0.0.0.0"
port = 3333
start_difficulty = 10000
minimum_difficulty = 100
maximum_difficulty = 1000000
solo_address = "tb1qyazxde6558qj6z3d9np5e6msmrspwpf6k0qggk"
bootstrap_address = "tb1qyazxde6558qj6z3d9np5e6msmrspwpf6k0qggk"
donation_address = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"
donation = 100
fee_address = "tb1qyazxde6558qj6z3d9np5e6msmrspwpf6k0qggk"
fee = 50
zmqpubhashblock = "tcp://127.0.0.1:28332"
network = "signet"
version_mask = "1fffe000"
difficulty_multiplier = 1.0
ignore_difficulty = true
pool_signature = "TestPool"

[miner]
pubkey = "020202020202020202020202020202020202020202020202020202020202020202"

[bitcoinrpc]
url = "http://127.0.0.1:38332"
username = "user"
password = "pass"

[logging]
file = "./logs/p2pool.log"
level = "debug"
stats_dir = "./logs/stats"

[api]
hostname = "127.0.0.1"
port = 46884
auth_user = "admin"
auth_token = "token"
`

// ── Resolve: happy paths ──────────────────────────────────────────────────────

// TestResolve_FullConfigFlattens verifies a complete configuration
// resolves end to end with the expected rendering and provenance.
func TestResolve_FullConfigFlattens(t *testing.T) {
	entries, err := Resolve(writeCfg(t, fullConfig), noEnv())
	require.NoError(t, err)

	listen := findPoolEntry(t, entries, "network", "listen_address")
	assert.Equal(t, "/ip4/127.0.0.1/tcp/6884", listen.Value)
	assert.False(t, listen.IsDefault)

	hostname := findPoolEntry(t, entries, "stratum", "hostname")
	assert.False(t, hostname.IsDefault, "explicit section restating the default is still explicit")

	assert.Equal(t, "100 bp (1%)", findPoolEntry(t, entries, "stratum", "donation").Value)
	assert.Equal(t, "50 bp (0.50%)", findPoolEntry(t, entries, "stratum", "fee").Value)
	assert.Equal(t, "*****", findPoolEntry(t, entries, "bitcoinrpc", "password").Value)
	assert.Equal(t, "*****", findPoolEntry(t, entries, "api", "auth_token").Value)
	assert.Equal(t, "signet", findPoolEntry(t, entries, "stratum", "network").Value)
	assert.Equal(t, "1fffe000", findPoolEntry(t, entries, "stratum", "version_mask").Value)
	assert.Equal(t, validPubkeyS, findPoolEntry(t, entries, "miner", "pubkey").Value)
	assert.Equal(t, "p1, p2", findPoolEntry(t, entries, "network", "dial_peers").Value)
	assert.Equal(t, "true", findPoolEntry(t, entries, "stratum", "ignore_difficulty").Value)
}

// TestResolve_MinimalStratumUsesDefaults verifies serde-style defaults
// materialize for every field absent from the file.
func TestResolve_MinimalStratumUsesDefaults(t *testing.T) {
	entries, err := Resolve(writeCfg(t, "[stratum]\nnetwork = \"signet\"\n"), noEnv())
	require.NoError(t, err)

	assert.Equal(t, "3333", findPoolEntry(t, entries, "stratum", "port").Value)
	assert.Equal(t, "100", findPoolEntry(t, entries, "stratum", "minimum_difficulty").Value)
	assert.Equal(t, "1fffe000", findPoolEntry(t, entries, "stratum", "version_mask").Value)
	assert.Equal(t, "1.0", findPoolEntry(t, entries, "stratum", "difficulty_multiplier").Value)
}

// TestResolve_SectionPresenceDrivesDefaultFlag verifies the explicit-
// section rule: a [stratum] table restating a default is non-default,
// while every network.* key stays default because [network] is absent.
func TestResolve_SectionPresenceDrivesDefaultFlag(t *testing.T) {
	entries, err := Resolve(writeCfg(t, "[stratum]\nport = 3333\n"), noEnv())
	require.NoError(t, err)

	port := findPoolEntry(t, entries, "stratum", "port")
	assert.Equal(t, "3333", port.Value)
	assert.False(t, port.IsDefault)

	for _, e := range entries {
		if e.Section == "network" {
			assert.True(t, e.IsDefault, "network.%s", e.Key)
		}
	}
}

// TestResolve_AbsentOptionalFieldsOmitted verifies optional fields that
// no source sets do not appear at all.
func TestResolve_AbsentOptionalFieldsOmitted(t *testing.T) {
	entries, err := Resolve(writeCfg(t, "[stratum]\nnetwork = \"signet\"\n"), noEnv())
	require.NoError(t, err)

	for _, e := range entries {
		assert.NotEqual(t, "solo_address", e.Key)
		assert.NotEqual(t, "maximum_difficulty", e.Key)
	}
}

// TestResolve_AddressRoundTrips verifies an address valid for the
// configured network is emitted exactly as written.
func TestResolve_AddressRoundTrips(t *testing.T) {
	cfg := "[stratum]\nnetwork = \"signet\"\nsolo_address = \"" + signetAddr + "\"\n"
	entries, err := Resolve(writeCfg(t, cfg), noEnv())
	require.NoError(t, err)

	assert.Equal(t, signetAddr, findPoolEntry(t, entries, "stratum", "solo_address").Value)
}

// ── Resolve: presence semantics ───────────────────────────────────────────────

// TestResolve_ExplicitZeroSurvivesDefaults verifies defaulting is driven
// by key presence, never by value: a key written as its type's zero
// resolves to zero instead of the intrinsic default.
func TestResolve_ExplicitZeroSurvivesDefaults(t *testing.T) {
	cfg := "[network]\ndial_timeout_secs = 0\n\n[stratum]\nport = 0\nnetwork = \"signet\"\n"
	entries, err := Resolve(writeCfg(t, cfg), noEnv())
	require.NoError(t, err)

	port := findPoolEntry(t, entries, "stratum", "port")
	assert.Equal(t, "0", port.Value)
	assert.False(t, port.IsDefault)

	dial := findPoolEntry(t, entries, "network", "dial_timeout_secs")
	assert.Equal(t, "0", dial.Value)
	assert.False(t, dial.IsDefault)
}

// TestResolve_ExplicitEmptyRequiredFieldAccepted verifies a required key
// written as an empty string satisfies the presence requirement.
func TestResolve_ExplicitEmptyRequiredFieldAccepted(t *testing.T) {
	entries, err := Resolve(writeCfg(t, "[store]\npath = \"\"\n"), noEnv())
	require.NoError(t, err)

	p := findPoolEntry(t, entries, "store", "path")
	assert.Equal(t, "", p.Value)
	assert.False(t, p.IsDefault)
}

// TestResolve_MissingRPCPasswordRejected verifies a bitcoinrpc section
// without a password key fails the shape check; "absent" and "explicitly
// empty" must not collapse.
func TestResolve_MissingRPCPasswordRejected(t *testing.T) {
	cfg := "[bitcoinrpc]\nurl = \"http://127.0.0.1:38332\"\nusername = \"p2pool\"\n"
	_, err := Resolve(writeCfg(t, cfg), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrDeserialize)
}

// ── Resolve: environment overrides ────────────────────────────────────────────

// TestResolve_EnvOverrideWinsOverFile verifies the injected environment
// strictly beats the file for the same field.
func TestResolve_EnvOverrideWinsOverFile(t *testing.T) {
	path := writeCfg(t, "[stratum]\nport = 3333\nnetwork = \"signet\"\n")
	env := map[string]string{"P2POOL_STRATUM_PORT": "9999"}

	entries, err := Resolve(path, env)
	require.NoError(t, err)
	assert.Equal(t, "9999", findPoolEntry(t, entries, "stratum", "port").Value)
}

// TestResolve_EnvOverrideMultiWordField verifies section matching happens
// before the field split, so multi-word field names survive.
func TestResolve_EnvOverrideMultiWordField(t *testing.T) {
	path := writeCfg(t, "[stratum]\nnetwork = \"signet\"\n")
	env := map[string]string{"P2POOL_STRATUM_START_DIFFICULTY": "20000"}

	entries, err := Resolve(path, env)
	require.NoError(t, err)
	assert.Equal(t, "20000", findPoolEntry(t, entries, "stratum", "start_difficulty").Value)
}

// TestResolve_EnvOnlyWithoutFile verifies an override alone classifies
// the load as this domain even when the file is missing.
func TestResolve_EnvOnlyWithoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	env := map[string]string{"P2POOL_STRATUM_PORT": "9999"}

	entries, err := Resolve(path, env)
	require.NoError(t, err)
	assert.Equal(t, "9999", findPoolEntry(t, entries, "stratum", "port").Value)
}

// ── Resolve: error kinds ──────────────────────────────────────────────────────

// TestResolve_DomainMismatch verifies a file with no recognized section
// and no override is rejected with the distinct domain error, never
// silently parsed as defaults.
func TestResolve_DomainMismatch(t *testing.T) {
	_, err := Resolve(writeCfg(t, "foo = \"bar\"\nanswer = 42\n"), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrDomainMismatch)
}

// TestResolve_BadTOMLIsSourceFormatError verifies an unparseable file in
// this domain reports the format error kind.
func TestResolve_BadTOMLIsSourceFormatError(t *testing.T) {
	_, err := Resolve(writeCfg(t, "[stratum]\nport = = 3\n"), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrSourceFormat)
}

// TestResolve_MissingStorePath verifies a present section missing a
// required field is a deserialization error, not a semantic one.
func TestResolve_MissingStorePath(t *testing.T) {
	_, err := Resolve(writeCfg(t, "[store]\npplns_ttl_days = 14\n"), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrDeserialize)
}

// TestResolve_InvalidBootstrapAddress verifies a structurally invalid
// address fails the load with the field name in the message.
func TestResolve_InvalidBootstrapAddress(t *testing.T) {
	cfg := "[stratum]\nnetwork = \"signet\"\nbootstrap_address = \"invalid\"\n"
	_, err := Resolve(writeCfg(t, cfg), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrValidation)
	assert.Contains(t, err.Error(), "bootstrap_address")
}

// TestResolve_WrongNetworkAddressRejected verifies an address valid in
// structure but for the wrong network is rejected the same way.
func TestResolve_WrongNetworkAddressRejected(t *testing.T) {
	cfg := "[stratum]\nnetwork = \"signet\"\nbootstrap_address = \"" + mainnetAddr + "\"\n"
	_, err := Resolve(writeCfg(t, cfg), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrValidation)
	assert.Contains(t, err.Error(), "bootstrap_address")
}

// TestResolve_PoolSignatureTooLong verifies the 16-character bound is a
// hard failure, never a silent truncation.
func TestResolve_PoolSignatureTooLong(t *testing.T) {
	cfg := "[stratum]\nnetwork = \"signet\"\npool_signature = \"ThisIsWayTooLongForASignature\"\n"
	_, err := Resolve(writeCfg(t, cfg), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrValidation)
	assert.Contains(t, err.Error(), "pool_signature")
}

// TestResolve_DonationWithoutAddress verifies the dependent-field rule
// names the missing counterpart.
func TestResolve_DonationWithoutAddress(t *testing.T) {
	cfg := "[stratum]\nnetwork = \"signet\"\ndonation = 100\n"
	_, err := Resolve(writeCfg(t, cfg), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrValidation)
	assert.Contains(t, err.Error(), "donation_address is required")
}

// TestResolve_FeeWithoutAddress mirrors the donation rule for fees.
func TestResolve_FeeWithoutAddress(t *testing.T) {
	cfg := "[stratum]\nnetwork = \"signet\"\nfee = 50\n"
	_, err := Resolve(writeCfg(t, cfg), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrValidation)
	assert.Contains(t, err.Error(), "fee_address is required")
}

// TestResolve_MalformedVersionMask verifies non-hex masks fail with the
// field-specific message.
func TestResolve_MalformedVersionMask(t *testing.T) {
	cfg := "[stratum]\nnetwork = \"signet\"\nversion_mask = \"zzzz\"\n"
	_, err := Resolve(writeCfg(t, cfg), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrValidation)
	assert.Contains(t, err.Error(), "version_mask")
}

// TestResolve_NetworkIsCaseSensitive verifies "Signet" is not a network.
func TestResolve_NetworkIsCaseSensitive(t *testing.T) {
	cfg := "[stratum]\nnetwork = \"Signet\"\n"
	_, err := Resolve(writeCfg(t, cfg), noEnv())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrValidation)
	assert.Contains(t, err.Error(), "network")
}

// ── Resolve: graceful degradation ─────────────────────────────────────────────

// TestResolve_InvalidPubkeySubstitutesSentinel verifies the one check
// that degrades instead of failing: a bad miner pubkey becomes a
// sentinel value and the rest of the list still resolves.
func TestResolve_InvalidPubkeySubstitutesSentinel(t *testing.T) {
	cfg := "[miner]\npubkey = \"deadbeef\"\n"
	entries, err := Resolve(writeCfg(t, cfg), noEnv())
	require.NoError(t, err)

	assert.Equal(t, "<invalid pubkey>", findPoolEntry(t, entries, "miner", "pubkey").Value)
	findPoolEntry(t, entries, "logging", "level")
}

// TestResolve_EmptySecretShowsSentinel verifies the empty-secret case is
// distinguishable from a set one without leaking either.
func TestResolve_EmptySecretShowsSentinel(t *testing.T) {
	cfg := "[bitcoinrpc]\nurl = \"http://127.0.0.1:38332\"\nusername = \"p2pool\"\npassword = \"\"\n"
	entries, err := Resolve(writeCfg(t, cfg), noEnv())
	require.NoError(t, err)

	assert.Equal(t, "<empty>", findPoolEntry(t, entries, "bitcoinrpc", "password").Value)
}
