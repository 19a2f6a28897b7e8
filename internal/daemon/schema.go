// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package daemon

import "github.com/avolkov/nodeconf/models"

// Registry is the static catalog of known daemon configuration keys.
// It is built once at package init and read-only afterwards, which keeps
// concurrent resolutions safe without locking.
type Registry struct {
	entries []models.SchemaEntry
	index   map[string]*models.SchemaEntry
}

// Lookup returns the schema entry for key, if the registry knows it.
func (r *Registry) Lookup(key string) (*models.SchemaEntry, bool) {
	e, ok := r.index[key]
	return e, ok
}

// Entries returns all schema entries in declaration order. The slice is
// shared; callers must not mutate it.
func (r *Registry) Entries() []models.SchemaEntry {
	return r.entries
}

func newRegistry(entries []models.SchemaEntry) *Registry {
	r := &Registry{entries: entries, index: make(map[string]*models.SchemaEntry, len(entries))}
	for i := range r.entries {
		r.index[r.entries[i].Key] = &r.entries[i]
	}
	return r
}

// defaultRegistry lists every daemon option the viewer understands, in the
// order entries appear on screen: general, network, RPC, wallet, debug,
// mining, ZMQ. The order is part of the output contract; do not sort.
var defaultRegistry = newRegistry([]models.SchemaEntry{
	// general
	{Key: "datadir", Default: "", Kind: models.KindString, Description: "Data directory for blockchain and wallet files"},
	{Key: "txindex", Default: "0", Kind: models.KindBool, Description: "Maintain a full transaction index"},
	{Key: "prune", Default: "0", Kind: models.KindInt, Description: "Prune block storage to the given target in MiB"},
	{Key: "blocksonly", Default: "0", Kind: models.KindBool, Description: "Reject unconfirmed transactions from peers"},
	{Key: "dbcache", Default: "450", Kind: models.KindInt, Description: "Database cache size in MiB"},
	{Key: "maxmempool", Default: "300", Kind: models.KindInt, Description: "Maximum memory pool size in MiB"},
	{Key: "pid", Default: "bitcoind.pid", Kind: models.KindString, Description: "PID file name"},

	// network
	{Key: "testnet", Default: "0", Kind: models.KindBool, Description: "Run on the test network"},
	{Key: "regtest", Default: "0", Kind: models.KindBool, Description: "Run a private regression-test network"},
	{Key: "signet", Default: "0", Kind: models.KindBool, Description: "Run on the signet network"},
	{Key: "listen", Default: "1", Kind: models.KindBool, Description: "Accept inbound connections"},
	{Key: "bind", Default: "0.0.0.0", Kind: models.KindString, Description: "Bind to the given address for peers"},
	{Key: "port", Default: "8333", Kind: models.KindInt, Description: "Listen for peer connections on this port"},
	{Key: "maxconnections", Default: "125", Kind: models.KindInt, Description: "Maximum number of peer connections"},
	{Key: "proxy", Default: "", Kind: models.KindString, Description: "SOCKS5 proxy for outbound connections"},
	{Key: "onion", Default: "", Kind: models.KindString, Description: "SOCKS5 proxy for Tor onion services"},
	{Key: "upnp", Default: "0", Kind: models.KindBool, Description: "Map the listening port via UPnP"},

	// rpc
	{Key: "server", Default: "0", Kind: models.KindBool, Description: "Accept JSON-RPC commands"},
	{Key: "rpcuser", Default: "", Kind: models.KindString, Description: "Username for JSON-RPC connections"},
	{Key: "rpcpassword", Default: "", Kind: models.KindString, Description: "Password for JSON-RPC connections"},
	{Key: "rpcauth", Default: "", Kind: models.KindString, Description: "Salted credentials for JSON-RPC (user:salt$hash)"},
	{Key: "rpcport", Default: "8332", Kind: models.KindInt, Description: "Listen for JSON-RPC connections on this port"},
	{Key: "rpcbind", Default: "127.0.0.1", Kind: models.KindString, Description: "Bind to the given address for JSON-RPC"},
	{Key: "rpcallowip", Default: "", Kind: models.KindString, Description: "Allow JSON-RPC connections from this source"},
	{Key: "rpcthreads", Default: "4", Kind: models.KindInt, Description: "Number of threads serving RPC calls"},

	// wallet
	{Key: "disablewallet", Default: "0", Kind: models.KindBool, Description: "Do not load the wallet"},
	{Key: "fallbackfee", Default: "0", Kind: models.KindFloat, Description: "Fee rate when estimation has insufficient data (BTC/kvB)"},
	{Key: "discardfee", Default: "0.0001", Kind: models.KindFloat, Description: "Rate below which change is discarded as fee (BTC/kvB)"},
	{Key: "mintxfee", Default: "0.00001", Kind: models.KindFloat, Description: "Minimum fee rate for transaction creation (BTC/kvB)"},
	{Key: "paytxfee", Default: "0", Kind: models.KindFloat, Description: "Fee rate added to transactions you send (BTC/kvB)"},

	// debug
	{Key: "debug", Default: "0", Kind: models.KindString, Description: "Output debug information for the given category"},
	{Key: "logips", Default: "0", Kind: models.KindBool, Description: "Include IP addresses in debug output"},
	{Key: "shrinkdebugfile", Default: "1", Kind: models.KindBool, Description: "Shrink debug.log on startup"},

	// mining
	{Key: "blockmaxweight", Default: "3996000", Kind: models.KindInt, Description: "Maximum weight of created blocks"},
	{Key: "minrelaytxfee", Default: "0.00001", Kind: models.KindFloat, Description: "Minimum fee rate for relaying (BTC/kvB)"},

	// zmq
	{Key: "zmqpubhashblock", Default: "", Kind: models.KindString, Description: "Publish block hashes on this ZMQ endpoint"},
	{Key: "zmqpubhashtx", Default: "", Kind: models.KindString, Description: "Publish transaction hashes on this ZMQ endpoint"},
	{Key: "zmqpubrawblock", Default: "", Kind: models.KindString, Description: "Publish raw blocks on this ZMQ endpoint"},
	{Key: "zmqpubrawtx", Default: "", Kind: models.KindString, Description: "Publish raw transactions on this ZMQ endpoint"},
})

// DefaultRegistry returns the process-wide daemon schema registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
