// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package pool

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// ChainNetwork is the bitcoin network the pool operates on. The string
// form is both the accepted configuration spelling and the display value.
type ChainNetwork string

const (
	NetworkMainnet ChainNetwork = "main"
	NetworkTestnet ChainNetwork = "test"
	NetworkSignet  ChainNetwork = "signet"
	NetworkRegtest ChainNetwork = "regtest"
)

// ParseChainNetwork matches s against the fixed network enumeration.
// Matching is case-sensitive: "Signet" is not a network.
func ParseChainNetwork(s string) (ChainNetwork, error) {
	switch n := ChainNetwork(s); n {
	case NetworkMainnet, NetworkTestnet, NetworkSignet, NetworkRegtest:
		return n, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

// Params returns the chain parameters used to decode and check addresses
// for this network.
func (n ChainNetwork) Params() *chaincfg.Params {
	switch n {
	case NetworkMainnet:
		return &chaincfg.MainNetParams
	case NetworkTestnet:
		return &chaincfg.TestNet3Params
	case NetworkSignet:
		return &chaincfg.SigNetParams
	case NetworkRegtest:
		return &chaincfg.RegressionNetParams
	default:
		return nil
	}
}

func (n ChainNetwork) String() string { return string(n) }
