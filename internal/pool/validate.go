// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 nodeconf authors

package pool

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/avolkov/nodeconf/internal/source"
)

// maxPoolSignatureLength bounds the free-text signature miners embed in
// coinbase transactions.
const maxPoolSignatureLength = 16

// ValidatedSettings is the post-validation form of Settings. Its fields
// are unexported on purpose: the only way to obtain one is through
// Settings.Validate, and Flatten is defined on this type alone, so every
// flattened value has passed the semantic checks exactly once.
type ValidatedSettings struct {
	settings *Settings
	stratum  *checkedStratum
}

// checkedStratum carries the derived forms that exist only after
// validation: the parsed network and version mask, and the decoded,
// network-checked addresses.
type checkedStratum struct {
	network     ChainNetwork
	versionMask uint32
	bootstrap   btcutil.Address
	donation    btcutil.Address
	fee         btcutil.Address
}

// Validate runs the semantic checks over the deserialized settings and
// returns the validated form, or the first failure wrapped in
// source.ErrValidation. Validation never mutates the receiver; on failure
// the unvalidated settings are simply dropped.
func (s *Settings) Validate() (*ValidatedSettings, error) {
	v := &ValidatedSettings{settings: s}
	if s.Stratum == nil {
		return v, nil
	}

	st := s.Stratum
	if st.PoolSignature != nil && len(*st.PoolSignature) > maxPoolSignatureLength {
		return nil, validationErr("pool_signature",
			fmt.Sprintf("exceeds maximum length of %d", maxPoolSignatureLength))
	}

	network, err := ParseChainNetwork(st.Network)
	if err != nil {
		return nil, validationErr("network", err.Error())
	}

	mask, err := strconv.ParseUint(st.VersionMask, 16, 32)
	if err != nil {
		return nil, validationErr("version_mask", "must be hexadecimal (e.g. 1fffe000)")
	}

	checked := &checkedStratum{network: network, versionMask: uint32(mask)}

	// Address-shaped fields must decode AND belong to the configured
	// network. Both failure modes report the same way: callers only need
	// to know which field is unusable.
	if checked.bootstrap, err = decodeAddress("bootstrap_address", st.BootstrapAddress, network); err != nil {
		return nil, err
	}
	if checked.donation, err = decodeAddress("donation_address", st.DonationAddress, network); err != nil {
		return nil, err
	}
	if checked.fee, err = decodeAddress("fee_address", st.FeeAddress, network); err != nil {
		return nil, err
	}
	if _, err = decodeAddress("solo_address", st.SoloAddress, network); err != nil {
		return nil, err
	}

	// Dependent pairs: a configured share requires a payout destination.
	if st.Donation != nil && checked.donation == nil {
		return nil, validationErr("donation", "donation_address is required when donation is set")
	}
	if st.Fee != nil && checked.fee == nil {
		return nil, validationErr("fee", "fee_address is required when fee is set")
	}

	v.stratum = checked
	return v, nil
}

// decodeAddress decodes an optional address field and checks it against
// the configured network. A nil field decodes to nil.
func decodeAddress(field string, raw *string, network ChainNetwork) (btcutil.Address, error) {
	if raw == nil {
		return nil, nil
	}
	addr, err := btcutil.DecodeAddress(*raw, network.Params())
	if err != nil || !addr.IsForNet(network.Params()) {
		return nil, validationErr(field, "invalid address for network "+network.String())
	}
	return addr, nil
}

func validationErr(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", source.ErrValidation, field, msg)
}
