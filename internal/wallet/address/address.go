// Package address validates the bech32 identifiers handled by the wallet:
// payment addresses, stake addresses and pool ids. Validation stops at the
// encoding and prefix; address internals belong to the key-derivation
// collaborator.
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

var (
	paymentPrefixes = map[string]struct{}{"addr": {}, "addr_test": {}}
	stakePrefixes   = map[string]struct{}{"stake": {}, "stake_test": {}}
	poolPrefixes    = map[string]struct{}{"pool": {}}
)

// ValidatePayment checks a payment address.
func ValidatePayment(addr string) error {
	return validate(addr, paymentPrefixes, "payment address")
}

// ValidateStake checks a stake (reward account) address.
func ValidateStake(addr string) error {
	return validate(addr, stakePrefixes, "stake address")
}

// ValidatePool checks a pool id.
func ValidatePool(id string) error {
	return validate(id, poolPrefixes, "pool id")
}

func validate(encoded string, prefixes map[string]struct{}, kind string) error {
	if encoded == "" {
		return fmt.Errorf("%s is empty", kind)
	}

	// Payment addresses exceed the 90 character bech32 checksum limit, so
	// decode without it.
	hrp, _, err := bech32.DecodeNoLimit(encoded)
	if err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	if _, ok := prefixes[hrp]; !ok {
		return fmt.Errorf("%s has unexpected prefix %q", kind, hrp)
	}
	return nil
}
