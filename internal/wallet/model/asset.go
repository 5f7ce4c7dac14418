package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInsufficientAssets is returned when subtracting a bundle would drive
// any asset quantity negative.
var ErrInsufficientAssets = errors.New("insufficient assets")

// Asset is a quantity of a secondary asset identified by (policy, name).
type Asset struct {
	PolicyID  string `json:"policyId"`
	AssetName string `json:"assetName"`
	Quantity  uint64 `json:"quantity"`
}

func (a Asset) key() assetKey {
	return assetKey{policyID: a.PolicyID, assetName: a.AssetName}
}

type assetKey struct {
	policyID  string
	assetName string
}

// AssetBundle is a set of assets keyed by (policyId, assetName). It is kept
// sorted by key so that iteration order is deterministic and equality is
// content based, regardless of insertion order. A bundle never holds two
// entries with the same key or an entry with zero quantity.
type AssetBundle []Asset

// NewAssetBundle builds a bundle from the given assets, summing quantities
// for duplicate keys and dropping zero quantities.
func NewAssetBundle(assets ...Asset) AssetBundle {
	return AssetBundle(nil).Merge(assets)
}

// Merge returns a new bundle with quantities for matching keys summed.
func (b AssetBundle) Merge(other []Asset) AssetBundle {
	if len(other) == 0 {
		return b.clone()
	}

	byKey := make(map[assetKey]uint64, len(b)+len(other))
	for _, a := range b {
		byKey[a.key()] += a.Quantity
	}
	for _, a := range other {
		byKey[a.key()] += a.Quantity
	}

	return fromMap(byKey)
}

// Sub returns a new bundle with the quantities of other removed, failing
// with ErrInsufficientAssets if any resulting quantity would go negative.
// Keys that reach zero are dropped.
func (b AssetBundle) Sub(other AssetBundle) (AssetBundle, error) {
	byKey := make(map[assetKey]uint64, len(b))
	for _, a := range b {
		byKey[a.key()] += a.Quantity
	}
	for _, a := range other {
		have := byKey[a.key()]
		if a.Quantity > have {
			return nil, fmt.Errorf("asset %s.%s: have %d, need %d: %w",
				a.PolicyID, a.AssetName, have, a.Quantity, ErrInsufficientAssets)
		}
		byKey[a.key()] = have - a.Quantity
	}

	return fromMap(byKey), nil
}

// Covers reports whether b holds at least the quantities of other.
func (b AssetBundle) Covers(other AssetBundle) bool {
	_, err := b.Sub(other)
	return err == nil
}

// IsEmpty reports whether the bundle holds no assets.
func (b AssetBundle) IsEmpty() bool {
	return len(b) == 0
}

// Quantity returns the held quantity for a key, zero if absent.
func (b AssetBundle) Quantity(policyID, assetName string) uint64 {
	for _, a := range b {
		if a.PolicyID == policyID && a.AssetName == assetName {
			return a.Quantity
		}
	}
	return 0
}

// Equal compares bundles by content.
func (b AssetBundle) Equal(other AssetBundle) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// SerializedSize is the approximate on-chain size of the bundle in bytes,
// used for output minimum-coin surcharges: identifier bytes plus an 8 byte
// quantity per entry.
func (b AssetBundle) SerializedSize() uint64 {
	var size uint64
	for _, a := range b {
		size += uint64(len(a.PolicyID)+len(a.AssetName)) + 8
	}
	return size
}

func (b AssetBundle) clone() AssetBundle {
	if b == nil {
		return nil
	}
	out := make(AssetBundle, len(b))
	copy(out, b)
	return out
}

func fromMap(byKey map[assetKey]uint64) AssetBundle {
	out := make(AssetBundle, 0, len(byKey))
	for k, q := range byKey {
		if q == 0 {
			continue
		}
		out = append(out, Asset{PolicyID: k.policyID, AssetName: k.assetName, Quantity: q})
	}
	if len(out) == 0 {
		return nil
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PolicyID != out[j].PolicyID {
			return out[i].PolicyID < out[j].PolicyID
		}
		return out[i].AssetName < out[j].AssetName
	})
	return out
}
