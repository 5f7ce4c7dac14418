// Package model defines the immutable value types used by transaction
// construction: amounts in the smallest currency unit, multi-asset bundles,
// selection participants and the chain-recorded transaction itself.
package model

import (
	"errors"
	"fmt"
	"math"
)

// Unit tags a quantity with what it measures.
type Unit string

const (
	// Lovelace is the smallest unit of the base currency. Every amount
	// field in this package is denominated in it.
	Lovelace Unit = "lovelace"
	// Block is the unit of confirmation depth.
	Block Unit = "block"
)

var (
	ErrUnderflow    = errors.New("value underflow")
	ErrOverflow     = errors.New("value overflow")
	ErrUnitMismatch = errors.New("value unit mismatch")
)

// Value is an exact quantity in its smallest unit. Arithmetic is integer
// only; there is no floating point anywhere in amount handling.
type Value struct {
	Quantity uint64 `json:"quantity"`
	Unit     Unit   `json:"unit"`
}

// NewLovelace returns a base-currency Value.
func NewLovelace(quantity uint64) Value {
	return Value{Quantity: quantity, Unit: Lovelace}
}

// ZeroLovelace returns a zero base-currency Value.
func ZeroLovelace() Value {
	return NewLovelace(0)
}

// Add returns v + other.
func (v Value) Add(other Value) (Value, error) {
	if v.Unit != other.Unit {
		return Value{}, fmt.Errorf("add %q to %q: %w", other.Unit, v.Unit, ErrUnitMismatch)
	}
	if other.Quantity > math.MaxUint64-v.Quantity {
		return Value{}, fmt.Errorf("add %d to %d: %w", other.Quantity, v.Quantity, ErrOverflow)
	}
	return Value{Quantity: v.Quantity + other.Quantity, Unit: v.Unit}, nil
}

// Sub returns v - other, failing with ErrUnderflow if the result would be
// negative.
func (v Value) Sub(other Value) (Value, error) {
	if v.Unit != other.Unit {
		return Value{}, fmt.Errorf("subtract %q from %q: %w", other.Unit, v.Unit, ErrUnitMismatch)
	}
	if other.Quantity > v.Quantity {
		return Value{}, fmt.Errorf("subtract %d from %d: %w", other.Quantity, v.Quantity, ErrUnderflow)
	}
	return Value{Quantity: v.Quantity - other.Quantity, Unit: v.Unit}, nil
}

// Cmp compares quantities, returning -1, 0 or 1. Units are not compared;
// callers are expected to compare like with like.
func (v Value) Cmp(other Value) int {
	switch {
	case v.Quantity < other.Quantity:
		return -1
	case v.Quantity > other.Quantity:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether the quantity is zero.
func (v Value) IsZero() bool {
	return v.Quantity == 0
}
