package model

import (
	"fmt"
)

// Selection is the aggregate result of a coin selection run. Selections are
// write-once: the engine produces them and callers must not mutate them.
type Selection struct {
	Inputs            []Input       `json:"inputs"`
	Outputs           []Output      `json:"outputs"`
	Certificates      []Certificate `json:"certificates"`
	Deposits          Value         `json:"deposits"`
	DepositsReclaimed Value         `json:"depositsReclaimed"`
	Withdrawals       []Withdrawal  `json:"withdrawals"`
	Fee               Value         `json:"fee"`
}

// Funded sums everything the selection brings in: input values, withdrawals
// and reclaimed deposits.
func (s *Selection) Funded() (Value, error) {
	total := ZeroLovelace()
	var err error
	for _, in := range s.Inputs {
		if total, err = total.Add(in.Amount); err != nil {
			return Value{}, fmt.Errorf("sum inputs: %w", err)
		}
	}
	for _, w := range s.Withdrawals {
		if total, err = total.Add(w.Amount); err != nil {
			return Value{}, fmt.Errorf("sum withdrawals: %w", err)
		}
	}
	if total, err = total.Add(s.DepositsReclaimed); err != nil {
		return Value{}, fmt.Errorf("add reclaimed deposits: %w", err)
	}
	return total, nil
}

// Spent sums everything the selection pays out: output values, the fee and
// deposits owed.
func (s *Selection) Spent() (Value, error) {
	total := ZeroLovelace()
	var err error
	for _, out := range s.Outputs {
		if total, err = total.Add(out.Amount); err != nil {
			return Value{}, fmt.Errorf("sum outputs: %w", err)
		}
	}
	if total, err = total.Add(s.Fee); err != nil {
		return Value{}, fmt.Errorf("add fee: %w", err)
	}
	if total, err = total.Add(s.Deposits); err != nil {
		return Value{}, fmt.Errorf("add deposits: %w", err)
	}
	return total, nil
}

// Validate checks the balance equation:
//
//	sum(inputs) + withdrawals + depositsReclaimed == sum(outputs) + fee + deposits
//
// exactly, with no rounding remainder. A failure here indicates a defect in
// whatever produced the selection, never a caller mistake.
func (s *Selection) Validate() error {
	funded, err := s.Funded()
	if err != nil {
		return err
	}
	spent, err := s.Spent()
	if err != nil {
		return err
	}
	if funded != spent {
		return fmt.Errorf("balance mismatch: funded %d, spent %d", funded.Quantity, spent.Quantity)
	}
	return nil
}

// InputAssets merges the asset bundles of all inputs.
func (s *Selection) InputAssets() AssetBundle {
	var total AssetBundle
	for _, in := range s.Inputs {
		total = total.Merge(in.Assets)
	}
	return total
}

// OutputAssets merges the asset bundles of all outputs.
func (s *Selection) OutputAssets() AssetBundle {
	var total AssetBundle
	for _, out := range s.Outputs {
		total = total.Merge(out.Assets)
	}
	return total
}
