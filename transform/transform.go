// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transform

import (
	"fmt"

	"github.com/TarunK190/Customer-Behaviour-Analysis/models"
)

// Result describes what Apply derived
type Result struct {
	AgeEdges AgeEdges
}

// CheckDiscountConsistency verifies discount_applied equals promo_code_used
// on every row. Only after it passes may discount_applied be dropped.
func CheckDiscountConsistency(txs []models.Transaction) error {
	var mismatched []int
	for _, tx := range txs {
		if tx.DiscountApplied != tx.PromoCodeUsed {
			mismatched = append(mismatched, tx.CustomerID)
		}
	}
	if len(mismatched) > 0 {
		return &ConsistencyError{CustomerIDs: mismatched}
	}
	return nil
}

// Apply runs the consistency check and derives age_group and
// purchase_frequency_days in place. Nothing is derived if the check fails.
func Apply(txs []models.Transaction) (Result, error) {
	var res Result

	if len(txs) == 0 {
		return res, ErrNoRows
	}

	if err := CheckDiscountConsistency(txs); err != nil {
		return res, err
	}

	if err := AssignFrequencyDays(txs); err != nil {
		return res, err
	}

	edges, err := AssignAgeGroups(txs)
	if err != nil {
		return res, fmt.Errorf("age groups: %w", err)
	}
	res.AgeEdges = edges

	return res, nil
}
