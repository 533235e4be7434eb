package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoRows            = errors.New("no rows to transform")
	ErrDuplicateBinEdges = errors.New("age quantile edges are not distinct")
	ErrUnmappedFrequency = errors.New("unmapped purchase frequency")
	ErrDiscountMismatch  = errors.New("discount_applied differs from promo_code_used")
)

// UnmappedFrequencyError reports a frequency_of_purchases value with no
// entry in the lookup table.
type UnmappedFrequencyError struct {
	CustomerID int
	Value      string
}

func (e *UnmappedFrequencyError) Error() string {
	if e.CustomerID == 0 {
		return fmt.Sprintf("%v: %q", ErrUnmappedFrequency, e.Value)
	}
	return fmt.Sprintf("%v: %q (customer_id %d)", ErrUnmappedFrequency, e.Value, e.CustomerID)
}

func (e *UnmappedFrequencyError) Unwrap() error {
	return ErrUnmappedFrequency
}

// ConsistencyError lists every customer whose discount_applied and
// promo_code_used flags disagree.
type ConsistencyError struct {
	CustomerIDs []int
}

// maximum IDs spelled out in the message
const maxListedIDs = 10

func (e *ConsistencyError) Error() string {
	ids := make([]string, 0, maxListedIDs)
	for i, id := range e.CustomerIDs {
		if i == maxListedIDs {
			ids = append(ids, "...")
			break
		}
		ids = append(ids, strconv.Itoa(id))
	}
	return fmt.Sprintf("%v in %d rows (customer_id %s)",
		ErrDiscountMismatch, len(e.CustomerIDs), strings.Join(ids, ", "))
}

func (e *ConsistencyError) Unwrap() error {
	return ErrDiscountMismatch
}
