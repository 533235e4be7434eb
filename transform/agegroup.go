// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transform

import (
	"fmt"

	"github.com/TarunK190/Customer-Behaviour-Analysis/models"
	"github.com/TarunK190/Customer-Behaviour-Analysis/stats"
)

// AgeEdges are the six quantile edges bounding the five age buckets
type AgeEdges [len(models.AgeGroups) + 1]float64

// AgeGroupEdges computes equal-frequency bucket edges from the ages
// present in this run. Edges must be strictly increasing.
func AgeGroupEdges(ages []int) (AgeEdges, error) {
	var edges AgeEdges
	if len(ages) == 0 {
		return edges, ErrNoRows
	}

	values := make([]float64, len(ages))
	for i, a := range ages {
		values[i] = float64(a)
	}
	copy(edges[:], stats.Quantiles(values, len(models.AgeGroups)))

	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return edges, fmt.Errorf("%w: %v", ErrDuplicateBinEdges, edges)
		}
	}
	return edges, nil
}

// Bucket returns the label for age. Buckets are right-closed (lo, hi];
// the first bucket also includes the minimum. Ages outside the edges
// clamp to the nearest bucket.
func (e AgeEdges) Bucket(age int) models.AgeGroup {
	a := float64(age)
	for i := 1; i < len(e)-1; i++ {
		if a <= e[i] {
			return models.AgeGroups[i-1]
		}
	}
	return models.AgeGroups[len(models.AgeGroups)-1]
}

// AssignAgeGroups computes the edges from txs and labels every row
func AssignAgeGroups(txs []models.Transaction) (AgeEdges, error) {
	ages := make([]int, len(txs))
	for i := range txs {
		ages[i] = txs[i].Age
	}

	edges, err := AgeGroupEdges(ages)
	if err != nil {
		return edges, err
	}

	for i := range txs {
		txs[i].AgeGroup = edges.Bucket(txs[i].Age)
	}
	return edges, nil
}
