// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"slices"
)

// Percentile calculates the p-th percentile of sorted data
// p should be in range [0, 1]
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0.0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	// Linear interpolation between closest ranks
	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	// Interpolate
	weight := rank - float64(lower)
	if weight == 0 {
		return sorted[lower]
	}
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Median returns the median of values without modifying the slice.
// ok is false when values is empty.
func Median(values []float64) (median float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return Percentile(sorted, 0.5), true
}

// Quantiles returns the edges splitting values into n equal-frequency
// groups: n+1 values from the minimum to the maximum.
func Quantiles(values []float64, n int) []float64 {
	if len(values) == 0 || n <= 0 {
		return nil
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	edges := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		edges[i] = Percentile(sorted, float64(i)/float64(n))
	}
	return edges
}

// Mean calculates the arithmetic mean
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
