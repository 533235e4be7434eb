// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestPercentileCalculation(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		p        float64
		expected float64
	}{
		{"empty", []float64{}, 0.5, 0.0},
		{"single value", []float64{5.0}, 0.5, 5.0},
		{"median of odd count", []float64{1.0, 2.0, 3.0}, 0.5, 2.0},
		{"median of even count", []float64{1.0, 2.0, 3.0, 4.0}, 0.5, 2.5},
		{"10th percentile", []float64{1.0, 2.0, 3.0, 4.0, 5.0}, 0.1, 1.4},
		{"90th percentile", []float64{1.0, 2.0, 3.0, 4.0, 5.0}, 0.9, 4.6},
		{"min (p=0)", []float64{1.0, 2.0, 3.0}, 0.0, 1.0},
		{"max (p=1)", []float64{1.0, 2.0, 3.0}, 1.0, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percentile(tt.data, tt.p)
			if !almostEqual(result, tt.expected) {
				t.Errorf("Percentile(%v, %f) = %f, want %f", tt.data, tt.p, result, tt.expected)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
		ok       bool
	}{
		{"empty", nil, 0, false},
		{"unsorted odd count", []float64{5, 3, 4}, 4, true},
		{"unsorted even count", []float64{4.5, 2.5, 3.5, 3.0}, 3.25, true},
		{"single value", []float64{2}, 2, true},
		{"duplicates", []float64{3, 3, 3, 5}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Median(tt.data)
			if ok != tt.ok {
				t.Fatalf("Median(%v) ok = %v, want %v", tt.data, ok, tt.ok)
			}
			if !almostEqual(result, tt.expected) {
				t.Errorf("Median(%v) = %f, want %f", tt.data, result, tt.expected)
			}
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	data := []float64{5, 1, 3}
	Median(data)

	if data[0] != 5 || data[1] != 1 || data[2] != 3 {
		t.Errorf("Median modified its input: %v", data)
	}
}

func TestQuantiles(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

	edges := Quantiles(values, 5)
	expected := []float64{1, 2.8, 4.6, 6.4, 8.2, 10}

	if len(edges) != len(expected) {
		t.Fatalf("Expected %d edges, got %d", len(expected), len(edges))
	}
	for i := range expected {
		if !almostEqual(edges[i], expected[i]) {
			t.Errorf("edge %d = %f, want %f", i, edges[i], expected[i])
		}
	}

	if Quantiles(nil, 5) != nil {
		t.Error("Expected nil edges for empty input")
	}
	if Quantiles(values, 0) != nil {
		t.Error("Expected nil edges for zero groups")
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"empty", []float64{}, 0.0},
		{"single value", []float64{5.0}, 5.0},
		{"positive values", []float64{1.0, 2.0, 3.0}, 2.0},
		{"negative values", []float64{-1.0, -2.0, -3.0}, -2.0},
		{"mixed values", []float64{-1.0, 0.0, 1.0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mean(tt.data)
			if !almostEqual(result, tt.expected) {
				t.Errorf("Mean(%v) = %f, want %f", tt.data, result, tt.expected)
			}
		})
	}
}
