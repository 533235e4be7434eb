// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats provides the small order statistics used by the pipeline.

	median, ok := stats.Median(ratings)
	edges := stats.Quantiles(ages, 5)

Percentile uses linear interpolation between the closest ranks of
sorted data, so Median of an even count averages the two middle values
and Quantiles(values, n) returns the n+1 edges at 0, 1/n, ..., 1.
*/
package stats
