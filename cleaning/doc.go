// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cleaning fills missing review ratings.

	res, err := cleaning.ImputeReviewRatings(txs)

Each missing rating is replaced with the median of the original
(non-missing) ratings in the same category. A category that has no
ratings at all is filled with the median of every rating in the data
set and reported in ImputeResult.Fallbacks. If the whole data set has no
ratings, ErrNoRatings is returned and nothing is modified.
*/
package cleaning
