// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cleaning

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/TarunK190/Customer-Behaviour-Analysis/models"
	"github.com/TarunK190/Customer-Behaviour-Analysis/stats"
)

var ErrNoRatings = errors.New("no review ratings to impute from")

// ImputeResult summarizes an imputation pass
type ImputeResult struct {
	Imputed      int                // ratings filled in
	Medians      map[string]float64 // per-category median of the original ratings
	GlobalMedian float64
	Fallbacks    []string // categories filled from the global median, sorted
}

// ImputeReviewRatings fills missing review ratings with the median rating
// of the row's category. A category without any rating falls back to the
// median of all ratings. Only ReviewRating is modified.
func ImputeReviewRatings(txs []models.Transaction) (ImputeResult, error) {
	res := ImputeResult{Medians: make(map[string]float64)}

	// Collect original ratings grouped by category
	byCategory := make(map[string][]float64)
	var all []float64
	missing := 0
	for _, tx := range txs {
		if tx.ReviewRating == nil {
			missing++
			continue
		}
		byCategory[tx.Category] = append(byCategory[tx.Category], *tx.ReviewRating)
		all = append(all, *tx.ReviewRating)
	}

	for category, ratings := range byCategory {
		res.Medians[category], _ = stats.Median(ratings)
	}
	res.GlobalMedian, _ = stats.Median(all)

	if missing == 0 {
		return res, nil
	}
	if len(all) == 0 {
		return res, ErrNoRatings
	}

	fallbacks := make(map[string]bool)
	for i := range txs {
		if txs[i].ReviewRating != nil {
			continue
		}

		median, ok := res.Medians[txs[i].Category]
		if !ok {
			median = res.GlobalMedian
			fallbacks[txs[i].Category] = true
		}

		value := median
		txs[i].ReviewRating = &value
		res.Imputed++
	}

	for category := range fallbacks {
		res.Fallbacks = append(res.Fallbacks, category)
	}
	sort.Strings(res.Fallbacks)

	if len(res.Fallbacks) > 0 {
		slog.Warn("categories without ratings imputed from global median",
			"categories", res.Fallbacks,
			"global_median", res.GlobalMedian,
		)
	}

	return res, nil
}
