// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package transform derives the reporting features and enforces the
discount/promo invariant.

# Column Names

	transform.NormalizeColumnName("Purchase Amount (USD)") // "purchase_amount"
	transform.NormalizeColumnName("Item Purchased")        // "item_purchased"

# Age Groups

Ages are split into five equal-frequency buckets whose edges are the
0/20/40/60/80/100th percentiles of the ages in the current run:

	Young Adult, Adult, Middle-aged, Mature, Senior

Buckets are right-closed: an age equal to an inner edge falls in the
lower bucket, and the minimum age falls in the first bucket. Edges are
recomputed on every run; if fewer distinct ages exist than needed to
produce strictly increasing edges, ErrDuplicateBinEdges is returned.

# Purchase Frequency

	Weekly          7
	Fortnightly     14
	Bi-Weekly       14
	Monthly         30
	Quarterly       90
	Every 3 Months  90
	Annually        365

Any other label fails with *UnmappedFrequencyError.

# Discount Consistency

CheckDiscountConsistency returns *ConsistencyError naming every row
where discount_applied and promo_code_used differ. Apply runs it first,
so derived fields are only computed on data that passed.
*/
package transform
