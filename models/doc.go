// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the transaction record and report row types.

# Domain Types

  - Transaction: one purchase, typed fields for all 18 source columns
    plus the two derived fields (AgeGroup, PurchaseFrequencyDays)

Transaction carries validate tags checked by the loader at load time.
DiscountApplied is held in memory only long enough for the consistency
check; it is never written to the destination table.

# Report Types

Row types returned by the canned dashboard queries:

  - GenderRevenue: revenue per gender
  - DiscountHighSpender: promo-code users spending at least the average
  - ItemRating: average review rating per item
  - SubscriptionSpend: count, average and total spend per subscription status
  - AgeGroupRevenue: revenue per age group
  - ShippingSpend: average spend per shipping type
  - CustomerSegment: customer count per loyalty segment

# Constants

Genders:

	GenderMale   = "Male"
	GenderFemale = "Female"

Age groups, youngest first (see AgeGroups):

	"Young Adult", "Adult", "Middle-aged", "Mature", "Senior"

Boolean-like columns are spelled "Yes" / "No"; use YesNo and ParseYesNo
to convert.
*/
package models
