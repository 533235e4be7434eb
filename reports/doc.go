// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reports runs the read-only aggregate queries over customer_details.

	report, err := reports.Run(ctx, conn)
	if err != nil {
		return err
	}
	reports.WriteText(os.Stdout, report)

# Queries

Dashboard queries:

  - revenue-by-gender: total purchase_amount per gender
  - high-spending-discount-users: promo code users spending at least the
    overall average purchase
  - top-rated-items: five items with the highest average review rating,
    ties broken by item name
  - subscription-spend: customers, average spend and revenue per
    subscription status

Segmentation queries:

  - revenue-by-age-group: total purchase_amount per age group, youngest
    first
  - shipping-spend: customers and average spend per shipping type
  - customer-segments: New (at most 1 previous purchase), Returning
    (2 to 10) and Loyal (more than 10)

All SQL is static; no query takes parameters. Averages and sums are
rounded to two decimals after scanning so the same text runs on
Postgres and SQLite.

# Output

WriteText prints aligned tables. WriteXLSX saves a workbook with one
sheet per query, named after the query.
*/
package reports
