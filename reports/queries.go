// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

// Every query is static text over customer_details. Values are returned
// unrounded; rounding happens after the scan so the same text runs on
// Postgres and SQLite.
const (
	revenueByGenderSQL = `
		SELECT gender, SUM(purchase_amount) AS revenue
		FROM customer_details
		GROUP BY gender
		ORDER BY revenue DESC, gender
	`

	// Discount users are identified by promo_code_used, which always
	// equals the dropped discount_applied column
	highSpendingDiscountUsersSQL = `
		SELECT customer_id, purchase_amount
		FROM customer_details
		WHERE promo_code_used = 'Yes'
		  AND purchase_amount >= (SELECT AVG(purchase_amount) FROM customer_details)
		ORDER BY customer_id
	`

	topRatedItemsSQL = `
		SELECT item_purchased, AVG(review_rating) AS average_rating
		FROM customer_details
		GROUP BY item_purchased
		ORDER BY average_rating DESC, item_purchased
		LIMIT 5
	`

	subscriptionSpendSQL = `
		SELECT subscription_status,
		       COUNT(customer_id) AS customers,
		       AVG(purchase_amount) AS average_spend,
		       SUM(purchase_amount) AS total_revenue
		FROM customer_details
		GROUP BY subscription_status
		ORDER BY total_revenue DESC, subscription_status
	`

	revenueByAgeGroupSQL = `
		SELECT age_group, SUM(purchase_amount) AS revenue
		FROM customer_details
		GROUP BY age_group
	`

	shippingSpendSQL = `
		SELECT shipping_type,
		       COUNT(customer_id) AS customers,
		       AVG(purchase_amount) AS average_spend
		FROM customer_details
		GROUP BY shipping_type
		ORDER BY average_spend DESC, shipping_type
	`

	customerSegmentsSQL = `
		SELECT CASE
		           WHEN previous_purchases <= 1 THEN 'New'
		           WHEN previous_purchases <= 10 THEN 'Returning'
		           ELSE 'Loyal'
		       END AS segment,
		       COUNT(customer_id) AS customers
		FROM customer_details
		GROUP BY segment
	`
)
