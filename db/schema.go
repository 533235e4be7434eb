// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"strconv"
)

// Dialect selects the SQL driver flavour of a connection
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect maps a configured database type onto a Dialect
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(s); d {
	case Postgres, SQLite:
		return d, nil
	}
	return "", fmt.Errorf("unsupported database type %q", s)
}

// Placeholder returns the n-th (1-based) bind parameter marker
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// TableName is the destination table, replaced in full on every run
const TableName = "customer_details"

// Columns lists the customer_details columns in table order.
// discount_applied is never persisted.
var Columns = []string{
	"customer_id",
	"age",
	"gender",
	"item_purchased",
	"category",
	"purchase_amount",
	"location",
	"size",
	"color",
	"season",
	"review_rating",
	"subscription_status",
	"shipping_type",
	"promo_code_used",
	"previous_purchases",
	"payment_method",
	"frequency_of_purchases",
	"age_group",
	"purchase_frequency_days",
}

// The DDL only uses types both Postgres and SQLite understand
const (
	dropTable = `DROP TABLE IF EXISTS customer_details`

	createTable = `
CREATE TABLE customer_details (
    customer_id INTEGER PRIMARY KEY,
    age INTEGER NOT NULL,
    gender TEXT NOT NULL,
    item_purchased TEXT NOT NULL,
    category TEXT NOT NULL,
    purchase_amount DOUBLE PRECISION NOT NULL CHECK (purchase_amount >= 0),
    location TEXT NOT NULL,
    size TEXT NOT NULL,
    color TEXT NOT NULL,
    season TEXT NOT NULL,
    review_rating DOUBLE PRECISION NOT NULL,
    subscription_status TEXT NOT NULL CHECK (subscription_status IN ('Yes', 'No')),
    shipping_type TEXT NOT NULL,
    promo_code_used TEXT NOT NULL CHECK (promo_code_used IN ('Yes', 'No')),
    previous_purchases INTEGER NOT NULL,
    payment_method TEXT NOT NULL,
    frequency_of_purchases TEXT NOT NULL,
    age_group TEXT NOT NULL,
    purchase_frequency_days INTEGER NOT NULL
)`
)

var createIndexes = []string{
	`CREATE INDEX idx_customer_details_gender ON customer_details(gender)`,
	`CREATE INDEX idx_customer_details_item ON customer_details(item_purchased)`,
	`CREATE INDEX idx_customer_details_subscription ON customer_details(subscription_status)`,
	`CREATE INDEX idx_customer_details_age_group ON customer_details(age_group)`,
}
