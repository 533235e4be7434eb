// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main runs the customer behaviour ETL.

One invocation loads the shopping trends CSV, fills missing review
ratings with the median of their category, derives age groups and
purchase frequency in days, and replaces the customer_details table
in a single transaction. The dashboard reports are then printed to
stdout.

# Running

Against Postgres, configured through the environment or a .env file:

	DB_HOST=localhost DB_PASSWORD=secret go run . -i data/shopping_trends.csv

Against a local SQLite file:

	go run . -t sqlite -sqlite customer_behaviour.db -i data/shopping_trends.csv

Export the reports to a workbook, then keep serving them:

	go run . -xlsx reports.xlsx -serve -p 3318

# Exit Status

0 when every stage succeeded, 1 otherwise. A failed run never leaves a
partially replaced table behind. Concurrent runs against the same
database are not supported.

# Architecture

  - loader: CSV parsing and row validation
  - cleaning: review rating imputation
  - transform: column names, age groups, purchase frequency, discount check
  - db: full-replace sink for Postgres and SQLite
  - reports: dashboard queries and text/xlsx rendering
  - pipeline: stage orchestration
  - handlers, router, middleware: read-only report API
  - cliparse: configuration
  - models, stats: shared types and statistics

See package documentation for each component.
*/
package main
