// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db writes cleaned transactions to the customer_details table.

# Full Replace

ReplaceCustomerDetails rebuilds the table on every run:

	if err := db.ReplaceCustomerDetails(ctx, conn, db.Postgres, txs); err != nil {
		return err
	}

Inside one transaction it drops customer_details, recreates it, loads
every row and creates the indexes. Any failure rolls the transaction
back, so the previous contents stay in place. Concurrent runs against
the same database must be serialized by the caller.

# Dialects

	Postgres  lib/pq, rows loaded with COPY FROM STDIN (pq.CopyIn)
	SQLite    modernc.org/sqlite, rows loaded with a prepared INSERT

The DDL uses only INTEGER, TEXT and DOUBLE PRECISION so the same
statement runs on both.

# Table

customer_details has the 19 Columns, customer_id as primary key:

  - the 17 source columns kept after cleaning (discount_applied is
    never stored)
  - age_group and purchase_frequency_days, derived during transform

Booleans are stored as the text 'Yes' or 'No', as in the source file.

# Indexes

  - gender
  - item_purchased
  - subscription_status
  - age_group
*/
package db
