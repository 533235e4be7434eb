// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package loader reads the shopping trends CSV into typed transactions.

	txs, err := loader.Load("data/shopping_trends.csv")

# Header

The file must carry the 18 SourceHeader columns. Header cells are
matched after column name normalization, so order does not matter, but
every column must appear exactly once and unknown columns are rejected.

# Rows

Each row is converted to a models.Transaction and validated against the
struct's validate tags. An empty Review Rating cell loads as a nil
rating; every other cell is required.

# Errors

	ErrInputNotFound   the path does not exist
	*ParseError        bad header, bad cell, failed validation or a
	                   repeated customer id

Loading is all-or-nothing: on error no transactions are returned.
*/
package loader
