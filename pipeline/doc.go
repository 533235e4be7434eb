// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pipeline runs the ETL once, start to finish:

	load -> clean -> transform -> sink

Each stage must succeed before the next starts, so a bad input file,
a discount/promo mismatch or an unmapped purchase frequency never
reaches the database. Errors are prefixed with the failing stage
("load: ...", "transform: ...") and keep their original type for
errors.Is and errors.As.

Every run gets a random run_id that is attached to all of its log
lines.
*/
package pipeline
