// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the report API.

# Route Registration

NewRouter returns the configured handler, wrapped in WithRequestID and
CORS:

	handler := router.NewRouter(db, cfg)

# Endpoints

	GET /health          - table row count
	GET /reports         - all reports
	GET /reports/        - report names
	GET /reports/{name}  - one report

Report names:

	revenue-by-gender
	high-spending-discount-users
	top-rated-items
	subscription-spend
	revenue-by-age-group
	shipping-spend
	customer-segments

Any other method on these paths returns 405.
*/
package router
