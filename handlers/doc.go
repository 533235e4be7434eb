// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the read-only
report API.

# Handler Types

ReportsHandler serves the dashboard queries from customer_details:

	reportsHandler := handlers.NewReportsHandler(db, cfg)

  - Health: row count of customer_details, 503 until the table exists
  - GetReports: every report in one JSON document
  - ListReports: the available report names
  - GetReport: one report by name, 404 for an unknown name

Handlers never write; the table is only replaced by the pipeline.

# Error Responses

All errors use the standard format:

	{
		"error": "Not Found",
		"message": "unknown report churn"
	}

Database failures are logged with the request id and reported as a
generic 500.
*/
package handlers
