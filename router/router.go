// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/TarunK190/Customer-Behaviour-Analysis/cliparse"
	"github.com/TarunK190/Customer-Behaviour-Analysis/handlers"
	"github.com/TarunK190/Customer-Behaviour-Analysis/middleware"
)

// NewRouter returns the read-only report API wrapped in the request id
// and CORS middleware
func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	reportsHandler := handlers.NewReportsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", middleware.WithLogging(reportsHandler.Health))

	// Reports
	mux.HandleFunc("GET /reports", middleware.WithLogging(reportsHandler.GetReports))
	mux.HandleFunc("GET /reports/{$}", middleware.WithLogging(reportsHandler.ListReports))
	mux.HandleFunc("GET /reports/{name}", middleware.WithLogging(reportsHandler.GetReport))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("customer-behaviour reports API v1"))
	})

	return middleware.WithRequestID(middleware.CORS(mux))
}
