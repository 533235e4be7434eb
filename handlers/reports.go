// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/TarunK190/Customer-Behaviour-Analysis/cliparse"
	"github.com/TarunK190/Customer-Behaviour-Analysis/middleware"
	"github.com/TarunK190/Customer-Behaviour-Analysis/reports"
)

type ReportsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewReportsHandler(db *sql.DB, cfg cliparse.Config) *ReportsHandler {
	return &ReportsHandler{db: db, cfg: cfg}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Rows     int    `json:"rows"`
}

// Health handles GET /health
// Returns 503 until customer_details has been loaded
func (h *ReportsHandler) Health(w http.ResponseWriter, r *http.Request) {
	var rows int
	err := h.db.QueryRowContext(r.Context(), `SELECT COUNT(*) FROM customer_details`).Scan(&rows)
	if err != nil {
		slog.Warn("health check failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "customer_details not loaded")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Database: h.cfg.DatabaseType,
		Rows:     rows,
	})
}

// GetReports handles GET /reports
// Returns every report in one document
func (h *ReportsHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	report, err := reports.Run(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to run reports", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}

// GetReport handles GET /reports/{name}
func (h *ReportsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "report name is required")
		return
	}

	rows, err := reports.RunNamed(r.Context(), h.db, name)
	if errors.Is(err, reports.ErrUnknownReport) {
		middleware.ErrorResponse(w, http.StatusNotFound, "unknown report "+name)
		return
	}
	if err != nil {
		slog.Error("failed to run report", "report", name, "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// ListReports handles GET /reports/
// Returns the available report names
func (h *ReportsHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string][]string{"reports": reports.Names})
}
