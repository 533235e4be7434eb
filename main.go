package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/TarunK190/Customer-Behaviour-Analysis/cliparse"
	"github.com/TarunK190/Customer-Behaviour-Analysis/db"
	"github.com/TarunK190/Customer-Behaviour-Analysis/pipeline"
	"github.com/TarunK190/Customer-Behaviour-Analysis/reports"
	"github.com/TarunK190/Customer-Behaviour-Analysis/router"
)

func main() {
	// Parse configuration
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	// Stop on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("run failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliparse.Config) error {
	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return err
	}

	// Connect to the database
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DSN())
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer dbConn.Close()
	if dialect == db.SQLite {
		// Single writer
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	// Load, clean, transform and replace customer_details
	if _, err := pipeline.Run(ctx, dbConn, dialect, cfg.InputPath); err != nil {
		return err
	}

	report, err := reports.Run(ctx, dbConn)
	if err != nil {
		return fmt.Errorf("reports: %w", err)
	}
	if err := reports.WriteText(os.Stdout, report); err != nil {
		return fmt.Errorf("reports: %w", err)
	}
	if cfg.ReportXLSX != "" {
		if err := reports.WriteXLSX(cfg.ReportXLSX, report); err != nil {
			return fmt.Errorf("reports: %w", err)
		}
	}

	if !cfg.Serve {
		return nil
	}
	return serve(ctx, dbConn, cfg)
}

// serve exposes the reports read-only until ctx is cancelled
func serve(ctx context.Context, dbConn *sql.DB, cfg cliparse.Config) error {
	server := http.Server{
		Handler:           router.NewRouter(dbConn, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	slog.Info("Server closed")
	return nil
}

func newLogger(cfg cliparse.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
