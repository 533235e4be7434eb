// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/TarunK190/Customer-Behaviour-Analysis/cleaning"
	"github.com/TarunK190/Customer-Behaviour-Analysis/db"
	"github.com/TarunK190/Customer-Behaviour-Analysis/loader"
	"github.com/TarunK190/Customer-Behaviour-Analysis/models"
	"github.com/TarunK190/Customer-Behaviour-Analysis/transform"
)

// Stage names, used as error prefixes
const (
	StageLoad      = "load"
	StageClean     = "clean"
	StageTransform = "transform"
	StageSink      = "sink"
)

// Summary describes a completed run
type Summary struct {
	RunID         string
	Rows          int
	Imputed       int
	RatingMedians map[string]float64
	Fallbacks     []string
	AgeEdges      transform.AgeEdges
	Duration      time.Duration
}

// Run loads the CSV at inputPath, cleans and transforms it, and replaces
// customer_details with the result. Nothing is written unless every
// earlier stage succeeds.
func Run(ctx context.Context, conn *sql.DB, dialect db.Dialect, inputPath string) (Summary, error) {
	sum := Summary{RunID: uuid.NewString()}
	log := slog.With("run_id", sum.RunID)
	start := time.Now()

	log.Info("pipeline started", "input", inputPath, "dialect", dialect)

	var txs []models.Transaction
	err := stage(log, StageLoad, func() (err error) {
		txs, err = loader.Load(inputPath)
		sum.Rows = len(txs)
		return err
	})
	if err != nil {
		return sum, err
	}

	err = stage(log, StageClean, func() error {
		res, err := cleaning.ImputeReviewRatings(txs)
		if err != nil {
			return err
		}
		sum.Imputed = res.Imputed
		sum.RatingMedians = res.Medians
		sum.Fallbacks = res.Fallbacks
		return nil
	})
	if err != nil {
		return sum, err
	}

	err = stage(log, StageTransform, func() error {
		res, err := transform.Apply(txs)
		sum.AgeEdges = res.AgeEdges
		return err
	})
	if err != nil {
		return sum, err
	}

	err = stage(log, StageSink, func() error {
		return db.ReplaceCustomerDetails(ctx, conn, dialect, txs)
	})
	if err != nil {
		return sum, err
	}

	sum.Duration = time.Since(start)
	log.Info("pipeline finished",
		"rows", sum.Rows,
		"imputed", sum.Imputed,
		"age_edges", sum.AgeEdges,
		"duration", sum.Duration,
	)
	return sum, nil
}

// stage runs fn and prefixes any error with the stage name
func stage(log *slog.Logger, name string, fn func() error) error {
	start := time.Now()
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Info("stage complete", "stage", name, "duration", time.Since(start))
	return nil
}
