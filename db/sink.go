// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"

	"github.com/TarunK190/Customer-Behaviour-Analysis/models"
)

// ReplaceCustomerDetails drops and recreates customer_details and loads
// txs into it inside a single transaction. On any error the transaction
// is rolled back and the previous table is left as it was.
func ReplaceCustomerDetails(ctx context.Context, conn *sql.DB, dialect Dialect, txs []models.Transaction) error {
	for _, t := range txs {
		if t.ReviewRating == nil {
			return fmt.Errorf("customer %d has no review rating", t.CustomerID)
		}
		if t.AgeGroup == "" || t.PurchaseFrequencyDays == 0 {
			return fmt.Errorf("customer %d is missing derived fields", t.CustomerID)
		}
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, dropTable); err != nil {
		return fmt.Errorf("failed to drop %s: %w", TableName, err)
	}
	if _, err := tx.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create %s: %w", TableName, err)
	}

	switch dialect {
	case Postgres:
		err = copyRows(ctx, tx, txs)
	case SQLite:
		err = insertRows(ctx, tx, dialect, txs)
	default:
		err = fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err != nil {
		return err
	}

	for _, stmt := range createIndexes {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	slog.Info("table replaced", "table", TableName, "rows", len(txs), "dialect", dialect)
	return nil
}

// copyRows streams rows through COPY FROM STDIN
func copyRows(ctx context.Context, tx *sql.Tx, txs []models.Transaction) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(TableName, Columns...))
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, t := range txs {
		if _, err := stmt.ExecContext(ctx, rowValues(t)...); err != nil {
			stmt.Close()
			return fmt.Errorf("failed to copy customer %d: %w", t.CustomerID, err)
		}
	}

	// An empty Exec flushes the buffered COPY data
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("failed to flush copy: %w", err)
	}
	return stmt.Close()
}

func insertRows(ctx context.Context, tx *sql.Tx, dialect Dialect, txs []models.Transaction) error {
	marks := make([]string, len(Columns))
	for i := range marks {
		marks[i] = dialect.Placeholder(i + 1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		TableName, strings.Join(Columns, ", "), strings.Join(marks, ", "))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txs {
		if _, err := stmt.ExecContext(ctx, rowValues(t)...); err != nil {
			return fmt.Errorf("failed to insert customer %d: %w", t.CustomerID, err)
		}
	}
	return nil
}

// rowValues returns t's values in Columns order
func rowValues(t models.Transaction) []any {
	return []any{
		t.CustomerID,
		t.Age,
		string(t.Gender),
		t.ItemPurchased,
		t.Category,
		t.PurchaseAmount,
		t.Location,
		t.Size,
		t.Color,
		t.Season,
		*t.ReviewRating,
		models.YesNo(t.SubscriptionStatus),
		t.ShippingType,
		models.YesNo(t.PromoCodeUsed),
		t.PreviousPurchases,
		t.PaymentMethod,
		t.FrequencyOfPurchases,
		string(t.AgeGroup),
		t.PurchaseFrequencyDays,
	}
}

// CustomerDetails reads the whole table back, ordered by customer_id.
// DiscountApplied is not stored and is always false.
func CustomerDetails(ctx context.Context, conn *sql.DB) ([]models.Transaction, error) {
	rows, err := conn.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY customer_id", strings.Join(Columns, ", "), TableName))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", TableName, err)
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var (
			t                   models.Transaction
			rating              float64
			subscription, promo string
			gender, ageGroup    string
		)
		if err := rows.Scan(
			&t.CustomerID, &t.Age, &gender, &t.ItemPurchased, &t.Category,
			&t.PurchaseAmount, &t.Location, &t.Size, &t.Color, &t.Season,
			&rating, &subscription, &t.ShippingType, &promo,
			&t.PreviousPurchases, &t.PaymentMethod, &t.FrequencyOfPurchases,
			&ageGroup, &t.PurchaseFrequencyDays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", TableName, err)
		}

		t.Gender = models.Gender(gender)
		t.AgeGroup = models.AgeGroup(ageGroup)
		t.ReviewRating = &rating
		if t.SubscriptionStatus, err = models.ParseYesNo(subscription); err != nil {
			return nil, fmt.Errorf("customer %d subscription_status: %w", t.CustomerID, err)
		}
		if t.PromoCodeUsed, err = models.ParseYesNo(promo); err != nil {
			return nil, fmt.Errorf("customer %d promo_code_used: %w", t.CustomerID, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// TableColumns lists the columns of customer_details in table order
func TableColumns(ctx context.Context, conn *sql.DB, dialect Dialect) ([]string, error) {
	var query string
	switch dialect {
	case Postgres:
		query = `
			SELECT column_name
			FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = $1
			ORDER BY ordinal_position
		`
	case SQLite:
		query = `SELECT name FROM pragma_table_info(?) ORDER BY cid`
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	rows, err := conn.QueryContext(ctx, query, TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}
