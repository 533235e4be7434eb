// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/TarunK190/Customer-Behaviour-Analysis/models"
	"github.com/TarunK190/Customer-Behaviour-Analysis/transform"
)

var ErrInputNotFound = errors.New("input file not found")

// SourceHeader is the header of the shopping trends CSV, in file order
var SourceHeader = []string{
	"Customer ID",
	"Age",
	"Gender",
	"Item Purchased",
	"Category",
	"Purchase Amount (USD)",
	"Location",
	"Size",
	"Color",
	"Season",
	"Review Rating",
	"Subscription Status",
	"Shipping Type",
	"Discount Applied",
	"Promo Code Used",
	"Previous Purchases",
	"Payment Method",
	"Frequency of Purchases",
}

// ParseError reports a malformed input file. Line is 1-based and counts
// the header; Column is the normalized column name when known.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their column name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads the CSV file at path. Either every row loads or an error is
// returned.
func Load(path string) ([]models.Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	txs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("input loaded", "path", path, "rows", len(txs))
	return txs, nil
}

// Read parses transactions from CSV data with the SourceHeader columns in
// any order.
func Read(r io.Reader) ([]models.Transaction, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Line: 1, Err: errors.New("missing header")}
	}
	if err != nil {
		return nil, csvError(err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, &ParseError{Line: 1, Err: err}
	}

	var txs []models.Transaction
	seen := make(map[int]int) // customer_id -> line
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		line, _ := cr.FieldPos(0)
		tx, err := parseRecord(record, idx, line)
		if err != nil {
			return nil, err
		}

		if prev, dup := seen[tx.CustomerID]; dup {
			return nil, &ParseError{
				Line:   line,
				Column: "customer_id",
				Err:    fmt.Errorf("duplicate customer_id %d (first seen on line %d)", tx.CustomerID, prev),
			}
		}
		seen[tx.CustomerID] = line

		txs = append(txs, tx)
	}

	return txs, nil
}

// columnIndex maps each normalized column name to its position in header
func columnIndex(header []string) (map[string]int, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	expected := make(map[string]bool, len(SourceHeader))
	for _, label := range SourceHeader {
		expected[transform.NormalizeColumnName(label)] = true
	}

	idx := make(map[string]int, len(header))
	for i, name := range transform.NormalizeHeader(header) {
		if !expected[name] {
			return nil, fmt.Errorf("unexpected column %q", header[i])
		}
		if _, dup := idx[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", header[i])
		}
		idx[name] = i
	}

	for _, label := range SourceHeader {
		name := transform.NormalizeColumnName(label)
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", label)
		}
	}

	return idx, nil
}

// parseRecord converts one CSV record into a validated Transaction
func parseRecord(record []string, idx map[string]int, line int) (models.Transaction, error) {
	var tx models.Transaction
	p := fieldParser{record: record, idx: idx, line: line}

	tx.CustomerID = p.intField("customer_id")
	tx.Age = p.intField("age")
	tx.Gender = models.Gender(p.strField("gender"))
	tx.ItemPurchased = p.strField("item_purchased")
	tx.Category = p.strField("category")
	tx.PurchaseAmount = p.floatField("purchase_amount")
	tx.Location = p.strField("location")
	tx.Size = p.strField("size")
	tx.Color = p.strField("color")
	tx.Season = p.strField("season")
	tx.ReviewRating = p.optionalFloatField("review_rating")
	tx.SubscriptionStatus = p.yesNoField("subscription_status")
	tx.ShippingType = p.strField("shipping_type")
	tx.DiscountApplied = p.yesNoField("discount_applied")
	tx.PromoCodeUsed = p.yesNoField("promo_code_used")
	tx.PreviousPurchases = p.intField("previous_purchases")
	tx.PaymentMethod = p.strField("payment_method")
	tx.FrequencyOfPurchases = p.strField("frequency_of_purchases")

	if p.err != nil {
		return tx, p.err
	}

	if err := validate.Struct(tx); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return tx, &ParseError{
				Line:   line,
				Column: fe.Field(),
				Err:    fmt.Errorf("value %v fails %q", fe.Value(), fe.ActualTag()),
			}
		}
		return tx, &ParseError{Line: line, Err: err}
	}

	return tx, nil
}

// fieldParser reads typed cells from a record, keeping the first error
type fieldParser struct {
	record []string
	idx    map[string]int
	line   int
	err    error
}

func (p *fieldParser) strField(col string) string {
	return strings.TrimSpace(p.record[p.idx[col]])
}

func (p *fieldParser) fail(col string, err error) {
	if p.err == nil {
		p.err = &ParseError{Line: p.line, Column: col, Err: err}
	}
}

func (p *fieldParser) intField(col string) int {
	v, err := strconv.Atoi(p.strField(col))
	if err != nil {
		p.fail(col, fmt.Errorf("invalid integer %q", p.strField(col)))
	}
	return v
}

func (p *fieldParser) floatField(col string) float64 {
	v, err := strconv.ParseFloat(p.strField(col), 64)
	if err != nil {
		p.fail(col, fmt.Errorf("invalid number %q", p.strField(col)))
	}
	return v
}

func (p *fieldParser) optionalFloatField(col string) *float64 {
	if p.strField(col) == "" {
		return nil
	}
	v := p.floatField(col)
	return &v
}

func (p *fieldParser) yesNoField(col string) bool {
	v, err := models.ParseYesNo(p.strField(col))
	if err != nil {
		p.fail(col, err)
	}
	return v
}

// csvError converts an encoding/csv error into a ParseError
func csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Line: perr.Line, Err: perr.Err}
	}
	return fmt.Errorf("failed to read input: %w", err)
}
