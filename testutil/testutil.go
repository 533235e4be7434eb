// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

// SampleHeader is the header row of the shopping trends CSV
const SampleHeader = "Customer ID,Age,Gender,Item Purchased,Category,Purchase Amount (USD),Location,Size,Color,Season,Review Rating,Subscription Status,Shipping Type,Discount Applied,Promo Code Used,Previous Purchases,Payment Method,Frequency of Purchases"

// SampleRows is a ten row slice of the shopping trends data set.
//
//   - Clothing ratings 3, 4, 5 with two blanks (median 4)
//   - Shoes rating 2 with one blank (median 2)
//   - ages 19..63, all distinct, two rows per age group
//   - total revenue 596 (Male 370, Female 226)
var SampleRows = []string{
	"1,55,Male,Blouse,Clothing,53,Kentucky,L,Gray,Winter,3.0,Yes,Express,Yes,Yes,14,Venmo,Fortnightly",
	"2,19,Female,Sweater,Clothing,64,Maine,L,Maroon,Winter,,No,Express,No,No,2,Cash,Fortnightly",
	"3,50,Male,Jeans,Clothing,73,Massachusetts,S,Maroon,Spring,4.0,Yes,Free Shipping,Yes,Yes,23,Credit Card,Weekly",
	"4,21,Male,Sandals,Shoes,90,Rhode Island,M,Maroon,Spring,2.0,No,Next Day Air,Yes,Yes,49,PayPal,Weekly",
	"5,45,Male,Blouse,Clothing,49,Oregon,M,Turquoise,Spring,5.0,No,Free Shipping,No,No,31,PayPal,Annually",
	"6,46,Male,Sneakers,Shoes,20,Wyoming,M,White,Summer,,No,Standard,No,No,14,Venmo,Weekly",
	"7,63,Male,Shirt,Clothing,85,Montana,M,Gray,Fall,,No,Free Shipping,Yes,Yes,49,Cash,Quarterly",
	"8,27,Female,Handbag,Accessories,34,Louisiana,L,Charcoal,Winter,4.1,No,Store Pickup,No,No,1,Cash,Monthly",
	"9,26,Female,Coat,Outerwear,97,West Virginia,L,Silver,Summer,3.7,No,Store Pickup,No,No,10,Debit Card,Every 3 Months",
	"10,57,Female,Jewelry,Accessories,31,Missouri,M,Pink,Spring,4.5,No,Standard,Yes,Yes,4,Bank Transfer,Bi-Weekly",
}

// SampleCSV returns the header plus SampleRows
func SampleCSV() string {
	return BuildCSV(SampleRows...)
}

// BuildCSV joins the standard header with the given data rows
func BuildCSV(rows ...string) string {
	return SampleHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

// WriteCSV writes content to a file in a fresh temp dir and returns its path
func WriteCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shopping_trends.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	return path
}

// SetupTestDB opens a fresh file-backed SQLite database that is removed
// when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "customer_behaviour.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One writer; keeps the transaction and later reads on the same file handle
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
