// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/TarunK190/Customer-Behaviour-Analysis/models"
)

var ErrUnknownReport = errors.New("unknown report")

// Querier is satisfied by *sql.DB and *sql.Tx
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Report holds the result of every canned query
type Report struct {
	RevenueByGender           []models.GenderRevenue       `json:"revenue_by_gender"`
	HighSpendingDiscountUsers []models.DiscountHighSpender `json:"high_spending_discount_users"`
	TopRatedItems             []models.ItemRating          `json:"top_rated_items"`
	SubscriptionSpend         []models.SubscriptionSpend   `json:"subscription_spend"`
	RevenueByAgeGroup         []models.AgeGroupRevenue     `json:"revenue_by_age_group"`
	ShippingSpend             []models.ShippingSpend       `json:"shipping_spend"`
	CustomerSegments          []models.CustomerSegment     `json:"customer_segments"`
}

// Report names, as used by the HTTP API
const (
	NameRevenueByGender           = "revenue-by-gender"
	NameHighSpendingDiscountUsers = "high-spending-discount-users"
	NameTopRatedItems             = "top-rated-items"
	NameSubscriptionSpend         = "subscription-spend"
	NameRevenueByAgeGroup         = "revenue-by-age-group"
	NameShippingSpend             = "shipping-spend"
	NameCustomerSegments          = "customer-segments"
)

// Names lists every report in display order
var Names = []string{
	NameRevenueByGender,
	NameHighSpendingDiscountUsers,
	NameTopRatedItems,
	NameSubscriptionSpend,
	NameRevenueByAgeGroup,
	NameShippingSpend,
	NameCustomerSegments,
}

// Run executes every query against q
func Run(ctx context.Context, q Querier) (*Report, error) {
	var (
		r   Report
		err error
	)

	if r.RevenueByGender, err = RevenueByGender(ctx, q); err != nil {
		return nil, err
	}
	if r.HighSpendingDiscountUsers, err = HighSpendingDiscountUsers(ctx, q); err != nil {
		return nil, err
	}
	if r.TopRatedItems, err = TopRatedItems(ctx, q); err != nil {
		return nil, err
	}
	if r.SubscriptionSpend, err = SubscriptionSpend(ctx, q); err != nil {
		return nil, err
	}
	if r.RevenueByAgeGroup, err = RevenueByAgeGroup(ctx, q); err != nil {
		return nil, err
	}
	if r.ShippingSpend, err = ShippingSpend(ctx, q); err != nil {
		return nil, err
	}
	if r.CustomerSegments, err = CustomerSegments(ctx, q); err != nil {
		return nil, err
	}

	return &r, nil
}

// RunNamed executes a single report by name
func RunNamed(ctx context.Context, q Querier, name string) (any, error) {
	switch name {
	case NameRevenueByGender:
		return RevenueByGender(ctx, q)
	case NameHighSpendingDiscountUsers:
		return HighSpendingDiscountUsers(ctx, q)
	case NameTopRatedItems:
		return TopRatedItems(ctx, q)
	case NameSubscriptionSpend:
		return SubscriptionSpend(ctx, q)
	case NameRevenueByAgeGroup:
		return RevenueByAgeGroup(ctx, q)
	case NameShippingSpend:
		return ShippingSpend(ctx, q)
	case NameCustomerSegments:
		return CustomerSegments(ctx, q)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, name)
}

// RevenueByGender sums purchase_amount per gender
func RevenueByGender(ctx context.Context, q Querier) ([]models.GenderRevenue, error) {
	return query(ctx, q, NameRevenueByGender, revenueByGenderSQL, func(rows *sql.Rows) (models.GenderRevenue, error) {
		var r models.GenderRevenue
		var gender string
		err := rows.Scan(&gender, &r.Revenue)
		r.Gender = models.Gender(gender)
		r.Revenue = round2(r.Revenue)
		return r, err
	})
}

// HighSpendingDiscountUsers lists promo code users who spent at least the
// average purchase amount
func HighSpendingDiscountUsers(ctx context.Context, q Querier) ([]models.DiscountHighSpender, error) {
	return query(ctx, q, NameHighSpendingDiscountUsers, highSpendingDiscountUsersSQL, func(rows *sql.Rows) (models.DiscountHighSpender, error) {
		var r models.DiscountHighSpender
		err := rows.Scan(&r.CustomerID, &r.PurchaseAmount)
		return r, err
	})
}

// TopRatedItems returns the five items with the highest average rating
func TopRatedItems(ctx context.Context, q Querier) ([]models.ItemRating, error) {
	return query(ctx, q, NameTopRatedItems, topRatedItemsSQL, func(rows *sql.Rows) (models.ItemRating, error) {
		var r models.ItemRating
		err := rows.Scan(&r.ItemPurchased, &r.AverageRating)
		r.AverageRating = round2(r.AverageRating)
		return r, err
	})
}

// SubscriptionSpend compares subscribers with non-subscribers
func SubscriptionSpend(ctx context.Context, q Querier) ([]models.SubscriptionSpend, error) {
	return query(ctx, q, NameSubscriptionSpend, subscriptionSpendSQL, func(rows *sql.Rows) (models.SubscriptionSpend, error) {
		var r models.SubscriptionSpend
		err := rows.Scan(&r.SubscriptionStatus, &r.Customers, &r.AverageSpend, &r.TotalRevenue)
		r.AverageSpend = round2(r.AverageSpend)
		r.TotalRevenue = round2(r.TotalRevenue)
		return r, err
	})
}

// RevenueByAgeGroup sums purchase_amount per age group, youngest first
func RevenueByAgeGroup(ctx context.Context, q Querier) ([]models.AgeGroupRevenue, error) {
	out, err := query(ctx, q, NameRevenueByAgeGroup, revenueByAgeGroupSQL, func(rows *sql.Rows) (models.AgeGroupRevenue, error) {
		var r models.AgeGroupRevenue
		var group string
		err := rows.Scan(&group, &r.Revenue)
		r.AgeGroup = models.AgeGroup(group)
		r.Revenue = round2(r.Revenue)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b models.AgeGroupRevenue) int {
		return ageGroupRank(a.AgeGroup) - ageGroupRank(b.AgeGroup)
	})
	return out, nil
}

// ShippingSpend averages purchase_amount per shipping type
func ShippingSpend(ctx context.Context, q Querier) ([]models.ShippingSpend, error) {
	return query(ctx, q, NameShippingSpend, shippingSpendSQL, func(rows *sql.Rows) (models.ShippingSpend, error) {
		var r models.ShippingSpend
		err := rows.Scan(&r.ShippingType, &r.Customers, &r.AverageSpend)
		r.AverageSpend = round2(r.AverageSpend)
		return r, err
	})
}

// Segments in display order
var segments = []string{"New", "Returning", "Loyal"}

// CustomerSegments counts customers by previous purchases:
// New (at most 1), Returning (2 to 10) and Loyal (more than 10).
func CustomerSegments(ctx context.Context, q Querier) ([]models.CustomerSegment, error) {
	out, err := query(ctx, q, NameCustomerSegments, customerSegmentsSQL, func(rows *sql.Rows) (models.CustomerSegment, error) {
		var r models.CustomerSegment
		err := rows.Scan(&r.Segment, &r.Customers)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b models.CustomerSegment) int {
		return slices.Index(segments, a.Segment) - slices.Index(segments, b.Segment)
	})
	return out, nil
}

// query runs text and scans every row with scan. An empty result is a
// non-nil empty slice so it encodes as [] rather than null.
func query[T any](ctx context.Context, q Querier, name, text string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%s: query failed: %w", name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan failed: %w", name, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func ageGroupRank(g models.AgeGroup) int {
	for i, label := range models.AgeGroups {
		if label == g {
			return i
		}
	}
	return len(models.AgeGroups)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
