// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"github.com/TarunK190/Customer-Behaviour-Analysis/models"
)

// Kind tells the renderers how to format a column
type Kind int

const (
	KindText Kind = iota
	KindCount
	KindMoney
	KindRating
)

// Column describes one output column
type Column struct {
	Title string
	Kind  Kind
}

// Table is a rendered view of one report. Each cell holds a string, int
// or float64 matching its column Kind.
type Table struct {
	Name    string
	Title   string
	Columns []Column
	Rows    [][]any
}

// Tables flattens the report into one Table per query, in Names order
func (r *Report) Tables() []Table {
	return []Table{
		{
			Name:    NameRevenueByGender,
			Title:   "Revenue by gender",
			Columns: []Column{{"Gender", KindText}, {"Revenue", KindMoney}},
			Rows: rowsOf(r.RevenueByGender, func(v models.GenderRevenue) []any {
				return []any{string(v.Gender), v.Revenue}
			}),
		},
		{
			Name:    NameHighSpendingDiscountUsers,
			Title:   "High-spending discount users",
			Columns: []Column{{"Customer ID", KindText}, {"Purchase Amount", KindMoney}},
			Rows: rowsOf(r.HighSpendingDiscountUsers, func(v models.DiscountHighSpender) []any {
				return []any{v.CustomerID, v.PurchaseAmount}
			}),
		},
		{
			Name:    NameTopRatedItems,
			Title:   "Top 5 items by average rating",
			Columns: []Column{{"Item", KindText}, {"Average Rating", KindRating}},
			Rows: rowsOf(r.TopRatedItems, func(v models.ItemRating) []any {
				return []any{v.ItemPurchased, v.AverageRating}
			}),
		},
		{
			Name:    NameSubscriptionSpend,
			Title:   "Subscribers vs non-subscribers",
			Columns: []Column{{"Subscribed", KindText}, {"Customers", KindCount}, {"Average Spend", KindMoney}, {"Total Revenue", KindMoney}},
			Rows: rowsOf(r.SubscriptionSpend, func(v models.SubscriptionSpend) []any {
				return []any{v.SubscriptionStatus, v.Customers, v.AverageSpend, v.TotalRevenue}
			}),
		},
		{
			Name:    NameRevenueByAgeGroup,
			Title:   "Revenue by age group",
			Columns: []Column{{"Age Group", KindText}, {"Revenue", KindMoney}},
			Rows: rowsOf(r.RevenueByAgeGroup, func(v models.AgeGroupRevenue) []any {
				return []any{string(v.AgeGroup), v.Revenue}
			}),
		},
		{
			Name:    NameShippingSpend,
			Title:   "Average spend by shipping type",
			Columns: []Column{{"Shipping Type", KindText}, {"Customers", KindCount}, {"Average Spend", KindMoney}},
			Rows: rowsOf(r.ShippingSpend, func(v models.ShippingSpend) []any {
				return []any{v.ShippingType, v.Customers, v.AverageSpend}
			}),
		},
		{
			Name:    NameCustomerSegments,
			Title:   "Customer segments",
			Columns: []Column{{"Segment", KindText}, {"Customers", KindCount}},
			Rows: rowsOf(r.CustomerSegments, func(v models.CustomerSegment) []any {
				return []any{v.Segment, v.Customers}
			}),
		},
	}
}

func rowsOf[T any](items []T, row func(T) []any) [][]any {
	out := make([][]any, len(items))
	for i, item := range items {
		out[i] = row(item)
	}
	return out
}
