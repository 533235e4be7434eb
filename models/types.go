package models

import "fmt"

// Gender values accepted in the source data
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// AgeGroup is the derived quantile bucket label
type AgeGroup string

const (
	AgeGroupYoungAdult AgeGroup = "Young Adult"
	AgeGroupAdult      AgeGroup = "Adult"
	AgeGroupMiddleAged AgeGroup = "Middle-aged"
	AgeGroupMature     AgeGroup = "Mature"
	AgeGroupSenior     AgeGroup = "Senior"
)

// AgeGroups lists the bucket labels from youngest to oldest.
// Index i is the label of quantile bucket i.
var AgeGroups = [...]AgeGroup{
	AgeGroupYoungAdult,
	AgeGroupAdult,
	AgeGroupMiddleAged,
	AgeGroupMature,
	AgeGroupSenior,
}

// Yes/No literals used by the boolean-like columns
const (
	Yes = "Yes"
	No  = "No"
)

// YesNo renders a boolean the way the source data and destination table spell it
func YesNo(b bool) string {
	if b {
		return Yes
	}
	return No
}

// ParseYesNo parses a Yes/No cell
func ParseYesNo(s string) (bool, error) {
	switch s {
	case Yes:
		return true, nil
	case No:
		return false, nil
	}
	return false, fmt.Errorf("expected %q or %q, got %q", Yes, No, s)
}

// Domain types

// Transaction is one purchase record, from CSV load through to the
// customer_details table.
type Transaction struct {
	CustomerID           int      `json:"customer_id" validate:"gt=0"`
	Age                  int      `json:"age" validate:"gte=0,lte=130"`
	Gender               Gender   `json:"gender" validate:"oneof=Male Female"`
	ItemPurchased        string   `json:"item_purchased" validate:"required"`
	Category             string   `json:"category" validate:"required"`
	PurchaseAmount       float64  `json:"purchase_amount" validate:"gte=0"`
	Location             string   `json:"location" validate:"required"`
	Size                 string   `json:"size" validate:"required"`
	Color                string   `json:"color" validate:"required"`
	Season               string   `json:"season" validate:"required"`
	ReviewRating         *float64 `json:"review_rating" validate:"omitempty,gte=1,lte=5"`
	SubscriptionStatus   bool     `json:"subscription_status"`
	ShippingType         string   `json:"shipping_type" validate:"required"`
	DiscountApplied      bool     `json:"-"` // dropped before the sink
	PromoCodeUsed        bool     `json:"promo_code_used"`
	PreviousPurchases    int      `json:"previous_purchases" validate:"gte=0"`
	PaymentMethod        string   `json:"payment_method" validate:"required"`
	FrequencyOfPurchases string   `json:"frequency_of_purchases" validate:"required"`

	// Derived during transform
	AgeGroup              AgeGroup `json:"age_group"`
	PurchaseFrequencyDays int      `json:"purchase_frequency_days"`
}

// Report row types

type GenderRevenue struct {
	Gender  Gender  `json:"gender"`
	Revenue float64 `json:"revenue"`
}

type DiscountHighSpender struct {
	CustomerID     int     `json:"customer_id"`
	PurchaseAmount float64 `json:"purchase_amount"`
}

type ItemRating struct {
	ItemPurchased string  `json:"item_purchased"`
	AverageRating float64 `json:"average_rating"`
}

type SubscriptionSpend struct {
	SubscriptionStatus string  `json:"subscription_status"`
	Customers          int     `json:"customers"`
	AverageSpend       float64 `json:"average_spend"`
	TotalRevenue       float64 `json:"total_revenue"`
}

type AgeGroupRevenue struct {
	AgeGroup AgeGroup `json:"age_group"`
	Revenue  float64  `json:"revenue"`
}

type ShippingSpend struct {
	ShippingType string  `json:"shipping_type"`
	Customers    int     `json:"customers"`
	AverageSpend float64 `json:"average_spend"`
}

type CustomerSegment struct {
	Segment   string `json:"segment"`
	Customers int    `json:"customers"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
