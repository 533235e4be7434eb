package transform

import "github.com/TarunK190/Customer-Behaviour-Analysis/models"

// frequencyDays maps frequency_of_purchases to an interval in days
var frequencyDays = map[string]int{
	"Weekly":         7,
	"Fortnightly":    14,
	"Bi-Weekly":      14,
	"Monthly":        30,
	"Quarterly":      90,
	"Every 3 Months": 90,
	"Annually":       365,
}

// FrequencyDays looks up the purchase interval for a frequency label.
// Labels must match exactly.
func FrequencyDays(frequency string) (int, error) {
	days, ok := frequencyDays[frequency]
	if !ok {
		return 0, &UnmappedFrequencyError{Value: frequency}
	}
	return days, nil
}

// AssignFrequencyDays fills PurchaseFrequencyDays on every row, stopping at
// the first unmapped value.
func AssignFrequencyDays(txs []models.Transaction) error {
	for i := range txs {
		days, ok := frequencyDays[txs[i].FrequencyOfPurchases]
		if !ok {
			return &UnmappedFrequencyError{
				CustomerID: txs[i].CustomerID,
				Value:      txs[i].FrequencyOfPurchases,
			}
		}
		txs[i].PurchaseFrequencyDays = days
	}
	return nil
}
