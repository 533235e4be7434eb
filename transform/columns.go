package transform

import "strings"

// Explicit renames applied after the generic normalization
var columnRenames = map[string]string{
	"purchase_amount_(usd)": "purchase_amount",
}

// NormalizeColumnName lower-cases a CSV header label, replaces spaces with
// underscores and applies the explicit renames.
func NormalizeColumnName(label string) string {
	name := strings.ToLower(strings.TrimSpace(label))
	name = strings.ReplaceAll(name, " ", "_")
	if renamed, ok := columnRenames[name]; ok {
		return renamed
	}
	return name
}

// NormalizeHeader maps NormalizeColumnName over a whole header row
func NormalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, label := range header {
		out[i] = NormalizeColumnName(label)
	}
	return out
}
