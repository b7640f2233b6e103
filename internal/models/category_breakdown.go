package models

import "github.com/shopspring/decimal"

// CategoryBreakdown is one row of a per-category subtotal report. Breakdowns
// are returned as ordered slices (descending subtotal magnitude, ties broken
// alphabetically) because map iteration order is not deterministic.
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Subtotal decimal.Decimal `json:"subtotal"`
}
