package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Intent is the kind of aggregation the user asked for
type Intent string

const (
	IntentTotal     Intent = "TOTAL"
	IntentCount     Intent = "COUNT"
	IntentAverage   Intent = "AVERAGE"
	IntentBreakdown Intent = "BREAKDOWN"
	IntentList      Intent = "LIST"
)

// IsValidIntent checks if an intent string is valid
func IsValidIntent(intent Intent) bool {
	switch intent {
	case IntentTotal, IntentCount, IntentAverage, IntentBreakdown, IntentList:
		return true
	default:
		return false
	}
}

// ParsedQuery is the structured result of translating a natural-language
// question into filter and intent fields. It is created once per question
// and never mutated afterwards. Empty strings and nil pointers mean the
// query is unscoped on that dimension.
//
// Invariant: when both DateFrom and DateTo are set, DateFrom <= DateTo and
// the range is half-open [DateFrom, DateTo).
type ParsedQuery struct {
	Intent    Intent           `json:"intent"`
	Category  string           `json:"category,omitempty"`
	Merchant  string           `json:"merchant,omitempty"`
	DateFrom  *time.Time       `json:"date_from,omitempty"`
	DateTo    *time.Time       `json:"date_to,omitempty"`
	AmountMin *decimal.Decimal `json:"amount_min,omitempty"`
	AmountMax *decimal.Decimal `json:"amount_max,omitempty"`
	RawText   string           `json:"raw_text"`

	// Confidence reflects how much of the input was successfully
	// interpreted, in [0, 1]. Advisory only: a low-confidence query is
	// still executed, never rejected.
	Confidence float64 `json:"confidence"`
}

// HasDateRange returns true when both date bounds are set
func (q *ParsedQuery) HasDateRange() bool {
	return q.DateFrom != nil && q.DateTo != nil
}
