package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilterKind identifies a single predicate type applied to transactions
type FilterKind string

const (
	FilterCategoryEquals   FilterKind = "category-equals"
	FilterMerchantContains FilterKind = "merchant-contains"
	FilterDateRange        FilterKind = "date-range"
	FilterAmountRange      FilterKind = "amount-range"
	FilterTextSearch       FilterKind = "text-search"
)

// Filter is a single predicate unit over the transaction set. Filters are
// conjunctive: the result set is the intersection of all filters regardless
// of the order they were added, though the order is preserved so the store
// can generate stable query plans and traces.
type Filter struct {
	Kind FilterKind

	// FilterCategoryEquals
	Category string

	// FilterMerchantContains (case-insensitive substring)
	Merchant string

	// FilterDateRange, inclusive start / exclusive end
	DateFrom time.Time
	DateTo   time.Time

	// FilterAmountRange over signed amounts (debits negative). Nil bound
	// means unbounded on that side.
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal

	// FilterTextSearch (case-insensitive substring over description)
	Text string
}
