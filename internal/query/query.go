package query

import (
	"errors"
	"fmt"
	"time"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"
	"github.com/arjaygg/analyze-fin-sub001/internal/repositories"

	"github.com/shopspring/decimal"
)

// ErrInvalidFilter is returned when a builder method receives a
// self-contradictory or empty argument. It is surfaced at the call site,
// before any store access happens.
var ErrInvalidFilter = errors.New("invalid filter")

// SpendingQuery is an explicit mutable builder that accumulates conjunctive
// filter predicates over a transaction store and executes them on demand.
// Builder methods return the mutated receiver for chaining together with an
// immediate validation error. Terminal operations always re-evaluate the
// current filter list against the live store; nothing is cached between
// calls, so adding a filter after a terminal call changes the next result.
//
// A SpendingQuery is not safe for concurrent use. Each caller constructs its
// own builder per logical query.
type SpendingQuery struct {
	store   repositories.TransactionStoreInterface
	filters []models.Filter
}

// New creates an empty builder bound to a transaction store
func New(store repositories.TransactionStoreInterface) *SpendingQuery {
	return &SpendingQuery{store: store}
}

// Filters returns a copy of the accumulated filter list, mostly for logging
// and tests
func (q *SpendingQuery) Filters() []models.Filter {
	out := make([]models.Filter, len(q.filters))
	copy(out, q.filters)
	return out
}

// ByCategory appends an exact category equality filter
func (q *SpendingQuery) ByCategory(name string) (*SpendingQuery, error) {
	if name == "" {
		return q, fmt.Errorf("%w: category name must not be empty", ErrInvalidFilter)
	}
	q.filters = append(q.filters, models.Filter{
		Kind:     models.FilterCategoryEquals,
		Category: name,
	})
	return q, nil
}

// ByMerchant appends a case-insensitive merchant substring filter
func (q *SpendingQuery) ByMerchant(substring string) (*SpendingQuery, error) {
	if substring == "" {
		return q, fmt.Errorf("%w: merchant substring must not be empty", ErrInvalidFilter)
	}
	q.filters = append(q.filters, models.Filter{
		Kind:     models.FilterMerchantContains,
		Merchant: substring,
	})
	return q, nil
}

// ByDateRange appends an inclusive-start, exclusive-end date range filter
func (q *SpendingQuery) ByDateRange(start, end time.Time) (*SpendingQuery, error) {
	if start.After(end) {
		return q, fmt.Errorf("%w: date range start %s is after end %s",
			ErrInvalidFilter, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	q.filters = append(q.filters, models.Filter{
		Kind:     models.FilterDateRange,
		DateFrom: start,
		DateTo:   end,
	})
	return q, nil
}

// ByAmountRange appends a range filter over signed amounts: debits are
// negative, so "spending between 10 and 50" is the range [-50, -10]. A nil
// bound leaves that side open.
func (q *SpendingQuery) ByAmountRange(min, max *decimal.Decimal) (*SpendingQuery, error) {
	if min == nil && max == nil {
		return q, fmt.Errorf("%w: amount range needs at least one bound", ErrInvalidFilter)
	}
	if min != nil && max != nil && min.GreaterThan(*max) {
		return q, fmt.Errorf("%w: amount range min %s is greater than max %s",
			ErrInvalidFilter, min.String(), max.String())
	}
	q.filters = append(q.filters, models.Filter{
		Kind:      models.FilterAmountRange,
		AmountMin: min,
		AmountMax: max,
	})
	return q, nil
}

// SearchText appends a case-insensitive substring filter over descriptions
func (q *SpendingQuery) SearchText(text string) (*SpendingQuery, error) {
	if text == "" {
		return q, fmt.Errorf("%w: search text must not be empty", ErrInvalidFilter)
	}
	q.filters = append(q.filters, models.Filter{
		Kind: models.FilterTextSearch,
		Text: text,
	})
	return q, nil
}

// Execute returns the matching transactions ordered by date ascending, with
// ID as a stable tie-break. An empty result set is an empty slice, not an
// error.
func (q *SpendingQuery) Execute() ([]models.Transaction, error) {
	return q.store.Find(q.filters)
}

// Total returns the exact signed sum over the filtered set; zero for an
// empty set
func (q *SpendingQuery) Total() (decimal.Decimal, error) {
	return q.store.SumAmount(q.filters)
}

// Count returns the number of matching transactions
func (q *SpendingQuery) Count() (int64, error) {
	return q.store.Count(q.filters)
}

// GroupByCategory returns per-category subtotals ordered by descending
// subtotal magnitude, ties broken alphabetically by category name. The
// subtotals always sum to Total over the same filter list.
func (q *SpendingQuery) GroupByCategory() ([]models.CategoryBreakdown, error) {
	return q.store.SumByCategory(q.filters)
}
