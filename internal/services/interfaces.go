package services

import (
	"time"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"
)

// LookupServiceInterface supplies the category/merchant lookup table the NL
// parser matches against. The table is built once and is immutable.
type LookupServiceInterface interface {
	// Lookup returns the ordered category synonym table and the set of
	// known normalized merchant names
	Lookup() models.Lookup
}

// SpendingServiceInterface answers natural-language questions about the
// transaction store
type SpendingServiceInterface interface {
	// AnswerQuestion parses the question anchored at now, executes the
	// matching query and returns the structured answer
	AnswerQuestion(question string, now time.Time) (*SpendingAnswer, error)
}

// TransactionGeneratorInterface produces realistic sample transactions for
// development and demo databases
type TransactionGeneratorInterface interface {
	// GenerateHistory generates count transactions spread over the days
	// preceding until
	GenerateHistory(until time.Time, days, count int) []models.Transaction
}

// MetricsRecorderInterface abstracts the metrics backend
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
