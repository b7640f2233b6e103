package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"
	"github.com/arjaygg/analyze-fin-sub001/internal/nlquery"
	"github.com/arjaygg/analyze-fin-sub001/internal/query"
	"github.com/arjaygg/analyze-fin-sub001/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrEmptyQuestion = errors.New("question must not be empty")

// SpendingAnswer is the structured result of a natural-language question.
// Exactly one of the result fields is populated, depending on the intent.
type SpendingAnswer struct {
	Intent       models.Intent              `json:"intent"`
	Confidence   float64                    `json:"confidence"`
	Total        *decimal.Decimal           `json:"total,omitempty"`
	Count        *int64                     `json:"count,omitempty"`
	Average      *decimal.Decimal           `json:"average,omitempty"`
	Breakdown    []models.CategoryBreakdown `json:"breakdown,omitempty"`
	Transactions []models.Transaction       `json:"transactions,omitempty"`
	Filters      []models.Filter            `json:"filters"`
}

type spendingService struct {
	store   repositories.TransactionStoreInterface
	parser  *nlquery.Parser
	metrics MetricsRecorderInterface
	breaker *CircuitBreaker
}

func NewSpendingService(
	store repositories.TransactionStoreInterface,
	lookupSvc LookupServiceInterface,
	metrics MetricsRecorderInterface,
) SpendingServiceInterface {
	return &spendingService{
		store:   store,
		parser:  nlquery.NewParser(lookupSvc.Lookup()),
		metrics: metrics,
		breaker: NewCircuitBreaker(DefaultCircuitBreakerConfig()),
	}
}

func (s *spendingService) AnswerQuestion(question string, now time.Time) (*SpendingAnswer, error) {
	start := time.Now()

	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	parsed := s.parser.Parse(question, now)

	s.metrics.IncrementCounter("nlquery_parses_total", map[string]string{
		"intent": string(parsed.Intent),
	})
	s.metrics.RecordGauge("nlquery_parse_confidence", parsed.Confidence, map[string]string{
		"intent": string(parsed.Intent),
	})

	q, err := s.buildQuery(parsed)
	if err != nil {
		slog.Error("failed to build spending query",
			"question", question,
			"error", err)
		return nil, err
	}

	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter("nlquery_store_errors_total", nil)
		slog.Warn("rejecting question, store circuit open",
			"intent", parsed.Intent)
		return nil, repositories.ErrStoreUnavailable
	}

	answer, err := s.run(parsed, q)
	if err != nil {
		if errors.Is(err, repositories.ErrStoreUnavailable) {
			s.breaker.RecordFailure()
		}
		s.metrics.IncrementCounter("nlquery_store_errors_total", nil)
		slog.Error("spending query failed",
			"question", question,
			"intent", parsed.Intent,
			"error", err)
		return nil, err
	}
	s.breaker.RecordSuccess()

	s.metrics.RecordProcessingTime("nlquery_answer", time.Since(start))
	slog.Info("answered spending question",
		"intent", parsed.Intent,
		"confidence", parsed.Confidence,
		"filter_count", len(answer.Filters))

	return answer, nil
}

// buildQuery translates the parsed fields into query filters. Fields the
// parser did not resolve simply add no filter.
func (s *spendingService) buildQuery(parsed models.ParsedQuery) (*query.SpendingQuery, error) {
	q := query.New(s.store)
	var err error

	if parsed.Category != "" {
		if q, err = q.ByCategory(parsed.Category); err != nil {
			return nil, err
		}
	}
	if parsed.Merchant != "" {
		if q, err = q.ByMerchant(parsed.Merchant); err != nil {
			return nil, err
		}
	}
	if parsed.HasDateRange() {
		if q, err = q.ByDateRange(*parsed.DateFrom, *parsed.DateTo); err != nil {
			return nil, err
		}
	}
	if parsed.AmountMin != nil || parsed.AmountMax != nil {
		// The parser reports spending magnitudes ("over $50" -> min 50),
		// the store filters on signed amounts where debits are negative:
		// spending at least 50 means amount <= -50.
		var signedMin, signedMax *decimal.Decimal
		if parsed.AmountMax != nil {
			v := parsed.AmountMax.Neg()
			signedMin = &v
		}
		if parsed.AmountMin != nil {
			v := parsed.AmountMin.Neg()
			signedMax = &v
		} else {
			// A bare maximum ("under $20") still only talks about
			// spending: cap the signed bound at zero so credits
			// never satisfy it.
			v := decimal.Zero
			signedMax = &v
		}
		if q, err = q.ByAmountRange(signedMin, signedMax); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (s *spendingService) run(parsed models.ParsedQuery, q *query.SpendingQuery) (*SpendingAnswer, error) {
	answer := &SpendingAnswer{
		Intent:     parsed.Intent,
		Confidence: parsed.Confidence,
		Filters:    q.Filters(),
	}

	switch parsed.Intent {
	case models.IntentTotal:
		total, err := q.Total()
		if err != nil {
			return nil, err
		}
		answer.Total = &total

	case models.IntentCount:
		count, err := q.Count()
		if err != nil {
			return nil, err
		}
		answer.Count = &count

	case models.IntentAverage:
		avg, err := s.average(q)
		if err != nil {
			return nil, err
		}
		answer.Average = &avg

	case models.IntentBreakdown:
		breakdown, err := q.GroupByCategory()
		if err != nil {
			return nil, err
		}
		answer.Breakdown = breakdown

	case models.IntentList:
		transactions, err := q.Execute()
		if err != nil {
			return nil, err
		}
		answer.Transactions = transactions

	default:
		return nil, fmt.Errorf("unsupported intent: %s", parsed.Intent)
	}

	return answer, nil
}

// average is computed from total and count so the division happens exactly
// once, rounded to cents. An empty result set averages to zero rather than
// erroring.
func (s *spendingService) average(q *query.SpendingQuery) (decimal.Decimal, error) {
	total, err := q.Total()
	if err != nil {
		return decimal.Zero, err
	}
	count, err := q.Count()
	if err != nil {
		return decimal.Zero, err
	}
	if count == 0 {
		return decimal.Zero, nil
	}
	return total.DivRound(decimal.NewFromInt(count), 2), nil
}
