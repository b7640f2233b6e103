package nlquery

import (
	"strconv"
	"time"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"

	"github.com/shopspring/decimal"
)

// Each unresolved aspect of the question costs a fixed slice of confidence.
const confidencePenalty = 0.25

// Parser translates free-form questions into structured queries. It is
// purely deterministic: the same text and anchor time always produce the
// same ParsedQuery, and parsing never fails. Unrecognized input degrades to
// an unscoped TOTAL query with low confidence instead.
type Parser struct {
	lookup models.Lookup
}

// NewParser creates a parser bound to the category/merchant lookup table
// supplied by the categorization subsystem.
func NewParser(lookup models.Lookup) *Parser {
	return &Parser{lookup: lookup}
}

// Parse runs the full pipeline: normalize, resolve dates, match
// category/merchant, classify intent, score confidence.
func (p *Parser) Parse(text string, now time.Time) models.ParsedQuery {
	tokens, numbers := Normalize(text)

	query := models.ParsedQuery{
		Intent:  models.IntentTotal,
		RawText: text,
	}

	if len(tokens) == 0 {
		return query
	}

	dateRange, dateMatches := ResolveDateRange(tokens, now)
	if dateRange != nil {
		from, to := dateRange.From, dateRange.To
		query.DateFrom = &from
		query.DateTo = &to
	}

	query.Category = MatchCategory(tokens, p.lookup)
	query.Merchant = MatchMerchant(tokens, p.lookup)

	intent, intentAmbiguous := ClassifyIntent(tokens)
	query.Intent = intent

	query.AmountMin, query.AmountMax = resolveAmountRange(tokens, numbers)

	confidence := 1.0
	if dateRange == nil && hasTemporalWords(tokens) {
		confidence -= confidencePenalty
	}
	if dateMatches > 1 {
		confidence -= confidencePenalty
	}
	if query.Category == "" && query.Merchant == "" && hasNounLikeToken(tokens) {
		confidence -= confidencePenalty
	}
	if intentAmbiguous {
		confidence -= confidencePenalty
	}
	if confidence < 0 {
		confidence = 0
	}
	query.Confidence = confidence

	return query
}

// resolveAmountRange maps comparator phrases ("over $50", "under 100",
// "more than 20") to signed amount bounds. Numbers that look like calendar
// years are ignored unless written with a currency symbol.
func resolveAmountRange(tokens []string, numbers []NumericLiteral) (*decimal.Decimal, *decimal.Decimal) {
	var min, max *decimal.Decimal

	for i, tok := range tokens {
		var lower bool
		switch tok {
		case "over", "above", "least":
			lower = true
		case "under", "below", "most":
			lower = false
		case "than":
			if i == 0 {
				continue
			}
			switch tokens[i-1] {
			case "more", "greater":
				lower = true
			case "less", "fewer":
				lower = false
			default:
				continue
			}
		default:
			continue
		}

		literal, ok := nextAmountLiteral(tokens, numbers, i+1)
		if !ok {
			continue
		}

		value := literal.Value
		if lower && min == nil {
			min = &value
		} else if !lower && max == nil {
			max = &value
		}
	}

	// A contradictory spoken range is dropped entirely rather than
	// producing an invalid filter.
	if min != nil && max != nil && min.GreaterThan(*max) {
		return nil, nil
	}
	return min, max
}

// nextAmountLiteral finds the first numeric literal at or just after
// position pos that plausibly denotes money.
func nextAmountLiteral(tokens []string, numbers []NumericLiteral, pos int) (NumericLiteral, bool) {
	for i := pos; i < len(tokens) && i < pos+2; i++ {
		for _, literal := range numbers {
			if literal.Value.String() != tokens[i] {
				continue
			}
			if looksLikeYear(literal) {
				continue
			}
			return literal, true
		}
	}
	return NumericLiteral{}, false
}

func looksLikeYear(literal NumericLiteral) bool {
	if literal.HasCurrencySymbol() {
		return false
	}
	n, err := strconv.Atoi(literal.Value.String())
	return err == nil && n >= 1900 && n <= 2100
}

var temporalWords = map[string]bool{
	"today": true, "yesterday": true, "tomorrow": true,
	"day": true, "days": true,
	"week": true, "weeks": true,
	"month": true, "months": true,
	"year": true, "years": true,
	"last": true, "past": true, "this": true,
	"between": true, "since": true, "ago": true, "recent": true, "recently": true,
}

func hasTemporalWords(tokens []string) bool {
	for _, tok := range tokens {
		if temporalWords[tok] {
			return true
		}
		if _, ok := monthsByName[tok]; ok {
			return true
		}
	}
	return false
}

// Words that carry question structure rather than content. A token outside
// this set (and not a number) is treated as noun-like: the user probably
// named a category or merchant, and failing to match it costs confidence.
var structuralWords = map[string]bool{
	"how": true, "much": true, "many": true, "what": true, "which": true,
	"did": true, "do": true, "does": true, "i": true, "my": true, "me": true,
	"spend": true, "spent": true, "pay": true, "paid": true, "buy": true,
	"bought": true, "cost": true, "was": true, "were": true, "is": true,
	"are": true, "the": true, "a": true, "an": true, "of": true, "on": true,
	"in": true, "at": true, "for": true, "to": true, "and": true, "or": true,
	"from": true, "all": true, "total": true, "sum": true, "money": true,
	"show": true, "list": true, "transactions": true, "transaction": true,
	"count": true, "average": true, "avg": true, "breakdown": true,
	"category": true, "each": true, "by": true, "per": true,
	"over": true, "under": true, "above": true, "below": true, "than": true,
	"more": true, "less": true, "greater": true, "fewer": true,
	"least": true, "most": true,
}

func hasNounLikeToken(tokens []string) bool {
	for _, tok := range tokens {
		if structuralWords[tok] || temporalWords[tok] {
			continue
		}
		if _, ok := monthsByName[tok]; ok {
			continue
		}
		if _, err := strconv.Atoi(tok); err == nil {
			continue
		}
		if _, err := decimal.NewFromString(tok); err == nil {
			continue
		}
		return true
	}
	return false
}
