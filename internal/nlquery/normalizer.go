package nlquery

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NumericLiteral is a number extracted from the input text together with the
// surface form it was written as ("$1,234.56" -> 1234.56).
type NumericLiteral struct {
	Value   decimal.Decimal
	Surface string
}

// HasCurrencySymbol returns true if the literal was written with an explicit
// currency marker
func (n NumericLiteral) HasCurrencySymbol() bool {
	return strings.ContainsAny(n.Surface, "$€£")
}

// Normalize lowercases the input, strips punctuation from token edges and
// splits it into a word sequence. Numeric tokens keep their decimal point and
// lose thousands separators and currency symbols; each one is also reported
// as a NumericLiteral. Empty input yields an empty token slice, not an error.
func Normalize(text string) ([]string, []NumericLiteral) {
	fields := strings.Fields(strings.ToLower(text))

	tokens := make([]string, 0, len(fields))
	var numbers []NumericLiteral

	for _, field := range fields {
		if value, ok := parseNumeric(field); ok {
			normalized := value.String()
			tokens = append(tokens, normalized)
			numbers = append(numbers, NumericLiteral{Value: value, Surface: field})
			continue
		}

		token := trimPunctuation(field)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens, numbers
}

// parseNumeric recognizes currency amounts and plain numbers such as
// "1,234.56", "$50" or "12.50€". Anything else is not a number.
func parseNumeric(field string) (decimal.Decimal, bool) {
	s := trimPunctuation(field)
	s = strings.Trim(s, "$€£")
	if s == "" {
		return decimal.Decimal{}, false
	}

	// Thousands separators are dropped, the decimal point is kept.
	s = strings.ReplaceAll(s, ",", "")

	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			return decimal.Decimal{}, false
		}
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}

// trimPunctuation strips punctuation from both ends of a token while leaving
// interior characters alone, so dates ("2024-01-01") and names with embedded
// punctuation survive.
func trimPunctuation(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '$' || r == '€' || r == '£':
			return false
		default:
			return true
		}
	})
}
