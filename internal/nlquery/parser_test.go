package nlquery

import (
	"testing"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return NewParser(testLookup())
}

func TestParser_Parse_CategoryTotal(t *testing.T) {
	parsed := newTestParser().Parse("How much did I spend on food?", anchor)

	assert.Equal(t, models.IntentTotal, parsed.Intent)
	assert.Equal(t, models.CategoryFoodDining, parsed.Category)
	assert.Empty(t, parsed.Merchant)
	assert.False(t, parsed.HasDateRange())
	assert.Equal(t, 1.0, parsed.Confidence)
	assert.Equal(t, "How much did I spend on food?", parsed.RawText)
}

func TestParser_Parse_UnscopedTotal(t *testing.T) {
	parsed := newTestParser().Parse("How much did I spend?", anchor)

	assert.Equal(t, models.IntentTotal, parsed.Intent)
	assert.Empty(t, parsed.Category)
	assert.Empty(t, parsed.Merchant)
	assert.False(t, parsed.HasDateRange())
	assert.Nil(t, parsed.AmountMin)
	assert.Nil(t, parsed.AmountMax)
	assert.Equal(t, 1.0, parsed.Confidence)
}

func TestParser_Parse_ListLastMonth(t *testing.T) {
	parsed := newTestParser().Parse("Show transactions last month", anchor)

	assert.Equal(t, models.IntentList, parsed.Intent)
	require.True(t, parsed.HasDateRange())
	assert.True(t, day(2024, 11, 1).Equal(*parsed.DateFrom))
	assert.True(t, day(2024, 12, 1).Equal(*parsed.DateTo))
	assert.Equal(t, 1.0, parsed.Confidence)
}

func TestParser_Parse_MerchantWithMonth(t *testing.T) {
	parsed := newTestParser().Parse("How much did I spend at Starbucks in November 2024?", anchor)

	assert.Equal(t, models.IntentTotal, parsed.Intent)
	assert.Equal(t, "starbucks", parsed.Merchant)
	require.True(t, parsed.HasDateRange())
	assert.True(t, day(2024, 11, 1).Equal(*parsed.DateFrom))
	assert.True(t, day(2024, 12, 1).Equal(*parsed.DateTo))
}

func TestParser_Parse_AmountComparators(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin string
		wantMax string
	}{
		{
			name:    "over sets the lower bound",
			input:   "purchases over $50 on coffee",
			wantMin: "50",
		},
		{
			name:    "under sets the upper bound",
			input:   "coffee under $20",
			wantMax: "20",
		},
		{
			name:    "more than sets the lower bound",
			input:   "coffee more than 15",
			wantMin: "15",
		},
		{
			name:    "less than sets the upper bound",
			input:   "coffee less than 30",
			wantMax: "30",
		},
		{
			name:    "both bounds",
			input:   "coffee over $10 and under $40",
			wantMin: "10",
			wantMax: "40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := newTestParser().Parse(tt.input, anchor)

			if tt.wantMin == "" {
				assert.Nil(t, parsed.AmountMin)
			} else {
				require.NotNil(t, parsed.AmountMin)
				assert.True(t, parsed.AmountMin.Equal(decimal.RequireFromString(tt.wantMin)))
			}
			if tt.wantMax == "" {
				assert.Nil(t, parsed.AmountMax)
			} else {
				require.NotNil(t, parsed.AmountMax)
				assert.True(t, parsed.AmountMax.Equal(decimal.RequireFromString(tt.wantMax)))
			}
		})
	}
}

func TestParser_Parse_ContradictoryAmountRangeDropped(t *testing.T) {
	parsed := newTestParser().Parse("coffee over $100 and under $10", anchor)

	assert.Nil(t, parsed.AmountMin)
	assert.Nil(t, parsed.AmountMax)
}

func TestParser_Parse_BareYearIsNotAnAmount(t *testing.T) {
	parsed := newTestParser().Parse("coffee spending over 2024", anchor)

	assert.Nil(t, parsed.AmountMin)
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	parsed := newTestParser().Parse("", anchor)

	assert.Equal(t, models.IntentTotal, parsed.Intent)
	assert.Empty(t, parsed.Category)
	assert.Empty(t, parsed.Merchant)
	assert.False(t, parsed.HasDateRange())
	assert.Nil(t, parsed.AmountMin)
	assert.Nil(t, parsed.AmountMax)
	assert.Zero(t, parsed.Confidence)
}

func TestParser_Parse_ConfidencePenalties(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{
			name:  "fully resolved question",
			input: "how much did i spend on food last month",
			want:  1.0,
		},
		{
			name:  "temporal words without a resolvable range",
			input: "food spending a few weeks ago",
			want:  0.75,
		},
		{
			name:  "unmatched noun-like token",
			input: "how much did i spend on zorbnax",
			want:  0.75,
		},
		{
			name:  "two competing date phrases",
			input: "spending yesterday or on 2024-06-05 for food",
			want:  0.75,
		},
		{
			name:  "conflicting aggregation cues",
			input: "count or average of food",
			want:  0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := newTestParser().Parse(tt.input, anchor)
			assert.InDelta(t, tt.want, parsed.Confidence, 0.001)
		})
	}
}

func TestParser_Parse_ConfidenceStaysInRange(t *testing.T) {
	inputs := []string{
		"zorbnax flibbet recently or maybe count average breakdown",
		"???",
		"show me everything",
	}

	for _, input := range inputs {
		parsed := newTestParser().Parse(input, anchor)
		assert.GreaterOrEqual(t, parsed.Confidence, 0.0, input)
		assert.LessOrEqual(t, parsed.Confidence, 1.0, input)
	}
}

func TestParser_Parse_Deterministic(t *testing.T) {
	input := "How much did I spend at Starbucks on coffee over $5 last month?"

	first := newTestParser().Parse(input, anchor)
	second := newTestParser().Parse(input, anchor)

	assert.Equal(t, first, second)
}

func TestParser_Parse_DateRangeInvariant(t *testing.T) {
	// whenever both ends are set, from never exceeds to
	inputs := []string{
		"last month", "this week", "between 2024-01-01 and 2024-01-31",
		"yesterday", "past 2 years", "november 2024",
	}

	for _, input := range inputs {
		parsed := newTestParser().Parse(input, anchor)
		if parsed.HasDateRange() {
			assert.False(t, parsed.DateFrom.After(*parsed.DateTo), input)
		}
	}
}
