package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestSpendingCategoryTag(t *testing.T) {
	v := GetValidator().GetValidate()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"canonical category", "Groceries", true},
		{"multi-word category", "Food & Dining", true},
		{"synonym is not canonical", "food", false},
		{"wrong case", "groceries", false},
		{"unknown", "Yachts", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "spending_category")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMoneyAmountTag(t *testing.T) {
	v := GetValidator().GetValidate()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"two decimal places", "12.50", true},
		{"negative debit", "-42.50", true},
		{"whole amount", "100", true},
		{"sub-cent precision", "1.999", false},
		{"not a number", "twelve", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "money_amount")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestQueryIntentTag(t *testing.T) {
	v := GetValidator().GetValidate()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"total", "TOTAL", true},
		{"list", "LIST", true},
		{"breakdown", "BREAKDOWN", true},
		{"lowercase rejected", "total", false},
		{"unknown", "FORECAST", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "query_intent")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
