package validation

import (
	"reflect"
	"strings"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("spending_category", validateSpendingCategory)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("query_intent", validateQueryIntent)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateSpendingCategory validates that a category is one of the canonical names
func validateSpendingCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	if category == "" {
		return false
	}
	return models.IsValidCategory(category)
}

// validateMoneyAmount validates that a string parses as a decimal amount
// with at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return amount.Exponent() >= -2
}

// validateQueryIntent validates that an intent is one of the recognized kinds
func validateQueryIntent(fl validator.FieldLevel) bool {
	return models.IsValidIntent(models.Intent(fl.Field().String()))
}
