package models

// Canonical spending categories. These are the display names the
// categorization subsystem produces and the query engine filters on.
const (
	CategoryFoodDining     = "Food & Dining"
	CategoryGroceries      = "Groceries"
	CategoryTransportation = "Transportation"
	CategoryShopping       = "Shopping"
	CategoryEntertainment  = "Entertainment"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryTravel         = "Travel"
	CategoryIncome         = "Income"
	CategoryFees           = "Fees"
	CategoryOther          = "Other"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryFoodDining,
		CategoryGroceries,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryTravel,
		CategoryIncome,
		CategoryFees,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// CategorySynonyms binds a canonical category name to the keywords that map
// to it. Entries are matched in declaration order, so the table must be a
// slice rather than a map to keep resolution deterministic.
type CategorySynonyms struct {
	Category string
	Keywords []string
}

// Lookup is the category/merchant lookup table supplied by the
// categorization subsystem. It is loaded once and treated as immutable.
type Lookup struct {
	Categories []CategorySynonyms
	Merchants  []string
}
