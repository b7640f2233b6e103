package services

import (
	"github.com/arjaygg/analyze-fin-sub001/internal/models"
)

// lookupService holds the built-in category synonym table and the merchant
// vocabulary used for fuzzy matching. Order matters: earlier entries win
// ties, so the more common categories come first.
type lookupService struct {
	lookup models.Lookup
}

// NewLookupService creates the default lookup service
func NewLookupService() LookupServiceInterface {
	return &lookupService{lookup: defaultLookup()}
}

func (s *lookupService) Lookup() models.Lookup {
	return s.lookup
}

func defaultLookup() models.Lookup {
	return models.Lookup{
		Categories: []models.CategorySynonyms{
			{
				Category: models.CategoryFoodDining,
				Keywords: []string{
					"food", "dining", "restaurant", "restaurants", "eating",
					"eat", "lunch", "dinner", "breakfast", "takeout",
					"delivery", "coffee", "cafe", "bar", "pizza", "fast food",
				},
			},
			{
				Category: models.CategoryGroceries,
				Keywords: []string{
					"groceries", "grocery", "supermarket", "market",
				},
			},
			{
				Category: models.CategoryTransportation,
				Keywords: []string{
					"transportation", "transport", "transit", "gas", "fuel",
					"parking", "uber", "lyft", "taxi", "rideshare", "bus",
					"train", "subway", "commute", "commuting",
				},
			},
			{
				Category: models.CategoryShopping,
				Keywords: []string{
					"shopping", "clothes", "clothing", "electronics",
					"amazon", "online shopping", "retail",
				},
			},
			{
				Category: models.CategoryEntertainment,
				Keywords: []string{
					"entertainment", "movies", "movie", "streaming", "music",
					"games", "gaming", "concert", "concerts", "netflix",
					"spotify",
				},
			},
			{
				Category: models.CategoryBillsUtilities,
				Keywords: []string{
					"bills", "bill", "utilities", "utility", "rent",
					"electricity", "electric", "water", "internet", "phone",
					"insurance", "subscription", "subscriptions",
				},
			},
			{
				Category: models.CategoryHealthcare,
				Keywords: []string{
					"healthcare", "health", "medical", "doctor", "dentist",
					"pharmacy", "prescription", "gym", "fitness",
				},
			},
			{
				Category: models.CategoryTravel,
				Keywords: []string{
					"travel", "flight", "flights", "hotel", "hotels",
					"airbnb", "airline", "vacation", "trip",
				},
			},
			{
				Category: models.CategoryIncome,
				Keywords: []string{
					"income", "salary", "paycheck", "payroll", "deposit",
					"deposits", "refund", "refunds", "earned",
				},
			},
			{
				Category: models.CategoryFees,
				Keywords: []string{
					"fees", "fee", "charges", "interest", "penalty",
					"overdraft",
				},
			},
		},
		Merchants: []string{
			"starbucks", "mcdonalds", "chipotle", "subway sandwiches",
			"dominos", "whole foods", "trader joes", "safeway", "costco",
			"kroger", "walmart", "target", "amazon", "best buy", "apple",
			"uber", "lyft", "shell", "chevron", "exxon", "delta", "united",
			"marriott", "airbnb", "netflix", "spotify", "hulu", "comcast",
			"verizon", "att", "cvs", "walgreens", "planet fitness", "ikea",
			"home depot",
		},
	}
}
