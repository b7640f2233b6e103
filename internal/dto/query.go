package dto

import (
	"github.com/arjaygg/analyze-fin-sub001/internal/models"
	"github.com/arjaygg/analyze-fin-sub001/internal/services"
)

// QueryRequest is the body of POST /api/v1/query
type QueryRequest struct {
	Question string `json:"question" validate:"required"`
	// Now optionally anchors relative date phrases ("last month") at a
	// fixed instant, RFC 3339. Defaults to the server clock.
	Now string `json:"now,omitempty"`
}

// QueryResponse wraps the answer together with the echo of the question
type QueryResponse struct {
	Question string                   `json:"question"`
	Answer   *services.SpendingAnswer `json:"answer"`
}

// SeedRequest is the body of POST /api/v1/dev/seed
type SeedRequest struct {
	Days  int    `json:"days" validate:"omitempty,min=1,max=3650"`
	Count int    `json:"count" validate:"omitempty,min=1,max=100000"`
	Until string `json:"until,omitempty"`
	// Category restricts the generated history to one canonical spending
	// category. Empty seeds across all categories.
	Category string `json:"category,omitempty" validate:"omitempty,spending_category"`
}

// SeedResponse reports how many sample transactions were created
type SeedResponse struct {
	Created int `json:"created"`
}

// TransactionResponse is the wire form of a stored transaction
type TransactionResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Category    string `json:"category,omitempty"`
	Merchant    string `json:"merchant,omitempty"`
	Description string `json:"description"`
}

// NewTransactionResponse converts a model transaction for the wire
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Amount:      t.Amount.String(),
		Category:    t.Category,
		Merchant:    t.MerchantNormalized,
		Description: t.Description,
	}
}
