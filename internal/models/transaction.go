package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount      = errors.New("transaction amount must be non-zero")
	ErrMissingDate        = errors.New("transaction date is required")
	ErrMissingDescription = errors.New("transaction description is required")
)

// Transaction represents a single normalized personal finance transaction.
// Amounts are signed: debits are negative, credits are positive. The query
// engine treats transactions as read-only.
type Transaction struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date               time.Time       `gorm:"not null;index" json:"date"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category           string          `gorm:"type:varchar(50);index" json:"category,omitempty"`
	MerchantNormalized string          `gorm:"type:varchar(255);index" json:"merchant_normalized,omitempty"`
	Description        string          `gorm:"type:text;not null" json:"description"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if t.Amount.IsZero() {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return ErrMissingDescription
	}

	if t.Category != "" && len(t.Category) > 50 {
		return errors.New("category name too long")
	}

	return nil
}

// IsDebit returns true if the transaction is a debit (money out)
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true if the transaction is a credit (money in)
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
