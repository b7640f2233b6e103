package repositories

import (
	"github.com/arjaygg/analyze-fin-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStoreInterface is the capability set the query engine depends
// on: returning transactions filtered by an ordered conjunctive filter list,
// and returning aggregates over the same filtered set. The engine does not
// care which storage backend sits behind it.
type TransactionStoreInterface interface {
	Find(filters []models.Filter) ([]models.Transaction, error)
	Count(filters []models.Filter) (int64, error)
	SumAmount(filters []models.Filter) (decimal.Decimal, error)
	SumByCategory(filters []models.Filter) ([]models.CategoryBreakdown, error)
}

// TransactionRepositoryInterface extends the store with the write operations
// the ingestion side uses. The query engine never writes.
type TransactionRepositoryInterface interface {
	TransactionStoreInterface
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
}
