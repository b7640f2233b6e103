package repositories

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrStoreUnavailable wraps connectivity and I/O faults from the
	// underlying database. It is propagated to the caller unchanged; the
	// engine performs no retries.
	ErrStoreUnavailable = errors.New("transaction store unavailable")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, storeFault("failed to get transaction", err)
	}
	return transaction, nil
}

// Find retrieves all transactions matching the conjunctive filter list,
// ordered by date ascending with the ID as a stable tie-break. An empty
// result is a valid empty slice, not an error.
func (r *transactionRepository) Find(filters []models.Filter) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := r.applyFilters(filters).
		Order("date ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, storeFault("failed to find transactions", err)
	}
	return transactions, nil
}

// Count returns the number of transactions matching the filter list
func (r *transactionRepository) Count(filters []models.Filter) (int64, error) {
	var total int64
	if err := r.applyFilters(filters).Count(&total).Error; err != nil {
		return 0, storeFault("failed to count transactions", err)
	}
	return total, nil
}

// SumAmount returns the exact signed sum over the filtered set. The sum is
// computed with decimal arithmetic on the fetched rows rather than SQL SUM,
// which on some backends coerces fixed-point columns to binary floats.
// Transaction volumes are personal-scale, so fetching is cheap.
func (r *transactionRepository) SumAmount(filters []models.Filter) (decimal.Decimal, error) {
	transactions, err := r.Find(filters)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, txn := range transactions {
		total = total.Add(txn.Amount)
	}
	return total, nil
}

// SumByCategory returns per-category signed subtotals over the filtered set,
// ordered by descending subtotal magnitude with ties broken alphabetically.
// Uncategorized transactions are grouped under the empty category name so
// the subtotals always add up to SumAmount over the same filters.
func (r *transactionRepository) SumByCategory(filters []models.Filter) ([]models.CategoryBreakdown, error) {
	transactions, err := r.Find(filters)
	if err != nil {
		return nil, err
	}

	subtotals := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		subtotals[txn.Category] = subtotals[txn.Category].Add(txn.Amount)
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(subtotals))
	for category, subtotal := range subtotals {
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category: category,
			Subtotal: subtotal,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		cmp := breakdown[i].Subtotal.Abs().Cmp(breakdown[j].Subtotal.Abs())
		if cmp != 0 {
			return cmp > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return breakdown, nil
}

// applyFilters builds the conditional query for a filter list, appending one
// WHERE clause per filter in the order they were added.
func (r *transactionRepository) applyFilters(filters []models.Filter) *gorm.DB {
	query := r.db.Model(&models.Transaction{})

	for _, f := range filters {
		switch f.Kind {
		case models.FilterCategoryEquals:
			query = query.Where("category = ?", f.Category)
		case models.FilterMerchantContains:
			query = query.Where("LOWER(merchant_normalized) LIKE ?", "%"+strings.ToLower(f.Merchant)+"%")
		case models.FilterDateRange:
			query = query.Where("date >= ? AND date < ?", f.DateFrom, f.DateTo)
		case models.FilterAmountRange:
			if f.AmountMin != nil {
				query = query.Where("amount >= ?", *f.AmountMin)
			}
			if f.AmountMax != nil {
				query = query.Where("amount <= ?", *f.AmountMax)
			}
		case models.FilterTextSearch:
			query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(f.Text)+"%")
		}
	}

	return query
}

func storeFault(action string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, action, err)
}
