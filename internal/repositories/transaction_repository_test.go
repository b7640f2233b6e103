package repositories

import (
	"testing"
	"time"

	"github.com/arjaygg/analyze-fin-sub001/internal/database"
	"github.com/arjaygg/analyze-fin-sub001/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositoryTestSuite is the test suite for the transaction repository
type TransactionRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
}

// SetupTest runs before each test
func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
}

// TearDownTest runs after each test
func (s *TransactionRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositoryTestSuite runs the test suite
func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) seedDay(month time.Month, dayOfMonth int, amount, category, merchant string) *models.Transaction {
	date := time.Date(2024, month, dayOfMonth, 12, 0, 0, 0, time.UTC)
	return database.CreateTestTransaction(s.T(), s.db, date, amount, category, merchant, merchant+" charge")
}

func (s *TransactionRepositoryTestSuite) TestCreate_SetsIDAndTimestamps() {
	txn := &models.Transaction{
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString("-12.50"),
		Category:    models.CategoryFoodDining,
		Description: gofakeit.Sentence(4),
	}

	err := s.repo.Create(txn)
	require.NoError(s.T(), err)

	assert.NotEqual(s.T(), uuid.Nil, txn.ID)
	assert.False(s.T(), txn.CreatedAt.IsZero())
}

func (s *TransactionRepositoryTestSuite) TestCreate_RejectsZeroAmount() {
	txn := &models.Transaction{
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.Zero,
		Description: "nothing",
	}

	err := s.repo.Create(txn)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, models.ErrInvalidAmount)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_InsertsAll() {
	batch := []models.Transaction{
		{
			Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("-5.00"),
			Description: "coffee",
		},
		{
			Date:        time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("-7.25"),
			Description: "coffee again",
		},
	}

	err := s.repo.CreateBatch(batch)
	require.NoError(s.T(), err)

	count, err := s.repo.Count(nil)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), count)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_EmptyIsNoop() {
	err := s.repo.CreateBatch(nil)
	require.NoError(s.T(), err)
}

func (s *TransactionRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	assert.ErrorIs(s.T(), err, ErrTransactionNotFound)
}

func (s *TransactionRepositoryTestSuite) TestFind_NoFiltersReturnsAllOrderedByDate() {
	s.seedDay(time.June, 3, "-30.00", models.CategoryGroceries, "safeway")
	s.seedDay(time.June, 1, "-5.00", models.CategoryFoodDining, "starbucks")
	s.seedDay(time.June, 2, "-12.00", models.CategoryFoodDining, "chipotle")

	found, err := s.repo.Find(nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 3)

	assert.Equal(s.T(), "starbucks", found[0].MerchantNormalized)
	assert.Equal(s.T(), "chipotle", found[1].MerchantNormalized)
	assert.Equal(s.T(), "safeway", found[2].MerchantNormalized)
}

func (s *TransactionRepositoryTestSuite) TestFind_EmptyStoreReturnsEmptySlice() {
	found, err := s.repo.Find(nil)
	require.NoError(s.T(), err)

	assert.NotNil(s.T(), found)
	assert.Empty(s.T(), found)
}

func (s *TransactionRepositoryTestSuite) TestFind_CategoryFilter() {
	s.seedDay(time.June, 1, "-5.00", models.CategoryFoodDining, "starbucks")
	s.seedDay(time.June, 2, "-30.00", models.CategoryGroceries, "safeway")

	found, err := s.repo.Find([]models.Filter{
		{Kind: models.FilterCategoryEquals, Category: models.CategoryGroceries},
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 1)
	assert.Equal(s.T(), "safeway", found[0].MerchantNormalized)
}

func (s *TransactionRepositoryTestSuite) TestFind_MerchantFilterIsCaseInsensitiveSubstring() {
	s.seedDay(time.June, 1, "-5.00", models.CategoryFoodDining, "starbucks")
	s.seedDay(time.June, 2, "-30.00", models.CategoryGroceries, "whole foods")

	found, err := s.repo.Find([]models.Filter{
		{Kind: models.FilterMerchantContains, Merchant: "STAR"},
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 1)
	assert.Equal(s.T(), "starbucks", found[0].MerchantNormalized)
}

func (s *TransactionRepositoryTestSuite) TestFind_DateRangeIsHalfOpen() {
	s.seedDay(time.May, 31, "-1.00", models.CategoryFoodDining, "before")
	s.seedDay(time.June, 1, "-2.00", models.CategoryFoodDining, "first")
	s.seedDay(time.June, 30, "-3.00", models.CategoryFoodDining, "last")
	s.seedDay(time.July, 1, "-4.00", models.CategoryFoodDining, "after")

	found, err := s.repo.Find([]models.Filter{
		{
			Kind:     models.FilterDateRange,
			DateFrom: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			DateTo:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 2)
	assert.Equal(s.T(), "first", found[0].MerchantNormalized)
	assert.Equal(s.T(), "last", found[1].MerchantNormalized)
}

func (s *TransactionRepositoryTestSuite) TestFind_AmountRangeIsSigned() {
	s.seedDay(time.June, 1, "-75.00", models.CategoryShopping, "big")
	s.seedDay(time.June, 2, "-20.00", models.CategoryShopping, "small")
	s.seedDay(time.June, 3, "200.00", models.CategoryIncome, "payroll")

	// spending of at least 50: signed amount <= -50
	max := decimal.RequireFromString("-50")
	found, err := s.repo.Find([]models.Filter{
		{Kind: models.FilterAmountRange, AmountMax: &max},
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 1)
	assert.Equal(s.T(), "big", found[0].MerchantNormalized)
}

func (s *TransactionRepositoryTestSuite) TestFind_TextSearch() {
	date := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, date, "-9.50", models.CategoryFoodDining, "starbucks", "Oat Milk LATTE")
	database.CreateTestTransaction(s.T(), s.db, date, "-4.00", models.CategoryFoodDining, "starbucks", "croissant")

	found, err := s.repo.Find([]models.Filter{
		{Kind: models.FilterTextSearch, Text: "latte"},
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 1)
	assert.Equal(s.T(), "Oat Milk LATTE", found[0].Description)
}

func (s *TransactionRepositoryTestSuite) TestFind_FiltersAreConjunctive() {
	s.seedDay(time.June, 1, "-5.00", models.CategoryFoodDining, "starbucks")
	s.seedDay(time.June, 2, "-30.00", models.CategoryFoodDining, "chipotle")
	s.seedDay(time.June, 3, "-6.00", models.CategoryGroceries, "starbucks")

	found, err := s.repo.Find([]models.Filter{
		{Kind: models.FilterCategoryEquals, Category: models.CategoryFoodDining},
		{Kind: models.FilterMerchantContains, Merchant: "starbucks"},
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 1)
	assert.Equal(s.T(), "starbucks", found[0].MerchantNormalized)
	assert.Equal(s.T(), models.CategoryFoodDining, found[0].Category)
}

func (s *TransactionRepositoryTestSuite) TestFind_FilterOrderDoesNotChangeResults() {
	s.seedDay(time.June, 1, "-5.00", models.CategoryFoodDining, "starbucks")
	s.seedDay(time.June, 2, "-30.00", models.CategoryFoodDining, "chipotle")
	s.seedDay(time.June, 3, "-6.00", models.CategoryGroceries, "starbucks")

	a := []models.Filter{
		{Kind: models.FilterCategoryEquals, Category: models.CategoryFoodDining},
		{Kind: models.FilterMerchantContains, Merchant: "starbucks"},
	}
	b := []models.Filter{
		{Kind: models.FilterMerchantContains, Merchant: "starbucks"},
		{Kind: models.FilterCategoryEquals, Category: models.CategoryFoodDining},
	}

	foundA, err := s.repo.Find(a)
	require.NoError(s.T(), err)
	foundB, err := s.repo.Find(b)
	require.NoError(s.T(), err)

	require.Len(s.T(), foundA, 1)
	require.Len(s.T(), foundB, 1)
	assert.Equal(s.T(), foundA[0].ID, foundB[0].ID)
}

func (s *TransactionRepositoryTestSuite) TestSumAmount_ExactOverManySmallAmounts() {
	// one cent steps must not accumulate binary rounding error
	for i := 0; i < 100; i++ {
		s.seedDay(time.June, 1+i%28, "-0.01", models.CategoryFees, "bank")
	}

	total, err := s.repo.SumAmount(nil)
	require.NoError(s.T(), err)
	assert.True(s.T(), total.Equal(decimal.RequireFromString("-1.00")),
		"expected -1.00, got %s", total)
}

func (s *TransactionRepositoryTestSuite) TestSumAmount_EmptySetIsZero() {
	total, err := s.repo.SumAmount(nil)
	require.NoError(s.T(), err)
	assert.True(s.T(), total.IsZero())
}

func (s *TransactionRepositoryTestSuite) TestSumAmount_MixedSigns() {
	s.seedDay(time.June, 1, "-75.25", models.CategoryShopping, "target")
	s.seedDay(time.June, 2, "100.00", models.CategoryIncome, "payroll")

	total, err := s.repo.SumAmount(nil)
	require.NoError(s.T(), err)
	assert.True(s.T(), total.Equal(decimal.RequireFromString("24.75")))
}

func (s *TransactionRepositoryTestSuite) TestSumByCategory_OrderedByMagnitude() {
	s.seedDay(time.June, 1, "-5.00", models.CategoryFoodDining, "starbucks")
	s.seedDay(time.June, 2, "-10.00", models.CategoryFoodDining, "chipotle")
	s.seedDay(time.June, 3, "-40.00", models.CategoryGroceries, "safeway")
	s.seedDay(time.June, 4, "-2.00", "", "unknown")

	breakdown, err := s.repo.SumByCategory(nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), breakdown, 3)

	assert.Equal(s.T(), models.CategoryGroceries, breakdown[0].Category)
	assert.Equal(s.T(), models.CategoryFoodDining, breakdown[1].Category)
	assert.Equal(s.T(), "", breakdown[2].Category)
	assert.True(s.T(), breakdown[1].Subtotal.Equal(decimal.RequireFromString("-15.00")))
}

func (s *TransactionRepositoryTestSuite) TestSumByCategory_SubtotalsSumToTotal() {
	s.seedDay(time.June, 1, "-5.55", models.CategoryFoodDining, "starbucks")
	s.seedDay(time.June, 2, "-40.45", models.CategoryGroceries, "safeway")
	s.seedDay(time.June, 3, "-2.17", "", "unknown")
	s.seedDay(time.June, 4, "250.00", models.CategoryIncome, "payroll")

	total, err := s.repo.SumAmount(nil)
	require.NoError(s.T(), err)

	breakdown, err := s.repo.SumByCategory(nil)
	require.NoError(s.T(), err)

	sum := decimal.Zero
	for _, entry := range breakdown {
		sum = sum.Add(entry.Subtotal)
	}
	assert.True(s.T(), sum.Equal(total), "breakdown %s vs total %s", sum, total)
}

func (s *TransactionRepositoryTestSuite) TestSumByCategory_TieBrokenAlphabetically() {
	s.seedDay(time.June, 1, "-10.00", models.CategoryTravel, "delta")
	s.seedDay(time.June, 2, "-10.00", models.CategoryGroceries, "safeway")

	breakdown, err := s.repo.SumByCategory(nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), breakdown, 2)

	assert.Equal(s.T(), models.CategoryGroceries, breakdown[0].Category)
	assert.Equal(s.T(), models.CategoryTravel, breakdown[1].Category)
}
