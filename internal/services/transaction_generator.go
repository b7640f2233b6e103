package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// merchantProfile describes one merchant the generator can pick: its
// category, plausible amount bounds, and a description template.
type merchantProfile struct {
	name     string
	category string
	minCents int64
	maxCents int64
}

var generatorMerchants = []merchantProfile{
	{"starbucks", models.CategoryFoodDining, 350, 1400},
	{"chipotle", models.CategoryFoodDining, 900, 2500},
	{"dominos", models.CategoryFoodDining, 1200, 4000},
	{"mcdonalds", models.CategoryFoodDining, 500, 1800},
	{"whole foods", models.CategoryGroceries, 2000, 18000},
	{"trader joes", models.CategoryGroceries, 1500, 12000},
	{"safeway", models.CategoryGroceries, 1800, 15000},
	{"costco", models.CategoryGroceries, 5000, 30000},
	{"uber", models.CategoryTransportation, 800, 4500},
	{"lyft", models.CategoryTransportation, 800, 4500},
	{"shell", models.CategoryTransportation, 2500, 7500},
	{"chevron", models.CategoryTransportation, 2500, 7500},
	{"amazon", models.CategoryShopping, 1000, 25000},
	{"target", models.CategoryShopping, 1500, 20000},
	{"best buy", models.CategoryShopping, 3000, 80000},
	{"netflix", models.CategoryEntertainment, 1549, 1549},
	{"spotify", models.CategoryEntertainment, 1099, 1099},
	{"amc theatres", models.CategoryEntertainment, 1200, 4500},
	{"comcast", models.CategoryBillsUtilities, 6500, 12000},
	{"verizon", models.CategoryBillsUtilities, 5500, 11000},
	{"cvs", models.CategoryHealthcare, 800, 6000},
	{"planet fitness", models.CategoryHealthcare, 1000, 2500},
	{"delta", models.CategoryTravel, 15000, 65000},
	{"airbnb", models.CategoryTravel, 12000, 50000},
}

type transactionGenerator struct {
	faker   *gofakeit.Faker
	metrics MetricsRecorderInterface
}

// NewTransactionGenerator creates a sample-data generator. Passing the same
// seed produces the same history.
func NewTransactionGenerator(seed uint64, metrics MetricsRecorderInterface) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker:   gofakeit.New(seed),
		metrics: metrics,
	}
}

func (g *transactionGenerator) GenerateHistory(until time.Time, days, count int) []models.Transaction {
	if days <= 0 || count <= 0 {
		return nil
	}

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		// roughly one paycheck per 25 spending transactions
		if g.faker.Number(1, 25) == 1 {
			transactions = append(transactions, g.paycheck(until, days))
		} else {
			transactions = append(transactions, g.purchase(until, days))
		}
		g.metrics.IncrementCounter("sample_transactions_generated", nil)
	}

	slog.Info("generated sample transaction history",
		"count", len(transactions),
		"days", days,
		"until", until.Format("2006-01-02"))

	return transactions
}

func (g *transactionGenerator) purchase(until time.Time, days int) models.Transaction {
	profile := generatorMerchants[g.faker.Number(0, len(generatorMerchants)-1)]
	cents := int64(g.faker.Number(int(profile.minCents), int(profile.maxCents)))
	amount := decimal.New(cents, -2).Neg()

	return models.Transaction{
		Date:               g.randomDate(until, days),
		Amount:             amount,
		Category:           profile.category,
		MerchantNormalized: profile.name,
		Description:        fmt.Sprintf("%s purchase", strings.ToUpper(profile.name)),
	}
}

func (g *transactionGenerator) paycheck(until time.Time, days int) models.Transaction {
	cents := int64(g.faker.Number(150000, 450000))

	return models.Transaction{
		Date:               g.randomDate(until, days),
		Amount:             decimal.New(cents, -2),
		Category:           models.CategoryIncome,
		MerchantNormalized: "payroll",
		Description:        fmt.Sprintf("DIRECT DEPOSIT %s", strings.ToUpper(g.faker.Company())),
	}
}

func (g *transactionGenerator) randomDate(until time.Time, days int) time.Time {
	back := g.faker.Number(0, days-1)
	day := until.AddDate(0, 0, -back)
	return time.Date(day.Year(), day.Month(), day.Day(),
		g.faker.Number(0, 23), g.faker.Number(0, 59), 0, 0, until.Location())
}
