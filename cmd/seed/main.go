package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/vicinato-api/internal/category"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/ledger"
	"github.com/saulo-duarte/vicinato-api/internal/transaction"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

var defaultCategories = []string{"Food", "Housing", "Transport", "Health", "Leisure", "Salary"}

// applyTimezone makes seeded dates fall on the same calendar days the
// API would compute.
func applyTimezone() error {
	return util.SetLocation(config.Timezone())
}

func main() {
	userFlag := flag.String("user", "", "identity-provider user id to seed data for")
	count := flag.Int("transactions", 50, "number of transactions to create")
	days := flag.Int("days", 90, "spread transactions over this many past days")
	flag.Parse()

	_ = godotenv.Load()
	config.Init(os.Getenv("LOG_LEVEL"))
	if err := applyTimezone(); err != nil {
		config.Logger.WithError(err).WithField("timezone", config.Timezone()).Fatal("Unknown timezone")
	}

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		config.Logger.WithError(err).Fatal("-user must be a UUID")
	}

	ctx := context.Background()
	if err := config.Connect(ctx, os.Getenv("DATABASE_DSN")); err != nil {
		config.Logger.WithError(err).Fatal("Failed to connect to DB")
	}

	categories := category.NewRepository(config.DB)
	transactions := transaction.NewRepository(config.DB)

	var ids []uuid.UUID
	for _, name := range defaultCategories {
		c := &category.Category{ID: uuid.New(), Name: name, UserID: &userID, CreatedAt: time.Now()}
		if err := categories.Create(ctx, c); err != nil {
			config.Logger.WithError(err).WithField("category", name).Fatal("Failed to seed category")
		}
		ids = append(ids, c.ID)
	}

	today := util.Today(time.Now())
	for i := 0; i < *count; i++ {
		typ := ledger.Expense
		if gofakeit.Number(1, 5) == 1 {
			typ = ledger.Income
		}
		desc := gofakeit.Sentence(4)
		t := &transaction.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        typ,
			Amount:      decimal.NewFromFloat(gofakeit.Price(5, 1500)).Round(2),
			CategoryID:  ids[gofakeit.Number(0, len(ids)-1)],
			Description: &desc,
			Date:        today.AddDays(-gofakeit.Number(0, *days)),
			CreatedAt:   time.Now(),
		}
		if err := transactions.Create(ctx, t); err != nil {
			config.Logger.WithError(err).Fatal("Failed to seed transaction")
		}
	}

	config.Logger.WithField("user_id", userID).
		WithField("categories", len(ids)).
		WithField("transactions", *count).
		Info("Seed complete")
}
