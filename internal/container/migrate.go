package container

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/vicinato-api/internal/budget"
	"github.com/saulo-duarte/vicinato-api/internal/category"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/couple"
	"github.com/saulo-duarte/vicinato-api/internal/goal"
	"github.com/saulo-duarte/vicinato-api/internal/personal_goal"
	"github.com/saulo-duarte/vicinato-api/internal/profile"
	"github.com/saulo-duarte/vicinato-api/internal/scheduled"
	"github.com/saulo-duarte/vicinato-api/internal/transaction"
)

// Migrate creates or updates every table the API owns. Profiles and
// relationships reference identity-provider users that live outside
// this schema, so no foreign keys point at them.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&category.Category{},
		&profile.Profile{},
		&transaction.Transaction{},
		&scheduled.ScheduledTransaction{},
		&goal.Goal{},
		&personal_goal.PersonalGoal{},
		&budget.Budget{},
		&couple.Relationship{},
	)
	if err != nil {
		return err
	}
	if err := couple.EnsurePairIndex(db); err != nil {
		return err
	}

	config.Logger.Info("Database migrated")
	return nil
}
