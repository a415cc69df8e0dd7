package container

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/auth"
	"github.com/saulo-duarte/vicinato-api/internal/budget"
	"github.com/saulo-duarte/vicinato-api/internal/category"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/couple"
	"github.com/saulo-duarte/vicinato-api/internal/dashboard"
	"github.com/saulo-duarte/vicinato-api/internal/goal"
	"github.com/saulo-duarte/vicinato-api/internal/identity"
	"github.com/saulo-duarte/vicinato-api/internal/notification"
	"github.com/saulo-duarte/vicinato-api/internal/personal_goal"
	"github.com/saulo-duarte/vicinato-api/internal/profile"
	"github.com/saulo-duarte/vicinato-api/internal/report"
	"github.com/saulo-duarte/vicinato-api/internal/router"
	"github.com/saulo-duarte/vicinato-api/internal/scheduled"
	"github.com/saulo-duarte/vicinato-api/internal/transaction"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type Container struct {
	Settings *config.Settings
	Verifier auth.Verifier
	Identity *identity.Client
	Guard    *access.Guard

	ProfileContainer      *profile.Container
	CategoryContainer     *category.Container
	ScheduledContainer    *scheduled.Container
	TransactionContainer  *transaction.Container
	GoalContainer         *goal.Container
	PersonalGoalContainer *personal_goal.Container
	BudgetContainer       *budget.Container
	CoupleContainer       *couple.Container
	DashboardContainer    *dashboard.Container
	ReportContainer       *report.Container
	NotifyContainer       *notification.Container
}

func New() *Container {
	settings, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("Invalid configuration")
	}
	config.Init(settings.LogLevel)

	if err := util.SetLocation(settings.Timezone); err != nil {
		config.Logger.WithError(err).WithField("timezone", settings.Timezone).Fatal("Unknown timezone")
	}
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
		config.Logger.WithError(err).Fatal("Failed to connect to DB")
	}
	if settings.AutoMigrate {
		if err := Migrate(config.DB); err != nil {
			config.Logger.WithError(err).Fatal("Failed to migrate DB")
		}
	}

	idp := identity.NewClient(settings.SupabaseURL, settings.SupabaseAnonKey, settings.SupabaseServiceKey)

	var verifier auth.Verifier = auth.NewRemoteVerifier(idp)
	if settings.SupabaseJWTSecret != "" {
		jwtVerifier, err := auth.NewJWTVerifier(settings.SupabaseJWTSecret)
		if err != nil {
			config.Logger.WithError(err).Fatal("Invalid JWT secret")
		}
		verifier = jwtVerifier
	}

	profileContainer := profile.NewContainer(config.DB)
	categoryContainer := category.NewContainer(config.DB)
	scheduledContainer := scheduled.NewContainer(config.DB)
	coupleContainer := couple.NewContainer(config.DB, idp, profileContainer.Repo)
	guard := access.NewGuard(coupleContainer.Service)

	transactionContainer := transaction.NewContainer(config.DB, scheduledContainer.Repo, guard)
	goalContainer := goal.NewContainer(config.DB)
	budgetContainer := budget.NewContainer(config.DB, transactionContainer.Repo)

	rdb := config.ConnectRedis(ctx, settings.RedisAddr)

	return &Container{
		Settings: settings,
		Verifier: verifier,
		Identity: idp,
		Guard:    guard,

		ProfileContainer:      profileContainer,
		CategoryContainer:     categoryContainer,
		ScheduledContainer:    scheduledContainer,
		TransactionContainer:  transactionContainer,
		GoalContainer:         goalContainer,
		PersonalGoalContainer: personal_goal.NewContainer(config.DB),
		BudgetContainer:       budgetContainer,
		CoupleContainer:       coupleContainer,
		DashboardContainer:    dashboard.NewContainer(guard, transactionContainer.Repo, goalContainer.Repo),
		ReportContainer:       report.NewContainer(transactionContainer.Repo),
		NotifyContainer: notification.NewContainer(
			budgetContainer.Service,
			scheduledContainer.Repo,
			rdb,
			settings.NotificationTTL,
		),
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		Verifier:       c.Verifier,
		AllowedOrigins: c.Settings.AllowedOrigin,

		AuthHandler:         auth.NewHandler(c.Identity),
		TransactionHandler:  c.TransactionContainer.Handler,
		ScheduledHandler:    c.ScheduledContainer.Handler,
		GoalHandler:         c.GoalContainer.Handler,
		PersonalGoalHandler: c.PersonalGoalContainer.Handler,
		BudgetHandler:       c.BudgetContainer.Handler,
		ProfileHandler:      c.ProfileContainer.Handler,
		CoupleHandler:       c.CoupleContainer.Handler,
		CategoryHandler:     c.CategoryContainer.Handler,
		ReportHandler:       c.ReportContainer.Handler,
		DashboardHandler:    c.DashboardContainer.Handler,
		NotifyHandler:       c.NotifyContainer.Handler,
	})
}
