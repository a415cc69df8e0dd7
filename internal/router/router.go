package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/vicinato-api/internal/auth"
	"github.com/saulo-duarte/vicinato-api/internal/budget"
	"github.com/saulo-duarte/vicinato-api/internal/category"
	"github.com/saulo-duarte/vicinato-api/internal/couple"
	"github.com/saulo-duarte/vicinato-api/internal/dashboard"
	"github.com/saulo-duarte/vicinato-api/internal/goal"
	"github.com/saulo-duarte/vicinato-api/internal/middlewares"
	"github.com/saulo-duarte/vicinato-api/internal/notification"
	"github.com/saulo-duarte/vicinato-api/internal/personal_goal"
	"github.com/saulo-duarte/vicinato-api/internal/profile"
	"github.com/saulo-duarte/vicinato-api/internal/report"
	"github.com/saulo-duarte/vicinato-api/internal/scheduled"
	"github.com/saulo-duarte/vicinato-api/internal/transaction"
	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

const healthMessage = "Vicinato Finanças API is up!"

type RouterConfig struct {
	Verifier       auth.Verifier
	AllowedOrigins []string

	AuthHandler         *auth.Handler
	TransactionHandler  *transaction.Handler
	ScheduledHandler    *scheduled.Handler
	GoalHandler         *goal.Handler
	PersonalGoalHandler *personal_goal.Handler
	BudgetHandler       *budget.Handler
	ProfileHandler      *profile.Handler
	CoupleHandler       *couple.Handler
	CategoryHandler     *category.Handler
	ReportHandler       *report.Handler
	DashboardHandler    *dashboard.Handler
	NotifyHandler       *notification.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(healthMessage))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(cfg.Verifier))

		r.Mount("/transactions", transaction.Routes(cfg.TransactionHandler))
		r.Mount("/scheduled-transactions", scheduled.Routes(cfg.ScheduledHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/personal-goals", personal_goal.Routes(cfg.PersonalGoalHandler))
		r.Mount("/budgets", budget.Routes(cfg.BudgetHandler))
		r.Mount("/profile", profile.Routes(cfg.ProfileHandler))
		r.Mount("/couple-relationships", couple.Routes(cfg.CoupleHandler))
		r.Mount("/categories", category.Routes(cfg.CategoryHandler))
		r.Mount("/reports", report.Routes(cfg.ReportHandler))
		r.Mount("/couple-dashboard", dashboard.Routes(cfg.DashboardHandler))
		r.Mount("/notifications", notification.Routes(cfg.NotifyHandler))

		r.With(validation.Body[auth.ResetPasswordDTO]).
			Post("/auth/reset-password", cfg.AuthHandler.ResetPassword)
	})

	return r
}
