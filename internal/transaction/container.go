package transaction

import (
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Repo    Repository
}

func NewContainer(db *gorm.DB, scheduledRepo ScheduledWriter, scopes ScopeWidener) *Container {
	repo := NewRepository(db)
	service := NewService(repo, scheduledRepo, scopes)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Repo:    repo,
	}
}
