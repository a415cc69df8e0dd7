package couple

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/vicinato-api/internal/profile"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, users EmailLookup, profiles profile.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, NewUnitOfWork(db), users, profiles)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
