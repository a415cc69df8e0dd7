package budget

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, spend SpendSource) *Container {
	repo := NewRepository(db)
	service := NewService(repo, spend)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
