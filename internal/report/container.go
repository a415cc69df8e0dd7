package report

type Container struct {
	Handler *Handler
}

func NewContainer(transactions TransactionLister) *Container {
	return &Container{Handler: NewHandler(NewService(transactions))}
}
