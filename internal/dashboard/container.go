package dashboard

type Container struct {
	Handler *Handler
}

func NewContainer(scopes ScopeWidener, transactions TransactionLister, goals GoalLister) *Container {
	return &Container{
		Handler: NewHandler(NewService(scopes, transactions, goals)),
	}
}
