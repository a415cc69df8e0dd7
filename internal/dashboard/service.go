package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/goal"
	"github.com/saulo-duarte/vicinato-api/internal/transaction"
)

type ScopeWidener interface {
	Couple(ctx context.Context, self access.Scope) (access.Scope, error)
}

type TransactionLister interface {
	List(ctx context.Context, scope access.Scope, f transaction.Filter) ([]transaction.Transaction, error)
}

type GoalLister interface {
	ListByScope(ctx context.Context, scope access.Scope) ([]goal.Goal, error)
}

// Couple is the raw data behind the couple dashboard. Aggregation is
// left to the client.
type Couple struct {
	PartnerID    *uuid.UUID                `json:"partner_id"`
	Transactions []transaction.Transaction `json:"transactions"`
	Goals        []goal.Goal               `json:"goals"`
}

type Service interface {
	Couple(ctx context.Context, self access.Scope) (*Couple, error)
}

type service struct {
	scopes       ScopeWidener
	transactions TransactionLister
	goals        GoalLister
}

func NewService(scopes ScopeWidener, transactions TransactionLister, goals GoalLister) Service {
	return &service{scopes: scopes, transactions: transactions, goals: goals}
}

func (s *service) Couple(ctx context.Context, self access.Scope) (*Couple, error) {
	log := config.WithContext(ctx)

	scope, err := s.scopes.Couple(ctx, self)
	if err != nil {
		log.WithError(err).Error("Failed to resolve couple scope")
		return nil, apperr.Upstream("could not load the couple dashboard", err)
	}

	txs, err := s.transactions.List(ctx, scope, transaction.Filter{})
	if err != nil {
		log.WithError(err).Error("Failed to list couple transactions")
		return nil, apperr.Upstream("could not load the couple dashboard", err)
	}
	goals, err := s.goals.ListByScope(ctx, scope)
	if err != nil {
		log.WithError(err).Error("Failed to list couple goals")
		return nil, apperr.Upstream("could not load the couple dashboard", err)
	}

	if txs == nil {
		txs = []transaction.Transaction{}
	}
	if goals == nil {
		goals = []goal.Goal{}
	}

	log.WithField("has_partner", scope.HasPartner()).Debug("Couple dashboard loaded")
	return &Couple{PartnerID: scope.PartnerID, Transactions: txs, Goals: goals}, nil
}
