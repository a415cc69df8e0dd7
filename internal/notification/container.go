package notification

import (
	"time"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	Handler *Handler
	Dedup   Deduper
}

// NewContainer keeps the dedup set in Redis when rdb is set, in memory
// otherwise.
func NewContainer(budgets BudgetLister, due DueLister, rdb *redis.Client, ttl time.Duration) *Container {
	var dedup Deduper = NewMemoryDeduper(ttl)
	if rdb != nil {
		dedup = NewRedisDeduper(rdb, ttl)
	}

	return &Container{
		Handler: NewHandler(NewService(budgets, due, dedup)),
		Dedup:   dedup,
	}
}
