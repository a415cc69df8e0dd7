package notification

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduper remembers which notifications a session has already seen.
// MarkOnce reports true only the first time a key is marked for a
// session. Nothing here is ever written to the database.
type Deduper interface {
	MarkOnce(ctx context.Context, session, key string) (bool, error)
}

// MemoryDeduper keeps marks in process. Expired marks are dropped at
// most once per ttl, on the first MarkOnce after the interval elapses.
type MemoryDeduper struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	seen      map[string]time.Time
	nextSweep time.Time
}

func NewMemoryDeduper(ttl time.Duration) *MemoryDeduper {
	return &MemoryDeduper{ttl: ttl, now: time.Now, seen: map[string]time.Time{}}
}

func (d *MemoryDeduper) MarkOnce(_ context.Context, session, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if !now.Before(d.nextSweep) {
		d.sweep(now)
	}

	k := session + "|" + key
	if expires, ok := d.seen[k]; ok && now.Before(expires) {
		return false, nil
	}
	d.seen[k] = now.Add(d.ttl)
	return true, nil
}

func (d *MemoryDeduper) sweep(now time.Time) {
	for k, expires := range d.seen {
		if !now.Before(expires) {
			delete(d.seen, k)
		}
	}
	d.nextSweep = now.Add(d.ttl)
}

type RedisDeduper struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDeduper(rdb *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{rdb: rdb, ttl: ttl}
}

func (d *RedisDeduper) MarkOnce(ctx context.Context, session, key string) (bool, error) {
	return d.rdb.SetNX(ctx, "notified:"+session+":"+key, 1, d.ttl).Result()
}
