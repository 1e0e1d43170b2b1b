package source

import (
	"context"
	"sync"
	"time"

	"level_tracker_backend/internal/model"
)

// CachedLoader keeps the last successful load for TTL. Failed loads are not
// cached. A zero TTL disables caching.
type CachedLoader struct {
	next Loader
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	levels   []model.Level
	loadedAt time.Time
}

func NewCachedLoader(next Loader, ttl time.Duration) *CachedLoader {
	return &CachedLoader{next: next, ttl: ttl, now: time.Now}
}

func (c *CachedLoader) Load(ctx context.Context) ([]model.Level, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.levels != nil && c.ttl > 0 && c.now().Sub(c.loadedAt) < c.ttl {
		return model.CloneLevels(c.levels), nil
	}
	levels, err := c.next.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.levels = levels
	c.loadedAt = c.now()
	return model.CloneLevels(levels), nil
}

// Clear drops the cached document so the next Load fetches again.
func (c *CachedLoader) Clear() {
	c.mu.Lock()
	c.levels = nil
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}

func (c *CachedLoader) Describe() string {
	return c.next.Describe()
}
