package vuevreact

import (
	"context"
	"sync"
	"time"

	"github.com/jezweb/vuevreact/quiz"
)

// TallyCache is an in-memory cache of the quiz tally with TTL.
type TallyCache struct {
	mu      sync.RWMutex
	tally   quiz.Tally
	loaded  bool
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewTallyCache creates a TallyCache backed by the given Store.
func NewTallyCache(s *Store, ttl time.Duration) *TallyCache {
	return &TallyCache{store: s, ttl: ttl}
}

func (c *TallyCache) valid() bool {
	return c.loaded && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *TallyCache) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
}

// Get returns the cached tally, reloading it from the store once stale. It
// tries a read lock first and only takes the write lock to reload.
func (c *TallyCache) Get(ctx context.Context) (quiz.Tally, error) {
	c.mu.RLock()
	if c.valid() {
		t := c.tally
		c.mu.RUnlock()
		return t, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.tally, nil
	}
	t, err := c.store.Tally(ctx)
	if err != nil {
		return quiz.Tally{}, err
	}
	c.tally = t
	c.loaded = true
	c.fetched = time.Now()
	return t, nil
}
