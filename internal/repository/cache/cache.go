package cache

import (
	"sync"
	"time"
)

type KV interface {
	PutUntil(key string, v any, expires time.Time)
	Get(key string) (any, bool)
	Delete(key string)
	Len() int
}

type entry struct {
	v       any
	expires time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// Cache is a map with per-entry deadlines. Expired entries are never
// returned; the janitor only reclaims memory.
type Cache struct {
	mu   sync.RWMutex
	data map[string]entry

	janitor time.Duration
	ticker  *time.Ticker
	stop    chan struct{}
	once    sync.Once
	now     func() time.Time
}

type Option func(*Cache)

func WithJanitor(every time.Duration) Option { return func(c *Cache) { c.janitor = every } }
func WithClock(now func() time.Time) Option  { return func(c *Cache) { c.now = now } }

func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]entry),
		stop: make(chan struct{}),
		now:  time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	if c.janitor > 0 {
		c.ticker = time.NewTicker(c.janitor)
		go func() {
			for {
				select {
				case <-c.ticker.C:
					c.purgeExpired()
				case <-c.stop:
					return
				}
			}
		}()
	}
	return c
}

func (c *Cache) Close() {
	c.once.Do(func() {
		if c.ticker != nil {
			c.ticker.Stop()
		}
		close(c.stop)
	})
}

func (c *Cache) PutUntil(key string, v any, expires time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry{v: v, expires: expires}
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		if cur, ok := c.data[key]; ok && cur.expires.Equal(e.expires) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.v, true
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

func (c *Cache) purgeExpired() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
		}
	}
	c.mu.Unlock()
}
