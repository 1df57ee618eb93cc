package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"urlhealth/internal/domain"
)

const keyPrefix = "url_health_"

// ResultCache is a TTL-bound cache of probe outcomes keyed by URL. It is an
// optimization only: a miss simply means the URL gets probed again.
type ResultCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*ResultCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &ResultCache{cache: cache, ttl: ttl}, nil
}

func (c *ResultCache) Get(url string) (domain.CheckOutcome, bool) {
	val, found := c.cache.Get(keyPrefix + url)
	if !found {
		return domain.CheckOutcome{}, false
	}
	return val.(domain.CheckOutcome), true
}

func (c *ResultCache) Set(url string, outcome domain.CheckOutcome) {
	cost := int64(len(url) + len(outcome.ErrorMessage) + 24)
	c.cache.SetWithTTL(keyPrefix+url, outcome, cost, c.ttl)
}

// Wait blocks until buffered writes are applied. Tests only.
func (c *ResultCache) Wait() {
	c.cache.Wait()
}

func (c *ResultCache) Close() {
	c.cache.Close()
}

func (c *ResultCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
