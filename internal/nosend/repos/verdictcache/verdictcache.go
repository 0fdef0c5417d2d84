package verdictcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/domain"
	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/services/gate"
)

// verdictCache is an in-memory LRU of recent evaluations, keyed by the
// gate's (revision, second) key. Entries for edited rule sets are never
// hit again because the revision in the key changes; they simply age
// out under LRU pressure. Evaluations are small value types, so a few
// thousand entries cost little.
type verdictCache struct {
	lru *lru.Cache[string, domain.Evaluation]
}

// New returns a verdict cache bounded to the given number of entries.
func New(size int) (*verdictCache, error) {
	cache, err := lru.New[string, domain.Evaluation](size)
	if err != nil {
		return nil, err
	}
	return &verdictCache{lru: cache}, nil
}

// Get retrieves a memoized evaluation when present.
func (c *verdictCache) Get(key string) (domain.Evaluation, bool) {
	return c.lru.Get(key)
}

// Put stores an evaluation under the given key.
func (c *verdictCache) Put(key string, ev domain.Evaluation) {
	c.lru.Add(key, ev)
}

// Purge drops every entry.
func (c *verdictCache) Purge() {
	c.lru.Purge()
}

// Len returns the number of memoized verdicts currently stored.
func (c *verdictCache) Len() int {
	return c.lru.Len()
}

var _ gate.VerdictCache = (*verdictCache)(nil)
