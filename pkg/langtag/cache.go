package langtag

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

// defaultMaxEntries bounds the memo when no option overrides it.
const defaultMaxEntries = 1024

// CacheOption configures a Cached checker.
type CacheOption func(*Cached)

// WithMaxEntries caps the number of remembered tags.
// When the cap is reached the least recently used tag is forgotten.
// Zero or negative means unlimited.
// Default: 1024.
func WithMaxEntries(n int) CacheOption {
	return func(c *Cached) {
		c.maxEntries = n
	}
}

// verdict is one remembered answer.
type verdict struct {
	tag   string
	valid bool
}

// Cached memoises the answers of another Checker.
//
// Answers live in a map for O(1) lookups and a doubly-linked list ordered by
// recency, most recent at the front.
type Cached struct {
	next       Checker
	items      map[string]*list.Element
	recency    *list.List
	group      singleflight.Group
	maxEntries int
	mu         sync.Mutex
}

// NewCached wraps next with an LRU memo.
func NewCached(next Checker, opts ...CacheOption) *Cached {
	c := &Cached{
		next:       next,
		items:      make(map[string]*list.Element),
		recency:    list.New(),
		maxEntries: defaultMaxEntries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Valid returns the remembered answer for tag, asking the wrapped checker on
// a miss. Concurrent misses for the same tag share a single call.
func (c *Cached) Valid(tag string) bool {
	if valid, ok := c.lookup(tag); ok {
		return valid
	}

	v, _, _ := c.group.Do(tag, func() (any, error) {
		valid := c.next.Valid(tag)
		c.store(tag, valid)
		return valid, nil
	})

	return v.(bool)
}

// Len returns the number of remembered tags.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Purge forgets every remembered answer.
func (c *Cached) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.recency.Init()
}

func (c *Cached) lookup(tag string) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[tag]
	if !ok {
		return false, false
	}
	c.recency.MoveToFront(elem)
	return elem.Value.(*verdict).valid, true
}

func (c *Cached) store(tag string, valid bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[tag]; ok {
		elem.Value.(*verdict).valid = valid
		c.recency.MoveToFront(elem)
		return
	}

	if c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	c.items[tag] = c.recency.PushFront(&verdict{tag: tag, valid: valid})
}

// evictOldest drops the least recently used answer.
// Caller must hold the mutex.
func (c *Cached) evictOldest() {
	elem := c.recency.Back()
	if elem == nil {
		return
	}
	c.recency.Remove(elem)
	delete(c.items, elem.Value.(*verdict).tag)
}

var _ Checker = (*Cached)(nil)
