package reconcile

// RunCache memoizes child lists fetched from a remote source for the lifetime of
// one reconciliation run. Entries are never evicted or refreshed; a new run starts
// with a new cache. It is not safe for concurrent use.
type RunCache[T any] struct {
	entries map[string][]T
	loads   int
	hits    int
}

// NewRunCache creates an empty cache.
func NewRunCache[T any]() *RunCache[T] {
	return &RunCache[T]{entries: make(map[string][]T)}
}

// GetOrLoad returns the cached list for key, calling load on the first access.
// A failed load is cached as an empty list so the key is never fetched twice in a
// run; the load error is still returned to the caller for reporting.
func (c *RunCache[T]) GetOrLoad(key string, load func() ([]T, error)) ([]T, error) {
	if items, ok := c.entries[key]; ok {
		c.hits++
		return items, nil
	}

	c.loads++
	items, err := load()
	if err != nil {
		c.entries[key] = []T{}
		return []T{}, err
	}
	if items == nil {
		items = []T{}
	}
	c.entries[key] = items
	return items, nil
}

// Loads returns how many times the cache called its loader.
func (c *RunCache[T]) Loads() int {
	return c.loads
}

// Hits returns how many lookups were served from the cache.
func (c *RunCache[T]) Hits() int {
	return c.hits
}

// Len returns the number of cached keys.
func (c *RunCache[T]) Len() int {
	return len(c.entries)
}
