package memo

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

type key interface {
	ristretto.Key
	comparable
}

var _ Store[int, any] = (*Ristretto[int, any])(nil)

// Ristretto is a bounded store backed by a ristretto cache. Each entry costs 1,
// so maxItems bounds the number of entries. Stores are waited on, so a value
// is visible to the next Load unless the admission policy rejected it.
type Ristretto[K key, V any] struct {
	cache *ristretto.Cache[K, V]
}

func NewRistretto[K key, V any](maxItems int64) (*Ristretto[K, V], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters:        maxItems * 10,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Ristretto[K, V]{cache: cache}, nil
}

func (r *Ristretto[K, V]) Load(key K) (V, bool) {
	return r.cache.Get(key)
}

func (r *Ristretto[K, V]) Store(key K, value V) {
	if r.cache.Set(key, value, 1) {
		r.cache.Wait()
	}
}

// Close stops the cache's background goroutines.
func (r *Ristretto[K, V]) Close() {
	r.cache.Close()
}
