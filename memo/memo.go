// Package memo provides stores for memoizing pure functions.
//
// A Store is owned by whoever builds the memoized function, so independent
// computations never share hidden package-level state.
//
// Stores:
//   - Map: unbounded, backed by sync.Map.
//   - Table: bounded, rotates between two generations.
//   - Ristretto: bounded, admission-controlled, backed by ristretto.
//   - MemDB: unbounded, transactional, backed by go-memdb.
//
// WARNING: only memoize functions whose result depends on nothing but the key.
package memo

// Store holds memoized results by key. Implementations must be safe for
// concurrent use. A Store may forget entries; it must never return a value
// that was not stored under the key.
type Store[K comparable, V any] interface {
	Load(key K) (V, bool)
	Store(key K, value V)
}

// Tableize wraps pureFn so each key is computed at most once while the
// store remembers it.
func Tableize[K comparable, V any](pureFn func(K) V, store Store[K, V]) func(K) V {
	return func(k K) V {
		v, ok := store.Load(k)
		if !ok {
			v = pureFn(k)
			store.Store(k, v)
		}
		return v
	}
}
