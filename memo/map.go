package memo

import "sync"

var _ Store[string, any] = Map[string, any]{}

type Map[K comparable, V any] struct {
	m *sync.Map
}

func NewMap[K comparable, V any]() Map[K, V] {
	return Map[K, V]{m: &sync.Map{}}
}

func (s Map[K, V]) Load(key K) (V, bool) {
	v, ok := s.m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (s Map[K, V]) Store(key K, value V) {
	s.m.Store(key, value)
}
