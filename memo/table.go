package memo

import "sync"

var _ Store[string, any] = (*Table[string, any])(nil)

// Table is a bounded store made of two generations. Writes go to the head
// generation; once maxSize writes have landed there, the older generation is
// dropped and becomes the new, empty head. Reads consult both.
type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	memos   [2]map[K]V
	headIdx int
	size    uint32
	maxSize uint32
}

func NewTable[K comparable, V any](maxSize uint32) *Table[K, V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Table[K, V]{
		memos:   [2]map[K]V{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Table[K, V]) Load(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if v, ok := t.memos[t.headIdx][key]; ok {
		return v, true
	}
	v, ok := t.memos[1-t.headIdx][key]
	return v, ok
}

func (t *Table[K, V]) Store(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.size == t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx] = map[K]V{}
		t.size = 0
	}
	t.memos[t.headIdx][key] = value
	t.size++
}

// Len returns the number of entries currently reachable.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := len(t.memos[t.headIdx])
	for k := range t.memos[1-t.headIdx] {
		if _, ok := t.memos[t.headIdx][k]; !ok {
			n++
		}
	}
	return n
}
