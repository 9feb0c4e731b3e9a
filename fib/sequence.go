package fib

import (
	"fmt"
	"math/big"
	"sync"
)

// Sequence is an ordered, index-addressable cache of terms.
//
// Terms are recorded contiguously from index 0 and are write-once: recording
// an index that is already present is a no-op. The cache never shrinks.
type Sequence struct {
	mu    sync.RWMutex
	terms []*big.Int
}

func NewSequence() *Sequence {
	return &Sequence{}
}

// Load returns a copy of the term at index i.
func (s *Sequence) Load(i int) (*big.Int, bool) {
	if i < 0 {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i >= len(s.terms) {
		return nil, false
	}
	return new(big.Int).Set(s.terms[i]), true
}

// Len returns the number of recorded terms, i.e. the first index not yet cached.
func (s *Sequence) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.terms)
}

// tail returns the last two recorded terms without copying.
// Callers must not mutate them.
func (s *Sequence) tail() (length int, prev, last *big.Int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	length = len(s.terms)
	if length >= 1 {
		last = s.terms[length-1]
	}
	if length >= 2 {
		prev = s.terms[length-2]
	}
	return
}

// fill records terms[k] at index start+k. Indexes already present are kept.
// The terms are stored without copying; the caller hands over ownership.
func (s *Sequence) fill(start int, terms []*big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if start > len(s.terms) {
		panic(fmt.Sprintf("fib: non-contiguous fill at %d, sequence length %d", start, len(s.terms)))
	}
	if end := start + len(terms); end > len(s.terms) {
		s.terms = append(s.terms, terms[len(s.terms)-start:]...)
	}
}
