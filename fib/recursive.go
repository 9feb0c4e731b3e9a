package fib

import (
	"math/big"

	"github.com/on-the-ground/fibtable/memo"
	"go.uber.org/zap"
)

// Recursive computes standard Fibonacci numbers top-down:
//
//	fib(0) = 0, fib(1) = 1, fib(n) = fib(n-1) + fib(n-2)
//
// Intermediate results live in the store passed to NewRecursive. Values in
// the store are shared and never mutated. Recursion depth grows with n.
type Recursive struct {
	fib    func(int) *big.Int
	logger *zap.Logger
}

// NewRecursive builds a Recursive memoized by store. Only WithLogger is
// honoured among the options; the starting pair is always (0, 1).
func NewRecursive(store memo.Store[int, *big.Int], opts ...Option) *Recursive {
	cfg := newConfig(opts)
	r := &Recursive{logger: cfg.logger}
	r.fib = memo.Tableize(r.step, store)
	return r
}

func (r *Recursive) step(n int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	return new(big.Int).Add(r.fib(n-1), r.fib(n-2))
}

// Calc returns a copy of fib(n).
func (r *Recursive) Calc(n int) (*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	r.logger.Debug("recursive calc", zap.Int("n", n))
	return new(big.Int).Set(r.fib(n)), nil
}
