package fib

import (
	"context"
	"math/big"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Recorder receives one observation per CalcWithCache call.
type Recorder interface {
	RecordCalc(ctx context.Context, n int, cached bool, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordCalc(context.Context, int, bool, time.Duration) {}

// Calculator computes terms of the sequence starting at its (x, y) pair.
//
// The pair is fixed at construction. Calls that override it through From
// neither mutate the calculator nor touch its cache.
type Calculator struct {
	x, y     *big.Int
	seq      *Sequence
	group    singleflight.Group
	logger   *zap.Logger
	recorder Recorder
}

type config struct {
	x, y     *big.Int
	seq      *Sequence
	logger   *zap.Logger
	recorder Recorder
}

// Option configures a Calculator or a Recursive.
type Option func(*config)

// WithStart sets the starting pair. Nil values keep the default.
func WithStart(x, y *big.Int) Option {
	return func(c *config) {
		if x != nil {
			c.x = new(big.Int).Set(x)
		}
		if y != nil {
			c.y = new(big.Int).Set(y)
		}
	}
}

func WithStartInt64(x, y int64) Option {
	return WithStart(big.NewInt(x), big.NewInt(y))
}

// WithSequence injects a caller-owned cache. The caller must not share one
// Sequence between calculators with different starting pairs.
func WithSequence(seq *Sequence) Option {
	return func(c *config) {
		if seq != nil {
			c.seq = seq
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.recorder = r
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		x:        big.NewInt(0),
		y:        big.NewInt(1),
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// New returns a Calculator starting at (0, 1) unless WithStart says otherwise.
// The cache starts empty.
func New(opts ...Option) *Calculator {
	cfg := newConfig(opts)
	if cfg.seq == nil {
		cfg.seq = NewSequence()
	}
	return &Calculator{
		x:        cfg.x,
		y:        cfg.y,
		seq:      cfg.seq,
		logger:   cfg.logger,
		recorder: cfg.recorder,
	}
}

// Start returns copies of the starting pair.
func (c *Calculator) Start() (x, y *big.Int) {
	return new(big.Int).Set(c.x), new(big.Int).Set(c.y)
}

// Sequence returns the calculator's cache.
func (c *Calculator) Sequence() *Sequence {
	return c.seq
}

type calcArgs struct {
	x, y *big.Int
}

// CalcOption overrides the starting pair for a single Calc call.
type CalcOption func(*calcArgs)

// From computes from (x, y) instead of the calculator's pair. Nil values
// fall back to the calculator's pair.
func From(x, y *big.Int) CalcOption {
	return func(a *calcArgs) {
		if x != nil {
			a.x = x
		}
		if y != nil {
			a.y = y
		}
	}
}

// Calc returns the n-th term by iterating n times from the starting pair.
//
// When the effective pair is the calculator's own, every visited term is
// recorded in the cache. With a different pair nothing is recorded and only
// constant auxiliary space is used.
func (c *Calculator) Calc(n int, opts ...CalcOption) (*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	args := calcArgs{x: c.x, y: c.y}
	for _, opt := range opts {
		opt(&args)
	}
	if args.x.Cmp(c.x) != 0 || args.y.Cmp(c.y) != 0 {
		return advance(n, args.x, args.y), nil
	}

	terms := make([]*big.Int, 0, n+1)
	x, y := new(big.Int).Set(c.x), new(big.Int).Set(c.y)
	for i := 0; i < n; i++ {
		terms = append(terms, x)
		x, y = y, new(big.Int).Add(x, y)
	}
	terms = append(terms, x)
	c.seq.fill(0, terms)
	return new(big.Int).Set(x), nil
}

// CalcWithCache returns the cached n-th term, computing and caching terms
// 0..n on a miss. Concurrent misses for the same index share one computation.
func (c *Calculator) CalcWithCache(n int) (*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	begin := time.Now()
	if v, ok := c.seq.Load(n); ok {
		c.recorder.RecordCalc(context.Background(), n, true, time.Since(begin))
		return v, nil
	}

	c.group.Do(strconv.Itoa(n), func() (any, error) {
		c.extend(n)
		return nil, nil
	})
	v, ok := c.seq.Load(n)
	if !ok {
		// fill is contiguous, so a completed extend always covers n.
		panic("fib: sequence not extended to " + strconv.Itoa(n))
	}
	c.recorder.RecordCalc(context.Background(), n, false, time.Since(begin))
	return v, nil
}

// Cached returns cache[n] without computing anything.
func (c *Calculator) Cached(n int) (*big.Int, bool) {
	return c.seq.Load(n)
}

// extend records terms up to index n, resuming after the last cached term.
func (c *Calculator) extend(n int) {
	length, prev, last := c.seq.tail()
	if length > n {
		return
	}

	var x, y *big.Int
	switch length {
	case 0:
		x, y = new(big.Int).Set(c.x), new(big.Int).Set(c.y)
	case 1:
		x, y = new(big.Int).Set(c.y), new(big.Int).Add(last, c.y)
	default:
		x = new(big.Int).Add(prev, last)
		y = new(big.Int).Add(last, x)
	}

	terms := make([]*big.Int, 0, n-length+1)
	for i := length; i <= n; i++ {
		terms = append(terms, x)
		x, y = y, new(big.Int).Add(x, y)
	}
	c.seq.fill(length, terms)
	c.logger.Debug("sequence extended",
		zap.Int("from", length),
		zap.Int("to", n),
	)
}

// advance iterates the recurrence n times in place and returns the n-th term.
func advance(n int, x, y *big.Int) *big.Int {
	a, b := new(big.Int).Set(x), new(big.Int).Set(y)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
