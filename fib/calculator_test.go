package fib_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/on-the-ground/fibtable/fib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigOf(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.Truef(t, ok, "bad literal %q", s)
	return v
}

func TestCalc_StandardSequence(t *testing.T) {
	c := fib.New()

	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		v, err := c.Calc(n)
		require.NoError(t, err)
		assert.Equalf(t, 0, v.Cmp(big.NewInt(w)), "calc(%d) = %v, want %d", n, v, w)
	}
}

func TestCalc_KnownValues(t *testing.T) {
	c := fib.New()

	v, err := c.Calc(0)
	require.NoError(t, err)
	assert.Equal(t, "0", v.String())

	v, err = c.Calc(10)
	require.NoError(t, err)
	assert.Equal(t, "55", v.String())

	v, err = c.Calc(100)
	require.NoError(t, err)
	assert.Equal(t, "354224848179261915075", v.String())
}

func TestCalc_CustomStart(t *testing.T) {
	c := fib.New(fib.WithStartInt64(3, 4))

	v, err := c.Calc(5)
	require.NoError(t, err)
	assert.Equal(t, "29", v.String())

	v, err = c.Calc(20)
	require.NoError(t, err)
	assert.Equal(t, "39603", v.String())

	v, err = c.Calc(0)
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())
}

func TestCalc_NegativeIndex(t *testing.T) {
	c := fib.New()

	_, err := c.Calc(-1)
	assert.ErrorIs(t, err, fib.ErrInvalidArgument)

	_, err = c.CalcWithCache(-5)
	assert.ErrorIs(t, err, fib.ErrInvalidArgument)
	assert.Equal(t, 0, c.Sequence().Len())
}

func TestCalc_OverrideDoesNotTouchInstanceOrCache(t *testing.T) {
	c := fib.New()

	v, err := c.Calc(5, fib.From(big.NewInt(3), big.NewInt(4)))
	require.NoError(t, err)
	assert.Equal(t, "29", v.String())

	x, y := c.Start()
	assert.Equal(t, "0", x.String())
	assert.Equal(t, "1", y.String())

	_, ok := c.Cached(0)
	assert.False(t, ok, "an overridden pair must not populate the cache")

	v, err = c.Calc(10)
	require.NoError(t, err)
	assert.Equal(t, "55", v.String())
}

func TestCalc_OverrideEqualToInstanceRecords(t *testing.T) {
	c := fib.New(fib.WithStartInt64(3, 4))

	_, err := c.Calc(5, fib.From(big.NewInt(3), nil))
	require.NoError(t, err)

	v, ok := c.Cached(5)
	require.True(t, ok)
	assert.Equal(t, "29", v.String())
}

func TestCalc_PopulatesCache(t *testing.T) {
	c := fib.New()

	_, err := c.Calc(20)
	require.NoError(t, err)
	assert.Equal(t, 21, c.Sequence().Len())

	v, ok := c.Cached(20)
	require.True(t, ok)
	assert.Equal(t, "6765", v.String())
}

func TestCalcWithCache_PopulatesPrefix(t *testing.T) {
	c := fib.New()

	_, ok := c.Cached(50)
	assert.False(t, ok, "cache[50] must be absent before any call")

	v, err := c.CalcWithCache(100)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(bigOf(t, "354224848179261915075")))

	f50, ok := c.Cached(50)
	require.True(t, ok)
	assert.Equal(t, "12586269025", f50.String())
	assert.Equal(t, 101, c.Sequence().Len())
}

func TestCalcWithCache_ExtendsFromPrefix(t *testing.T) {
	for _, start := range [][2]int64{{0, 1}, {3, 4}, {-2, 7}} {
		cached := fib.New(fib.WithStartInt64(start[0], start[1]))
		plain := fib.New(fib.WithStartInt64(start[0], start[1]))

		// grow the cache in uneven steps, including lengths 1 and 2
		for _, n := range []int{0, 1, 2, 7, 30, 31, 64} {
			got, err := cached.CalcWithCache(n)
			require.NoError(t, err)
			want, err := plain.Calc(n)
			require.NoError(t, err)
			assert.Equalf(t, 0, got.Cmp(want), "start %v n %d: got %v want %v", start, n, got, want)
		}

		for i := 0; i <= 64; i++ {
			got, ok := cached.Cached(i)
			require.True(t, ok)
			want, ok := plain.Cached(i)
			require.True(t, ok)
			assert.Equal(t, 0, got.Cmp(want))
		}
	}
}

func TestCalcWithCache_Idempotent(t *testing.T) {
	c := fib.New()

	begin := time.Now()
	first, err := c.CalcWithCache(1000)
	firstDur := time.Since(begin)
	require.NoError(t, err)

	begin = time.Now()
	second, err := c.CalcWithCache(1000)
	secondDur := time.Since(begin)
	require.NoError(t, err)

	assert.Equal(t, 0, first.Cmp(second))
	assert.LessOrEqual(t, secondDur, firstDur)
}

func TestCalcWithCache_SmallerIndexIsHit(t *testing.T) {
	rec := &countingRecorder{}
	c := fib.New(fib.WithRecorder(rec))

	_, err := c.CalcWithCache(40)
	require.NoError(t, err)
	v, err := c.CalcWithCache(12)
	require.NoError(t, err)
	assert.Equal(t, "144", v.String())

	assert.Equal(t, 1, rec.hits)
	assert.Equal(t, 1, rec.misses)
}

func TestCalcWithCache_ReturnsCopies(t *testing.T) {
	c := fib.New()

	v, err := c.CalcWithCache(10)
	require.NoError(t, err)
	v.SetInt64(-1)

	again, ok := c.Cached(10)
	require.True(t, ok)
	assert.Equal(t, "55", again.String())
}

func TestCalcWithCache_Concurrent(t *testing.T) {
	c := fib.New()
	want, err := fib.New().Calc(1000)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n := 1000 - (i % 4)
			_, err := c.CalcWithCache(n)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	v, ok := c.Cached(1000)
	require.True(t, ok)
	assert.Equal(t, 0, v.Cmp(want))
	assert.Equal(t, 1001, c.Sequence().Len())
}

func TestWithSequence_SharesCallerCache(t *testing.T) {
	seq := fib.NewSequence()
	a := fib.New(fib.WithSequence(seq))
	b := fib.New(fib.WithSequence(seq))

	_, err := a.CalcWithCache(30)
	require.NoError(t, err)

	v, ok := b.Cached(30)
	require.True(t, ok)
	assert.Equal(t, "832040", v.String())
}

type countingRecorder struct {
	mu           sync.Mutex
	hits, misses int
}

func (r *countingRecorder) RecordCalc(_ context.Context, _ int, cached bool, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached {
		r.hits++
	} else {
		r.misses++
	}
}
