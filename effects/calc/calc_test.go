package calc_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/fibtable/effects/calc"
	effectmodel "github.com/on-the-ground/fibtable/effects/model"
	"github.com/on-the-ground/fibtable/effects/log"
	"github.com/on-the-ground/fibtable/fib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcEffect_Memoizes(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	calculator := fib.New()
	ctx, endOfCalcHandler := calc.WithEffectHandler(ctx, effectmodel.NewEffectScopeConfig(4, 4), calculator)
	defer endOfCalcHandler()

	_, ok := calculator.Cached(50)
	require.False(t, ok)

	first, err := calc.Effect(ctx, 1000)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1000, first.N)

	second, err := calc.Effect(ctx, 1000)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, 0, first.Value.Cmp(second.Value))
	assert.LessOrEqual(t, second.Span.Duration(), first.Span.Duration())

	f50, ok := calculator.Cached(50)
	require.True(t, ok)
	assert.Equal(t, "12586269025", f50.String())
}

func TestCalcEffect_NegativeIndex(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfCalcHandler := calc.WithEffectHandler(ctx, effectmodel.NewEffectScopeConfig(1, 1), fib.New())
	defer endOfCalcHandler()

	_, err := calc.Effect(ctx, -1)
	assert.ErrorIs(t, err, fib.ErrInvalidArgument)
}

func TestCalcEffectBatch_KeepsOrder(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfCalcHandler := calc.WithEffectHandler(ctx, effectmodel.NewEffectScopeConfig(8, 4), fib.New(fib.WithStartInt64(3, 4)))
	defer endOfCalcHandler()

	results, err := calc.EffectBatch(ctx, 2, 20, 5, 0, 5)
	require.NoError(t, err)
	require.Len(t, results, 4)

	want := []string{"39603", "29", "3", "29"}
	for i, res := range results {
		assert.Equal(t, want[i], res.Value.String())
	}
}

func TestCalcEffectBatch_FailsOnNegative(t *testing.T) {
	ctx := context.Background()
	ctx, endOfLogHandler := log.WithTestEffectHandler(ctx)
	defer endOfLogHandler()

	ctx, endOfCalcHandler := calc.WithEffectHandler(ctx, effectmodel.NewEffectScopeConfig(8, 2), fib.New())
	defer endOfCalcHandler()

	results, err := calc.EffectBatch(ctx, 0, 10, -2, 30)
	assert.ErrorIs(t, err, fib.ErrInvalidArgument)
	assert.Nil(t, results)
}
