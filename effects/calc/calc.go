package calc

import (
	"context"
	"fmt"
	"time"

	"github.com/on-the-ground/fibtable/effects"
	effectmodel "github.com/on-the-ground/fibtable/effects/model"
	"github.com/on-the-ground/fibtable/effects/log"
	"github.com/on-the-ground/fibtable/fib"
	"golang.org/x/sync/errgroup"
)

// WithEffectHandler registers a resumable handler answering calc effects from
// calculator's cache. Requests are partitioned by index across
// config.NumWorkers workers. A log handler must already be registered in ctx.
// The context returned by the end function should be used for further operations.
func WithEffectHandler(
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	calculator *fib.Calculator,
) (context.Context, func() context.Context) {
	h := handler{calculator: calculator}
	return effects.WithResumableEffectHandler(
		ctx,
		config,
		effectmodel.EffectCalc,
		h.handle,
	)
}

// Effect returns the term at index n through the calc handler in ctx.
// Panics if no calc handler is registered.
func Effect(ctx context.Context, n int) (Result, error) {
	return effects.PerformResumableEffect[Payload, Result](ctx, effectmodel.EffectCalc, Payload{N: n})
}

// EffectBatch performs one calc effect per index, at most limit at a time
// (no limit when limit <= 0). Results are in the order of ns. The first
// failure cancels the remaining requests and is returned.
func EffectBatch(ctx context.Context, limit int, ns ...int) ([]Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([]Result, len(ns))
	for i, n := range ns {
		i, n := i, n
		g.Go(func() error {
			res, err := Effect(gctx, n)
			if err != nil {
				return fmt.Errorf("index %d: %w", n, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type handler struct {
	calculator *fib.Calculator
}

func (h handler) handle(ctx context.Context, payload Payload) (Result, error) {
	from := time.Now()
	_, cached := h.calculator.Cached(payload.N)
	v, err := h.calculator.CalcWithCache(payload.N)
	span := effects.Since(from)
	if err != nil {
		log.Effect(ctx, log.LogWarn, "calc rejected", map[string]interface{}{
			"n":   payload.N,
			"err": err,
		})
		return Result{}, err
	}

	log.Effect(ctx, log.LogDebug, "calc", map[string]interface{}{
		"n":        payload.N,
		"cached":   cached,
		"duration": span.Duration(),
	})
	return Result{
		N:      payload.N,
		Value:  v,
		Cached: cached,
		Span:   span,
	}, nil
}
