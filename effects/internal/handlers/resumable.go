package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/fibtable/effects/model"
)

// NewResumableHandler starts config.NumWorkers workers. Payloads are routed
// to a worker by the xxhash of their partition key.
func NewResumableHandler[T effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, T) (R, error),
	teardown func(),
) ResumableHandler[T, R] {
	config = effectmodel.NewEffectScopeConfig(config.BufferSize, config.NumWorkers)
	ctx, cancelFn := context.WithCancel(ctx)
	effChs := make([]chan resumableEffectMessage[T, R], config.NumWorkers)
	wg := &sync.WaitGroup{}

	for i := 0; i < config.NumWorkers; i++ {
		effCh := make(chan resumableEffectMessage[T, R], config.BufferSize)
		wg.Add(1)
		go func(ch chan resumableEffectMessage[T, R]) {
			defer wg.Done()
			for {
				select {
				case msg := <-ch:
					val, err := handleFn(ctx, msg.payload)
					msg.resumeCh <- ResumableResult[R]{Value: val, Err: err}
				case <-ctx.Done():
					return
				}
			}
		}(effCh)
		effChs[i] = effCh
	}

	return ResumableHandler[T, R]{
		effectScope: newEffectScope(func() {
			cancelFn()
			wg.Wait()
			teardown()
		}),
		effectChs: effChs,
	}
}

type ResumableResult[R any] struct {
	Value R
	Err   error
}

type ResumableHandler[T effectmodel.Partitionable, R any] struct {
	*effectScope
	effectChs []chan resumableEffectMessage[T, R]
}

// PerformEffect sends payload to its worker and waits for the result.
func (rh ResumableHandler[T, R]) PerformEffect(ctx context.Context, payload T) (R, error) {
	var zero R
	resumeCh := make(chan ResumableResult[R], 1)
	msg := resumableEffectMessage[T, R]{
		payload:  payload,
		resumeCh: resumeCh,
	}

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-rh.done:
		return zero, ErrScopeClosed
	case rh.effectChs[getIndexByHash(payload, len(rh.effectChs))] <- msg:
	}

	select {
	case res := <-resumeCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-rh.done:
		return zero, ErrScopeClosed
	}
}

type resumableEffectMessage[T effectmodel.Partitionable, R any] struct {
	payload  T
	resumeCh chan ResumableResult[R]
}
