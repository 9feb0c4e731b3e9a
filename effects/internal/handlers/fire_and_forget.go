package handlers

import (
	"context"
	"sync"
)

func NewFireAndForgetHandler[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	teardown func(),
) FireAndForgetHandler[T] {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	ctx, cancelFn := context.WithCancel(ctx)
	effCh := make(chan T, bufferSize)
	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case msg := <-effCh:
				handleFn(ctx, msg)
			case <-ctx.Done():
				// flush what was accepted before the scope closed
				for {
					select {
					case msg := <-effCh:
						handleFn(ctx, msg)
					default:
						return
					}
				}
			}
		}
	}()

	return FireAndForgetHandler[T]{
		effectScope: newEffectScope(func() {
			cancelFn()
			wg.Wait()
			teardown()
		}),
		effectCh: effCh,
	}
}

// FireAndForgetHandler runs handleFn on a single worker, in submission order.
type FireAndForgetHandler[T any] struct {
	*effectScope
	effectCh chan T
}

// FireAndForgetEffect enqueues payload. It drops the payload when ctx is done
// or the scope is closed.
func (h FireAndForgetHandler[T]) FireAndForgetEffect(ctx context.Context, payload T) {
	select {
	case <-ctx.Done():
		return
	case <-h.done:
		return
	default:
	}

	select {
	case <-ctx.Done():
	case <-h.done:
	case h.effectCh <- payload:
	}
}
