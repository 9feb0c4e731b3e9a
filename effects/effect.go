package effects

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/fibtable/effects/internal/handlers"
	"go.uber.org/zap"

	effectmodel "github.com/on-the-ground/fibtable/effects/model"
)

// WithResumableEffectHandler registers a resumable effect handler for a given effect enum.
//
// Payloads are hashed by PartitionKey() onto config.NumWorkers workers, so
// payloads sharing a key are handled in order while distinct keys run in parallel.
//
// Usage:
//
//	ctx, end := WithResumableEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithResumableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewResumableHandler(ctx, config, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Debug("created resumable effect handler",
		zap.String("effectId", handler.EffectId),
		zap.String("enum", string(enum)),
	)

	return ctxWith, func() context.Context {
		handler.Close()
		return ctx
	}
}

// PerformResumableEffect sends a payload to the resumable effect handler and waits for the result.
//
// Panics if no handler is registered for the given effect enum.
func PerformResumableEffect[P effectmodel.Partitionable, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) (R, error) {
	handler := mustGetHandler[handlers.ResumableHandler[P, R]](ctx, enum)
	return handler.PerformEffect(ctx, payload)
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging. Payloads are handled by a single
// worker in submission order; those accepted before the end function is called
// are flushed before teardown runs.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewFireAndForgetHandler(ctx, bufferSize, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Debug("created fire/forget effect handler",
		zap.String("effectId", handler.EffectId),
		zap.String("enum", string(enum)),
	)

	return ctxWith, func() context.Context {
		handler.Close()
		return ctx
	}
}

// FireAndForgetEffect triggers a fire-and-forget effect for the given enum and payload.
//
// Panics if no handler is registered for the given enum.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) {
	handler := mustGetHandler[handlers.FireAndForgetHandler[P]](ctx, enum)
	handler.FireAndForgetEffect(ctx, payload)
}

var (
	ErrNoEffectHandler   = errors.New("no effect handler registered for this effect")
	ErrEffectHandlerType = errors.New("effect handler has unexpected type")
)

// mustGetHandler returns the handler registered under enum. It panics with
// ErrNoEffectHandler or ErrEffectHandlerType; both are programming errors.
func mustGetHandler[H any](ctx context.Context, enum effectmodel.EffectEnum) H {
	raw := ctx.Value(enum)
	if raw == nil {
		panic(fmt.Errorf("%w: %v", ErrNoEffectHandler, enum))
	}
	handler, ok := raw.(H)
	if !ok {
		panic(fmt.Errorf("%w: %v: %T", ErrEffectHandlerType, enum, raw))
	}
	return handler
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
