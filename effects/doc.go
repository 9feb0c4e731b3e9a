// Package effects delegates side effects to handlers registered in a context.
//
// Computation code stays pure: instead of reaching for a logger or a shared
// calculator directly, it performs an effect and lets the handler found in
// ctx do the work. Handlers are scoped: each WithXxxEffectHandler returns an
// end function that stops the workers, flushes pending payloads where that
// applies, and runs the teardown.
//
// Two handler shapes exist:
//   - Resumable: the caller waits for a result. Workers are partitioned by
//     the payload's PartitionKey(), so payloads sharing a key are ordered.
//   - Fire-and-forget: the caller does not wait. One worker, submission order.
//
// Built on top:
//   - effects/log: structured logging through zap.
//   - effects/calc: Fibonacci terms through a shared fib.Calculator.
//
// Example:
//
//	ctx, endOfLog := log.WithZapEffectHandler(ctx, 16, logger)
//	defer endOfLog()
//	ctx, endOfCalc := calc.WithEffectHandler(ctx, effectmodel.NewEffectScopeConfig(16, 4), fib.New())
//	defer endOfCalc()
//
//	res, err := calc.Effect(ctx, 100)
package effects
