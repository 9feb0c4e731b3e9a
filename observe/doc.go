// Package observe records calculator metrics with OpenTelemetry.
//
// Metrics implements fib.Recorder:
//   - fib.calc.hits: CalcWithCache calls answered from the cache.
//   - fib.calc.misses: CalcWithCache calls that extended the cache.
//   - fib.calc.duration_ms: latency of CalcWithCache, by outcome.
//
// NewStdoutMeterProvider wires the stdout exporter for command-line use.
package observe
