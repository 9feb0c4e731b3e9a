package observe

import (
	"context"
	"time"

	"github.com/on-the-ground/fibtable/fib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var _ fib.Recorder = (*Metrics)(nil)

// Metrics is safe for concurrent use.
type Metrics struct {
	hits         metric.Int64Counter
	misses       metric.Int64Counter
	durationHist metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	hits, err := meter.Int64Counter(
		"fib.calc.hits",
		metric.WithDescription("Cached terms served without computation"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		"fib.calc.misses",
		metric.WithDescription("Calls that extended the cached sequence"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"fib.calc.duration_ms",
		metric.WithDescription("Cached calculation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		hits:         hits,
		misses:       misses,
		durationHist: durationHist,
	}, nil
}

func (m *Metrics) RecordCalc(ctx context.Context, n int, cached bool, d time.Duration) {
	opt := metric.WithAttributes(attribute.Bool("fib.cached", cached))

	if cached {
		m.hits.Add(ctx, 1)
	} else {
		m.misses.Add(ctx, 1, metric.WithAttributes(attribute.Int("fib.index", n)))
	}
	m.durationHist.Record(ctx, float64(d)/float64(time.Millisecond), opt)
}
