package physics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "farmdrive/internal/physics"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics records per-step simulation counters. The meter comes from the
// global OTel provider, which is a no-op unless one has been installed.
type Metrics struct {
	steps    metric.Int64Counter
	contacts metric.Int64Counter
	impacts  metric.Int64Counter
	topples  metric.Int64Counter
	stepTime metric.Float64Histogram
}

func NewMetrics() (*Metrics, error) {
	m := meter()
	var (
		out Metrics
		err error
	)

	out.steps, err = m.Int64Counter(
		"physics.steps",
		metric.WithDescription("Simulation steps taken"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating steps counter: %w", err)
	}

	out.contacts, err = m.Int64Counter(
		"physics.contacts",
		metric.WithDescription("Overlapping pairs found by the narrow phase"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating contacts counter: %w", err)
	}

	out.impacts, err = m.Int64Counter(
		"physics.impacts",
		metric.WithDescription("Contacts that received a normal impulse"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating impacts counter: %w", err)
	}

	out.topples, err = m.Int64Counter(
		"physics.topples",
		metric.WithDescription("Topple state transitions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating topples counter: %w", err)
	}

	out.stepTime, err = m.Float64Histogram(
		"physics.step.duration",
		metric.WithDescription("Wall time of one simulation step"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating step duration histogram: %w", err)
	}

	return &out, nil
}

func (m *Metrics) recordStep(contacts, impacts int, took time.Duration) {
	if m == nil {
		return
	}
	ctx := context.Background()
	m.steps.Add(ctx, 1)
	m.contacts.Add(ctx, int64(contacts))
	m.impacts.Add(ctx, int64(impacts))
	m.stepTime.Record(ctx, float64(took.Microseconds())/1000.0)
}

func (m *Metrics) recordTopple(body string, state ToppleState) {
	if m == nil {
		return
	}
	m.topples.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("body", body),
		attribute.String("state", state.String()),
	))
}
