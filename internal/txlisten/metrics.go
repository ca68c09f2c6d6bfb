package txlisten

import (
	"github.com/gabapcia/txlisten/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// metrics groups the listener's counters.
type metrics struct {
	eventsReceived metric.Int64Counter // items pushed by the feed
	eventsFailed   metric.Int64Counter // items that failed to decode or resolve
	matches        metric.Int64Counter // notifications emitted
	reconnects     metric.Int64Counter // sessions that ended and will be retried
}

// newMetrics creates the counters on provider. A counter that cannot be
// created is replaced by a no-op one.
func newMetrics(provider metric.MeterProvider) metrics {
	meter := provider.Meter(telemetry.InstrumentationName)
	fallback := noop.NewMeterProvider().Meter(telemetry.InstrumentationName)

	counter := func(name, description, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit(unit))
		if err != nil {
			c, _ = fallback.Int64Counter(name)
		}
		return c
	}

	return metrics{
		eventsReceived: counter("txlisten.events.received", "Feed items received from the node", "{event}"),
		eventsFailed:   counter("txlisten.events.failed", "Feed items that could not be decoded or resolved", "{event}"),
		matches:        counter("txlisten.matches", "Transactions sent to the target address", "{transaction}"),
		reconnects:     counter("txlisten.reconnects", "Node sessions that ended and were retried", "{session}"),
	}
}
