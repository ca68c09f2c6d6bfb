package txlisten

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var (
	targetAddress = common.HexToAddress("0x00000000219ab540356cBB839Cbe05303d7705Fa")
	otherAddress  = common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")
	senderAddress = common.HexToAddress("0x95222290DD7278Aa3Ddd389Cc1E1d165CC4BAfe5")
)

// fakeSubscription replays a fixed list of events and then ends with err.
type fakeSubscription struct {
	events       chan Event
	err          error
	unsubscribed atomic.Int32
}

func newFakeSubscription(err error, events ...Event) *fakeSubscription {
	ch := make(chan Event, len(events))
	for _, e := range events {
		ch <- e
	}
	close(ch)

	return &fakeSubscription{events: ch, err: err}
}

// newOpenSubscription returns a subscription whose feed never ends.
func newOpenSubscription() *fakeSubscription {
	return &fakeSubscription{events: make(chan Event)}
}

func (s *fakeSubscription) Events() <-chan Event { return s.events }
func (s *fakeSubscription) Err() error           { return s.err }
func (s *fakeSubscription) Unsubscribe()         { s.unsubscribed.Add(1) }

func hashOf(b byte) common.Hash {
	return common.BytesToHash([]byte{b})
}

func addressPtr(a common.Address) *common.Address {
	return &a
}

func hashPtr(h common.Hash) *common.Hash {
	return &h
}

// counterValue returns the total of the int64 counter called name.
func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)

			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}

	return 0
}

func newTestMeterProvider() (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), reader
}

func newTestTracerProvider() (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	return sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)), exporter
}
