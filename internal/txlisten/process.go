package txlisten

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/txlisten/internal/pkg/logger"
	"github.com/gabapcia/txlisten/internal/pkg/x/chflow"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// process consumes sub one event at a time until the feed ends or ctx is done.
// Per-event failures are logged and never stop the loop.
func (s *service) process(ctx context.Context, conn Connection, sub Subscription) {
	for {
		event, ok := chflow.Receive(ctx, sub.Events())
		if !ok {
			return
		}

		s.metrics.eventsReceived.Add(ctx, 1)
		s.handleEvent(ctx, conn, event)
	}
}

// handleEvent resolves event into transaction records and checks each of them.
func (s *service) handleEvent(ctx context.Context, conn Connection, event Event) {
	if event.Err != nil {
		s.metrics.eventsFailed.Add(ctx, 1)
		logger.Error(ctx, "failed to receive feed item", "error", event.Err)
		return
	}

	ctx = logger.Derive(ctx, s.feed.LogFields(event)...)

	records, err := s.resolve(ctx, conn, event)
	if err != nil {
		if ctx.Err() != nil {
			return
		}

		s.metrics.eventsFailed.Add(ctx, 1)
		if errors.Is(err, ErrNotFound) {
			logger.Warn(ctx, "feed item could not be resolved", "error", err)
			return
		}

		logger.Error(ctx, "failed to resolve feed item", "error", err)
		return
	}

	for _, record := range records {
		s.handleRecord(ctx, record)
	}
}

// resolve runs the feed lookup for event under the lookup timeout.
func (s *service) resolve(ctx context.Context, conn Connection, event Event) ([]TransactionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "txlisten.resolve", trace.WithAttributes(
		attribute.String("feed", string(s.feed.Name())),
		attribute.String("event.hash", event.Hash.Hex()),
	))
	defer span.End()

	records, err := s.feed.Resolve(ctx, conn, event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

// handleRecord notifies record when its recipient is the target address.
func (s *service) handleRecord(ctx context.Context, record TransactionRecord) {
	if record.To == nil {
		logger.Info(ctx, "transaction has no recipient, skipping", "tx.hash", record.Hash.Hex())
		return
	}

	if *record.To != s.target {
		return
	}

	firstSeen, err := s.seenGuard.MarkSeen(ctx, record.Hash)
	switch {
	case err != nil:
		logger.Warn(ctx, "failed to check whether transaction was already notified", "tx.hash", record.Hash.Hex(), "error", err)
	case !firstSeen:
		logger.Debug(ctx, "transaction already notified, skipping", "tx.hash", record.Hash.Hex())
		return
	}

	s.metrics.matches.Add(ctx, 1)

	notification := newNotification(record, s.feed.Name(), time.Now())
	if err := s.notifier.NotifyMatch(ctx, notification); err != nil {
		logger.Error(ctx, "failed to emit notification", "tx.hash", record.Hash.Hex(), "error", err)
	}
}
