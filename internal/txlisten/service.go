// Package txlisten watches a blockchain node for transactions sent to a
// single target address.
//
// The Service keeps one streaming connection open at a time. It subscribes to
// a push feed (pending transactions or new block headers), resolves every
// pushed item into transaction records, and hands each record whose recipient
// is the target address to a Notifier. When the feed ends the connection is
// dropped and a new one is dialed according to the retry policy, until the
// context is canceled.
package txlisten

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/txlisten/internal/pkg/logger"
	"github.com/gabapcia/txlisten/internal/pkg/resilience/retry"
	"github.com/gabapcia/txlisten/internal/pkg/telemetry"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Service listens for transactions sent to the target address.
type Service interface {
	// Run keeps the listener connected until ctx is canceled, in which case it
	// returns nil. It returns an error only when the retry policy gives up.
	Run(ctx context.Context) error
}

// config holds optional settings for the Service.
type config struct {
	feed           FeedStrategy
	retry          retry.Retry
	lookupTimeout  time.Duration
	seenGuard      SeenGuard
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// Option configures the Service.
type Option func(*config)

// WithFeed selects the push feed. Default: pending transactions.
func WithFeed(f FeedStrategy) Option {
	return func(c *config) {
		c.feed = f
	}
}

// WithRetry sets the reconnection policy. Default: a fixed 5 second delay,
// retried forever.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithLookupTimeout bounds every transaction or block lookup. An expired
// lookup is handled like a failed one. Default: 10 seconds.
func WithLookupTimeout(d time.Duration) Option {
	return func(c *config) {
		c.lookupTimeout = d
	}
}

// WithSeenGuard sets the guard that suppresses repeated notifications for the
// same transaction. A nil guard, like the default, notifies every match.
func WithSeenGuard(g SeenGuard) Option {
	return func(c *config) {
		if g != nil {
			c.seenGuard = g
		}
	}
}

// WithMeterProvider sets the provider of the listener's counters. Default: the
// global provider.
func WithMeterProvider(p metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = p
	}
}

// WithTracerProvider sets the provider of the lookup spans. Default: the
// global provider.
func WithTracerProvider(p trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = p
	}
}

// service implements the Service interface.
type service struct {
	node     Node
	target   common.Address
	notifier Notifier

	feed          FeedStrategy
	retry         retry.Retry
	lookupTimeout time.Duration
	seenGuard     SeenGuard
	metrics       metrics
	tracer        trace.Tracer
}

var _ Service = (*service)(nil)

// New creates a Service that dials node, watches for transactions sent to
// target and reports them to notifier.
func New(node Node, target common.Address, notifier Notifier, opts ...Option) *service {
	cfg := config{
		feed:           pendingTransactionsFeed{},
		retry:          retry.New(),
		lookupTimeout:  10 * time.Second,
		seenGuard:      nopSeenGuard{},
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		node:          node,
		target:        target,
		notifier:      notifier,
		feed:          cfg.feed,
		retry:         cfg.retry,
		lookupTimeout: cfg.lookupTimeout,
		seenGuard:     cfg.seenGuard,
		metrics:       newMetrics(cfg.meterProvider),
		tracer:        cfg.tracerProvider.Tracer(telemetry.InstrumentationName),
	}
}

// newSessionID returns a time-ordered id correlating the log lines of one
// connection.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// closeConnection closes conn, logging a failure.
func closeConnection(ctx context.Context, conn Connection) {
	if err := conn.Close(); err != nil {
		logger.Warn(ctx, "failed to close node connection", "error", err)
	}
}

// runSession dials the node, subscribes to the feed and processes it until it
// ends. It returns nil only when ctx is done, so that the retry policy stops.
// Any other outcome is an error and triggers a reconnect.
func (s *service) runSession(ctx context.Context) error {
	ctx = logger.Derive(ctx, "session.id", newSessionID())

	conn, err := s.node.Dial(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		logger.Error(ctx, "failed to connect to node", "error", err)
		return fmt.Errorf("dial node: %w", err)
	}
	defer closeConnection(ctx, conn)

	sub, err := s.feed.Subscribe(ctx, conn)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		logger.Error(ctx, "failed to subscribe to feed", "error", err)
		return fmt.Errorf("subscribe to %s feed: %w", s.feed.Name(), err)
	}
	defer sub.Unsubscribe()

	logger.Info(ctx, "listening for transactions")

	s.process(ctx, conn, sub)

	if ctx.Err() != nil {
		return nil
	}

	s.metrics.reconnects.Add(ctx, 1)
	if err := sub.Err(); err != nil {
		logger.Warn(ctx, "connection closed, reconnecting", "error", err)
		return fmt.Errorf("%w: %w", ErrSubscriptionClosed, err)
	}

	logger.Warn(ctx, "connection closed, reconnecting")
	return ErrSubscriptionClosed
}

// Run implements the Service interface.
func (s *service) Run(ctx context.Context) error {
	ctx = logger.Derive(ctx, "target", s.target.Hex(), "feed", string(s.feed.Name()))

	logger.Info(ctx, "transaction listener started")

	err := s.retry.Execute(ctx, func() error {
		return s.runSession(ctx)
	})
	if ctx.Err() != nil {
		logger.Info(ctx, "transaction listener stopped")
		return nil
	}

	return err
}
