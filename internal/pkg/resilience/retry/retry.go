// Package retry provides the reconnection policy used by long-running
// consumers. It wraps the retry-go package from Avast behind a small
// interface so the policy can be injected and tuned without touching the
// callers.
//
// The default policy retries forever with a fixed delay between attempts.
// Exponential backoff, jitter and a maximum number of attempts are opt-in:
//
//	r := retry.New(
//	    retry.WithStrategy(retry.StrategyExponential),
//	    retry.WithDelay(time.Second),
//	    retry.WithMaxDelay(time.Minute),
//	    retry.WithMaxJitter(500*time.Millisecond),
//	    retry.WithAttempts(10),
//	)
package retry

import (
	"context"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Strategy selects how the delay between attempts evolves.
type Strategy string

const (
	// StrategyFixed waits the configured delay (plus jitter) between every attempt.
	StrategyFixed Strategy = "fixed"

	// StrategyExponential doubles the delay after each attempt, capped by the max delay.
	StrategyExponential Strategy = "exponential"
)

// ParseStrategy maps a configuration string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFixed, StrategyExponential:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown retry strategy %q", s)
	}
}

// Retry runs an operation until it succeeds, the attempts are exhausted, or
// the context is done.
type Retry interface {
	// Execute runs operation and, while it keeps failing, waits according to
	// the configured strategy and runs it again.
	//
	// It returns nil as soon as operation returns nil. It returns the last
	// operation error once the attempts are exhausted, or the context error if
	// ctx is done while waiting between attempts.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is called after each failed attempt, before the wait. attempt is
// zero-based.
type OnRetryFunc func(attempt uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts  uint          // maximum number of attempts, 0 means unbounded
	delay     time.Duration // base delay between attempts
	maxDelay  time.Duration // cap on the base delay, jitter excluded
	maxJitter time.Duration // upper bound of the random delay added to each wait
	strategy  Strategy      // how the delay evolves between attempts
	onRetry   OnRetryFunc   // hook invoked after each failed attempt
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the provided options.
//
// Default configuration:
//   - attempts:    0 (retry until success or context cancellation)
//   - delay:       5 seconds
//   - maxDelay:    5 seconds
//   - maxJitter:   0 (no jitter)
//   - strategy:    fixed
//
// The last operation error is returned once the attempts are exhausted.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:  0,
		delay:     5 * time.Second,
		maxDelay:  5 * time.Second,
		maxJitter: 0,
		strategy:  StrategyFixed,
		onRetry:   func(uint, error) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// delayType builds the retry-go delay function for the configured strategy.
// The base delay is capped by maxDelay before jitter is added, so a wait may
// last up to maxDelay+maxJitter.
func (r *retrier) delayType() retry.DelayTypeFunc {
	base := retry.FixedDelay
	if r.cfg.strategy == StrategyExponential {
		base = retry.BackOffDelay
	}

	return func(n uint, err error, c *retry.Config) time.Duration {
		d := base(n, err, c)
		if r.cfg.maxDelay > 0 && d > r.cfg.maxDelay {
			d = r.cfg.maxDelay
		}

		if r.cfg.maxJitter > 0 {
			d += retry.RandomDelay(n, err, c)
		}

		return d
	}
}

// options translates the configuration into retry-go options. MaxDelay is
// left unset because delayType already applies the cap.
func (r *retrier) options(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxJitter(r.cfg.maxJitter),
		retry.DelayType(r.delayType()),
		retry.LastErrorOnly(true),
		retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)),
		retry.Context(ctx),
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation, r.options(ctx)...)
}

// WithAttempts sets the maximum number of attempts, including the first one.
// Zero retries until the operation succeeds or the context is done.
// Default: 0.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. With the fixed strategy
// this is the delay between every attempt; with the exponential strategy it
// is the first delay. Default: 5 seconds.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the base delay between attempts. Jitter is added on top
// of the capped value. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithMaxJitter adds a random delay in [0, d) to every wait. Default: 0.
func WithMaxJitter(d time.Duration) Option {
	return func(c *config) {
		c.maxJitter = d
	}
}

// WithStrategy selects the delay strategy. Default: StrategyFixed.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithOnRetry registers a hook invoked after each failed attempt.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		if f != nil {
			c.onRetry = f
		}
	}
}
