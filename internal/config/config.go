// Package config reads the listener's settings from the environment.
//
// Every variable is prefixed with TXLISTEN_ (e.g., TXLISTEN_LOG_LEVEL). A .env
// file in the working directory, when present, is loaded first; variables
// already set in the environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gabapcia/txlisten/internal/pkg/logger"
	"github.com/gabapcia/txlisten/internal/pkg/resilience/retry"
	"github.com/gabapcia/txlisten/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txlisten/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix shared by every environment variable.
const EnvPrefix = "TXLISTEN"

// defaultRetryMaxDelay is the lowest max delay applied when none is set.
const defaultRetryMaxDelay = 5 * time.Second

// Dedup modes.
const (
	DedupNone   = "none"
	DedupMemory = "memory"
	DedupRedis  = "redis"
)

// Config holds the settings that are not given on the command line.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"console" validate:"oneof=console json"`

	RetryStrategy  string        `envconfig:"RETRY_STRATEGY" default:"fixed" validate:"oneof=fixed exponential"`
	RetryDelay     time.Duration `envconfig:"RETRY_DELAY" default:"5s" validate:"gt=0"`
	RetryMaxDelay  time.Duration `envconfig:"RETRY_MAX_DELAY" validate:"gtefield=RetryDelay"` // unset: max(RetryDelay, 5s)
	RetryMaxJitter time.Duration `envconfig:"RETRY_MAX_JITTER" default:"0s" validate:"gte=0"`
	RetryAttempts  uint          `envconfig:"RETRY_ATTEMPTS" default:"0"` // 0 retries forever

	HandshakeTimeout   time.Duration     `envconfig:"HANDSHAKE_TIMEOUT" default:"10s" validate:"gt=0"`
	PingInterval       time.Duration     `envconfig:"PING_INTERVAL" default:"30s" validate:"gte=0"` // 0 disables keepalive
	SubscriptionBuffer int               `envconfig:"SUBSCRIPTION_BUFFER" default:"4096" validate:"gt=0"`
	NodeHeaders        map[string]string `envconfig:"NODE_HEADERS"` // e.g. "Authorization:Bearer abc,X-Api-Key:xyz"

	LookupTimeout time.Duration `envconfig:"LOOKUP_TIMEOUT" default:"10s" validate:"gt=0"`
	LookupURL     string        `envconfig:"LOOKUP_URL" validate:"omitempty,http_url"`

	Dedup         string        `envconfig:"DEDUP" default:"memory" validate:"oneof=none memory redis"`
	DedupTTL      time.Duration `envconfig:"DEDUP_TTL" default:"10m" validate:"gt=0"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required_if=Dedup redis"`
	RedisUsername string        `envconfig:"REDIS_USERNAME"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	OutputFormat string `envconfig:"OUTPUT_FORMAT" default:"text" validate:"oneof=text json"`

	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"txlisten" validate:"required"`
}

// Load reads envFiles (default: ".env") into the environment, then decodes and
// validates the configuration. Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if cfg.RetryMaxDelay == 0 {
		cfg.RetryMaxDelay = max(cfg.RetryDelay, defaultRetryMaxDelay)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoggerOptions returns the logger settings.
func (c Config) LoggerOptions() []logger.Option {
	return []logger.Option{
		logger.WithLevel(c.LogLevel),
		logger.WithEncoding(logger.Encoding(c.LogEncoding)),
	}
}

// WebSocketOptions returns the settings of every node connection.
func (c Config) WebSocketOptions() []jsonrpc.WebSocketOption {
	opts := []jsonrpc.WebSocketOption{
		jsonrpc.WithHandshakeTimeout(c.HandshakeTimeout),
		jsonrpc.WithPingInterval(c.PingInterval),
		jsonrpc.WithSubscriptionBuffer(c.SubscriptionBuffer),
	}

	if len(c.NodeHeaders) > 0 {
		header := make(http.Header, len(c.NodeHeaders))
		for key, value := range c.NodeHeaders {
			header.Set(key, value)
		}
		opts = append(opts, jsonrpc.WithHeader(header))
	}

	return opts
}

// Retry builds the reconnection policy.
func (c Config) Retry() (retry.Retry, error) {
	strategy, err := retry.ParseStrategy(c.RetryStrategy)
	if err != nil {
		return nil, err
	}

	return retry.New(
		retry.WithStrategy(strategy),
		retry.WithDelay(c.RetryDelay),
		retry.WithMaxDelay(c.RetryMaxDelay),
		retry.WithMaxJitter(c.RetryMaxJitter),
		retry.WithAttempts(c.RetryAttempts),
	), nil
}
