// Command txlisten prints every transaction sent to an address as soon as the
// connected Ethereum node reports it.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txlisten/internal/config"
	"github.com/gabapcia/txlisten/internal/handlers/cli"
	"github.com/gabapcia/txlisten/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/txlisten/internal/infra/notifier/stdout"
	"github.com/gabapcia/txlisten/internal/infra/storage/memory"
	"github.com/gabapcia/txlisten/internal/infra/storage/redis"
	"github.com/gabapcia/txlisten/internal/pkg/logger"
	"github.com/gabapcia/txlisten/internal/pkg/telemetry"
	"github.com/gabapcia/txlisten/internal/pkg/transport/http"
	"github.com/gabapcia/txlisten/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txlisten/internal/txlisten"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "txlisten: %v\n", err)
		os.Exit(1)
	}
}

// run wires the application from the environment and executes the CLI.
func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.ServiceName)
		if initErr != nil {
			return fmt.Errorf("init telemetry: %w", initErr)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	if err := logger.Init(cfg.LoggerOptions()...); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reconnect, err := cfg.Retry()
	if err != nil {
		return err
	}

	seenGuard, closeSeenGuard, err := newSeenGuard(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSeenGuard()

	notifier := stdout.New(stdout.WithFormat(stdout.Format(cfg.OutputFormat)))

	newListener := func(ctx context.Context, params cli.ListenParams) (txlisten.Service, error) {
		nodeOpts := []ethereum.Option{ethereum.WithWebSocketOptions(cfg.WebSocketOptions()...)}
		if cfg.LookupURL != "" {
			lookup := jsonrpc.NewHTTPClient(cfg.LookupURL, http.NewClient(http.WithTimeout(cfg.LookupTimeout)))
			nodeOpts = append(nodeOpts, ethereum.WithLookupClient(lookup))
		}

		node := ethereum.NewNode(params.URL, nodeOpts...)

		return txlisten.New(node, params.Target, notifier,
			txlisten.WithFeed(params.Feed),
			txlisten.WithRetry(reconnect),
			txlisten.WithLookupTimeout(cfg.LookupTimeout),
			txlisten.WithSeenGuard(seenGuard),
		), nil
	}

	return cli.Run(ctx, os.Args, newListener)
}

// newSeenGuard builds the duplicate-notification guard selected by cfg.Dedup.
// The returned func releases its resources.
func newSeenGuard(ctx context.Context, cfg config.Config) (txlisten.SeenGuard, func(), error) {
	switch cfg.Dedup {
	case config.DedupMemory:
		guard := memory.NewSeenGuard(cfg.DedupTTL)
		return guard, guard.Close, nil
	case config.DedupRedis:
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB,
			redis.WithSeenTTL(cfg.DedupTTL),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}

		return client, func() {
			if err := client.Close(); err != nil {
				logger.Warn(ctx, "failed to close redis client", "error", err)
			}
		}, nil
	default:
		return nil, func() {}, nil
	}
}
