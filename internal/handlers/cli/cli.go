// Package cli exposes the listener as a command-line application.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/txlisten/internal/pkg/validator"
	"github.com/gabapcia/txlisten/internal/txlisten"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"
)

// DefaultURL is the WebSocket endpoint used when none is given.
const DefaultURL = "ws://127.0.0.1:8545/"

var (
	// ErrInvalidURL is returned when the endpoint is not a ws:// or wss:// URL.
	ErrInvalidURL = errors.New("invalid websocket url")

	// ErrInvalidAddress is returned when the target is not a 20-byte hex address.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidFeed is returned for a feed name other than "pending" or "blocks".
	ErrInvalidFeed = errors.New("invalid feed")
)

// ListenParams carries the validated command-line arguments.
type ListenParams struct {
	URL    string
	Target common.Address
	Feed   txlisten.FeedStrategy
}

// ListenerFactory builds the listener for the given arguments.
type ListenerFactory func(ctx context.Context, params ListenParams) (txlisten.Service, error)

// ParseAddress parses a hex address, with or without the 0x prefix. Casing is
// not checked.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	return common.HexToAddress(s), nil
}

// parseFeed resolves a feed name into its strategy.
func parseFeed(s string) (txlisten.FeedStrategy, error) {
	feed, err := txlisten.ParseFeed(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFeed, s)
	}

	return txlisten.StrategyFor(feed)
}

// parseParams validates the flags of c.
func parseParams(c *cli.Command) (ListenParams, error) {
	url := strings.TrimSpace(c.String("url"))
	if err := validator.Var(url, "required,ws_url"); err != nil {
		return ListenParams{}, fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}

	target, err := ParseAddress(c.String("address"))
	if err != nil {
		return ListenParams{}, err
	}

	feed, err := parseFeed(c.String("feed"))
	if err != nil {
		return ListenParams{}, err
	}

	return ListenParams{URL: url, Target: target, Feed: feed}, nil
}

// Run parses args (including the program name) and runs the listener built by
// newListener until ctx is canceled.
//
// Usage example:
//
//	txlisten --url wss://node.example.org --address 0xAbC... --feed blocks
func Run(ctx context.Context, args []string, newListener ListenerFactory) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txlisten",
		Description:           "Listens to an Ethereum node and prints every transaction sent to an address.",
		Usage:                 "Streams pending transactions or new blocks and reports transfers to the target address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "WebSocket endpoint of the node (ws:// or wss://)",
				Value:   DefaultURL,
				Sources: cli.EnvVars("TXLISTEN_URL"),
			},
			&cli.StringFlag{
				Name:     "address",
				Aliases:  []string{"a"},
				Usage:    "Address whose incoming transactions are reported",
				Required: true,
				Sources:  cli.EnvVars("TXLISTEN_ADDRESS"),
			},
			&cli.StringFlag{
				Name:    "feed",
				Usage:   "Push feed to consume: pending or blocks",
				Value:   string(txlisten.FeedPendingTransactions),
				Sources: cli.EnvVars("TXLISTEN_FEED"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			params, err := parseParams(c)
			if err != nil {
				return err
			}

			listener, err := newListener(ctx, params)
			if err != nil {
				return err
			}

			return listener.Run(ctx)
		},
	}

	return app.Run(ctx, args)
}
