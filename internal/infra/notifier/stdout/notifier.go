// Package stdout implements txlisten.Notifier by printing to the operator's
// terminal.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gabapcia/txlisten/internal/txlisten"
)

// Format selects how notifications are rendered.
type Format string

const (
	// FormatText prints a human-readable block per notification.
	FormatText Format = "text"

	// FormatJSON prints one JSON object per line.
	FormatJSON Format = "json"
)

// config holds optional settings for the notifier.
type config struct {
	writer io.Writer
	format Format
}

// Option configures the notifier.
type Option func(*config)

// WithWriter redirects the output. Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// WithFormat selects the output format. Default: FormatText.
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// jsonNotification is the FormatJSON rendering of a notification.
type jsonNotification struct {
	Hash       string    `json:"hash"`
	From       *string   `json:"from"`
	To         string    `json:"to"`
	BlockHash  *string   `json:"blockHash,omitempty"`
	Value      float64   `json:"value"`
	ValueExact string    `json:"valueExact"`
	ValueWei   string    `json:"valueWei"`
	Feed       string    `json:"feed"`
	ObservedAt time.Time `json:"observedAt"`
}

// notifier prints one entry per notification.
type notifier struct {
	mu     sync.Mutex
	writer io.Writer
	format Format
}

var _ txlisten.Notifier = (*notifier)(nil)

// New returns a txlisten.Notifier writing to standard output.
func New(opts ...Option) *notifier {
	cfg := config{
		writer: os.Stdout,
		format: FormatText,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &notifier{
		writer: cfg.writer,
		format: cfg.format,
	}
}

// NotifyMatch implements txlisten.Notifier.
func (n *notifier) NotifyMatch(_ context.Context, notification txlisten.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.format == FormatJSON {
		return n.writeJSON(notification)
	}

	return n.writeText(notification)
}

// writeJSON prints notification as a single JSON line.
func (n *notifier) writeJSON(notification txlisten.Notification) error {
	out := jsonNotification{
		Hash:       notification.Hash.Hex(),
		To:         notification.To.Hex(),
		Value:      notification.Value,
		ValueExact: notification.ValueExact,
		ValueWei:   "0",
		Feed:       string(notification.Feed),
		ObservedAt: notification.ObservedAt,
	}
	if notification.From != nil {
		from := notification.From.Hex()
		out.From = &from
	}
	if notification.BlockHash != nil {
		blockHash := notification.BlockHash.Hex()
		out.BlockHash = &blockHash
	}
	if notification.ValueWei != nil {
		out.ValueWei = notification.ValueWei.Dec()
	}

	return json.NewEncoder(n.writer).Encode(out)
}

// writeText prints notification as:
//
//	New Transaction Received!
//	Tx Hash: 0x…
//	From: 0x…
//	To: 0x…
//	Value: 1.5 ETH
func (n *notifier) writeText(notification txlisten.Notification) error {
	from := "unknown"
	if notification.From != nil {
		from = notification.From.Hex()
	}

	_, err := fmt.Fprintf(n.writer,
		"New Transaction Received!\nTx Hash: %s\nFrom: %s\nTo: %s\nValue: %s ETH\n\n",
		notification.Hash.Hex(),
		from,
		notification.To.Hex(),
		notification.ValueExact,
	)
	return err
}
