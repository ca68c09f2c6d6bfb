// Package ethereum implements txlisten.Node for Ethereum-compatible nodes
// speaking JSON-RPC over WebSocket.
package ethereum

import (
	"context"
	"fmt"

	"github.com/gabapcia/txlisten/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txlisten/internal/txlisten"
)

// config holds optional settings for the node.
type config struct {
	wsOptions []jsonrpc.WebSocketOption
	lookup    jsonrpc.Client
}

// Option configures the node.
type Option func(*config)

// WithWebSocketOptions customizes every WebSocket connection the node opens.
func WithWebSocketOptions(opts ...jsonrpc.WebSocketOption) Option {
	return func(c *config) {
		c.wsOptions = append(c.wsOptions, opts...)
	}
}

// WithLookupClient sends transaction and block lookups through client (e.g.,
// an HTTP endpoint) instead of the streaming connection.
func WithLookupClient(client jsonrpc.Client) Option {
	return func(c *config) {
		c.lookup = client
	}
}

// node dials WebSocket JSON-RPC sessions to a single endpoint.
type node struct {
	endpoint  string
	wsOptions []jsonrpc.WebSocketOption
	lookup    jsonrpc.Client
}

var _ txlisten.Node = (*node)(nil)

// NewNode returns a txlisten.Node for the ws:// or wss:// endpoint.
func NewNode(endpoint string, opts ...Option) *node {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &node{
		endpoint:  endpoint,
		wsOptions: cfg.wsOptions,
		lookup:    cfg.lookup,
	}
}

// Dial implements txlisten.Node.
func (n *node) Dial(ctx context.Context) (txlisten.Connection, error) {
	stream, err := jsonrpc.DialWebSocket(ctx, n.endpoint, n.wsOptions...)
	if err != nil {
		return nil, fmt.Errorf("open websocket: %w", err)
	}

	var lookup jsonrpc.Client = stream
	if n.lookup != nil {
		lookup = n.lookup
	}

	return newConnection(stream, lookup), nil
}
