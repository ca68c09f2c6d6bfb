package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/txlisten/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	// ErrConnectionClosed is returned by calls made on, or pending on, a closed connection.
	// Subscriptions ended by a dropped connection report it from Err.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrSubscriptionOverflow ends a subscription whose consumer fell too far behind.
	ErrSubscriptionOverflow = errors.New("subscription buffer overflow")

	// ErrMalformedMessage marks a pushed message that could not be decoded.
	ErrMalformedMessage = errors.New("malformed message")
)

const (
	defaultSubscriptionBuffer = 4096
	defaultHandshakeTimeout   = 10 * time.Second
	defaultPingInterval       = 30 * time.Second
	unsubscribeTimeout        = 2 * time.Second
	closeMessageTimeout       = time.Second

	// subscriptionMethodSuffix identifies server pushes (e.g., "eth_subscription").
	subscriptionMethodSuffix = "_subscription"
)

// StreamClient is a Client over a persistent connection that also supports
// server-pushed subscriptions.
type StreamClient interface {
	Client

	// Subscribe calls <namespace>_subscribe with params and returns the live
	// subscription. Notifications pushed right after the subscribe response
	// are never lost.
	Subscribe(ctx context.Context, namespace string, params ...any) (*Subscription, error)

	// Close closes the connection. Pending calls fail with ErrConnectionClosed
	// and every subscription ends.
	Close() error
}

// pendingCall is an in-flight request waiting for its response.
type pendingCall struct {
	resCh chan response // buffered, receives exactly one response
	sub   *Subscription // set when the call is a <namespace>_subscribe
}

// message is any frame the server may send: a response or a notification.
type message struct {
	response
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
}

// notificationParams is the params member of a subscription push.
type notificationParams struct {
	Subscription string          `json:"subscription"`
	Result       json.RawMessage `json:"result"`
}

// wsClient is a JSON-RPC client over a single WebSocket connection.
//
// A single read loop owns all socket reads. It routes responses to pending
// calls by id and pushes to subscriptions by subscription id. Pushes never
// block the read loop, otherwise a consumer waiting on a call response while
// its subscription buffer is full would deadlock.
type wsClient struct {
	conn               *websocket.Conn
	subscriptionBuffer int

	writeMu sync.Mutex // serializes writes to conn

	mu       sync.Mutex // guards the fields below and every Subscription's terminal state
	pending  map[string]*pendingCall
	subs     map[string]*Subscription
	closeErr error
	done     chan struct{}
}

var _ StreamClient = (*wsClient)(nil)

// wsConfig holds optional settings for DialWebSocket.
type wsConfig struct {
	dialer             *websocket.Dialer
	header             http.Header
	subscriptionBuffer int
	pingInterval       time.Duration
}

// WebSocketOption customizes DialWebSocket.
type WebSocketOption func(*wsConfig)

// WithHandshakeTimeout bounds the opening handshake. Default: 10 seconds.
func WithHandshakeTimeout(d time.Duration) WebSocketOption {
	return func(c *wsConfig) {
		c.dialer.HandshakeTimeout = d
	}
}

// WithHeader adds HTTP headers to the handshake request (e.g., authorization).
func WithHeader(h http.Header) WebSocketOption {
	return func(c *wsConfig) {
		c.header = h
	}
}

// WithSubscriptionBuffer sets how many undelivered notifications a
// subscription may hold before it is ended with ErrSubscriptionOverflow.
// Default: 4096.
func WithSubscriptionBuffer(n int) WebSocketOption {
	return func(c *wsConfig) {
		c.subscriptionBuffer = n
	}
}

// WithPingInterval sets how often the client pings the server. A connection
// that stays silent for two intervals is considered dead. Zero disables
// keepalive. Default: 30 seconds.
func WithPingInterval(d time.Duration) WebSocketOption {
	return func(c *wsConfig) {
		c.pingInterval = d
	}
}

// DialWebSocket opens a WebSocket connection to endpoint and starts its read loop.
func DialWebSocket(ctx context.Context, endpoint string, opts ...WebSocketOption) (*wsClient, error) {
	cfg := wsConfig{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: defaultHandshakeTimeout,
		},
		subscriptionBuffer: defaultSubscriptionBuffer,
		pingInterval:       defaultPingInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn, res, err := cfg.dialer.DialContext(ctx, endpoint, cfg.header)
	if res != nil && res.Body != nil {
		res.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	c := &wsClient{
		conn:               conn,
		subscriptionBuffer: cfg.subscriptionBuffer,
		pending:            make(map[string]*pendingCall),
		subs:               make(map[string]*Subscription),
		done:               make(chan struct{}),
	}

	if cfg.pingInterval > 0 {
		c.startKeepAlive(cfg.pingInterval)
	}

	go c.readLoop(cfg.pingInterval)
	return c, nil
}

// startKeepAlive pings the server every interval and extends the read
// deadline whenever a pong arrives.
func (c *wsClient) startKeepAlive(interval time.Duration) {
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * interval))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(2 * interval))
	})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.done:
				return
			case <-ticker.C:
				if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(interval)); err != nil {
					return
				}
			}
		}
	}()
}

// readLoop reads frames until the connection fails, then shuts the client down.
func (c *wsClient) readLoop(pingInterval time.Duration) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.shutdown(fmt.Errorf("%w: %w", ErrConnectionClosed, err))
			return
		}

		if pingInterval > 0 {
			_ = c.conn.SetReadDeadline(time.Now().Add(2 * pingInterval))
		}

		c.dispatch(data)
	}
}

// dispatch routes a single frame.
func (c *wsClient) dispatch(data []byte) {
	var msg message
	if err := json.Unmarshal(data, &msg); err != nil {
		c.broadcast(fmt.Errorf("%w: %w", ErrMalformedMessage, err))
		return
	}

	if strings.HasSuffix(msg.Method, subscriptionMethodSuffix) {
		c.deliverNotification(msg.Params)
		return
	}

	// Every id this client issues is a string.
	var id string
	if err := json.Unmarshal(msg.ID, &id); err != nil {
		return
	}

	c.resolveCall(id, msg.response)
}

// deliverNotification hands a push to the subscription it belongs to.
func (c *wsClient) deliverNotification(raw json.RawMessage) {
	var params notificationParams
	if err := json.Unmarshal(raw, &params); err != nil {
		c.broadcast(fmt.Errorf("%w: %w", ErrMalformedMessage, err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sub, ok := c.subs[params.Subscription]
	if !ok {
		return
	}

	c.deliverLocked(sub, Notification{Result: params.Result})
}

// broadcast reports a per-item error to every active subscription. Used when a
// push cannot be decoded far enough to know its subscription.
func (c *wsClient) broadcast(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, sub := range c.subs {
		c.deliverLocked(sub, Notification{Err: err})
	}
}

// deliverLocked queues n on sub without blocking, ending sub on overflow.
// c.mu must be held.
func (c *wsClient) deliverLocked(sub *Subscription, n Notification) {
	if chflow.TrySend(sub.ch, n) {
		return
	}

	delete(c.subs, sub.id)
	sub.terminate(ErrSubscriptionOverflow)
}

// resolveCall completes the pending call with the given id. A successful
// subscribe response registers its subscription before the read loop moves on,
// so the first pushes find it.
func (c *wsClient) resolveCall(id string, res response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	call, ok := c.pending[id]
	if !ok {
		return
	}
	delete(c.pending, id)

	if call.sub != nil && res.Error == nil {
		if err := json.Unmarshal(res.Result, &call.sub.id); err == nil && call.sub.id != "" {
			if c.closeErr != nil {
				call.sub.terminate(c.closeErr)
			} else {
				c.subs[call.sub.id] = call.sub
			}
		}
	}

	call.resCh <- res
}

// write sends v as a JSON text frame, honoring the ctx deadline.
func (c *wsClient) write(ctx context.Context, v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline, _ := ctx.Deadline()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}

	return c.conn.WriteJSON(v)
}

// call sends a request and waits for its response, the connection to close,
// or ctx to be done.
func (c *wsClient) call(ctx context.Context, method string, params []any, sub *Subscription) (json.RawMessage, error) {
	id := uuid.NewString()
	call := &pendingCall{resCh: make(chan response, 1), sub: sub}

	c.mu.Lock()
	if c.closeErr != nil {
		err := c.closeErr
		c.mu.Unlock()
		return nil, err
	}
	c.pending[id] = call
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	if err := c.write(ctx, newRequest(id, method, params)); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, c.err()
	case res := <-call.resCh:
		if err := res.Err(); err != nil {
			return nil, err
		}
		return res.Result, nil
	}
}

// Fetch implements Client.
func (c *wsClient) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	return c.call(ctx, method, params, nil)
}

// Subscribe implements StreamClient.
func (c *wsClient) Subscribe(ctx context.Context, namespace string, params ...any) (*Subscription, error) {
	sub := &Subscription{
		namespace: namespace,
		client:    c,
		ch:        make(chan Notification, c.subscriptionBuffer),
	}

	if _, err := c.call(ctx, namespace+"_subscribe", params, sub); err != nil {
		c.removeSubscription(sub)
		return nil, err
	}

	if sub.ID() == "" {
		c.removeSubscription(sub)
		return nil, fmt.Errorf("%w: invalid subscription id", ErrMalformedMessage)
	}

	return sub, nil
}

// removeSubscription forgets sub and ends it without an error.
func (c *wsClient) removeSubscription(sub *Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if registered, ok := c.subs[sub.id]; ok && registered == sub {
		delete(c.subs, sub.id)
	}
	sub.terminate(nil)
}

// Done is closed once the connection is gone.
func (c *wsClient) Done() <-chan struct{} {
	return c.done
}

// err returns the reason the connection closed, or nil while it is open.
func (c *wsClient) err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closeErr
}

// shutdown marks the client closed with err, ends every subscription, and
// closes the socket. Only the first call has an effect.
func (c *wsClient) shutdown(err error) {
	c.mu.Lock()
	if c.closeErr != nil {
		c.mu.Unlock()
		return
	}

	c.closeErr = err
	close(c.done)
	for id, sub := range c.subs {
		delete(c.subs, id)
		sub.terminate(err)
	}
	c.mu.Unlock()

	_ = c.conn.Close()
}

// Close implements StreamClient. It sends a normal-closure frame on a best
// effort basis before closing the socket.
func (c *wsClient) Close() error {
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(closeMessageTimeout),
	)

	c.shutdown(ErrConnectionClosed)
	return nil
}
