package jsonrpc

import (
	"context"
	"encoding/json"
)

// Notification is one server push. Exactly one of Result and Err is set: Err
// reports a push that could not be decoded.
type Notification struct {
	Result json.RawMessage
	Err    error
}

// Subscription is a live server-side subscription on a WebSocket connection.
type Subscription struct {
	id        string
	namespace string
	client    *wsClient
	ch        chan Notification

	// Terminal state, guarded by client.mu.
	terminated bool
	err        error
}

// ID returns the server-assigned subscription id.
func (s *Subscription) ID() string {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()

	return s.id
}

// Notifications returns the pushes in arrival order. The channel is closed
// when the subscription ends.
func (s *Subscription) Notifications() <-chan Notification {
	return s.ch
}

// Err returns why the subscription ended: nil after Unsubscribe,
// ErrConnectionClosed (wrapped) after a dropped connection, or
// ErrSubscriptionOverflow. Meaningful once Notifications is closed.
func (s *Subscription) Err() error {
	s.client.mu.Lock()
	defer s.client.mu.Unlock()

	return s.err
}

// terminate ends the subscription once. client.mu must be held.
func (s *Subscription) terminate(err error) {
	if s.terminated {
		return
	}

	s.terminated = true
	s.err = err
	close(s.ch)
}

// Unsubscribe ends the subscription locally and, while the connection is
// still open, asks the server to stop pushing. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	c := s.client

	c.mu.Lock()
	if s.terminated {
		c.mu.Unlock()
		return
	}
	delete(c.subs, s.id)
	s.terminate(nil)
	closed := c.closeErr != nil
	c.mu.Unlock()

	if closed {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), unsubscribeTimeout)
	defer cancel()

	_, _ = c.call(ctx, s.namespace+"_unsubscribe", []any{s.id}, nil)
}
