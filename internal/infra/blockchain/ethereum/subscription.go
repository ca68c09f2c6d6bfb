package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txlisten/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txlisten/internal/pkg/x/chflow"
	"github.com/gabapcia/txlisten/internal/txlisten"

	"github.com/ethereum/go-ethereum/common"
)

// decodeFunc turns one pushed result into an event.
type decodeFunc func(result json.RawMessage) (txlisten.Event, error)

// decodePendingTransaction decodes a newPendingTransactions push: a
// transaction hash.
func decodePendingTransaction(result json.RawMessage) (txlisten.Event, error) {
	var hash common.Hash
	if err := json.Unmarshal(result, &hash); err != nil {
		return txlisten.Event{}, fmt.Errorf("%w: pending transaction: %w", ErrInvalidResponse, err)
	}

	return txlisten.Event{Hash: hash}, nil
}

// decodeNewHead decodes a newHeads push: a block header.
func decodeNewHead(result json.RawMessage) (txlisten.Event, error) {
	var header HeaderResponse
	if err := json.Unmarshal(result, &header); err != nil {
		return txlisten.Event{}, fmt.Errorf("%w: block header: %w", ErrInvalidResponse, err)
	}

	if header.Hash == (common.Hash{}) {
		return txlisten.Event{}, fmt.Errorf("%w: block header without hash", ErrInvalidResponse)
	}

	return txlisten.Event{Hash: header.Hash, Height: header.Number}, nil
}

// subscription adapts a JSON-RPC subscription to txlisten.Subscription.
type subscription struct {
	sub    *jsonrpc.Subscription
	events chan txlisten.Event
	cancel context.CancelFunc
}

var _ txlisten.Subscription = (*subscription)(nil)

// newSubscription starts forwarding the pushes of sub, decoded by decode.
func newSubscription(sub *jsonrpc.Subscription, decode decodeFunc) *subscription {
	ctx, cancel := context.WithCancel(context.Background())

	s := &subscription{
		sub:    sub,
		events: make(chan txlisten.Event),
		cancel: cancel,
	}

	go s.forward(ctx, decode)
	return s
}

// forward decodes pushes in order until the JSON-RPC subscription ends or the
// subscription is canceled. Undecodable pushes become events carrying Err.
func (s *subscription) forward(ctx context.Context, decode decodeFunc) {
	defer close(s.events)

	for notification := range s.sub.Notifications() {
		event := txlisten.Event{Err: notification.Err}
		if notification.Err == nil {
			decoded, err := decode(notification.Result)
			if err != nil {
				decoded = txlisten.Event{Err: err}
			}
			event = decoded
		}

		if ok := chflow.Send(ctx, s.events, event); !ok {
			return
		}
	}
}

// Events implements txlisten.Subscription.
func (s *subscription) Events() <-chan txlisten.Event {
	return s.events
}

// Err implements txlisten.Subscription.
func (s *subscription) Err() error {
	return s.sub.Err()
}

// Unsubscribe implements txlisten.Subscription.
func (s *subscription) Unsubscribe() {
	s.cancel()
	s.sub.Unsubscribe()
}
