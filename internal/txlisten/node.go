package txlisten

import (
	"context"
	"errors"

	"github.com/gabapcia/txlisten/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	// ErrNotFound is returned by a Connection lookup when the node does not
	// know the requested transaction or block (e.g., a pending transaction
	// dropped from the mempool before it could be resolved).
	ErrNotFound = errors.New("not found")

	// ErrSubscriptionClosed reports that a live feed ended and the listener is
	// about to reconnect.
	ErrSubscriptionClosed = errors.New("subscription closed")
)

// Node opens streaming connections to a blockchain node.
type Node interface {
	// Dial establishes a new streaming connection. Each call returns an
	// independent connection; the caller owns it and must Close it.
	Dial(ctx context.Context) (Connection, error)
}

// Connection is one live streaming session with a node. It exposes the push
// feeds and the detail lookups the listener relies on.
type Connection interface {
	// SubscribePendingTransactions subscribes to the hashes of transactions
	// entering the node's mempool.
	SubscribePendingTransactions(ctx context.Context) (Subscription, error)

	// SubscribeNewHeads subscribes to the headers of newly imported blocks.
	SubscribeNewHeads(ctx context.Context) (Subscription, error)

	// TransactionByHash returns the detail of a transaction, or ErrNotFound.
	TransactionByHash(ctx context.Context, hash common.Hash) (TransactionRecord, error)

	// BlockByHash returns every transaction included in a block, or ErrNotFound.
	BlockByHash(ctx context.Context, hash common.Hash) ([]TransactionRecord, error)

	// Close releases the connection. Open subscriptions end.
	Close() error
}

// Subscription is a live handle to a server-pushed sequence of events.
type Subscription interface {
	// Events yields pushed items in arrival order. The channel is closed when
	// the subscription ends, typically because the connection dropped.
	Events() <-chan Event

	// Err returns why the subscription ended. It is meaningful once Events is
	// closed and is nil when the subscription was ended by Unsubscribe.
	Err() error

	// Unsubscribe ends the subscription. Safe to call more than once.
	Unsubscribe()
}

// Event is one item pushed by a feed.
//
// For the pending-transactions feed Hash is a transaction hash; for the
// new-heads feed it is a block hash and Height the block number. A non-nil Err
// marks an item the transport failed to decode; the other fields are then
// meaningless.
type Event struct {
	Hash   common.Hash
	Height types.Hex
	Err    error
}

// TransactionRecord is the resolved detail of one transaction.
type TransactionRecord struct {
	Hash      common.Hash
	From      *common.Address // nil when the node omits the sender
	To        *common.Address // nil for contract creation
	Value     *uint256.Int    // in wei
	BlockHash *common.Hash    // nil while pending
}
