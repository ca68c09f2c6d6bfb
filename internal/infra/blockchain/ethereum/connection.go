package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txlisten/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txlisten/internal/txlisten"

	"github.com/ethereum/go-ethereum/common"
)

const (
	subscriptionNamespace = "eth"

	feedNewPendingTransactions = "newPendingTransactions"
	feedNewHeads               = "newHeads"

	methodGetTransactionByHash = "eth_getTransactionByHash"
	methodGetBlockByHash       = "eth_getBlockByHash"
)

// connection is one WebSocket session with the node.
type connection struct {
	stream jsonrpc.StreamClient // subscriptions, and lookups unless overridden
	lookup jsonrpc.Client       // transaction and block lookups
}

var _ txlisten.Connection = (*connection)(nil)

func newConnection(stream jsonrpc.StreamClient, lookup jsonrpc.Client) *connection {
	return &connection{
		stream: stream,
		lookup: lookup,
	}
}

// subscribe opens an eth_subscribe feed whose pushes are decoded by decode.
func (c *connection) subscribe(ctx context.Context, feed string, decode decodeFunc) (txlisten.Subscription, error) {
	sub, err := c.stream.Subscribe(ctx, subscriptionNamespace, feed)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", feed, err)
	}

	return newSubscription(sub, decode), nil
}

// SubscribePendingTransactions implements txlisten.Connection.
func (c *connection) SubscribePendingTransactions(ctx context.Context) (txlisten.Subscription, error) {
	return c.subscribe(ctx, feedNewPendingTransactions, decodePendingTransaction)
}

// SubscribeNewHeads implements txlisten.Connection.
func (c *connection) SubscribeNewHeads(ctx context.Context) (txlisten.Subscription, error) {
	return c.subscribe(ctx, feedNewHeads, decodeNewHead)
}

// fetch calls method and decodes a non-null result into v. A null result is
// reported as txlisten.ErrNotFound.
func (c *connection) fetch(ctx context.Context, v any, method string, params ...any) error {
	data, err := c.lookup.Fetch(ctx, method, params...)
	if err != nil {
		return err
	}

	if jsonrpc.IsNull(data) {
		return txlisten.ErrNotFound
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, method, err)
	}

	return nil
}

// TransactionByHash implements txlisten.Connection.
func (c *connection) TransactionByHash(ctx context.Context, hash common.Hash) (txlisten.TransactionRecord, error) {
	var tx TransactionResponse
	if err := c.fetch(ctx, &tx, methodGetTransactionByHash, hash); err != nil {
		return txlisten.TransactionRecord{}, err
	}

	return tx.toRecord()
}

// BlockByHash implements txlisten.Connection.
func (c *connection) BlockByHash(ctx context.Context, hash common.Hash) ([]txlisten.TransactionRecord, error) {
	var block BlockResponse
	if err := c.fetch(ctx, &block, methodGetBlockByHash, hash, true); err != nil {
		return nil, err
	}

	return block.toRecords()
}

// Close implements txlisten.Connection.
func (c *connection) Close() error {
	return c.stream.Close()
}
