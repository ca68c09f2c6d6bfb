package txlisten

import (
	"context"
	"fmt"
)

// Feed names a push feed the listener can consume.
type Feed string

const (
	// FeedPendingTransactions streams mempool transaction hashes. Lowest
	// latency, but transactions that never reach this node's mempool are missed.
	FeedPendingTransactions Feed = "pending"

	// FeedNewHeads streams block headers and resolves every transaction of each
	// block. Eventually sees every transaction, but only once it is confirmed.
	FeedNewHeads Feed = "blocks"
)

// ParseFeed maps a configuration string to a Feed.
func ParseFeed(s string) (Feed, error) {
	switch Feed(s) {
	case FeedPendingTransactions, FeedNewHeads:
		return Feed(s), nil
	default:
		return "", fmt.Errorf("unknown feed %q", s)
	}
}

// FeedStrategy binds a push feed to the lookup that turns each of its events
// into transaction records. Every strategy shares the same filtering and
// notification logic.
type FeedStrategy interface {
	// Name identifies the feed.
	Name() Feed

	// Subscribe opens the feed on conn.
	Subscribe(ctx context.Context, conn Connection) (Subscription, error)

	// Resolve turns one event into the transactions it refers to.
	Resolve(ctx context.Context, conn Connection, event Event) ([]TransactionRecord, error)

	// LogFields returns the key/value pairs identifying event in log lines.
	LogFields(event Event) []any
}

// StrategyFor returns the FeedStrategy for feed.
func StrategyFor(feed Feed) (FeedStrategy, error) {
	switch feed {
	case FeedPendingTransactions:
		return pendingTransactionsFeed{}, nil
	case FeedNewHeads:
		return newHeadsFeed{}, nil
	default:
		return nil, fmt.Errorf("unknown feed %q", feed)
	}
}

// pendingTransactionsFeed resolves each pushed transaction hash with a single
// transaction lookup.
type pendingTransactionsFeed struct{}

var _ FeedStrategy = pendingTransactionsFeed{}

func (pendingTransactionsFeed) Name() Feed {
	return FeedPendingTransactions
}

func (pendingTransactionsFeed) Subscribe(ctx context.Context, conn Connection) (Subscription, error) {
	return conn.SubscribePendingTransactions(ctx)
}

func (pendingTransactionsFeed) Resolve(ctx context.Context, conn Connection, event Event) ([]TransactionRecord, error) {
	record, err := conn.TransactionByHash(ctx, event.Hash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", event.Hash.Hex(), err)
	}

	return []TransactionRecord{record}, nil
}

func (pendingTransactionsFeed) LogFields(event Event) []any {
	return []any{"tx.hash", event.Hash.Hex()}
}

// newHeadsFeed resolves each pushed block header into the block's transactions.
type newHeadsFeed struct{}

var _ FeedStrategy = newHeadsFeed{}

func (newHeadsFeed) Name() Feed {
	return FeedNewHeads
}

func (newHeadsFeed) Subscribe(ctx context.Context, conn Connection) (Subscription, error) {
	return conn.SubscribeNewHeads(ctx)
}

func (newHeadsFeed) Resolve(ctx context.Context, conn Connection, event Event) ([]TransactionRecord, error) {
	records, err := conn.BlockByHash(ctx, event.Hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", event.Hash.Hex(), err)
	}

	return records, nil
}

func (newHeadsFeed) LogFields(event Event) []any {
	return []any{"block.hash", event.Hash.Hex(), "block.height", event.Height.String()}
}
