package txlisten

import (
	"context"
	"time"

	"github.com/gabapcia/txlisten/internal/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Notification reports a transaction sent to the target address. Text sinks
// print ValueExact; structured sinks carry Value as a number alongside it.
type Notification struct {
	Hash       common.Hash
	From       *common.Address
	To         common.Address
	BlockHash  *common.Hash
	Value      float64      // in ether, approximate; for machine consumers (JSON output)
	ValueExact string       // in ether, exact decimal
	ValueWei   *uint256.Int // as received
	Feed       Feed
	ObservedAt time.Time
}

// Notifier delivers notifications to the operator.
type Notifier interface {
	// NotifyMatch emits n. An error is logged by the caller and never stops
	// the listener.
	NotifyMatch(ctx context.Context, n Notification) error
}

// newNotification builds the Notification of a record whose recipient matched.
func newNotification(record TransactionRecord, feed Feed, observedAt time.Time) Notification {
	value := record.Value
	if value == nil {
		value = new(uint256.Int)
	}

	return Notification{
		Hash:       record.Hash,
		From:       record.From,
		To:         *record.To,
		BlockHash:  record.BlockHash,
		Value:      units.WeiToEther(value),
		ValueExact: units.FormatEther(value),
		ValueWei:   value,
		Feed:       feed,
		ObservedAt: observedAt,
	}
}
