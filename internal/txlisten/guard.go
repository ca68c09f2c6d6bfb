package txlisten

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// SeenGuard remembers which matching transactions were already notified so a
// transaction seen again after a reconnect (or by another replica) is
// reported once.
type SeenGuard interface {
	// MarkSeen records hash and reports whether this is the first time it was
	// marked.
	MarkSeen(ctx context.Context, hash common.Hash) (bool, error)
}

// nopSeenGuard treats every transaction as new.
type nopSeenGuard struct{}

func (nopSeenGuard) MarkSeen(context.Context, common.Hash) (bool, error) {
	return true, nil
}
