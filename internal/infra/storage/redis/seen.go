package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/txlisten/internal/txlisten"

	"github.com/ethereum/go-ethereum/common"
)

// seenKeyPrefix is the namespace of the notified-transaction markers.
const seenKeyPrefix = "txlisten"

// seenKey returns the key marking a notified transaction.
//
// Format: "txlisten:seen:{hash}"
func seenKey(hash common.Hash) string {
	return fmt.Sprintf("%s:seen:%s", seenKeyPrefix, hash.Hex())
}

// MarkSeen implements txlisten.SeenGuard with SET NX and the configured TTL,
// so concurrent listeners sharing the same Redis notify each transaction once.
func (c *client) MarkSeen(ctx context.Context, hash common.Hash) (bool, error) {
	return c.conn.SetNX(ctx, seenKey(hash), "", c.seenTTL).Result()
}

// Ensure the client satisfies the SeenGuard interface at compile time.
var _ txlisten.SeenGuard = new(client)
