package ethereum

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/txlisten/internal/pkg/types"
	"github.com/gabapcia/txlisten/internal/txlisten"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// ErrInvalidResponse reports a node payload that could not be decoded.
var ErrInvalidResponse = errors.New("invalid node response")

type (
	// TransactionResponse is the subset of a transaction object returned by
	// eth_getTransactionByHash and eth_getBlockByHash that the listener uses.
	TransactionResponse struct {
		Hash        common.Hash     `json:"hash"`
		From        *common.Address `json:"from"`
		To          *common.Address `json:"to"`
		Value       *hexutil.Big    `json:"value"`
		BlockHash   *common.Hash    `json:"blockHash"`
		BlockNumber types.Hex       `json:"blockNumber"`
	}

	// BlockResponse is a block returned by eth_getBlockByHash with full
	// transaction objects.
	BlockResponse struct {
		Hash         common.Hash           `json:"hash"`
		Number       types.Hex             `json:"number"`
		Transactions []TransactionResponse `json:"transactions"`
	}

	// HeaderResponse is a block header pushed by the newHeads feed.
	HeaderResponse struct {
		Hash   common.Hash `json:"hash"`
		Number types.Hex   `json:"number"`
	}
)

// toRecord converts the response into a txlisten.TransactionRecord.
func (t TransactionResponse) toRecord() (txlisten.TransactionRecord, error) {
	value := new(uint256.Int)
	if t.Value != nil {
		if overflow := value.SetFromBig((*big.Int)(t.Value)); overflow {
			return txlisten.TransactionRecord{}, fmt.Errorf("%w: value of transaction %s exceeds 256 bits", ErrInvalidResponse, t.Hash.Hex())
		}
	}

	return txlisten.TransactionRecord{
		Hash:      t.Hash,
		From:      t.From,
		To:        t.To,
		Value:     value,
		BlockHash: t.BlockHash,
	}, nil
}

// toRecords converts every transaction of the block. Transactions that omit
// their block hash inherit the block's.
func (b BlockResponse) toRecords() ([]txlisten.TransactionRecord, error) {
	records := make([]txlisten.TransactionRecord, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		if tx.BlockHash == nil {
			blockHash := b.Hash
			tx.BlockHash = &blockHash
		}

		record, err := tx.toRecord()
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}
