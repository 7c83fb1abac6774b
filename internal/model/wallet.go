package model

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidAddress is returned for addresses that do not match ^0x[0-9a-fA-F]{40}$.
var ErrInvalidAddress = errors.New("invalid wallet address")

// NormalizeAddress validates a wallet address and returns its canonical
// lowercase hex form. The 0x prefix is required.
func NormalizeAddress(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "0x") && !strings.HasPrefix(trimmed, "0X") {
		return "", ErrInvalidAddress
	}
	if !common.IsHexAddress(trimmed) {
		return "", ErrInvalidAddress
	}
	return strings.ToLower(common.HexToAddress(trimmed).Hex()), nil
}

// AddressSeed derives a stable numeric seed from an address. Synthetic data
// generation keys its pseudo-random stream on this value so the same address
// always produces the same stream, independent of wall clock or global
// random state.
func AddressSeed(address string) uint64 {
	sum := md5.Sum([]byte(address))
	return uint64(binary.BigEndian.Uint32(sum[:4]))
}

// TransactionRecord is a single normalized transaction. Immutable once fetched.
type TransactionRecord struct {
	Hash         string  `json:"hash"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Value        float64 `json:"value"`
	Timestamp    int64   `json:"timestamp"`
	GasUsed      uint64  `json:"gas_used"`
	GasPrice     float64 `json:"gas_price"`
	Status       string  `json:"status"`
	Method       string  `json:"method"`
	HasInputData bool    `json:"has_input_data"`
}

// WalletActivity is the normalized activity record for an address, fetched
// per scan and never persisted by the scoring pipeline.
type WalletActivity struct {
	Address              string              `json:"address"`
	Chain                string              `json:"chain"`
	Balance              float64             `json:"balance"`
	AgeDays              float64             `json:"age_days"`
	Transactions         []TransactionRecord `json:"transactions"`
	TokenBalances        map[string]float64  `json:"token_balances,omitempty"`
	ContractInteractions int                 `json:"contract_interactions"`
	DefiInteractions     int                 `json:"defi_interactions"`
}
