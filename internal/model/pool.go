package model

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Pool is a Uniswap V2 pool record. Reserves are uint112 on chain and are kept
// widened as big.Int so downstream arithmetic cannot overflow.
type Pool struct {
	Address        common.Address
	TokenA         common.Address
	TokenADecimals uint8
	TokenB         common.Address
	TokenBDecimals uint8
	Reserve0       *big.Int
	Reserve1       *big.Int
}

// Resolved reports whether the pool has been populated from chain state.
// An unpopulated pool keeps the zero token-A address.
func (p *Pool) Resolved() bool {
	return p.TokenA != (common.Address{})
}

// PoolSnapshot is the storage representation of a populated pool at a block
// height. Reserves are decimal strings so JSON and Postgres round-trip exactly.
type PoolSnapshot struct {
	ChainID        uint64 `json:"chain_id"`
	BlockNumber    uint64 `json:"block_number"`
	Address        string `json:"address"`
	TokenA         string `json:"token_a"`
	TokenADecimals uint8  `json:"token_a_decimals"`
	TokenB         string `json:"token_b"`
	TokenBDecimals uint8  `json:"token_b_decimals"`
	Reserve0       string `json:"reserve0"`
	Reserve1       string `json:"reserve1"`
	CapturedAt     string `json:"captured_at"`
}

// Snapshot converts the pool into its storage representation.
func (p *Pool) Snapshot(chainID, blockNumber uint64, capturedAt time.Time) PoolSnapshot {
	reserve0 := "0"
	if p.Reserve0 != nil {
		reserve0 = p.Reserve0.String()
	}
	reserve1 := "0"
	if p.Reserve1 != nil {
		reserve1 = p.Reserve1.String()
	}

	return PoolSnapshot{
		ChainID:        chainID,
		BlockNumber:    blockNumber,
		Address:        p.Address.Hex(),
		TokenA:         p.TokenA.Hex(),
		TokenADecimals: p.TokenADecimals,
		TokenB:         p.TokenB.Hex(),
		TokenBDecimals: p.TokenBDecimals,
		Reserve0:       reserve0,
		Reserve1:       reserve1,
		CapturedAt:     capturedAt.UTC().Format(time.RFC3339Nano),
	}
}
