// Package batch retrieves Uniswap V2 pool state in bulk. Many independent
// reads are packed into a single ephemeral contract deployment evaluated via
// one eth_call, and the binary response is merged positionally back onto
// caller-owned pool records.
package batch

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"reserveScope/internal/model"
)

// GetPairs fetches one discovery page of pair addresses from the factory:
// step pairs beginning at index start. Addresses are returned in encounter
// order with zero entries dropped; a short (or empty) page past the end of
// the factory's pair list is normal.
func GetPairs(ctx context.Context, caller ethereum.ContractCaller, factory common.Address, start, step *big.Int) ([]common.Address, error) {
	const op = "get_pairs_batch"

	calldata, err := packPairsQuery(start, step, factory)
	if err != nil {
		return nil, &StagingError{Op: op, Batch: factory, Err: err}
	}

	ret, err := execute(ctx, caller, op, factory, calldata)
	if err != nil {
		return nil, err
	}

	decoded, err := decodeAddresses(op, ret)
	if err != nil {
		return nil, err
	}

	pairs := make([]common.Address, 0, len(decoded))
	for _, addr := range decoded {
		if addr == (common.Address{}) {
			continue
		}
		pairs = append(pairs, addr)
	}
	return pairs, nil
}

// PopulatePools fetches token and reserve data for every pool in one round
// trip and merges each decoded slot onto the pool at the same index. Slots
// carrying the zero sentinel are skipped and their pools left untouched;
// that per-slot tolerance is the only partial-success path. The slice's
// length and order are never changed.
//
// Pools are mutated in place with no internal locking; callers running
// overlapping batches concurrently must serialize them.
func PopulatePools(ctx context.Context, caller ethereum.ContractCaller, pools []*model.Pool) error {
	const op = "get_pool_data_batch"

	if len(pools) == 0 {
		return nil
	}
	batchStart := pools[0].Address

	targets := make([]common.Address, len(pools))
	for i, pool := range pools {
		targets[i] = pool.Address
	}

	calldata, err := packPoolQuery(targets)
	if err != nil {
		return &StagingError{Op: op, Batch: batchStart, Err: err}
	}

	ret, err := execute(ctx, caller, op, batchStart, calldata)
	if err != nil {
		return err
	}

	decoded, err := decodePools(op, ret)
	if err != nil {
		return err
	}

	// The wire protocol carries no keys, only position: the contract must
	// answer with exactly one slot per requested address.
	if len(decoded) != len(pools) {
		return &DecodeError{Op: op, Err: fmt.Errorf("%d slots for %d pools", len(decoded), len(pools))}
	}

	for i, slot := range decoded {
		if !slot.found {
			continue
		}
		apply(pools[i], slot.data)
	}
	return nil
}

// PopulatePool fetches data for a single pool. Unlike the bulk path, a zero
// sentinel here is escalated to a MissingRecordError naming the pool: with
// one record requested, silently doing nothing would be indistinguishable
// from success.
func PopulatePool(ctx context.Context, caller ethereum.ContractCaller, pool *model.Pool) error {
	const op = "get_pool_data"

	calldata, err := packPoolQuery([]common.Address{pool.Address})
	if err != nil {
		return &StagingError{Op: op, Batch: pool.Address, Err: err}
	}

	ret, err := execute(ctx, caller, op, pool.Address, calldata)
	if err != nil {
		return err
	}

	decoded, err := decodePools(op, ret)
	if err != nil {
		return err
	}
	if len(decoded) != 1 {
		return &DecodeError{Op: op, Err: fmt.Errorf("%d slots for 1 pool", len(decoded))}
	}
	if !decoded[0].found {
		return &MissingRecordError{Pool: pool.Address}
	}

	apply(pool, decoded[0].data)
	return nil
}

// apply overwrites every populated field of the record at once, so a record
// is either fully updated or not touched at all.
func apply(pool *model.Pool, data poolData) {
	pool.TokenA = data.TokenA
	pool.TokenADecimals = data.TokenADecimals
	pool.TokenB = data.TokenB
	pool.TokenBDecimals = data.TokenBDecimals
	pool.Reserve0 = new(big.Int).Set(data.Reserve0)
	pool.Reserve1 = new(big.Int).Set(data.Reserve1)
}
