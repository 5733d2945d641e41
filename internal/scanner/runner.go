package scanner

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"reserveScope/internal/batch"
	"reserveScope/internal/model"
	"reserveScope/internal/storage"
)

// ChainReader is the node surface the runner needs. chain.Client implements
// it; tests substitute a fake.
type ChainReader interface {
	ethereum.ContractCaller
	GetChainID(ctx context.Context) (*big.Int, error)
	LatestBlockNumber(ctx context.Context) (uint64, error)
}

// RunConfig holds runtime settings for the scanner.
type RunConfig struct {
	Factory           common.Address
	Step              uint64
	TotalPairs        uint64
	ChunkSize         int
	PairListPath      string
	CheckpointPath    string
	CheckpointEnabled bool
	MaxRetries        int
	RetryBackoff      time.Duration
}

// Runner discovers pairs from a factory and populates their reserves in
// bounded batches.
type Runner struct {
	cfg        RunConfig
	chain      ChainReader
	storage    storage.PoolStorage
	logger     *zap.Logger
	pairs      *PairStore
	checkpoint *CheckpointStore
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, chainReader ChainReader, storageSink storage.PoolStorage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	var pairs *PairStore
	if cfg.PairListPath != "" {
		pairs = NewPairStore(cfg.PairListPath)
	}
	return &Runner{
		cfg:        cfg,
		chain:      chainReader,
		storage:    storageSink,
		logger:     logger,
		pairs:      pairs,
		checkpoint: NewCheckpointStore(cfg.CheckpointPath, cfg.CheckpointEnabled),
	}
}

// Discover pages through the factory's pair list and returns every pair
// address in encounter order. With TotalPairs set, pagination is planned up
// front; otherwise it continues until a page comes back short.
//
// With a pair list configured, every page is appended to it before the
// cursor is checkpointed, so an interrupted run keeps what it found and a
// resumed run merges previously stored pairs with newly discovered ones
// instead of starting a fresh list. Without a pair list the checkpoint is
// ignored: a cursor with no stored results behind it would make a rerun
// silently drop everything before it.
func (r *Runner) Discover(ctx context.Context) ([]common.Address, error) {
	if r.chain == nil {
		return nil, fmt.Errorf("chain reader is nil")
	}
	if r.cfg.Step == 0 {
		return nil, fmt.Errorf("step must be greater than zero")
	}

	start := uint64(0)
	pairs := make([]common.Address, 0)
	seen := make(map[common.Address]struct{})

	if r.pairs != nil {
		cp, ok, err := r.checkpoint.Load()
		if err != nil {
			return nil, err
		}
		if ok {
			start = cp.NextPairIndex
			stored, err := r.pairs.Load()
			if err != nil {
				return nil, err
			}
			for _, pair := range stored {
				if _, dup := seen[pair]; dup {
					continue
				}
				seen[pair] = struct{}{}
				pairs = append(pairs, pair)
			}
			r.logger.Info("resume discovery", zap.Uint64("next_pair_index", start), zap.Int("stored_pairs", len(pairs)))
		}
	}

	fetchPage := func(offset uint64) ([]common.Address, error) {
		var page []common.Address
		err := withRetry(ctx, r.cfg.MaxRetries, r.cfg.RetryBackoff, func(ctx context.Context) error {
			var err error
			page, err = batch.GetPairs(ctx, r.chain, r.cfg.Factory,
				new(big.Int).SetUint64(offset), new(big.Int).SetUint64(r.cfg.Step))
			return err
		})
		return page, err
	}

	// keepPage filters duplicates (a crash between store and checkpoint
	// replays one page on resume), persists the remainder, and only then
	// advances the cursor.
	keepPage := func(offset uint64, found []common.Address) error {
		fresh := make([]common.Address, 0, len(found))
		for _, pair := range found {
			if _, dup := seen[pair]; dup {
				continue
			}
			seen[pair] = struct{}{}
			fresh = append(fresh, pair)
		}
		pairs = append(pairs, fresh...)
		r.logger.Info("discovered page", zap.Uint64("start", offset), zap.Int("pairs", len(fresh)))

		if r.pairs != nil {
			if err := r.pairs.Append(fresh); err != nil {
				return err
			}
			if err := r.checkpoint.Save(offset + r.cfg.Step); err != nil {
				return err
			}
		}
		return nil
	}

	if r.cfg.TotalPairs > 0 {
		if start >= r.cfg.TotalPairs {
			r.logger.Info("nothing to discover", zap.Uint64("next_pair_index", start), zap.Uint64("total_pairs", r.cfg.TotalPairs))
			return pairs, nil
		}
		ranges, err := SplitOffsets(start, r.cfg.TotalPairs, r.cfg.Step)
		if err != nil {
			return nil, err
		}
		for _, page := range ranges {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			found, err := fetchPage(page.Start)
			if err != nil {
				return nil, fmt.Errorf("discover pairs at %d: %w", page.Start, err)
			}
			if err := keepPage(page.Start, found); err != nil {
				return nil, err
			}
		}
		return pairs, nil
	}

	for offset := start; ; offset += r.cfg.Step {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := fetchPage(offset)
		if err != nil {
			return nil, fmt.Errorf("discover pairs at %d: %w", offset, err)
		}
		if err := keepPage(offset, found); err != nil {
			return nil, err
		}
		// A short page means the factory's pair list is exhausted.
		if uint64(len(found)) < r.cfg.Step {
			return pairs, nil
		}
	}
}

// Sync populates reserves for the given pools in bounded chunks and hands
// snapshots of the resolved ones to storage. Pools that carry the no-data
// sentinel stay unresolved and are not snapshotted; that is the expected
// shape of a partially-resolved batch, not an error.
func (r *Runner) Sync(ctx context.Context, pools []*model.Pool) ([]model.PoolSnapshot, error) {
	if r.chain == nil {
		return nil, fmt.Errorf("chain reader is nil")
	}
	if len(pools) == 0 {
		return nil, nil
	}

	chainID, err := r.chain.GetChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	if !chainID.IsUint64() {
		return nil, fmt.Errorf("chain id does not fit in uint64: %s", chainID)
	}

	blockNumber, err := r.chain.LatestBlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("get latest block: %w", err)
	}

	chunkSize := r.cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = len(pools)
	}
	chunks, err := ChunkPools(pools, chunkSize)
	if err != nil {
		return nil, err
	}

	snapshots := make([]model.PoolSnapshot, 0, len(pools))
	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		err := withRetry(ctx, r.cfg.MaxRetries, r.cfg.RetryBackoff, func(ctx context.Context) error {
			return batch.PopulatePools(ctx, r.chain, chunk)
		})
		if err != nil {
			return nil, fmt.Errorf("populate pools: %w", err)
		}

		capturedAt := time.Now().UTC()
		chunkSnapshots := make([]model.PoolSnapshot, 0, len(chunk))
		for _, pool := range chunk {
			if !pool.Resolved() {
				continue
			}
			chunkSnapshots = append(chunkSnapshots, pool.Snapshot(chainID.Uint64(), blockNumber, capturedAt))
		}

		// Each chunk is persisted as soon as it resolves, so a sync that
		// dies late keeps everything already fetched.
		if r.storage != nil && len(chunkSnapshots) > 0 {
			if err := r.storage.PutPoolBatch(chunkSnapshots); err != nil {
				return nil, fmt.Errorf("store snapshots: %w", err)
			}
		}

		snapshots = append(snapshots, chunkSnapshots...)
		r.logger.Info("populated chunk", zap.Int("pools", len(chunk)), zap.Int("resolved", len(chunkSnapshots)))
	}

	return snapshots, nil
}

// Run discovers every pair and syncs their reserves.
func (r *Runner) Run(ctx context.Context) ([]model.PoolSnapshot, error) {
	pairs, err := r.Discover(ctx)
	if err != nil {
		return nil, err
	}
	r.logger.Info("discovery complete", zap.Int("pairs", len(pairs)))
	return r.Sync(ctx, NewPools(pairs))
}
