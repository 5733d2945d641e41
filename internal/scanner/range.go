package scanner

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"reserveScope/internal/model"
)

// OffsetRange is one discovery page: Step pair indices beginning at Start.
type OffsetRange struct {
	Start uint64
	Step  uint64
}

// SplitOffsets splits a known pair count into discovery pages of size step.
// The final page keeps the full step; the batch contract pads past the end
// with zero addresses, which discovery drops.
func SplitOffsets(from, total, step uint64) ([]OffsetRange, error) {
	if step == 0 {
		return nil, fmt.Errorf("step must be greater than zero")
	}
	if total < from {
		return nil, fmt.Errorf("total must be >= from")
	}

	ranges := make([]OffsetRange, 0)
	for start := from; start < total; start += step {
		ranges = append(ranges, OffsetRange{Start: start, Step: step})
	}
	return ranges, nil
}

// ChunkPools splits a pool list into batches of at most size records, keeping
// order. The returned chunks alias the input slice.
func ChunkPools(pools []*model.Pool, size int) ([][]*model.Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be greater than zero")
	}

	chunks := make([][]*model.Pool, 0, (len(pools)+size-1)/size)
	for start := 0; start < len(pools); start += size {
		end := start + size
		if end > len(pools) {
			end = len(pools)
		}
		chunks = append(chunks, pools[start:end])
	}
	return chunks, nil
}

// NewPools builds unresolved pool records for the given addresses, preserving
// order.
func NewPools(addresses []common.Address) []*model.Pool {
	pools := make([]*model.Pool, len(addresses))
	for i, addr := range addresses {
		pools[i] = &model.Pool{Address: addr}
	}
	return pools
}
