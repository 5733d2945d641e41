package scanner

import (
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"reserveScope/internal/model"
)

func TestSplitOffsets(t *testing.T) {
	got, err := SplitOffsets(0, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []OffsetRange{
		{Start: 0, Step: 3},
		{Start: 3, Step: 3},
		{Start: 6, Step: 3},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges mismatch: %+v != %+v", got, want)
	}
}

func TestSplitOffsetsResume(t *testing.T) {
	got, err := SplitOffsets(4, 8, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []OffsetRange{
		{Start: 4, Step: 2},
		{Start: 6, Step: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges mismatch: %+v != %+v", got, want)
	}
}

func TestSplitOffsetsInvalid(t *testing.T) {
	if _, err := SplitOffsets(0, 10, 0); err == nil {
		t.Fatalf("expected error for zero step")
	}
	if _, err := SplitOffsets(10, 9, 1); err == nil {
		t.Fatalf("expected error for total < from")
	}
}

func TestChunkPools(t *testing.T) {
	pools := NewPools([]common.Address{
		common.HexToAddress("0x0000000000000000000000000000000000000001"),
		common.HexToAddress("0x0000000000000000000000000000000000000002"),
		common.HexToAddress("0x0000000000000000000000000000000000000003"),
		common.HexToAddress("0x0000000000000000000000000000000000000004"),
		common.HexToAddress("0x0000000000000000000000000000000000000005"),
	})

	chunks, err := ChunkPools(pools, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(chunks) != 3 {
		t.Fatalf("chunk count mismatch: %d", len(chunks))
	}
	if len(chunks[0]) != 2 || len(chunks[1]) != 2 || len(chunks[2]) != 1 {
		t.Fatalf("chunk sizes mismatch: %d %d %d", len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}

	// Order must survive chunking.
	flat := make([]*model.Pool, 0, len(pools))
	for _, chunk := range chunks {
		flat = append(flat, chunk...)
	}
	for i := range pools {
		if flat[i] != pools[i] {
			t.Fatalf("chunking reordered pools at %d", i)
		}
	}
}

func TestChunkPoolsInvalid(t *testing.T) {
	if _, err := ChunkPools(nil, 0); err == nil {
		t.Fatalf("expected error for zero chunk size")
	}
}
