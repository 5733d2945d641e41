package storage

import (
	"errors"
	"testing"

	"reserveScope/internal/model"
)

type countingSink struct {
	batches int
	err     error
}

func (c *countingSink) PutPoolBatch(snapshots []model.PoolSnapshot) error {
	c.batches++
	return c.err
}

func TestMultiStorageFansOut(t *testing.T) {
	first := &countingSink{}
	second := &countingSink{}
	multi := MultiStorage{first, second}

	if err := multi.PutPoolBatch([]model.PoolSnapshot{{Address: "0xabc"}}); err != nil {
		t.Fatalf("put batch: %v", err)
	}
	if first.batches != 1 || second.batches != 1 {
		t.Fatalf("batch counts: first %d, second %d", first.batches, second.batches)
	}
}

func TestMultiStorageStopsOnError(t *testing.T) {
	boom := errors.New("sink unavailable")
	first := &countingSink{err: boom}
	second := &countingSink{}
	multi := MultiStorage{first, second}

	if err := multi.PutPoolBatch(nil); !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if second.batches != 0 {
		t.Fatalf("later sink received a batch after an earlier failure")
	}
}
