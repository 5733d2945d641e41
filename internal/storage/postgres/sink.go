package postgres

import (
	"context"

	"reserveScope/internal/model"
)

// Sink adapts Store to the storage.PoolStorage interface so Postgres receives
// every chunk as it resolves, alongside the other sinks. The bound context
// governs all writes issued through the sink.
type Sink struct {
	ctx   context.Context
	store *Store
}

func NewSink(ctx context.Context, store *Store) *Sink {
	return &Sink{ctx: ctx, store: store}
}

func (s *Sink) PutPoolBatch(snapshots []model.PoolSnapshot) error {
	return s.store.UpsertSnapshots(s.ctx, snapshots)
}
