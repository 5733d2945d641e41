package storage

import "reserveScope/internal/model"

// PoolStorage defines a sink for pool snapshots.
type PoolStorage interface {
	PutPoolBatch(snapshots []model.PoolSnapshot) error
}
