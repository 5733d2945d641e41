package storage

import "reserveScope/internal/model"

// MultiStorage fans each batch out to every sink in order, stopping at the
// first failure.
type MultiStorage []PoolStorage

func (m MultiStorage) PutPoolBatch(snapshots []model.PoolSnapshot) error {
	for _, sink := range m {
		if err := sink.PutPoolBatch(snapshots); err != nil {
			return err
		}
	}
	return nil
}
