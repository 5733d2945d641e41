package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reserveScope/internal/model"
)

// Store provides Postgres persistence for pool snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertSnapshots inserts or updates the latest reserve state per pool.
func (s *Store) UpsertSnapshots(ctx context.Context, snapshots []model.PoolSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, snapshot := range snapshots {
		batch.Queue(`
			INSERT INTO pool_reserves (
				chain_id, pool_address, token_a, token_a_decimals, token_b, token_b_decimals,
				reserve0, reserve1, block_number, captured_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
			ON CONFLICT (chain_id, pool_address)
			DO UPDATE SET
				token_a = EXCLUDED.token_a,
				token_a_decimals = EXCLUDED.token_a_decimals,
				token_b = EXCLUDED.token_b,
				token_b_decimals = EXCLUDED.token_b_decimals,
				reserve0 = EXCLUDED.reserve0,
				reserve1 = EXCLUDED.reserve1,
				block_number = EXCLUDED.block_number,
				captured_at = EXCLUDED.captured_at,
				updated_at = now()
		`,
			int64(snapshot.ChainID),
			snapshot.Address,
			snapshot.TokenA,
			int16(snapshot.TokenADecimals),
			snapshot.TokenB,
			int16(snapshot.TokenBDecimals),
			snapshot.Reserve0,
			snapshot.Reserve1,
			int64(snapshot.BlockNumber),
			snapshot.CapturedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range snapshots {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
