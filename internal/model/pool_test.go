package model

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

func TestPoolSnapshot(t *testing.T) {
	pool := Pool{
		Address:        common.HexToAddress("0x1111111111111111111111111111111111111111"),
		TokenA:         common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		TokenADecimals: 18,
		TokenB:         common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"),
		TokenBDecimals: 6,
		Reserve0:       big.NewInt(1000),
		Reserve1:       big.NewInt(2000),
	}

	capturedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	snap := pool.Snapshot(56, 42, capturedAt)

	if snap.ChainID != 56 || snap.BlockNumber != 42 {
		t.Fatalf("provenance mismatch: %+v", snap)
	}
	if snap.Address != pool.Address.Hex() || snap.TokenA != pool.TokenA.Hex() {
		t.Fatalf("address formatting mismatch: %+v", snap)
	}
	if snap.Reserve0 != "1000" || snap.Reserve1 != "2000" {
		t.Fatalf("reserve formatting mismatch: %+v", snap)
	}
	if snap.CapturedAt != "2026-08-30T12:00:00Z" {
		t.Fatalf("captured_at mismatch: %s", snap.CapturedAt)
	}
}

func TestPoolSnapshotNilReserves(t *testing.T) {
	pool := Pool{Address: common.HexToAddress("0x1111111111111111111111111111111111111111")}
	snap := pool.Snapshot(1, 1, time.Now())

	if snap.Reserve0 != "0" || snap.Reserve1 != "0" {
		t.Fatalf("nil reserves should serialize as zero: %+v", snap)
	}
}

func TestPoolResolved(t *testing.T) {
	pool := Pool{}
	if pool.Resolved() {
		t.Fatalf("zero pool must not be resolved")
	}
	pool.TokenA = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if !pool.Resolved() {
		t.Fatalf("pool with token A must be resolved")
	}
}
