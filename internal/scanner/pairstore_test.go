package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestPairStoreLoadMissingFile(t *testing.T) {
	store := NewPairStore(filepath.Join(t.TempDir(), "pairs.txt"))
	pairs, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(pairs) != 0 {
		t.Fatalf("expected empty list, got %d pairs", len(pairs))
	}
}

func TestPairStoreAppendAccumulates(t *testing.T) {
	store := NewPairStore(filepath.Join(t.TempDir(), "data", "pairs.txt"))

	page1 := []common.Address{
		common.HexToAddress("0x0000000000000000000000000000000000000701"),
		common.HexToAddress("0x0000000000000000000000000000000000000702"),
	}
	page2 := []common.Address{
		common.HexToAddress("0x0000000000000000000000000000000000000703"),
	}
	if err := store.Append(page1); err != nil {
		t.Fatalf("append page1: %v", err)
	}
	if err := store.Append(page2); err != nil {
		t.Fatalf("append page2: %v", err)
	}

	pairs, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := append(append([]common.Address{}, page1...), page2...)
	if len(pairs) != len(want) {
		t.Fatalf("pair count mismatch: got %d want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Fatalf("pair %d out of order: %s", i, pairs[i].Hex())
		}
	}
}

func TestPairStoreLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt")
	if err := os.WriteFile(path, []byte("not-an-address\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := NewPairStore(path).Load(); err == nil {
		t.Fatalf("expected error for malformed pair list")
	}
}
