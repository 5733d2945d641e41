package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"reserveScope/internal/model"
)

func TestJsonlStoragePutPoolBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "pools.jsonl")
	sink := NewJsonlStorage(path)

	batch := []model.PoolSnapshot{
		{
			ChainID:     56,
			BlockNumber: 100,
			Address:     "0x1111111111111111111111111111111111111111",
			TokenA:      "0xAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAa",
			Reserve0:    "1000",
			Reserve1:    "2000",
		},
		{
			ChainID:     56,
			BlockNumber: 100,
			Address:     "0x2222222222222222222222222222222222222222",
			Reserve0:    "3",
			Reserve1:    "4",
		},
	}

	if err := sink.PutPoolBatch(batch); err != nil {
		t.Fatalf("put batch: %v", err)
	}
	// Second batch appends rather than truncating.
	if err := sink.PutPoolBatch(batch[:1]); err != nil {
		t.Fatalf("put second batch: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	var lines []model.PoolSnapshot
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var snap model.PoolSnapshot
		if err := json.Unmarshal(scanner.Bytes(), &snap); err != nil {
			t.Fatalf("unmarshal line: %v", err)
		}
		lines = append(lines, snap)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("line count mismatch: %d", len(lines))
	}
	if lines[0].Address != batch[0].Address || lines[0].Reserve0 != "1000" {
		t.Fatalf("first line mismatch: %+v", lines[0])
	}
	if lines[1].Address != batch[1].Address {
		t.Fatalf("second line mismatch: %+v", lines[1])
	}
}

func TestJsonlStorageEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.jsonl")
	sink := NewJsonlStorage(path)

	if err := sink.PutPoolBatch(nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("empty batch should not create the file")
	}
}
