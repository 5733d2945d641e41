package scanner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// PairStore persists discovered pair addresses to a line-oriented file, one
// hex address per line. Pages are appended as they arrive so an interrupted
// discovery keeps everything found before the cut, and a resumed run merges
// with the existing list instead of overwriting it.
type PairStore struct {
	path string
}

func NewPairStore(path string) *PairStore {
	return &PairStore{path: path}
}

// Load reads every previously stored pair address in file order. A missing
// file is an empty list, not an error.
func (s *PairStore) Load() ([]common.Address, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open pair list: %w", err)
	}
	defer file.Close()

	var pairs []common.Address
	lineScanner := bufio.NewScanner(file)
	for lineScanner.Scan() {
		line := strings.TrimSpace(lineScanner.Text())
		if line == "" {
			continue
		}
		if !common.IsHexAddress(line) {
			return nil, fmt.Errorf("invalid pair address in list: %s", line)
		}
		pairs = append(pairs, common.HexToAddress(line))
	}
	if err := lineScanner.Err(); err != nil {
		return nil, fmt.Errorf("read pair list: %w", err)
	}
	return pairs, nil
}

// Append adds a page of pair addresses to the end of the list.
func (s *PairStore) Append(pairs []common.Address) error {
	if len(pairs) == 0 {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create pair list dir: %w", err)
		}
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open pair list: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, pair := range pairs {
		if _, err := fmt.Fprintln(writer, pair.Hex()); err != nil {
			return fmt.Errorf("write pair: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush pair list: %w", err)
	}
	return nil
}
