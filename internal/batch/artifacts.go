package batch

import "fmt"

// UseArtifacts replaces the embedded placeholder blobs with compiled batch
// contract creation bytecode. Call it once at startup, before any query is
// issued; it is not safe to swap artifacts while batches are in flight.
func UseArtifacts(pairsBin, poolDataBin []byte) error {
	if len(pairsBin) == 0 {
		return fmt.Errorf("pairs batch artifact is empty")
	}
	if len(poolDataBin) == 0 {
		return fmt.Errorf("pool data batch artifact is empty")
	}
	pairsBatchBin = append([]byte{}, pairsBin...)
	poolDataBatchBin = append([]byte{}, poolDataBin...)
	placeholderArtifacts = false
	return nil
}

// UsingPlaceholderArtifacts reports whether the embedded placeholder blobs
// are still active, so callers can warn before touching a real node.
func UsingPlaceholderArtifacts() bool {
	return placeholderArtifacts
}

var placeholderArtifacts = true
