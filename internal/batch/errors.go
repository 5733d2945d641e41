package batch

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// StagingError means the composite query could not be prepared or evaluated
// remotely. The whole batch fails; no records are touched.
type StagingError struct {
	Op    string
	Batch common.Address
	Err   error
}

func (e *StagingError) Error() string {
	return fmt.Sprintf("%s: stage batch %s: %v", e.Op, e.Batch.Hex(), e.Err)
}

func (e *StagingError) Unwrap() error { return e.Err }

// DeliveryError means the transport failed to return a response.
type DeliveryError struct {
	Op    string
	Batch common.Address
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: call batch %s: %v", e.Op, e.Batch.Hex(), e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// DecodeError means the returned bytes do not match the declared schema.
// It always fails the entire batch; no partial results surface.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode batch response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MissingRecordError is raised only on the single-pool path, when the one
// requested record resolved to the zero sentinel. The bulk and discovery
// paths skip such slots silently instead.
type MissingRecordError struct {
	Pool common.Address
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("no data for pool %s", e.Pool.Hex())
}
