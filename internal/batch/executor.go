package batch

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// execute performs the single network round trip for a batch: an eth_call
// with no target address, so the node evaluates the contract deployment
// ephemerally and returns the constructor's result without committing
// anything. Retry policy belongs to the caller, not here.
//
// A transport failure is a DeliveryError. An empty result means the node
// accepted the call but could not stage the deployment, which is a
// StagingError; both carry the batch's representative address for diagnosis.
func execute(ctx context.Context, caller ethereum.ContractCaller, op string, batch common.Address, calldata []byte) ([]byte, error) {
	ret, err := caller.CallContract(ctx, ethereum.CallMsg{Data: calldata}, nil)
	if err != nil {
		return nil, &DeliveryError{Op: op, Batch: batch, Err: err}
	}
	if len(ret) == 0 {
		return nil, &StagingError{Op: op, Batch: batch, Err: errors.New("empty return data")}
	}
	return ret, nil
}
