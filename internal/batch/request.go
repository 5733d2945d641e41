package batch

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// packPairsQuery builds the deploy calldata for one discovery page: creation
// bytecode followed by the ABI-encoded (start, step, factory) constructor
// arguments. Deterministic for identical inputs.
func packPairsQuery(start, step *big.Int, factory common.Address) ([]byte, error) {
	args, err := pairsQueryArgs.Pack(start, step, factory)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, pairsBatchBin...), args...), nil
}

// packPoolQuery builds the deploy calldata for a bulk pool data lookup over
// the given target addresses.
func packPoolQuery(targets []common.Address) ([]byte, error) {
	args, err := poolQueryArgs.Pack(targets)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, poolDataBatchBin...), args...), nil
}
