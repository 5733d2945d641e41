package batch

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// poolData mirrors one element of the response tuple array. Field names must
// line up with the components declared in poolDataArrayType.
type poolData struct {
	TokenA         common.Address
	TokenADecimals uint8
	TokenB         common.Address
	TokenBDecimals uint8
	Reserve0       *big.Int
	Reserve1       *big.Int
}

// decodedPool is one slot of a decoded response. found distinguishes a slot
// that carried data from the zero-token-A sentinel the contract writes for
// pools that do not exist or reverted during evaluation. The distinction is
// made here, once, so callers never have to compare addresses themselves.
type decodedPool struct {
	data  poolData
	found bool
}

// decodePools parses the raw return buffer as the six-field tuple array.
// A buffer that does not match the schema fails the whole batch.
func decodePools(op string, ret []byte) ([]decodedPool, error) {
	out, err := poolReturnArgs.Unpack(ret)
	if err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	if len(out) != 1 {
		return nil, &DecodeError{Op: op, Err: fmt.Errorf("unexpected value count %d", len(out))}
	}

	raw := *abi.ConvertType(out[0], new([]poolData)).(*[]poolData)

	decoded := make([]decodedPool, len(raw))
	for i, data := range raw {
		decoded[i] = decodedPool{
			data:  data,
			found: data.TokenA != (common.Address{}),
		}
	}
	return decoded, nil
}

// decodeAddresses parses the raw return buffer as a flat address array,
// preserving buffer order. Sentinel filtering is the caller's concern.
func decodeAddresses(op string, ret []byte) ([]common.Address, error) {
	out, err := pairsReturnArgs.Unpack(ret)
	if err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	if len(out) != 1 {
		return nil, &DecodeError{Op: op, Err: fmt.Errorf("unexpected value count %d", len(out))}
	}

	addresses, ok := out[0].([]common.Address)
	if !ok {
		return nil, &DecodeError{Op: op, Err: fmt.Errorf("unexpected element type %T", out[0])}
	}
	return addresses, nil
}
