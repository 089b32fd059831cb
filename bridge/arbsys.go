package bridge

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

// RelayAddress is the fixed address of the settlement relay precompile. It is
// a platform constant, identical on every chain, and deliberately not
// configurable per deployment.
const RelayAddress = "0x0000000000000000000000000000000000000064"

// CallFn performs a state-mutating call into another contract and returns its
// output. gas caps the amount forwarded to the callee.
type CallFn func(addr common.Address, input []byte, gas uint64) ([]byte, error)

var (
	// sendTxToL1(address destination, bytes data) returns (uint256)
	sendTxToL1Selector = crypto.Keccak256([]byte("sendTxToL1(address,bytes)"))[:4]

	addressType, _ = abi.NewType("address", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)

	sendTxToL1Args   = abi.Arguments{{Type: addressType}, {Type: bytesType}}
	sendTxToL1Return = abi.Arguments{{Type: uint256Type}}
)

type precompileRelay struct {
	call     CallFn
	gasLimit uint64
}

// NewPrecompileRelay returns a Relay that forwards payloads through the
// platform relay precompile using the host's call capability.
func NewPrecompileRelay(call CallFn, gasLimit uint64) Relay {
	return &precompileRelay{call: call, gasLimit: gasLimit}
}

func (r *precompileRelay) SendToSettlement(recipient common.Address, payload []byte) (*big.Int, error) {
	args, err := sendTxToL1Args.Pack(recipient, payload)
	if err != nil {
		return nil, eris.Wrap(err, "failed to encode relay calldata")
	}
	input := make([]byte, 0, len(sendTxToL1Selector)+len(args))
	input = append(input, sendTxToL1Selector...)
	input = append(input, args...)

	out, err := r.call(common.HexToAddress(RelayAddress), input, r.gasLimit)
	if err != nil {
		log.Err(err).Str("recipient", recipient.Hex()).Msg("settlement relay call failed")
		return nil, err
	}

	vals, err := sendTxToL1Return.Unpack(out)
	if err != nil {
		return nil, eris.Wrap(err, "failed to decode relay ticket")
	}
	ticket, ok := vals[0].(*big.Int)
	if !ok {
		return nil, eris.New("relay returned a non-uint256 ticket")
	}
	log.Debug().Str("ticket", ticket.String()).Msg("relay accepted payload")
	return ticket, nil
}
