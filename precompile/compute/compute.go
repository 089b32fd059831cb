package compute

import (
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"

	"github.com/omega-labs/omega-chain/config"
	"github.com/omega-labs/omega-chain/x/compute/keeper"
)

// ContractAddress is the address the compute benchmark contract is registered at.
const ContractAddress = "0x0000000000000000000000000000000000000101"

// Gas cost per function. computeHash charges per keccak round on top of the
// base cost, so the price tracks the work actually requested.
const (
	computeHashBaseGas  = 50_000
	computeHashPerRound = 36
	callCountGas        = 10_000
)

var (
	computeHashSelector = methodSelector("computeHash(uint256)")
	callCountSelector   = methodSelector("callCount()")

	uint256Type, _ = abi.NewType("uint256", "", nil)
	bytes32Type, _ = abi.NewType("bytes32", "", nil)

	uint256Args = abi.Arguments{{Type: uint256Type}}
	bytes32Args = abi.Arguments{{Type: bytes32Type}}
)

func methodSelector(sig string) [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(sig))[:4])
	return sel
}

// Contract exposes the keccak benchmark as a callable contract.
type Contract struct {
	keeper        *keeper.Keeper
	maxIterations uint64
}

func NewContract(k *keeper.Keeper, cfg config.OmegaConfig) *Contract {
	return &Contract{
		keeper:        k,
		maxIterations: cfg.ComputeMaxIterations,
	}
}

// Address returns the precompile address.
func (c *Contract) Address() common.Address {
	return common.HexToAddress(ContractAddress)
}

// RequiredGas returns the gas required to execute the call. For computeHash
// the cost scales with the requested iteration count.
func (c *Contract) RequiredGas(input []byte) uint64 {
	if len(input) < 4 {
		return 0
	}
	switch selectorOf(input) {
	case computeHashSelector:
		iterations, err := decodeIterations(input[4:])
		if err != nil {
			return computeHashBaseGas
		}
		return computeHashBaseGas + computeHashPerRound*iterations
	case callCountSelector:
		return callCountGas
	default:
		return 0
	}
}

// Run executes the contract. computeHash mutates the call counter, so it is
// rejected in read-only mode and its writes are applied atomically.
func (c *Contract) Run(ctx sdk.Context, input []byte, readOnly bool) ([]byte, error) {
	if len(input) < 4 {
		return nil, eris.New("calldata too short")
	}
	sel := selectorOf(input)
	args := input[4:]

	switch sel {
	case computeHashSelector:
		if readOnly {
			return nil, eris.New("computeHash is not callable in read-only mode")
		}
		return c.computeHash(ctx, args)
	case callCountSelector:
		return c.callCount(ctx)
	default:
		return nil, eris.Errorf("unknown function selector %#x", sel)
	}
}

func selectorOf(input []byte) [4]byte {
	var sel [4]byte
	copy(sel[:], input[:4])
	return sel
}

func (c *Contract) computeHash(ctx sdk.Context, args []byte) ([]byte, error) {
	iterations, err := decodeIterations(args)
	if err != nil {
		return nil, err
	}
	if iterations > c.maxIterations {
		return nil, eris.Errorf("iteration count %d exceeds the per-call limit of %d", iterations, c.maxIterations)
	}

	cacheCtx, write := ctx.CacheContext()
	final, err := c.keeper.ComputeHash(cacheCtx, iterations)
	if err != nil {
		return nil, err
	}
	write()

	log.Debug().Uint64("iterations", iterations).Str("final_hash", final.Hex()).Msg("benchmark run completed")
	return bytes32Args.Pack(final)
}

func (c *Contract) callCount(ctx sdk.Context) ([]byte, error) {
	count := c.keeper.CallCount(ctx)
	return uint256Args.Pack(new(big.Int).SetUint64(count))
}

func decodeIterations(args []byte) (uint64, error) {
	vals, err := uint256Args.Unpack(args)
	if err != nil {
		return 0, eris.Wrap(err, "failed to decode iteration count")
	}
	iterations, ok := vals[0].(*big.Int)
	if !ok {
		return 0, eris.New("iteration count is not a uint256")
	}
	if !iterations.IsUint64() {
		return 0, eris.Errorf("iteration count %s is out of range", iterations)
	}
	return iterations.Uint64(), nil
}
