package messaging

import (
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"

	"github.com/omega-labs/omega-chain/bridge"
	"github.com/omega-labs/omega-chain/config"
	"github.com/omega-labs/omega-chain/x/messaging/keeper"
	"github.com/omega-labs/omega-chain/x/messaging/types"
)

// ContractAddress is the address the messaging contract is registered at.
const ContractAddress = "0x0000000000000000000000000000000000000100"

// Host is the execution environment surface the contract needs from the EVM:
// the identity of the calling account, an outbound call capability, and a way
// to force pending state writes to be durably applied before control leaves
// the contract.
type Host interface {
	Caller() common.Address
	Call(addr common.Address, input []byte, gas uint64) ([]byte, error)
	CommitState() error
}

// Gas cost per function.
const (
	sendMessageGas   = 100_000 // state write + message storage
	getMessageGas    = 15_000  // state read
	getSenderGas     = 10_000  // state read
	messageCountGas  = 10_000  // state read
	bridgeMessageGas = 200_000 // state read + cross-contract call
)

var (
	sendMessageSelector   = methodSelector("sendMessage(string)")
	getMessageSelector    = methodSelector("getMessage(uint256)")
	getSenderSelector     = methodSelector("getSender(uint256)")
	messageCountSelector  = methodSelector("messageCount()")
	bridgeMessageSelector = methodSelector("bridgeMessage(uint256)")

	stringType, _  = abi.NewType("string", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)
	addressType, _ = abi.NewType("address", "", nil)

	stringArgs  = abi.Arguments{{Type: stringType}}
	uint256Args = abi.Arguments{{Type: uint256Type}}
	addressArgs = abi.Arguments{{Type: addressType}}
)

func methodSelector(sig string) [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(sig))[:4])
	return sel
}

// Contract is the externally callable surface of the message registry. It
// validates calldata, dispatches into the message store and the bridge
// gateway, and translates failures into the registered messaging errors.
type Contract struct {
	keeper        *keeper.Keeper
	gateway       *bridge.Gateway
	relayGasLimit uint64
}

func NewContract(k *keeper.Keeper, gw *bridge.Gateway, cfg config.OmegaConfig) *Contract {
	return &Contract{
		keeper:        k,
		gateway:       gw,
		relayGasLimit: cfg.RelayGasLimit,
	}
}

// Address returns the precompile address.
func (c *Contract) Address() common.Address {
	return common.HexToAddress(ContractAddress)
}

// RequiredGas returns the gas required to execute the call.
func (c *Contract) RequiredGas(input []byte) uint64 {
	if len(input) < 4 {
		return 0
	}
	switch selectorOf(input) {
	case sendMessageSelector:
		return sendMessageGas
	case getMessageSelector:
		return getMessageGas
	case getSenderSelector:
		return getSenderGas
	case messageCountSelector:
		return messageCountGas
	case bridgeMessageSelector:
		return bridgeMessageGas
	default:
		return 0
	}
}

// Run executes the contract. Every invocation is atomic: state mutations are
// applied only if the selected operation succeeds, and a failed operation
// leaves no partial writes behind.
func (c *Contract) Run(ctx sdk.Context, host Host, input []byte, readOnly bool) ([]byte, error) {
	if len(input) < 4 {
		return nil, eris.New("calldata too short")
	}
	sel := selectorOf(input)
	args := input[4:]

	switch sel {
	case sendMessageSelector:
		if readOnly {
			return nil, eris.New("sendMessage is not callable in read-only mode")
		}
		return c.sendMessage(ctx, host.Caller(), args)
	case getMessageSelector:
		return c.getMessage(ctx, args)
	case getSenderSelector:
		return c.getSender(ctx, args)
	case messageCountSelector:
		return c.messageCount(ctx)
	case bridgeMessageSelector:
		if readOnly {
			return nil, eris.New("bridgeMessage is not callable in read-only mode")
		}
		return c.bridgeMessage(ctx, host, args)
	default:
		return nil, eris.Errorf("unknown function selector %#x", sel)
	}
}

func selectorOf(input []byte) [4]byte {
	var sel [4]byte
	copy(sel[:], input[:4])
	return sel
}

// sendMessage stores a new message and returns the assigned id.
func (c *Contract) sendMessage(ctx sdk.Context, caller common.Address, args []byte) ([]byte, error) {
	vals, err := stringArgs.Unpack(args)
	if err != nil {
		return nil, eris.Wrap(err, "failed to decode message content")
	}
	content, ok := vals[0].(string)
	if !ok {
		return nil, eris.New("message content is not a string")
	}

	cacheCtx, write := ctx.CacheContext()
	id, err := c.keeper.SubmitMessage(cacheCtx, caller, content)
	if err != nil {
		return nil, err
	}
	write()

	log.Debug().Uint64("id", id).Str("sender", caller.Hex()).Msg("message stored")
	return uint256Args.Pack(new(big.Int).SetUint64(id))
}

// getMessage returns the content of a stored message.
func (c *Contract) getMessage(ctx sdk.Context, args []byte) ([]byte, error) {
	id, err := c.decodeID(args)
	if err != nil {
		return nil, err
	}
	content, err := c.keeper.MessageContent(ctx, id)
	if err != nil {
		return nil, err
	}
	return stringArgs.Pack(content)
}

// getSender returns the account that stored a message.
func (c *Contract) getSender(ctx sdk.Context, args []byte) ([]byte, error) {
	id, err := c.decodeID(args)
	if err != nil {
		return nil, err
	}
	sender, err := c.keeper.MessageSender(ctx, id)
	if err != nil {
		return nil, err
	}
	return addressArgs.Pack(sender)
}

// messageCount returns the total number of messages stored.
func (c *Contract) messageCount(ctx sdk.Context) ([]byte, error) {
	count := c.keeper.MessageCount(ctx)
	return uint256Args.Pack(new(big.Int).SetUint64(count))
}

// bridgeMessage forwards a stored message to the settlement layer, addressed
// to the calling account. The relay call is routed through the gateway, which
// commits pending state before ceding control to the relay.
func (c *Contract) bridgeMessage(ctx sdk.Context, host Host, args []byte) ([]byte, error) {
	id, err := c.decodeID(args)
	if err != nil {
		return nil, err
	}

	rly := bridge.NewPrecompileRelay(host.Call, c.relayGasLimit)
	ticket, err := c.gateway.ForwardToSettlement(ctx, rly, host, host.Caller(), id)
	if err != nil {
		return nil, err
	}

	log.Debug().Uint64("id", id).Str("ticket", ticket.Hex()).Msg("message bridged")
	return []byte{}, nil
}

func (c *Contract) decodeID(args []byte) (uint64, error) {
	vals, err := uint256Args.Unpack(args)
	if err != nil {
		return 0, eris.Wrap(err, "failed to decode message id")
	}
	idBig, ok := vals[0].(*big.Int)
	if !ok {
		return 0, eris.New("message id is not a uint256")
	}
	if !idBig.IsUint64() {
		// ids are assigned densely from 0; anything beyond uint64 cannot exist
		return 0, types.ErrMessageNotFound.Wrapf("id %s", idBig)
	}
	return idBig.Uint64(), nil
}
