package bridge

import (
	"math/big"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rotisserie/eris"

	"github.com/omega-labs/omega-chain/x/messaging/keeper"
	"github.com/omega-labs/omega-chain/x/messaging/types"
)

// Relay enqueues a payload for execution on the settlement layer. The relay is
// platform code outside this contract's trust boundary: calling it may hand
// control back into the contract before it returns.
type Relay interface {
	// SendToSettlement forwards payload to recipient on the settlement layer
	// and returns the opaque ticket assigned by the relay.
	SendToSettlement(recipient common.Address, payload []byte) (*big.Int, error)
}

// Flusher durably applies every pending state write of the current invocation.
// The EVM host's state database satisfies this.
type Flusher interface {
	CommitState() error
}

// Gateway forwards stored messages to the settlement layer.
type Gateway struct {
	keeper *keeper.Keeper
}

func NewGateway(k *keeper.Keeper) *Gateway {
	return &Gateway{keeper: k}
}

// ForwardToSettlement sends the content of message id to the settlement layer,
// addressed to recipient, and returns the relay ticket as a 32-byte hash.
//
// The message must exist before any external work is attempted; a missing id
// is reported without touching the relay. Between the content read and the
// relay call sits the commit barrier: every pending write of this invocation
// is flushed, because the relay may re-enter the contract and a re-entrant
// read must observe fully applied state, never a half-flushed view. A failed
// relay call is surfaced as ErrBridgeFailed and leaves nothing behind beyond
// what the barrier already committed.
func (g *Gateway) ForwardToSettlement(
	ctx sdk.Context,
	rly Relay,
	flush Flusher,
	recipient common.Address,
	id uint64,
) (common.Hash, error) {
	content, err := g.keeper.MessageContent(ctx, id)
	if err != nil {
		return common.Hash{}, err
	}

	// Commit barrier: control is about to leave the contract.
	if err := flush.CommitState(); err != nil {
		return common.Hash{}, eris.Wrap(err, "failed to commit state before relay call")
	}

	ticket, err := rly.SendToSettlement(recipient, []byte(content))
	if err != nil {
		return common.Hash{}, types.ErrBridgeFailed.Wrapf("%v", err)
	}

	ticketHash := common.BytesToHash(ticket.Bytes())
	ctx.EventManager().EmitEvent(types.NewMessageBridgedEvent(id, ticketHash))
	g.logger(ctx).Info("bridged message",
		"id", id,
		"recipient", recipient.Hex(),
		"ticket", ticketHash.Hex(),
	)
	return ticketHash, nil
}

func (g *Gateway) logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "bridge")
}
