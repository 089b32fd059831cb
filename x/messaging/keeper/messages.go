package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/omega-labs/omega-chain/x/messaging/types"
)

// SubmitMessage appends content to the message log and returns the assigned
// id. Ids are dense and strictly increasing: the first message gets id 0, and
// every successful submission advances the counter by exactly one. Rejected
// submissions leave the store untouched.
func (k *Keeper) SubmitMessage(ctx sdk.Context, sender common.Address, content string) (uint64, error) {
	if content == "" {
		return 0, types.ErrEmptyMessage
	}

	id := k.nextID(ctx)
	key := bytesFromID(id)
	k.contentStore(ctx).Set(key, []byte(content))
	k.senderStore(ctx).Set(key, sender.Bytes())
	k.setNextID(ctx, id+1)

	ctx.EventManager().EmitEvent(types.NewMessageSentEvent(id, sender, content))
	k.Logger(ctx).Info("stored message", "id", id, "sender", sender.Hex())
	return id, nil
}

// MessageContent returns the content of the message with the given id.
func (k *Keeper) MessageContent(ctx sdk.Context, id uint64) (string, error) {
	if id >= k.nextID(ctx) {
		return "", types.ErrMessageNotFound.Wrapf("id %d", id)
	}
	return string(k.contentStore(ctx).Get(bytesFromID(id))), nil
}

// MessageSender returns the account that submitted the message with the given id.
func (k *Keeper) MessageSender(ctx sdk.Context, id uint64) (common.Address, error) {
	if id >= k.nextID(ctx) {
		return common.Address{}, types.ErrMessageNotFound.Wrapf("id %d", id)
	}
	return common.BytesToAddress(k.senderStore(ctx).Get(bytesFromID(id))), nil
}

// MessageCount returns the number of messages stored so far. The returned
// value is also the next id that will be assigned.
func (k *Keeper) MessageCount(ctx sdk.Context) uint64 {
	return k.nextID(ctx)
}
