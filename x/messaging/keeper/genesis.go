package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/omega-labs/omega-chain/x/messaging/types"
)

func (k *Keeper) InitGenesis(ctx sdk.Context, gen *types.GenesisState) {
	for _, msg := range gen.Messages {
		key := bytesFromID(msg.ID)
		k.contentStore(ctx).Set(key, []byte(msg.Content))
		k.senderStore(ctx).Set(key, msg.SenderAddress().Bytes())
	}
	k.setNextID(ctx, uint64(len(gen.Messages)))
}

func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	msgs := make([]types.Message, 0)
	k.iterateMessages(ctx, func(id uint64, content string, sender common.Address) bool {
		msgs = append(msgs, types.NewMessage(id, sender, content))
		return true
	})
	return &types.GenesisState{Messages: msgs}
}
