package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/omega-labs/omega-chain/x/compute/types"
)

func (k *Keeper) InitGenesis(ctx sdk.Context, gs *types.GenesisState) {
	k.setCallCount(ctx, gs.CallCount)
}

func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{CallCount: k.CallCount(ctx)}
}
