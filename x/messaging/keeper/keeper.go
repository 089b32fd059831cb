package keeper

import (
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/omega-labs/omega-chain/x/messaging/types"
)

// Keeper owns the append-only message log. All access to the log goes through
// it, and ids are allocated here and nowhere else.
type Keeper struct {
	storeService store.KVStoreService
}

func NewKeeper(ss store.KVStoreService) *Keeper {
	return &Keeper{storeService: ss}
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}
