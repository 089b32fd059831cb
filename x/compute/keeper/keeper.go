package keeper

import (
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/omega-labs/omega-chain/x/compute/types"
)

// HashSeed is the fixed input the benchmark hash chain starts from. Changing
// it invalidates every previously recorded final hash.
const HashSeed = "omega-compute-bench"

// Keeper runs the keccak benchmark and tracks how many runs have completed.
type Keeper struct {
	storeService store.KVStoreService
}

func NewKeeper(ss store.KVStoreService) *Keeper {
	return &Keeper{storeService: ss}
}

func (k *Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}
