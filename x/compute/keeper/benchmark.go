package keeper

import (
	"encoding/binary"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/omega-labs/omega-chain/x/compute/types"
)

// ComputeHash runs the benchmark: it hashes the fixed seed, then rehashes the
// result the requested number of times. Zero iterations yields the hash of the
// seed itself. Every completed run advances the call counter by one and emits
// a compute_completed event, so the chain of results is fully reproducible
// from the event log.
func (k *Keeper) ComputeHash(ctx sdk.Context, iterations uint64) (common.Hash, error) {
	hash := crypto.Keccak256([]byte(HashSeed))
	for i := uint64(0); i < iterations; i++ {
		hash = crypto.Keccak256(hash)
	}
	final := common.BytesToHash(hash)

	count := k.CallCount(ctx)
	k.setCallCount(ctx, count+1)

	ctx.EventManager().EmitEvent(types.NewComputeCompletedEvent(iterations, final))
	k.Logger(ctx).Info("benchmark run completed", "iterations", iterations, "final_hash", final.Hex())
	return final, nil
}

// CallCount returns the number of benchmark runs completed so far.
func (k *Keeper) CallCount(ctx sdk.Context) uint64 {
	bz := k.rootStore(ctx).Get(types.CallCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k *Keeper) setCallCount(ctx sdk.Context, count uint64) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, count)
	k.rootStore(ctx).Set(types.CallCountKey, buf)
}

func (k *Keeper) rootStore(ctx sdk.Context) storetypes.KVStore {
	return runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
}
