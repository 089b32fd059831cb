package keeper

import (
	"encoding/binary"

	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/omega-labs/omega-chain/x/messaging/types"
)

// The message log is stored as two co-indexed tables keyed by the 8-byte
// big-endian id, plus a single counter key. Ids are dense, so the tables form
// a positional log rather than a general key/value map: an id is defined iff
// it is below the counter.

func (k *Keeper) rootStore(ctx sdk.Context) storetypes.KVStore {
	return runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
}

// contentStore retrieves the id -> content table.
func (k *Keeper) contentStore(ctx sdk.Context) prefix.Store {
	return prefix.NewStore(k.rootStore(ctx), types.MessageContentPrefix)
}

// senderStore retrieves the id -> submitting address table.
func (k *Keeper) senderStore(ctx sdk.Context) prefix.Store {
	return prefix.NewStore(k.rootStore(ctx), types.MessageSenderPrefix)
}

// nextID returns the next id to be assigned, which equals the number of
// messages stored so far.
func (k *Keeper) nextID(ctx sdk.Context) uint64 {
	bz := k.rootStore(ctx).Get(types.MessageCountKey)
	if bz == nil {
		return 0
	}
	return idFromBytes(bz)
}

func (k *Keeper) setNextID(ctx sdk.Context, id uint64) {
	k.rootStore(ctx).Set(types.MessageCountKey, bytesFromID(id))
}

// iterateMessages iterates over the whole log in id order, calling fn for each
// message. If fn returns false, the iteration stops.
func (k *Keeper) iterateMessages(ctx sdk.Context, fn func(id uint64, content string, sender common.Address) bool) {
	contents := k.contentStore(ctx)
	senders := k.senderStore(ctx)
	it := contents.Iterator(nil, nil)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		id := idFromBytes(it.Key())
		sender := common.BytesToAddress(senders.Get(it.Key()))
		if keepGoing := fn(id, string(it.Value()), sender); !keepGoing {
			break
		}
	}
}

func idFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

func bytesFromID(id uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id)
	return buf
}
