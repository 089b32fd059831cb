package bridge_test

import (
	"errors"
	"math/big"
	"testing"

	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	cmttime "github.com/cometbft/cometbft/types/time"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"gotest.tools/v3/assert"

	"github.com/omega-labs/omega-chain/bridge"
	"github.com/omega-labs/omega-chain/x/messaging/keeper"
	"github.com/omega-labs/omega-chain/x/messaging/types"
)

type stubFlusher struct {
	commits int
	err     error
}

func (f *stubFlusher) CommitState() error {
	f.commits++
	return f.err
}

type stubRelay struct {
	ticket *big.Int
	err    error

	calls           int
	lastRecipient   common.Address
	lastPayload     []byte
	commitsAtCall   int
	observedFlusher *stubFlusher
}

func (r *stubRelay) SendToSettlement(recipient common.Address, payload []byte) (*big.Int, error) {
	r.calls++
	r.lastRecipient = recipient
	r.lastPayload = payload
	if r.observedFlusher != nil {
		r.commitsAtCall = r.observedFlusher.commits
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.ticket, nil
}

func setup(t *testing.T) (sdk.Context, *keeper.Keeper, *bridge.Gateway) {
	t.Helper()
	key := storetypes.NewKVStoreKey(types.ModuleName)
	testCtx := testutil.DefaultContextWithDB(t, key, storetypes.NewTransientStoreKey("transient_test"))
	ctx := testCtx.Ctx.WithBlockHeader(cmtproto.Header{Time: cmttime.Now()})
	k := keeper.NewKeeper(runtime.NewKVStoreService(key))
	return ctx, k, bridge.NewGateway(k)
}

func TestForwardToSettlement(t *testing.T) {
	ctx, k, gw := setup(t)
	caller := common.HexToAddress("0xeF68bBDa508adF1FC4589f8620DaD9EDBBFfA0B0")

	id, err := k.SubmitMessage(ctx, caller, "hello")
	assert.NilError(t, err)

	flush := &stubFlusher{}
	rly := &stubRelay{ticket: big.NewInt(42), observedFlusher: flush}

	ticket, err := gw.ForwardToSettlement(ctx, rly, flush, caller, id)
	assert.NilError(t, err)
	assert.Equal(t, ticket, common.BytesToHash(big.NewInt(42).Bytes()))

	// the relay received the raw content bytes, addressed to the caller
	assert.Equal(t, rly.lastRecipient, caller)
	assert.Equal(t, string(rly.lastPayload), "hello")

	// pending state was committed exactly once, before control left the contract
	assert.Equal(t, flush.commits, 1)
	assert.Equal(t, rly.commitsAtCall, 1)

	// a message_bridged event carries the id and the ticket
	var found bool
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type != types.EventTypeMessageBridged {
			continue
		}
		found = true
		for _, attr := range ev.Attributes {
			switch attr.Key {
			case types.AttributeKeyID:
				assert.Equal(t, attr.Value, "0")
			case types.AttributeKeyTicket:
				assert.Equal(t, attr.Value, ticket.Hex())
			}
		}
	}
	assert.Equal(t, found, true)
}

func TestForwardToSettlement_NotFound(t *testing.T) {
	ctx, _, gw := setup(t)
	caller := common.HexToAddress("0xeF68bBDa508adF1FC4589f8620DaD9EDBBFfA0B0")

	flush := &stubFlusher{}
	rly := &stubRelay{ticket: big.NewInt(1)}

	_, err := gw.ForwardToSettlement(ctx, rly, flush, caller, 5)
	assert.ErrorIs(t, err, types.ErrMessageNotFound)

	// existence is checked before any external work: no flush, no relay call
	assert.Equal(t, flush.commits, 0)
	assert.Equal(t, rly.calls, 0)
}

func TestForwardToSettlement_RelayFailure(t *testing.T) {
	ctx, k, gw := setup(t)
	caller := common.HexToAddress("0xeF68bBDa508adF1FC4589f8620DaD9EDBBFfA0B0")

	id, err := k.SubmitMessage(ctx, caller, "hello")
	assert.NilError(t, err)

	flush := &stubFlusher{}
	failing := &stubRelay{err: errors.New("relay unavailable")}

	_, err = gw.ForwardToSettlement(ctx, failing, flush, caller, id)
	assert.ErrorIs(t, err, types.ErrBridgeFailed)

	// the message is untouched and still bridgeable
	content, err := k.MessageContent(ctx, id)
	assert.NilError(t, err)
	assert.Equal(t, content, "hello")

	working := &stubRelay{ticket: big.NewInt(7)}
	ticket, err := gw.ForwardToSettlement(ctx, working, flush, caller, id)
	assert.NilError(t, err)
	assert.Equal(t, ticket, common.BytesToHash(big.NewInt(7).Bytes()))
}

func TestForwardToSettlement_Repeatable(t *testing.T) {
	ctx, k, gw := setup(t)
	caller := common.HexToAddress("0xeF68bBDa508adF1FC4589f8620DaD9EDBBFfA0B0")

	id, err := k.SubmitMessage(ctx, caller, "hello")
	assert.NilError(t, err)

	// bridging is not idempotency-guarded: the same id may be forwarded any
	// number of times
	flush := &stubFlusher{}
	rly := &stubRelay{ticket: big.NewInt(9)}
	for i := 0; i < 3; i++ {
		_, err := gw.ForwardToSettlement(ctx, rly, flush, caller, id)
		assert.NilError(t, err)
	}
	assert.Equal(t, rly.calls, 3)
}

func TestForwardToSettlement_FlushFailure(t *testing.T) {
	ctx, k, gw := setup(t)
	caller := common.HexToAddress("0xeF68bBDa508adF1FC4589f8620DaD9EDBBFfA0B0")

	id, err := k.SubmitMessage(ctx, caller, "hello")
	assert.NilError(t, err)

	flush := &stubFlusher{err: errors.New("journal write failed")}
	rly := &stubRelay{ticket: big.NewInt(1), observedFlusher: flush}

	_, err = gw.ForwardToSettlement(ctx, rly, flush, caller, id)
	assert.ErrorContains(t, err, "failed to commit state before relay call")
	// the relay must never be reached when the barrier fails
	assert.Equal(t, rly.calls, 0)
}
