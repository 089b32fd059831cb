package keeper_test

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	cmttime "github.com/cometbft/cometbft/types/time"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/omega-labs/omega-chain/x/compute/keeper"
	"github.com/omega-labs/omega-chain/x/compute/types"
)

type KeeperTestSuite struct {
	suite.Suite
	ctx    sdk.Context
	keeper *keeper.Keeper
}

func (s *KeeperTestSuite) SetupTest() {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	testCtx := testutil.DefaultContextWithDB(s.T(), key, storetypes.NewTransientStoreKey("transient_test"))
	s.ctx = testCtx.Ctx.WithBlockHeader(cmtproto.Header{Time: cmttime.Now()})
	s.keeper = keeper.NewKeeper(runtime.NewKVStoreService(key))
}

// expectedHash chains keccak independently of the keeper so the test does not
// share the implementation it is checking.
func expectedHash(iterations uint64) common.Hash {
	h := crypto.Keccak256([]byte(keeper.HashSeed))
	for i := uint64(0); i < iterations; i++ {
		h = crypto.Keccak256(h)
	}
	return common.BytesToHash(h)
}

func (s *KeeperTestSuite) TestComputeHash_Deterministic() {
	for _, iterations := range []uint64{0, 1, 2, 10, 100} {
		got, err := s.keeper.ComputeHash(s.ctx, iterations)
		s.Require().NoError(err)
		s.Require().Equal(expectedHash(iterations), got, "iterations=%d", iterations)
	}

	// zero iterations is the hash of the seed itself
	got, err := s.keeper.ComputeHash(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Equal(common.BytesToHash(crypto.Keccak256([]byte(keeper.HashSeed))), got)
}

func (s *KeeperTestSuite) TestCallCount() {
	s.Require().Equal(uint64(0), s.keeper.CallCount(s.ctx))

	for i := 1; i <= 3; i++ {
		_, err := s.keeper.ComputeHash(s.ctx, 5)
		s.Require().NoError(err)
		s.Require().Equal(uint64(i), s.keeper.CallCount(s.ctx))
	}
}

func (s *KeeperTestSuite) TestComputeHash_EmitsEvent() {
	final, err := s.keeper.ComputeHash(s.ctx, 7)
	s.Require().NoError(err)

	var found bool
	for _, ev := range s.ctx.EventManager().Events() {
		if ev.Type != types.EventTypeComputeCompleted {
			continue
		}
		found = true
		for _, attr := range ev.Attributes {
			switch attr.Key {
			case types.AttributeKeyIterations:
				s.Require().Equal("7", attr.Value)
			case types.AttributeKeyFinalHash:
				s.Require().Equal(final.Hex(), attr.Value)
			}
		}
	}
	s.Require().True(found)
}

func (s *KeeperTestSuite) TestGenesisRoundTrip() {
	for i := 0; i < 4; i++ {
		_, err := s.keeper.ComputeHash(s.ctx, 1)
		s.Require().NoError(err)
	}

	exported := s.keeper.ExportGenesis(s.ctx)
	s.Require().Equal(uint64(4), exported.CallCount)

	// import into a fresh store and pick up where the export left off
	key := storetypes.NewKVStoreKey(types.ModuleName)
	testCtx := testutil.DefaultContextWithDB(s.T(), key, storetypes.NewTransientStoreKey("transient_test"))
	ctx := testCtx.Ctx.WithBlockHeader(cmtproto.Header{Time: cmttime.Now()})
	restored := keeper.NewKeeper(runtime.NewKVStoreService(key))

	restored.InitGenesis(ctx, exported)
	s.Require().Equal(uint64(4), restored.CallCount(ctx))

	_, err := restored.ComputeHash(ctx, 1)
	s.Require().NoError(err)
	s.Require().Equal(uint64(5), restored.CallCount(ctx))
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}
