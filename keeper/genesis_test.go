package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
	"github.com/provlabs/yieldrouter/utils/mocks"
)

func (s *TestSuite) TestGenesis_ExportImportRoundTrip() {
	alice := s.CreateAndFundAccount("alice", 300)
	bob := s.CreateAndFundAccount("bob", 1_000)
	s.deposit(alice, 100, 200)
	s.deposit(bob, 1_000, 0)
	s.Require().NoError(s.setPending(s.newStrategyAddr()))
	s.unlock()

	exported := s.k.ExportGenesis(s.ctx)
	s.Require().NoError(exported.Validate())
	s.Assert().Equal(types.LifecycleActive, exported.Lifecycle)
	s.Assert().Equal("1287", exported.Pool.String())
	s.Assert().Equal("1287", exported.TotalPoolShares.String())
	s.Require().Len(exported.Accounts, 2)
	s.Assert().Equal(s.newStrategyAddr().String(), exported.MigrationLock.PendingStrategy)

	env := mocks.NewYieldKeeper(s.T(), exported)
	reimported := env.Keeper.ExportGenesis(env.Ctx)
	s.Assert().Equal(exported.Params.String(), reimported.Params.String())
	s.Assert().Equal(exported.Lifecycle, reimported.Lifecycle)
	s.Assert().Equal(exported.Pool.String(), reimported.Pool.String())
	s.Assert().Equal(exported.TotalPoolShares.String(), reimported.TotalPoolShares.String())
	s.Assert().Equal(exported.MigrationLock, reimported.MigrationLock)
	s.Require().Len(reimported.Accounts, len(exported.Accounts))
	for i := range exported.Accounts {
		s.Assert().Equal(exported.Accounts[i].Address, reimported.Accounts[i].Address)
		s.Assert().Equal(exported.Accounts[i].PoolShares.String(), reimported.Accounts[i].PoolShares.String())
		s.Assert().Equal(exported.Accounts[i].TotalPrincipal().String(), reimported.Accounts[i].TotalPrincipal().String())
	}
}

func (s *TestSuite) TestGenesis_VestingSurvivesExport() {
	s.deposit(s.CreateAndFundAccount("alice", 300), 100, 200)
	s.vest()

	exported := s.k.ExportGenesis(s.ctx)
	s.Require().NoError(exported.Validate())
	s.Assert().Equal(types.LifecycleVesting, exported.Lifecycle)
	s.Assert().True(exported.Pool.IsZero())

	env := mocks.NewYieldKeeper(s.T(), exported)
	lc, err := env.Keeper.GetLifecycle(env.Ctx)
	s.Require().NoError(err)
	s.Assert().Equal(types.LifecycleVesting, lc)
}

func (s *TestSuite) TestGenesis_InvalidStatePanics() {
	tests := []struct {
		name   string
		mutate func(gs *types.GenesisState)
	}{
		{
			name:   "invalid owner",
			mutate: func(gs *types.GenesisState) { gs.Params.Owner = "bad" },
		},
		{
			name: "pool does not match principal",
			mutate: func(gs *types.GenesisState) {
				gs.Pool = sdkmath.NewInt(10)
			},
		},
		{
			name: "share supply does not match accounts",
			mutate: func(gs *types.GenesisState) {
				acc := types.NewDepositorAccount(sdk.AccAddress(padAddress("alice")))
				acc.PoolShares = sdkmath.NewInt(5)
				gs.Accounts = append(gs.Accounts, acc)
			},
		},
		{
			name:   "unknown lifecycle",
			mutate: func(gs *types.GenesisState) { gs.Lifecycle = types.Lifecycle(7) },
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			gs := types.DefaultGenesisState()
			tc.mutate(gs)
			s.Require().Panics(func() { s.k.InitGenesis(s.ctx, gs) })
		})
	}
}
