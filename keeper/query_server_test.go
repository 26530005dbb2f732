package keeper_test

import (
	"time"

	"google.golang.org/grpc/codes"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkquery "github.com/cosmos/cosmos-sdk/types/query"

	"github.com/provlabs/yieldrouter/keeper"
	"github.com/provlabs/yieldrouter/types"
	"github.com/provlabs/yieldrouter/utils/query"
)

func (s *TestSuite) queryServer() types.QueryServer {
	return keeper.NewQueryServer(s.k)
}

func (s *TestSuite) assertIntEqual(expected, actual sdkmath.Int, msg string) {
	s.Assert().Equal(expected.String(), actual.String(), msg)
}

func (s *TestSuite) TestQueryParams() {
	ep := query.Endpoint[types.QueryParamsRequest, types.QueryParamsResponse]{
		Name:  "Params",
		Query: s.queryServer().Params,
		Compare: func(expected, actual *types.QueryParamsResponse) {
			s.Assert().Equal(expected.Params.String(), actual.Params.String())
			s.Assert().Equal(expected.Params.FeeSchedule.Percentages, actual.Params.FeeSchedule.Percentages)
		},
	}

	expected := types.DefaultParams()
	expected.Owner = s.ownerAddr.String()
	expected.TreasuryWallet = s.treasuryAddr.String()
	expected.CommunityWallet = s.communityAddr.String()

	tests := []query.Case[types.QueryParamsRequest, types.QueryParamsResponse]{
		{
			Name:     "genesis params",
			Req:      &types.QueryParamsRequest{},
			Expected: &types.QueryParamsResponse{Params: expected},
		},
		{
			Name: "nil request",
			Code: codes.InvalidArgument,
		},
	}
	for _, tc := range tests {
		s.Run(tc.Name, func() { query.Run(s, ep, tc) })
	}
}

func (s *TestSuite) TestQueryPoolState() {
	ep := query.Endpoint[types.QueryPoolStateRequest, types.QueryPoolStateResponse]{
		Name:  "PoolState",
		Query: s.queryServer().PoolState,
		Compare: func(expected, actual *types.QueryPoolStateResponse) {
			s.Assert().Equal(expected.Lifecycle, actual.Lifecycle, "lifecycle")
			s.assertIntEqual(expected.Pool, actual.Pool, "pool")
			s.assertIntEqual(expected.TotalPoolShares, actual.TotalPoolShares, "total pool shares")
			s.assertIntEqual(expected.CustodyBalance, actual.CustodyBalance, "custody balance")
		},
	}

	tests := []query.Case[types.QueryPoolStateRequest, types.QueryPoolStateResponse]{
		{
			Name: "empty ledger",
			Req:  &types.QueryPoolStateRequest{},
			Expected: &types.QueryPoolStateResponse{
				Lifecycle:       types.LifecycleActive,
				Pool:            sdkmath.ZeroInt(),
				TotalPoolShares: sdkmath.ZeroInt(),
				CustodyBalance:  sdkmath.ZeroInt(),
			},
		},
		{
			Name: "after a deposit",
			Setup: func() {
				s.deposit(s.CreateAndFundAccount("alice", 300), 100, 200)
			},
			Req: &types.QueryPoolStateRequest{},
			Expected: &types.QueryPoolStateResponse{
				Lifecycle:       types.LifecycleActive,
				Pool:            sdkmath.NewInt(297),
				TotalPoolShares: sdkmath.NewInt(297),
				CustodyBalance:  sdkmath.ZeroInt(),
			},
		},
		{
			Name: "vesting",
			Setup: func() {
				s.deposit(s.CreateAndFundAccount("alice", 300), 100, 200)
				s.vest()
			},
			Req: &types.QueryPoolStateRequest{},
			Expected: &types.QueryPoolStateResponse{
				Lifecycle:       types.LifecycleVesting,
				Pool:            sdkmath.ZeroInt(),
				TotalPoolShares: sdkmath.NewInt(297),
				CustodyBalance:  sdkmath.NewInt(297),
			},
		},
		{
			Name: "nil request",
			Code: codes.InvalidArgument,
		},
	}
	for _, tc := range tests {
		s.Run(tc.Name, func() { query.Run(s, ep, tc) })
	}
}

func (s *TestSuite) TestQueryDepositor() {
	alice := sdk.AccAddress(padAddress("alice"))
	ep := query.Endpoint[types.QueryDepositorRequest, types.QueryDepositorResponse]{
		Name:  "Depositor",
		Query: s.queryServer().Depositor,
		Compare: func(expected, actual *types.QueryDepositorResponse) {
			s.Assert().Equal(expected.Account.Address, actual.Account.Address, "address")
			s.assertIntEqual(expected.Account.EarnPrincipal, actual.Account.EarnPrincipal, "earn principal")
			s.assertIntEqual(expected.Account.VaultPrincipal, actual.Account.VaultPrincipal, "vault principal")
			s.assertIntEqual(expected.Account.PoolShares, actual.Account.PoolShares, "pool shares")
			s.assertIntEqual(expected.EarnDepositBalance, actual.EarnDepositBalance, "earn deposit balance")
			s.assertIntEqual(expected.VaultDepositBalance, actual.VaultDepositBalance, "vault deposit balance")
			s.assertIntEqual(expected.SharesValue, actual.SharesValue, "shares value")
		},
	}

	account := func(earn, vault, shares int64) types.DepositorAccount {
		return types.DepositorAccount{
			Address:        alice.String(),
			EarnPrincipal:  sdkmath.NewInt(earn),
			VaultPrincipal: sdkmath.NewInt(vault),
			PoolShares:     sdkmath.NewInt(shares),
		}
	}

	tests := []query.Case[types.QueryDepositorRequest, types.QueryDepositorResponse]{
		{
			Name: "active depositor",
			Setup: func() {
				s.deposit(s.CreateAndFundAccount("alice", 300), 100, 200)
			},
			Req: &types.QueryDepositorRequest{Address: alice.String()},
			Expected: &types.QueryDepositorResponse{
				Account:             account(99, 198, 297),
				EarnDepositBalance:  sdkmath.NewInt(99),
				VaultDepositBalance: sdkmath.NewInt(198),
				SharesValue:         sdkmath.ZeroInt(),
			},
		},
		{
			Name: "active depositor ignores custody dust",
			Setup: func() {
				s.deposit(s.CreateAndFundAccount("alice", 300), 100, 200)
				s.fund(s.custody(), sdkmath.NewInt(50))
			},
			Req: &types.QueryDepositorRequest{Address: alice.String()},
			Expected: &types.QueryDepositorResponse{
				Account:             account(99, 198, 297),
				EarnDepositBalance:  sdkmath.NewInt(99),
				VaultDepositBalance: sdkmath.NewInt(198),
				SharesValue:         sdkmath.ZeroInt(),
			},
		},
		{
			Name: "vesting depositor",
			Setup: func() {
				s.deposit(s.CreateAndFundAccount("alice", 300), 100, 200)
				s.vest()
			},
			Req: &types.QueryDepositorRequest{Address: alice.String()},
			Expected: &types.QueryDepositorResponse{
				Account:             account(99, 198, 297),
				EarnDepositBalance:  sdkmath.ZeroInt(),
				VaultDepositBalance: sdkmath.ZeroInt(),
				SharesValue:         sdkmath.NewInt(297),
			},
		},
		{
			Name:        "unknown depositor",
			Req:         &types.QueryDepositorRequest{Address: alice.String()},
			Code:        codes.NotFound,
			ErrContains: "not found",
		},
		{
			Name: "invalid address",
			Req:  &types.QueryDepositorRequest{Address: "nope"},
			Code: codes.InvalidArgument,
		},
		{
			Name: "nil request",
			Code: codes.InvalidArgument,
		},
	}
	for _, tc := range tests {
		s.Run(tc.Name, func() { query.Run(s, ep, tc) })
	}
}

func (s *TestSuite) TestQueryDepositors() {
	for _, name := range []string{"alice", "bob", "carol"} {
		s.deposit(s.CreateAndFundAccount(name, 1_000), 500, 500)
	}

	resp, err := s.queryServer().Depositors(s.ctx, &types.QueryDepositorsRequest{
		Pagination: &sdkquery.PageRequest{Limit: 2, CountTotal: true},
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Accounts, 2)
	s.Require().NotNil(resp.Pagination)
	s.Assert().Equal(uint64(3), resp.Pagination.Total)
	s.Require().NotEmpty(resp.Pagination.NextKey)

	next, err := s.queryServer().Depositors(s.ctx, &types.QueryDepositorsRequest{
		Pagination: &sdkquery.PageRequest{Key: resp.Pagination.NextKey},
	})
	s.Require().NoError(err)
	s.Require().Len(next.Accounts, 1)

	seen := map[string]bool{}
	for _, acc := range append(resp.Accounts, next.Accounts...) {
		seen[acc.Address] = true
		s.Assert().Equal("990", acc.PoolShares.String(), "shares of %s", acc.Address)
	}
	s.Assert().Len(seen, 3)

	_, err = s.queryServer().Depositors(s.ctx, nil)
	s.Require().Error(err)
}

func (s *TestSuite) TestQueryMigrationLock() {
	ep := query.Endpoint[types.QueryMigrationLockRequest, types.QueryMigrationLockResponse]{
		Name:  "MigrationLock",
		Query: s.queryServer().MigrationLock,
	}
	target := s.newStrategyAddr()

	tests := []query.Case[types.QueryMigrationLockRequest, types.QueryMigrationLockResponse]{
		{
			Name:     "idle",
			Req:      &types.QueryMigrationLockRequest{},
			Expected: &types.QueryMigrationLockResponse{Phase: "idle"},
		},
		{
			Name: "armed but not yet open",
			Setup: func() {
				s.Require().NoError(s.setPending(target))
				s.unlock()
			},
			Req: &types.QueryMigrationLockRequest{},
			Expected: &types.QueryMigrationLockResponse{
				Lock:  types.MigrationLock{PendingStrategy: target.String(), UnlockTime: s.ctx.BlockTime().Unix() + types.LockDuration},
				Phase: "unlocked",
			},
		},
		{
			Name: "open",
			Setup: func() {
				s.Require().NoError(s.setPending(target))
				s.unlock()
				s.advance(types.LockDuration * time.Second)
			},
			Req: &types.QueryMigrationLockRequest{},
			Expected: &types.QueryMigrationLockResponse{
				Lock:     types.MigrationLock{PendingStrategy: target.String(), UnlockTime: s.ctx.BlockTime().Unix() + types.LockDuration},
				Phase:    "unlocked",
				Unlocked: true,
			},
		},
	}
	for _, tc := range tests {
		s.Run(tc.Name, func() { query.Run(s, ep, tc) })
	}
}

func (s *TestSuite) TestQueryFeeQuote() {
	ep := query.Endpoint[types.QueryFeeQuoteRequest, types.QueryFeeQuoteResponse]{
		Name:  "FeeQuote",
		Query: s.queryServer().FeeQuote,
		Compare: func(expected, actual *types.QueryFeeQuoteResponse) {
			s.Assert().Equal(expected.Percentage, actual.Percentage, "percentage")
			s.assertIntEqual(expected.EarnFee, actual.EarnFee, "earn fee")
			s.assertIntEqual(expected.VaultFee, actual.VaultFee, "vault fee")
		},
	}

	tests := []query.Case[types.QueryFeeQuoteRequest, types.QueryFeeQuoteResponse]{
		{
			Name: "tier 1",
			Req:  &types.QueryFeeQuoteRequest{EarnAmount: sdkmath.NewInt(100), VaultAmount: sdkmath.NewInt(200)},
			Expected: &types.QueryFeeQuoteResponse{
				Percentage: 100,
				EarnFee:    sdkmath.NewInt(1),
				VaultFee:   sdkmath.NewInt(2),
			},
		},
		{
			Name: "tier 3 keyed on the combined amount",
			Req:  &types.QueryFeeQuoteRequest{EarnAmount: sdkmath.NewInt(60_000_000_000), VaultAmount: sdkmath.NewInt(50_000_000_000)},
			Expected: &types.QueryFeeQuoteResponse{
				Percentage: 50,
				EarnFee:    sdkmath.NewInt(300_000_000),
				VaultFee:   sdkmath.NewInt(250_000_000),
			},
		},
		{
			Name: "negative amount",
			Req:  &types.QueryFeeQuoteRequest{EarnAmount: sdkmath.NewInt(-1), VaultAmount: sdkmath.NewInt(200)},
			Code: codes.InvalidArgument,
		},
		{
			Name: "nil request",
			Code: codes.InvalidArgument,
		},
	}
	for _, tc := range tests {
		s.Run(tc.Name, func() { query.Run(s, ep, tc) })
	}
}
