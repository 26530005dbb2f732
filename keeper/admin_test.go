package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

func (s *TestSuite) params() types.Params {
	p, err := s.k.GetParams(s.ctx)
	s.Require().NoError(err, "GetParams")
	return p
}

func (s *TestSuite) TestAdmin_Setters() {
	owner := s.ownerAddr.String()
	newWallet := sdk.AccAddress("newWallet___________")

	tests := []struct {
		name   string
		run    func() error
		param  string
		check  func(p types.Params)
		errIs  error
		errMsg string
	}{
		{
			name: "treasury wallet",
			run: func() error {
				_, err := s.msgServer.SetTreasuryWallet(s.ctx, &types.MsgSetTreasuryWalletRequest{Authority: owner, Wallet: newWallet.String()})
				return err
			},
			param: "treasury_wallet",
			check: func(p types.Params) { s.Assert().Equal(newWallet.String(), p.TreasuryWallet) },
		},
		{
			name: "community wallet",
			run: func() error {
				_, err := s.msgServer.SetCommunityWallet(s.ctx, &types.MsgSetCommunityWalletRequest{Authority: owner, Wallet: newWallet.String()})
				return err
			},
			param: "community_wallet",
			check: func(p types.Params) { s.Assert().Equal(newWallet.String(), p.CommunityWallet) },
		},
		{
			name: "tier 2 bounds",
			run: func() error {
				_, err := s.msgServer.SetNetworkFeeTier2(s.ctx, &types.MsgSetNetworkFeeTier2Request{Authority: owner, Min: sdkmath.NewInt(1_000), Max: sdkmath.NewInt(5_000)})
				return err
			},
			param: "network_fee_tier2",
			check: func(p types.Params) {
				s.Assert().Equal("1000", p.FeeSchedule.Tier2Min.String())
				s.Assert().Equal("5000", p.FeeSchedule.Tier2Max.String())
			},
		},
		{
			name: "tier 2 minimum zero",
			run: func() error {
				_, err := s.msgServer.SetNetworkFeeTier2(s.ctx, &types.MsgSetNetworkFeeTier2Request{Authority: owner, Min: sdkmath.ZeroInt(), Max: sdkmath.NewInt(5_000)})
				return err
			},
			errIs:  types.ErrInvalidConfiguration,
			errMsg: "minimum amount cannot be 0",
		},
		{
			name: "tier 2 maximum not above minimum",
			run: func() error {
				_, err := s.msgServer.SetNetworkFeeTier2(s.ctx, &types.MsgSetNetworkFeeTier2Request{Authority: owner, Min: sdkmath.NewInt(5_000), Max: sdkmath.NewInt(5_000)})
				return err
			},
			errIs:  types.ErrInvalidConfiguration,
			errMsg: "maximum amount must be greater than minimum amount",
		},
		{
			name: "tier 2 maximum reaching custom tier",
			run: func() error {
				_, err := s.msgServer.SetNetworkFeeTier2(s.ctx, &types.MsgSetNetworkFeeTier2Request{Authority: owner, Min: sdkmath.NewInt(1), Max: sdkmath.NewInt(1_000_000_000_000)})
				return err
			},
			errIs:  types.ErrInvalidConfiguration,
			errMsg: "custom network fee tier",
		},
		{
			name: "network fee percentages",
			run: func() error {
				_, err := s.msgServer.SetNetworkFeePercentage(s.ctx, &types.MsgSetNetworkFeePercentageRequest{Authority: owner, Percentages: [3]uint64{200, 150, 100}})
				return err
			},
			param: "network_fee_percentage",
			check: func(p types.Params) { s.Assert().Equal([3]uint64{200, 150, 100}, p.FeeSchedule.Percentages) },
		},
		{
			name: "network fee percentage above cap",
			run: func() error {
				_, err := s.msgServer.SetNetworkFeePercentage(s.ctx, &types.MsgSetNetworkFeePercentageRequest{Authority: owner, Percentages: [3]uint64{4_001, 75, 50}})
				return err
			},
			errIs:  types.ErrInvalidConfiguration,
			errMsg: "cannot be more than 40%",
		},
		{
			name: "tier 2 percentage below custom percentage",
			run: func() error {
				_, err := s.msgServer.SetNetworkFeePercentage(s.ctx, &types.MsgSetNetworkFeePercentageRequest{Authority: owner, Percentages: [3]uint64{100, 20, 10}})
				return err
			},
			errIs:  types.ErrInvalidConfiguration,
			errMsg: "cannot be more than tier 2 percentage",
		},
		{
			name: "custom tier threshold",
			run: func() error {
				_, err := s.msgServer.SetCustomNetworkFeeTier(s.ctx, &types.MsgSetCustomNetworkFeeTierRequest{Authority: owner, Threshold: sdkmath.NewInt(2_000_000_000_000)})
				return err
			},
			param: "custom_network_fee_tier",
			check: func(p types.Params) { s.Assert().Equal("2000000000000", p.FeeSchedule.CustomTierThreshold.String()) },
		},
		{
			name: "custom tier threshold not above tier 2",
			run: func() error {
				_, err := s.msgServer.SetCustomNetworkFeeTier(s.ctx, &types.MsgSetCustomNetworkFeeTierRequest{Authority: owner, Threshold: sdkmath.NewInt(100_000_000_000)})
				return err
			},
			errIs:  types.ErrInvalidConfiguration,
			errMsg: "must be greater than tier 2 maximum",
		},
		{
			name: "custom percentage",
			run: func() error {
				_, err := s.msgServer.SetCustomNetworkFeePercentage(s.ctx, &types.MsgSetCustomNetworkFeePercentageRequest{Authority: owner, Percentage: 75})
				return err
			},
			param: "custom_network_fee_percentage",
			check: func(p types.Params) { s.Assert().Equal(uint64(75), p.FeeSchedule.CustomPercentage) },
		},
		{
			name: "custom percentage above tier 2",
			run: func() error {
				_, err := s.msgServer.SetCustomNetworkFeePercentage(s.ctx, &types.MsgSetCustomNetworkFeePercentageRequest{Authority: owner, Percentage: 76})
				return err
			},
			errIs:  types.ErrInvalidConfiguration,
			errMsg: "cannot be more than tier 2 percentage",
		},
		{
			name: "profit sharing percentage",
			run: func() error {
				_, err := s.msgServer.SetProfitSharingFeePercentage(s.ctx, &types.MsgSetProfitSharingFeePercentageRequest{Authority: owner, Percentage: 4_000})
				return err
			},
			param: "profit_sharing_fee_percentage",
			check: func(p types.Params) { s.Assert().Equal(uint64(4_000), p.ProfitSharingFeePercentage) },
		},
		{
			name: "profit sharing percentage above cap",
			run: func() error {
				_, err := s.msgServer.SetProfitSharingFeePercentage(s.ctx, &types.MsgSetProfitSharingFeePercentageRequest{Authority: owner, Percentage: 4_001})
				return err
			},
			errIs:  types.ErrInvalidConfiguration,
			errMsg: "cannot be more than 40%",
		},
		{
			name: "profit sharing on withdraw",
			run: func() error {
				_, err := s.msgServer.SetProfitSharingOnWithdraw(s.ctx, &types.MsgSetProfitSharingOnWithdrawRequest{Authority: owner, Enabled: false})
				return err
			},
			param: "profit_sharing_on_withdraw",
			check: func(p types.Params) { s.Assert().False(p.ProfitSharingOnWithdraw) },
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			before := s.params()
			s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

			err := tc.run()
			if tc.errIs != nil {
				s.Require().ErrorIs(err, tc.errIs)
				s.Assert().ErrorContains(err, tc.errMsg)
				s.Assert().Equal(before, s.params(), "params should not change on failure")
				s.Assert().Empty(s.ctx.EventManager().Events(), "no events on failure")
				return
			}

			s.Require().NoError(err)
			tc.check(s.params())
			events := s.ctx.EventManager().Events()
			s.Require().Len(events, 1)
			s.Assert().Equal(types.EventTypeParamChange, events[0].Type)
			attr, ok := events[0].GetAttribute(types.AttributeKeyParam)
			s.Require().True(ok, "param attribute")
			s.Assert().Equal(tc.param, attr.Value)
		})
	}
}

func (s *TestSuite) TestAdmin_SettersAreOwnerOnly() {
	stranger := sdk.AccAddress("stranger____________").String()
	wallet := sdk.AccAddress("newWallet___________").String()

	calls := map[string]func() error{
		"treasury wallet": func() error {
			_, err := s.msgServer.SetTreasuryWallet(s.ctx, &types.MsgSetTreasuryWalletRequest{Authority: stranger, Wallet: wallet})
			return err
		},
		"community wallet": func() error {
			_, err := s.msgServer.SetCommunityWallet(s.ctx, &types.MsgSetCommunityWalletRequest{Authority: stranger, Wallet: wallet})
			return err
		},
		"tier 2": func() error {
			_, err := s.msgServer.SetNetworkFeeTier2(s.ctx, &types.MsgSetNetworkFeeTier2Request{Authority: stranger, Min: sdkmath.NewInt(1), Max: sdkmath.NewInt(2)})
			return err
		},
		"network fee percentage": func() error {
			_, err := s.msgServer.SetNetworkFeePercentage(s.ctx, &types.MsgSetNetworkFeePercentageRequest{Authority: stranger, Percentages: [3]uint64{1, 1, 1}})
			return err
		},
		"custom tier": func() error {
			_, err := s.msgServer.SetCustomNetworkFeeTier(s.ctx, &types.MsgSetCustomNetworkFeeTierRequest{Authority: stranger, Threshold: sdkmath.NewInt(1)})
			return err
		},
		"custom percentage": func() error {
			_, err := s.msgServer.SetCustomNetworkFeePercentage(s.ctx, &types.MsgSetCustomNetworkFeePercentageRequest{Authority: stranger, Percentage: 1})
			return err
		},
		"profit sharing percentage": func() error {
			_, err := s.msgServer.SetProfitSharingFeePercentage(s.ctx, &types.MsgSetProfitSharingFeePercentageRequest{Authority: stranger, Percentage: 1})
			return err
		},
		"profit sharing on withdraw": func() error {
			_, err := s.msgServer.SetProfitSharingOnWithdraw(s.ctx, &types.MsgSetProfitSharingOnWithdrawRequest{Authority: stranger})
			return err
		},
		"transfer ownership": func() error {
			_, err := s.msgServer.TransferOwnership(s.ctx, &types.MsgTransferOwnershipRequest{Authority: stranger, NewOwner: wallet})
			return err
		},
	}

	before := s.params()
	for name, call := range calls {
		s.Run(name, func() {
			s.Require().ErrorIs(call(), types.ErrUnauthorized)
		})
	}
	s.Assert().Equal(before, s.params())
}

func (s *TestSuite) TestAdmin_TransferOwnership() {
	newOwner := sdk.AccAddress("newOwner____________")
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())

	_, err := s.msgServer.TransferOwnership(s.ctx, &types.MsgTransferOwnershipRequest{
		Authority: s.ownerAddr.String(),
		NewOwner:  newOwner.String(),
	})
	s.Require().NoError(err)
	s.Assert().Equal(newOwner.String(), s.params().Owner)

	events := s.ctx.EventManager().Events()
	s.Require().Len(events, 1)
	s.Assert().Equal(types.EventTypeOwnershipTransfered, events[0].Type)

	_, err = s.msgServer.SetProfitSharingOnWithdraw(s.ctx, &types.MsgSetProfitSharingOnWithdrawRequest{Authority: s.ownerAddr.String()})
	s.Require().ErrorIs(err, types.ErrUnauthorized, "previous owner")

	_, err = s.msgServer.SetProfitSharingOnWithdraw(s.ctx, &types.MsgSetProfitSharingOnWithdrawRequest{Authority: newOwner.String()})
	s.Require().NoError(err, "new owner")

	_, err = s.msgServer.TransferOwnership(s.ctx, &types.MsgTransferOwnershipRequest{
		Authority: newOwner.String(),
		NewOwner:  newOwner.String(),
	})
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "transfer to self")
}
