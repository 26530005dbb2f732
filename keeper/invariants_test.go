package keeper_test

import (
	"math/rand"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/keeper"
	"github.com/provlabs/yieldrouter/types"
)

func (s *TestSuite) TestInvariants_HoldAcrossOperations() {
	rng := rand.New(rand.NewSource(42))
	depositors := make([]sdk.AccAddress, 4)
	funded := sdkmath.ZeroInt()
	for i := range depositors {
		depositors[i] = s.CreateAndFundAccount(string(rune('a'+i))+"-depositor", 1_000_000)
		funded = funded.Add(sdkmath.NewInt(1_000_000))
	}

	for i := 0; i < 40; i++ {
		d := depositors[rng.Intn(len(depositors))]
		if rng.Intn(3) > 0 {
			s.deposit(d, rng.Int63n(5_000)+1, rng.Int63n(5_000))
		} else {
			acc := s.account(d)
			earn, vault := acc.EarnPrincipal.QuoRaw(2), acc.VaultPrincipal
			if earn.IsZero() && vault.IsZero() {
				continue
			}
			_, err := s.msgServer.Withdraw(s.ctx, &types.MsgWithdrawRequest{
				Depositor:   d.String(),
				EarnShares:  earn,
				VaultShares: vault,
			})
			s.Require().NoError(err, "withdraw %d", i)
		}
		s.requireInvariants()
	}

	s.vest()
	s.requireInvariants()
	for _, d := range depositors {
		if s.account(d).PoolShares.IsPositive() {
			_, err := s.msgServer.Refund(s.ctx, &types.MsgRefundRequest{Depositor: d.String()})
			s.Require().NoError(err)
		}
		s.requireInvariants()
	}

	// With no strategy profit nothing can be created: every unit is held by a depositor,
	// the treasury or custody.
	held := s.balance(s.treasuryAddr).Add(s.balance(s.communityAddr)).Add(s.balance(s.custody()))
	for _, d := range depositors {
		held = held.Add(s.balance(d))
	}
	s.Assert().Equal(funded.String(), held.String())
	s.Assert().True(s.balance(s.custody()).LT(sdkmath.NewInt(int64(len(depositors)))), "custody keeps at most rounding dust")
}

func (s *TestSuite) TestInvariants_DetectCorruption() {
	alice := s.CreateAndFundAccount("alice", 300)
	s.deposit(alice, 100, 200)

	s.Run("pool out of sync", func() {
		ctx, _ := s.ctx.CacheContext()
		s.Require().NoError(s.k.Pool.Set(ctx, sdkmath.NewInt(1)))
		msg, broken := keeper.PoolConservation(s.k)(ctx)
		s.Assert().True(broken)
		s.Assert().Contains(msg, "does not match pool")
	})

	s.Run("share supply out of sync", func() {
		ctx, _ := s.ctx.CacheContext()
		s.Require().NoError(s.k.TotalPoolShares.Set(ctx, sdkmath.NewInt(1)))
		msg, broken := keeper.ShareSupply(s.k)(ctx)
		s.Assert().True(broken)
		s.Assert().Contains(msg, "does not match supply")
	})

	s.Run("pool left over while vesting", func() {
		ctx, _ := s.ctx.CacheContext()
		s.Require().NoError(s.k.SetLifecycle(ctx, types.LifecycleVesting))
		_, broken := keeper.PoolConservation(s.k)(ctx)
		s.Assert().True(broken)
	})
}
