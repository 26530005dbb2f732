package keeper_test

import (
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

func (s *TestSuite) newStrategyAddr() sdk.AccAddress {
	return sdk.AccAddress("newStrategy_________")
}

func (s *TestSuite) advance(d time.Duration) {
	s.ctx = s.ctx.WithBlockTime(s.ctx.BlockTime().Add(d))
}

func (s *TestSuite) migrate() (*types.MsgMigrateFundsResponse, error) {
	return s.msgServer.MigrateFunds(s.ctx, &types.MsgMigrateFundsRequest{Authority: s.ownerAddr.String()})
}

func (s *TestSuite) unlock() int64 {
	resp, err := s.msgServer.UnlockMigrateFunds(s.ctx, &types.MsgUnlockMigrateFundsRequest{Authority: s.ownerAddr.String()})
	s.Require().NoError(err, "UnlockMigrateFunds")
	return resp.UnlockTime
}

func (s *TestSuite) setPending(addr sdk.AccAddress) error {
	_, err := s.msgServer.SetPendingStrategy(s.ctx, &types.MsgSetPendingStrategyRequest{
		Authority: s.ownerAddr.String(),
		Strategy:  addr.String(),
	})
	return err
}

func (s *TestSuite) TestMigration_FullCycle() {
	target := s.newStrategyAddr()
	s.fund(s.custody(), sdkmath.NewInt(500))

	s.Require().NoError(s.setPending(target))
	unlockTime := s.unlock()
	s.Assert().Equal(s.ctx.BlockTime().Unix()+types.LockDuration, unlockTime)

	_, err := s.migrate()
	s.Require().ErrorIs(err, types.ErrTimelockViolation, "migrate right after unlock")
	s.Assert().ErrorContains(err, "Function locked")

	s.advance(types.LockDuration*time.Second - time.Second)
	_, err = s.migrate()
	s.Require().ErrorIs(err, types.ErrTimelockViolation, "migrate one second early")

	s.advance(time.Second)
	resp, err := s.migrate()
	s.Require().NoError(err)
	s.Assert().Equal(target.String(), resp.Strategy)
	s.Assert().Equal("500", resp.Amount.String())
	s.assertBalance(target, 500)
	s.assertBalance(s.custody(), 0)

	lock, err := s.k.GetMigrationLock(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(types.MigrationLock{}, lock, "lock should be back to idle")
	s.Assert().Equal(types.MigrationIdle, lock.Phase())
}

func (s *TestSuite) TestMigration_RequiresReArm() {
	target := s.newStrategyAddr()
	s.fund(s.custody(), sdkmath.NewInt(500))
	s.Require().NoError(s.setPending(target))
	s.unlock()
	s.advance(types.LockDuration * time.Second)
	_, err := s.migrate()
	s.Require().NoError(err)

	s.fund(s.custody(), sdkmath.NewInt(10))
	s.Require().NoError(s.setPending(target))
	_, err = s.migrate()
	s.Require().ErrorIs(err, types.ErrTimelockViolation, "migrate without a new unlock")
}

func (s *TestSuite) TestMigration_UnlockRestartsCountdown() {
	s.fund(s.custody(), sdkmath.NewInt(500))
	s.Require().NoError(s.setPending(s.newStrategyAddr()))

	first := s.unlock()
	s.advance(24 * time.Hour)
	second := s.unlock()
	s.Assert().Equal(first+24*60*60, second, "second unlock should push the unlock time out")

	s.advance(24 * time.Hour)
	_, err := s.migrate()
	s.Require().ErrorIs(err, types.ErrTimelockViolation, "first unlock time has passed but the countdown was restarted")

	s.advance(24 * time.Hour)
	_, err = s.migrate()
	s.Require().NoError(err)
}

func (s *TestSuite) TestMigration_Rejections() {
	target := s.newStrategyAddr()

	s.Run("pending strategy cannot be overwritten", func() {
		s.SetupTest()
		s.Require().NoError(s.setPending(target))
		err := s.setPending(sdk.AccAddress("otherStrategy_______"))
		s.Require().ErrorIs(err, types.ErrInvalidRequest)
	})

	s.Run("no pending strategy", func() {
		s.SetupTest()
		s.fund(s.custody(), sdkmath.NewInt(500))
		s.unlock()
		s.advance(types.LockDuration * time.Second)
		_, err := s.migrate()
		s.Require().ErrorIs(err, types.ErrNoPendingAction)
	})

	s.Run("no balance", func() {
		s.SetupTest()
		s.Require().NoError(s.setPending(target))
		s.unlock()
		s.advance(types.LockDuration * time.Second)
		_, err := s.migrate()
		s.Require().ErrorIs(err, types.ErrNoPendingAction)
	})

	s.Run("not owner", func() {
		s.SetupTest()
		stranger := sdk.AccAddress("stranger____________")
		_, err := s.msgServer.SetPendingStrategy(s.ctx, &types.MsgSetPendingStrategyRequest{Authority: stranger.String(), Strategy: target.String()})
		s.Require().ErrorIs(err, types.ErrUnauthorized)
		_, err = s.msgServer.UnlockMigrateFunds(s.ctx, &types.MsgUnlockMigrateFundsRequest{Authority: stranger.String()})
		s.Require().ErrorIs(err, types.ErrUnauthorized)
		_, err = s.msgServer.MigrateFunds(s.ctx, &types.MsgMigrateFundsRequest{Authority: stranger.String()})
		s.Require().ErrorIs(err, types.ErrUnauthorized)
		_, err = s.msgServer.ApproveMigrate(s.ctx, &types.MsgApproveMigrateRequest{Authority: stranger.String()})
		s.Require().ErrorIs(err, types.ErrUnauthorized)
	})
}

func (s *TestSuite) TestMigration_VestingReserveNeedsApproval() {
	alice := s.CreateAndFundAccount("alice", 300)
	s.deposit(alice, 100, 200)

	_, err := s.msgServer.ApproveMigrate(s.ctx, &types.MsgApproveMigrateRequest{Authority: s.ownerAddr.String()})
	s.Require().ErrorIs(err, types.ErrLifecycleViolation, "approve while active")

	s.vest()
	target := s.newStrategyAddr()
	s.Require().NoError(s.setPending(target))
	s.unlock()
	s.advance(types.LockDuration * time.Second)

	_, err = s.migrate()
	s.Require().ErrorIs(err, types.ErrLifecycleViolation, "reserve migration without approval")
	s.assertBalance(s.custody(), 297)

	_, err = s.msgServer.ApproveMigrate(s.ctx, &types.MsgApproveMigrateRequest{Authority: s.ownerAddr.String()})
	s.Require().NoError(err)

	resp, err := s.migrate()
	s.Require().NoError(err)
	s.Assert().Equal("297", resp.Amount.String())
	s.assertBalance(target, 297)

	lock, err := s.k.GetMigrationLock(s.ctx)
	s.Require().NoError(err)
	s.Assert().False(lock.ReserveApproved, "approval is consumed by the migration")
}

func (s *TestSuite) TestMigration_Phases() {
	lock, err := s.k.GetMigrationLock(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(types.MigrationIdle, lock.Phase())

	s.Require().NoError(s.setPending(s.newStrategyAddr()))
	lock, err = s.k.GetMigrationLock(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(types.MigrationPendingSet, lock.Phase())

	s.unlock()
	lock, err = s.k.GetMigrationLock(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(types.MigrationUnlocked, lock.Phase())
	s.Assert().False(lock.IsUnlocked(s.ctx.BlockTime().Unix()))
}
