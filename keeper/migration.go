package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

// SetPendingStrategy chooses the migration target. A target that is already pending cannot
// be replaced until it has been migrated to.
func (k *Keeper) SetPendingStrategy(ctx sdk.Context, caller, strategy sdk.AccAddress) error {
	if err := k.requireOwnerCaller(ctx, caller); err != nil {
		return err
	}
	if strategy.Empty() {
		return sdkerrors.Wrap(types.ErrInvalidRequest, "pending strategy cannot be empty")
	}

	lock, err := k.GetMigrationLock(ctx)
	if err != nil {
		return err
	}
	if lock.HasPendingStrategy() {
		return sdkerrors.Wrapf(types.ErrInvalidRequest, "pending strategy %s is already set", lock.PendingStrategy)
	}

	lock.PendingStrategy = strategy.String()
	if err := k.MigrationLock.Set(ctx, lock); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(types.NewEventSetPendingStrategy(lock.PendingStrategy))
	k.getLogger(ctx).Info("pending strategy set", "strategy", lock.PendingStrategy)
	return nil
}

// UnlockMigrateFunds arms the timelock to open LockDuration seconds from now. Every call
// restarts the countdown.
func (k *Keeper) UnlockMigrateFunds(ctx sdk.Context, caller sdk.AccAddress) (int64, error) {
	if err := k.requireOwnerCaller(ctx, caller); err != nil {
		return 0, err
	}

	lock, err := k.GetMigrationLock(ctx)
	if err != nil {
		return 0, err
	}
	lock.UnlockTime = ctx.BlockTime().Unix() + types.LockDuration
	if err := k.MigrationLock.Set(ctx, lock); err != nil {
		return 0, err
	}

	ctx.EventManager().EmitEvent(types.NewEventUnlockMigrateFunds(lock.UnlockTime))
	k.getLogger(ctx).Info("migration unlock armed", "unlock_time", lock.UnlockTime)
	return lock.UnlockTime, nil
}

// MigrateFunds sends the whole custody balance to the pending strategy once the timelock
// has opened, then resets the lock. While vesting the custody balance is the refund reserve
// and can only move after ApproveMigrate.
func (k *Keeper) MigrateFunds(ctx sdk.Context, caller sdk.AccAddress) (sdk.AccAddress, sdkmath.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, sdkmath.Int{}, err
	}
	if err := requireOwner(params, caller); err != nil {
		return nil, sdkmath.Int{}, err
	}

	lock, err := k.GetMigrationLock(ctx)
	if err != nil {
		return nil, sdkmath.Int{}, err
	}
	if !lock.IsUnlocked(ctx.BlockTime().Unix()) {
		return nil, sdkmath.Int{}, sdkerrors.Wrapf(types.ErrTimelockViolation, "Function locked until %d", lock.UnlockTime)
	}
	if !lock.HasPendingStrategy() {
		return nil, sdkmath.Int{}, sdkerrors.Wrap(types.ErrNoPendingAction, "no pending strategy")
	}

	lc, err := k.GetLifecycle(ctx)
	if err != nil {
		return nil, sdkmath.Int{}, err
	}
	switch lc {
	case types.LifecycleActive:
	case types.LifecycleVesting:
		if !lock.ReserveApproved {
			return nil, sdkmath.Int{}, sdkerrors.Wrap(types.ErrLifecycleViolation, "migrating the vesting reserve requires approval")
		}
	default:
		return nil, sdkmath.Int{}, sdkerrors.Wrapf(types.ErrLifecycleViolation, "unknown lifecycle %s", lc)
	}

	amount := k.CustodyBalance(ctx, params.Denom)
	if !amount.IsPositive() {
		return nil, sdkmath.Int{}, sdkerrors.Wrap(types.ErrNoPendingAction, "no balance to migrate")
	}

	target := sdk.MustAccAddressFromBech32(lock.PendingStrategy)
	if err := k.send(ctx, types.ModuleAddress(), target, params.Denom, amount); err != nil {
		return nil, sdkmath.Int{}, sdkerrors.Wrap(err, "failed to migrate funds")
	}
	if err := k.MigrationLock.Set(ctx, types.MigrationLock{}); err != nil {
		return nil, sdkmath.Int{}, err
	}

	ctx.EventManager().EmitEvent(types.NewEventMigrateFunds(target.String(), amount))
	k.getLogger(ctx).Info("funds migrated", "strategy", target.String(), "amount", amount.String())
	return target, amount, nil
}

// ApproveMigrate allows the next migration to move the vesting reserve.
func (k *Keeper) ApproveMigrate(ctx sdk.Context, caller sdk.AccAddress) error {
	if err := k.requireOwnerCaller(ctx, caller); err != nil {
		return err
	}
	if err := k.requireVesting(ctx, "approve migrate"); err != nil {
		return err
	}

	lock, err := k.GetMigrationLock(ctx)
	if err != nil {
		return err
	}
	lock.ReserveApproved = true
	if err := k.MigrationLock.Set(ctx, lock); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(types.NewEventApproveMigrate())
	k.getLogger(ctx).Info("reserve migration approved")
	return nil
}

// requireOwnerCaller loads the params and checks the caller against the owner.
func (k Keeper) requireOwnerCaller(ctx sdk.Context, caller sdk.AccAddress) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	return requireOwner(params, caller)
}
