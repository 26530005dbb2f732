package keeper

import (
	sdkerrors "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

// requireActive rejects op unless the ledger is still Active.
func (k Keeper) requireActive(ctx sdk.Context, op string) error {
	lc, err := k.GetLifecycle(ctx)
	if err != nil {
		return err
	}
	switch lc {
	case types.LifecycleActive:
		return nil
	case types.LifecycleVesting:
		return sdkerrors.Wrapf(types.ErrLifecycleViolation, "%s is not allowed while vesting", op)
	default:
		return sdkerrors.Wrapf(types.ErrLifecycleViolation, "%s: unknown lifecycle %s", op, lc)
	}
}

// requireVesting rejects op unless the ledger has entered Vesting.
func (k Keeper) requireVesting(ctx sdk.Context, op string) error {
	lc, err := k.GetLifecycle(ctx)
	if err != nil {
		return err
	}
	switch lc {
	case types.LifecycleVesting:
		return nil
	case types.LifecycleActive:
		return sdkerrors.Wrapf(types.ErrLifecycleViolation, "%s is only allowed while vesting", op)
	default:
		return sdkerrors.Wrapf(types.ErrLifecycleViolation, "%s: unknown lifecycle %s", op, lc)
	}
}
