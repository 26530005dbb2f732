package keeper

import (
	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/feetier"
	"github.com/provlabs/yieldrouter/types"
	"github.com/provlabs/yieldrouter/utils"
)

// VestingResult describes the one-time exit from both strategies.
type VestingResult struct {
	// Withdrawn is everything the strategies returned.
	Withdrawn sdkmath.Int
	// ProfitSharingFee is charged on Withdrawn above the recorded pool.
	ProfitSharingFee sdkmath.Int
	// Reserve is the custody balance left to back refunds.
	Reserve sdkmath.Int
}

// Vesting exits both strategies completely and moves the ledger to Vesting. Profit above
// the recorded pool pays the profit-sharing fee, the rest becomes the refund reserve. The
// transition is irreversible.
func (k *Keeper) Vesting(ctx sdk.Context, caller sdk.AccAddress) (VestingResult, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return VestingResult{}, err
	}
	if err := requireOwner(params, caller); err != nil {
		return VestingResult{}, err
	}
	if err := k.requireActive(ctx, "vesting"); err != nil {
		return VestingResult{}, err
	}

	custody := types.ModuleAddress()
	before := k.CustodyBalance(ctx, params.Denom)
	for _, strategy := range k.strategies() {
		shares, err := strategy.SharesOf(ctx, custody)
		if err != nil {
			return VestingResult{}, err
		}
		if !shares.IsPositive() {
			continue
		}
		if err := strategy.Withdraw(ctx, custody, shares); err != nil {
			return VestingResult{}, err
		}
	}
	after := k.CustodyBalance(ctx, params.Denom)
	if after.LT(before) {
		return VestingResult{}, sdkerrors.Wrap(types.ErrStrategy, "strategy exit reduced the custody balance")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return VestingResult{}, err
	}
	result := VestingResult{Withdrawn: after.Sub(before)}
	result.ProfitSharingFee, err = feetier.ProfitSharingFee(result.Withdrawn, pool, params.ProfitSharingFeePercentage)
	if err != nil {
		return VestingResult{}, sdkerrors.Wrap(types.ErrInvalidAmount, err.Error())
	}
	if err := k.payProfitSharingFee(ctx, params, result.ProfitSharingFee); err != nil {
		return VestingResult{}, err
	}
	result.Reserve = k.CustodyBalance(ctx, params.Denom)

	if err := k.Pool.Set(ctx, sdkmath.ZeroInt()); err != nil {
		return VestingResult{}, err
	}
	if err := k.SetLifecycle(ctx, types.LifecycleVesting); err != nil {
		return VestingResult{}, err
	}

	ctx.EventManager().EmitEvent(types.NewEventVesting(result.Withdrawn, result.ProfitSharingFee, result.Reserve))
	k.getLogger(ctx).Info("ledger entered vesting",
		"pool", pool.String(),
		"withdrawn", result.Withdrawn.String(),
		"fee", result.ProfitSharingFee.String(),
		"reserve", result.Reserve.String(),
	)
	return result, nil
}

// Refund pays the depositor its pro-rata part of the reserve and burns all of its pool
// shares.
func (k *Keeper) Refund(ctx sdk.Context, caller, depositor sdk.AccAddress) (sdkmath.Int, error) {
	if err := requireFacade(caller); err != nil {
		return sdkmath.Int{}, err
	}
	if err := k.requireVesting(ctx, "refund"); err != nil {
		return sdkmath.Int{}, err
	}

	acc, err := k.GetDepositorAccount(ctx, depositor)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !acc.PoolShares.IsPositive() {
		return sdkmath.Int{}, sdkerrors.Wrap(types.ErrNoPendingAction, "No balance to refund")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	value, err := k.GetSharesValue(ctx, depositor)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !value.IsPositive() {
		return sdkmath.Int{}, sdkerrors.Wrap(types.ErrNoPendingAction, "No balance to refund: shares are worth less than one unit of the reserve")
	}
	if err := k.send(ctx, types.ModuleAddress(), depositor, params.Denom, value); err != nil {
		return sdkmath.Int{}, sdkerrors.Wrap(err, "failed to pay refund")
	}

	burned := acc.PoolShares
	if err := k.SetDepositorAccount(ctx, types.NewDepositorAccount(depositor)); err != nil {
		return sdkmath.Int{}, err
	}
	if err := k.adjustTotalPoolShares(ctx, burned.Neg()); err != nil {
		return sdkmath.Int{}, err
	}

	ctx.EventManager().EmitEvent(types.NewEventRefund(depositor.String(), burned, value))
	k.getLogger(ctx).Debug("refund paid", "depositor", depositor.String(), "shares", burned.String(), "amount", value.String())
	return value, nil
}

// GetSharesValue returns the depositor's pro-rata claim on the custody balance:
// poolShares * custodyBalance / totalPoolShares, floored. Once vesting, the custody
// balance is the refund reserve.
func (k Keeper) GetSharesValue(ctx sdk.Context, depositor sdk.AccAddress) (sdkmath.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	shares, err := getMapIntOrZero(ctx, k.PoolShares, depositor)
	if err != nil {
		return sdkmath.Int{}, err
	}
	total, err := k.GetTotalPoolShares(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return utils.ProRata(shares, total, k.CustodyBalance(ctx, params.Denom))
}

// GetEarnDepositBalance returns the depositor's Earn principal, always zero once vesting.
func (k Keeper) GetEarnDepositBalance(ctx sdk.Context, depositor sdk.AccAddress) (sdkmath.Int, error) {
	return k.depositBalance(ctx, k.EarnPrincipal, depositor)
}

// GetVaultDepositBalance returns the depositor's Vault principal, always zero once vesting.
func (k Keeper) GetVaultDepositBalance(ctx sdk.Context, depositor sdk.AccAddress) (sdkmath.Int, error) {
	return k.depositBalance(ctx, k.VaultPrincipal, depositor)
}

func (k Keeper) depositBalance(ctx sdk.Context, principal collections.Map[sdk.AccAddress, sdkmath.Int], depositor sdk.AccAddress) (sdkmath.Int, error) {
	lc, err := k.GetLifecycle(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	switch lc {
	case types.LifecycleActive:
		return getMapIntOrZero(ctx, principal, depositor)
	case types.LifecycleVesting:
		return sdkmath.ZeroInt(), nil
	default:
		return sdkmath.Int{}, sdkerrors.Wrapf(types.ErrLifecycleViolation, "unknown lifecycle %s", lc)
	}
}
