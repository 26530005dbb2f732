package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/feetier"
	"github.com/provlabs/yieldrouter/types"
)

// DepositResult describes the effect of a deposit on the ledger.
type DepositResult struct {
	Fees         feetier.DepositFees
	EarnNet      sdkmath.Int
	VaultNet     sdkmath.Int
	SharesMinted sdkmath.Int
}

// Deposit records a deposit of earnAmount + vaultAmount that the vault has already moved
// into the custody account. The network fee goes to the treasury, the rest is deployed to
// the Earn and Vault strategies and minted 1:1 as pool shares.
func (k *Keeper) Deposit(ctx sdk.Context, caller, depositor sdk.AccAddress, earnAmount, vaultAmount sdkmath.Int) (DepositResult, error) {
	if err := requireFacade(caller); err != nil {
		return DepositResult{}, err
	}
	if err := k.requireActive(ctx, "deposit"); err != nil {
		return DepositResult{}, err
	}
	if err := validateAmounts(earnAmount, vaultAmount); err != nil {
		return DepositResult{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return DepositResult{}, err
	}

	fees, err := feetier.ComputeDepositFees(earnAmount, vaultAmount, params.FeeSchedule)
	if err != nil {
		return DepositResult{}, sdkerrors.Wrap(types.ErrInvalidAmount, err.Error())
	}

	custody := types.ModuleAddress()
	treasury := sdk.MustAccAddressFromBech32(params.TreasuryWallet)
	if fee := fees.Total(); fee.IsPositive() {
		if err := k.send(ctx, custody, treasury, params.Denom, fee); err != nil {
			return DepositResult{}, sdkerrors.Wrap(err, "failed to pay network fee")
		}
		ctx.EventManager().EmitEvent(types.NewEventNetworkFee(params.TreasuryWallet, fee))
	}

	result := DepositResult{
		Fees:     fees,
		EarnNet:  earnAmount.Sub(fees.EarnFee),
		VaultNet: vaultAmount.Sub(fees.VaultFee),
	}
	result.SharesMinted = result.EarnNet.Add(result.VaultNet)

	if result.EarnNet.IsPositive() {
		if err := k.EarnStrategy.Deposit(ctx, custody, result.EarnNet); err != nil {
			return DepositResult{}, err
		}
	}
	if result.VaultNet.IsPositive() {
		if err := k.VaultStrategy.Deposit(ctx, custody, result.VaultNet); err != nil {
			return DepositResult{}, err
		}
	}

	acc, err := k.GetDepositorAccount(ctx, depositor)
	if err != nil {
		return DepositResult{}, err
	}
	acc.EarnPrincipal = acc.EarnPrincipal.Add(result.EarnNet)
	acc.VaultPrincipal = acc.VaultPrincipal.Add(result.VaultNet)
	acc.PoolShares = acc.PoolShares.Add(result.SharesMinted)
	if err := k.SetDepositorAccount(ctx, acc); err != nil {
		return DepositResult{}, err
	}
	if err := k.adjustPool(ctx, result.SharesMinted); err != nil {
		return DepositResult{}, err
	}

	ctx.EventManager().EmitEvent(types.NewEventDeposit(depositor.String(), earnAmount, vaultAmount, fees.EarnFee, fees.VaultFee, result.SharesMinted))
	k.getLogger(ctx).Debug("deposit recorded",
		"depositor", depositor.String(),
		"earn_net", result.EarnNet.String(),
		"vault_net", result.VaultNet.String(),
		"fee_percentage", fees.Percentage,
	)
	return result, nil
}

// validateAmounts requires two non-negative amounts, at least one positive.
func validateAmounts(earn, vault sdkmath.Int) error {
	if earn.IsNil() || vault.IsNil() || earn.IsNegative() || vault.IsNegative() {
		return sdkerrors.Wrap(types.ErrInvalidAmount, "amounts must be non-negative")
	}
	if earn.IsZero() && vault.IsZero() {
		return sdkerrors.Wrap(types.ErrInvalidAmount, "amount must be greater than 0")
	}
	return nil
}
