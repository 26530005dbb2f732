package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/feetier"
	"github.com/provlabs/yieldrouter/types"
	"github.com/provlabs/yieldrouter/utils"
)

// WithdrawResult describes the effect of a withdrawal.
type WithdrawResult struct {
	// Returned is what the strategies paid back for the redeemed principal.
	Returned sdkmath.Int
	// ProfitSharingFee is the part of the profit kept as fee.
	ProfitSharingFee sdkmath.Int
	// AmountOut is paid to the depositor, Returned minus ProfitSharingFee.
	AmountOut sdkmath.Int
	// PrincipalOut is the principal and pool shares burned.
	PrincipalOut sdkmath.Int
}

// Withdraw redeems earnShares of the depositor's Earn principal and vaultShares of its Vault
// principal from the strategies. Principal and pool shares shrink by the requested amounts
// while the depositor receives what the strategies actually returned, less the
// profit-sharing fee on any gain when that fee is enabled on withdrawals.
func (k *Keeper) Withdraw(ctx sdk.Context, caller, depositor sdk.AccAddress, earnShares, vaultShares sdkmath.Int) (WithdrawResult, error) {
	if err := requireFacade(caller); err != nil {
		return WithdrawResult{}, err
	}
	if err := k.requireActive(ctx, "withdraw"); err != nil {
		return WithdrawResult{}, err
	}
	if err := validateAmounts(earnShares, vaultShares); err != nil {
		return WithdrawResult{}, err
	}

	acc, err := k.GetDepositorAccount(ctx, depositor)
	if err != nil {
		return WithdrawResult{}, err
	}
	if earnShares.GT(acc.EarnPrincipal) || vaultShares.GT(acc.VaultPrincipal) {
		return WithdrawResult{}, sdkerrors.Wrapf(types.ErrInvalidAmount,
			"Insufficient balance: requested earn %s vault %s, available earn %s vault %s",
			earnShares, vaultShares, acc.EarnPrincipal, acc.VaultPrincipal)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return WithdrawResult{}, err
	}

	result := WithdrawResult{
		Returned:         sdkmath.ZeroInt(),
		ProfitSharingFee: sdkmath.ZeroInt(),
		PrincipalOut:     earnShares.Add(vaultShares),
	}
	for i, principal := range [2]sdkmath.Int{earnShares, vaultShares} {
		if !principal.IsPositive() {
			continue
		}
		returned, err := k.redeem(ctx, k.strategies()[i], principal, params.Denom)
		if err != nil {
			return WithdrawResult{}, err
		}
		result.Returned = result.Returned.Add(returned)

		if params.ProfitSharingOnWithdraw {
			fee, err := feetier.ProfitSharingFee(returned, principal, params.ProfitSharingFeePercentage)
			if err != nil {
				return WithdrawResult{}, sdkerrors.Wrap(types.ErrInvalidAmount, err.Error())
			}
			result.ProfitSharingFee = result.ProfitSharingFee.Add(fee)
		}
	}
	result.AmountOut = result.Returned.Sub(result.ProfitSharingFee)

	if err := k.payProfitSharingFee(ctx, params, result.ProfitSharingFee); err != nil {
		return WithdrawResult{}, err
	}
	if err := k.send(ctx, types.ModuleAddress(), depositor, params.Denom, result.AmountOut); err != nil {
		return WithdrawResult{}, sdkerrors.Wrap(err, "failed to pay depositor")
	}

	acc.EarnPrincipal = acc.EarnPrincipal.Sub(earnShares)
	acc.VaultPrincipal = acc.VaultPrincipal.Sub(vaultShares)
	acc.PoolShares = acc.PoolShares.Sub(result.PrincipalOut)
	if err := k.SetDepositorAccount(ctx, acc); err != nil {
		return WithdrawResult{}, err
	}
	if err := k.adjustPool(ctx, result.PrincipalOut.Neg()); err != nil {
		return WithdrawResult{}, err
	}

	ctx.EventManager().EmitEvent(types.NewEventWithdraw(depositor.String(), earnShares, vaultShares, result.AmountOut, result.ProfitSharingFee))
	k.getLogger(ctx).Debug("withdrawal recorded",
		"depositor", depositor.String(),
		"principal", result.PrincipalOut.String(),
		"returned", result.Returned.String(),
		"fee", result.ProfitSharingFee.String(),
	)
	return result, nil
}

// redeem withdraws the strategy shares currently worth amount and returns the tokens that
// actually reached the custody account. A strategy that lost value cannot be asked for more
// shares than the custody account holds.
func (k Keeper) redeem(ctx sdk.Context, strategy types.Strategy, amount sdkmath.Int, denom string) (sdkmath.Int, error) {
	custody := types.ModuleAddress()

	supply, err := strategy.TotalSupply(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	value, err := strategy.PoolValue(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !value.IsPositive() {
		return sdkmath.Int{}, sdkerrors.Wrapf(types.ErrInvalidAmount, "%s holds no value to withdraw; principal is only recoverable as a refund after vesting", strategy.Name())
	}
	shares, err := utils.ToStrategyShares(amount, supply, value)
	if err != nil {
		return sdkmath.Int{}, sdkerrors.Wrapf(types.ErrStrategy, "%s: %v", strategy.Name(), err)
	}
	held, err := strategy.SharesOf(ctx, custody)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if shares.GT(held) {
		shares = held
	}
	if !shares.IsPositive() {
		return sdkmath.Int{}, sdkerrors.Wrapf(types.ErrInvalidAmount, "%s amount %s is worth no strategy shares", strategy.Name(), amount)
	}

	before := k.CustodyBalance(ctx, denom)
	if err := strategy.Withdraw(ctx, custody, shares); err != nil {
		return sdkmath.Int{}, err
	}
	after := k.CustodyBalance(ctx, denom)
	if after.LT(before) {
		return sdkmath.Int{}, sdkerrors.Wrapf(types.ErrStrategy, "%s withdrawal reduced the custody balance", strategy.Name())
	}
	return after.Sub(before), nil
}

// payProfitSharingFee splits fee evenly between the treasury and the community wallet.
// The odd unit of an uneven fee stays in custody.
func (k Keeper) payProfitSharingFee(ctx sdk.Context, params types.Params, fee sdkmath.Int) error {
	if !fee.IsPositive() {
		return nil
	}
	toTreasury, toCommunity := feetier.SplitProfitFee(fee)
	custody := types.ModuleAddress()
	if err := k.send(ctx, custody, sdk.MustAccAddressFromBech32(params.TreasuryWallet), params.Denom, toTreasury); err != nil {
		return sdkerrors.Wrap(err, "failed to pay treasury share of profit fee")
	}
	if err := k.send(ctx, custody, sdk.MustAccAddressFromBech32(params.CommunityWallet), params.Denom, toCommunity); err != nil {
		return sdkerrors.Wrap(err, "failed to pay community share of profit fee")
	}
	ctx.EventManager().EmitEvent(types.NewEventProfitSharingFee(params.TreasuryWallet, params.CommunityWallet, fee))
	return nil
}
