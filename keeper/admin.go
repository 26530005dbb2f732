package keeper

import (
	"fmt"
	"strconv"

	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

// updateParams applies change to the params on behalf of the owner. The full resulting
// params must validate before anything is stored. change returns the old and new values
// reported in the param change event.
func (k *Keeper) updateParams(ctx sdk.Context, caller sdk.AccAddress, name string, change func(p *types.Params) (oldValue, newValue string)) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if err := requireOwner(params, caller); err != nil {
		return err
	}

	oldValue, newValue := change(&params)
	if err := params.Validate(); err != nil {
		return err
	}
	if err := k.Params.Set(ctx, params); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(types.NewEventParamChange(name, oldValue, newValue))
	k.getLogger(ctx).Info("param changed", "param", name, "old", oldValue, "new", newValue)
	return nil
}

// SetTreasuryWallet replaces the wallet receiving network fees and half of profit fees.
func (k *Keeper) SetTreasuryWallet(ctx sdk.Context, caller, wallet sdk.AccAddress) error {
	return k.updateParams(ctx, caller, "treasury_wallet", func(p *types.Params) (string, string) {
		old := p.TreasuryWallet
		p.TreasuryWallet = wallet.String()
		return old, p.TreasuryWallet
	})
}

// SetCommunityWallet replaces the wallet receiving half of profit fees.
func (k *Keeper) SetCommunityWallet(ctx sdk.Context, caller, wallet sdk.AccAddress) error {
	return k.updateParams(ctx, caller, "community_wallet", func(p *types.Params) (string, string) {
		old := p.CommunityWallet
		p.CommunityWallet = wallet.String()
		return old, p.CommunityWallet
	})
}

// SetNetworkFeeTier2 replaces the inclusive bounds of tier 2.
func (k *Keeper) SetNetworkFeeTier2(ctx sdk.Context, caller sdk.AccAddress, minAmount, maxAmount sdkmath.Int) error {
	return k.updateParams(ctx, caller, "network_fee_tier2", func(p *types.Params) (string, string) {
		old := fmt.Sprintf("[%s,%s]", p.FeeSchedule.Tier2Min, p.FeeSchedule.Tier2Max)
		p.FeeSchedule.Tier2Min = minAmount
		p.FeeSchedule.Tier2Max = maxAmount
		return old, fmt.Sprintf("[%s,%s]", minAmount, maxAmount)
	})
}

// SetNetworkFeePercentage replaces the percentages of tiers 1 to 3.
func (k *Keeper) SetNetworkFeePercentage(ctx sdk.Context, caller sdk.AccAddress, percentages [3]uint64) error {
	return k.updateParams(ctx, caller, "network_fee_percentage", func(p *types.Params) (string, string) {
		old := fmt.Sprint(p.FeeSchedule.Percentages)
		p.FeeSchedule.Percentages = percentages
		return old, fmt.Sprint(percentages)
	})
}

// SetCustomNetworkFeeTier replaces the threshold of the custom tier.
func (k *Keeper) SetCustomNetworkFeeTier(ctx sdk.Context, caller sdk.AccAddress, threshold sdkmath.Int) error {
	return k.updateParams(ctx, caller, "custom_network_fee_tier", func(p *types.Params) (string, string) {
		old := p.FeeSchedule.CustomTierThreshold.String()
		p.FeeSchedule.CustomTierThreshold = threshold
		return old, threshold.String()
	})
}

// SetCustomNetworkFeePercentage replaces the percentage of the custom tier.
func (k *Keeper) SetCustomNetworkFeePercentage(ctx sdk.Context, caller sdk.AccAddress, pct uint64) error {
	return k.updateParams(ctx, caller, "custom_network_fee_percentage", func(p *types.Params) (string, string) {
		old := strconv.FormatUint(p.FeeSchedule.CustomPercentage, 10)
		p.FeeSchedule.CustomPercentage = pct
		return old, strconv.FormatUint(pct, 10)
	})
}

// SetProfitSharingFeePercentage replaces the fee charged on realized profit.
func (k *Keeper) SetProfitSharingFeePercentage(ctx sdk.Context, caller sdk.AccAddress, pct uint64) error {
	return k.updateParams(ctx, caller, "profit_sharing_fee_percentage", func(p *types.Params) (string, string) {
		old := strconv.FormatUint(p.ProfitSharingFeePercentage, 10)
		p.ProfitSharingFeePercentage = pct
		return old, strconv.FormatUint(pct, 10)
	})
}

// SetProfitSharingOnWithdraw toggles the profit-sharing fee on withdrawals. Vesting always
// charges it.
func (k *Keeper) SetProfitSharingOnWithdraw(ctx sdk.Context, caller sdk.AccAddress, enabled bool) error {
	return k.updateParams(ctx, caller, "profit_sharing_on_withdraw", func(p *types.Params) (string, string) {
		old := strconv.FormatBool(p.ProfitSharingOnWithdraw)
		p.ProfitSharingOnWithdraw = enabled
		return old, strconv.FormatBool(enabled)
	})
}

// TransferOwnership hands every owner-only operation to newOwner.
func (k *Keeper) TransferOwnership(ctx sdk.Context, caller, newOwner sdk.AccAddress) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if err := requireOwner(params, caller); err != nil {
		return err
	}
	if newOwner.Empty() {
		return sdkerrors.Wrap(types.ErrInvalidRequest, "new owner cannot be empty")
	}

	oldOwner := params.Owner
	params.Owner = newOwner.String()
	if err := params.Validate(); err != nil {
		return err
	}
	if err := k.Params.Set(ctx, params); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(types.NewEventOwnershipTransferred(oldOwner, params.Owner))
	k.getLogger(ctx).Info("ownership transferred", "old", oldOwner, "new", params.Owner)
	return nil
}
