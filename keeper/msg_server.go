package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

var _ types.MsgServer = &msgServer{}

// msgServer is the vault facade. It is the only path that mutates the ledger and it calls
// the ledger as the facade address.
type msgServer struct {
	*Keeper
}

// NewMsgServer returns the vault facade for the keeper.
func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// atomically runs fn on a cached context and writes it back only when fn succeeds, so a
// rejected call leaves no state or events behind.
func atomically(goCtx context.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := sdk.UnwrapSDKContext(goCtx).CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

// requireExternallyOwned rejects module accounts as depositors when EOAOnly is set.
func (k msgServer) requireExternallyOwned(ctx sdk.Context, params types.Params, depositor sdk.AccAddress) error {
	if !params.EOAOnly || k.AccountKeeper == nil {
		return nil
	}
	if _, ok := k.AccountKeeper.GetAccount(ctx, depositor).(sdk.ModuleAccountI); ok {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "depositor %s is a module account", depositor)
	}
	return nil
}

// Deposit moves earn + vault tokens from the depositor into custody and records them.
func (k msgServer) Deposit(goCtx context.Context, msg *types.MsgDepositRequest) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)

	var result DepositResult
	err := atomically(goCtx, func(ctx sdk.Context) error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if err := k.requireExternallyOwned(ctx, params, depositor); err != nil {
			return err
		}
		total := msg.EarnAmount.Add(msg.VaultAmount)
		if err := k.send(ctx, depositor, types.ModuleAddress(), params.Denom, total); err != nil {
			return sdkerrors.Wrap(err, "failed to transfer deposit")
		}
		result, err = k.Keeper.Deposit(ctx, types.FacadeAddress(), depositor, msg.EarnAmount, msg.VaultAmount)
		return err
	})
	if err != nil {
		return nil, err
	}

	k.metrics.ObserveDeposit(result.EarnNet, result.VaultNet)
	k.metrics.ObserveFee(FeeKindNetwork, result.Fees.Total())
	return &types.MsgDepositResponse{
		EarnFee:      result.Fees.EarnFee,
		VaultFee:     result.Fees.VaultFee,
		SharesMinted: result.SharesMinted,
	}, nil
}

// Withdraw redeems pool shares through the strategies.
func (k msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdrawRequest) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)

	var result WithdrawResult
	err := atomically(goCtx, func(ctx sdk.Context) (err error) {
		result, err = k.Keeper.Withdraw(ctx, types.FacadeAddress(), depositor, msg.EarnShares, msg.VaultShares)
		return err
	})
	if err != nil {
		return nil, err
	}

	k.metrics.ObserveWithdraw(result.AmountOut)
	k.metrics.ObserveFee(FeeKindProfit, result.ProfitSharingFee)
	return &types.MsgWithdrawResponse{
		AmountOut:        result.AmountOut,
		ProfitSharingFee: result.ProfitSharingFee,
	}, nil
}

// Refund pays a depositor's share of the vesting reserve.
func (k msgServer) Refund(goCtx context.Context, msg *types.MsgRefundRequest) (*types.MsgRefundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)

	var amount sdkmath.Int
	err := atomically(goCtx, func(ctx sdk.Context) (err error) {
		amount, err = k.Keeper.Refund(ctx, types.FacadeAddress(), depositor)
		return err
	})
	if err != nil {
		return nil, err
	}

	k.metrics.ObserveRefund(amount)
	return &types.MsgRefundResponse{AmountOut: amount}, nil
}

// Vesting exits the strategies and freezes the ledger.
func (k msgServer) Vesting(goCtx context.Context, msg *types.MsgVestingRequest) (*types.MsgVestingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	authority := sdk.MustAccAddressFromBech32(msg.Authority)

	var result VestingResult
	err := atomically(goCtx, func(ctx sdk.Context) (err error) {
		result, err = k.Keeper.Vesting(ctx, authority)
		return err
	})
	if err != nil {
		return nil, err
	}

	k.metrics.ObserveFee(FeeKindProfit, result.ProfitSharingFee)
	k.metrics.SetLifecycle(types.LifecycleVesting)
	return &types.MsgVestingResponse{
		Withdrawn:        result.Withdrawn,
		ProfitSharingFee: result.ProfitSharingFee,
		Reserve:          result.Reserve,
	}, nil
}

// SetPendingStrategy chooses the migration target.
func (k msgServer) SetPendingStrategy(goCtx context.Context, msg *types.MsgSetPendingStrategyRequest) (*types.MsgSetPendingStrategyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.SetPendingStrategy(ctx, sdk.MustAccAddressFromBech32(msg.Authority), sdk.MustAccAddressFromBech32(msg.Strategy))
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetPendingStrategyResponse{}, nil
}

// UnlockMigrateFunds arms the migration timelock.
func (k msgServer) UnlockMigrateFunds(goCtx context.Context, msg *types.MsgUnlockMigrateFundsRequest) (*types.MsgUnlockMigrateFundsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	var unlockTime int64
	err := atomically(goCtx, func(ctx sdk.Context) (err error) {
		unlockTime, err = k.Keeper.UnlockMigrateFunds(ctx, sdk.MustAccAddressFromBech32(msg.Authority))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgUnlockMigrateFundsResponse{UnlockTime: unlockTime}, nil
}

// MigrateFunds moves the custody balance to the pending strategy.
func (k msgServer) MigrateFunds(goCtx context.Context, msg *types.MsgMigrateFundsRequest) (*types.MsgMigrateFundsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	var (
		target sdk.AccAddress
		amount sdkmath.Int
	)
	err := atomically(goCtx, func(ctx sdk.Context) (err error) {
		target, amount, err = k.Keeper.MigrateFunds(ctx, sdk.MustAccAddressFromBech32(msg.Authority))
		return err
	})
	if err != nil {
		return nil, err
	}

	k.metrics.ObserveMigration()
	return &types.MsgMigrateFundsResponse{Strategy: target.String(), Amount: amount}, nil
}

// ApproveMigrate allows the vesting reserve to be migrated.
func (k msgServer) ApproveMigrate(goCtx context.Context, msg *types.MsgApproveMigrateRequest) (*types.MsgApproveMigrateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.ApproveMigrate(ctx, sdk.MustAccAddressFromBech32(msg.Authority))
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgApproveMigrateResponse{}, nil
}

func (k msgServer) SetTreasuryWallet(goCtx context.Context, msg *types.MsgSetTreasuryWalletRequest) (*types.MsgSetTreasuryWalletResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.SetTreasuryWallet(ctx, sdk.MustAccAddressFromBech32(msg.Authority), sdk.MustAccAddressFromBech32(msg.Wallet))
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetTreasuryWalletResponse{}, nil
}

func (k msgServer) SetCommunityWallet(goCtx context.Context, msg *types.MsgSetCommunityWalletRequest) (*types.MsgSetCommunityWalletResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.SetCommunityWallet(ctx, sdk.MustAccAddressFromBech32(msg.Authority), sdk.MustAccAddressFromBech32(msg.Wallet))
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetCommunityWalletResponse{}, nil
}

func (k msgServer) SetNetworkFeeTier2(goCtx context.Context, msg *types.MsgSetNetworkFeeTier2Request) (*types.MsgSetNetworkFeeTier2Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.SetNetworkFeeTier2(ctx, sdk.MustAccAddressFromBech32(msg.Authority), msg.Min, msg.Max)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetNetworkFeeTier2Response{}, nil
}

func (k msgServer) SetNetworkFeePercentage(goCtx context.Context, msg *types.MsgSetNetworkFeePercentageRequest) (*types.MsgSetNetworkFeePercentageResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.SetNetworkFeePercentage(ctx, sdk.MustAccAddressFromBech32(msg.Authority), msg.Percentages)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetNetworkFeePercentageResponse{}, nil
}

func (k msgServer) SetCustomNetworkFeeTier(goCtx context.Context, msg *types.MsgSetCustomNetworkFeeTierRequest) (*types.MsgSetCustomNetworkFeeTierResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.SetCustomNetworkFeeTier(ctx, sdk.MustAccAddressFromBech32(msg.Authority), msg.Threshold)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetCustomNetworkFeeTierResponse{}, nil
}

func (k msgServer) SetCustomNetworkFeePercentage(goCtx context.Context, msg *types.MsgSetCustomNetworkFeePercentageRequest) (*types.MsgSetCustomNetworkFeePercentageResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.SetCustomNetworkFeePercentage(ctx, sdk.MustAccAddressFromBech32(msg.Authority), msg.Percentage)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetCustomNetworkFeePercentageResponse{}, nil
}

func (k msgServer) SetProfitSharingFeePercentage(goCtx context.Context, msg *types.MsgSetProfitSharingFeePercentageRequest) (*types.MsgSetProfitSharingFeePercentageResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.SetProfitSharingFeePercentage(ctx, sdk.MustAccAddressFromBech32(msg.Authority), msg.Percentage)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetProfitSharingFeePercentageResponse{}, nil
}

func (k msgServer) SetProfitSharingOnWithdraw(goCtx context.Context, msg *types.MsgSetProfitSharingOnWithdrawRequest) (*types.MsgSetProfitSharingOnWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.SetProfitSharingOnWithdraw(ctx, sdk.MustAccAddressFromBech32(msg.Authority), msg.Enabled)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgSetProfitSharingOnWithdrawResponse{}, nil
}

func (k msgServer) TransferOwnership(goCtx context.Context, msg *types.MsgTransferOwnershipRequest) (*types.MsgTransferOwnershipResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	err := atomically(goCtx, func(ctx sdk.Context) error {
		return k.Keeper.TransferOwnership(ctx, sdk.MustAccAddressFromBech32(msg.Authority), sdk.MustAccAddressFromBech32(msg.NewOwner))
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgTransferOwnershipResponse{}, nil
}
