package types

import (
	context "context"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper is used to tell depositor accounts apart from module accounts.
type AccountKeeper interface {
	GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI
}

// BankKeeper moves the underlying stablecoin.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// Strategy is the engine-facing contract of an external yield strategy. Implementations
// take custody of deposited tokens and issue their own strategy shares to the depositor.
type Strategy interface {
	// Name identifies the strategy in events and logs.
	Name() string
	// Deposit moves amount tokens from `from` into the strategy and mints strategy shares to `from`.
	Deposit(ctx context.Context, from sdk.AccAddress, amount sdkmath.Int) error
	// Withdraw burns shares held by `to` and sends the corresponding tokens back to `to`.
	Withdraw(ctx context.Context, to sdk.AccAddress, shares sdkmath.Int) error
	// TotalSupply is the outstanding strategy share supply.
	TotalSupply(ctx context.Context) (sdkmath.Int, error)
	// PoolValue is the total underlying value held by the strategy.
	PoolValue(ctx context.Context) (sdkmath.Int, error)
	// SharesOf is the strategy share balance of holder.
	SharesOf(ctx context.Context, holder sdk.AccAddress) (sdkmath.Int, error)
}
