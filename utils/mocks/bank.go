package mocks

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/provlabs/yieldrouter/types"
)

var _ types.BankKeeper = (*BankKeeper)(nil)

// BankKeeper is a minimal bank backed by the module store, so cached contexts roll it back
// together with the ledger.
type BankKeeper struct {
	Balances collections.Map[collections.Pair[sdk.AccAddress, string], sdkmath.Int]
}

// NewBankKeeper registers the balance map on the schema builder.
func NewBankKeeper(sb *collections.SchemaBuilder) *BankKeeper {
	return &BankKeeper{
		Balances: collections.NewMap(sb, collections.NewPrefix(100), "mock_balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
	}
}

// GetBalance returns the balance of addr in denom, zero when unset.
func (b *BankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amt, err := b.Balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		return sdk.NewCoin(denom, sdkmath.ZeroInt())
	}
	return sdk.NewCoin(denom, amt)
}

// SendCoins moves amt from fromAddr to toAddr.
func (b *BankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if !amt.IsValid() {
		return sdkerrors.Wrap(errortypes.ErrInvalidCoins, amt.String())
	}
	for _, coin := range amt {
		have := b.GetBalance(ctx, fromAddr, coin.Denom)
		if have.Amount.LT(coin.Amount) {
			return sdkerrors.Wrapf(errortypes.ErrInsufficientFunds, "spendable balance %s is smaller than %s", have, coin)
		}
		if err := b.Balances.Set(ctx, collections.Join(fromAddr, coin.Denom), have.Amount.Sub(coin.Amount)); err != nil {
			return err
		}
		if err := b.add(ctx, toAddr, coin); err != nil {
			return err
		}
	}
	return nil
}

// Mint creates amt out of thin air for addr.
func (b *BankKeeper) Mint(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		if err := b.add(ctx, addr, coin); err != nil {
			return err
		}
	}
	return nil
}

// Burn destroys amt held by addr.
func (b *BankKeeper) Burn(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		have := b.GetBalance(ctx, addr, coin.Denom)
		if have.Amount.LT(coin.Amount) {
			return errors.New("burn amount exceeds balance")
		}
		if err := b.Balances.Set(ctx, collections.Join(addr, coin.Denom), have.Amount.Sub(coin.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func (b *BankKeeper) add(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) error {
	have := b.GetBalance(ctx, addr, coin.Denom)
	return b.Balances.Set(ctx, collections.Join(addr, coin.Denom), have.Amount.Add(coin.Amount))
}
