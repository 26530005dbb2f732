package mocks

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/provlabs/yieldrouter/strategy"
	"github.com/provlabs/yieldrouter/utils"
)

var (
	_ strategy.EarnProtocol  = (*Strategy)(nil)
	_ strategy.VaultProtocol = (*Strategy)(nil)
)

// ErrStrategyHalted is returned by a Strategy while Halted is set.
var ErrStrategyHalted = errors.New("strategy halted")

// Strategy is a share-issuing yield strategy whose value is whatever tokens its address
// holds in the mock bank. Profit and loss are simulated with InjectProfit and InjectLoss.
type Strategy struct {
	name  string
	denom string
	bank  *BankKeeper

	Shares collections.Map[sdk.AccAddress, sdkmath.Int]
	Supply collections.Item[sdkmath.Int]

	// Halted makes every state-changing call fail.
	Halted bool
	// PendingYield is credited to the strategy at the start of the next Withdraw, modelling
	// interest that accrues when a position is redeemed.
	PendingYield sdkmath.Int
}

// NewStrategy registers the strategy collections under the prefixes prefix and prefix+1.
func NewStrategy(sb *collections.SchemaBuilder, prefix int, name, denom string, bank *BankKeeper) *Strategy {
	return &Strategy{
		name:   name,
		denom:  denom,
		bank:   bank,
		Shares: collections.NewMap(sb, collections.NewPrefix(prefix), name+"_shares", sdk.AccAddressKey, sdk.IntValue),
		Supply: collections.NewItem(sb, collections.NewPrefix(prefix+1), name+"_supply", sdk.IntValue),
	}
}

// Address is the account holding the strategy's tokens.
func (s *Strategy) Address() sdk.AccAddress {
	return authtypes.NewModuleAddress("strategy/" + s.name)
}

func (s *Strategy) Deposit(ctx context.Context, from sdk.AccAddress, amount sdkmath.Int) error {
	if s.Halted {
		return ErrStrategyHalted
	}
	if !amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive: %s", amount)
	}
	supply, err := s.TotalSupply(ctx)
	if err != nil {
		return err
	}
	value, err := s.Balance(ctx)
	if err != nil {
		return err
	}
	minted, err := utils.SharesForDeposit(amount, supply, value)
	if err != nil {
		return err
	}
	if err := s.bank.SendCoins(ctx, from, s.Address(), sdk.NewCoins(sdk.NewCoin(s.denom, amount))); err != nil {
		return err
	}
	held, err := s.BalanceOf(ctx, from)
	if err != nil {
		return err
	}
	if err := s.Shares.Set(ctx, from, held.Add(minted)); err != nil {
		return err
	}
	return s.Supply.Set(ctx, supply.Add(minted))
}

func (s *Strategy) Withdraw(ctx context.Context, to sdk.AccAddress, shares sdkmath.Int) error {
	if s.Halted {
		return ErrStrategyHalted
	}
	if !s.PendingYield.IsNil() && s.PendingYield.IsPositive() {
		if err := s.InjectProfit(ctx, s.PendingYield); err != nil {
			return err
		}
		s.PendingYield = sdkmath.Int{}
	}
	held, err := s.BalanceOf(ctx, to)
	if err != nil {
		return err
	}
	if shares.GT(held) {
		return fmt.Errorf("withdraw %s shares exceeds balance %s", shares, held)
	}
	supply, err := s.TotalSupply(ctx)
	if err != nil {
		return err
	}
	value, err := s.Balance(ctx)
	if err != nil {
		return err
	}
	out, err := utils.ProRata(shares, supply, value)
	if err != nil {
		return err
	}
	if err := s.Shares.Set(ctx, to, held.Sub(shares)); err != nil {
		return err
	}
	if err := s.Supply.Set(ctx, supply.Sub(shares)); err != nil {
		return err
	}
	return s.bank.SendCoins(ctx, s.Address(), to, sdk.NewCoins(sdk.NewCoin(s.denom, out)))
}

func (s *Strategy) TotalSupply(ctx context.Context) (sdkmath.Int, error) {
	supply, err := s.Supply.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroInt(), nil
	}
	return supply, err
}

// PoolValueInToken is the Earn-style value query.
func (s *Strategy) PoolValueInToken(ctx context.Context) (sdkmath.Int, error) {
	return s.Balance(ctx)
}

// Balance is the Vault-style value query.
func (s *Strategy) Balance(ctx context.Context) (sdkmath.Int, error) {
	return s.bank.GetBalance(ctx, s.Address(), s.denom).Amount, nil
}

func (s *Strategy) BalanceOf(ctx context.Context, holder sdk.AccAddress) (sdkmath.Int, error) {
	held, err := s.Shares.Get(ctx, holder)
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroInt(), nil
	}
	return held, err
}

// InjectProfit adds amount tokens to the strategy without minting shares.
func (s *Strategy) InjectProfit(ctx context.Context, amount sdkmath.Int) error {
	return s.bank.Mint(ctx, s.Address(), sdk.NewCoins(sdk.NewCoin(s.denom, amount)))
}

// InjectLoss removes amount tokens from the strategy without burning shares.
func (s *Strategy) InjectLoss(ctx context.Context, amount sdkmath.Int) error {
	return s.bank.Burn(ctx, s.Address(), sdk.NewCoins(sdk.NewCoin(s.denom, amount)))
}
