package strategy

import (
	"context"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

// EarnProtocol is an Earn-style strategy. It reports its value via PoolValueInToken.
type EarnProtocol interface {
	Deposit(ctx context.Context, from sdk.AccAddress, amount sdkmath.Int) error
	Withdraw(ctx context.Context, to sdk.AccAddress, shares sdkmath.Int) error
	TotalSupply(ctx context.Context) (sdkmath.Int, error)
	PoolValueInToken(ctx context.Context) (sdkmath.Int, error)
	BalanceOf(ctx context.Context, holder sdk.AccAddress) (sdkmath.Int, error)
}

// VaultProtocol is a Vault-style strategy. It reports its value via Balance.
type VaultProtocol interface {
	Deposit(ctx context.Context, from sdk.AccAddress, amount sdkmath.Int) error
	Withdraw(ctx context.Context, to sdk.AccAddress, shares sdkmath.Int) error
	TotalSupply(ctx context.Context) (sdkmath.Int, error)
	Balance(ctx context.Context) (sdkmath.Int, error)
	BalanceOf(ctx context.Context, holder sdk.AccAddress) (sdkmath.Int, error)
}

const (
	EarnName  = "earn"
	VaultName = "vault"
)

var (
	_ types.Strategy = (*earnAdapter)(nil)
	_ types.Strategy = (*vaultAdapter)(nil)
)

// NewEarnAdapter exposes an Earn-style protocol as a types.Strategy.
func NewEarnAdapter(p EarnProtocol) types.Strategy {
	return &earnAdapter{p: p}
}

// NewVaultAdapter exposes a Vault-style protocol as a types.Strategy.
func NewVaultAdapter(p VaultProtocol) types.Strategy {
	return &vaultAdapter{p: p}
}

type earnAdapter struct {
	p EarnProtocol
}

func (a *earnAdapter) Name() string { return EarnName }

func (a *earnAdapter) Deposit(ctx context.Context, from sdk.AccAddress, amount sdkmath.Int) error {
	return wrap(EarnName, "deposit", a.p.Deposit(ctx, from, amount))
}

func (a *earnAdapter) Withdraw(ctx context.Context, to sdk.AccAddress, shares sdkmath.Int) error {
	return wrap(EarnName, "withdraw", a.p.Withdraw(ctx, to, shares))
}

func (a *earnAdapter) TotalSupply(ctx context.Context) (sdkmath.Int, error) {
	supply, err := a.p.TotalSupply(ctx)
	return supply, wrap(EarnName, "total supply", err)
}

func (a *earnAdapter) PoolValue(ctx context.Context) (sdkmath.Int, error) {
	value, err := a.p.PoolValueInToken(ctx)
	return value, wrap(EarnName, "pool value", err)
}

func (a *earnAdapter) SharesOf(ctx context.Context, holder sdk.AccAddress) (sdkmath.Int, error) {
	shares, err := a.p.BalanceOf(ctx, holder)
	return shares, wrap(EarnName, "balance of", err)
}

type vaultAdapter struct {
	p VaultProtocol
}

func (a *vaultAdapter) Name() string { return VaultName }

func (a *vaultAdapter) Deposit(ctx context.Context, from sdk.AccAddress, amount sdkmath.Int) error {
	return wrap(VaultName, "deposit", a.p.Deposit(ctx, from, amount))
}

func (a *vaultAdapter) Withdraw(ctx context.Context, to sdk.AccAddress, shares sdkmath.Int) error {
	return wrap(VaultName, "withdraw", a.p.Withdraw(ctx, to, shares))
}

func (a *vaultAdapter) TotalSupply(ctx context.Context) (sdkmath.Int, error) {
	supply, err := a.p.TotalSupply(ctx)
	return supply, wrap(VaultName, "total supply", err)
}

func (a *vaultAdapter) PoolValue(ctx context.Context) (sdkmath.Int, error) {
	value, err := a.p.Balance(ctx)
	return value, wrap(VaultName, "balance", err)
}

func (a *vaultAdapter) SharesOf(ctx context.Context, holder sdk.AccAddress) (sdkmath.Int, error) {
	shares, err := a.p.BalanceOf(ctx, holder)
	return shares, wrap(VaultName, "balance of", err)
}

// wrap tags a protocol failure with ErrStrategy. A nil err stays nil.
func wrap(name, op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(types.ErrStrategy, "%s %s: %v", name, op, err)
}
