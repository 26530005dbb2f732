package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

// GetParams returns the module params. They are always set by genesis.
func (k Keeper) GetParams(ctx sdk.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		return types.Params{}, sdkerrors.Wrap(err, "failed to read params")
	}
	return params, nil
}

// GetLifecycle returns the ledger lifecycle, Active when unset.
func (k Keeper) GetLifecycle(ctx sdk.Context) (types.Lifecycle, error) {
	v, err := k.Lifecycle.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.LifecycleActive, nil
	}
	if err != nil {
		return 0, err
	}
	lc := types.Lifecycle(v)
	return lc, lc.Validate()
}

// SetLifecycle stores the ledger lifecycle.
func (k Keeper) SetLifecycle(ctx sdk.Context, lc types.Lifecycle) error {
	if err := lc.Validate(); err != nil {
		return err
	}
	return k.Lifecycle.Set(ctx, uint64(lc))
}

// GetPool returns the recorded principal deployed into the strategies.
func (k Keeper) GetPool(ctx sdk.Context) (sdkmath.Int, error) {
	return getIntOrZero(ctx, k.Pool)
}

// GetTotalPoolShares returns the pool share supply.
func (k Keeper) GetTotalPoolShares(ctx sdk.Context) (sdkmath.Int, error) {
	return getIntOrZero(ctx, k.TotalPoolShares)
}

// GetMigrationLock returns the migration timelock, zero valued when unset.
func (k Keeper) GetMigrationLock(ctx sdk.Context) (types.MigrationLock, error) {
	lock, err := k.MigrationLock.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.MigrationLock{}, nil
	}
	return lock, err
}

// GetDepositorAccount loads every balance of a depositor. Unknown depositors read as zero.
func (k Keeper) GetDepositorAccount(ctx sdk.Context, addr sdk.AccAddress) (types.DepositorAccount, error) {
	acc := types.NewDepositorAccount(addr)
	var err error
	if acc.EarnPrincipal, err = getMapIntOrZero(ctx, k.EarnPrincipal, addr); err != nil {
		return acc, err
	}
	if acc.VaultPrincipal, err = getMapIntOrZero(ctx, k.VaultPrincipal, addr); err != nil {
		return acc, err
	}
	if acc.PoolShares, err = getMapIntOrZero(ctx, k.PoolShares, addr); err != nil {
		return acc, err
	}
	return acc, nil
}

// SetDepositorAccount persists every balance of a depositor. Zeroed accounts are kept.
func (k Keeper) SetDepositorAccount(ctx sdk.Context, acc types.DepositorAccount) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	addr, err := sdk.AccAddressFromBech32(acc.Address)
	if err != nil {
		return err
	}
	if err := k.EarnPrincipal.Set(ctx, addr, acc.EarnPrincipal); err != nil {
		return err
	}
	if err := k.VaultPrincipal.Set(ctx, addr, acc.VaultPrincipal); err != nil {
		return err
	}
	return k.PoolShares.Set(ctx, addr, acc.PoolShares)
}

// GetDepositorAccounts returns every depositor ever recorded.
func (k Keeper) GetDepositorAccounts(ctx sdk.Context) ([]types.DepositorAccount, error) {
	accounts := []types.DepositorAccount{}
	err := k.PoolShares.Walk(ctx, nil, func(addr sdk.AccAddress, _ sdkmath.Int) (stop bool, err error) {
		acc, err := k.GetDepositorAccount(ctx, addr)
		if err != nil {
			return true, err
		}
		accounts = append(accounts, acc)
		return false, nil
	})
	return accounts, err
}

// CustodyBalance returns the underlying held directly by the module account.
func (k Keeper) CustodyBalance(ctx sdk.Context, denom string) sdkmath.Int {
	return k.BankKeeper.GetBalance(ctx, types.ModuleAddress(), denom).Amount
}

// adjustPool adds delta to the pool and to the pool share supply.
func (k Keeper) adjustPool(ctx sdk.Context, delta sdkmath.Int) error {
	pool, err := k.GetPool(ctx)
	if err != nil {
		return err
	}
	if pool, err = pool.SafeAdd(delta); err != nil {
		return err
	}
	if pool.IsNegative() {
		return sdkerrors.Wrapf(types.ErrInvalidAmount, "pool would become negative: %s", pool)
	}
	if err := k.Pool.Set(ctx, pool); err != nil {
		return err
	}
	return k.adjustTotalPoolShares(ctx, delta)
}

func (k Keeper) adjustTotalPoolShares(ctx sdk.Context, delta sdkmath.Int) error {
	total, err := k.GetTotalPoolShares(ctx)
	if err != nil {
		return err
	}
	if total, err = total.SafeAdd(delta); err != nil {
		return err
	}
	if total.IsNegative() {
		return sdkerrors.Wrapf(types.ErrInvalidAmount, "pool share supply would become negative: %s", total)
	}
	return k.TotalPoolShares.Set(ctx, total)
}

// send moves amount of denom between two accounts, skipping zero amounts.
func (k Keeper) send(ctx sdk.Context, from, to sdk.AccAddress, denom string, amount sdkmath.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	return k.BankKeeper.SendCoins(ctx, from, to, sdk.NewCoins(sdk.NewCoin(denom, amount)))
}

// requireOwner rejects callers other than the configured owner.
func requireOwner(params types.Params, caller sdk.AccAddress) error {
	if !params.OwnerAddress().Equals(caller) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "caller %s is not the owner", caller)
	}
	return nil
}

// requireFacade rejects callers other than the vault facade.
func requireFacade(caller sdk.AccAddress) error {
	if !types.FacadeAddress().Equals(caller) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "caller %s is not the vault", caller)
	}
	return nil
}

func getIntOrZero(ctx sdk.Context, item collections.Item[sdkmath.Int]) (sdkmath.Int, error) {
	v, err := item.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroInt(), nil
	}
	return v, err
}

func getMapIntOrZero(ctx sdk.Context, m collections.Map[sdk.AccAddress, sdkmath.Int], addr sdk.AccAddress) (sdkmath.Int, error) {
	v, err := m.Get(ctx, addr)
	if errors.Is(err, collections.ErrNotFound) {
		return sdkmath.ZeroInt(), nil
	}
	return v, err
}
