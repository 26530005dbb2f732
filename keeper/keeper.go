package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

type Keeper struct {
	schema collections.Schema

	BankKeeper    types.BankKeeper
	AccountKeeper types.AccountKeeper
	EarnStrategy  types.Strategy
	VaultStrategy types.Strategy

	metrics *Metrics

	Params          collections.Item[types.Params]
	Lifecycle       collections.Item[uint64]
	Pool            collections.Item[sdkmath.Int]
	TotalPoolShares collections.Item[sdkmath.Int]
	EarnPrincipal   collections.Map[sdk.AccAddress, sdkmath.Int]
	VaultPrincipal  collections.Map[sdk.AccAddress, sdkmath.Int]
	PoolShares      collections.Map[sdk.AccAddress, sdkmath.Int]
	MigrationLock   collections.Item[types.MigrationLock]
}

// NewKeeper returns a new keeper for the yield router ledger. The Earn and Vault strategies
// are fixed for the lifetime of the keeper.
func NewKeeper(
	storeService store.KVStoreService,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	earnStrategy types.Strategy,
	vaultStrategy types.Strategy,
) *Keeper {
	if earnStrategy == nil || vaultStrategy == nil {
		panic("both earn and vault strategies are required")
	}

	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		BankKeeper:      bankKeeper,
		AccountKeeper:   accountKeeper,
		EarnStrategy:    earnStrategy,
		VaultStrategy:   vaultStrategy,
		Params:          collections.NewItem(builder, types.ParamsKeyPrefix, types.ParamsName, types.ParamsValue),
		Lifecycle:       collections.NewItem(builder, types.LifecycleKeyPrefix, types.LifecycleName, collections.Uint64Value),
		Pool:            collections.NewItem(builder, types.PoolKeyPrefix, types.PoolName, sdk.IntValue),
		TotalPoolShares: collections.NewItem(builder, types.TotalPoolSharesKeyPrefix, types.TotalPoolSharesName, sdk.IntValue),
		EarnPrincipal:   collections.NewMap(builder, types.EarnPrincipalKeyPrefix, types.EarnPrincipalName, sdk.AccAddressKey, sdk.IntValue),
		VaultPrincipal:  collections.NewMap(builder, types.VaultPrincipalKeyPrefix, types.VaultPrincipalName, sdk.AccAddressKey, sdk.IntValue),
		PoolShares:      collections.NewMap(builder, types.PoolSharesKeyPrefix, types.PoolSharesName, sdk.AccAddressKey, sdk.IntValue),
		MigrationLock:   collections.NewItem(builder, types.MigrationLockKeyPrefix, types.MigrationLockName, types.MigrationLockValue),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build %s schema: %s", types.ModuleName, err))
	}

	keeper.schema = schema
	return keeper
}

// WithMetrics attaches Prometheus collectors. A nil m disables metrics.
func (k *Keeper) WithMetrics(m *Metrics) *Keeper {
	k.metrics = m
	return k
}

// Metrics returns the attached collectors, possibly nil.
func (k Keeper) Metrics() *Metrics {
	return k.metrics
}

// strategies returns the Earn and Vault strategies in that order.
func (k Keeper) strategies() [2]types.Strategy {
	return [2]types.Strategy{k.EarnStrategy, k.VaultStrategy}
}

// getLogger returns a logger with yieldrouter module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}
