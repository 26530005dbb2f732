package types

import (
	"cosmossdk.io/collections"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "yieldrouter"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// FacadeName is the name used to derive the address of the depositor-facing vault facade.
	FacadeName = ModuleName + "/vault"

	// BasisPoints is the denominator used for every percentage in the module.
	BasisPoints = 10_000

	// MaxFeePercentage is the upper bound (inclusive) for any configurable fee percentage.
	MaxFeePercentage = 4_000

	// LockDuration is the number of seconds a migration unlock must age before funds can move.
	LockDuration = 2 * 24 * 60 * 60
)

var (
	// ParamsKeyPrefix is the prefix to retrieve the module Params
	ParamsKeyPrefix = collections.NewPrefix(0)
	// ParamsName is a human-readable name for the params collection.
	ParamsName = "params"
	// LifecycleKeyPrefix is the prefix of the lifecycle item.
	LifecycleKeyPrefix = collections.NewPrefix(1)
	// LifecycleName is a human-readable name for the lifecycle item.
	LifecycleName = "lifecycle"
	// PoolKeyPrefix is the prefix of the recorded principal pool.
	PoolKeyPrefix = collections.NewPrefix(2)
	// PoolName is a human-readable name for the pool item.
	PoolName = "pool"
	// TotalPoolSharesKeyPrefix is the prefix of the pool share supply item.
	TotalPoolSharesKeyPrefix = collections.NewPrefix(3)
	// TotalPoolSharesName is a human-readable name for the pool share supply item.
	TotalPoolSharesName = "total_pool_shares"
	// EarnPrincipalKeyPrefix is the prefix of the per-depositor Earn principal map.
	EarnPrincipalKeyPrefix = collections.NewPrefix(4)
	// EarnPrincipalName is a human-readable name for the Earn principal map.
	EarnPrincipalName = "earn_principal"
	// VaultPrincipalKeyPrefix is the prefix of the per-depositor Vault principal map.
	VaultPrincipalKeyPrefix = collections.NewPrefix(5)
	// VaultPrincipalName is a human-readable name for the Vault principal map.
	VaultPrincipalName = "vault_principal"
	// PoolSharesKeyPrefix is the prefix of the per-depositor pool share map.
	PoolSharesKeyPrefix = collections.NewPrefix(6)
	// PoolSharesName is a human-readable name for the pool share map.
	PoolSharesName = "pool_shares"
	// MigrationLockKeyPrefix is the prefix of the migration timelock item.
	MigrationLockKeyPrefix = collections.NewPrefix(7)
	// MigrationLockName is a human-readable name for the migration timelock item.
	MigrationLockName = "migration_lock"
)

// ModuleAddress returns the custody account that holds tokens on behalf of every depositor.
func ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}

// FacadeAddress returns the address of the vault facade, the only caller allowed to
// drive depositor-level ledger operations.
func FacadeAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(FacadeName)
}
