package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// GenesisState is the complete ledger state of the module.
type GenesisState struct {
	Params          Params             `json:"params"`
	Lifecycle       Lifecycle          `json:"lifecycle"`
	Pool            sdkmath.Int        `json:"pool"`
	TotalPoolShares sdkmath.Int        `json:"total_pool_shares"`
	Accounts        []DepositorAccount `json:"accounts"`
	MigrationLock   MigrationLock      `json:"migration_lock"`
}

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:          DefaultParams(),
		Lifecycle:       LifecycleActive,
		Pool:            sdkmath.ZeroInt(),
		TotalPoolShares: sdkmath.ZeroInt(),
		Accounts:        []DepositorAccount{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if err := gs.Lifecycle.Validate(); err != nil {
		return err
	}
	if err := gs.MigrationLock.Validate(); err != nil {
		return fmt.Errorf("invalid migration lock: %w", err)
	}
	if gs.Pool.IsNil() || gs.Pool.IsNegative() {
		return fmt.Errorf("pool must be non-negative")
	}
	if gs.TotalPoolShares.IsNil() || gs.TotalPoolShares.IsNegative() {
		return fmt.Errorf("total pool shares must be non-negative")
	}

	seen := make(map[string]struct{}, len(gs.Accounts))
	principal := sdkmath.ZeroInt()
	shares := sdkmath.ZeroInt()
	for i, acc := range gs.Accounts {
		if err := acc.Validate(); err != nil {
			return fmt.Errorf("invalid account at index %d: %w", i, err)
		}
		if _, dup := seen[acc.Address]; dup {
			return fmt.Errorf("duplicate account %s", acc.Address)
		}
		seen[acc.Address] = struct{}{}
		principal = principal.Add(acc.TotalPrincipal())
		shares = shares.Add(acc.PoolShares)
	}

	if !shares.Equal(gs.TotalPoolShares) {
		return fmt.Errorf("sum of pool shares %s does not match total pool shares %s", shares, gs.TotalPoolShares)
	}

	switch gs.Lifecycle {
	case LifecycleActive:
		if !principal.Equal(gs.Pool) {
			return fmt.Errorf("sum of principal %s does not match pool %s", principal, gs.Pool)
		}
	case LifecycleVesting:
		if !gs.Pool.IsZero() {
			return fmt.Errorf("pool must be zero while vesting, got %s", gs.Pool)
		}
	}
	return nil
}
