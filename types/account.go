package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DepositorAccount is the ledger's view of a single depositor.
type DepositorAccount struct {
	Address        string      `json:"address"`
	EarnPrincipal  sdkmath.Int `json:"earn_principal"`
	VaultPrincipal sdkmath.Int `json:"vault_principal"`
	PoolShares     sdkmath.Int `json:"pool_shares"`
}

// NewDepositorAccount returns an account with every balance at zero.
func NewDepositorAccount(addr sdk.AccAddress) DepositorAccount {
	return DepositorAccount{
		Address:        addr.String(),
		EarnPrincipal:  sdkmath.ZeroInt(),
		VaultPrincipal: sdkmath.ZeroInt(),
		PoolShares:     sdkmath.ZeroInt(),
	}
}

// TotalPrincipal returns the sum of both principal sub-balances.
func (a DepositorAccount) TotalPrincipal() sdkmath.Int {
	return a.EarnPrincipal.Add(a.VaultPrincipal)
}

// Validate checks the address and that no balance is negative.
func (a DepositorAccount) Validate() error {
	if _, err := sdk.AccAddressFromBech32(a.Address); err != nil {
		return fmt.Errorf("invalid depositor address: %w", err)
	}
	for name, amt := range map[string]sdkmath.Int{
		"earn principal":  a.EarnPrincipal,
		"vault principal": a.VaultPrincipal,
		"pool shares":     a.PoolShares,
	} {
		if amt.IsNil() || amt.IsNegative() {
			return fmt.Errorf("%s for %s must be non-negative", name, a.Address)
		}
	}
	return nil
}
