package mocks

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/provlabs/yieldrouter/types"
)

var _ types.AccountKeeper = (*AccountKeeper)(nil)

// AccountKeeper returns base accounts for every address except the ones registered as
// module accounts.
type AccountKeeper struct {
	modules map[string]string
}

// NewAccountKeeper returns an AccountKeeper with no module accounts.
func NewAccountKeeper() *AccountKeeper {
	return &AccountKeeper{modules: map[string]string{}}
}

// AddModuleAccount makes addr resolve to a module account called name.
func (a *AccountKeeper) AddModuleAccount(addr sdk.AccAddress, name string) {
	a.modules[addr.String()] = name
}

// GetAccount implements types.AccountKeeper.
func (a *AccountKeeper) GetAccount(_ context.Context, addr sdk.AccAddress) sdk.AccountI {
	base := authtypes.NewBaseAccountWithAddress(addr)
	if name, ok := a.modules[addr.String()]; ok {
		return authtypes.NewModuleAccount(base, name)
	}
	return base
}

// Reset forgets every registered module account.
func (a *AccountKeeper) Reset() {
	a.modules = map[string]string{}
}
