package mocks

import (
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/keeper"
	"github.com/provlabs/yieldrouter/strategy"
	"github.com/provlabs/yieldrouter/types"
)

// Env is a keeper wired to store-backed mocks that share the module store.
type Env struct {
	Ctx      sdk.Context
	Keeper   *keeper.Keeper
	Bank     *BankKeeper
	Accounts *AccountKeeper
	Earn     *Strategy
	Vault    *Strategy
}

// NewYieldKeeper returns a keeper with all dependencies mocked and the genesis state
// initialized. The params from genesis are used as is, so callers can override owner,
// wallets and schedule before the ledger starts.
func NewYieldKeeper(t testing.TB, genesis *types.GenesisState) Env {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)
	storeService := runtime.NewKVStoreService(key)

	if genesis == nil {
		genesis = types.DefaultGenesisState()
	}

	sb := collections.NewSchemaBuilder(storeService)
	bank := NewBankKeeper(sb)
	earn := NewStrategy(sb, 110, strategy.EarnName, genesis.Params.Denom, bank)
	vault := NewStrategy(sb, 120, strategy.VaultName, genesis.Params.Denom, bank)
	if _, err := sb.Build(); err != nil {
		t.Fatalf("failed to build mock schema: %v", err)
	}
	accounts := NewAccountKeeper()

	k := keeper.NewKeeper(
		storeService,
		bank,
		accounts,
		strategy.NewEarnAdapter(earn),
		strategy.NewVaultAdapter(vault),
	)

	ctx := wrapper.Ctx.WithBlockTime(time.Unix(1_700_000_000, 0).UTC()).WithEventManager(sdk.NewEventManager())
	k.InitGenesis(ctx, genesis)

	return Env{
		Ctx:      ctx,
		Keeper:   k,
		Bank:     bank,
		Accounts: accounts,
		Earn:     earn,
		Vault:    vault,
	}
}
