package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

// InitGenesis initializes the yieldrouter ledger from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}

	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid yieldrouter genesis state: %w", err))
	}

	if err := k.Params.Set(ctx, genState.Params); err != nil {
		panic(err)
	}
	if err := k.SetLifecycle(ctx, genState.Lifecycle); err != nil {
		panic(err)
	}
	if err := k.Pool.Set(ctx, genState.Pool); err != nil {
		panic(err)
	}
	if err := k.TotalPoolShares.Set(ctx, genState.TotalPoolShares); err != nil {
		panic(err)
	}
	if err := k.MigrationLock.Set(ctx, genState.MigrationLock); err != nil {
		panic(err)
	}

	for i := range genState.Accounts {
		if err := k.SetDepositorAccount(ctx, genState.Accounts[i]); err != nil {
			panic(fmt.Errorf("failed to store depositor %s: %w", genState.Accounts[i].Address, err))
		}
	}
}

// ExportGenesis exports the current state of the yieldrouter ledger.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get yieldrouter params: %w", err))
	}
	lc, err := k.GetLifecycle(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get lifecycle: %w", err))
	}
	pool, err := k.GetPool(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get pool: %w", err))
	}
	total, err := k.GetTotalPoolShares(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get total pool shares: %w", err))
	}
	lock, err := k.GetMigrationLock(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get migration lock: %w", err))
	}
	accounts, err := k.GetDepositorAccounts(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get depositor accounts: %w", err))
	}

	return &types.GenesisState{
		Params:          params,
		Lifecycle:       lc,
		Pool:            pool,
		TotalPoolShares: total,
		Accounts:        accounts,
		MigrationLock:   lock,
	}
}
