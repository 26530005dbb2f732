package yieldrouter

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/keeper"
	"github.com/provlabs/yieldrouter/types"
)

// ParseGenesis decodes a genesis document and validates it.
func ParseGenesis(bz json.RawMessage) (*types.GenesisState, error) {
	var genesis types.GenesisState
	if err := json.Unmarshal(bz, &genesis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	if err := genesis.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s genesis state: %w", types.ModuleName, err)
	}
	return &genesis, nil
}

// InitGenesis initializes the ledger from a provided genesis state.
func InitGenesis(ctx sdk.Context, k *keeper.Keeper, genState *types.GenesisState) {
	k.InitGenesis(ctx, genState)
	lc, err := k.GetLifecycle(ctx)
	if err == nil {
		k.Metrics().SetLifecycle(lc)
	}
}

// ExportGenesis returns the ledger's exported genesis.
func ExportGenesis(ctx sdk.Context, k *keeper.Keeper) *types.GenesisState {
	return k.ExportGenesis(ctx)
}
