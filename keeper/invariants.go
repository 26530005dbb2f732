package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
	"github.com/provlabs/yieldrouter/utils"
)

const (
	PoolConservationInvariant = "pool-conservation"
	ShareSupplyInvariant      = "share-supply"
)

// RegisterInvariants registers the ledger invariants on ir.
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, PoolConservationInvariant, PoolConservation(k))
	ir.RegisterRoute(types.ModuleName, ShareSupplyInvariant, ShareSupply(k))
}

// AllInvariants runs every ledger invariant.
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := PoolConservation(k)(ctx); broken {
			return msg, broken
		}
		return ShareSupply(k)(ctx)
	}
}

// PoolConservation checks that the pool equals the sum of all principal while Active and
// is zero once Vesting.
func PoolConservation(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		lc, err := k.GetLifecycle(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, PoolConservationInvariant, err.Error()), true
		}
		pool, err := k.GetPool(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, PoolConservationInvariant, err.Error()), true
		}

		var msg string
		broken := false
		switch lc {
		case types.LifecycleActive:
			accounts, err := k.GetDepositorAccounts(ctx)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, PoolConservationInvariant, err.Error()), true
			}
			principal := utils.SumInts(utils.Map(accounts, types.DepositorAccount.TotalPrincipal))
			if !principal.Equal(pool) {
				broken = true
				msg = fmt.Sprintf("sum of principal %s does not match pool %s\n", principal, pool)
			}
		case types.LifecycleVesting:
			if !pool.IsZero() {
				broken = true
				msg = fmt.Sprintf("pool is %s while vesting\n", pool)
			}
		default:
			broken = true
			msg = fmt.Sprintf("unknown lifecycle %s\n", lc)
		}

		if broken {
			k.getLogger(ctx).Error("invariant broken", "invariant", PoolConservationInvariant, "details", msg)
		}
		return sdk.FormatInvariant(types.ModuleName, PoolConservationInvariant, msg), broken
	}
}

// ShareSupply checks that the pool share supply equals the sum of every depositor's shares.
func ShareSupply(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		total, err := k.GetTotalPoolShares(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, ShareSupplyInvariant, err.Error()), true
		}

		sum := sdkmath.ZeroInt()
		err = k.PoolShares.Walk(ctx, nil, func(_ sdk.AccAddress, shares sdkmath.Int) (bool, error) {
			sum = sum.Add(shares)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, ShareSupplyInvariant, err.Error()), true
		}

		if !sum.Equal(total) {
			msg := fmt.Sprintf("sum of pool shares %s does not match supply %s\n", sum, total)
			k.getLogger(ctx).Error("invariant broken", "invariant", ShareSupplyInvariant, "details", msg)
			return sdk.FormatInvariant(types.ModuleName, ShareSupplyInvariant, msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, ShareSupplyInvariant, ""), false
	}
}
