package keeper

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldrouter/types"
)

// TestAccessor_redeem exposes this keeper's redeem function for unit tests.
func (k Keeper) TestAccessor_redeem(t *testing.T, ctx sdk.Context, strategy types.Strategy, amount sdkmath.Int, denom string) (sdkmath.Int, error) {
	t.Helper()
	return k.redeem(ctx, strategy, amount, denom)
}

// TestAccessor_payProfitSharingFee exposes this keeper's payProfitSharingFee function for unit tests.
func (k Keeper) TestAccessor_payProfitSharingFee(t *testing.T, ctx sdk.Context, params types.Params, fee sdkmath.Int) error {
	t.Helper()
	return k.payProfitSharingFee(ctx, params, fee)
}
