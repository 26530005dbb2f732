package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/provlabs/yieldrouter/feetier"
	"github.com/provlabs/yieldrouter/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// Params returns the module params.
func (k queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := k.GetParams(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// PoolState returns the pool-wide ledger state.
func (k queryServer) PoolState(goCtx context.Context, req *types.QueryPoolStateRequest) (*types.QueryPoolStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	lc, err := k.GetLifecycle(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	pool, err := k.GetPool(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	total, err := k.GetTotalPoolShares(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryPoolStateResponse{
		Lifecycle:       lc,
		Pool:            pool,
		TotalPoolShares: total,
		CustodyBalance:  k.CustodyBalance(ctx, params.Denom),
	}, nil
}

// Depositor returns a depositor's balances. Unknown depositors are reported as not found.
func (k queryServer) Depositor(goCtx context.Context, req *types.QueryDepositorRequest) (*types.QueryDepositorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address %q: %v", req.Address, err)
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	known, err := k.PoolShares.Has(ctx, addr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !known {
		return nil, status.Errorf(codes.NotFound, "depositor %s not found", req.Address)
	}

	acc, err := k.GetDepositorAccount(ctx, addr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	earn, err := k.GetEarnDepositBalance(ctx, addr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	vault, err := k.GetVaultDepositBalance(ctx, addr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	lc, err := k.GetLifecycle(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	// Shares only claim the custody balance once it is the vesting reserve.
	value := sdkmath.ZeroInt()
	switch lc {
	case types.LifecycleActive:
	case types.LifecycleVesting:
		if value, err = k.GetSharesValue(ctx, addr); err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
	default:
		return nil, status.Errorf(codes.Internal, "unknown lifecycle %s", lc)
	}

	return &types.QueryDepositorResponse{
		Account:             acc,
		EarnDepositBalance:  earn,
		VaultDepositBalance: vault,
		SharesValue:         value,
	}, nil
}

// Depositors returns a paginated list of every depositor.
func (k queryServer) Depositors(goCtx context.Context, req *types.QueryDepositorsRequest) (*types.QueryDepositorsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	accounts, pageRes, err := query.CollectionPaginate(
		ctx,
		k.Keeper.PoolShares,
		req.Pagination,
		func(addr sdk.AccAddress, _ sdkmath.Int) (types.DepositorAccount, error) {
			return k.GetDepositorAccount(ctx, addr)
		},
	)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryDepositorsResponse{
		Accounts:   accounts,
		Pagination: pageRes,
	}, nil
}

// MigrationLock returns the migration timelock and whether it is open at the current block time.
func (k queryServer) MigrationLock(goCtx context.Context, req *types.QueryMigrationLockRequest) (*types.QueryMigrationLockResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	lock, err := k.GetMigrationLock(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryMigrationLockResponse{
		Lock:     lock,
		Phase:    lock.Phase().String(),
		Unlocked: lock.IsUnlocked(ctx.BlockTime().Unix()),
	}, nil
}

// FeeQuote prices a deposit with the current fee schedule.
func (k queryServer) FeeQuote(goCtx context.Context, req *types.QueryFeeQuoteRequest) (*types.QueryFeeQuoteResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	fees, err := feetier.ComputeDepositFees(req.EarnAmount, req.VaultAmount, params.FeeSchedule)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &types.QueryFeeQuoteResponse{
		Percentage: fees.Percentage,
		EarnFee:    fees.EarnFee,
		VaultFee:   fees.VaultFee,
	}, nil
}
