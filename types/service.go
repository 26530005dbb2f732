package types

import "context"

// MsgServer is the facade surface of the module. Every handler is atomic.
type MsgServer interface {
	Deposit(context.Context, *MsgDepositRequest) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdrawRequest) (*MsgWithdrawResponse, error)
	Refund(context.Context, *MsgRefundRequest) (*MsgRefundResponse, error)
	Vesting(context.Context, *MsgVestingRequest) (*MsgVestingResponse, error)

	SetPendingStrategy(context.Context, *MsgSetPendingStrategyRequest) (*MsgSetPendingStrategyResponse, error)
	UnlockMigrateFunds(context.Context, *MsgUnlockMigrateFundsRequest) (*MsgUnlockMigrateFundsResponse, error)
	MigrateFunds(context.Context, *MsgMigrateFundsRequest) (*MsgMigrateFundsResponse, error)
	ApproveMigrate(context.Context, *MsgApproveMigrateRequest) (*MsgApproveMigrateResponse, error)

	SetTreasuryWallet(context.Context, *MsgSetTreasuryWalletRequest) (*MsgSetTreasuryWalletResponse, error)
	SetCommunityWallet(context.Context, *MsgSetCommunityWalletRequest) (*MsgSetCommunityWalletResponse, error)
	SetNetworkFeeTier2(context.Context, *MsgSetNetworkFeeTier2Request) (*MsgSetNetworkFeeTier2Response, error)
	SetNetworkFeePercentage(context.Context, *MsgSetNetworkFeePercentageRequest) (*MsgSetNetworkFeePercentageResponse, error)
	SetCustomNetworkFeeTier(context.Context, *MsgSetCustomNetworkFeeTierRequest) (*MsgSetCustomNetworkFeeTierResponse, error)
	SetCustomNetworkFeePercentage(context.Context, *MsgSetCustomNetworkFeePercentageRequest) (*MsgSetCustomNetworkFeePercentageResponse, error)
	SetProfitSharingFeePercentage(context.Context, *MsgSetProfitSharingFeePercentageRequest) (*MsgSetProfitSharingFeePercentageResponse, error)
	SetProfitSharingOnWithdraw(context.Context, *MsgSetProfitSharingOnWithdrawRequest) (*MsgSetProfitSharingOnWithdrawResponse, error)
	TransferOwnership(context.Context, *MsgTransferOwnershipRequest) (*MsgTransferOwnershipResponse, error)
}

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	PoolState(context.Context, *QueryPoolStateRequest) (*QueryPoolStateResponse, error)
	Depositor(context.Context, *QueryDepositorRequest) (*QueryDepositorResponse, error)
	Depositors(context.Context, *QueryDepositorsRequest) (*QueryDepositorsResponse, error)
	MigrationLock(context.Context, *QueryMigrationLockRequest) (*QueryMigrationLockResponse, error)
	FeeQuote(context.Context, *QueryFeeQuoteRequest) (*QueryFeeQuoteResponse, error)
}
