package types

import (
	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryParamsRequest is the request type for the Query/Params method.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params method.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolStateRequest is the request type for the Query/PoolState method.
type QueryPoolStateRequest struct{}

// QueryPoolStateResponse reports the pool-wide ledger state.
type QueryPoolStateResponse struct {
	Lifecycle       Lifecycle   `json:"lifecycle"`
	Pool            sdkmath.Int `json:"pool"`
	TotalPoolShares sdkmath.Int `json:"total_pool_shares"`
	// CustodyBalance is the underlying held directly by the module. Once vesting it is the
	// refund reserve.
	CustodyBalance sdkmath.Int `json:"custody_balance"`
}

// QueryDepositorRequest is the request type for the Query/Depositor method.
type QueryDepositorRequest struct {
	Address string `json:"address"`
}

// QueryDepositorResponse reports a depositor's balances as the facade exposes them.
type QueryDepositorResponse struct {
	Account             DepositorAccount `json:"account"`
	EarnDepositBalance  sdkmath.Int      `json:"earn_deposit_balance"`
	VaultDepositBalance sdkmath.Int      `json:"vault_deposit_balance"`
	SharesValue         sdkmath.Int      `json:"shares_value"`
}

// QueryDepositorsRequest is the request type for the Query/Depositors method.
type QueryDepositorsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryDepositorsResponse is a page of depositor accounts.
type QueryDepositorsResponse struct {
	Accounts   []DepositorAccount  `json:"accounts"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryMigrationLockRequest is the request type for the Query/MigrationLock method.
type QueryMigrationLockRequest struct{}

// QueryMigrationLockResponse reports the migration timelock.
type QueryMigrationLockResponse struct {
	Lock     MigrationLock `json:"lock"`
	Phase    string        `json:"phase"`
	Unlocked bool          `json:"unlocked"`
}

// QueryFeeQuoteRequest prices a deposit without executing it.
type QueryFeeQuoteRequest struct {
	EarnAmount  sdkmath.Int `json:"earn_amount"`
	VaultAmount sdkmath.Int `json:"vault_amount"`
}

// QueryFeeQuoteResponse is the network fee a deposit would be charged.
type QueryFeeQuoteResponse struct {
	Percentage uint64      `json:"percentage"`
	EarnFee    sdkmath.Int `json:"earn_fee"`
	VaultFee   sdkmath.Int `json:"vault_fee"`
}
