package types

import (
	"fmt"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgDepositRequest deposits into both strategies in one call.
type MsgDepositRequest struct {
	Depositor   string      `json:"depositor"`
	EarnAmount  sdkmath.Int `json:"earn_amount"`
	VaultAmount sdkmath.Int `json:"vault_amount"`
}

// MsgDepositResponse reports the fees charged and pool shares minted.
type MsgDepositResponse struct {
	EarnFee      sdkmath.Int `json:"earn_fee"`
	VaultFee     sdkmath.Int `json:"vault_fee"`
	SharesMinted sdkmath.Int `json:"shares_minted"`
}

// MsgWithdrawRequest burns pool shares from the Earn and Vault portions.
type MsgWithdrawRequest struct {
	Depositor   string      `json:"depositor"`
	EarnShares  sdkmath.Int `json:"earn_shares"`
	VaultShares sdkmath.Int `json:"vault_shares"`
}

// MsgWithdrawResponse reports the tokens paid out and the profit-sharing fee taken.
type MsgWithdrawResponse struct {
	AmountOut        sdkmath.Int `json:"amount_out"`
	ProfitSharingFee sdkmath.Int `json:"profit_sharing_fee"`
}

// MsgRefundRequest redeems every pool share of the depositor after vesting.
type MsgRefundRequest struct {
	Depositor string `json:"depositor"`
}

// MsgRefundResponse reports the refunded amount.
type MsgRefundResponse struct {
	AmountOut sdkmath.Int `json:"amount_out"`
}

// MsgVestingRequest exits both strategies and switches the ledger to vesting.
type MsgVestingRequest struct {
	Authority string `json:"authority"`
}

// MsgVestingResponse reports the amounts realized at vesting.
type MsgVestingResponse struct {
	Withdrawn        sdkmath.Int `json:"withdrawn"`
	ProfitSharingFee sdkmath.Int `json:"profit_sharing_fee"`
	Reserve          sdkmath.Int `json:"reserve"`
}

// MsgSetPendingStrategyRequest sets the migration target.
type MsgSetPendingStrategyRequest struct {
	Authority string `json:"authority"`
	Strategy  string `json:"strategy"`
}

// MsgSetPendingStrategyResponse is the empty response of SetPendingStrategy.
type MsgSetPendingStrategyResponse struct{}

// MsgUnlockMigrateFundsRequest arms (or re-arms) the migration timelock.
type MsgUnlockMigrateFundsRequest struct {
	Authority string `json:"authority"`
}

// MsgUnlockMigrateFundsResponse returns the time at which migration becomes possible.
type MsgUnlockMigrateFundsResponse struct {
	UnlockTime int64 `json:"unlock_time"`
}

// MsgMigrateFundsRequest moves the custody balance to the pending strategy.
type MsgMigrateFundsRequest struct {
	Authority string `json:"authority"`
}

// MsgMigrateFundsResponse reports the migrated amount and target.
type MsgMigrateFundsResponse struct {
	Strategy string      `json:"strategy"`
	Amount   sdkmath.Int `json:"amount"`
}

// MsgApproveMigrateRequest allows a migration to move the vesting reserve.
type MsgApproveMigrateRequest struct {
	Authority string `json:"authority"`
}

// MsgApproveMigrateResponse is the empty response of ApproveMigrate.
type MsgApproveMigrateResponse struct{}

// MsgSetTreasuryWalletRequest replaces the treasury wallet.
type MsgSetTreasuryWalletRequest struct {
	Authority string `json:"authority"`
	Wallet    string `json:"wallet"`
}

// MsgSetTreasuryWalletResponse is the empty response of SetTreasuryWallet.
type MsgSetTreasuryWalletResponse struct{}

// MsgSetCommunityWalletRequest replaces the community wallet.
type MsgSetCommunityWalletRequest struct {
	Authority string `json:"authority"`
	Wallet    string `json:"wallet"`
}

// MsgSetCommunityWalletResponse is the empty response of SetCommunityWallet.
type MsgSetCommunityWalletResponse struct{}

// MsgSetNetworkFeeTier2Request replaces the tier 2 bounds.
type MsgSetNetworkFeeTier2Request struct {
	Authority string      `json:"authority"`
	Min       sdkmath.Int `json:"min"`
	Max       sdkmath.Int `json:"max"`
}

// MsgSetNetworkFeeTier2Response is the empty response of SetNetworkFeeTier2.
type MsgSetNetworkFeeTier2Response struct{}

// MsgSetNetworkFeePercentageRequest replaces the three tier percentages.
type MsgSetNetworkFeePercentageRequest struct {
	Authority   string    `json:"authority"`
	Percentages [3]uint64 `json:"percentages"`
}

// MsgSetNetworkFeePercentageResponse is the empty response of SetNetworkFeePercentage.
type MsgSetNetworkFeePercentageResponse struct{}

// MsgSetCustomNetworkFeeTierRequest replaces the custom tier threshold.
type MsgSetCustomNetworkFeeTierRequest struct {
	Authority string      `json:"authority"`
	Threshold sdkmath.Int `json:"threshold"`
}

// MsgSetCustomNetworkFeeTierResponse is the empty response of SetCustomNetworkFeeTier.
type MsgSetCustomNetworkFeeTierResponse struct{}

// MsgSetCustomNetworkFeePercentageRequest replaces the custom tier percentage.
type MsgSetCustomNetworkFeePercentageRequest struct {
	Authority  string `json:"authority"`
	Percentage uint64 `json:"percentage"`
}

// MsgSetCustomNetworkFeePercentageResponse is the empty response of SetCustomNetworkFeePercentage.
type MsgSetCustomNetworkFeePercentageResponse struct{}

// MsgSetProfitSharingFeePercentageRequest replaces the profit-sharing percentage.
type MsgSetProfitSharingFeePercentageRequest struct {
	Authority  string `json:"authority"`
	Percentage uint64 `json:"percentage"`
}

// MsgSetProfitSharingFeePercentageResponse is the empty response of SetProfitSharingFeePercentage.
type MsgSetProfitSharingFeePercentageResponse struct{}

// MsgSetProfitSharingOnWithdrawRequest toggles the profit-sharing fee on withdrawals.
type MsgSetProfitSharingOnWithdrawRequest struct {
	Authority string `json:"authority"`
	Enabled   bool   `json:"enabled"`
}

// MsgSetProfitSharingOnWithdrawResponse is the empty response of SetProfitSharingOnWithdraw.
type MsgSetProfitSharingOnWithdrawResponse struct{}

// MsgTransferOwnershipRequest hands the owner role to a new address.
type MsgTransferOwnershipRequest struct {
	Authority string `json:"authority"`
	NewOwner  string `json:"new_owner"`
}

// MsgTransferOwnershipResponse is the empty response of TransferOwnership.
type MsgTransferOwnershipResponse struct{}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid %s address: %q: %v", field, addr, err)
	}
	return nil
}

// validateAmountPair checks both amounts are non-negative and that at least one is positive.
func validateAmountPair(a, b sdkmath.Int) error {
	if a.IsNil() || b.IsNil() {
		return errors.Wrap(ErrInvalidAmount, "amounts must be set")
	}
	if a.IsNegative() || b.IsNegative() {
		return errors.Wrap(ErrInvalidAmount, "amounts cannot be negative")
	}
	if a.IsZero() && b.IsZero() {
		return errors.Wrap(ErrInvalidAmount, "amount must be greater than 0")
	}
	return nil
}

// ValidateBasic performs stateless validation of a deposit.
func (m MsgDepositRequest) ValidateBasic() error {
	if err := validateAddress("depositor", m.Depositor); err != nil {
		return err
	}
	return validateAmountPair(m.EarnAmount, m.VaultAmount)
}

// ValidateBasic performs stateless validation of a withdrawal.
func (m MsgWithdrawRequest) ValidateBasic() error {
	if err := validateAddress("depositor", m.Depositor); err != nil {
		return err
	}
	return validateAmountPair(m.EarnShares, m.VaultShares)
}

// ValidateBasic performs stateless validation of a refund.
func (m MsgRefundRequest) ValidateBasic() error {
	return validateAddress("depositor", m.Depositor)
}

// ValidateBasic performs stateless validation of a vesting request.
func (m MsgVestingRequest) ValidateBasic() error {
	return validateAddress("authority", m.Authority)
}

// ValidateBasic performs stateless validation of SetPendingStrategy.
func (m MsgSetPendingStrategyRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	return validateAddress("strategy", m.Strategy)
}

// ValidateBasic performs stateless validation of UnlockMigrateFunds.
func (m MsgUnlockMigrateFundsRequest) ValidateBasic() error {
	return validateAddress("authority", m.Authority)
}

// ValidateBasic performs stateless validation of MigrateFunds.
func (m MsgMigrateFundsRequest) ValidateBasic() error {
	return validateAddress("authority", m.Authority)
}

// ValidateBasic performs stateless validation of ApproveMigrate.
func (m MsgApproveMigrateRequest) ValidateBasic() error {
	return validateAddress("authority", m.Authority)
}

// ValidateBasic performs stateless validation of SetTreasuryWallet.
func (m MsgSetTreasuryWalletRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	return validateAddress("treasury wallet", m.Wallet)
}

// ValidateBasic performs stateless validation of SetCommunityWallet.
func (m MsgSetCommunityWalletRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	return validateAddress("community wallet", m.Wallet)
}

// ValidateBasic performs stateless validation of SetNetworkFeeTier2.
func (m MsgSetNetworkFeeTier2Request) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.Min.IsNil() || m.Max.IsNil() {
		return errors.Wrap(ErrInvalidConfiguration, "tier 2 bounds must be set")
	}
	if !m.Min.IsPositive() {
		return errors.Wrap(ErrInvalidConfiguration, "minimum amount cannot be 0")
	}
	if !m.Max.GT(m.Min) {
		return errors.Wrap(ErrInvalidConfiguration, "maximum amount must be greater than minimum amount")
	}
	return nil
}

// ValidateBasic performs stateless validation of SetNetworkFeePercentage.
func (m MsgSetNetworkFeePercentageRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	for i, pct := range m.Percentages {
		if err := ValidatePercentage(pct); err != nil {
			return errors.Wrapf(err, "network fee percentage for tier %d", i+1)
		}
	}
	return nil
}

// ValidateBasic performs stateless validation of SetCustomNetworkFeeTier.
func (m MsgSetCustomNetworkFeeTierRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.Threshold.IsNil() || !m.Threshold.IsPositive() {
		return errors.Wrap(ErrInvalidConfiguration, "custom network fee tier must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of SetCustomNetworkFeePercentage.
func (m MsgSetCustomNetworkFeePercentageRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	return ValidatePercentage(m.Percentage)
}

// ValidateBasic performs stateless validation of SetProfitSharingFeePercentage.
func (m MsgSetProfitSharingFeePercentageRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	return ValidatePercentage(m.Percentage)
}

// ValidateBasic performs stateless validation of SetProfitSharingOnWithdraw.
func (m MsgSetProfitSharingOnWithdrawRequest) ValidateBasic() error {
	return validateAddress("authority", m.Authority)
}

// ValidateBasic performs stateless validation of TransferOwnership.
func (m MsgTransferOwnershipRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if err := validateAddress("new owner", m.NewOwner); err != nil {
		return err
	}
	if m.Authority == m.NewOwner {
		return errors.Wrap(ErrInvalidRequest, fmt.Sprintf("%s is already the owner", m.NewOwner))
	}
	return nil
}
