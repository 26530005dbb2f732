package types

import (
	"strconv"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeDeposit             = "yieldrouter_deposit"
	EventTypeWithdraw            = "yieldrouter_withdraw"
	EventTypeRefund              = "yieldrouter_refund"
	EventTypeVesting             = "yieldrouter_vesting"
	EventTypeNetworkFee          = "yieldrouter_network_fee"
	EventTypeProfitSharingFee    = "yieldrouter_profit_sharing_fee"
	EventTypeSetPendingStrategy  = "yieldrouter_set_pending_strategy"
	EventTypeUnlockMigrateFunds  = "yieldrouter_unlock_migrate_funds"
	EventTypeMigrateFunds        = "yieldrouter_migrate_funds"
	EventTypeApproveMigrate      = "yieldrouter_approve_migrate"
	EventTypeParamChange         = "yieldrouter_param_change"
	EventTypeOwnershipTransfered = "yieldrouter_ownership_transferred"

	AttributeKeyDepositor   = "depositor"
	AttributeKeyStrategy    = "strategy"
	AttributeKeyEarnAmount  = "earn_amount"
	AttributeKeyVaultAmount = "vault_amount"
	AttributeKeyEarnFee     = "earn_fee"
	AttributeKeyVaultFee    = "vault_fee"
	AttributeKeyEarnShares  = "earn_shares"
	AttributeKeyVaultShares = "vault_shares"
	AttributeKeyShares      = "shares"
	AttributeKeyAmount      = "amount"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeyFee         = "fee"
	AttributeKeyTreasury    = "treasury"
	AttributeKeyCommunity   = "community"
	AttributeKeyReserve     = "reserve"
	AttributeKeyUnlockTime  = "unlock_time"
	AttributeKeyParam       = "param"
	AttributeKeyOld         = "old"
	AttributeKeyNew         = "new"
)

// NewEventDeposit creates the event emitted after a successful deposit.
func NewEventDeposit(depositor string, earn, vault, earnFee, vaultFee, shares sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeDeposit,
		sdk.NewAttribute(AttributeKeyDepositor, depositor),
		sdk.NewAttribute(AttributeKeyEarnAmount, earn.String()),
		sdk.NewAttribute(AttributeKeyVaultAmount, vault.String()),
		sdk.NewAttribute(AttributeKeyEarnFee, earnFee.String()),
		sdk.NewAttribute(AttributeKeyVaultFee, vaultFee.String()),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventWithdraw creates the event emitted after a successful withdrawal.
func NewEventWithdraw(depositor string, earnShares, vaultShares, amountOut, fee sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeWithdraw,
		sdk.NewAttribute(AttributeKeyDepositor, depositor),
		sdk.NewAttribute(AttributeKeyEarnShares, earnShares.String()),
		sdk.NewAttribute(AttributeKeyVaultShares, vaultShares.String()),
		sdk.NewAttribute(AttributeKeyAmountOut, amountOut.String()),
		sdk.NewAttribute(AttributeKeyFee, fee.String()),
	)
}

// NewEventRefund creates the event emitted when a depositor redeems pool shares after vesting.
func NewEventRefund(depositor string, shares, amountOut sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeRefund,
		sdk.NewAttribute(AttributeKeyDepositor, depositor),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
		sdk.NewAttribute(AttributeKeyAmountOut, amountOut.String()),
	)
}

// NewEventVesting creates the event emitted once both strategies are exited.
func NewEventVesting(withdrawn, fee, reserve sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeVesting,
		sdk.NewAttribute(AttributeKeyAmount, withdrawn.String()),
		sdk.NewAttribute(AttributeKeyFee, fee.String()),
		sdk.NewAttribute(AttributeKeyReserve, reserve.String()),
	)
}

// NewEventNetworkFee creates the event emitted when deposit fees reach the treasury.
func NewEventNetworkFee(treasury string, fee sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeNetworkFee,
		sdk.NewAttribute(AttributeKeyTreasury, treasury),
		sdk.NewAttribute(AttributeKeyFee, fee.String()),
	)
}

// NewEventProfitSharingFee creates the event emitted when a profit fee is split between wallets.
func NewEventProfitSharingFee(treasury, community string, fee sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeProfitSharingFee,
		sdk.NewAttribute(AttributeKeyTreasury, treasury),
		sdk.NewAttribute(AttributeKeyCommunity, community),
		sdk.NewAttribute(AttributeKeyFee, fee.String()),
	)
}

// NewEventSetPendingStrategy creates the event emitted when a migration target is chosen.
func NewEventSetPendingStrategy(strategy string) sdk.Event {
	return sdk.NewEvent(EventTypeSetPendingStrategy,
		sdk.NewAttribute(AttributeKeyStrategy, strategy),
	)
}

// NewEventUnlockMigrateFunds creates the event emitted when the timelock is armed.
func NewEventUnlockMigrateFunds(unlockTime int64) sdk.Event {
	return sdk.NewEvent(EventTypeUnlockMigrateFunds,
		sdk.NewAttribute(AttributeKeyUnlockTime, strconv.FormatInt(unlockTime, 10)),
	)
}

// NewEventMigrateFunds creates the event emitted after the custody balance moves.
func NewEventMigrateFunds(strategy string, amount sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeMigrateFunds,
		sdk.NewAttribute(AttributeKeyStrategy, strategy),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	)
}

// NewEventApproveMigrate creates the event emitted when the vesting reserve may be migrated.
func NewEventApproveMigrate() sdk.Event {
	return sdk.NewEvent(EventTypeApproveMigrate)
}

// NewEventParamChange creates the event emitted by every owner setter.
func NewEventParamChange(param, oldValue, newValue string) sdk.Event {
	return sdk.NewEvent(EventTypeParamChange,
		sdk.NewAttribute(AttributeKeyParam, param),
		sdk.NewAttribute(AttributeKeyOld, oldValue),
		sdk.NewAttribute(AttributeKeyNew, newValue),
	)
}

// NewEventOwnershipTransferred creates the event emitted when the owner changes.
func NewEventOwnershipTransferred(oldOwner, newOwner string) sdk.Event {
	return sdk.NewEvent(EventTypeOwnershipTransfered,
		sdk.NewAttribute(AttributeKeyOld, oldOwner),
		sdk.NewAttribute(AttributeKeyNew, newOwner),
	)
}
