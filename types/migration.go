package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MigrationPhase is the derived state of a MigrationLock.
type MigrationPhase int

const (
	MigrationIdle MigrationPhase = iota
	MigrationPendingSet
	MigrationUnlocked
)

// String returns a readable phase name.
func (p MigrationPhase) String() string {
	switch p {
	case MigrationIdle:
		return "idle"
	case MigrationPendingSet:
		return "pending_set"
	case MigrationUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// MigrationLock is the two-phase timelock guarding movement of the custody balance to a
// new strategy. A zero UnlockTime means the lock is not armed.
type MigrationLock struct {
	PendingStrategy string `json:"pending_strategy"`
	UnlockTime      int64  `json:"unlock_time"`
	// ReserveApproved allows a migration to move the vesting reserve.
	ReserveApproved bool `json:"reserve_approved"`
}

// HasPendingStrategy reports whether a migration target is set.
func (m MigrationLock) HasPendingStrategy() bool {
	return m.PendingStrategy != ""
}

// IsArmed reports whether UnlockMigrateFunds has been called since the last migration.
func (m MigrationLock) IsArmed() bool {
	return m.UnlockTime > 0
}

// IsUnlocked reports whether the lock is armed and its unlock time has been reached.
func (m MigrationLock) IsUnlocked(now int64) bool {
	return m.IsArmed() && now >= m.UnlockTime
}

// Phase returns the current phase. Arming without a pending strategy is still Idle.
func (m MigrationLock) Phase() MigrationPhase {
	switch {
	case m.HasPendingStrategy() && m.IsArmed():
		return MigrationUnlocked
	case m.HasPendingStrategy():
		return MigrationPendingSet
	default:
		return MigrationIdle
	}
}

// Validate checks the pending strategy address and unlock time.
func (m MigrationLock) Validate() error {
	if m.HasPendingStrategy() {
		if _, err := sdk.AccAddressFromBech32(m.PendingStrategy); err != nil {
			return fmt.Errorf("invalid pending strategy address: %w", err)
		}
	}
	if m.UnlockTime < 0 {
		return fmt.Errorf("unlock time cannot be negative: %d", m.UnlockTime)
	}
	return nil
}
