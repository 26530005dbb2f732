package types

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest       = errors.Register(ModuleName, 2, "invalid request")
	ErrUnauthorized         = errors.Register(ModuleName, 3, "unauthorized")
	ErrInvalidAmount        = errors.Register(ModuleName, 4, "invalid amount")
	ErrInvalidConfiguration = errors.Register(ModuleName, 5, "invalid configuration")
	ErrLifecycleViolation   = errors.Register(ModuleName, 6, "lifecycle violation")
	ErrTimelockViolation    = errors.Register(ModuleName, 7, "timelock violation")
	ErrNoPendingAction      = errors.Register(ModuleName, 8, "no pending action")
	ErrStrategy             = errors.Register(ModuleName, 9, "strategy failure")
)
