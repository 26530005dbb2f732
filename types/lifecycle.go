package types

import "fmt"

// Lifecycle is the one-way state of the ledger. Active accepts deposits and withdrawals;
// Vesting is terminal and only serves refunds against the fixed reserve.
type Lifecycle uint64

const (
	LifecycleActive Lifecycle = iota
	LifecycleVesting
)

// String returns the lowercase name of the lifecycle.
func (l Lifecycle) String() string {
	switch l {
	case LifecycleActive:
		return "active"
	case LifecycleVesting:
		return "vesting"
	default:
		return fmt.Sprintf("unknown(%d)", uint64(l))
	}
}

// Validate returns an error for values outside the known lifecycle set.
func (l Lifecycle) Validate() error {
	switch l {
	case LifecycleActive, LifecycleVesting:
		return nil
	default:
		return fmt.Errorf("unknown lifecycle %d", uint64(l))
	}
}

// ParseLifecycle converts a lifecycle name back to its value.
func ParseLifecycle(s string) (Lifecycle, error) {
	switch s {
	case "active":
		return LifecycleActive, nil
	case "vesting":
		return LifecycleVesting, nil
	default:
		return 0, fmt.Errorf("unknown lifecycle %q", s)
	}
}

// MarshalText encodes the lifecycle by name so genesis files stay readable.
func (l Lifecycle) MarshalText() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a lifecycle name.
func (l *Lifecycle) UnmarshalText(text []byte) error {
	parsed, err := ParseLifecycle(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
