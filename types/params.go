package types

import (
	"fmt"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	GovModuleName = "gov"

	// DefaultDenom is the stablecoin denom accepted when genesis does not override it.
	DefaultDenom = "uusdc"

	// DefaultProfitSharingFeePercentage is 10% of realized profit.
	DefaultProfitSharingFeePercentage = 1_000
)

// FeeTierSchedule holds the deposit (network) fee tiers. Amounts are in base units of the
// underlying denom and percentages in basis points.
//
//	amount <  Tier2Min                        -> Percentages[0]
//	Tier2Min <= amount <= Tier2Max            -> Percentages[1]
//	Tier2Max <  amount <  CustomTierThreshold -> Percentages[2]
//	amount >= CustomTierThreshold             -> CustomPercentage
type FeeTierSchedule struct {
	Tier2Min            sdkmath.Int `json:"tier2_min"`
	Tier2Max            sdkmath.Int `json:"tier2_max"`
	Percentages         [3]uint64   `json:"percentages"`
	CustomTierThreshold sdkmath.Int `json:"custom_tier_threshold"`
	CustomPercentage    uint64      `json:"custom_percentage"`
}

// DefaultFeeTierSchedule returns the reference tiers for a 6 decimal stablecoin.
func DefaultFeeTierSchedule() FeeTierSchedule {
	return FeeTierSchedule{
		Tier2Min:            sdkmath.NewInt(50_000_000_001),
		Tier2Max:            sdkmath.NewInt(100_000_000_000),
		Percentages:         [3]uint64{100, 75, 50},
		CustomTierThreshold: sdkmath.NewInt(1_000_000_000_000),
		CustomPercentage:    25,
	}
}

// Validate checks the tier boundaries and percentage caps.
func (s FeeTierSchedule) Validate() error {
	if s.Tier2Min.IsNil() || s.Tier2Max.IsNil() || s.CustomTierThreshold.IsNil() {
		return errors.Wrap(ErrInvalidConfiguration, "fee tier boundaries must be set")
	}
	if !s.Tier2Min.IsPositive() {
		return errors.Wrap(ErrInvalidConfiguration, "minimum amount cannot be 0")
	}
	if !s.Tier2Max.GT(s.Tier2Min) {
		return errors.Wrapf(ErrInvalidConfiguration, "maximum amount %s must be greater than minimum amount %s", s.Tier2Max, s.Tier2Min)
	}
	if !s.CustomTierThreshold.GT(s.Tier2Max) {
		return errors.Wrapf(ErrInvalidConfiguration, "custom network fee tier %s must be greater than tier 2 maximum %s", s.CustomTierThreshold, s.Tier2Max)
	}
	for i, pct := range s.Percentages {
		if err := ValidatePercentage(pct); err != nil {
			return errors.Wrapf(err, "network fee percentage for tier %d", i+1)
		}
	}
	if err := ValidatePercentage(s.CustomPercentage); err != nil {
		return errors.Wrap(err, "custom network fee percentage")
	}
	if s.CustomPercentage > s.Percentages[1] {
		return errors.Wrapf(ErrInvalidConfiguration, "custom network fee percentage %d cannot be more than tier 2 percentage %d", s.CustomPercentage, s.Percentages[1])
	}
	return nil
}

// ValidatePercentage rejects percentages above MaxFeePercentage.
func ValidatePercentage(pct uint64) error {
	if pct > MaxFeePercentage {
		return errors.Wrapf(ErrInvalidConfiguration, "percentage %d cannot be more than 40%%", pct)
	}
	return nil
}

// Params are the owner-mutable settings of the ledger.
type Params struct {
	// Owner is the single administrator allowed to run owner-only operations.
	Owner string `json:"owner"`
	// TreasuryWallet receives network fees and half of every profit-sharing fee.
	TreasuryWallet string `json:"treasury_wallet"`
	// CommunityWallet receives the other half of every profit-sharing fee.
	CommunityWallet string `json:"community_wallet"`
	// Denom is the underlying stablecoin denom.
	Denom string `json:"denom"`
	// FeeSchedule is the tiered network fee configuration.
	FeeSchedule FeeTierSchedule `json:"fee_schedule"`
	// ProfitSharingFeePercentage is charged on realized profit, in basis points.
	ProfitSharingFeePercentage uint64 `json:"profit_sharing_fee_percentage"`
	// ProfitSharingOnWithdraw enables the profit-sharing fee on withdrawals as well as at vesting.
	ProfitSharingOnWithdraw bool `json:"profit_sharing_on_withdraw"`
	// EOAOnly rejects deposits coming from module accounts.
	EOAOnly bool `json:"eoa_only"`
}

// DefaultParams returns the params used when genesis provides none.
func DefaultParams() Params {
	return Params{
		Owner:                      authtypes.NewModuleAddress(GovModuleName).String(),
		TreasuryWallet:             authtypes.NewModuleAddress(ModuleName + "/treasury").String(),
		CommunityWallet:            authtypes.NewModuleAddress(ModuleName + "/community").String(),
		Denom:                      DefaultDenom,
		FeeSchedule:                DefaultFeeTierSchedule(),
		ProfitSharingFeePercentage: DefaultProfitSharingFeePercentage,
		ProfitSharingOnWithdraw:    true,
		EOAOnly:                    true,
	}
}

// Validate performs basic validation on every field.
func (p Params) Validate() error {
	if _, err := sdk.AccAddressFromBech32(p.Owner); err != nil {
		return errors.Wrapf(ErrInvalidConfiguration, "invalid owner address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.TreasuryWallet); err != nil {
		return errors.Wrapf(ErrInvalidConfiguration, "invalid treasury wallet: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.CommunityWallet); err != nil {
		return errors.Wrapf(ErrInvalidConfiguration, "invalid community wallet: %v", err)
	}
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return errors.Wrapf(ErrInvalidConfiguration, "invalid denom: %v", err)
	}
	if err := p.FeeSchedule.Validate(); err != nil {
		return err
	}
	if err := ValidatePercentage(p.ProfitSharingFeePercentage); err != nil {
		return errors.Wrap(err, "profit sharing fee percentage")
	}
	return nil
}

// OwnerAddress returns the owner as an account address. Params must be valid.
func (p Params) OwnerAddress() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(p.Owner)
}

// String implements fmt.Stringer for logging.
func (p Params) String() string {
	return fmt.Sprintf("owner=%s treasury=%s community=%s denom=%s profit_sharing=%d",
		p.Owner, p.TreasuryWallet, p.CommunityWallet, p.Denom, p.ProfitSharingFeePercentage)
}
