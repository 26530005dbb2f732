package feetier

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/yieldrouter/types"
)

// DepositFees is the network fee charged on a two-part deposit.
type DepositFees struct {
	Percentage uint64
	EarnFee    sdkmath.Int
	VaultFee   sdkmath.Int
}

// Total returns EarnFee + VaultFee.
func (f DepositFees) Total() sdkmath.Int {
	return f.EarnFee.Add(f.VaultFee)
}

// ResolvePercentage returns the fee percentage, in basis points, of the tier containing amount.
//
//	amount <  Tier2Min                        -> Percentages[0]
//	Tier2Min <= amount <= Tier2Max            -> Percentages[1]
//	Tier2Max <  amount <  CustomTierThreshold -> Percentages[2]
//	amount >= CustomTierThreshold             -> CustomPercentage
func ResolvePercentage(amount sdkmath.Int, schedule types.FeeTierSchedule) uint64 {
	switch {
	case amount.LT(schedule.Tier2Min):
		return schedule.Percentages[0]
	case amount.LTE(schedule.Tier2Max):
		return schedule.Percentages[1]
	case amount.LT(schedule.CustomTierThreshold):
		return schedule.Percentages[2]
	default:
		return schedule.CustomPercentage
	}
}

// ApplyPercentage returns floor(amount * pct / 10000).
func ApplyPercentage(amount sdkmath.Int, pct uint64) (sdkmath.Int, error) {
	if amount.IsNil() || amount.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("invalid amount %v: must be non-negative", amount)
	}
	if pct > types.BasisPoints {
		return sdkmath.Int{}, fmt.Errorf("invalid percentage %d: exceeds %d basis points", pct, types.BasisPoints)
	}
	return amount.Mul(sdkmath.NewIntFromUint64(pct)).QuoRaw(types.BasisPoints), nil
}

// ComputeFee resolves the tier of amount and returns the fee charged on it.
func ComputeFee(amount sdkmath.Int, schedule types.FeeTierSchedule) (sdkmath.Int, error) {
	if amount.IsNil() {
		return sdkmath.Int{}, fmt.Errorf("amount must be set")
	}
	return ApplyPercentage(amount, ResolvePercentage(amount, schedule))
}

// ComputeDepositFees prices an Earn and a Vault amount submitted together. The tier is
// picked from the combined amount so splitting a deposit cannot lower its tier, then the
// one percentage is applied to each sub-amount with its own floor.
func ComputeDepositFees(earnAmount, vaultAmount sdkmath.Int, schedule types.FeeTierSchedule) (DepositFees, error) {
	if earnAmount.IsNil() || vaultAmount.IsNil() {
		return DepositFees{}, fmt.Errorf("deposit amounts must be set")
	}
	pct := ResolvePercentage(earnAmount.Add(vaultAmount), schedule)

	earnFee, err := ApplyPercentage(earnAmount, pct)
	if err != nil {
		return DepositFees{}, fmt.Errorf("earn fee: %w", err)
	}
	vaultFee, err := ApplyPercentage(vaultAmount, pct)
	if err != nil {
		return DepositFees{}, fmt.Errorf("vault fee: %w", err)
	}

	return DepositFees{Percentage: pct, EarnFee: earnFee, VaultFee: vaultFee}, nil
}

// ProfitSharingFee returns the fee owed on the part of returned that exceeds principal.
// Nothing is owed when there is no profit.
func ProfitSharingFee(returned, principal sdkmath.Int, pct uint64) (sdkmath.Int, error) {
	if returned.IsNil() || principal.IsNil() {
		return sdkmath.Int{}, fmt.Errorf("amounts must be set")
	}
	if returned.LTE(principal) {
		return sdkmath.ZeroInt(), nil
	}
	return ApplyPercentage(returned.Sub(principal), pct)
}

// SplitProfitFee divides a profit-sharing fee evenly between the treasury and community
// wallets. An odd unit is left unallocated.
func SplitProfitFee(fee sdkmath.Int) (treasury, community sdkmath.Int) {
	half := fee.QuoRaw(2)
	return half, half
}
