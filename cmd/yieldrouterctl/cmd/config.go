package cmd

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provlabs/yieldrouter/types"
)

const (
	keyTier2Min             = "fee_schedule.tier2_min"
	keyTier2Max             = "fee_schedule.tier2_max"
	keyPercentages          = "fee_schedule.percentages"
	keyCustomTierThreshold  = "fee_schedule.custom_tier_threshold"
	keyCustomPercentage     = "fee_schedule.custom_percentage"
	keyProfitSharingPercent = "profit_sharing_fee_percentage"
)

// setDefaults seeds v with the on-chain defaults so a missing config file quotes with the
// same schedule a fresh chain would use.
func setDefaults(v *viper.Viper) {
	def := types.DefaultParams()
	v.SetDefault(keyTier2Min, def.FeeSchedule.Tier2Min.String())
	v.SetDefault(keyTier2Max, def.FeeSchedule.Tier2Max.String())
	v.SetDefault(keyPercentages, def.FeeSchedule.Percentages[:])
	v.SetDefault(keyCustomTierThreshold, def.FeeSchedule.CustomTierThreshold.String())
	v.SetDefault(keyCustomPercentage, def.FeeSchedule.CustomPercentage)
	v.SetDefault(keyProfitSharingPercent, def.ProfitSharingFeePercentage)
}

func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	setDefaults(v)
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// feeScheduleFromConfig builds and validates the fee schedule held by v.
func feeScheduleFromConfig(v *viper.Viper) (types.FeeTierSchedule, error) {
	var schedule types.FeeTierSchedule
	var err error
	if schedule.Tier2Min, err = intFromConfig(v, keyTier2Min); err != nil {
		return schedule, err
	}
	if schedule.Tier2Max, err = intFromConfig(v, keyTier2Max); err != nil {
		return schedule, err
	}
	if schedule.CustomTierThreshold, err = intFromConfig(v, keyCustomTierThreshold); err != nil {
		return schedule, err
	}

	pcts := v.GetIntSlice(keyPercentages)
	if len(pcts) != len(schedule.Percentages) {
		return schedule, fmt.Errorf("%s must hold %d percentages, got %d", keyPercentages, len(schedule.Percentages), len(pcts))
	}
	for i, pct := range pcts {
		if pct < 0 {
			return schedule, fmt.Errorf("%s[%d] cannot be negative", keyPercentages, i)
		}
		schedule.Percentages[i] = uint64(pct)
	}
	schedule.CustomPercentage = v.GetUint64(keyCustomPercentage)

	if err := schedule.Validate(); err != nil {
		return schedule, err
	}
	return schedule, nil
}

func intFromConfig(v *viper.Viper, key string) (sdkmath.Int, error) {
	return parseAmount(key, v.GetString(key))
}

func parseAmount(name, s string) (sdkmath.Int, error) {
	amount, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("invalid %s %q", name, s)
	}
	if amount.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("%s cannot be negative: %s", name, amount)
	}
	return amount, nil
}
