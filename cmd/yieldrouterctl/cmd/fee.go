package cmd

import (
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provlabs/yieldrouter/feetier"
	"github.com/provlabs/yieldrouter/types"
)

// FeeQuote is the output of fee-quote.
type FeeQuote struct {
	Percentage uint64      `json:"percentage"`
	EarnFee    sdkmath.Int `json:"earn_fee"`
	VaultFee   sdkmath.Int `json:"vault_fee"`
	EarnNet    sdkmath.Int `json:"earn_net"`
	VaultNet   sdkmath.Int `json:"vault_net"`
}

// ProfitFee is the output of profit-fee.
type ProfitFee struct {
	Fee       sdkmath.Int `json:"fee"`
	Treasury  sdkmath.Int `json:"treasury"`
	Community sdkmath.Int `json:"community"`
	Retained  sdkmath.Int `json:"retained"`
}

// FeeQuoteCmd prices a deposit against the configured fee schedule.
func FeeQuoteCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "fee-quote [earn_amount] [vault_amount]",
		Short:   "Quote the network fee of a deposit",
		Example: "yieldrouterctl fee-quote 60000000000 50000000000 --config fees.yaml",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			earn, err := parseAmount("earn amount", args[0])
			if err != nil {
				return err
			}
			vault, err := parseAmount("vault amount", args[1])
			if err != nil {
				return err
			}
			schedule, err := feeScheduleFromConfig(v)
			if err != nil {
				return err
			}

			fees, err := feetier.ComputeDepositFees(earn, vault, schedule)
			if err != nil {
				return err
			}
			return printJSON(cmd, FeeQuote{
				Percentage: fees.Percentage,
				EarnFee:    fees.EarnFee,
				VaultFee:   fees.VaultFee,
				EarnNet:    earn.Sub(fees.EarnFee),
				VaultNet:   vault.Sub(fees.VaultFee),
			})
		},
	}
}

// ProfitFeeCmd prices the profit-sharing fee of a realized return.
func ProfitFeeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "profit-fee [returned] [principal]",
		Short: "Compute the profit-sharing fee and its treasury/community split",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			returned, err := parseAmount("returned amount", args[0])
			if err != nil {
				return err
			}
			principal, err := parseAmount("principal", args[1])
			if err != nil {
				return err
			}
			pct := v.GetUint64(keyProfitSharingPercent)
			if err := types.ValidatePercentage(pct); err != nil {
				return err
			}

			fee, err := feetier.ProfitSharingFee(returned, principal, pct)
			if err != nil {
				return err
			}
			treasury, community := feetier.SplitProfitFee(fee)
			return printJSON(cmd, ProfitFee{
				Fee:       fee,
				Treasury:  treasury,
				Community: community,
				Retained:  fee.Sub(treasury).Sub(community),
			})
		},
	}
}

func printJSON(cmd *cobra.Command, out any) error {
	bz, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
