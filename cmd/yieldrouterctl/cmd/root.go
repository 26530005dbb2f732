package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfig = "config"
	envPrefix  = "YIELDROUTER"
)

// NewRootCmd returns the yieldrouterctl root command. Every subcommand shares one viper
// instance so flags, the config file and YIELDROUTER_* environment variables resolve the
// same way.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "yieldrouterctl",
		Short:         "Operator tooling for the yield router ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd)
		},
	}
	rootCmd.PersistentFlags().String(flagConfig, "", "fee schedule config file (yaml, toml or json)")

	rootCmd.AddCommand(
		FeeQuoteCmd(v),
		ProfitFeeCmd(v),
		ValidateGenesisCmd(),
		DefaultGenesisCmd(),
	)
	return rootCmd
}
