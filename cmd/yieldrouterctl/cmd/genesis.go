package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provlabs/yieldrouter"
	"github.com/provlabs/yieldrouter/types"
)

// ValidateGenesisCmd checks a yieldrouter genesis file. The file may be the module section
// alone or a full app genesis with an app_state.yieldrouter entry.
func ValidateGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis [file]",
		Short: "Validate a yieldrouter genesis file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			bz, err = moduleGenesis(bz)
			if err != nil {
				return err
			}
			genesis, err := yieldrouter.ParseGenesis(bz)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "genesis is valid: lifecycle=%s depositors=%d pool=%s\n",
				genesis.Lifecycle, len(genesis.Accounts), genesis.Pool)
			return nil
		},
	}
}

// DefaultGenesisCmd prints the default module genesis.
func DefaultGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-genesis",
		Short: "Print the default yieldrouter genesis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, types.DefaultGenesisState())
		},
	}
}

func moduleGenesis(bz []byte) (json.RawMessage, error) {
	var app struct {
		AppState map[string]json.RawMessage `json:"app_state"`
	}
	if err := json.Unmarshal(bz, &app); err != nil {
		return nil, fmt.Errorf("failed to parse genesis file: %w", err)
	}
	if app.AppState == nil {
		return bz, nil
	}
	section, ok := app.AppState[types.ModuleName]
	if !ok {
		return nil, fmt.Errorf("app_state has no %s section", types.ModuleName)
	}
	return section, nil
}
