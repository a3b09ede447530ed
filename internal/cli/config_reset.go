package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/spf13/cobra"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore default rates and planning settings; agency profiles are kept",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runConfigReset(cmd, dataDir, ResolveConfirmFunc(cmd, yes))
	},
}.Build()

func runConfigReset(cmd *cobra.Command, dataDir string, confirm ConfirmFunc) error {
	cfg, err := config.Read(dataDir)
	if err != nil {
		return err
	}

	confirmed, err := confirm("Reset settings to defaults?")
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	fresh := config.Default()
	fresh.Agencies = cfg.Agencies
	fresh.ActiveAgency = cfg.ActiveAgency
	if err := config.Write(dataDir, fresh); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("settings reset to defaults"))
	return nil
}
