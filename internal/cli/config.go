package cli

import "github.com/spf13/cobra"

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Manage exchange rates, visa fee and planning defaults",
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
		configShowCmd,
		configResetCmd,
	},
}.Build()
