package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/spf13/cobra"
)

var configGetCmd = LeafCommand{
	Use:     "get KEY",
	Short:   "Print one setting",
	Example: "  umrahplan config get rates.sar_to_pkr",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runConfigGet(cmd, dataDir, args[0])
	},
}.Build()

var configShowCmd = LeafCommand{
	Use:   "show",
	Short: "Print every setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runConfigShow(cmd, dataDir)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, dataDir, key string) error {
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return err
	}
	v, err := cfg.Get(key)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runConfigShow(cmd *cobra.Command, dataDir string) error {
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("Settings from %s", Silent(config.Path(dataDir)))))
	for _, key := range config.Keys() {
		v, err := cfg.Get(key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", Text(padRight(key, 28)), Primary(v))
	}
	return nil
}
