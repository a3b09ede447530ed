package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configSetCmd = LeafCommand{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Example: "  umrahplan config set rates.sar_to_pkr 75\n" +
		"  umrahplan config set planning.start_city madinah",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, dataDir, args[0], args[1])
	},
}.Build()

// runConfigSet edits config.json as stored, without environment overrides,
// so an override never gets persisted by accident.
func runConfigSet(cmd *cobra.Command, dataDir, key, value string) error {
	cfg, err := config.Read(dataDir)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Write(dataDir, cfg); err != nil {
		return err
	}
	appLog.Debug("config updated", zap.String("key", key), zap.String("value", value))

	v, _ := cfg.Get(key)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to %s", key, Primary(v))))
	return nil
}
