package cli

import (
	"os"
	"path/filepath"

	"github.com/Arshadjaved786/umrah-calculator/internal/catalog"
	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/Arshadjaved786/umrah-calculator/internal/logging"
	"github.com/Arshadjaved786/umrah-calculator/internal/pkgstore"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	appEnv config.Env
	appLog = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "umrahplan",
	Short:             "Plan Umrah itineraries and price travel packages",
	SilenceUsage:      true,
	PersistentPreRunE: setupEnvironment,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "print diagnostic logs to stderr")
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(hotelCmd)
	rootCmd.AddCommand(airlineCmd)
	rootCmd.AddCommand(airportCmd)
	rootCmd.AddCommand(packageCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(agencyCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupEnvironment loads .env and UMRAHPLAN_* variables and builds the
// diagnostics logger before any command runs.
func setupEnvironment(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv(".env")
	if err != nil {
		return err
	}
	appEnv = env

	level := env.LogLevel
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}
	appLog = logging.New(os.Stderr, level, env.LogFormat)
	appLog.Debug("environment loaded",
		zap.String("command", cmd.CommandPath()),
		zap.String("data_dir", env.Home),
		zap.String("log_format", env.LogFormat),
	)
	return nil
}

// getDataDir resolves the directory holding config, catalogs and packages.
func getDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return appEnv.DataDir(homeDir), nil
}

// loadConfig reads config.json from dataDir with environment overrides applied.
func loadConfig(dataDir string) (*config.Config, error) {
	cfg, err := config.Read(dataDir)
	if err != nil {
		return nil, err
	}
	appEnv.Apply(cfg)
	return cfg, nil
}

func openCatalog(dataDir string) *catalog.Store {
	return catalog.NewStore(filepath.Join(dataDir, "catalog"), appLog)
}

func openPackages(dataDir string) *pkgstore.Store {
	return pkgstore.NewStore(filepath.Join(dataDir, "packages"), appLog)
}

func Execute() error {
	defer func() { _ = appLog.Sync() }()
	return rootCmd.Execute()
}
