package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"appcatalog/internal/application"
	"appcatalog/internal/bootstrap"
	"appcatalog/internal/config"
)

var (
	cfg = config.LoadOrDefault()
	rt  *bootstrap.Runtime
)

var rootCmd = &cobra.Command{
	Use:   "appcatalog-cli",
	Short: "CLI for browsing apps and their settings entry points",
	Long: `appcatalog-cli lists the apps installed across device user profiles,
orders them by a saved sort preference and resolves the activity that
opens each app's settings.

Package data comes from a registry snapshot loaded with "import".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		rt, err = bootstrap.Open(cfg, "cli")
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if rt == nil {
			return nil
		}
		return rt.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the registry database")
	rootCmd.PersistentFlags().StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used to compare app names")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
}

// GetEngine returns the initialized engine
func GetEngine() *application.Engine {
	return rt.Engine
}
