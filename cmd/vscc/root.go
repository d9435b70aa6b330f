package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/freeeve/vscc-rating/internal/config"
	"github.com/freeeve/vscc-rating/internal/logger"
)

var (
	cfgFile  string
	logLevel string
	devMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "vscc",
	Short: "Compare VSCC rating formulas over recorded scenarios",
	Long: `vscc scores recorded end-of-game supply center counts of the 25-faction
variant under the current formula and the proposed performance-weighted
formulas, and prints the rating change every faction would receive.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is normal.
		_ = godotenv.Load()
		logger.Init(logLevel, devMode)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: vscc.yml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default: $LOG_LEVEL or info)")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "colored development logging")
}

// loadConfig reads the config file and environment, then applies any
// flags the user set explicitly on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source, _ = flags.GetString("source")
	}
	if flags.Changed("set") {
		cfg.Set, _ = flags.GetString("set")
	}
	if flags.Changed("prefix") {
		cfg.LabelPrefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("normalization") {
		cfg.Normalization, _ = flags.GetString("normalization")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
