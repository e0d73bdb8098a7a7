package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"PairScope/pkg/config"
)

var configPath string

// rootCmd is the base command for the PairScope CLI
var rootCmd = &cobra.Command{
	Use:   "pairscope",
	Short: "PairScope pair trading analysis engine",
	Long: `PairScope turns two price histories into a z-score trading signal,
a delta-neutral position plan under a leverage cap, and a risk/exit plan.

Run 'pairscope serve' for the HTTP API or 'pairscope analyze' for one-off analyses.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (defaults only when empty)")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
