package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"PairScope/internal/di"
)

// serveCmd runs the HTTP API until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	Long: `Start the HTTP API with metrics, rate limiting and result caching as configured.

Examples:
  pairscope serve
  pairscope serve --config configs/config.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("app initialization failed: %w", err)
	}

	return app.Run()
}
