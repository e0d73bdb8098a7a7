package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"PairScope/internal/di"
	"PairScope/internal/domain/models"
	"PairScope/internal/service/remote"
	"PairScope/pkg/config"
	xhttp "PairScope/pkg/http"
)

// analyzeCmd runs a single analysis from a JSON request file
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one pair from a JSON request",
	Long: `Read an analyze request (the body accepted by POST /api/v1/pairs/analyze)
and print the analysis result as JSON. The engine runs in-process unless
--remote points at a running server.

Examples:
  pairscope analyze --input pair.json
  pairscope analyze --input - < pair.json
  pairscope analyze --input pair.json --remote http://localhost:8080`,
	RunE: runAnalyze,
}

var (
	analyzeInput   string
	analyzeRemote  string
	analyzeTimeout time.Duration
	analyzeCompact bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Request JSON file, or - for stdin")
	analyzeCmd.Flags().StringVar(&analyzeRemote, "remote", "", "Base URL of a running PairScope server")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 30*time.Second, "Overall timeout")
	analyzeCmd.Flags().BoolVar(&analyzeCompact, "compact", false, "Print compact JSON")
	_ = analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// keep stdout for the result
	cfg.Logger.Output = "stderr"

	req, err := readAnalyzeRequest(cmd.InOrStdin(), analyzeInput)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), analyzeTimeout)
	defer cancel()

	var res *models.AnalysisResult
	if analyzeRemote != "" {
		res, err = analyzeRemotely(ctx, cfg, req)
	} else {
		res, err = analyzeLocally(ctx, cfg, req)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !analyzeCompact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}

func readAnalyzeRequest(stdin io.Reader, path string) (*models.AnalyzeRequest, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	req := &models.AnalyzeRequest{}
	if err := json.NewDecoder(r).Decode(req); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return req, nil
}

func analyzeLocally(ctx context.Context, cfg *config.Config, req *models.AnalyzeRequest) (*models.AnalysisResult, error) {
	if verr := xhttp.ValidateStruct(ctx, req); verr != nil {
		b, _ := json.Marshal(verr)
		return nil, fmt.Errorf("invalid request: %s", b)
	}

	// a one-shot run has nothing to reuse
	cfg.Cache.Enabled = false
	uc, err := di.InitializePairAnalysis(cfg)
	if err != nil {
		return nil, fmt.Errorf("init analysis: %w", err)
	}
	return uc.Analyze(ctx, req)
}

func analyzeRemotely(ctx context.Context, cfg *config.Config, req *models.AnalyzeRequest) (*models.AnalysisResult, error) {
	clientCfg := cfg.Client
	clientCfg.BaseURL = analyzeRemote
	return remote.NewClient(clientCfg).Analyze(ctx, req)
}
