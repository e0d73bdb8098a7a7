//go:build wireinject
// +build wireinject

package di

import (
	"PairScope/internal/usecase"
	"PairScope/pkg/config"
	"PairScope/pkg/server"

	"github.com/google/wire"
)

var analysisSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideEngine,
	ProvideAnalyzer,
	ProvideResultCache,
	ProvidePairAnalysis,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		analysisSet,
		ProvideHTTPHandler,
		ProvideHTTPServer,
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializePairAnalysis wires the use case alone, for the CLI.
func InitializePairAnalysis(cfg *config.Config) (*usecase.PairAnalysis, error) {
	wire.Build(analysisSet)
	return &usecase.PairAnalysis{}, nil
}
