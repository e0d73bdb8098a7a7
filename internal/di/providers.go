package di

import (
	"context"
	"fmt"
	"io"
	"time"

	domrepo "PairScope/internal/domain/repository"
	domsvc "PairScope/internal/domain/service"
	"PairScope/internal/handler/api"
	"PairScope/internal/service/cache"
	"PairScope/internal/service/ratelimit"
	"PairScope/internal/services/analytics"
	"PairScope/internal/usecase"
	"PairScope/pkg/config"
	xhttp "PairScope/pkg/http"
	applogger "PairScope/pkg/logger"
	"PairScope/pkg/metrics"
	"PairScope/pkg/server"
)

const redisPingTimeout = 3 * time.Second

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New(nil)
}

// ProvideEngine creates the analysis engine.
func ProvideEngine(cfg *config.Config) *analytics.Engine {
	return analytics.NewEngine(analytics.WithMinPoints(cfg.Analysis.MinPoints))
}

// ProvideAnalyzer exposes the engine through the domain interface.
func ProvideAnalyzer(e *analytics.Engine) domsvc.PairAnalyzer {
	return e
}

// ProvideResultCache returns the configured result cache, or nil when caching is off.
// A Redis backend must answer a ping before the app starts.
func ProvideResultCache(cfg *config.Config) (domrepo.ResultCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if cfg.Cache.Backend != "redis" {
		return cache.NewTTLCache(cfg.Cache.MaxEntries), nil
	}

	rc := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
		Prefix:   cfg.Cache.Redis.Prefix,
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("result cache %s: %w", cfg.Cache.Redis.Addr, err)
	}
	return rc, nil
}

// ProvidePairAnalysis creates the pair analysis use case.
func ProvidePairAnalysis(
	analyzer domsvc.PairAnalyzer,
	m domrepo.Metrics,
	l *applogger.Logger,
	rc domrepo.ResultCache,
	cfg *config.Config,
) *usecase.PairAnalysis {
	var opts []usecase.Option
	if rc != nil {
		opts = append(opts, usecase.WithResultCache(rc, cfg.Cache.TTL))
	}
	return usecase.NewPairAnalysis(analyzer, m, l, cfg.Analysis.MaxPoints, opts...)
}

// ProvideHTTPHandler creates the API route handler.
func ProvideHTTPHandler(l *applogger.Logger, uc *usecase.PairAnalysis) xhttp.Handler {
	return api.NewPairsEchoHandler(l, uc)
}

// ProvideHTTPServer creates the Echo server with the configured middleware.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, h xhttp.Handler) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithLogger(l),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(cfg.Server.SlowThreshold),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithMetrics(cfg.Metrics.Enabled, cfg.Metrics.Path),
	}
	if cfg.RateLimit.Enabled {
		lim := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		opts = append(opts, xhttp.WithMiddleware(lim.Middleware()))
	}
	return xhttp.NewServer(h, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server, rc domrepo.ResultCache) *server.App {
	var closers []io.Closer
	if c, ok := rc.(io.Closer); ok {
		closers = append(closers, c)
	}
	return server.New(cfg, l, srv, closers...)
}
