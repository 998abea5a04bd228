package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/adapters/file"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
	mcpAdapter "github.com/aretw0/turing/pkg/adapters/mcp"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 5 * time.Second

// MCPPath is where the streamable MCP transport is mounted by Serve.
const MCPPath = "/mcp"

// NewHandler wires the result store, metrics, HTTP API and MCP endpoint
// described by cfg. The returned close function releases the store.
func NewHandler(ctx context.Context, cfg config.Config, logger *slog.Logger) (http.Handler, func() error, error) {
	store, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}

	api := httpAdapter.NewHandler(store,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetrics(metrics, reg),
		httpAdapter.WithStepLimit(cfg.StepLimit),
		httpAdapter.WithRunTimeout(cfg.RunTimeout),
	)
	tools := mcpAdapter.NewServer(newExecutor(store, cfg, logger, metrics.HooksFor("mcp")), store, logger)

	r := chi.NewRouter()
	r.Mount(MCPPath, tools.Handler())
	r.Mount("/", api)
	return r, closeStore, nil
}

// NewMCPServer wires the result store described by cfg into an MCP server
// for the stdio transport. The returned close function releases the store.
func NewMCPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*mcpAdapter.Server, func() error, error) {
	store, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return mcpAdapter.NewServer(newExecutor(store, cfg, logger, domain.LifecycleHooks{}), store, logger), closeStore, nil
}

func newExecutor(store ports.ResultStore, cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) *runner.Executor {
	return runner.New(store,
		runner.WithLogger(logger),
		runner.WithLifecycleHooks(hooks),
		runner.WithStepLimit(cfg.StepLimit),
		runner.WithTimeout(cfg.RunTimeout),
	)
}

// newStore prefers Redis, then a directory, then memory.
func newStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.ResultStore, func() error, error) {
	noop := func() error { return nil }
	switch {
	case cfg.RedisAddr != "":
	case cfg.StoreDir != "":
		logger.Info("using file result store", "dir", cfg.StoreDir)
		return file.New(cfg.StoreDir), noop, nil
	default:
		logger.Info("using in-memory result store")
		return memory.NewStore(), noop, nil
	}

	store := redis.New(cfg.RedisAddr, redis.WithPrefix(cfg.RedisPrefix), redis.WithTTL(cfg.ResultTTL))
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}
	logger.Info("using redis result store", "addr", cfg.RedisAddr, "prefix", cfg.RedisPrefix, "ttl", cfg.ResultTTL)
	return store, store.Close, nil
}

// writeTimeout leaves room past the run deadline to store and encode the
// result. Without a run deadline it falls back to a fixed bound.
func writeTimeout(run time.Duration) time.Duration {
	if run <= 0 {
		return 5 * time.Minute
	}
	return run + 10*time.Second
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	handler, closeStore, err := NewHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout(cfg.RunTimeout),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
		return srv.Close()
	}
	if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}
