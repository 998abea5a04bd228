package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the HTTP API: POST /runs executes a definition and stores the result,
GET /runs and GET /runs/{id} read stored results, GET /metrics exposes
Prometheus metrics, GET /openapi.json serves the API document and /mcp
serves the MCP tools over streamable HTTP.

Settings come from TURING_* environment variables; flags override them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("addr") {
			cfg.Addr, _ = flags.GetString("addr")
		}
		if flags.Changed("redis") {
			cfg.RedisAddr, _ = flags.GetString("redis")
		}
		if flags.Changed("store-dir") {
			cfg.StoreDir, _ = flags.GetString("store-dir")
		}
		if flags.Changed("step-limit") {
			cfg.StepLimit, _ = flags.GetInt("step-limit")
		}
		if flags.Changed("run-timeout") {
			cfg.RunTimeout, _ = flags.GetDuration("run-timeout")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := newLogger(cmd, cfg.LogLevel)
		if err != nil {
			return err
		}

		tui.PrintBanner(cmd.ErrOrStderr())

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Stop()
		if err := cli.Serve(ctx, cfg, logger); err != nil {
			return err
		}
		if sig := ctx.Signal(); sig != nil {
			logger.Info("stopped by signal", "signal", sig.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (env TURING_ADDR, default :8080)")
	serveCmd.Flags().String("redis", "", "Redis address for the result store (env TURING_REDIS_ADDR)")
	serveCmd.Flags().String("store-dir", "", "Directory for run results when Redis is not used (env TURING_STORE_DIR)")
	serveCmd.Flags().Int("step-limit", 0, "Maximum steps per run (env TURING_STEP_LIMIT, default 1000000)")
	serveCmd.Flags().Duration("run-timeout", 0, "Wall time allowed per run, 0 for none (env TURING_RUN_TIMEOUT, default 30s)")
}
