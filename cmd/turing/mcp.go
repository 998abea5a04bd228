package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/config"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server on stdio",
	Long: `Starts the MCP server on Standard Input/Output, exposing the run_machine,
validate_machine, render_graph, get_run and list_runs tools to AI agents.

Runs are stored like those of serve; settings come from TURING_* environment
variables and flags override them. Logs go to stderr so they never corrupt
the JSON-RPC stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("redis") {
			cfg.RedisAddr, _ = flags.GetString("redis")
		}
		if flags.Changed("store-dir") {
			cfg.StoreDir, _ = flags.GetString("store-dir")
		}
		if flags.Changed("step-limit") {
			cfg.StepLimit, _ = flags.GetInt("step-limit")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := newLogger(cmd, "warn")
		if err != nil {
			return err
		}

		srv, closeStore, err := cli.NewMCPServer(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		logger.Info("starting MCP server", "transport", "stdio")
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("redis", "", "Redis address for the result store (env TURING_REDIS_ADDR)")
	mcpCmd.Flags().String("store-dir", "", "Directory for run results when Redis is not used (env TURING_STORE_DIR)")
	mcpCmd.Flags().Int("step-limit", 0, "Maximum steps per run (env TURING_STEP_LIMIT, default 1000000)")
}
