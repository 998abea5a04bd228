package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a machine definition over one or more inputs",
	Long: `Loads the definition at FILE and runs it once per --input, or once over the
definition's own input when none is given.

Exit status is 0 when every input was accepted, 2 when any was rejected and
1 when a run failed or the definition is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, _ := cmd.Flags().GetStringArray("input")
		stepLimit, _ := cmd.Flags().GetInt("step-limit")
		trace, _ := cmd.Flags().GetBool("trace")
		pretty, _ := cmd.Flags().GetBool("pretty")

		logger, err := newLogger(cmd, "warn")
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Stop()

		code, err := cli.RunMachine(ctx, cli.RunOptions{
			Path:      args[0],
			Inputs:    inputs,
			StepLimit: stepLimit,
			Trace:     trace,
			Pretty:    pretty,
			Logger:    logger,
			Out:       cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		if code != cli.ExitAccepted {
			return &exitError{code: code}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayP("input", "i", nil, "Input tape (repeatable)")
	runCmd.Flags().Int("step-limit", 0, "Stop runs after this many steps (0 means unlimited)")
	runCmd.Flags().Bool("trace", false, "Print the states visited by each run")
	runCmd.Flags().Bool("pretty", false, "Render a markdown report per run")
}
