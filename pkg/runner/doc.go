/*
Package runner executes machine definitions submitted by remote callers.

It is the piece shared by the HTTP and MCP adapters: it turns a parsed
definition into a machine, runs it under a step budget and an optional
deadline, and stores the resulting record.

# Usage

	exec := runner.New(store,
		runner.WithStepLimit(10_000),
		runner.WithTimeout(5*time.Second),
	)
	rec, err := exec.Run(ctx, runner.Request{Definition: def, Input: &input})

Runs that fail (undefined state, unhandled symbol, step limit, deadline) are
outcomes: they come back as a record with Error set and a nil error.
*/
package runner
