package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/definition"
)

// ValidateMachine prints every finding for the definition at path and
// returns an error when at least one of them is an error.
func ValidateMachine(path string, out io.Writer) error {
	def, err := definition.Load(path)
	if err != nil {
		return err
	}
	report, err := validator.ValidateDefinition(def)
	if err != nil {
		return err
	}
	for _, issue := range report {
		fmt.Fprintln(out, issue)
	}
	if err := report.Err(); err != nil {
		return err
	}

	// Build catches what the static crawl cannot, such as a state that is
	// also a terminal.
	cfg, err := def.Config()
	if err != nil {
		return err
	}
	if _, err := cfg.Build(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Machine is valid! ✅")
	return nil
}
