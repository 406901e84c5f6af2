package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/riffle/pipeline"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <pipeline.cue>",
		Short: "Compile and validate a pipeline definition",
		Long: `Compile a CUE pipeline definition against the schema and check its
step parameters without running anything.

Example:
  riffle validate dedupe.cue`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validatePipeline(opts, args[0], cmd)
		},
	}

	return cmd
}

type validateReport struct {
	Name  string `json:"name"`
	Steps int    `json:"steps"`
	Valid bool   `json:"valid"`
}

func validatePipeline(opts *ValidateOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	p, err := pipeline.LoadFile(path)
	if err != nil {
		_ = formatter.Error("E_INVALID_PIPELINE", err.Error())
		return WrapExitError(ExitFailure, "pipeline is invalid", err)
	}

	report := validateReport{Name: p.Name, Steps: len(p.Steps), Valid: true}
	if opts.Format == "json" {
		return formatter.Success(report, "")
	}
	return formatter.Success(fmt.Sprintf("pipeline %q is valid (%d steps)\n", report.Name, report.Steps), "")
}
