package cli

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/riffle/internal/dataset"
	"github.com/roach88/riffle/pipeline"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Input    string // YAML/JSON dataset file
	Database string // SQLite database path
	Query    string // single-column query against Database
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <pipeline.cue>",
		Short: "Run a pipeline over a dataset",
		Long: `Compile a CUE pipeline definition and run it over a dataset.

The dataset comes from exactly one source: a YAML/JSON file holding a
list of scalars (--input), or a single-column SQLite query (--db with
--query).

Example:
  riffle run dedupe.cue --input values.yaml
  riffle run dedupe.cue --db metrics.sqlite --query "SELECT v FROM samples ORDER BY id"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Input, "input", "", "YAML/JSON dataset file")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database path (requires --query)")
	cmd.Flags().StringVar(&opts.Query, "query", "", "single-column SQL query against --db")

	return cmd
}

func runPipeline(opts *RunOptions, pipelinePath string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	// Each invocation gets a token so verbose logs and JSON output can
	// be correlated.
	runToken := uuid.Must(uuid.NewV7()).String()
	slog.Debug("run starting", "run_token", runToken, "pipeline", pipelinePath)

	p, err := pipeline.LoadFile(pipelinePath)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to compile pipeline", err)
	}
	slog.Debug("pipeline compiled", "run_token", runToken, "name", p.Name, "steps", len(p.Steps))

	values, err := loadDataset(opts)
	if err != nil {
		return err
	}
	slog.Debug("dataset loaded", "run_token", runToken, "values", len(values))

	result, err := pipeline.Run(p, values)
	if err != nil {
		return WrapExitError(ExitFailure, "pipeline failed", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return formatter.Success(result, runToken)
	}
	return formatter.Success(result.Text(), "")
}

func loadDataset(opts *RunOptions) ([]pipeline.Value, error) {
	switch {
	case opts.Input != "" && opts.Database != "":
		return nil, NewExitError(ExitCommandError, "use either --input or --db, not both")
	case opts.Input != "":
		values, err := dataset.LoadFile(opts.Input)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load dataset", err)
		}
		return values, nil
	case opts.Database != "":
		if opts.Query == "" {
			return nil, NewExitError(ExitCommandError, "--db requires --query")
		}
		values, err := dataset.QueryValues(opts.Database, opts.Query)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to query dataset", err)
		}
		return values, nil
	}
	return nil, NewExitError(ExitCommandError, "a dataset source is required: --input or --db with --query")
}

func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}
