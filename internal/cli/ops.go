package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/riffle/pipeline"
)

// opSummary describes one pipeline op for the ops listing.
type opSummary struct {
	Op     string `json:"op"`
	Params string `json:"params,omitempty"`
	Help   string `json:"help"`
}

// opCatalog lists every supported op. Order matches the docs.
var opCatalog = []opSummary{
	{Op: pipeline.OpDistinct, Help: "drop elements whose equal-class was already seen"},
	{Op: pipeline.OpSort, Params: "dir?, collate?", Help: "stable sort, ascending by default"},
	{Op: pipeline.OpGrade, Params: "dir?, collate?", Help: "index permutation of the stable sort"},
	{Op: pipeline.OpWindow, Params: "size, step", Help: "sliding windows, short tail kept"},
	{Op: pipeline.OpWindowExact, Params: "size, step", Help: "sliding windows, short tail dropped"},
	{Op: pipeline.OpChunkBy, Params: "key?, modulus?", Help: "split where the derived key changes"},
	{Op: pipeline.OpChunkByHeader, Params: "key?, modulus?", Help: "split where the first element's key reappears"},
	{Op: pipeline.OpGroupBy, Params: "key?, modulus?", Help: "group by derived key, first-occurrence order"},
	{Op: pipeline.OpMax, Help: "maximum element, earliest wins ties"},
	{Op: pipeline.OpMin, Help: "minimum element, earliest wins ties"},
	{Op: pipeline.OpSum, Help: "numeric sum"},
	{Op: pipeline.OpConcat, Params: "sep?", Help: "join string elements"},
	{Op: pipeline.OpUnion, Params: "with", Help: "input followed by unseen operand elements"},
	{Op: pipeline.OpIntersection, Params: "with", Help: "input elements with a match in the operand"},
	{Op: pipeline.OpDifference, Params: "with", Help: "input elements with no match in the operand"},
	{Op: pipeline.OpContains, Params: "value", Help: "whether any element equals the probe"},
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List supported pipeline ops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return formatter.Success(opCatalog, "")
			}
			var b strings.Builder
			for _, op := range opCatalog {
				if op.Params != "" {
					fmt.Fprintf(&b, "%-16s (%s)  %s\n", op.Op, op.Params, op.Help)
				} else {
					fmt.Fprintf(&b, "%-16s %s\n", op.Op, op.Help)
				}
			}
			return formatter.Success(b.String(), "")
		},
	}
	return cmd
}
