package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/hint"
)

// NewHintCommand creates the hint command.
func NewHintCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hint <puzzle-file>",
		Short:         "Suggest the next logical cell to fill",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHint(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

type hintOutput struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func runHint(opts *RootOptions, cmd *cobra.Command, path string) error {
	g, err := readGrid(cmd, path)
	if err != nil {
		return err
	}
	h, found, err := hint.NewSingles().Hint(cmd.Context(), &domain.Board{Values: g}, domain.StrategySingles)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(hintOutput{Found: found, Hint: h})
	}
	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), "no hint found")
		return nil
	}
	p := h.Cells[0]
	fmt.Fprintf(cmd.OutOrStdout(), "%s (row %d, col %d)\n", h.Message, p.Row, p.Col)
	return nil
}
