package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/validator"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <puzzle-file>",
		Short: "Check a puzzle for row/column/box conflicts",
		Long: `Check that no digit repeats within a row, column or 3x3 box.
Empty cells are ignored, so partial puzzles validate too.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

type validateOutput struct {
	OK        bool              `json:"ok"`
	Conflicts []domain.Position `json:"conflicts,omitempty"`
}

func runValidate(opts *RootOptions, cmd *cobra.Command, path string) error {
	g, err := readGrid(cmd, path)
	if err != nil {
		return err
	}
	ok, conflicts, err := validator.New().Validate(cmd.Context(), &domain.Board{Values: g})
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(validateOutput{OK: ok, Conflicts: conflicts}); err != nil {
			return err
		}
	} else if ok {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
	} else {
		for _, p := range conflicts {
			fmt.Fprintf(cmd.OutOrStdout(), "conflict at row %d, col %d\n", p.Row, p.Col)
		}
	}
	if !ok {
		return fmt.Errorf("%d conflicting cells", len(conflicts))
	}
	return nil
}
