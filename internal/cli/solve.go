package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Timeout time.Duration
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Fill the empty cells of a puzzle",
		Long: `Fill the empty cells of a 9x9 Sudoku so every row, column and box
contains each digit exactly once. The given cells are never altered.

The puzzle file holds 81 cells as digits, with 0 or '.' for empty;
whitespace is ignored. Pass "-" to read from stdin.

Example:
  sudoku solve puzzle.txt
  cat puzzle.txt | sudoku solve - --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, cmd, args[0])
		},
	}

	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 5*time.Second, "abort the search after this long")

	return cmd
}

type solveOutput struct {
	Board [9][9]uint8 `json:"board"`
	Nodes int         `json:"nodes"`
}

func runSolve(opts *SolveOptions, cmd *cobra.Command, path string) error {
	g, err := readGrid(cmd, path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
	defer cancel()

	out, st, err := solver.NewEngine().Solve(ctx, &domain.Board{Values: g})
	if err != nil {
		return fmt.Errorf("solve failed after %d nodes: %w", st.Nodes, err)
	}

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(solveOutput{Board: out.Values, Nodes: st.Nodes}); err != nil {
			return err
		}
	default:
		fmt.Fprint(cmd.OutOrStdout(), out.Values.String())
	}
	if opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "solved in %v, nodes=%d\n", st.Duration.Round(time.Microsecond), st.Nodes)
	}
	return nil
}
