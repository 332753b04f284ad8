package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
)

// readGrid loads a grid from a puzzle file, or from stdin when path is "-".
// Accepted cell characters are 1-9, with 0 or '.' for empty; whitespace is
// ignored, so both the 81-character line and the 9-line layout work.
func readGrid(cmd *cobra.Command, path string) (domain.Grid, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to read puzzle: %w", err)
	}
	g, err := domain.ParseGrid(string(data))
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to parse puzzle %s: %w", path, err)
	}
	return g, nil
}
