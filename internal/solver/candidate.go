package solver

import "svw.info/sudoku-solver/internal/domain"

// PickCandidate returns the smallest digit in [start..9] that does not
// conflict with the cell's row, column or box. ok is false when no such
// digit remains, which is the signal to backtrack.
//
// The cell's own current value counts toward the conflict sets, so callers
// retrying a cell must clear it (or pass start above the old value) first.
func PickCandidate(g *domain.Grid, p domain.Position, start uint8) (uint8, bool) {
	if start < 1 {
		start = 1
	}
	used := UsedDigits(g, p)
	for d := start; d <= 9; d++ {
		if !used.Has(d) {
			return d, true
		}
	}
	return 0, false
}
