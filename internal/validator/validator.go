package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator checks row/column/box uniqueness in a single pass over the
// grid, keeping a digit bitmask per unit. Empty cells are skipped, so a
// partial board with no duplicate digits in any unit passes.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the board is well formed. A cell that repeats a
// digit already placed in its row, column or box is returned once, in
// row-major order, no matter how many units it violates.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.Position, error) {
	var rows, cols, boxes [9]uint16
	var conf []domain.Position
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := uint16(1) << val
			bx := (r/3)*3 + c/3
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[bx]&bit != 0 {
				conf = append(conf, domain.Position{Row: r, Col: c})
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[bx] |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
