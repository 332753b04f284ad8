package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found naked single if max tier allows it.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			p := domain.Position{Row: r, Col: c}
			v, ok := soleCandidate(&b.Values, p)
			if ok {
				msg := fmt.Sprintf("Single: only %d fits here", v)
				return domain.Hint{
					Message:  msg,
					Cells:    []domain.Position{p},
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

// soleCandidate reports the cell's only legal digit, when exactly one exists.
func soleCandidate(g *domain.Grid, p domain.Position) (uint8, bool) {
	used := solver.UsedDigits(g, p)
	if 9-used.Count() != 1 {
		return 0, false
	}
	v, ok := solver.PickCandidate(g, p, 1)
	return v, ok
}
