package solver

import "svw.info/sudoku-solver/internal/domain"

// nextEditable returns the first non-fixed cell after p in row-major order,
// wrapping across row boundaries. ok is false once the walk runs off the
// bottom of the board. p.Col may be -1 to start the walk at (p.Row, 0).
func nextEditable(fixed domain.FixedSet, p domain.Position) (domain.Position, bool) {
	row, col := p.Row, p.Col
	for {
		col++
		if col > 8 {
			col = 0
			row++
		}
		if row > 8 {
			return domain.Position{}, false
		}
		q := domain.Position{Row: row, Col: col}
		if !fixed.Contains(q) {
			return q, true
		}
	}
}

// prevEditable returns the first non-fixed cell before p in row-major order.
// ok is false once the walk runs off the top of the board, which is how an
// unsolvable puzzle surfaces.
func prevEditable(fixed domain.FixedSet, p domain.Position) (domain.Position, bool) {
	row, col := p.Row, p.Col
	for {
		col--
		if col < 0 {
			col = 8
			row--
		}
		if row < 0 {
			return domain.Position{}, false
		}
		q := domain.Position{Row: row, Col: col}
		if !fixed.Contains(q) {
			return q, true
		}
	}
}

// editableOrder collects every non-fixed cell in row-major order.
func editableOrder(fixed domain.FixedSet) []domain.Position {
	order := make([]domain.Position, 0, 81)
	p := domain.Position{Row: 0, Col: -1}
	for {
		q, ok := nextEditable(fixed, p)
		if !ok {
			return order
		}
		order = append(order, q)
		p = q
	}
}
