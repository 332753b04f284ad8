package solver

import (
	"math/bits"

	"svw.info/sudoku-solver/internal/domain"
)

// DigitSet is a bitmask of the digits 1..9 present in a row, column or box.
type DigitSet uint16

// Has reports whether digit d is in the set.
func (s DigitSet) Has(d uint8) bool { return s&(1<<d) != 0 }

// Count returns the number of digits in the set.
func (s DigitSet) Count() int { return bits.OnesCount16(uint16(s)) }

func (s *DigitSet) add(d uint8) {
	if d >= 1 && d <= 9 {
		*s |= 1 << d
	}
}

// RowDigits returns the digits present in the given row.
func RowDigits(g *domain.Grid, row int) DigitSet {
	var s DigitSet
	for c := 0; c < 9; c++ {
		s.add(g[row][c])
	}
	return s
}

// ColDigits returns the digits present in the given column.
func ColDigits(g *domain.Grid, col int) DigitSet {
	var s DigitSet
	for r := 0; r < 9; r++ {
		s.add(g[r][col])
	}
	return s
}

// BoxDigits returns the digits present in the 3×3 box containing (row, col).
func BoxDigits(g *domain.Grid, row, col int) DigitSet {
	var s DigitSet
	br, bc := row-row%3, col-col%3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			s.add(g[r][c])
		}
	}
	return s
}

// UsedDigits returns the union of the row, column and box digits for a cell.
// A digit absent from this set is a legal candidate for the cell.
func UsedDigits(g *domain.Grid, p domain.Position) DigitSet {
	return RowDigits(g, p.Row) | ColDigits(g, p.Col) | BoxDigits(g, p.Row, p.Col)
}
