package domain

import (
	"fmt"
	"strings"
)

// ParseGrid reads a grid from text. The input must contain exactly 81 cell
// characters: digits 1-9, with 0 or '.' for an empty cell. Whitespace and
// newlines are ignored, so both the single-line and the 9-line layout parse.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, ch := range s {
		switch {
		case ch == '.' || ch == '0':
			if i >= 81 {
				return Grid{}, fmt.Errorf("grid text has more than 81 cells")
			}
			i++
		case ch >= '1' && ch <= '9':
			if i >= 81 {
				return Grid{}, fmt.Errorf("grid text has more than 81 cells")
			}
			g[i/9][i%9] = uint8(ch - '0')
			i++
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '|':
			// separators
		default:
			return Grid{}, fmt.Errorf("invalid character %q at cell %d", ch, i)
		}
	}
	if i != 81 {
		return Grid{}, fmt.Errorf("grid text has %d cells, want 81", i)
	}
	return g, nil
}

// String renders the grid as 9 lines of 9 characters, '.' for empty.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + g[r][c])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Line renders the grid as a single 81-character line, '.' for empty.
func (g Grid) Line() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + g[r][c])
			}
		}
	}
	return sb.String()
}
