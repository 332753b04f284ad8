package domain

// Grid holds the 81 cell values in row-major order, 0 meaning empty.
type Grid [9][9]uint8

// Board pairs current values with the cells that are fixed givens.
// A zero-valued Fixed means "derive the givens from the non-zero cells".
type Board struct {
	Values Grid       `json:"board"`
	Fixed  [9][9]bool `json:"fixed,omitempty"`
}

// Position identifies a cell on the board, row and column each in 0..8.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position lies on the 9×9 board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < 9 && p.Col >= 0 && p.Col < 9
}

// Index flattens the position to 0..80 in row-major order.
func (p Position) Index() int { return p.Row*9 + p.Col }

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []Position   `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
