package domain

// FixedSet is a bitmask over the 81 cell positions. Membership means the
// cell is a given and must never be written during solving.
type FixedSet struct {
	words [2]uint64
}

// NewFixedSet builds a set from the marked cells of a board. When no cell is
// marked it falls back to the non-zero cells, which is what "given" means at
// the moment solving begins.
func NewFixedSet(b *Board) FixedSet {
	var fs FixedSet
	marked := false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Fixed[r][c] {
				marked = true
				fs.Add(Position{Row: r, Col: c})
			}
		}
	}
	if marked {
		return fs
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				fs.Add(Position{Row: r, Col: c})
			}
		}
	}
	return fs
}

// Add marks the position as fixed.
func (fs *FixedSet) Add(p Position) {
	i := p.Index()
	fs.words[i/64] |= 1 << uint(i%64)
}

// Contains reports whether the position is fixed.
func (fs FixedSet) Contains(p Position) bool {
	i := p.Index()
	return fs.words[i/64]&(1<<uint(i%64)) != 0
}

// Len returns the number of fixed positions.
func (fs FixedSet) Len() int {
	n := 0
	for i := 0; i < 81; i++ {
		if fs.words[i/64]&(1<<uint(i%64)) != 0 {
			n++
		}
	}
	return n
}

// Marks expands the set back into the board-shaped boolean form.
func (fs FixedSet) Marks() [9][9]bool {
	var m [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			m[r][c] = fs.Contains(Position{Row: r, Col: c})
		}
	}
	return m
}
