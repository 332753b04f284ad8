package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/validator"
)

// Engine fills the editable cells of a board by backtracking with an
// explicit decision stack: the editable cells in row-major order are the
// stack, candidates are tried ascending 1..9 per cell, and running out of
// cells to step back to establishes unsolvability. Givens are never written.
type Engine struct {
	v *validator.FastValidator
}

func NewEngine() *Engine { return &Engine{v: validator.New()} }

// Solve returns a completed copy of the board, or a SolveError when the
// givens conflict up front or no completion exists. The input board is
// never mutated; the engine works on a copy throughout.
func (s *Engine) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	stats := func(nodes int) ports.Stats {
		return ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	}

	fixed := domain.NewFixedSet(b)

	// Only the givens gate solving. An attempt value left in an editable
	// cell is the search's to overwrite, so it is blanked before the
	// well-formedness check.
	givens := domain.Board{Values: b.Values}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !fixed.Contains(domain.Position{Row: r, Col: c}) {
				givens.Values[r][c] = 0
			}
		}
	}
	ok, conflicts, err := s.v.Validate(ctx, &givens)
	if err != nil {
		return nil, stats(0), err
	}
	if !ok {
		return nil, stats(0), NewMalformedError(conflicts)
	}

	order := editableOrder(fixed)
	grid := b.Values
	initial := b.Values

	nodes := 0
	idx := 0
	maxSeen := -1
	next := uint8(1)
	for idx < len(order) {
		if err := ctx.Err(); err != nil {
			return nil, stats(nodes), err
		}
		p := order[idx]
		if !p.InBounds() {
			return nil, stats(nodes), NewInvalidPositionError(p)
		}
		if idx > maxSeen {
			maxSeen = idx
			// A caller-supplied attempt value in an editable cell seeds
			// the first scan; once backtracking has passed through, the
			// cell is re-derived from 1 like any other.
			if v := initial[p.Row][p.Col]; v != 0 {
				next = v
			}
		}
		grid[p.Row][p.Col] = 0
		nodes++
		if v, found := PickCandidate(&grid, p, next); found {
			grid[p.Row][p.Col] = v
			idx++
			next = 1
			continue
		}
		if idx == 0 {
			if next > 1 && initial[p.Row][p.Col] != 0 {
				// the seed skipped the low candidates of the first
				// editable cell; rescan from 1 before giving up
				initial[p.Row][p.Col] = 0
				next = 1
				continue
			}
			// stepping back would cross before the first editable cell
			return nil, stats(nodes), NewUnsolvableError()
		}
		idx--
		prev := order[idx]
		next = grid[prev.Row][prev.Col] + 1
	}

	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, stats(nodes), nil
}
