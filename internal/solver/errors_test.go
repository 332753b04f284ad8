package solver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/sudoku-solver/internal/domain"
)

func TestSolveErrorPredicates(t *testing.T) {
	malformed := NewMalformedError([]domain.Position{{Row: 0, Col: 4}})
	unsolvable := NewUnsolvableError()

	assert.True(t, IsMalformed(malformed))
	assert.False(t, IsUnsolvable(malformed))
	assert.True(t, IsUnsolvable(unsolvable))
	assert.False(t, IsMalformed(unsolvable))
	assert.False(t, IsMalformed(errors.New("plain")))
	assert.False(t, IsMalformed(nil))
}

func TestSolveErrorPredicatesUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("solve failed: %w", NewUnsolvableError())
	assert.True(t, IsUnsolvable(wrapped))
}

func TestSolveErrorMessages(t *testing.T) {
	e := NewMalformedError([]domain.Position{{Row: 0, Col: 4}, {Row: 2, Col: 2}})
	assert.Contains(t, e.Error(), "MALFORMED_INPUT")
	assert.Contains(t, e.Error(), "2 conflicting cells")

	p := NewInvalidPositionError(domain.Position{Row: 9, Col: 0})
	assert.Contains(t, p.Error(), "INVALID_POSITION")
	assert.Contains(t, p.Error(), "row=9")
}
