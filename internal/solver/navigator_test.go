package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solver/internal/domain"
)

func TestNextEditableSkipsFixedAndWraps(t *testing.T) {
	var fixed domain.FixedSet
	fixed.Add(domain.Position{Row: 0, Col: 8})
	fixed.Add(domain.Position{Row: 1, Col: 0})

	// from (0,7): skip the two fixed cells and land on (1,1)
	p, ok := nextEditable(fixed, domain.Position{Row: 0, Col: 7})
	require.True(t, ok)
	assert.Equal(t, domain.Position{Row: 1, Col: 1}, p)
}

func TestNextEditableOffBoard(t *testing.T) {
	var fixed domain.FixedSet
	_, ok := nextEditable(fixed, domain.Position{Row: 8, Col: 8})
	assert.False(t, ok)

	// a fixed tail ends the walk too
	fixed.Add(domain.Position{Row: 8, Col: 8})
	_, ok = nextEditable(fixed, domain.Position{Row: 8, Col: 7})
	assert.False(t, ok)
}

func TestPrevEditableSkipsFixedAndWraps(t *testing.T) {
	var fixed domain.FixedSet
	fixed.Add(domain.Position{Row: 3, Col: 0})
	fixed.Add(domain.Position{Row: 2, Col: 8})

	p, ok := prevEditable(fixed, domain.Position{Row: 3, Col: 1})
	require.True(t, ok)
	assert.Equal(t, domain.Position{Row: 2, Col: 7}, p)
}

func TestPrevEditableOffBoard(t *testing.T) {
	var fixed domain.FixedSet
	_, ok := prevEditable(fixed, domain.Position{Row: 0, Col: 0})
	assert.False(t, ok)

	fixed.Add(domain.Position{Row: 0, Col: 0})
	_, ok = prevEditable(fixed, domain.Position{Row: 0, Col: 1})
	assert.False(t, ok)
}

func TestNavigatorNeverReturnsFixed(t *testing.T) {
	var fixed domain.FixedSet
	for c := 0; c < 9; c++ {
		fixed.Add(domain.Position{Row: 4, Col: c}) // a fully fixed row
	}

	p, ok := nextEditable(fixed, domain.Position{Row: 3, Col: 8})
	require.True(t, ok)
	assert.Equal(t, domain.Position{Row: 5, Col: 0}, p)

	p, ok = prevEditable(fixed, domain.Position{Row: 5, Col: 0})
	require.True(t, ok)
	assert.Equal(t, domain.Position{Row: 3, Col: 8}, p)
}

func TestEditableOrder(t *testing.T) {
	var fixed domain.FixedSet
	fixed.Add(domain.Position{Row: 0, Col: 0})
	fixed.Add(domain.Position{Row: 8, Col: 8})

	order := editableOrder(fixed)
	require.Len(t, order, 79)
	assert.Equal(t, domain.Position{Row: 0, Col: 1}, order[0])
	assert.Equal(t, domain.Position{Row: 8, Col: 7}, order[78])

	// row-major and strictly increasing
	for i := 1; i < len(order); i++ {
		assert.Greater(t, order[i].Index(), order[i-1].Index())
	}
}

func TestEditableOrderAllFixed(t *testing.T) {
	var fixed domain.FixedSet
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed.Add(domain.Position{Row: r, Col: c})
		}
	}
	assert.Empty(t, editableOrder(fixed))
}
