package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solver/internal/domain"
)

func TestPickCandidateSmallestFree(t *testing.T) {
	g := domain.Grid{}
	g[0][1] = 1
	g[1][0] = 2 // same box as (0,0)
	g[8][0] = 3 // same column

	v, ok := PickCandidate(&g, domain.Position{Row: 0, Col: 0}, 1)
	require.True(t, ok)
	assert.Equal(t, uint8(4), v)
}

func TestPickCandidateHonorsStart(t *testing.T) {
	g := domain.Grid{}
	p := domain.Position{Row: 4, Col: 4}

	v, ok := PickCandidate(&g, p, 6)
	require.True(t, ok)
	assert.Equal(t, uint8(6), v)

	// start clamps up from 0
	v, ok = PickCandidate(&g, p, 0)
	require.True(t, ok)
	assert.Equal(t, uint8(1), v)
}

func TestPickCandidateExhausted(t *testing.T) {
	// row holds 1..8, column holds 9
	g := domain.Grid{}
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[4][8] = 9

	_, ok := PickCandidate(&g, domain.Position{Row: 0, Col: 8}, 1)
	assert.False(t, ok)
}

func TestPickCandidateStartPastLastOption(t *testing.T) {
	g := domain.Grid{}
	g[0][0] = 0
	// everything is free, but the scan starts above 9
	_, ok := PickCandidate(&g, domain.Position{Row: 0, Col: 0}, 10)
	assert.False(t, ok)
}
