package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solver/internal/domain"
)

func TestValidatePartialBoardOK(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 5
	b.Values[0][1] = 3
	b.Values[4][4] = 5 // same digit far away is fine

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateEmptyBoardOK(t *testing.T) {
	ok, conflicts, err := New().Validate(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateRowConflict(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 5
	b.Values[0][7] = 5

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.Position{Row: 0, Col: 7})
}

func TestValidateColumnConflict(t *testing.T) {
	b := &domain.Board{}
	b.Values[1][3] = 8
	b.Values[6][3] = 8

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.Position{Row: 6, Col: 3})
}

func TestValidateConflictReportedOncePerCell(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 5
	b.Values[0][1] = 5 // violates the row and the box at once

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.Position{{Row: 0, Col: 1}}, conflicts)
}

func TestValidateLaterUnitStillSeesDuplicatedDigit(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 5
	b.Values[0][3] = 5 // row conflict
	b.Values[4][3] = 5 // must still collide with the column

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.Position{Row: 0, Col: 3})
	assert.Contains(t, conflicts, domain.Position{Row: 4, Col: 3})
}

func TestValidateBoxConflict(t *testing.T) {
	b := &domain.Board{}
	b.Values[3][3] = 2
	b.Values[5][5] = 2 // same box, different row and column

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conflicts)
}
