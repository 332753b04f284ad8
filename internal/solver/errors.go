package solver

import (
	"errors"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
)

// ErrorCode categorizes solver failures.
type ErrorCode string

const (
	// ErrCodeMalformedInput indicates the givens already violate
	// row/column/box uniqueness before any solving starts.
	ErrCodeMalformedInput ErrorCode = "MALFORMED_INPUT"

	// ErrCodeUnsolvable indicates the search exhausted every backtracking
	// possibility without completing the grid.
	ErrCodeUnsolvable ErrorCode = "UNSOLVABLE"

	// ErrCodeInvalidPosition indicates an access outside the 9×9 board.
	// Reaching it means a logic fault, not bad user input.
	ErrCodeInvalidPosition ErrorCode = "INVALID_POSITION"
)

// SolveError is the structured failure result of a Solve call.
type SolveError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Conflicts lists the offending cells (for malformed input).
	Conflicts []domain.Position

	// Pos identifies the offending cell (for invalid position).
	Pos domain.Position
}

// Error implements the error interface.
func (e *SolveError) Error() string {
	if len(e.Conflicts) > 0 {
		return fmt.Sprintf("%s: %s (%d conflicting cells)", e.Code, e.Message, len(e.Conflicts))
	}
	if e.Code == ErrCodeInvalidPosition {
		return fmt.Sprintf("%s: %s (row=%d, col=%d)", e.Code, e.Message, e.Pos.Row, e.Pos.Col)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsMalformed reports whether err is a malformed-input error.
// Uses errors.As to handle wrapped errors.
func IsMalformed(err error) bool {
	var se *SolveError
	return errors.As(err, &se) && se.Code == ErrCodeMalformedInput
}

// IsUnsolvable reports whether err is an unsolvable-puzzle error.
func IsUnsolvable(err error) bool {
	var se *SolveError
	return errors.As(err, &se) && se.Code == ErrCodeUnsolvable
}

// NewMalformedError creates a SolveError for givens that conflict up front.
func NewMalformedError(conflicts []domain.Position) *SolveError {
	return &SolveError{
		Code:      ErrCodeMalformedInput,
		Message:   "givens violate row/column/box uniqueness",
		Conflicts: conflicts,
	}
}

// NewUnsolvableError creates a SolveError for an exhausted search.
func NewUnsolvableError() *SolveError {
	return &SolveError{
		Code:    ErrCodeUnsolvable,
		Message: "no completion satisfies the givens",
	}
}

// NewInvalidPositionError creates a SolveError for an out-of-bounds access.
func NewInvalidPositionError(p domain.Position) *SolveError {
	return &SolveError{
		Code:    ErrCodeInvalidPosition,
		Message: "cell position outside the board",
		Pos:     p,
	}
}
