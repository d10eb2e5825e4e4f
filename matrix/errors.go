// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (wrapped with an operation tag) and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON WRAPPING
// ----------------
// Errors coming up from a row vector are wrapped together with the matching
// matrix sentinel (fmt.Errorf with two %w verbs), so both
// errors.Is(err, matrix.ErrOutOfRange) and errors.Is(err, vector.ErrOutOfRange)
// hold for a bad column index.

var (
	// ErrInvalidSize is returned when a requested size is negative, exceeds
	// MaxMatrixSize, or the supplied rows do not form a square.
	ErrInvalidSize = errors.New("matrix: invalid size")

	// ErrOutOfRange indicates that a row or column index is outside [0, Size()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates operands of different sizes in Add/Sub.
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opFromRows   = "NewFromRows"
	opRow        = "Row"
	opAt         = "At"
	opSet        = "Set"
	opRef        = "Ref"
	opAssignFrom = "AssignFrom"
	opMoveFrom   = "MoveFrom"
	opResize     = "Resize"
	opAdd        = "Add"
	opSub        = "Sub"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", op, err)
}

// rowErrorf attaches the offending row index and current size to err.
func rowErrorf(op string, row, size int, err error) error {
	return fmt.Errorf("Matrix.%s: row %d with size %d: %w", op, row, size, err)
}

// columnErrorf attaches the (row, col) position to a row-level failure and
// marks it with the matrix sentinel as well.
func columnErrorf(op string, row, col int, sentinel, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w: %w", op, row, col, sentinel, err)
}
