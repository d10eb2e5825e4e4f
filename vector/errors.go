// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (optionally wrapped with an operation
// tag) and tests MUST match them via errors.Is. No operation panics on
// user-triggered conditions.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested size is negative, exceeds
	// MaxVectorSize, or is larger than the supplied source buffer.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrOutOfRange indicates that an element index is outside [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates that the operands of a binary operation have
	// different sizes.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)

// Operation tags for uniform error wrapping.
const (
	opNew        = "New"
	opFromSlice  = "NewFromSlice"
	opAt         = "At"
	opSet        = "Set"
	opRef        = "Ref"
	opAssignFrom = "AssignFrom"
	opMoveFrom   = "MoveFrom"
	opResize     = "Resize"
	opAdd        = "Add"
	opSub        = "Sub"
	opDot        = "Dot"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must only pass a non-nil err.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("Vector.%s: %w", op, err)
}

// indexErrorf wraps ErrOutOfRange with the offending index and current size.
func indexErrorf(op string, index, size int) error {
	return fmt.Errorf("Vector.%s(%d) with size %d: %w", op, index, size, ErrOutOfRange)
}
