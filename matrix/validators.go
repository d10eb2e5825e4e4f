// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for size and operand checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package matrix

import "github.com/Svoloch2940194/mp2-lab2-matrix/vector"

// validateSize ensures 0 ≤ n ≤ MaxMatrixSize.
// Complexity: O(1).
func validateSize(n int) error {
	if n < 0 || n > MaxMatrixSize {
		return ErrInvalidSize
	}

	return nil
}

// validateIndex ensures 0 ≤ i < n.
// Complexity: O(1).
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateSquareRows ensures raw rows form an n×n square within limits.
// Complexity: O(n).
func validateSquareRows[T vector.Number](rows [][]T) error {
	if err := validateSize(len(rows)); err != nil {
		return err
	}
	for _, r := range rows {
		if len(r) != len(rows) {
			return ErrInvalidSize
		}
	}

	return nil
}

// validateBinarySameSize is the composite guard for Add/Sub:
// NotNil(a) → NotNil(b) → SameSize.
// Complexity: O(1).
func validateBinarySameSize[T vector.Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if len(a.rows) != len(b.rows) {
		return ErrSizeMismatch
	}

	return nil
}
