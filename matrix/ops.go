// SPDX-License-Identifier: MIT
// Package matrix: structural equality and element-wise Add/Sub.
//
// Both operations are expressed strictly through the vector package: a
// matrix is equal/added/subtracted row by row, so every guarantee of
// vector.Equal, vector.Add and vector.Sub lifts to the matrix level.

package matrix

import (
	"fmt"

	"github.com/Svoloch2940194/mp2-lab2-matrix/vector"
)

// Equal reports whether m and o have the same size and every row is equal
// by vector.Equal. A matrix always equals itself; matrices of different
// sizes are not equal. A nil matrix is equal only to nil.
// Complexity: O(n²).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !vector.Equal(m.rows[i], o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool {
	return !m.Equal(o)
}

// rowwise computes out.rows[i] = f(a.rows[i], b.rows[i]).
// The result is only returned once every row succeeded.
func rowwise[T vector.Number](op string, a, b *Matrix[T], f func(x, y *vector.Vector[T]) (*vector.Vector[T], error)) (*Matrix[T], error) {
	if err := validateBinarySameSize(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	rows := make([]*vector.Vector[T], len(a.rows))
	for i := range rows {
		r, err := f(a.rows[i], b.rows[i])
		if err != nil {
			return nil, fmt.Errorf("Matrix.%s: row %d: %w: %w", op, i, ErrSizeMismatch, err)
		}
		rows[i] = r
	}

	return &Matrix[T]{rows: rows}, nil
}

// Add returns the element-wise sum m + o.
// Errors: ErrSizeMismatch if sizes differ, ErrNilMatrix if o is nil.
// Complexity: O(n²).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return rowwise(opAdd, m, o, vector.Sum[T])
}

// Sub returns the element-wise difference m − o.
// Errors: ErrSizeMismatch if sizes differ, ErrNilMatrix if o is nil.
// Complexity: O(n²).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return rowwise(opSub, m, o, vector.Diff[T])
}
