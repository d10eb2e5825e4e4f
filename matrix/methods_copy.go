// SPDX-License-Identifier: MIT
// Package matrix: ownership operations (clone, assign, move, resize).
//
// Notes:
//   - Every operation builds the new row set first and swaps it in last, so
//     a failure never leaves the receiver half-updated.
//   - Row copies always go through vector.Clone; rows are never shared.

package matrix

import "github.com/Svoloch2940194/mp2-lab2-matrix/vector"

// cloneRows returns deep copies of every row of m.
func (m *Matrix[T]) cloneRows() []*vector.Vector[T] {
	out := make([]*vector.Vector[T], m.Size())
	for i := range out {
		out[i] = m.rows[i].Clone()
	}

	return out
}

// Clone returns a deep copy of m; every row has its own storage.
// Complexity: O(n²) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.cloneRows()}
}

// AssignFrom replaces m's contents with a deep copy of src (copy-then-swap).
// Assigning a matrix to itself is a no-op. After success m.Equal(src) holds
// and no row storage is shared.
//
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func (m *Matrix[T]) AssignFrom(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(opAssignFrom, ErrNilMatrix)
	}
	// Self-assignment: identical instance, nothing to do
	if m == src {
		return nil
	}
	m.rows = src.cloneRows()

	return nil
}

// MoveFrom transfers src's rows to m without copying; src becomes an empty
// 0×0 matrix. Moving a matrix into itself is a no-op.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if src == nil {
		return matrixErrorf(opMoveFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.rows, src.rows = src.rows, nil

	return nil
}

// Resize changes m to n×n, keeping the top-left min(Size(), n) square block.
// New cells are zero. m is untouched on error.
//
// Errors: ErrInvalidSize if n < 0 or n > MaxMatrixSize.
// Complexity: O(n²).
func (m *Matrix[T]) Resize(n int) error {
	if err := validateSize(n); err != nil {
		return matrixErrorf(opResize, err)
	}
	next := make([]*vector.Vector[T], n)
	for i := range next {
		var r *vector.Vector[T]
		if i < len(m.rows) {
			r = m.rows[i].Clone()
		} else {
			r = &vector.Vector[T]{}
		}
		if err := r.Resize(n); err != nil {
			return matrixErrorf(opResize, err)
		}
		next[i] = r
	}
	m.rows = next

	return nil
}
