// SPDX-License-Identifier: MIT
// Package matrix: constructors and two-level bounds-checked access.

package matrix

import (
	"strings"

	"github.com/Svoloch2940194/mp2-lab2-matrix/vector"
)

// newZeroRows allocates n zero rows of length n. n must already be validated.
func newZeroRows[T vector.Number](n int) ([]*vector.Vector[T], error) {
	rows := make([]*vector.Vector[T], n)
	for i := range rows {
		r, err := vector.New[T](n)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	return rows, nil
}

// New creates a size×size matrix of zero values.
// Stage 1 (Validate): 0 ≤ size ≤ MaxMatrixSize.
// Stage 2 (Prepare): allocate size rows, each a vector of length size.
// Complexity: O(size²) time and memory.
func New[T vector.Number](size int) (*Matrix[T], error) {
	if err := validateSize(size); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	rows, err := newZeroRows[T](size)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix[T]{rows: rows}, nil
}

// NewDefault creates a DefaultSize×DefaultSize zero matrix.
func NewDefault[T vector.Number]() *Matrix[T] {
	m, _ := New[T](DefaultSize) // DefaultSize is always valid

	return m
}

// NewFromRows creates a matrix holding a copy of rows.
// rows must be square: every inner slice has length len(rows).
//
// Errors: ErrInvalidSize for a ragged/non-square input or len(rows) > MaxMatrixSize.
// Complexity: O(n²).
func NewFromRows[T vector.Number](rows [][]T) (*Matrix[T], error) {
	if err := validateSquareRows(rows); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	n := len(rows)
	out := make([]*vector.Vector[T], n)
	for i, r := range rows {
		v, err := vector.NewFromSlice(n, r)
		if err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
		out[i] = v
	}

	return &Matrix[T]{rows: out}, nil
}

// Size returns the shared row/column count. A nil matrix has size 0.
// Complexity: O(1).
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Row returns the i-th row. The row is owned by m: writes through it
// (Set, Ref) are writes into m. Callers must not Resize/AssignFrom/MoveFrom
// the returned row, as that would break the square invariant.
//
// Errors: ErrOutOfRange if i < 0 or i ≥ Size().
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if err := validateIndex(i, m.Size()); err != nil {
		return nil, rowErrorf(opRow, i, m.Size(), err)
	}

	return m.rows[i], nil
}

// At returns the element at (i, j).
// Errors: ErrOutOfRange if either index is outside [0, Size()).
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	var zero T
	if err := validateIndex(i, m.Size()); err != nil {
		return zero, rowErrorf(opAt, i, m.Size(), err)
	}
	x, err := m.rows[i].At(j)
	if err != nil {
		return zero, columnErrorf(opAt, i, j, ErrOutOfRange, err)
	}

	return x, nil
}

// Set writes x at (i, j).
// Errors: ErrOutOfRange if either index is outside [0, Size()).
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := validateIndex(i, m.Size()); err != nil {
		return rowErrorf(opSet, i, m.Size(), err)
	}
	if err := m.rows[i].Set(j, x); err != nil {
		return columnErrorf(opSet, i, j, ErrOutOfRange, err)
	}

	return nil
}

// Ref returns a pointer to the element at (i, j), valid until the next
// AssignFrom, MoveFrom or Resize on m.
// Errors: ErrOutOfRange if either index is outside [0, Size()).
func (m *Matrix[T]) Ref(i, j int) (*T, error) {
	if err := validateIndex(i, m.Size()); err != nil {
		return nil, rowErrorf(opRef, i, m.Size(), err)
	}
	p, err := m.rows[i].Ref(j)
	if err != nil {
		return nil, columnErrorf(opRef, i, j, ErrOutOfRange, err)
	}

	return p, nil
}

// String implements fmt.Stringer for easy debugging: one row per line.
// Complexity: O(n²).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.Size(); i++ {
		sb.WriteString(m.rows[i].String()) // row formatting is the vector's
		sb.WriteByte('\n')
	}

	return sb.String()
}
