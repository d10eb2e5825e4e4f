// SPDX-License-Identifier: MIT

// Package matrix: size limits and the Matrix type.
package matrix

import "github.com/Svoloch2940194/mp2-lab2-matrix/vector"

// ---------- Limits (single source of truth) ----------

const (
	// MaxMatrixSize is the largest row/column count New and Resize accept.
	// It stays below vector.MaxVectorSize so every row is constructible.
	MaxMatrixSize = 10000

	// DefaultSize is the size used by NewDefault.
	DefaultSize = 10
)

// Matrix is an owning square matrix of T, stored as Size() rows where each
// row is a *vector.Vector[T] of length Size().
// Rows are owned exclusively: no row pointer is ever shared between two
// matrices, including after Clone or AssignFrom.
// The zero value is an empty 0×0 matrix.
type Matrix[T vector.Number] struct {
	rows []*vector.Vector[T] // len(rows) == Size(); rows[i].Size() == Size()
}
