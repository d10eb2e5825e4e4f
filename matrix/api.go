// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
// Thin entry points; each delegates to the canonical method.

package matrix

import "github.com/Svoloch2940194/mp2-lab2-matrix/vector"

// Sum is an alias for a.Add(b).
func Sum[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Add(b) }

// Diff is an alias for a.Sub(b).
func Diff[T vector.Number](a, b *Matrix[T]) (*Matrix[T], error) { return a.Sub(b) }

// Equal reports whether a and b are structurally equal.
func Equal[T vector.Number](a, b *Matrix[T]) bool { return a.Equal(b) }

// CloneMatrix returns a deep copy of m.
func CloneMatrix[T vector.Number](m *Matrix[T]) *Matrix[T] { return m.Clone() }
