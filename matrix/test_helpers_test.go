// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/Svoloch2940194/mp2-lab2-matrix/matrix"
	"github.com/Svoloch2940194/mp2-lab2-matrix/vector"
	"github.com/stretchr/testify/require"
)

// mustMatrix allocates an n×n zero matrix or fails the test.
func mustMatrix[T vector.Number](t testing.TB, n int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](n)
	require.NoError(t, err)

	return m
}

// mustSet writes v at (i, j) or fails the test.
func mustSet[T vector.Number](t testing.TB, m *matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// mustAt reads (i, j) or fails the test.
func mustAt[T vector.Number](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// scenarioPair builds the two 2×2 operands used by the Add/Sub scenarios:
// m has the diagonal {66, 77}, m1 the anti-diagonal {66, 77}.
func scenarioPair(t testing.TB) (*matrix.Matrix[int], *matrix.Matrix[int]) {
	t.Helper()
	m := mustMatrix[int](t, 2)
	m1 := mustMatrix[int](t, 2)
	mustSet(t, m, 0, 0, 66)
	mustSet(t, m, 1, 1, 77)
	mustSet(t, m1, 0, 1, 66)
	mustSet(t, m1, 1, 0, 77)

	return m, m1
}
