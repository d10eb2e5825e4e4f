// SPDX-License-Identifier: MIT
// Package vector: public API facades.
// Each facade delegates to the canonical method; no logic lives here.

package vector

// Sum is an alias for a.Add(b).
func Sum[T Number](a, b *Vector[T]) (*Vector[T], error) { return a.Add(b) }

// Diff is an alias for a.Sub(b).
func Diff[T Number](a, b *Vector[T]) (*Vector[T], error) { return a.Sub(b) }

// DotProduct is an alias for a.Dot(b).
func DotProduct[T Number](a, b *Vector[T]) (T, error) { return a.Dot(b) }

// Equal reports whether a and b are structurally equal.
func Equal[T Number](a, b *Vector[T]) bool { return a.Equal(b) }
