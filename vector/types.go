// SPDX-License-Identifier: MIT

// Package vector: element constraint and size limits.
package vector

import "golang.org/x/exp/constraints"

// ---------- Limits (single source of truth) ----------

const (
	// MaxVectorSize is the largest size any constructor or Resize accepts.
	MaxVectorSize = 100000000

	// DefaultSize is the size used by NewDefault.
	DefaultSize = 10
)

// Number is the set of element types a Vector can hold. Every member supports
// +, - and * and has a zero value that acts as the additive identity.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is an owning, bounds-checked sequence of T.
// Storage length always equals Size(); two distinct vectors never share
// storage, so copying requires Clone or AssignFrom.
// The zero value is an empty vector ready to use.
type Vector[T Number] struct {
	data []T // owned storage, len(data) == Size()
}
