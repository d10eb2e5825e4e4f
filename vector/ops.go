// SPDX-License-Identifier: MIT
// Package vector: equality and arithmetic.
//
// Purpose:
//   - Structural equality (size, then element by element).
//   - Element-wise Add/Sub, scalar Scale, Dot product.
//
// Determinism:
//   - Fixed 0..n-1 loop order; every result is a fresh allocation and the
//     operands are never mutated.

package vector

// Equal reports whether v and o have the same size and equal elements.
// A vector always equals itself; vectors of different sizes are simply not
// equal. A nil vector is equal only to nil.
// Complexity: O(n).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool {
	return !v.Equal(o)
}

// Scale returns a new vector with every element multiplied by k.
// Complexity: O(n).
func (v *Vector[T]) Scale(k T) *Vector[T] {
	out := v.Clone()
	for i := range out.data {
		out.data[i] *= k
	}

	return out
}

// validateSameSize is the shared guard for binary operations.
func validateSameSize[T Number](op string, a, b *Vector[T]) error {
	if a == nil || b == nil {
		return vectorErrorf(op, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return vectorErrorf(op, ErrSizeMismatch)
	}

	return nil
}

// elementwise computes out[i] = f(a[i], b[i]) into a fresh vector.
// Validation happens before allocation so nothing partial escapes.
func elementwise[T Number](op string, a, b *Vector[T], f func(x, y T) T) (*Vector[T], error) {
	if err := validateSameSize(op, a, b); err != nil {
		return nil, err
	}
	out := &Vector[T]{data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}

	return out, nil
}

// Add returns the element-wise sum v + o.
// Errors: ErrSizeMismatch if sizes differ, ErrNilVector if o is nil.
// Complexity: O(n).
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	return elementwise(opAdd, v, o, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference v − o.
// Errors: ErrSizeMismatch if sizes differ, ErrNilVector if o is nil.
// Complexity: O(n).
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	return elementwise(opSub, v, o, func(x, y T) T { return x - y })
}

// Dot returns Σ v[i]*o[i]. The dot product of two empty vectors is zero.
// Errors: ErrSizeMismatch if sizes differ, ErrNilVector if o is nil.
// Complexity: O(n).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var sum T
	if err := validateSameSize(opDot, v, o); err != nil {
		return sum, err
	}
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}
