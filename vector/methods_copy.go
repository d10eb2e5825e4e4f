// SPDX-License-Identifier: MIT
// Package vector: ownership operations (copy, assign, move, resize).
//
// Purpose:
//   - Keep every storage-replacing operation in one place so the single
//     invariant "no two vectors share storage" is easy to audit.
//
// Notes:
//   - AssignFrom is safe under self-assignment (identity check first).
//   - MoveFrom transfers, never shares: the source is left empty.

package vector

// Clone returns a deep copy of v with independent storage.
// Cloning a nil vector yields an empty vector.
// Complexity: O(n) time and memory.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: v.Values()}
}

// AssignFrom replaces the contents of v with a deep copy of src.
// After a successful call v.Equal(src) holds and the two vectors still own
// distinct storage. Assigning a vector to itself is a no-op.
//
// Stage 1 (Validate): src must be non-nil.
// Stage 2 (Execute): reuse v's buffer when the sizes match, otherwise allocate.
// Errors: ErrNilVector.
// Complexity: O(n).
func (v *Vector[T]) AssignFrom(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(opAssignFrom, ErrNilVector)
	}
	// Self-assignment: nothing to copy
	if v == src {
		return nil
	}
	if len(v.data) != len(src.data) {
		v.data = make([]T, len(src.data))
	}
	copy(v.data, src.data)

	return nil
}

// MoveFrom transfers the storage of src to v without copying elements.
// src is left as a valid empty vector. Moving a vector into itself is a no-op.
//
// Errors: ErrNilVector.
// Complexity: O(1).
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	if src == nil {
		return vectorErrorf(opMoveFrom, ErrNilVector)
	}
	if v == src {
		return nil
	}
	v.data, src.data = src.data, nil

	return nil
}

// Resize changes the size of v to n. The first min(Size(), n) elements are
// kept; new elements are zero. v is untouched on error.
//
// Errors: ErrInvalidSize if n < 0 or n > MaxVectorSize.
// Complexity: O(n).
func (v *Vector[T]) Resize(n int) error {
	if !validSize(n) {
		return vectorErrorf(opResize, ErrInvalidSize)
	}
	if n == len(v.data) {
		return nil
	}
	buf := make([]T, n)
	copy(buf, v.data)
	v.data = buf

	return nil
}
