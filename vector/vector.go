// SPDX-License-Identifier: MIT
// Package vector: constructors and bounds-checked element access.

package vector

import (
	"fmt"
	"strings"
)

// validSize reports whether n is an acceptable vector size.
func validSize(n int) bool {
	return n >= 0 && n <= MaxVectorSize
}

// New creates a vector of size zero-valued elements.
// Stage 1 (Validate): 0 ≤ size ≤ MaxVectorSize.
// Stage 2 (Prepare): allocate exactly size elements.
// Complexity: O(size) time and memory.
func New[T Number](size int) (*Vector[T], error) {
	// Validate before touching any storage
	if !validSize(size) {
		return nil, vectorErrorf(opNew, ErrInvalidSize)
	}

	return &Vector[T]{data: make([]T, size)}, nil
}

// NewDefault creates a zero-valued vector of DefaultSize elements.
func NewDefault[T Number]() *Vector[T] {
	return &Vector[T]{data: make([]T, DefaultSize)}
}

// NewFromSlice creates a vector holding a copy of the first size elements of data.
// The returned vector never aliases data.
//
// Errors: ErrInvalidSize if size is out of [0, MaxVectorSize] or len(data) < size.
// Complexity: O(size).
func NewFromSlice[T Number](size int, data []T) (*Vector[T], error) {
	if !validSize(size) {
		return nil, vectorErrorf(opFromSlice, ErrInvalidSize)
	}
	// The source buffer must provide every requested element
	if len(data) < size {
		return nil, vectorErrorf(opFromSlice, fmt.Errorf("need %d elements, got %d: %w", size, len(data), ErrInvalidSize))
	}

	buf := make([]T, size)
	copy(buf, data[:size])

	return &Vector[T]{data: buf}, nil
}

// Size returns the number of elements. A nil vector has size 0.
// Complexity: O(1).
func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// checkIndex validates 0 ≤ i < Size() for the given operation tag.
func (v *Vector[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= v.Size() {
		return indexErrorf(op, i, v.Size())
	}

	return nil
}

// At returns the element at index i.
// Errors: ErrOutOfRange if i < 0 or i ≥ Size().
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(opAt, i); err != nil {
		var zero T
		return zero, err
	}

	return v.data[i], nil
}

// Set writes x at index i.
// Errors: ErrOutOfRange if i < 0 or i ≥ Size().
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.checkIndex(opSet, i); err != nil {
		return err
	}
	v.data[i] = x

	return nil
}

// Ref returns a pointer to the element at index i, allowing in-place reads
// and writes. The pointer is valid until the next AssignFrom, MoveFrom or
// Resize on v, any of which may replace the storage.
//
// Errors: ErrOutOfRange if i < 0 or i ≥ Size().
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.checkIndex(opRef, i); err != nil {
		return nil, err
	}

	return &v.data[i], nil
}

// Values returns an independent copy of the elements.
// Complexity: O(n).
func (v *Vector[T]) Values() []T {
	out := make([]T, v.Size())
	if v != nil {
		copy(out, v.data)
	}

	return out
}

// String implements fmt.Stringer, e.g. "[1, 2, 3]".
// Complexity: O(n).
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.Size(); i++ {
		if i > 0 {
			sb.WriteString(", ") // separate values with comma
		}
		fmt.Fprintf(&sb, "%v", v.data[i])
	}
	sb.WriteByte(']')

	return sb.String()
}
