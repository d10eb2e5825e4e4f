package matrix_test

import (
	"errors"
	"fmt"

	"github.com/Svoloch2940194/mp2-lab2-matrix/matrix"
)

// ExampleMatrix_Add adds a diagonal and an anti-diagonal 2×2 matrix.
func ExampleMatrix_Add() {
	m, _ := matrix.New[int](2)
	_ = m.Set(0, 0, 66)
	_ = m.Set(1, 1, 77)

	m1, _ := matrix.New[int](2)
	_ = m1.Set(0, 1, 66)
	_ = m1.Set(1, 0, 77)

	sum, _ := m.Add(m1)
	fmt.Print(sum)

	_, err := m.Add(matrix.NewDefault[int]())
	fmt.Println(errors.Is(err, matrix.ErrSizeMismatch))
	// Output:
	// [66, 66]
	// [77, 77]
	// true
}

// ExampleMatrix_AssignFrom shows deep assignment and independent storage.
func ExampleMatrix_AssignFrom() {
	m, _ := matrix.New[int](3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = m.Set(i, j, i*j)
		}
	}

	m1, _ := matrix.New[int](3)
	_ = m1.AssignFrom(m)
	fmt.Println(m.Equal(m1))

	_ = m.Set(2, 2, 0)
	fmt.Println(m.Equal(m1))
	// Output:
	// true
	// false
}
