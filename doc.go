// Package mp2lab2matrix is a small, bounds-checked numeric container library:
// a dynamic vector and a square matrix built from it, both with strict value
// semantics.
//
// 🚀 What is inside?
//
//	vector/  Vector[T], owning, resizable, bounds-checked sequence with
//	         Add/Sub, Scale and Dot
//	matrix/  Matrix[T], owning square matrix made of vector rows, with
//	         two-level indexing, Add/Sub and structural equality
//
// ✨ Guarantees
//
//   - Every constructor validates its size against a package limit
//     (vector.MaxVectorSize, matrix.MaxMatrixSize).
//   - Negative or too-large indices are rejected with ErrOutOfRange.
//   - Copies (Clone, AssignFrom) never share storage; self-assignment is safe.
//   - Binary operations reject operands of different sizes with
//     ErrSizeMismatch before allocating a result.
//
// Quick ASCII example:
//
//	[66,  0]   [ 0, 66]   [66, 66]
//	[ 0, 77] + [77,  0] = [77, 77]
//
//	go get github.com/Svoloch2940194/mp2-lab2-matrix
package mp2lab2matrix
