// Package matrix provides Matrix, an owning, bounds-checked square matrix
// with value semantics, composed of vector.Vector rows.
//
// The matrix package provides:
//
//   - New / NewDefault / NewFromRows constructors with strict size
//     validation (0 ≤ size ≤ MaxMatrixSize); there is no rectangular variant.
//   - Two-level indexing: Row(i) returns the owned row, and At/Set/Ref(i, j)
//     validate both dimensions independently.
//   - Deep copy (Clone), deep assignment (AssignFrom, safe under
//     self-assignment), ownership transfer (MoveFrom) and Resize.
//   - Structural equality and element-wise Add/Sub, delegated row by row to
//     the vector package.
//
// Errors are package sentinels matched with errors.Is. Column failures also
// match the corresponding vector sentinel, since the column check is the
// row vector's own.
//
// See the examples in this package for usage patterns.
package matrix
