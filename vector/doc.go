// Package vector provides Vector, an owning, bounds-checked, resizable
// one-dimensional sequence of numbers with value semantics.
//
// 🚀 What is a Vector?
//
//	A Vector[T] owns exactly Size() elements of T. Copies are always deep:
//	  • Clone returns an instance with its own storage
//	  • AssignFrom replaces the receiver's contents with a copy of the source
//	  • MoveFrom transfers storage and leaves the source empty
//
// ✨ Key features:
//   - strict size validation: 0 ≤ size ≤ MaxVectorSize on every constructor
//   - signed indices: negative indices are rejected, never wrapped
//   - structural equality (sizes, then element by element)
//   - element-wise Add/Sub, scalar Scale and Dot product
//
// ⚙️ Usage:
//
//	import "github.com/Svoloch2940194/mp2-lab2-matrix/vector"
//
//	v, err := vector.New[int](5)
//	if err != nil {
//	  // handle ErrInvalidSize
//	}
//	_ = v.Set(0, 7)
//	w := v.Clone()       // independent storage
//	s, err := v.Add(w)   // ErrSizeMismatch if sizes differ
//	d, err := v.Dot(w)   // Σ v[i]*w[i]
//
// Errors:
//
//	ErrInvalidSize: constructor or Resize with size < 0 or > MaxVectorSize
//	ErrOutOfRange: At/Set/Ref with index < 0 or ≥ Size()
//	ErrSizeMismatch: Add/Sub/Dot with operands of different sizes
//	ErrNilVector: nil operand passed where a vector is required
//
// Every failing operation leaves its receiver untouched: validation always
// precedes mutation. A Vector is not safe for concurrent mutation; callers
// serialize access to shared instances.
package vector
