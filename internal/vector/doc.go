// Package vector provides a generic, contiguous, growable array.
//
// [Vector] owns a single backing buffer and tracks a logical size within
// its capacity:
//
//   - [Vector.PushBack]: amortized O(1) append (capacity doubles on growth)
//   - [Vector.PushFront], [Vector.PopFront], [Vector.RemoveAt]: O(n) shifts
//   - [Vector.At], [Vector.Front], [Vector.Back]: checked access
//   - [Vector.Get], [Vector.Ref], [Vector.Set]: unchecked access
//   - [Vector.Clone], [Vector.Take], [Vector.CopyFrom], [Vector.MoveFrom]:
//     duplicate or transfer ownership of the buffer
//
// # Example
//
//	v := vector.Of(10, 20, 30)
//	_ = v.RemoveAt(1)   // [10 30]
//	v.PushFront(5)      // [5 10 30]
//	x, err := v.At(2)   // 30, nil
//
// # Ownership
//
// No two live vectors share a buffer. [Vector.Take] and [Vector.MoveFrom]
// leave the source empty, indistinguishable from a zero Vector.
//
// # Thread Safety
//
// Vector is NOT thread-safe. Callers must synchronize concurrent access.
package vector
