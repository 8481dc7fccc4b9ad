package vector

import (
	"fmt"
	"strings"
)

// Vector is a growable array. The zero value is an empty vector with no
// buffer and is ready to use.
type Vector[T any] struct {
	data []T // len(data) is the capacity; nil when capacity is 0
	size int
}

// New returns an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with room for exactly n elements.
// It panics if n is negative.
func WithCapacity[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vector: negative capacity")
	}
	v := &Vector[T]{}
	if n > 0 {
		v.data = make([]T, n)
	}
	return v
}

// Of returns a vector pre-sized to len(values) holding values in order.
func Of[T any](values ...T) *Vector[T] {
	v := WithCapacity[T](len(values))
	for _, x := range values {
		v.PushBack(x)
	}
	return v
}

// Clone returns a deep copy with the same size and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	if v == nil {
		return c
	}
	c.adoptCopy(v)
	return c
}

// Take transfers the buffer to a new vector and leaves v empty.
func (v *Vector[T]) Take() *Vector[T] {
	if v == nil {
		return &Vector[T]{}
	}
	t := &Vector[T]{data: v.data, size: v.size}
	v.reset()
	return t
}

// CopyFrom replaces the contents of v with a deep copy of other and
// returns v. Copying a vector onto itself is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) *Vector[T] {
	if v == other {
		return v
	}
	v.reset()
	if other != nil {
		v.adoptCopy(other)
	}
	return v
}

// MoveFrom releases the buffer of v, takes ownership of other's buffer and
// leaves other empty. Moving a vector onto itself is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) *Vector[T] {
	if v == other {
		return v
	}
	v.reset()
	if other != nil {
		v.data, v.size = other.data, other.size
		other.reset()
	}
	return v
}

// Release drops the buffer and returns v to the empty state. Releasing an
// empty vector does nothing.
func (v *Vector[T]) Release() {
	v.reset()
}

// Get returns the element at idx without checking it against Size.
func (v *Vector[T]) Get(idx int) T {
	return v.data[idx]
}

// Ref returns a pointer to the element at idx without checking it against
// Size. The pointer is invalidated by the next growth.
func (v *Vector[T]) Ref(idx int) *T {
	return &v.data[idx]
}

// Set stores x at idx without checking it against Size.
func (v *Vector[T]) Set(idx int, x T) {
	v.data[idx] = x
}

// At returns the element at idx, or ErrOutOfRange.
func (v *Vector[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= v.size {
		var zero T
		return zero, v.rangeError("At", idx)
	}
	return v.data[idx], nil
}

// AtRef returns a pointer to the element at idx, or ErrOutOfRange.
func (v *Vector[T]) AtRef(idx int) (*T, error) {
	if idx < 0 || idx >= v.size {
		return nil, v.rangeError("AtRef", idx)
	}
	return &v.data[idx], nil
}

func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, v.emptyError("Front")
	}
	return v.data[0], nil
}

func (v *Vector[T]) FrontRef() (*T, error) {
	if v.size == 0 {
		return nil, v.emptyError("FrontRef")
	}
	return &v.data[0], nil
}

func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, v.emptyError("Back")
	}
	return v.data[v.size-1], nil
}

func (v *Vector[T]) BackRef() (*T, error) {
	if v.size == 0 {
		return nil, v.emptyError("BackRef")
	}
	return &v.data[v.size-1], nil
}

// PushBack appends x, doubling the capacity first when the buffer is full.
func (v *Vector[T]) PushBack(x T) {
	if v.size+1 > len(v.data) {
		v.grow()
	}
	v.data[v.size] = x
	v.size++
}

// PushFront inserts x at index 0. Every element shifts one slot, so this
// is O(n); prefer PushBack on hot paths.
func (v *Vector[T]) PushFront(x T) {
	if v.size+1 > len(v.data) {
		v.grow()
	}
	copy(v.data[1:v.size+1], v.data[:v.size])
	v.data[0] = x
	v.size++
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, v.emptyError("PopBack")
	}
	v.size--
	x := v.data[v.size]
	v.data[v.size] = zero
	return x, nil
}

// PopFront removes and returns the first element. O(n).
func (v *Vector[T]) PopFront() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, v.emptyError("PopFront")
	}
	x := v.data[0]
	copy(v.data[:v.size-1], v.data[1:v.size])
	v.size--
	v.data[v.size] = zero
	return x, nil
}

// RemoveAt deletes the element at idx, shifting later elements forward.
func (v *Vector[T]) RemoveAt(idx int) error {
	if idx < 0 || idx >= v.size {
		return v.rangeError("RemoveAt", idx)
	}
	copy(v.data[idx:v.size-1], v.data[idx+1:v.size])
	v.size--
	var zero T
	v.data[v.size] = zero
	return nil
}

// Clear sets the size to 0 and keeps the buffer for reuse.
func (v *Vector[T]) Clear() {
	clear(v.data[:v.size])
	v.size = 0
}

func (v *Vector[T]) Empty() bool   { return v.size == 0 }
func (v *Vector[T]) Size() int     { return v.size }
func (v *Vector[T]) Capacity() int { return len(v.data) }

// Values returns a new slice holding the live elements in order.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.size)
	copy(out, v.data[:v.size])
	return out
}

func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v.data[i])
	}
	sb.WriteByte(']')
	return sb.String()
}

func (v *Vector[T]) grow() {
	newCap := 1
	if len(v.data) > 0 {
		newCap = len(v.data) * 2
	}
	buf := make([]T, newCap)
	copy(buf, v.data[:v.size])
	v.data = buf
}

func (v *Vector[T]) adoptCopy(other *Vector[T]) {
	if len(other.data) > 0 {
		v.data = make([]T, len(other.data))
		copy(v.data, other.data[:other.size])
	}
	v.size = other.size
}

func (v *Vector[T]) reset() {
	v.data = nil
	v.size = 0
}
