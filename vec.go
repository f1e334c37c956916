package collections

const (
	// DefaultVecCapacity is the capacity used by NewVec.
	DefaultVecCapacity = 100
)

// Vec is a growable array with explicit capacity management. When a
// push would exceed the capacity, the backing array is reallocated
// with 50% more space. The capacity only shrinks when Shrink is
// called; keeping memory use in check is the caller's job.
type Vec[T any] struct {
	buf      []T
	capacity int
	length   int
}

// NewVec creates a vector with the default capacity.
func NewVec[T any]() Option[Vec[T]] {
	return NewVecCap[T](DefaultVecCapacity)
}

// NewVecCap creates a vector with the given capacity. A capacity below
// one is rejected with ErrBadArgument.
func NewVecCap[T any](capacity int) Option[Vec[T]] {
	if capacity < 1 {
		return NoneErr[Vec[T]](ErrBadArgument)
	}
	return Some(Vec[T]{buf: make([]T, capacity), capacity: capacity})
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.length }

// Cap returns the current capacity.
func (v *Vec[T]) Cap() int { return v.capacity }

// IsEmpty reports whether the vector has no elements.
func (v *Vec[T]) IsEmpty() bool { return v.length == 0 }

// Push appends item at the end, growing the backing array by 50% if
// it is full.
func (v *Vec[T]) Push(item T) StatusCode {
	if v.length == v.capacity {
		newCapacity := v.capacity * 3 / 2
		if newCapacity == v.capacity {
			// Integer growth stalls below capacity 2 (and after a
			// Shrink of an empty vector).
			newCapacity++
		}
		newBuf := make([]T, newCapacity)
		copy(newBuf, v.buf)
		v.buf = newBuf
		v.capacity = newCapacity
	}

	v.buf[v.length] = item
	v.length++
	return StatusOK
}

// Pop removes and returns the last element, or an absent Option if the
// vector is empty. The capacity is unchanged.
func (v *Vec[T]) Pop() Option[T] {
	if v.length == 0 {
		return None[T]()
	}

	v.length--
	item := v.buf[v.length]
	var z T
	v.buf[v.length] = z
	return Some(item)
}

// Get returns the element at index i. Returns false if out of range.
func (v *Vec[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, false
	}
	return v.buf[i], true
}

// Set writes the element at index i. Returns false if out of range.
func (v *Vec[T]) Set(i int, item T) bool {
	if i < 0 || i >= v.length {
		return false
	}
	v.buf[i] = item
	return true
}

// At panics if out of range. Prefer Get for safe reads.
func (v *Vec[T]) At(i int) T {
	if i < 0 || i >= v.length {
		panic("collections: Vec index out of range")
	}
	return v.buf[i]
}

// Shrink reallocates the backing array so the capacity matches the
// current length.
func (v *Vec[T]) Shrink() StatusCode {
	newBuf := make([]T, v.length)
	copy(newBuf, v.buf[:v.length])
	v.buf = newBuf
	v.capacity = v.length
	return StatusOK
}

// ForEach applies fn to each element in index order.
func (v *Vec[T]) ForEach(fn func(i int, item T)) {
	for i := 0; i < v.length; i++ {
		fn(i, v.buf[i])
	}
}

// Free releases the backing array. The vector must not be used
// afterwards.
func (v *Vec[T]) Free() {
	v.buf = nil
	v.capacity = 0
	v.length = 0
}
