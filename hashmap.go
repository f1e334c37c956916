package collections

const (
	// DefaultMapCapacity is the bucket count used by NewHashMap.
	DefaultMapCapacity = 100
	// MapGrowthFactor is the multiplier applied to the bucket count
	// when the map grows. The bucket count never shrinks.
	MapGrowthFactor = 2
)

// HashFunc computes the bucket hash for a key. It must be
// deterministic and must return a non-negative value; the map indexes
// buckets with hash % capacity and does not guard against negative
// results.
type HashFunc[K any] func(K) int

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K any] func(a, b K) bool

type entry[K, V any] struct {
	key K
	val V
}

// HashMap is a generic hash map using separate chaining. Buckets are
// singly linked lists of key/value entries, and the caller supplies
// the hashing and key-equality strategies at construction. The
// strategies are fixed for the life of the map and must be mutually
// consistent: keys the equality strategy considers equal must hash to
// the same value. Neither contract is verified internally.
//
// Iteration order is not guaranteed, and the map is not safe for
// concurrent use.
type HashMap[K, V any] struct {
	buckets  []List[entry[K, V]]
	size     int
	capacity int
	hash     HashFunc[K]
	eq       EqualFunc[K]
}

// NewHashMap creates a map with the given strategies and the default
// bucket count. The bucket count grows as needed but never shrinks.
func NewHashMap[K, V any](hash HashFunc[K], eq EqualFunc[K]) Option[*HashMap[K, V]] {
	return NewHashMapCap[K, V](hash, eq, DefaultMapCapacity)
}

// NewHashMapCap creates a map with the given strategies and initial
// bucket count. A capacity below one is rejected with ErrBadArgument
// and no map is returned.
func NewHashMapCap[K, V any](hash HashFunc[K], eq EqualFunc[K], capacity int) Option[*HashMap[K, V]] {
	if capacity < 1 {
		return NoneErr[*HashMap[K, V]](ErrBadArgument)
	}

	m := &HashMap[K, V]{
		buckets:  make([]List[entry[K, V]], capacity),
		capacity: capacity,
		hash:     hash,
		eq:       eq,
	}
	return Some(m)
}

// Len returns the number of stored entries.
func (m *HashMap[K, V]) Len() int { return m.size }

// Cap returns the current bucket count.
func (m *HashMap[K, V]) Cap() int { return m.capacity }

// IsEmpty reports whether the map has no entries.
func (m *HashMap[K, V]) IsEmpty() bool { return m.size == 0 }

// Get returns the value mapped to key, or an absent Option if the key
// is not in the map. A miss carries no error code.
func (m *HashMap[K, V]) Get(key K) Option[V] {
	pos := m.hash(key) % m.capacity

	curr := m.buckets[pos].Head()
	for curr != nil && !m.eq(curr.data.key, key) {
		curr = curr.next
	}

	if curr != nil {
		return Some(curr.data.val)
	}
	return None[V]()
}

// Put stores a key/value pair. If an entry with the key already
// exists, its value is overwritten in place and the map does not grow.
// Otherwise the entry is appended to its bucket, and once the entry
// count first exceeds the bucket count the map doubles its buckets and
// rehashes every entry. A value stored by the triggering Put survives
// even if growing fails; the failure code is still returned.
func (m *HashMap[K, V]) Put(key K, val V) StatusCode {
	pos := m.hash(key) % m.capacity

	bucket := &m.buckets[pos]
	// Best case (and most likely) scenario: the bucket is empty and
	// the entry can go straight in.
	if bucket.Len() == 0 {
		if res := bucket.PushBack(entry[K, V]{key: key, val: val}); !res.OK() {
			return res
		}
		m.size++

		if m.size == m.capacity+1 {
			return m.resize()
		}
		return StatusOK
	}

	for curr := bucket.Head(); curr != nil; curr = curr.next {
		if m.eq(curr.data.key, key) {
			curr.data.val = val
			return StatusOK
		}
	}

	if res := bucket.PushBack(entry[K, V]{key: key, val: val}); !res.OK() {
		return res
	}
	m.size++

	if m.size == m.capacity+1 {
		return m.resize()
	}
	return StatusOK
}

// Remove deletes the entry with the given key, returning its value,
// or an absent Option if no such entry exists. The bucket count is
// unchanged.
func (m *HashMap[K, V]) Remove(key K) Option[V] {
	pos := m.hash(key) % m.capacity

	var prev *Node[entry[K, V]]
	curr := m.buckets[pos].Head()
	for curr != nil && !m.eq(curr.data.key, key) {
		prev = curr
		curr = curr.next
	}

	if curr == nil {
		return None[V]()
	}

	val := curr.data.val
	m.buckets[pos].Remove(curr, prev)
	m.size--
	return Some(val)
}

// ForEach applies fn to every entry. Order is unspecified.
func (m *HashMap[K, V]) ForEach(fn func(key K, val V)) {
	for i := range m.buckets {
		for curr := m.buckets[i].Head(); curr != nil; curr = curr.next {
			fn(curr.data.key, curr.data.val)
		}
	}
}

// Free releases every bucket and the bucket array itself. The map must
// not be used afterwards; that is a caller obligation, not a runtime
// check.
func (m *HashMap[K, V]) Free() {
	for i := range m.buckets {
		m.buckets[i].Clear()
	}
	m.buckets = nil
	m.size = 0
	m.capacity = 0
}

// resize doubles the bucket array and moves every entry into its
// recomputed bucket. A fresh array is allocated rather than extending
// the old one: every entry has to move anyway, and draining the old
// buckets front-first keeps each move O(1).
func (m *HashMap[K, V]) resize() StatusCode {
	newCapacity := MapGrowthFactor * m.capacity
	newBuckets := make([]List[entry[K, V]], newCapacity)

	for i := range m.buckets {
		for {
			e, ok := m.buckets[i].PopFront().Get()
			if !ok {
				break
			}
			newPos := m.hash(e.key) % newCapacity
			newBuckets[newPos].PushFront(e)
		}
	}

	m.buckets = newBuckets
	m.capacity = newCapacity
	return StatusOK
}
