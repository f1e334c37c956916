package collections

import (
	"hash/fnv"

	"golang.org/x/exp/constraints"
)

// IdentityHash returns a hash strategy for integer keys that uses the
// key itself as the hash. Callers must only feed it non-negative keys;
// like every HashFunc, negative results are not guarded.
func IdentityHash[K constraints.Integer]() HashFunc[K] {
	return func(k K) int { return int(k) }
}

// StringHash returns an FNV-1a hash strategy for string keys. The
// result is masked to be non-negative.
func StringHash() HashFunc[string] {
	return func(k string) int {
		h := fnv.New32a()
		h.Write([]byte(k))
		return int(h.Sum32() & 0x7fffffff)
	}
}

// Equal returns an equality strategy that compares keys with ==.
func Equal[K comparable]() EqualFunc[K] {
	return func(a, b K) bool { return a == b }
}
