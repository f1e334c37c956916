// Package collections provides small generic container primitives:
// a chained hash map with injected hashing/equality strategies, the
// singly linked list backing its buckets, a growable array, and the
// Option/StatusCode protocol they report through.
//
// All containers are single-owner and not safe for concurrent use;
// callers sharing one across goroutines must serialize access
// externally.
package collections

// Option is a value that is either present or absent. An absent Option
// may additionally carry a StatusCode describing a failure; an absent
// Option with StatusOK is a benign miss (for example a key that is not
// in a map), not an error. The two cases are deliberately distinct and
// must not be collapsed by callers.
type Option[T any] struct {
	item    T
	present bool
	code    StatusCode
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{item: v, present: true}
}

// None returns an absent Option with no error code.
func None[T any]() Option[T] {
	return Option[T]{}
}

// NoneErr returns an absent Option carrying a failure code.
func NoneErr[T any](code StatusCode) Option[T] {
	return Option[T]{code: code}
}

// Present reports whether a value is held.
func (o Option[T]) Present() bool { return o.present }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.item, o.present }

// Must returns the value, panicking if absent. Prefer Get for safe reads.
func (o Option[T]) Must() T {
	if !o.present {
		panic("collections: Must on absent Option: " + o.code.String())
	}
	return o.item
}

// OrElse returns the value if present, def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.item
	}
	return def
}

// Err returns the diagnostic code. Meaningful only when absent;
// StatusOK on an absent Option means a benign miss.
func (o Option[T]) Err() StatusCode { return o.code }

// Failed reports whether the Option is absent because of a failure,
// as opposed to an ordinary miss.
func (o Option[T]) Failed() bool { return !o.present && o.code != StatusOK }
