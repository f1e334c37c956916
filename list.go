package collections

// Node is a single link in a List. Nodes are created by the list's
// push operations and stay valid until removed or cleared.
type Node[T any] struct {
	next *Node[T]
	data T
}

// Next returns the following node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Value returns the element held by the node.
func (n *Node[T]) Value() T { return n.data }

// List is a singly linked list usable as a stack or queue. Pushing at
// either end and popping from the front are O(1); popping from the
// back is O(n), so prefer the front when only one end is drained.
// Zero value is ready to use.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// NewList returns an empty list.
func NewList[T any]() List[T] { return List[T]{} }

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// PushBack appends item at the end in O(1).
func (l *List[T]) PushBack(item T) StatusCode {
	node := &Node[T]{data: item}

	if l.head == nil {
		l.head = node
		l.tail = node
		l.size = 1
		return StatusOK
	}

	l.tail.next = node
	l.tail = node
	l.size++
	return StatusOK
}

// PushFront inserts item at the front in O(1).
func (l *List[T]) PushFront(item T) StatusCode {
	node := &Node[T]{next: l.head, data: item}

	if l.head == nil {
		l.head = node
		l.tail = node
		l.size = 1
		return StatusOK
	}

	l.head = node
	l.size++
	return StatusOK
}

// PopFront removes and returns the first element in O(1), or an absent
// Option if the list is empty.
func (l *List[T]) PopFront() Option[T] {
	if l.head == nil {
		return None[T]()
	}

	if l.head == l.tail {
		item := l.head.data
		l.head = nil
		l.tail = nil
		l.size = 0
		return Some(item)
	}

	item := l.head.data
	l.head = l.head.next
	l.size--
	return Some(item)
}

// PopBack removes and returns the last element, or an absent Option if
// the list is empty. Takes O(n) to find the new tail.
func (l *List[T]) PopBack() Option[T] {
	if l.head == nil {
		return None[T]()
	}

	if l.head == l.tail {
		item := l.head.data
		l.head = nil
		l.tail = nil
		l.size = 0
		return Some(item)
	}

	curr := l.head
	for curr.next != l.tail {
		curr = curr.next
	}

	item := l.tail.data
	curr.next = nil
	l.tail = curr
	l.size--
	return Some(item)
}

// Contains scans the list and reports whether any element satisfies
// eq against item. Best case O(1), worst case O(n).
func (l *List[T]) Contains(eq func(a, b T) bool, item T) bool {
	for curr := l.head; curr != nil; curr = curr.next {
		if eq(curr.data, item) {
			return true
		}
	}
	return false
}

// Remove detaches node in O(1) given prev, its true predecessor. The
// head and tail are handled without a predecessor. A prev that is not
// actually the predecessor of node is a no-op; the list is never
// corrupted by a bad pair. Returns whether an element was removed.
func (l *List[T]) Remove(node, prev *Node[T]) bool {
	if l.head == nil || node == nil {
		return false
	}

	if node == l.head {
		l.PopFront()
		return true
	}

	if node == l.tail {
		l.PopBack()
		return true
	}

	if prev != nil && prev.next == node {
		prev.next = node.next
		node.next = nil
		l.size--
		return true
	}

	// Interior node with a missing or wrong predecessor: the caller
	// messed up, do nothing.
	return false
}

// ForEach applies fn to each element from front to back.
func (l *List[T]) ForEach(fn func(T)) {
	for curr := l.head; curr != nil; curr = curr.next {
		fn(curr.data)
	}
}

// Clear drops every node. The list is empty and reusable afterwards.
func (l *List[T]) Clear() {
	// Unlink as we go so abandoned nodes don't chain into live ones.
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = nil
		curr = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}
