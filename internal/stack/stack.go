// Package stack provides the LIFO used to track open containers while
// decoding nested documents without recursion.
package stack

// Stack is a slice-backed LIFO. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// NewWithCapacity reduces allocations when the expected nesting depth is known.
func NewWithCapacity[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		items: make([]T, 0, capacity),
	}
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}

	index := len(s.items) - 1
	item := s.items[index]
	s.items[index] = zero // drop references held by the popped frame
	s.items = s.items[:index]
	return item, true
}

// PeekRef allows modifying the top element in place. The pointer is only
// valid until the next Push or Pop.
func (s *Stack[T]) PeekRef() *T {
	if len(s.items) == 0 {
		return nil
	}

	return &s.items[len(s.items)-1]
}
