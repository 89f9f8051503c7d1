package collections

import "fmt"

// OrderedSet is a generic set that remembers insertion order.
// Expansion output depends on the order selectors were first seen,
// so iteration over an OrderedSet is always deterministic.
type OrderedSet[T comparable] struct {
	index   map[T]struct{}
	members []T
}

// NewOrderedSet creates a new OrderedSet with the given initial values
func NewOrderedSet[T comparable](vs ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: map[T]struct{}{}}
	s.Add(vs...)
	return s
}

// Add adds one or more values to the set, returning how many were new
func (s *OrderedSet[T]) Add(vs ...T) int {
	added := 0
	for _, v := range vs {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = struct{}{}
		s.members = append(s.members, v)
		added++
	}
	return added
}

// Has checks if the set contains the given value
func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of members
func (s *OrderedSet[T]) Len() int {
	return len(s.members)
}

// Members returns all values in insertion order.
// The returned slice is a copy.
func (s *OrderedSet[T]) Members() []T {
	r := make([]T, len(s.members))
	copy(r, s.members)
	return r
}

// String returns a string representation of the set
func (s *OrderedSet[T]) String() string {
	return fmt.Sprintf("%v", s.members)
}
