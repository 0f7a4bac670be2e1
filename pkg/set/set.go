package set

import "iter"

func New[T comparable]() *Set[T] {
	return &Set[T]{m: make(map[T]struct{})}
}

// From builds a set holding items.
func From[T comparable](items ...T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(items))}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// FromSeq builds a set holding the elements of seq.
func FromSeq[T comparable](seq iter.Seq[T]) *Set[T] {
	s := New[T]()
	for v := range seq {
		s.Add(v)
	}
	return s
}

type Set[T comparable] struct {
	m map[T]struct{}
}

func (s *Set[T]) Add(v T) {
	s.m[v] = struct{}{}
}

func (s *Set[T]) Has(v T) bool {
	_, ok := s.m[v]
	return ok
}

func (s *Set[T]) Delete(v T) {
	delete(s.m, v)
}

func (s *Set[T]) Len() int {
	return len(s.m)
}

func (s *Set[T]) Values() []T {
	values := make([]T, 0, len(s.m))
	for k := range s.m {
		values = append(values, k)
	}
	return values
}

func (s *Set[T]) Clear() {
	clear(s.m)
}

func (s *Set[T]) Clone() *Set[T] {
	out := &Set[T]{m: make(map[T]struct{}, len(s.m))}
	for k := range s.m {
		out.Add(k)
	}
	return out
}
