package nfa

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// StateView Read-only access to a set of states. Views returned by an Automaton share storage
// with it and must not be type-asserted back to *Set and modified.
type StateView interface {
	Contains(state int) bool
	Size() int
	All() iter.Seq[int]
	Sorted() []int
}

var _ StateView = &Set[int]{}

// Set An unordered collection of comparable items. Sorted and String are ascending so that
// dumps and tests are stable.
type Set[T cmp.Ordered] struct {
	inner map[T]struct{}
}

func NewSet[T cmp.Ordered](items ...T) *Set[T] {
	s := &Set[T]{
		inner: make(map[T]struct{}, len(items)),
	}
	for _, item := range items {
		s.inner[item] = struct{}{}
	}
	return s
}

// Add Inserts item, adding an item twice is a no-op.
func (s *Set[T]) Add(item T) *Set[T] {
	s.inner[item] = struct{}{}
	return s
}

func (s *Set[T]) Contains(item T) bool {
	_, ok := s.inner[item]
	return ok
}

func (s *Set[T]) Size() int {
	return len(s.inner)
}

// AddAll Adds every item of other to s.
func (s *Set[T]) AddAll(other *Set[T]) *Set[T] {
	for item := range other.inner {
		s.inner[item] = struct{}{}
	}
	return s
}

// Clone Returns an independent copy.
func (s *Set[T]) Clone() *Set[T] {
	c := &Set[T]{
		inner: make(map[T]struct{}, len(s.inner)),
	}
	for item := range s.inner {
		c.inner[item] = struct{}{}
	}
	return c
}

// SetUnion Returns a new set holding the items of a and b.
func SetUnion[T cmp.Ordered](a, b *Set[T]) *Set[T] {
	return a.Clone().AddAll(b)
}

// SetIntersection Returns a new set holding the items present in both a and b.
func SetIntersection[T cmp.Ordered](a, b *Set[T]) *Set[T] {
	small, large := a, b
	if small.Size() > large.Size() {
		small, large = large, small
	}
	res := NewSet[T]()
	for item := range small.inner {
		if large.Contains(item) {
			res.inner[item] = struct{}{}
		}
	}
	return res
}

// Intersects Reports whether s and other share at least one item.
func (s *Set[T]) Intersects(other *Set[T]) bool {
	small, large := s, other
	if small.Size() > large.Size() {
		small, large = large, small
	}
	for item := range small.inner {
		if large.Contains(item) {
			return true
		}
	}
	return false
}

func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Size() != other.Size() {
		return false
	}
	for item := range s.inner {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Min Returns the smallest item, ok is false on an empty set.
func (s *Set[T]) Min() (minValue T, ok bool) {
	for item := range s.inner {
		if !ok || item < minValue {
			minValue = item
			ok = true
		}
	}
	return minValue, ok
}

// Max Returns the largest item, ok is false on an empty set.
func (s *Set[T]) Max() (maxValue T, ok bool) {
	for item := range s.inner {
		if !ok || item > maxValue {
			maxValue = item
			ok = true
		}
	}
	return maxValue, ok
}

// Sorted Returns the items in ascending order.
func (s *Set[T]) Sorted() []T {
	keys := make([]T, 0, len(s.inner))
	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All Iterates the items in no particular order. Each call starts a fresh iteration; use Sorted
// when the order matters.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.inner {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *Set[T]) String() string {
	parts := make([]string, 0, len(s.inner))
	for _, item := range s.Sorted() {
		parts = append(parts, fmt.Sprint(item))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
