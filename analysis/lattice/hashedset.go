package lattice

import (
	"fmt"
	"sort"
	"strings"
)

// HashedSet is the reference powerset abstract value over a hashable element
// type: a finite set of elements, plus a saturation marker denoting the full
// universe. The bottom element of the powerset domain is managed by the
// scaffolding; an empty HashedSet is an ordinary (and common) value.
type HashedSet[T comparable] struct {
	set       map[T]bool
	saturated bool
}

// NewHashedSet creates a finite set holding the given elements.
func NewHashedSet[T comparable](xs ...T) *HashedSet[T] {
	s := &HashedSet[T]{set: make(map[T]bool, len(xs))}
	for _, x := range xs {
		s.set[x] = true
	}
	return s
}

// SaturatedHashedSet creates the set denoting the whole universe.
func SaturatedHashedSet[T comparable]() *HashedSet[T] {
	return &HashedSet[T]{set: make(map[T]bool), saturated: true}
}

func (s *HashedSet[T]) Clear() {
	s.set = make(map[T]bool)
	s.saturated = false
}

func (s *HashedSet[T]) Kind() Kind {
	if s.saturated {
		return Top
	}
	return Value
}

// Add inserts an element. Undefined (no-op) on a saturated set.
func (s *HashedSet[T]) Add(x T) {
	if s.saturated {
		return
	}
	s.set[x] = true
}

// Remove deletes an element. Undefined (no-op) on a saturated set.
func (s *HashedSet[T]) Remove(x T) {
	if s.saturated {
		return
	}
	delete(s.set, x)
}

func (s *HashedSet[T]) Contains(x T) bool {
	if s.saturated {
		return true
	}
	return s.set[x]
}

func (s *HashedSet[T]) Size() int {
	if s.saturated {
		panic(errUnsupportedOperation)
	}
	return len(s.set)
}

// Elements returns the members of a finite set in unspecified order.
func (s *HashedSet[T]) Elements() []T {
	if s.saturated {
		panic(errUnsupportedOperation)
	}
	res := make([]T, 0, len(s.set))
	for x := range s.set {
		res = append(res, x)
	}
	return res
}

// Leq is set inclusion.
func (s *HashedSet[T]) Leq(other *HashedSet[T]) bool {
	if other.saturated {
		return true
	}
	if s.saturated {
		return false
	}
	for x := range s.set {
		if !other.set[x] {
			return false
		}
	}
	return true
}

func (s *HashedSet[T]) Eq(other *HashedSet[T]) bool {
	if s.saturated || other.saturated {
		return s.saturated == other.saturated
	}
	if len(s.set) != len(other.set) {
		return false
	}
	for x := range s.set {
		if !other.set[x] {
			return false
		}
	}
	return true
}

// JoinWith is set union.
func (s *HashedSet[T]) JoinWith(other *HashedSet[T]) Kind {
	if s.saturated || other.saturated {
		s.saturated = true
		return Top
	}
	for x := range other.set {
		s.set[x] = true
	}
	return Value
}

// WidenWith coincides with JoinWith: a finite powerset has no infinite
// ascending chains.
func (s *HashedSet[T]) WidenWith(other *HashedSet[T]) Kind {
	return s.JoinWith(other)
}

// MeetWith is set intersection.
func (s *HashedSet[T]) MeetWith(other *HashedSet[T]) Kind {
	if other.saturated {
		return s.Kind()
	}
	if s.saturated {
		s.saturated = false
		s.set = make(map[T]bool, len(other.set))
		for x := range other.set {
			s.set[x] = true
		}
		return Value
	}
	for x := range s.set {
		if !other.set[x] {
			delete(s.set, x)
		}
	}
	return Value
}

// NarrowWith coincides with MeetWith.
func (s *HashedSet[T]) NarrowWith(other *HashedSet[T]) Kind {
	return s.MeetWith(other)
}

func (s *HashedSet[T]) Copy() *HashedSet[T] {
	res := &HashedSet[T]{
		set:       make(map[T]bool, len(s.set)),
		saturated: s.saturated,
	}
	for x := range s.set {
		res.set[x] = true
	}
	return res
}

func (s *HashedSet[T]) String() string {
	if s.saturated {
		return colorize.Element("⊤")
	}
	if len(s.set) == 0 {
		return colorize.Element("∅")
	}
	strs := make([]string, 0, len(s.set))
	for x := range s.set {
		strs = append(strs, fmt.Sprintf("%v", x))
	}
	sort.Strings(strs)
	return "{ " + strings.Join(strs, ", ") + " }"
}

var _ AbstractValue[*HashedSet[int]] = (*HashedSet[int])(nil)
