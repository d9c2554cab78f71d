package lattice

import "fmt"

// Scaffold lifts an AbstractValue into a full abstract domain, adding the two
// extremal elements and handling their case analysis once and for all. If the
// value representation can itself denote Top or Bottom, those are coalesced
// with the extremal elements through Normalize. Derived domains embed a
// Scaffold and only supply the Value-kind logic plus any domain-specific
// helpers.
//
// The quadratic Top/Bottom case table thus lives in exactly one place:
//
//	join-like: ⊤ ⊔ x = ⊤, x ⊔ ⊥ = x, ⊥ ⊔ x = x, x ⊔ ⊤ = ⊤
//	meet-like: ⊥ ⊓ x = ⊥, x ⊓ ⊤ = x, ⊤ ⊓ x = x, x ⊓ ⊥ = ⊥
//
// with both Value operands delegated to the underlying value operation.
type Scaffold[V AbstractValue[V]] struct {
	kind  Kind
	value V
}

// NewScaffold wraps a freshly constructed value. The element's kind is
// whatever the value reports, normalized so that an extremal value releases
// its representation.
func NewScaffold[V AbstractValue[V]](value V) Scaffold[V] {
	s := Scaffold[V]{kind: value.Kind(), value: value}
	s.Normalize()
	return s
}

// ExtremalScaffold wraps a value as one of the two extremal elements. The
// value only serves as representation storage and is cleared.
func ExtremalScaffold[V AbstractValue[V]](value V, kind Kind) Scaffold[V] {
	if kind == Value {
		panic("ExtremalScaffold: kind must be Bottom or Top")
	}
	value.Clear()
	return Scaffold[V]{kind: kind, value: value}
}

// Kind reports which of the three kinds is active.
func (s *Scaffold[V]) Kind() Kind {
	return s.kind
}

func (s *Scaffold[V]) IsBottom() bool {
	return s.kind == Bottom
}

func (s *Scaffold[V]) IsTop() bool {
	return s.kind == Top
}

func (s *Scaffold[V]) IsValue() bool {
	return s.kind == Value
}

// Value exposes the underlying abstract value to derived domains. Mutating
// it directly must be followed by Normalize.
func (s *Scaffold[V]) Value() V {
	return s.value
}

// SetToValue overwrites the element with the given value, adopting its kind.
func (s *Scaffold[V]) SetToValue(value V) {
	s.value = value
	s.Normalize()
}

// Normalize re-reads the kind from the value and, when extremal, releases
// the value's representation. Derived domains call this after mutating the
// underlying value directly.
func (s *Scaffold[V]) Normalize() {
	s.kind = s.value.Kind()
	if s.kind == Bottom || s.kind == Top {
		s.value.Clear()
	}
}

func (s *Scaffold[V]) SetToBottom() {
	s.kind = Bottom
	s.value.Clear()
}

func (s *Scaffold[V]) SetToTop() {
	s.kind = Top
	s.value.Clear()
}

// Leq implements the partial order: ⊥ ⊑ x ⊑ ⊤, with Value-kind elements
// compared through the underlying value.
func (s *Scaffold[V]) Leq(other *Scaffold[V]) bool {
	switch {
	case s.IsBottom():
		return true
	case other.IsBottom():
		return false
	case other.IsTop():
		return true
	case s.IsTop():
		return false
	}
	return s.value.Leq(other.value)
}

// Eq holds iff the kinds match and, when both elements are Value-kind, the
// values are equal. Extremal elements are never compared through the value.
func (s *Scaffold[V]) Eq(other *Scaffold[V]) bool {
	if s.kind != other.kind {
		return false
	}
	if s.kind != Value {
		return true
	}
	return s.value.Eq(other.value)
}

func (s *Scaffold[V]) JoinWith(other *Scaffold[V]) {
	s.joinLikeWith(other, func() Kind {
		return s.value.JoinWith(other.value)
	})
}

func (s *Scaffold[V]) WidenWith(other *Scaffold[V]) {
	s.joinLikeWith(other, func() Kind {
		return s.value.WidenWith(other.value)
	})
}

func (s *Scaffold[V]) MeetWith(other *Scaffold[V]) {
	s.meetLikeWith(other, func() Kind {
		return s.value.MeetWith(other.value)
	})
}

func (s *Scaffold[V]) NarrowWith(other *Scaffold[V]) {
	s.meetLikeWith(other, func() Kind {
		return s.value.NarrowWith(other.value)
	})
}

func (s *Scaffold[V]) joinLikeWith(other *Scaffold[V], operation func() Kind) {
	switch {
	case s.IsTop() || other.IsBottom():
		return
	case other.IsTop():
		s.SetToTop()
	case s.IsBottom():
		s.kind = other.kind
		s.value = other.value.Copy()
	default:
		s.kind = operation()
		if s.kind != Value {
			s.value.Clear()
		}
	}
}

func (s *Scaffold[V]) meetLikeWith(other *Scaffold[V], operation func() Kind) {
	switch {
	case s.IsBottom() || other.IsTop():
		return
	case other.IsBottom():
		s.SetToBottom()
	case s.IsTop():
		s.kind = other.kind
		s.value = other.value.Copy()
	default:
		s.kind = operation()
		if s.kind != Value {
			s.value.Clear()
		}
	}
}

// Copy produces an independent element with a deep copy of the value.
func (s Scaffold[V]) Copy() Scaffold[V] {
	return Scaffold[V]{kind: s.kind, value: s.value.Copy()}
}

func (s Scaffold[V]) String() string {
	switch s.kind {
	case Bottom:
		return colorize.Element("⊥")
	case Top:
		return colorize.Element("⊤")
	}
	return fmt.Sprint(s.value)
}
