package lattice

// HashedSetDomain is the powerset abstract domain over a hashable element
// type: the scaffolding over HashedSet, with the set-level helpers forwarded
// through when the element is Value-kind. It is the minimum witness that the
// framework composes, and what analyses like liveness instantiate directly.
type HashedSetDomain[T comparable] struct {
	Scaffold[*HashedSet[T]]
}

// NewHashedSetDomain creates a Value-kind element holding the given finite
// set. With no arguments this is the empty set, the usual element to start a
// fixpoint iteration from.
func NewHashedSetDomain[T comparable](xs ...T) *HashedSetDomain[T] {
	return &HashedSetDomain[T]{NewScaffold[*HashedSet[T]](NewHashedSet(xs...))}
}

// BottomHashedSetDomain creates the ⊥ element.
func BottomHashedSetDomain[T comparable]() *HashedSetDomain[T] {
	return &HashedSetDomain[T]{ExtremalScaffold[*HashedSet[T]](NewHashedSet[T](), Bottom)}
}

// TopHashedSetDomain creates the ⊤ element, denoting the whole universe.
func TopHashedSetDomain[T comparable]() *HashedSetDomain[T] {
	return &HashedSetDomain[T]{ExtremalScaffold[*HashedSet[T]](NewHashedSet[T](), Top)}
}

// Add inserts an element when the domain element holds a finite set. Adding
// to ⊤ is a no-op; adding to ⊥ leaves ⊥ (an unreachable state stays
// unreachable).
func (d *HashedSetDomain[T]) Add(xs ...T) {
	if !d.IsValue() {
		return
	}
	for _, x := range xs {
		d.Value().Add(x)
	}
	d.Normalize()
}

// Remove deletes an element when the domain element holds a finite set.
func (d *HashedSetDomain[T]) Remove(xs ...T) {
	if !d.IsValue() {
		return
	}
	for _, x := range xs {
		d.Value().Remove(x)
	}
	d.Normalize()
}

func (d *HashedSetDomain[T]) Contains(x T) bool {
	switch d.Kind() {
	case Bottom:
		return false
	case Top:
		return true
	}
	return d.Value().Contains(x)
}

// Size returns the cardinality of a finite element, and 0 for ⊥.
func (d *HashedSetDomain[T]) Size() int {
	switch d.Kind() {
	case Bottom:
		return 0
	case Top:
		panic(errUnsupportedOperation)
	}
	return d.Value().Size()
}

// Elements returns the members of a finite element; empty for ⊥.
func (d *HashedSetDomain[T]) Elements() []T {
	switch d.Kind() {
	case Bottom:
		return nil
	case Top:
		panic(errUnsupportedOperation)
	}
	return d.Value().Elements()
}

func (d *HashedSetDomain[T]) Leq(other *HashedSetDomain[T]) bool {
	return d.Scaffold.Leq(&other.Scaffold)
}

func (d *HashedSetDomain[T]) Eq(other *HashedSetDomain[T]) bool {
	return d.Scaffold.Eq(&other.Scaffold)
}

func (d *HashedSetDomain[T]) JoinWith(other *HashedSetDomain[T]) {
	d.Scaffold.JoinWith(&other.Scaffold)
}

func (d *HashedSetDomain[T]) WidenWith(other *HashedSetDomain[T]) {
	d.Scaffold.WidenWith(&other.Scaffold)
}

func (d *HashedSetDomain[T]) MeetWith(other *HashedSetDomain[T]) {
	d.Scaffold.MeetWith(&other.Scaffold)
}

func (d *HashedSetDomain[T]) NarrowWith(other *HashedSetDomain[T]) {
	d.Scaffold.NarrowWith(&other.Scaffold)
}

func (d *HashedSetDomain[T]) Copy() *HashedSetDomain[T] {
	return &HashedSetDomain[T]{d.Scaffold.Copy()}
}

var _ AbstractDomain[*HashedSetDomain[int]] = (*HashedSetDomain[int])(nil)
