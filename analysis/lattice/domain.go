package lattice

// AbstractDomain is the public contract of a full lattice element: Bottom,
// Top, or a regular value. Like AbstractValue it is self-typed — a domain D
// satisfies AbstractDomain[D] — which keeps every operation monomorphic over
// the concrete domain and banishes casts from the hot loop.
//
// Semantic requirements:
//   - a.Eq(b) iff a.Leq(b) and b.Leq(a);
//   - JoinWith is associative, commutative and idempotent; MeetWith dually;
//   - WidenWith computes an upper bound of both arguments and stabilizes
//     every ascending chain in finitely many steps;
//   - elements are mutable; side-effecting operations must only be invoked
//     on thread-local elements (a documented precondition, not enforced).
type AbstractDomain[D any] interface {
	IsBottom() bool
	IsTop() bool

	Leq(other D) bool
	Eq(other D) bool

	SetToBottom()
	SetToTop()

	JoinWith(other D)
	WidenWith(other D)
	MeetWith(other D)
	NarrowWith(other D)

	// Copy produces an independent element; the fixpoint solver relies on
	// this to hand out snapshots of its internal state.
	Copy() D

	String() string
}

// The functional mirrors of the side-effecting lattice operations. They are
// implemented once, as copy-then-mutate, and are never specialized by
// individual domains.

// Join returns a ⊔ b, leaving both operands unchanged.
func Join[D AbstractDomain[D]](a, b D) D {
	res := a.Copy()
	res.JoinWith(b)
	return res
}

// Widening returns a ▽ b, leaving both operands unchanged.
func Widening[D AbstractDomain[D]](a, b D) D {
	res := a.Copy()
	res.WidenWith(b)
	return res
}

// Meet returns a ⊓ b, leaving both operands unchanged.
func Meet[D AbstractDomain[D]](a, b D) D {
	res := a.Copy()
	res.MeetWith(b)
	return res
}

// Narrowing returns the narrowing of a by b, leaving both operands unchanged.
func Narrowing[D AbstractDomain[D]](a, b D) D {
	res := a.Copy()
	res.NarrowWith(b)
	return res
}
