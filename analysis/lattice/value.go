package lattice

// AbstractValue is the contract for the regular elements of an abstract
// domain (a constant, an interval, a points-to set, ...). Operations that may
// collapse to an extremal element report this through their returned Kind;
// the scaffolding coalesces such results into its own Top/Bottom
// representation.
//
// The contract is self-typed: an implementation V satisfies
// AbstractValue[V], so that all operations carry the concrete value type and
// no type assertions appear at call sites.
//
// Elements are mutable and the binary operations have side effects on the
// receiver. Side-effecting operations must only ever be invoked on
// thread-local elements; the fixpoint solver upholds this by handing out
// copies only.
type AbstractValue[V any] interface {
	// Clear releases the resources used to represent the value (hash
	// tables, slices, ...). Callers only invoke Clear when about to
	// overwrite the element's kind.
	Clear()

	// Kind classifies the current element. Even though the Top and Bottom
	// logic is factored out by the scaffolding, a representation may still
	// denote an extremum (for example [-∞, ∞] in the domain of intervals),
	// in which case Kind must report it so Normalize can coalesce.
	Kind() Kind

	// Leq and Eq compare Value-kind elements. Their behavior on elements
	// whose Kind is extremal is unspecified; the scaffolding never invokes
	// them in that situation.
	Leq(other V) bool
	Eq(other V) bool

	// The lattice operations mutate the receiver into the result and
	// return the kind of that result. When the result is extremal the
	// receiver may still hold representation resources; the scaffolding
	// takes care of calling Clear.
	//
	// All four must be sound and monotone in both arguments; WidenWith
	// must additionally stabilize every ascending chain in finitely many
	// steps.
	JoinWith(other V) Kind
	WidenWith(other V) Kind
	MeetWith(other V) Kind
	NarrowWith(other V) Kind

	// Copy produces an independent deep copy of the element, the analogue
	// of the copy-constructibility the contract demands of values.
	Copy() V

	String() string
}
