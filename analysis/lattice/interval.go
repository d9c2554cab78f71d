package lattice

import (
	"strconv"
)

// IntervalBound is implemented by all interval bounds, i.e. any FiniteBound
// value, PlusInfinity and MinusInfinity.
type IntervalBound interface {
	String() string

	// IsInfinite checks whether the interval bound is infinite.
	IsInfinite() bool

	// Eq checks for interval bound equality.
	Eq(IntervalBound) bool
	// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℤ.
	Leq(IntervalBound) bool
	// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℤ.
	Geq(IntervalBound) bool
	// Lt computes b1 < b2.
	Lt(IntervalBound) bool
	// Gt computes b1 > b2.
	Gt(IntervalBound) bool

	// Plus computes b1 + b2. Adding ∞ and -∞ panics.
	Plus(IntervalBound) IntervalBound
	// Max computes max(b1, b2).
	Max(IntervalBound) IntervalBound
	// Min computes min(b1, b2).
	Min(IntervalBound) IntervalBound
}

type (
	// FiniteBound is used to represent finite limits of an interval value.
	FiniteBound int

	// PlusInfinity represents an unbounded upper interval limit.
	PlusInfinity struct{}

	// MinusInfinity represents an unbounded lower interval limit.
	MinusInfinity struct{}
)

func (b FiniteBound) String() string {
	return colorize.Const(strconv.Itoa(int(b)))
}

func (PlusInfinity) String() string {
	return colorize.Const("∞")
}

func (MinusInfinity) String() string {
	return colorize.Const("-∞")
}

func (FiniteBound) IsInfinite() bool   { return false }
func (PlusInfinity) IsInfinite() bool  { return true }
func (MinusInfinity) IsInfinite() bool { return true }

func (b1 FiniteBound) Eq(b2 IntervalBound) bool {
	b, ok := b2.(FiniteBound)
	return ok && b1 == b
}

func (PlusInfinity) Eq(b2 IntervalBound) bool {
	_, ok := b2.(PlusInfinity)
	return ok
}

func (MinusInfinity) Eq(b2 IntervalBound) bool {
	_, ok := b2.(MinusInfinity)
	return ok
}

func (b1 FiniteBound) Leq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 <= b2
	case PlusInfinity:
		return true
	}
	return false
}

func (PlusInfinity) Leq(b2 IntervalBound) bool {
	_, ok := b2.(PlusInfinity)
	return ok
}

func (MinusInfinity) Leq(IntervalBound) bool { return true }

func (b1 FiniteBound) Geq(b2 IntervalBound) bool    { return b2.Leq(b1) }
func (b1 PlusInfinity) Geq(IntervalBound) bool      { return true }
func (b1 MinusInfinity) Geq(b2 IntervalBound) bool  { return b2.Leq(b1) }
func (b1 FiniteBound) Lt(b2 IntervalBound) bool     { return !b2.Leq(b1) }
func (b1 PlusInfinity) Lt(b2 IntervalBound) bool    { return false }
func (b1 MinusInfinity) Lt(b2 IntervalBound) bool   { return !b2.Leq(b1) }
func (b1 FiniteBound) Gt(b2 IntervalBound) bool     { return !b1.Leq(b2) }
func (b1 PlusInfinity) Gt(b2 IntervalBound) bool    { return !b1.Leq(b2) }
func (b1 MinusInfinity) Gt(IntervalBound) bool      { return false }

func (b1 FiniteBound) Plus(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 + b2
	}
	return b2
}

func (b1 PlusInfinity) Plus(b2 IntervalBound) IntervalBound {
	if _, ok := b2.(MinusInfinity); ok {
		panic(errUnsupportedOperation)
	}
	return b1
}

func (b1 MinusInfinity) Plus(b2 IntervalBound) IntervalBound {
	if _, ok := b2.(PlusInfinity); ok {
		panic(errUnsupportedOperation)
	}
	return b1
}

func maxBound(b1, b2 IntervalBound) IntervalBound {
	if b1.Geq(b2) {
		return b1
	}
	return b2
}

func minBound(b1, b2 IntervalBound) IntervalBound {
	if b1.Leq(b2) {
		return b1
	}
	return b2
}

func (b1 FiniteBound) Max(b2 IntervalBound) IntervalBound   { return maxBound(b1, b2) }
func (b1 PlusInfinity) Max(b2 IntervalBound) IntervalBound  { return maxBound(b1, b2) }
func (b1 MinusInfinity) Max(b2 IntervalBound) IntervalBound { return maxBound(b1, b2) }
func (b1 FiniteBound) Min(b2 IntervalBound) IntervalBound   { return minBound(b1, b2) }
func (b1 PlusInfinity) Min(b2 IntervalBound) IntervalBound  { return minBound(b1, b2) }
func (b1 MinusInfinity) Min(b2 IntervalBound) IntervalBound { return minBound(b1, b2) }

// IntervalValue is the interval abstract value: two interval bounds, low and
// high. The representation can denote both extrema — [-∞, ∞] is Top and any
// inverted pair of bounds (canonically [∞, -∞]) is Bottom — so Kind reports
// them for the scaffolding to coalesce.
type IntervalValue struct {
	low  IntervalBound
	high IntervalBound
}

// NewIntervalValue creates an interval with possibly infinite bounds.
func NewIntervalValue(low, high IntervalBound) *IntervalValue {
	return &IntervalValue{low: low, high: high}
}

// NewFiniteIntervalValue creates an interval with finite bounds.
func NewFiniteIntervalValue(low, high int) *IntervalValue {
	return &IntervalValue{low: FiniteBound(low), high: FiniteBound(high)}
}

// Clear resets the representation to the empty interval.
func (i *IntervalValue) Clear() {
	i.low, i.high = PlusInfinity{}, MinusInfinity{}
}

func (i *IntervalValue) Kind() Kind {
	switch {
	case i.low == nil || i.high == nil || i.low.Gt(i.high):
		return Bottom
	case i.low.Eq(MinusInfinity{}) && i.high.Eq(PlusInfinity{}):
		return Top
	}
	return Value
}

// Low returns the lower bound as an integer, if finite, and panics otherwise.
func (i *IntervalValue) Low() int {
	if i.low.IsInfinite() {
		panic(errUnsupportedOperation)
	}
	return int(i.low.(FiniteBound))
}

// High returns the upper bound as an integer, if finite, and panics otherwise.
func (i *IntervalValue) High() int {
	if i.high.IsInfinite() {
		panic(errUnsupportedOperation)
	}
	return int(i.high.(FiniteBound))
}

// Bounds returns both interval bounds.
func (i *IntervalValue) Bounds() (low, high IntervalBound) {
	return i.low, i.high
}

func (i *IntervalValue) Leq(other *IntervalValue) bool {
	return i.low.Geq(other.low) && i.high.Leq(other.high)
}

func (i *IntervalValue) Eq(other *IntervalValue) bool {
	return i.low.Eq(other.low) && i.high.Eq(other.high)
}

// JoinWith computes the convex hull: the lowest of the lower bounds and the
// highest of the upper bounds.
func (i *IntervalValue) JoinWith(other *IntervalValue) Kind {
	i.low = i.low.Min(other.low)
	i.high = i.high.Max(other.high)
	return i.Kind()
}

// WidenWith jumps every unstable bound to the corresponding infinity,
// cutting off infinite ascending chains.
func (i *IntervalValue) WidenWith(other *IntervalValue) Kind {
	if other.low.Lt(i.low) {
		i.low = MinusInfinity{}
	}
	if other.high.Gt(i.high) {
		i.high = PlusInfinity{}
	}
	return i.Kind()
}

// MeetWith intersects two intervals; disjoint intervals collapse to ⊥.
func (i *IntervalValue) MeetWith(other *IntervalValue) Kind {
	i.low = i.low.Max(other.low)
	i.high = i.high.Min(other.high)
	return i.Kind()
}

// NarrowWith refines the infinite bounds introduced by widening with the
// bounds of the (smaller) argument.
func (i *IntervalValue) NarrowWith(other *IntervalValue) Kind {
	if i.low.IsInfinite() {
		i.low = other.low
	}
	if i.high.IsInfinite() {
		i.high = other.high
	}
	return i.Kind()
}

// TranslateBy shifts both bounds by a constant.
func (i *IntervalValue) TranslateBy(c int) {
	i.low = i.low.Plus(FiniteBound(c))
	i.high = i.high.Plus(FiniteBound(c))
}

func (i *IntervalValue) Copy() *IntervalValue {
	return &IntervalValue{low: i.low, high: i.high}
}

func (i *IntervalValue) String() string {
	if i.Kind() == Bottom {
		return colorize.Element("⊥")
	}
	return "[" + i.low.String() + ", " + i.high.String() + "]"
}

var _ AbstractValue[*IntervalValue] = (*IntervalValue)(nil)
