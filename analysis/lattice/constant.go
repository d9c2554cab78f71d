package lattice

import "fmt"

// ConstantValue is the flat constant-propagation abstract value: a single
// known constant. Joining distinct constants saturates to ⊤; meeting
// distinct constants has no concretization and collapses to ⊥ (reported
// through the returned Kind, the representation itself never denotes ⊥).
type ConstantValue[T comparable] struct {
	value     T
	saturated bool
}

// NewConstantValue creates the abstract value denoting exactly x.
func NewConstantValue[T comparable](x T) *ConstantValue[T] {
	return &ConstantValue[T]{value: x}
}

func (c *ConstantValue[T]) Clear() {
	var zero T
	c.value = zero
	c.saturated = false
}

func (c *ConstantValue[T]) Kind() Kind {
	if c.saturated {
		return Top
	}
	return Value
}

// Const returns the denoted constant.
func (c *ConstantValue[T]) Const() T {
	if c.saturated {
		panic(errUnsupportedOperation)
	}
	return c.value
}

// Is checks whether the value denotes the given constant.
func (c *ConstantValue[T]) Is(x T) bool {
	return !c.saturated && c.value == x
}

func (c *ConstantValue[T]) Leq(other *ConstantValue[T]) bool {
	return c.value == other.value
}

func (c *ConstantValue[T]) Eq(other *ConstantValue[T]) bool {
	return c.value == other.value
}

func (c *ConstantValue[T]) JoinWith(other *ConstantValue[T]) Kind {
	if c.value != other.value {
		c.saturated = true
		return Top
	}
	return Value
}

func (c *ConstantValue[T]) WidenWith(other *ConstantValue[T]) Kind {
	return c.JoinWith(other)
}

func (c *ConstantValue[T]) MeetWith(other *ConstantValue[T]) Kind {
	if c.value != other.value {
		return Bottom
	}
	return Value
}

func (c *ConstantValue[T]) NarrowWith(other *ConstantValue[T]) Kind {
	return c.MeetWith(other)
}

func (c *ConstantValue[T]) Copy() *ConstantValue[T] {
	return &ConstantValue[T]{value: c.value, saturated: c.saturated}
}

func (c *ConstantValue[T]) String() string {
	if c.saturated {
		return colorize.Element("⊤")
	}
	return colorize.Const(fmt.Sprintf("%v", c.value))
}

var _ AbstractValue[*ConstantValue[int]] = (*ConstantValue[int])(nil)

// ConstantDomain is the flat lattice over constants of type T:
// ⊥ ⊑ c ⊑ ⊤ for every constant c, with distinct constants incomparable.
type ConstantDomain[T comparable] struct {
	Scaffold[*ConstantValue[T]]
}

// NewConstantDomain creates the element denoting exactly x.
func NewConstantDomain[T comparable](x T) *ConstantDomain[T] {
	return &ConstantDomain[T]{NewScaffold[*ConstantValue[T]](NewConstantValue(x))}
}

// BottomConstantDomain creates the ⊥ element.
func BottomConstantDomain[T comparable]() *ConstantDomain[T] {
	var zero T
	return &ConstantDomain[T]{ExtremalScaffold[*ConstantValue[T]](NewConstantValue(zero), Bottom)}
}

// TopConstantDomain creates the ⊤ element.
func TopConstantDomain[T comparable]() *ConstantDomain[T] {
	var zero T
	return &ConstantDomain[T]{ExtremalScaffold[*ConstantValue[T]](NewConstantValue(zero), Top)}
}

// Const returns the denoted constant of a Value-kind element.
func (d *ConstantDomain[T]) Const() T {
	if !d.IsValue() {
		panic(errUnsupportedOperation)
	}
	return d.Value().Const()
}

// Is checks whether the element denotes exactly the given constant.
func (d *ConstantDomain[T]) Is(x T) bool {
	return d.IsValue() && d.Value().Is(x)
}

func (d *ConstantDomain[T]) Leq(other *ConstantDomain[T]) bool {
	return d.Scaffold.Leq(&other.Scaffold)
}

func (d *ConstantDomain[T]) Eq(other *ConstantDomain[T]) bool {
	return d.Scaffold.Eq(&other.Scaffold)
}

func (d *ConstantDomain[T]) JoinWith(other *ConstantDomain[T]) {
	d.Scaffold.JoinWith(&other.Scaffold)
}

func (d *ConstantDomain[T]) WidenWith(other *ConstantDomain[T]) {
	d.Scaffold.WidenWith(&other.Scaffold)
}

func (d *ConstantDomain[T]) MeetWith(other *ConstantDomain[T]) {
	d.Scaffold.MeetWith(&other.Scaffold)
}

func (d *ConstantDomain[T]) NarrowWith(other *ConstantDomain[T]) {
	d.Scaffold.NarrowWith(&other.Scaffold)
}

func (d *ConstantDomain[T]) Copy() *ConstantDomain[T] {
	return &ConstantDomain[T]{d.Scaffold.Copy()}
}

var _ AbstractDomain[*ConstantDomain[int]] = (*ConstantDomain[int])(nil)
