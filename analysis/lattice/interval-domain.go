package lattice

// IntervalDomain is the domain of integer intervals with possibly infinite
// bounds, obtained by scaffolding IntervalValue. Its lattice has infinite
// height; termination of ascending iteration sequences relies on widening.
type IntervalDomain struct {
	Scaffold[*IntervalValue]
}

// NewIntervalDomain creates the interval [low, high] with finite bounds.
func NewIntervalDomain(low, high int) *IntervalDomain {
	return &IntervalDomain{NewScaffold[*IntervalValue](NewFiniteIntervalValue(low, high))}
}

// IntervalDomainOf creates an interval element from explicit bounds.
// [-∞, ∞] normalizes to ⊤ and inverted bounds to ⊥.
func IntervalDomainOf(low, high IntervalBound) *IntervalDomain {
	return &IntervalDomain{NewScaffold[*IntervalValue](NewIntervalValue(low, high))}
}

// BottomIntervalDomain creates the ⊥ element.
func BottomIntervalDomain() *IntervalDomain {
	return &IntervalDomain{ExtremalScaffold[*IntervalValue](&IntervalValue{}, Bottom)}
}

// TopIntervalDomain creates the ⊤ element, [-∞, ∞].
func TopIntervalDomain() *IntervalDomain {
	return &IntervalDomain{ExtremalScaffold[*IntervalValue](&IntervalValue{}, Top)}
}

// SetInterval overwrites the element with the finite interval [low, high].
func (d *IntervalDomain) SetInterval(low, high int) {
	d.SetToValue(NewFiniteIntervalValue(low, high))
}

// TranslateBy shifts a Value-kind interval by a constant; ⊥ and ⊤ are fixed
// points of translation.
func (d *IntervalDomain) TranslateBy(c int) {
	if !d.IsValue() {
		return
	}
	d.Value().TranslateBy(c)
	d.Normalize()
}

// Bounds returns the bounds of a Value-kind element.
func (d *IntervalDomain) Bounds() (low, high IntervalBound) {
	if !d.IsValue() {
		panic(errUnsupportedOperation)
	}
	return d.Value().Bounds()
}

// Low returns the finite lower bound of a Value-kind element.
func (d *IntervalDomain) Low() int {
	if !d.IsValue() {
		panic(errUnsupportedOperation)
	}
	return d.Value().Low()
}

// High returns the finite upper bound of a Value-kind element.
func (d *IntervalDomain) High() int {
	if !d.IsValue() {
		panic(errUnsupportedOperation)
	}
	return d.Value().High()
}

func (d *IntervalDomain) Leq(other *IntervalDomain) bool {
	return d.Scaffold.Leq(&other.Scaffold)
}

func (d *IntervalDomain) Eq(other *IntervalDomain) bool {
	return d.Scaffold.Eq(&other.Scaffold)
}

func (d *IntervalDomain) JoinWith(other *IntervalDomain) {
	d.Scaffold.JoinWith(&other.Scaffold)
}

func (d *IntervalDomain) WidenWith(other *IntervalDomain) {
	d.Scaffold.WidenWith(&other.Scaffold)
}

func (d *IntervalDomain) MeetWith(other *IntervalDomain) {
	d.Scaffold.MeetWith(&other.Scaffold)
}

func (d *IntervalDomain) NarrowWith(other *IntervalDomain) {
	d.Scaffold.NarrowWith(&other.Scaffold)
}

func (d *IntervalDomain) Copy() *IntervalDomain {
	return &IntervalDomain{d.Scaffold.Copy()}
}

var _ AbstractDomain[*IntervalDomain] = (*IntervalDomain)(nil)
