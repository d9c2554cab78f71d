package lattice

import (
	"fmt"
	"sort"

	"github.com/benbjohnson/immutable"

	i "github.com/fixpoint-dk/absint/utils/indenter"
)

// EnvironmentValue is the regular element of the environment domain: a
// finite map from variables to elements of a value domain D. A variable
// without a binding is implicitly ⊤, so the empty map denotes the ⊤
// environment and Kind reports it as such. Binding a variable to ⊥ makes the
// whole environment unreachable, which Kind reports as ⊥ through a collapse
// marker.
//
// The invariant maintained by every operation: bindings never map to ⊤ or ⊥
// elements.
type EnvironmentValue[K comparable, D AbstractDomain[D]] struct {
	bindings  *immutable.Map[K, D]
	hasher    immutable.Hasher[K]
	collapsed bool
}

// NewEnvironmentValue creates the empty (⊤) environment value. Keys are
// identified through the provided hasher.
func NewEnvironmentValue[K comparable, D AbstractDomain[D]](hasher immutable.Hasher[K]) *EnvironmentValue[K, D] {
	return &EnvironmentValue[K, D]{
		bindings: immutable.NewMap[K, D](hasher),
		hasher:   hasher,
	}
}

func (env *EnvironmentValue[K, D]) Clear() {
	env.bindings = immutable.NewMap[K, D](env.hasher)
	env.collapsed = false
}

func (env *EnvironmentValue[K, D]) Kind() Kind {
	switch {
	case env.collapsed:
		return Bottom
	case env.bindings.Len() == 0:
		return Top
	}
	return Value
}

// Get returns the binding for a variable, if any. Absent bindings denote ⊤;
// the caller materializes that element (the value type carries no factory).
func (env *EnvironmentValue[K, D]) Get(key K) (D, bool) {
	d, found := env.bindings.Get(key)
	return d, found
}

// Set binds a variable. Binding ⊤ removes the entry; binding ⊥ collapses the
// environment.
func (env *EnvironmentValue[K, D]) Set(key K, d D) {
	switch {
	case d.IsBottom():
		env.collapsed = true
	case d.IsTop():
		env.bindings = env.bindings.Delete(key)
	default:
		env.bindings = env.bindings.Set(key, d.Copy())
	}
}

// Size returns the number of explicit bindings.
func (env *EnvironmentValue[K, D]) Size() int {
	return env.bindings.Len()
}

func (env *EnvironmentValue[K, D]) forEach(do func(key K, d D)) {
	for it := env.bindings.Iterator(); !it.Done(); {
		k, d, _ := it.Next()
		do(k, d)
	}
}

// Leq: env1 ⊑ env2 iff for every binding of env2, env1 binds the variable to
// something below it. Variables bound only by env1 are below the implicit ⊤.
func (env *EnvironmentValue[K, D]) Leq(other *EnvironmentValue[K, D]) bool {
	res := true
	other.forEach(func(k K, d2 D) {
		if d1, found := env.bindings.Get(k); !found || !d1.Leq(d2) {
			res = false
		}
	})
	return res
}

func (env *EnvironmentValue[K, D]) Eq(other *EnvironmentValue[K, D]) bool {
	if env.bindings.Len() != other.bindings.Len() {
		return false
	}
	res := true
	env.forEach(func(k K, d1 D) {
		if d2, found := other.bindings.Get(k); !found || !d1.Eq(d2) {
			res = false
		}
	})
	return res
}

// joinLike applies a pointwise join-like operation: variables bound on both
// sides are combined, all others drop to the implicit ⊤.
func (env *EnvironmentValue[K, D]) joinLike(other *EnvironmentValue[K, D], op func(a, b D) D) Kind {
	joined := immutable.NewMap[K, D](env.hasher)
	env.forEach(func(k K, d1 D) {
		if d2, found := other.bindings.Get(k); found {
			if d := op(d1, d2); !d.IsTop() {
				joined = joined.Set(k, d)
			}
		}
	})
	env.bindings = joined
	return env.Kind()
}

// meetLike applies a pointwise meet-like operation: bindings accumulate, and
// variables bound on both sides are combined. A ⊥ combination collapses the
// environment.
func (env *EnvironmentValue[K, D]) meetLike(other *EnvironmentValue[K, D], op func(a, b D) D) Kind {
	met := env.bindings
	other.forEach(func(k K, d2 D) {
		if d1, found := env.bindings.Get(k); found {
			d := op(d1, d2)
			if d.IsBottom() {
				env.collapsed = true
				return
			}
			met = met.Set(k, d)
		} else {
			met = met.Set(k, d2.Copy())
		}
	})
	env.bindings = met
	return env.Kind()
}

func (env *EnvironmentValue[K, D]) JoinWith(other *EnvironmentValue[K, D]) Kind {
	return env.joinLike(other, Join[D])
}

func (env *EnvironmentValue[K, D]) WidenWith(other *EnvironmentValue[K, D]) Kind {
	return env.joinLike(other, Widening[D])
}

func (env *EnvironmentValue[K, D]) MeetWith(other *EnvironmentValue[K, D]) Kind {
	return env.meetLike(other, Meet[D])
}

func (env *EnvironmentValue[K, D]) NarrowWith(other *EnvironmentValue[K, D]) Kind {
	return env.meetLike(other, Narrowing[D])
}

// Copy shares the persistent bindings map; stored elements are never mutated
// in place, so sharing is safe.
func (env *EnvironmentValue[K, D]) Copy() *EnvironmentValue[K, D] {
	return &EnvironmentValue[K, D]{
		bindings:  env.bindings,
		hasher:    env.hasher,
		collapsed: env.collapsed,
	}
}

func (env *EnvironmentValue[K, D]) String() string {
	if env.Kind() != Value {
		return env.Kind().String()
	}
	entries := make([]string, 0, env.bindings.Len())
	env.forEach(func(k K, d D) {
		entries = append(entries, colorize.Key(fmt.Sprintf("%v", k))+" ↦ "+d.String())
	})
	sort.Strings(entries)
	return i.Indenter().Start("[").NestStringsSep(",", entries...).End("]")
}

// Environment is the abstract domain of variable environments: the
// scaffolding over EnvironmentValue with map-level helpers forwarded
// through. Since D cannot be constructed generically, the constructor takes
// factories for its extremal elements.
type Environment[K comparable, D AbstractDomain[D]] struct {
	Scaffold[*EnvironmentValue[K, D]]
	top    func() D
	bottom func() D
}

// NewEnvironment creates the ⊤ environment (no variable is known anything
// about).
func NewEnvironment[K comparable, D AbstractDomain[D]](
	hasher immutable.Hasher[K],
	top func() D,
	bottom func() D,
) *Environment[K, D] {
	return &Environment[K, D]{
		Scaffold: NewScaffold[*EnvironmentValue[K, D]](NewEnvironmentValue[K, D](hasher)),
		top:      top,
		bottom:   bottom,
	}
}

// BottomEnvironment creates the ⊥ environment (unreachable state).
func BottomEnvironment[K comparable, D AbstractDomain[D]](
	hasher immutable.Hasher[K],
	top func() D,
	bottom func() D,
) *Environment[K, D] {
	return &Environment[K, D]{
		Scaffold: ExtremalScaffold[*EnvironmentValue[K, D]](NewEnvironmentValue[K, D](hasher), Bottom),
		top:      top,
		bottom:   bottom,
	}
}

// Get returns (a copy of) the abstract value bound to a variable: ⊥ in the
// ⊥ environment, the binding when present, and ⊤ otherwise.
func (e *Environment[K, D]) Get(key K) D {
	if e.IsBottom() {
		return e.bottom()
	}
	if e.IsValue() {
		if d, found := e.Value().Get(key); found {
			return d.Copy()
		}
	}
	return e.top()
}

// Set binds a variable. Binding ⊥ collapses the environment; setting in the
// ⊥ environment is a no-op.
func (e *Environment[K, D]) Set(key K, d D) {
	if e.IsBottom() {
		return
	}
	e.Value().Set(key, d)
	e.Normalize()
}

// Size returns the number of explicit bindings; 0 for the extremal elements.
func (e *Environment[K, D]) Size() int {
	if !e.IsValue() {
		return 0
	}
	return e.Value().Size()
}

func (e *Environment[K, D]) Leq(other *Environment[K, D]) bool {
	return e.Scaffold.Leq(&other.Scaffold)
}

func (e *Environment[K, D]) Eq(other *Environment[K, D]) bool {
	return e.Scaffold.Eq(&other.Scaffold)
}

func (e *Environment[K, D]) JoinWith(other *Environment[K, D]) {
	e.Scaffold.JoinWith(&other.Scaffold)
}

func (e *Environment[K, D]) WidenWith(other *Environment[K, D]) {
	e.Scaffold.WidenWith(&other.Scaffold)
}

func (e *Environment[K, D]) MeetWith(other *Environment[K, D]) {
	e.Scaffold.MeetWith(&other.Scaffold)
}

func (e *Environment[K, D]) NarrowWith(other *Environment[K, D]) {
	e.Scaffold.NarrowWith(&other.Scaffold)
}

func (e *Environment[K, D]) Copy() *Environment[K, D] {
	return &Environment[K, D]{
		Scaffold: e.Scaffold.Copy(),
		top:      e.top,
		bottom:   e.bottom,
	}
}

var _ AbstractDomain[*Environment[string, *ConstantDomain[int]]] = (*Environment[string, *ConstantDomain[int]])(nil)
