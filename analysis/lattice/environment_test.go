package lattice

import (
	"testing"

	"github.com/fixpoint-dk/absint/utils"
)

type intervalEnv = Environment[string, *IntervalDomain]

func newEnv(bindings map[string]*IntervalDomain) *intervalEnv {
	env := NewEnvironment(
		utils.ComparableHasher[string](),
		TopIntervalDomain,
		BottomIntervalDomain,
	)
	for k, d := range bindings {
		env.Set(k, d)
	}
	return env
}

func TestEnvironmentBindings(t *testing.T) {
	env := newEnv(nil)
	if !env.IsTop() {
		t.Fatalf("the empty environment must be ⊤, got %s", env)
	}
	if !env.Get("x").IsTop() {
		t.Errorf("unbound variable must read ⊤, got %s", env.Get("x"))
	}

	env.Set("x", NewIntervalDomain(0, 5))
	if !env.IsValue() || env.Size() != 1 {
		t.Fatalf("expected a single binding, got %s", env)
	}
	if !env.Get("x").Eq(NewIntervalDomain(0, 5)) {
		t.Errorf("x ↦ %s, expected [0, 5]", env.Get("x"))
	}

	// Rebinding to ⊤ removes the entry, restoring the ⊤ environment.
	env.Set("x", TopIntervalDomain())
	if !env.IsTop() {
		t.Errorf("expected ⊤ after unbinding the only variable, got %s", env)
	}
}

func TestEnvironmentBottomCollapse(t *testing.T) {
	env := newEnv(map[string]*IntervalDomain{"x": NewIntervalDomain(0, 5)})
	env.Set("y", BottomIntervalDomain())
	if !env.IsBottom() {
		t.Fatalf("binding ⊥ must collapse the environment, got %s", env)
	}
	if !env.Get("x").IsBottom() {
		t.Errorf("every variable of the ⊥ environment reads ⊥, got %s", env.Get("x"))
	}

	// Setting in the ⊥ environment has no effect.
	env.Set("z", NewIntervalDomain(1, 1))
	if !env.IsBottom() {
		t.Errorf("⊥ environment must absorb updates, got %s", env)
	}
}

func TestEnvironmentJoin(t *testing.T) {
	a := newEnv(map[string]*IntervalDomain{
		"x": NewIntervalDomain(0, 1),
		"y": NewIntervalDomain(5, 5),
	})
	b := newEnv(map[string]*IntervalDomain{
		"x": NewIntervalDomain(3, 4),
	})

	res := Join(a, b)
	if !res.Get("x").Eq(NewIntervalDomain(0, 4)) {
		t.Errorf("x ↦ %s, expected [0, 4]", res.Get("x"))
	}
	// y is unbound in b, so it joins with the implicit ⊤.
	if !res.Get("y").IsTop() {
		t.Errorf("y ↦ %s, expected ⊤", res.Get("y"))
	}
	if res.Size() != 1 {
		t.Errorf("expected a single surviving binding, got %s", res)
	}
}

func TestEnvironmentMeet(t *testing.T) {
	a := newEnv(map[string]*IntervalDomain{
		"x": NewIntervalDomain(0, 5),
	})
	b := newEnv(map[string]*IntervalDomain{
		"x": NewIntervalDomain(3, 8),
		"y": NewIntervalDomain(1, 1),
	})

	res := Meet(a, b)
	if !res.Get("x").Eq(NewIntervalDomain(3, 5)) {
		t.Errorf("x ↦ %s, expected [3, 5]", res.Get("x"))
	}
	if !res.Get("y").Eq(NewIntervalDomain(1, 1)) {
		t.Errorf("y ↦ %s, expected [1, 1]", res.Get("y"))
	}

	// Meeting disjoint bindings collapses to ⊥.
	c := newEnv(map[string]*IntervalDomain{"x": NewIntervalDomain(10, 20)})
	if !Meet(a, c).IsBottom() {
		t.Errorf("expected ⊥, got %s", Meet(a, c))
	}
}

func TestEnvironmentOrder(t *testing.T) {
	small := newEnv(map[string]*IntervalDomain{
		"x": NewIntervalDomain(1, 2),
		"y": NewIntervalDomain(0, 0),
	})
	big := newEnv(map[string]*IntervalDomain{
		"x": NewIntervalDomain(0, 5),
	})

	if !small.Leq(big) {
		t.Errorf("%s ⋢ %s", small, big)
	}
	if big.Leq(small) {
		t.Errorf("%s ⊑ %s", big, small)
	}
	if !BottomEnvironment(utils.ComparableHasher[string](), TopIntervalDomain, BottomIntervalDomain).Leq(small) {
		t.Error("⊥ ⋢ environment")
	}
}

func TestEnvironmentWiden(t *testing.T) {
	a := newEnv(map[string]*IntervalDomain{"x": NewIntervalDomain(0, 0)})
	b := newEnv(map[string]*IntervalDomain{"x": NewIntervalDomain(0, 1)})

	res := Widening(a, b)
	lo, hi := res.Get("x").Bounds()
	if !lo.Eq(FiniteBound(0)) || !hi.Eq(PlusInfinity{}) {
		t.Errorf("x ↦ %s, expected [0, ∞]", res.Get("x"))
	}
}

// register is a key with structural hashing, as host IRs identify their
// variables: a name plus an SSA-style version.
type register struct {
	name    string
	version int
}

func (r register) Hash() uint32 {
	return utils.HashCombine(utils.HashString(r.name), uint32(r.version))
}

func (r register) Equal(o register) bool {
	return r == o
}

func TestEnvironmentWithHashableKeys(t *testing.T) {
	env := NewEnvironment(
		utils.HashableHasher[register](),
		TopIntervalDomain,
		BottomIntervalDomain,
	)

	v0 := register{"v", 0}
	v1 := register{"v", 1}
	env.Set(v0, NewIntervalDomain(0, 0))
	env.Set(v1, NewIntervalDomain(1, 8))

	if env.Size() != 2 {
		t.Fatalf("expected two bindings, got %s", env)
	}
	if !env.Get(v0).Eq(NewIntervalDomain(0, 0)) {
		t.Errorf("v0 ↦ %s, expected [0, 0]", env.Get(v0))
	}
	// Key identity is structural, not pointer- or instance-based.
	if !env.Get(register{"v", 1}).Eq(NewIntervalDomain(1, 8)) {
		t.Errorf("v1 ↦ %s, expected [1, 8]", env.Get(register{"v", 1}))
	}
	if !env.Get(register{"w", 0}).IsTop() {
		t.Errorf("unbound register must read ⊤, got %s", env.Get(register{"w", 0}))
	}

	other := NewEnvironment(
		utils.HashableHasher[register](),
		TopIntervalDomain,
		BottomIntervalDomain,
	)
	other.Set(v0, NewIntervalDomain(5, 5))

	res := Join(env, other)
	if !res.Get(v0).Eq(NewIntervalDomain(0, 5)) {
		t.Errorf("v0 ↦ %s after join, expected [0, 5]", res.Get(v0))
	}
	if !res.Get(v1).IsTop() {
		t.Errorf("v1 ↦ %s after join, expected ⊤", res.Get(v1))
	}
}

func TestEnvironmentCopyIsIndependent(t *testing.T) {
	a := newEnv(map[string]*IntervalDomain{"x": NewIntervalDomain(0, 5)})
	b := a.Copy()
	b.Set("x", NewIntervalDomain(7, 7))
	if !a.Get("x").Eq(NewIntervalDomain(0, 5)) {
		t.Errorf("copy aliases the original: x ↦ %s", a.Get("x"))
	}
}
