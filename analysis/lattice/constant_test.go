package lattice

import "testing"

func TestConstantJoin(t *testing.T) {
	bot := BottomConstantDomain[int]
	top := TopConstantDomain[int]

	tests := []struct {
		a, b, expected *ConstantDomain[int]
	}{
		{bot(), bot(), bot()},
		{bot(), NewConstantDomain(42), NewConstantDomain(42)},
		{NewConstantDomain(42), bot(), NewConstantDomain(42)},
		{NewConstantDomain(42), NewConstantDomain(42), NewConstantDomain(42)},
		// Distinct constants saturate.
		{NewConstantDomain(42), NewConstantDomain(43), top()},
		{NewConstantDomain(42), top(), top()},
	}

	for _, test := range tests {
		res := Join(test.a, test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊔ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestConstantMeet(t *testing.T) {
	bot := BottomConstantDomain[int]
	top := TopConstantDomain[int]

	tests := []struct {
		a, b, expected *ConstantDomain[int]
	}{
		{top(), top(), top()},
		{top(), NewConstantDomain(42), NewConstantDomain(42)},
		{NewConstantDomain(42), NewConstantDomain(42), NewConstantDomain(42)},
		// Distinct constants have an empty concretization.
		{NewConstantDomain(42), NewConstantDomain(43), bot()},
		{NewConstantDomain(42), bot(), bot()},
	}

	for _, test := range tests {
		res := Meet(test.a, test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊓ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊓ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestConstantAccess(t *testing.T) {
	d := NewConstantDomain("hello")
	if !d.Is("hello") || d.Const() != "hello" {
		t.Errorf("expected the constant \"hello\", got %s", d)
	}
	if TopConstantDomain[string]().Is("hello") {
		t.Error("⊤ does not denote a single constant")
	}
	if BottomConstantDomain[string]().Is("hello") {
		t.Error("⊥ does not denote a single constant")
	}
}
