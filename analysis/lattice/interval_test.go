package lattice

import "testing"

func TestIntervalJoin(t *testing.T) {
	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	bot := BottomIntervalDomain
	top := TopIntervalDomain
	iv := IntervalDomainOf

	tests := []struct {
		a, b, expected *IntervalDomain
	}{
		{bot(), bot(), bot()},
		{bot(), top(), top()},
		{top(), bot(), top()},
		{top(), top(), top()},
		{bot(), iv(b(0), b(0)), iv(b(0), b(0))},
		{iv(b(0), b(0)), bot(), iv(b(0), b(0))},
		{iv(b(0), b(0)), iv(b(1), b(1)), iv(b(0), b(1))},
		{iv(b(1), b(1)), iv(b(0), b(0)), iv(b(0), b(1))},
		{iv(b(1), b(2)), iv(b(3), b(4)), iv(b(1), b(4))},
		{iv(b(-1), b(0)), iv(b(0), b(1)), iv(b(-1), b(1))},
		{iv(b(0), b(1024)), iv(b(0), P{}), iv(b(0), P{})},
		{iv(b(-1024), b(0)), iv(b(0), P{}), iv(b(-1024), P{})},
		{iv(M{}, b(0)), iv(b(-1024), b(0)), iv(M{}, b(0))},
		{iv(M{}, b(-1024)), iv(b(1024), P{}), top()},
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

func TestIntervalMeet(t *testing.T) {
	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	bot := BottomIntervalDomain
	top := TopIntervalDomain
	iv := IntervalDomainOf

	tests := []struct {
		a, b, expected *IntervalDomain
	}{
		{bot(), top(), bot()},
		{top(), top(), top()},
		{top(), iv(b(0), b(5)), iv(b(0), b(5))},
		{iv(b(0), b(5)), iv(b(3), b(8)), iv(b(3), b(5))},
		{iv(b(3), b(8)), iv(b(0), b(5)), iv(b(3), b(5))},
		{iv(b(0), b(2)), iv(b(3), b(8)), bot()},
		{iv(M{}, b(0)), iv(b(0), P{}), iv(b(0), b(0))},
		{iv(M{}, b(-1)), iv(b(1), P{}), bot()},
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

func TestIntervalWidening(t *testing.T) {
	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	iv := IntervalDomainOf

	tests := []struct {
		a, b, expected *IntervalDomain
	}{
		// Stable bounds are kept.
		{iv(b(0), b(5)), iv(b(0), b(5)), iv(b(0), b(5))},
		{iv(b(0), b(5)), iv(b(2), b(4)), iv(b(0), b(5))},
		// Unstable bounds jump to infinity.
		{iv(b(0), b(0)), iv(b(0), b(1)), iv(b(0), P{})},
		{iv(b(0), b(0)), iv(b(-1), b(0)), iv(M{}, b(0))},
		{iv(b(0), b(0)), iv(b(-1), b(1)), TopIntervalDomain()},
		// Extremal short circuits come from the scaffolding.
		{BottomIntervalDomain(), iv(b(0), b(1)), iv(b(0), b(1))},
		{iv(b(0), b(1)), BottomIntervalDomain(), iv(b(0), b(1))},
		{iv(b(0), b(1)), TopIntervalDomain(), TopIntervalDomain()},
	}

	for _, test := range tests {
		res := Widening(test.a, test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ▽ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ▽ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalNarrowing(t *testing.T) {
	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	iv := IntervalDomainOf

	tests := []struct {
		a, b, expected *IntervalDomain
	}{
		// Narrowing refines infinite bounds only.
		{iv(b(0), P{}), iv(b(0), b(10)), iv(b(0), b(10))},
		{iv(M{}, b(10)), iv(b(0), b(10)), iv(b(0), b(10))},
		{iv(b(0), b(10)), iv(b(3), b(7)), iv(b(0), b(10))},
		{TopIntervalDomain(), iv(b(0), b(10)), iv(b(0), b(10))},
		{iv(b(0), b(10)), BottomIntervalDomain(), BottomIntervalDomain()},
	}

	for _, test := range tests {
		res := Narrowing(test.a, test.b)
		if !res.Eq(test.expected) {
			t.Errorf("narrowing of %s by %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("narrowing of %s by %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalNormalization(t *testing.T) {
	type b = FiniteBound
	type P = PlusInfinity
	type M = MinusInfinity

	// The representation [-∞, ∞] coalesces into ⊤ ...
	if d := IntervalDomainOf(M{}, P{}); !d.IsTop() {
		t.Errorf("expected [-∞, ∞] to normalize to ⊤, got %s", d)
	}
	// ... and inverted bounds into ⊥.
	if d := IntervalDomainOf(b(1), b(0)); !d.IsBottom() {
		t.Errorf("expected [1, 0] to normalize to ⊥, got %s", d)
	}
	if d := IntervalDomainOf(P{}, M{}); !d.IsBottom() {
		t.Errorf("expected [∞, -∞] to normalize to ⊥, got %s", d)
	}
}

func TestIntervalTranslateBy(t *testing.T) {
	d := NewIntervalDomain(0, 5)
	d.TranslateBy(3)
	if d.Low() != 3 || d.High() != 8 {
		t.Errorf("expected [3, 8], got %s", d)
	}

	top := TopIntervalDomain()
	top.TranslateBy(3)
	if !top.IsTop() {
		t.Errorf("expected ⊤ to be fixed under translation, got %s", top)
	}

	bot := BottomIntervalDomain()
	bot.TranslateBy(3)
	if !bot.IsBottom() {
		t.Errorf("expected ⊥ to be fixed under translation, got %s", bot)
	}
}
