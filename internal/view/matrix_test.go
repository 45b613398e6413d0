package view

import (
	"math"
	"testing"
)

func TestMultiplyOrder(t *testing.T) {
	// Translate(1,0) after Scale(2): p' = 2p + 1.
	m := Translate(1, 0).Multiply(Scale(2))
	x, _ := m.Apply(3, 0)
	if x != 7 {
		t.Fatalf("x = %v, want 7", x)
	}
	// Scale(2) after Translate(1,0): p' = 2(p + 1).
	m = Scale(2).Multiply(Translate(1, 0))
	x, _ = m.Apply(3, 0)
	if x != 8 {
		t.Fatalf("x = %v, want 8", x)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := Translate(5, -3).Multiply(Scale(2.5))
	inv := m.Invert()
	x, y := m.Apply(7, 11)
	rx, ry := inv.Apply(x, y)
	if math.Abs(rx-7) > 1e-9 || math.Abs(ry-11) > 1e-9 {
		t.Fatalf("round trip = (%v,%v), want (7,11)", rx, ry)
	}
}

func TestInvertSingularFallsBackToIdentity(t *testing.T) {
	if got := (Matrix{}).Invert(); got != Identity() {
		t.Fatalf("singular inverse = %+v, want identity", got)
	}
}
