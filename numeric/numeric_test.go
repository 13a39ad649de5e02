package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuiltinIntOps(t *testing.T) {
	ops := Builtin[int]()
	if got := ops.Add(3, 4); got != 7 {
		t.Errorf("Add(3, 4) = %d, want 7", got)
	}
	if got := ops.Sub(10, 3); got != 7 {
		t.Errorf("Sub(10, 3) = %d, want 7", got)
	}
	if got := ops.Ceil(3); got != 3 {
		t.Errorf("Ceil(3) = %d, want 3 (already an integer)", got)
	}
}

func TestBuiltinFloatOps(t *testing.T) {
	ops := Builtin[float64]()
	if got := ops.Ceil(3.25); got != 3.25 {
		t.Errorf("Ceil(3.25) = %v, want 3.25 (Ceil is a no-op for float keys)", got)
	}
	if got := ops.Scale(10, 0.5); got != 5 {
		t.Errorf("Scale(10, 0.5) = %v, want 5", got)
	}
}

func TestDecimalOps(t *testing.T) {
	ops := Decimal()
	a := decimal.NewFromFloat(1.5)
	b := decimal.NewFromFloat(0.25)
	if got := ops.Add(a, b); !got.Equal(decimal.NewFromFloat(1.75)) {
		t.Errorf("Add(1.5, 0.25) = %s, want 1.75", got)
	}
	if got := ops.Sub(a, b); !got.Equal(decimal.NewFromFloat(1.25)) {
		t.Errorf("Sub(1.5, 0.25) = %s, want 1.25", got)
	}
}

func TestDecimalCeilPreservesScale(t *testing.T) {
	ops := Decimal()
	// a cents-scale key (exponent -2): Ceil must stay at that scale
	// rather than collapsing to a whole-dollar value the way the plain
	// decimal.Decimal.Ceil (round to exponent 0) would.
	v := decimal.New(10050, -2) // 100.50
	got := ops.Ceil(v)
	if got.Exponent() != -2 {
		t.Fatalf("Ceil(100.50) changed scale to exponent %d, want -2", got.Exponent())
	}
	if !got.Equal(v) {
		t.Errorf("Ceil(100.50) = %s, want 100.50 unchanged", got)
	}
}

func TestDecimalCeilRoundsUpAtFinerScale(t *testing.T) {
	ops := Decimal()
	// 1/3 at the default division precision has a repeating fraction
	// at its own exponent; rounding it up to that same exponent must
	// not return something smaller than the input.
	frac := decimal.New(1, 0).Div(decimal.New(3, 0))
	ceiled := ops.Ceil(frac)
	if ceiled.LessThan(frac) {
		t.Errorf("Ceil(%s) = %s, must not be smaller than its input", frac, ceiled)
	}
	if ceiled.Exponent() != frac.Exponent() {
		t.Errorf("Ceil(%s) changed exponent from %d to %d, want unchanged", frac, frac.Exponent(), ceiled.Exponent())
	}
}

func TestBuiltinIntCeilRoundsUp(t *testing.T) {
	ops := Builtin[int]()
	// 10 * 0.25 is 2.5; the interpolated step of an integer key must
	// round up to 3, not truncate to 2.
	scaled := ops.Scale(10, 0.25)
	if got := ops.Ceil(scaled); got != 3 {
		t.Errorf("Ceil(Scale(10, 0.25)) = %d, want 3 (rounded up)", got)
	}
}
