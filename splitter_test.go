package sihsort

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/anicusan/sihsort/numeric"
)

func TestSelectSplittersNearestSample(t *testing.T) {
	samples := []int{1, 5, 10, 20, 30}
	hist := []int64{2, 5, 9, 14, 20}
	got := selectSplitters(samples, hist, 20, 4, nil)
	want := []int{5, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitter[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSelectSplittersInterpolated(t *testing.T) {
	samples := []int{0, 10, 20, 30, 40}
	hist := []int64{1, 2, 3, 4, 5}
	ops := numeric.Builtin[int]()
	got := selectSplitters(samples, hist, 5, 2, &ops)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	// target = round(1*5/2) = 3, which lands exactly on hist[2]=3, so
	// interpolation collapses to the bracketing sample itself.
	if got[0] != 20 {
		t.Errorf("splitter = %d, want 20", got[0])
	}
}

func TestSelectSplittersInterpolatedDecimal(t *testing.T) {
	cents := func(v int64) decimal.Decimal { return decimal.New(v, -2) }
	samples := []decimal.Decimal{cents(0), cents(1000), cents(2000), cents(3000), cents(4000)}
	hist := []int64{1, 2, 3, 4, 5}
	ops := numeric.Decimal()
	got := selectSplitters(samples, hist, 5, 2, &ops)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	// target = round(1*5/2) = 3, landing exactly on hist[2]=3: the
	// interpolation fraction is 0, so it collapses to samples[2] with
	// its cents-scale exponent intact.
	if !got[0].Equal(cents(2000)) {
		t.Errorf("splitter = %s, want 20.00", got[0])
	}
	if got[0].Exponent() != -2 {
		t.Errorf("splitter exponent = %d, want -2 (cents scale preserved)", got[0].Exponent())
	}
}

func TestRoundNearestDiv(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{5, 2, 3},  // 2.5 rounds away from zero to 3
		{4, 2, 2},
		{-5, 2, -3},
		{7, 3, 2},  // 2.33 rounds down
		{0, 5, 0},
		{10, 0, 0}, // guarded division by zero
	}
	for _, c := range cases {
		if got := roundNearestDiv(c.a, c.b); got != c.want {
			t.Errorf("roundNearestDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
