package sihsort

import "testing"

func TestHistogramLocalBasic(t *testing.T) {
	order := intOrder()
	v := []int{1, 3, 3, 5, 7, 9}
	probes := []int{0, 3, 4, 9, 100}
	want := []int64{0, 3, 3, 6, 6}
	got := histogramLocal(v, order, probes)
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("histogramLocal probe %d: got %d, want %d", probes[i], got[i], want[i])
		}
	}
}

func TestHistogramLocalEmpty(t *testing.T) {
	order := intOrder()
	got := histogramLocal([]int{1, 2, 3}, order, nil)
	if len(got) != 0 {
		t.Errorf("histogramLocal with no probes returned %d entries, want 0", len(got))
	}
}

func TestHistogramLocalParallel(t *testing.T) {
	order := intOrder()
	v := make([]int, 10000)
	for i := range v {
		v[i] = i
	}
	probes := make([]int, 500)
	for i := range probes {
		probes[i] = i * 20
	}
	got := histogramLocal(v, order, probes)
	for i, p := range probes {
		want := int64(p + 1)
		if p >= len(v) {
			want = int64(len(v))
		}
		if got[i] != want {
			t.Errorf("probe %d: got %d, want %d", p, got[i], want)
		}
	}
}
