package sihsort

import "testing"

func TestDeriveCountsBasic(t *testing.T) {
	// 3 ranks, splitters cut the 10-element global array at 3 and 7.
	h := []int64{3, 7}
	got := deriveCounts(h, 10, 3)
	want := []int{3, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("deriveCounts[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	sum := 0
	for _, c := range got {
		sum += c
	}
	if sum != 10 {
		t.Errorf("counts sum to %d, want 10", sum)
	}
}

func TestDeriveCountsSingleRank(t *testing.T) {
	got := deriveCounts(nil, 42, 1)
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("deriveCounts with p=1 = %v, want [42]", got)
	}
}

func TestDeriveCountsEmptyBucket(t *testing.T) {
	// middle bucket gets zero elements.
	h := []int64{5, 5}
	got := deriveCounts(h, 8, 3)
	want := []int{5, 0, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("deriveCounts[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
