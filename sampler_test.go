package sihsort

import (
	"sort"
	"testing"
)

func intOrder() Order[int, int] {
	return Order[int, int]{By: func(v int) int { return v }, Less: func(a, b int) bool { return a < b }}
}

func TestSampleLocalCount(t *testing.T) {
	order := intOrder()
	v := make([]int, 1000)
	for i := range v {
		v[i] = i
	}
	kl := kLocal(4)
	samples := sampleLocal(v, order, kl)
	if len(samples) != kl {
		t.Fatalf("sampleLocal returned %d samples, want %d", len(samples), kl)
	}
}

func TestSampleLocalSorted(t *testing.T) {
	order := intOrder()
	v := make([]int, 5000)
	for i := range v {
		v[i] = i * 2
	}
	samples := sampleLocal(v, order, kLocal(8))
	if !sort.IntsAreSorted(samples) {
		t.Errorf("samples drawn from a sorted array must themselves be sorted: %v", samples)
	}
}

func TestSampleLocalBounds(t *testing.T) {
	order := intOrder()
	v := []int{10, 20, 30, 40, 50}
	samples := sampleLocal(v, order, 6)
	for _, s := range samples {
		if s < 10 || s > 50 {
			t.Errorf("sample %d out of [10, 50] bounds", s)
		}
	}
	if samples[0] != 10 {
		t.Errorf("first sample = %d, want 10 (the minimum)", samples[0])
	}
	if samples[len(samples)-1] != 50 {
		t.Errorf("last sample = %d, want 50 (the maximum)", samples[len(samples)-1])
	}
}

func TestSampleLocalZeroK(t *testing.T) {
	order := intOrder()
	v := []int{1, 2, 3}
	samples := sampleLocal(v, order, 0)
	if len(samples) != 0 {
		t.Errorf("sampleLocal with kl=0 returned %d samples, want 0", len(samples))
	}
}
