/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package sihsort

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// histogramLocal computes, for every probe in probes, the count of
// elements of the (already sorted) v that are <= probe under order
// (spec.md §4.5/§4.8): H[j] = searchsortedlast(v, probes[j]) + 1.
//
// Per-index work is independent (spec.md §5: "within the two
// histogram phases, per-index work may be reordered"), so it is split
// across workers with an errgroup - unlike the sampler's
// gls.Go-and-channel fan-out, this phase has no goroutine-local state
// to propagate and benefits from errgroup's direct first-error
// propagation instead.
func histogramLocal[E, K any](v []E, order Order[E, K], probes []K) []int64 {
	keys := make([]K, len(v))
	for i, e := range v {
		keys[i] = order.By(e)
	}
	out := make([]int64, len(probes))
	if len(probes) == 0 {
		return out
	}

	less := order.KeyLess
	compute := func(lo, hi int) {
		for j := lo; j < hi; j++ {
			out[j] = int64(searchsortedlast(keys, probes[j], less) + 1)
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(probes) {
		workers = len(probes)
	}
	if workers <= 1 {
		compute(0, len(probes))
		return out
	}

	g, _ := errgroup.WithContext(context.Background())
	chunk := (len(probes) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, len(probes))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			compute(lo, hi)
			return nil
		})
	}
	// errgroup.Group recovers nothing by itself; a panicking worker
	// would crash the process same as any other goroutine, which is
	// acceptable here since compute() cannot fail - it only reads
	// already-validated slices.
	_ = g.Wait()
	return out
}
