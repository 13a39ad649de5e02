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
	"runtime"
	"runtime/debug"

	"github.com/jtolds/gls"
)

// sampleLocal extracts kLocal deterministic samples from the already
// locally-sorted v (spec.md §4.3): index i (1-based) is picked via
// IntLinSpace over [1, len(v)], rounding up on interior indices, and
// projected through order.By.
//
// Extraction is independent per sample index, so - mirroring
// storage/compute.go's per-shard gls.Go fan-out - work is split across
// GOMAXPROCS workers when there are enough samples to make that worth
// it.
func sampleLocal[E, K any](v []E, order Order[E, K], kl int) []K {
	out := make([]K, kl)
	if len(v) == 0 || kl == 0 {
		return out
	}
	space := IntLinSpace{Start: 1, Stop: len(v), Length: kl}

	extract := func(j int) {
		idx := space.Get(j + 1) // 1-based
		out[j] = order.By(v[idx-1])
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > kl {
		workers = kl
	}
	if workers <= 1 {
		for j := 0; j < kl; j++ {
			extract(j)
		}
		return out
	}

	done := make(chan error, workers)
	chunk := (kl + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, kl)
		if lo >= hi {
			done <- nil
			continue
		}
		gls.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					done <- &panicError{r, string(debug.Stack())}
					return
				}
				done <- nil
			}()
			for j := lo; j < hi; j++ {
				extract(j)
			}
		})
	}
	for w := 0; w < workers; w++ {
		if err := <-done; err != nil {
			panic(err) // propagated to the caller's own recover, same as scan_order.go
		}
	}
	return out
}
