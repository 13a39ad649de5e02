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

import "github.com/anicusan/sihsort/numeric"

// selectSplitters runs root-only splitter selection (spec.md §4.7):
// for each of the P-1 target global positions, find the bracketing
// pair of (sample, cumulative count) and either linearly interpolate
// (Numeric K, the numericOps != nil branch) or fall back to the
// nearest sample - the two specializations spec.md §9 asks for, kept
// as one function with a branch rather than two types, since the only
// difference is three lines around the interpolation itself. The
// bracketing search runs entirely in cumulative-count space (int64),
// so no K-space comparator is needed here.
func selectSplitters[K any](samples []K, hist []int64, n int64, p int, numericOps *numeric.Ops[K]) []K {
	out := make([]K, p-1)
	for i := 1; i < p; i++ {
		target := roundNearestDiv(int64(i)*n, int64(p))
		c := searchsortedlast(hist, target, int64Less)
		if c < 0 {
			c = 0
		}
		if numericOps != nil && c < len(samples)-1 {
			x0, y0 := samples[c], hist[c]
			x1, y1 := samples[c+1], hist[c+1]
			if y1 == y0 {
				out[i-1] = x0
				continue
			}
			frac := float64(target-y0) / float64(y1-y0)
			delta := numericOps.Sub(x1, x0)
			scaled := numericOps.Scale(delta, frac)
			x := numericOps.Add(x0, scaled)
			out[i-1] = numericOps.Ceil(x)
			continue
		}
		out[i-1] = samples[c]
	}
	return out
}

func int64Less(a, b int64) bool { return a < b }

// roundNearestDiv computes round(a/b) with ties rounded away from
// zero, using only integer arithmetic so it stays exact for the large
// N this is meant to scale to (spec.md §7.5: "must use at least 64-bit
// arithmetic for positions and counts").
func roundNearestDiv(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	q := a / b
	r := a % b
	if r == 0 {
		return q
	}
	if r < 0 {
		r = -r
	}
	bb := b
	if bb < 0 {
		bb = -bb
	}
	if 2*r >= bb {
		if (a < 0) != (b < 0) {
			q--
		} else {
			q++
		}
	}
	return q
}
