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

// deriveCounts turns a length-(p-1) cumulative histogram plus the
// total it was measured against into p per-rank counts (spec.md
// §4.9's send_i derivation and §4.10's n'_k derivation share exactly
// this shape: counts[0]=h[0], counts[k]=h[k]-h[k-1], and the last
// bucket soaks up whatever total didn't fall under any splitter).
func deriveCounts(h []int64, total int64, p int) []int {
	counts := make([]int, p)
	if p == 1 {
		counts[0] = int(total)
		return counts
	}
	counts[0] = int(h[0])
	for k := 1; k < p-1; k++ {
		counts[k] = int(h[k] - h[k-1])
	}
	counts[p-1] = int(total - h[p-2])
	return counts
}
