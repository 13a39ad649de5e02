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

// Stats carries the splitters used and the final per-rank element
// counts (spec.md §3, §4.12). It is written exactly once, after every
// collective in the sort has completed successfully; before that it
// is left untouched by the algorithm.
type Stats[K any] struct {
	// Splitters has length P-1 and is sorted under the sort's Order.
	Splitters []K
	// Counts holds n'_0 .. n'_{P-1}: the post-redistribution element
	// count on every rank, indexed by rank.
	Counts []int
}
