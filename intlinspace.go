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

// IntLinSpace is a lazy integer linear interpolation between two
// endpoints over Length points (spec.md §2, §9). It never allocates
// the full sequence; Get computes a single index on demand.
//
// Unlike the Julia reference this is deliberately bug-for-bug *not*
// compatible at the top endpoint: Get(Length) always returns Stop
// exactly, never an interpolated value (spec.md §9 open question).
type IntLinSpace struct {
	Start, Stop int
	Length      int
}

// Get returns the value at 1-based index i: Start at i==1, Stop at
// i==Length, and a ceil-rounded interpolation in between.
func (s IntLinSpace) Get(i int) int {
	if s.Length <= 1 {
		return s.Start
	}
	if i <= 1 {
		return s.Start
	}
	if i >= s.Length {
		return s.Stop
	}
	num := (i - 1) * (s.Stop - s.Start)
	den := s.Length - 1
	return s.Start + ceilDiv(num, den)
}

// ceilDiv computes ceil(num/den) for den > 0, correct for negative
// num (interpolating a descending range).
func ceilDiv(num, den int) int {
	if den <= 0 {
		panic("sihsort: IntLinSpace requires Length > 1")
	}
	q := num / den
	r := num % den
	if r != 0 && (r > 0) == (den > 0) {
		q++
	}
	return q
}
