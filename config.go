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
	"github.com/google/uuid"

	"github.com/anicusan/sihsort/comm"
	"github.com/anicusan/sihsort/numeric"
)

// SortFunc is a caller-supplied in-place local sorter (spec.md §4.2c):
// it is responsible for honouring less itself.
type SortFunc[E any] func(v []E, less func(a, b E) bool)

// Config is the plain aggregate configuration object (spec.md §6),
// modeled the same way storage.SettingsT is: no builder, no options
// functions, just fields the caller sets directly.
type Config[E any, K any] struct {
	// Comm is the collective-transport handle. Required.
	Comm comm.Comm
	// Root is the rank that gathers samples, selects splitters, and
	// broadcasts them. Default 0.
	Root int
	// KeyCodec fixes K's wire representation for the Gather/Bcast
	// collectives that move samples and splitters (spec.md §3: K must
	// be "communicable"). Required whenever Comm.Size() > 1.
	KeyCodec Codec[K]
	// ElemCodec fixes E's wire representation for the Alltoallv
	// payload exchange (spec.md §4.11). Required whenever
	// Comm.Size() > 1.
	ElemCodec Codec[E]
	// Algorithm picks a builtin local-sorter-adapter strategy
	// (spec.md §4.2b). When SortFunc is set it takes over the element
	// sorts; the root's sort of the gathered samples always uses
	// Algorithm.
	Algorithm Algorithm
	// SortFunc, if set, is used as-is for every local sort of the
	// element slice (spec.md §4.2c).
	SortFunc SortFunc[E]
	// Numeric, if set, makes K a Numeric-K (spec.md §3): the splitter
	// selector interpolates between samples instead of falling back
	// to nearest-sample. See the numeric package.
	Numeric *numeric.Ops[K]
	// Stats, if non-nil, receives the splitters and final per-rank
	// counts after every collective has completed (spec.md §4.12).
	Stats *Stats[K]
	// RunID tags this call for log correlation across ranks; if the
	// zero value, Sort fills in a fresh one before the first
	// collective (see comm.NewRunID). Every error path in
	// sortDistributed logs it alongside the rank and failing
	// collective, so a caller running many ranks as separate
	// goroutines can still line up one failed call's log lines.
	// Callers driving multiple ranks should set RunID to the same
	// value on every rank's Config before calling Sort, so a given
	// logical call correlates across ranks instead of each rank
	// minting its own.
	RunID uuid.UUID
}
