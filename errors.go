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
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a rank's local array is empty
// (spec.md §7.1). It is a precondition violation: the caller is
// responsible for ensuring every rank satisfies it before calling
// Sort, since other ranks may already have entered a collective by
// the time one rank detects the problem.
var ErrEmptyInput = errors.New("sihsort: local array must have at least one element")

// ErrNoComm is returned when Config.Comm is nil.
var ErrNoComm = errors.New("sihsort: Config.Comm is required")

// ErrNoCodec is returned when Comm.Size() > 1 but Config.KeyCodec or
// Config.ElemCodec was left unset: the driver cannot move K or E
// values across the collective transport without a fixed-width wire
// form for them (spec.md §3: K must be "communicable").
var ErrNoCodec = errors.New("sihsort: Config.KeyCodec and Config.ElemCodec are required whenever Comm.Size() > 1")

// panicError wraps a recovered panic from a parallel worker (sampler
// or histogrammer) so it can be propagated as a normal error up
// through the goroutine boundary, the same recover-into-channel idiom
// storage/scan_order.go uses for its per-shard scan workers.
type panicError struct {
	value any
	stack string
}

func (e *panicError) Error() string {
	return fmt.Sprintf("sihsort: panic in parallel worker: %v\n%s", e.value, e.stack)
}
