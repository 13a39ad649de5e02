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

// Package comm names the collective-transport contract SIHSort's
// driver is built against (spec.md §6). It is deliberately an external
// contract, not a core design: the core issues exactly seven
// collectives in a fixed order and otherwise never touches the
// network. This package also ships the one concrete Comm this repo
// needs to actually run and test the core: an in-process,
// goroutine-per-rank implementation (local.go). Wiring a real MPI
// binding is a caller concern, same as spec.md treats it.
package comm

import "context"

// Op is a reduction operator. Sum is the only one the core ever uses
// (spec.md §6), but the contract names it so a transport can validate.
type Op int

const (
	OpSum Op = iota
)

// Comm is the collective-transport contract. Every method is a
// blocking, collective call: every rank in the communicator must enter
// it, in the same order, for the call to complete on any of them.
// Implementations must return an error rather than panic on transport
// failure (spec.md §7.2); a returned error means the call group as a
// whole is considered aborted.
type Comm interface {
	// Rank returns this process's identity in [0, Size).
	Rank() int
	// Size returns the communicator's process count P.
	Size() int

	// Gather collects fixed-stride sendbuf (length k bytes per rank,
	// same k on every rank) from every rank into recvbuf (length
	// k*Size) on root, in rank order. On non-root ranks recvbuf is
	// ignored and may be nil. Used to gather the Numeric/ordered-K
	// sample vector (spec.md §4.4), which is why the payload is raw
	// bytes rather than int64: K is caller-defined and only required
	// to be a fixed-size communicable value (spec.md §3), not
	// necessarily an integer.
	Gather(ctx context.Context, sendbuf []byte, recvbuf []byte, root int) error

	// Bcast broadcasts buf (owned by root, same length on every rank)
	// in place to every rank. Used for the sorted sample vector and
	// later the splitter vector (spec.md §4.4, §4.8), both K-valued.
	Bcast(ctx context.Context, buf []byte, root int) error

	// Reduce combines buf element-wise with op across all ranks,
	// leaving the result in buf on root only.
	Reduce(ctx context.Context, buf []int64, op Op, root int) error

	// Allreduce combines buf element-wise with op across all ranks,
	// leaving the identical result in buf on every rank.
	Allreduce(ctx context.Context, buf []int64, op Op) error

	// Alltoall exchanges exactly one int64 per destination rank:
	// sendbuf[j] goes to rank j, recvbuf[i] arrives from rank i.
	// len(sendbuf) == len(recvbuf) == Size().
	Alltoall(ctx context.Context, sendbuf []int64, recvbuf []int64) error

	// Alltoallv exchanges variable-length payloads. sendbuf is the
	// concatenation of Size() segments whose lengths are sendCounts;
	// recvbuf must already be sized to sum(recvCounts) and is filled
	// with the concatenation of what arrives from each rank in rank
	// order.
	Alltoallv(ctx context.Context, sendbuf []byte, sendCounts []int, recvbuf []byte, recvCounts []int) error

	// Barrier blocks until every rank has entered it. The core never
	// calls this (spec.md §6: "used by callers; not by the core").
	Barrier(ctx context.Context) error
}
