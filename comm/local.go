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
package comm

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// round is a single rendezvous point: every rank deposits its payload
// into slots, the last rank to arrive runs compute once and wakes
// everyone else with the shared result.
type round struct {
	mu      sync.Mutex
	size    int
	arrived int
	slots   []any
	result  any
	done    chan struct{}
}

func newRound(size int) *round {
	return &round{size: size, slots: make([]any, size), done: make(chan struct{})}
}

func (r *round) exchange(ctx context.Context, rank int, payload any, compute func([]any) any) (any, error) {
	r.mu.Lock()
	r.slots[rank] = payload
	r.arrived++
	last := r.arrived == r.size
	if last {
		r.result = compute(r.slots)
	}
	r.mu.Unlock()
	if last {
		close(r.done)
		return r.result, nil
	}
	select {
	case <-r.done:
		return r.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// localHub is the shared state behind a communicator of LocalComm
// endpoints: one round per collective call, keyed by the call's
// sequence index (every rank issues the same fixed sequence of
// collectives, spec.md §4.1, so the index alone identifies the round).
type localHub struct {
	id     uuid.UUID
	size   int
	mu     sync.Mutex
	rounds map[int]*round
}

func (h *localHub) getRound(idx int) *round {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rounds[idx]
	if !ok {
		r = newRound(h.size)
		h.rounds[idx] = r
	}
	return r
}

func (h *localHub) retire(idx int, r *round) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rounds[idx] == r {
		delete(h.rounds, idx)
	}
}

// LocalComm is an in-process Comm: one goroutine per rank,
// rendezvousing through a shared localHub. It exists to run and test
// the SIHSort core without a real MPI binding (spec.md §6 treats the
// transport as an external contract); callers embedding this module
// inside an actual cluster supply their own Comm instead.
type LocalComm struct {
	hub     *localHub
	rank    int
	callIdx int
}

// NewLocal builds a communicator of size P, one LocalComm endpoint per
// rank, all backed by the same hub. The run id is generated the way
// storage/fast_uuid.go generates ids: an atomic counter folded with a
// timestamp, not crypto/rand, since this is a diagnostic tag and
// start-up entropy stalls would be wasted cost here.
func NewLocal(size int) []Comm {
	if size <= 0 {
		panic("comm: NewLocal requires size > 0")
	}
	hub := &localHub{id: NewRunID(), size: size, rounds: make(map[int]*round)}
	out := make([]Comm, size)
	for i := 0; i < size; i++ {
		out[i] = &LocalComm{hub: hub, rank: i}
	}
	return out
}

func (c *LocalComm) Rank() int { return c.rank }
func (c *LocalComm) Size() int { return c.hub.size }

func (c *LocalComm) next() int {
	idx := c.callIdx
	c.callIdx++
	return idx
}

func (c *LocalComm) Gather(ctx context.Context, sendbuf []byte, recvbuf []byte, root int) error {
	idx := c.next()
	r := c.hub.getRound(idx)
	k := len(sendbuf)
	payload := append([]byte(nil), sendbuf...)
	res, err := r.exchange(ctx, c.rank, payload, func(slots []any) any {
		out := make([]byte, k*len(slots))
		for rk, s := range slots {
			copy(out[rk*k:(rk+1)*k], s.([]byte))
		}
		return out
	})
	c.hub.retire(idx, r)
	if err != nil {
		return fmt.Errorf("comm: gather: %w", err)
	}
	if c.rank == root {
		copy(recvbuf, res.([]byte))
	}
	return nil
}

func (c *LocalComm) Bcast(ctx context.Context, buf []byte, root int) error {
	idx := c.next()
	r := c.hub.getRound(idx)
	var payload []byte
	if c.rank == root {
		payload = append([]byte(nil), buf...)
	}
	res, err := r.exchange(ctx, c.rank, payload, func(slots []any) any {
		return slots[root]
	})
	c.hub.retire(idx, r)
	if err != nil {
		return fmt.Errorf("comm: bcast: %w", err)
	}
	copy(buf, res.([]byte))
	return nil
}

func (c *LocalComm) Reduce(ctx context.Context, buf []int64, op Op, root int) error {
	idx := c.next()
	r := c.hub.getRound(idx)
	payload := append([]int64(nil), buf...)
	res, err := r.exchange(ctx, c.rank, payload, func(slots []any) any {
		return reduceSum(slots)
	})
	c.hub.retire(idx, r)
	if err != nil {
		return fmt.Errorf("comm: reduce: %w", err)
	}
	if c.rank == root {
		copy(buf, res.([]int64))
	}
	return nil
}

func (c *LocalComm) Allreduce(ctx context.Context, buf []int64, op Op) error {
	idx := c.next()
	r := c.hub.getRound(idx)
	payload := append([]int64(nil), buf...)
	res, err := r.exchange(ctx, c.rank, payload, func(slots []any) any {
		return reduceSum(slots)
	})
	c.hub.retire(idx, r)
	if err != nil {
		return fmt.Errorf("comm: allreduce: %w", err)
	}
	copy(buf, res.([]int64))
	return nil
}

func reduceSum(slots []any) []int64 {
	n := len(slots[0].([]int64))
	out := make([]int64, n)
	for _, s := range slots {
		v := s.([]int64)
		for i := 0; i < n; i++ {
			out[i] += v[i]
		}
	}
	return out
}

func (c *LocalComm) Alltoall(ctx context.Context, sendbuf []int64, recvbuf []int64) error {
	idx := c.next()
	r := c.hub.getRound(idx)
	payload := append([]int64(nil), sendbuf...)
	res, err := r.exchange(ctx, c.rank, payload, func(slots []any) any {
		size := len(slots)
		out := make([][]int64, size)
		for dst := 0; dst < size; dst++ {
			out[dst] = make([]int64, size)
			for src := 0; src < size; src++ {
				out[dst][src] = slots[src].([]int64)[dst]
			}
		}
		return out
	})
	c.hub.retire(idx, r)
	if err != nil {
		return fmt.Errorf("comm: alltoall: %w", err)
	}
	copy(recvbuf, res.([][]int64)[c.rank])
	return nil
}

func (c *LocalComm) Alltoallv(ctx context.Context, sendbuf []byte, sendCounts []int, recvbuf []byte, recvCounts []int) error {
	idx := c.next()
	r := c.hub.getRound(idx)

	type contribution struct {
		data   []byte
		counts []int
	}
	payload := contribution{data: append([]byte(nil), sendbuf...), counts: append([]int(nil), sendCounts...)}
	res, err := r.exchange(ctx, c.rank, payload, func(slots []any) any {
		size := len(slots)
		// per-destination concatenation, in source-rank order
		out := make([][]byte, size)
		offsets := make([]int, size)
		for dst := 0; dst < size; dst++ {
			total := 0
			for src := 0; src < size; src++ {
				total += slots[src].(contribution).counts[dst]
			}
			out[dst] = make([]byte, total)
		}
		for src := 0; src < size; src++ {
			c := slots[src].(contribution)
			off := 0
			for dst := 0; dst < size; dst++ {
				n := c.counts[dst]
				copy(out[dst][offsets[dst]:], c.data[off:off+n])
				offsets[dst] += n
				off += n
			}
		}
		return out
	})
	c.hub.retire(idx, r)
	if err != nil {
		return fmt.Errorf("comm: alltoallv: %w", err)
	}
	copy(recvbuf, res.([][]byte)[c.rank])
	return nil
}

func (c *LocalComm) Barrier(ctx context.Context) error {
	idx := c.next()
	r := c.hub.getRound(idx)
	_, err := r.exchange(ctx, c.rank, nil, func(slots []any) any { return nil })
	c.hub.retire(idx, r)
	if err != nil {
		return fmt.Errorf("comm: barrier: %w", err)
	}
	return nil
}

// Run spawns one goroutine per rank of a fresh size-P LocalComm
// communicator, each running fn(rank, comm), and returns the first
// error any of them produced - the same "spawn per unit of work,
// collect the first failure" shape as storage/compute.go's per-shard
// fan-out, reimplemented with errgroup for direct first-error
// propagation instead of a hand-rolled error channel.
func Run(ctx context.Context, size int, fn func(ctx context.Context, rank int, c Comm) error) error {
	comms := NewLocal(size)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < size; i++ {
		rank := i
		c := comms[i]
		g.Go(func() error {
			return fn(gctx, rank, c)
		})
	}
	return g.Wait()
}
