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

// Package sihsort implements Sampling with Interpolated Histograms
// Sort (spec.md): a distributed, comparison-based sort that orders N
// elements spread across P processes with no single process holding
// all of them. See SPEC_FULL.md and DESIGN.md for the full writeup of
// what this module carries beyond the bare algorithm.
package sihsort

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/anicusan/sihsort/comm"
)

// Sort performs the distributed sort (spec.md §4.1, the "mpisort"
// operation). Every rank in cfg.Comm must call Sort collectively with
// a consistent cfg.Comm, cfg.Root and Order - spec.md documents this
// as a precondition the implementation does not check (§7.3).
//
// v is consumed: its storage may be reused internally and must not be
// read again by the caller after Sort returns. The returned slice is
// this rank's contiguous segment of the globally sorted sequence.
func Sort[E any, K any](ctx context.Context, v []E, order Order[E, K], cfg Config[E, K]) ([]E, error) {
	if cfg.Comm == nil {
		return nil, ErrNoComm
	}
	if len(v) == 0 {
		return nil, ErrEmptyInput
	}
	if cfg.RunID == (uuid.UUID{}) {
		cfg.RunID = comm.NewRunID()
	}

	p := cfg.Comm.Size()
	if p > 1 && (cfg.KeyCodec.Encode == nil || cfg.KeyCodec.Decode == nil || cfg.ElemCodec.Encode == nil || cfg.ElemCodec.Decode == nil) {
		return nil, ErrNoCodec
	}

	// local sort brackets the collective section on both ends
	// (spec.md §5); do this before touching any collective so a
	// precondition failure above never leaves V_i half-sorted.
	sortElems(cfg, order, v)

	if p == 1 {
		// trivial path (spec.md §4.1): no collectives at all.
		if cfg.Stats != nil {
			cfg.Stats.Splitters = nil
			cfg.Stats.Counts = []int{len(v)}
		}
		return v, nil
	}

	return sortDistributed(ctx, v, order, cfg)
}

// sortDistributed runs the seven-collective pipeline for P > 1. It is
// split out of Sort so the single recover() that turns a panic in the
// pipeline into an error has one clear boundary. The parallel sampler
// re-raises a worker's panic on this goroutine, so it lands here; a
// panic inside a parallel histogram worker is not recovered (see
// histogram.go).
func sortDistributed[E, K any](ctx context.Context, v []E, order Order[E, K], cfg Config[E, K]) (result []E, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("sihsort: recovered panic, run", cfg.RunID, "rank", cfg.Comm.Rank(), ":", r)
			result, err = nil, fmt.Errorf("sihsort: %v", r)
		}
	}()

	c := cfg.Comm
	p := c.Size()
	root := cfg.Root
	kl := kLocal(p)
	ktotal := kl * p

	// §4.3 sample
	mySamples := sampleLocal(v, order, kl)

	// §4.4 Gather -> sort on root -> Bcast
	var gathered []byte
	if c.Rank() == root {
		gathered = make([]byte, ktotal*cfg.KeyCodec.Size)
	}
	sendSamples := encodeAll(cfg.KeyCodec, mySamples)
	if err := c.Gather(ctx, sendSamples, gathered, root); err != nil {
		log.Println("sihsort: run", cfg.RunID, "rank", c.Rank(), "gather samples failed:", err)
		return nil, fmt.Errorf("sihsort: gather samples: %w", err)
	}
	if c.Rank() == root {
		samples := decodeAll(cfg.KeyCodec, gathered)
		sortKeys(samples, order.KeyLess, cfg.Algorithm)
		gathered = encodeAll(cfg.KeyCodec, samples)
	} else {
		gathered = make([]byte, ktotal*cfg.KeyCodec.Size)
	}
	if err := c.Bcast(ctx, gathered, root); err != nil {
		log.Println("sihsort: run", cfg.RunID, "rank", c.Rank(), "bcast samples failed:", err)
		return nil, fmt.Errorf("sihsort: bcast samples: %w", err)
	}
	samples := decodeAll(cfg.KeyCodec, gathered)

	// §4.5 local histogram of samples, piggy-backing n_i in the tail
	// slot (spec.md §4.5/§4.6).
	sampleHist := histogramLocal(v, order, samples)
	sampleHistFull := make([]int64, ktotal+1)
	copy(sampleHistFull, sampleHist)
	sampleHistFull[ktotal] = int64(len(v))

	// §4.6 Reduce onto root
	if err := c.Reduce(ctx, sampleHistFull, comm.OpSum, root); err != nil {
		log.Println("sihsort: run", cfg.RunID, "rank", c.Rank(), "reduce histogram failed:", err)
		return nil, fmt.Errorf("sihsort: reduce histogram: %w", err)
	}

	// §4.7 splitter selection, root only
	var splitters []K
	if c.Rank() == root {
		n := sampleHistFull[ktotal]
		splitters = selectSplitters(samples, sampleHistFull[:ktotal], n, p, cfg.Numeric)
	} else {
		splitters = make([]K, p-1)
	}

	// §4.8 Bcast splitters; histogram splitters against V_i
	splitBuf := make([]byte, (p-1)*cfg.KeyCodec.Size)
	if c.Rank() == root {
		copy(splitBuf, encodeAll(cfg.KeyCodec, splitters))
	}
	if err := c.Bcast(ctx, splitBuf, root); err != nil {
		log.Println("sihsort: run", cfg.RunID, "rank", c.Rank(), "bcast splitters failed:", err)
		return nil, fmt.Errorf("sihsort: bcast splitters: %w", err)
	}
	splitters = decodeAll(cfg.KeyCodec, splitBuf)

	localSplitHist := histogramLocal(v, order, splitters) // length p-1

	// §4.9 send-count derivation, local to this rank
	sendCounts := deriveCounts(localSplitHist, int64(len(v)), p)

	// §4.10a Alltoall of send counts -> learn per-source receive counts
	sendCounts64 := make([]int64, p)
	for i, x := range sendCounts {
		sendCounts64[i] = int64(x)
	}
	recvCounts64 := make([]int64, p)
	if err := c.Alltoall(ctx, sendCounts64, recvCounts64); err != nil {
		log.Println("sihsort: run", cfg.RunID, "rank", c.Rank(), "alltoall counts failed:", err)
		return nil, fmt.Errorf("sihsort: alltoall counts: %w", err)
	}
	recvCountsFromSrc := make([]int, p)
	totalRecv := 0
	for i, x := range recvCounts64 {
		recvCountsFromSrc[i] = int(x)
		totalRecv += int(x)
	}

	// §4.10b Allreduce of splitter histogram, tail slot carries N;
	// every rank ends up with the full target count vector.
	splitHistFull := make([]int64, p)
	copy(splitHistFull, localSplitHist)
	if c.Rank() == root {
		splitHistFull[p-1] = sampleHistFull[ktotal] // N
	}
	if err := c.Allreduce(ctx, splitHistFull, comm.OpSum); err != nil {
		log.Println("sihsort: run", cfg.RunID, "rank", c.Rank(), "allreduce histogram failed:", err)
		return nil, fmt.Errorf("sihsort: allreduce histogram: %w", err)
	}
	globalN := splitHistFull[p-1]
	targetCounts := deriveCounts(splitHistFull[:p-1], globalN, p)

	// §4.11 Alltoallv payload exchange. v is already locally sorted,
	// so it is already partitioned into p contiguous, destination-
	// ordered runs - no reshuffling needed before encoding.
	sendBytes := encodeAll(cfg.ElemCodec, v)
	sendByteCounts := make([]int, p)
	for i, n := range sendCounts {
		sendByteCounts[i] = n * cfg.ElemCodec.Size
	}
	recvByteCounts := make([]int, p)
	for i, n := range recvCountsFromSrc {
		recvByteCounts[i] = n * cfg.ElemCodec.Size
	}
	recvBytes := make([]byte, totalRecv*cfg.ElemCodec.Size)
	if err := c.Alltoallv(ctx, sendBytes, sendByteCounts, recvBytes, recvByteCounts); err != nil {
		log.Println("sihsort: run", cfg.RunID, "rank", c.Rank(), "alltoallv payload failed:", err)
		return nil, fmt.Errorf("sihsort: alltoallv payload: %w", err)
	}
	vOut := decodeAll(cfg.ElemCodec, recvBytes)

	// final local sort (spec.md §4.2: adapter invoked twice)
	sortElems(cfg, order, vOut)

	if cfg.Stats != nil {
		cfg.Stats.Splitters = append([]K(nil), splitters...)
		cfg.Stats.Counts = targetCounts
	}

	return vOut, nil
}
