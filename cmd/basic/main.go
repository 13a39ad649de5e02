/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

// cmd/basic is a single-machine interactive harness for sihsort: every
// typed line becomes one rank's local shard, "go" runs the sort over
// whatever shards have been entered so far and prints every rank's
// result plus the splitters chosen, and "reset" starts over. It exists
// to poke at the algorithm by hand, the same role scm.Repl plays for
// its own query language.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/anicusan/sihsort"
	"github.com/anicusan/sihsort/comm"
)

const newprompt = "\033[32msihsort>\033[0m "
const resultprompt = "\033[31m=\033[0m "

func main() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".sihsort-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	fmt.Println("sihsort basic harness - type integers separated by spaces to add a rank's shard,")
	fmt.Println("\"go\" to sort, \"reverse\" to toggle descending order, \"reset\" to clear, Ctrl-D to quit.")

	var shards [][]int
	reverse := false

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Println("panic:", r, string(debug.Stack()))
				}
			}()
			switch line {
			case "go":
				runOnce(shards, reverse)
			case "reset":
				shards = nil
				fmt.Println(resultprompt, "cleared")
			case "reverse":
				reverse = !reverse
				fmt.Println(resultprompt, "reverse =", reverse)
			default:
				shard, err := parseShard(line)
				if err != nil {
					fmt.Println("error:", err)
					return
				}
				shards = append(shards, shard)
				fmt.Printf("%s rank %d now holds %v\n", resultprompt, len(shards)-1, shard)
			}
		}()
	}
}

func parseShard(line string) ([]int, error) {
	fields := strings.Fields(line)
	shard := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", f, err)
		}
		shard[i] = v
	}
	return shard, nil
}

func runOnce(shards [][]int, reverse bool) {
	if len(shards) == 0 {
		fmt.Println(resultprompt, "no ranks entered yet")
		return
	}
	p := len(shards)
	order := sihsort.Order[int, int]{
		By:      func(v int) int { return v },
		Less:    func(a, b int) bool { return a < b },
		Reverse: reverse,
	}
	results := make([][]int, p)
	stats := make([]*sihsort.Stats[int], p)
	runID := comm.NewRunID()

	err := comm.Run(context.Background(), p, func(ctx context.Context, rank int, c comm.Comm) error {
		stats[rank] = &sihsort.Stats[int]{}
		cfg := sihsort.Config[int, int]{
			Comm:      c,
			KeyCodec:  sihsort.Int64Codec(),
			ElemCodec: sihsort.Int64Codec(),
			Stats:     stats[rank],
			RunID:     runID,
		}
		v := append([]int(nil), shards[rank]...)
		if len(v) == 0 {
			return fmt.Errorf("rank %d has an empty shard", rank)
		}
		out, err := sihsort.Sort(ctx, v, order, cfg)
		if err != nil {
			return err
		}
		results[rank] = out
		return nil
	})
	if err != nil {
		fmt.Println("sort failed:", err)
		return
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "run %s\n", runID)
	for rank, r := range results {
		fmt.Fprintf(&b, "rank %d: %v (count %d)\n", rank, r, len(r))
	}
	if stats[0] != nil {
		fmt.Fprintf(&b, "splitters: %v\n", stats[0].Splitters)
		fmt.Fprintf(&b, "final counts: %v\n", stats[0].Counts)
	}
	fmt.Print(resultprompt, " ")
	fmt.Print(b.String())
}
