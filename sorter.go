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
	"slices"

	"github.com/google/btree"
)

// Algorithm is the local-sorter-adapter dispatch tag (spec.md §4.2b),
// the same string-tag dispatch shape storage/settings.go's
// DefaultEngine uses, reused here for the "algorithm tag" resolution
// branch.
type Algorithm int

const (
	// AlgorithmDefault sorts with slices.SortFunc - a plain comparison
	// sort with no auxiliary structure, the natural choice when there
	// is no data structure to maintain between calls.
	AlgorithmDefault Algorithm = iota
	// AlgorithmBTree sorts by inserting every element into a
	// github.com/google/btree.BTreeG and flattening it back out in
	// order, grounded on storage/index.go's own use of BTreeG for the
	// teacher's delta index.
	AlgorithmBTree
)

func algoSortWith[T any](v []T, less func(a, b T) bool, algo Algorithm) {
	switch algo {
	case AlgorithmBTree:
		btreeSort(v, less)
	default:
		defaultSort(v, less)
	}
}

func defaultSort[T any](v []T, less func(a, b T) bool) {
	slices.SortFunc(v, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
}

// tagged pairs a value with its original index so a BTreeG never
// considers two distinct elements equal - btree.ReplaceOrInsert
// replaces (drops) whichever item already occupies an "equal" key,
// which would silently collapse duplicate keys out of the sort.
type tagged[T any] struct {
	v   T
	idx int
}

func btreeSort[T any](v []T, less func(a, b T) bool) {
	taggedLess := func(a, b tagged[T]) bool {
		if less(a.v, b.v) {
			return true
		}
		if less(b.v, a.v) {
			return false
		}
		return a.idx < b.idx
	}
	tr := btree.NewG[tagged[T]](32, taggedLess)
	for i, item := range v {
		tr.ReplaceOrInsert(tagged[T]{v: item, idx: i})
	}
	i := 0
	tr.Ascend(func(item tagged[T]) bool {
		v[i] = item.v
		i++
		return true
	})
}

// sortElems applies the fully-resolved local-sorter adapter (spec.md
// §4.2) to an element slice: a user function, if configured, is
// invoked as-is; otherwise the configured (or default) Algorithm tag
// dispatches to one of the two builtin strategies above.
func sortElems[E, K any](cfg Config[E, K], order Order[E, K], v []E) {
	if cfg.SortFunc != nil {
		cfg.SortFunc(v, order.ElemLess)
		return
	}
	algoSortWith(v, order.ElemLess, cfg.Algorithm)
}

// sortKeys applies the same algorithm-tag dispatch used by sortElems
// to a slice of bare keys - used only for sorting the gathered sample
// vector on root (spec.md §4.4), which is never user-sortable since
// the configured SortFunc's signature is defined over elements, not
// keys.
func sortKeys[K any](v []K, less func(a, b K) bool, algo Algorithm) {
	algoSortWith(v, less, algo)
}
