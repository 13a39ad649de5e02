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

// Package numeric carries the Numeric-K capability that the splitter
// selector dispatches on (spec.md §9, design notes: "two
// specializations of the splitter selector, chosen at the type level").
// A Key type that has no Ops registered falls back to nearest-sample
// selection; a Key type with Ops gets linear interpolation.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/shopspring/decimal"
)

// Ordered is the minimum capability every Key must have: a total
// order, so searchsortedlast and sample sorting are always possible.
type Ordered = constraints.Ordered

// Ops is the Numeric-K capability (spec.md §3): arithmetic and
// float<->integer coercion expressed as a struct of functions rather
// than methods on K itself, since several supported Key types (the
// Go builtin numeric types) cannot carry methods.
type Ops[K any] struct {
	// Add and Sub implement x1-x0 and x0+delta for the interpolation
	// formula x0 + (p-y0)/(y1-y0) * (x1-x0).
	Add func(a, b K) K
	Sub func(a, b K) K
	// Scale multiplies a K delta by a [0,1] fraction, the
	// (p-y0)/(y1-y0) term of the interpolation formula. For integer and
	// fixed-point keys the product is rounded up to the delta's own
	// granularity, so x0 + Scale(...) is already the ceil-rounded
	// interpolation.
	Scale func(delta K, frac float64) K
	// Ceil rounds a K up to its representable granularity: a no-op for
	// floating keys, integer ceil for integer keys, and rounding up at
	// the value's own exponent for fixed-point keys (spec.md §4.7.3).
	Ceil func(K) K
}

// Builtin returns Ops for any ordered Go numeric type, grounded
// directly on golang.org/x/exp/constraints' Integer|Float union.
func Builtin[K constraints.Integer | constraints.Float]() Ops[K] {
	var zero K
	isFloatKind := isFloatType(zero)
	return Ops[K]{
		Add: func(a, b K) K { return a + b },
		Sub: func(a, b K) K { return a - b },
		Scale: func(delta K, frac float64) K {
			s := float64(delta) * frac
			if !isFloatKind {
				s = math.Ceil(s)
			}
			return K(s)
		},
		Ceil: func(v K) K {
			if isFloatKind {
				return v
			}
			f := float64(v)
			i := K(f)
			if float64(i) < f {
				i++
			}
			return i
		},
	}
}

func isFloatType[K constraints.Integer | constraints.Float](zero K) bool {
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// Decimal returns Ops for github.com/shopspring/decimal.Decimal, the
// fixed-point Numeric K: Scale rounds the scaled step up at the delta's
// own exponent and Ceil rounds up at the operand's own exponent, so
// interpolated splitters stay representable at the keys' precision
// instead of silently gaining digits.
func Decimal() Ops[decimal.Decimal] {
	return Ops[decimal.Decimal]{
		Add: func(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) },
		Sub: func(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) },
		Scale: func(delta decimal.Decimal, frac float64) decimal.Decimal {
			return delta.Mul(decimal.NewFromFloat(frac)).RoundCeil(-delta.Exponent())
		},
		Ceil: func(v decimal.Decimal) decimal.Decimal {
			return v.RoundCeil(-v.Exponent())
		},
	}
}
