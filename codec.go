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
	"encoding/binary"
	"math"

	"github.com/shopspring/decimal"
)

// Codec turns a value of type T into a fixed number of bytes and back.
// Both K and E must be communicable in this sense (spec.md §3: "K must
// be communicable (serializable as a fixed-size value across
// processes)") - the driver moves samples and splitters (K) and, at
// redistribution time, full elements (E) across Comm, which for a
// generic Go type means the caller names exactly how many bytes that
// type takes and how to read/write them.
type Codec[T any] struct {
	Size   int
	Encode func(v T, dst []byte)
	Decode func(src []byte) T
}

func encodeAll[T any](c Codec[T], v []T) []byte {
	out := make([]byte, len(v)*c.Size)
	for i, x := range v {
		c.Encode(x, out[i*c.Size:(i+1)*c.Size])
	}
	return out
}

func decodeAll[T any](c Codec[T], buf []byte) []T {
	n := len(buf) / c.Size
	out := make([]T, n)
	for i := range out {
		out[i] = c.Decode(buf[i*c.Size : (i+1)*c.Size])
	}
	return out
}

// Int64Codec encodes the Go int as a fixed 8-byte little-endian value,
// independent of the host's native int width.
func Int64Codec() Codec[int] {
	return Codec[int]{
		Size:   8,
		Encode: func(v int, dst []byte) { binary.LittleEndian.PutUint64(dst, uint64(int64(v))) },
		Decode: func(src []byte) int { return int(int64(binary.LittleEndian.Uint64(src))) },
	}
}

// Int64ValueCodec encodes a Go int64 directly as 8 little-endian
// bytes, for callers whose key or element type is already int64 rather
// than the platform int Int64Codec targets.
func Int64ValueCodec() Codec[int64] {
	return Codec[int64]{
		Size:   8,
		Encode: func(v int64, dst []byte) { binary.LittleEndian.PutUint64(dst, uint64(v)) },
		Decode: func(src []byte) int64 { return int64(binary.LittleEndian.Uint64(src)) },
	}
}

// Float64Codec encodes float64 via its IEEE-754 bit pattern.
func Float64Codec() Codec[float64] {
	return Codec[float64]{
		Size:   8,
		Encode: func(v float64, dst []byte) { binary.LittleEndian.PutUint64(dst, math.Float64bits(v)) },
		Decode: func(src []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(src)) },
	}
}

// StringCodec encodes a string into a fixed-width byte field of width
// n, truncating or zero-padding as needed. Intended for short, bounded
// keys (e.g. fixed-length identifiers); not suitable for arbitrary
// variable-length text.
func StringCodec(n int) Codec[string] {
	return Codec[string]{
		Size: n,
		Encode: func(v string, dst []byte) {
			copy(dst, v)
			for i := len(v); i < n; i++ {
				dst[i] = 0
			}
		},
		Decode: func(src []byte) string {
			i := 0
			for i < len(src) && src[i] != 0 {
				i++
			}
			return string(src[:i])
		},
	}
}

// DecimalCodec encodes a github.com/shopspring/decimal.Decimal into a
// fixed 16-byte field: an int64 coefficient and an int32 exponent
// (padded), matching decimal.Decimal's own (value *big.Int, exp int32)
// shape for magnitudes that fit in 63 bits. Decimals whose unscaled
// coefficient overflows int64 are out of scope for this fixed-width
// wire form - split the scale further if that bound is hit.
func DecimalCodec() Codec[decimal.Decimal] {
	return Codec[decimal.Decimal]{
		Size: 16,
		Encode: func(v decimal.Decimal, dst []byte) {
			binary.LittleEndian.PutUint64(dst[0:8], uint64(v.CoefficientInt64()))
			binary.LittleEndian.PutUint64(dst[8:16], uint64(int64(v.Exponent())))
		},
		Decode: func(src []byte) decimal.Decimal {
			coef := int64(binary.LittleEndian.Uint64(src[0:8]))
			exp := int32(int64(binary.LittleEndian.Uint64(src[8:16])))
			return decimal.New(coef, exp)
		},
	}
}
