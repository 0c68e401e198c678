// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package kernel

import "math"

// Integer is the subset of Numeric with bitwise-operator support
// (BitAnd/BitOr/BitXor/BitNot require this rather than Numeric, since
// Go rejects bitwise operators on a type parameter whose constraint's
// type set includes a float type).
type Integer interface {
	SignedInt | UnsignedInt
}

// SignedInt is the signed-integer subset of Integer — the intersection
// of Integer and Signed, needed wherever a kernel body (Neg, BitNot)
// must be callable on the same type parameter.
type SignedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInt is the unsigned-integer subset of Integer.
type UnsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the subset of Numeric with transcendental-function support.
type Float interface {
	~float32 | ~float64
}

// AddSlice computes dst[i] = a[i] + b[i] for every lane in one chunk.
func AddSlice[T Numeric](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func AddConst[T Numeric](a, b T) T { return a + b }

func SubSlice[T Numeric](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func SubConst[T Numeric](a, b T) T { return a - b }

func MulSlice[T Numeric](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func MulConst[T Numeric](a, b T) T { return a * b }

// DivSlice computes dst[i] = a[i] / b[i]. Integer division by zero
// must be excluded by the caller (vec's checkDivisor) before this runs;
// floating-point division by zero follows IEEE-754 (±Inf or NaN).
func DivSlice[T Numeric](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func DivConst[T Numeric](a, b T) T { return a / b }

func RemIntegerSlice[T Integer](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] % b[i]
	}
}

func RemIntegerConst[T Integer](a, b T) T { return a % b }

func RemFloatSlice[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = T(math.Mod(float64(a[i]), float64(b[i])))
	}
}

func RemFloatConst[T Float](a, b T) T { return T(math.Mod(float64(a), float64(b))) }

func MinSlice[T Numeric](dst, a, b []T) {
	for i := range dst {
		if a[i] < b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

func MinConst[T Numeric](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func MaxSlice[T Numeric](dst, a, b []T) {
	for i := range dst {
		if a[i] > b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

func MaxConst[T Numeric](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func PowSlice[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = T(math.Pow(float64(a[i]), float64(b[i])))
	}
}

func PowConst[T Float](a, b T) T { return T(math.Pow(float64(a), float64(b))) }

func BitAndSlice[T Integer](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func BitAndConst[T Integer](a, b T) T { return a & b }

func BitOrSlice[T Integer](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func BitOrConst[T Integer](a, b T) T { return a | b }

func BitXorSlice[T Integer](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func BitXorConst[T Integer](a, b T) T { return a ^ b }

// ContainsZero reports whether any element of s is the zero value.
// The router does not call it: its own divisor pre-scan (vec's
// checkDivisor) also covers the const and 128-bit shapes.
func ContainsZero[T Integer](s []T) bool {
	for _, v := range s {
		if v == 0 {
			return true
		}
	}
	return false
}
