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

// b2u8 converts a Go bool into the one-byte-per-lane encoding the
// router's predicate shapes write, matching spec.md §4.2: "selects 1u8
// or 0u8 lane-wise."
func b2u8(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func LtSlice[T Numeric](dst []uint8, a, b []T) {
	for i := range a {
		dst[i] = b2u8(a[i] < b[i])
	}
}
func LtConst[T Numeric](a, b T) bool { return a < b }

func LeSlice[T Numeric](dst []uint8, a, b []T) {
	for i := range a {
		dst[i] = b2u8(a[i] <= b[i])
	}
}
func LeConst[T Numeric](a, b T) bool { return a <= b }

func EqSlice[T Numeric](dst []uint8, a, b []T) {
	for i := range a {
		dst[i] = b2u8(a[i] == b[i])
	}
}
func EqConst[T Numeric](a, b T) bool { return a == b }

func NeSlice[T Numeric](dst []uint8, a, b []T) {
	for i := range a {
		dst[i] = b2u8(a[i] != b[i])
	}
}
func NeConst[T Numeric](a, b T) bool { return a != b }

func GeSlice[T Numeric](dst []uint8, a, b []T) {
	for i := range a {
		dst[i] = b2u8(a[i] >= b[i])
	}
}
func GeConst[T Numeric](a, b T) bool { return a >= b }

func GtSlice[T Numeric](dst []uint8, a, b []T) {
	for i := range a {
		dst[i] = b2u8(a[i] > b[i])
	}
}
func GtConst[T Numeric](a, b T) bool { return a > b }

// IsNaNSlice, IsInfSlice and IsFinSlice implement the float-only
// unary predicates (spec.md §4.3).
func IsNaNSlice[T Float](dst []uint8, a []T) {
	for i := range a {
		dst[i] = b2u8(math.IsNaN(float64(a[i])))
	}
}
func IsNaNConst[T Float](a T) bool { return math.IsNaN(float64(a)) }

func IsInfSlice[T Float](dst []uint8, a []T) {
	for i := range a {
		dst[i] = b2u8(math.IsInf(float64(a[i]), 0))
	}
}
func IsInfConst[T Float](a T) bool { return math.IsInf(float64(a), 0) }

func IsFinSlice[T Float](dst []uint8, a []T) {
	for i := range a {
		v := float64(a[i])
		dst[i] = b2u8(!math.IsNaN(v) && !math.IsInf(v, 0))
	}
}
func IsFinConst[T Float](a T) bool {
	v := float64(a)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
