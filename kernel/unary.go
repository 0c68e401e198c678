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

// NegSlice computes dst[i] = -a[i] for signed integers and floats.
func NegSlice[T Signed](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func NegConst[T Signed](a T) T { return -a }

func BitNotSlice[T Integer](dst, a []T) {
	for i := range dst {
		dst[i] = ^a[i]
	}
}

func BitNotConst[T Integer](a T) T { return ^a }

func AbsSlice[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Abs(float64(a[i])))
	}
}

func AbsConst[T Float](a T) T { return T(math.Abs(float64(a))) }

func LnSlice[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Log(float64(a[i])))
	}
}

func LnConst[T Float](a T) T { return T(math.Log(float64(a))) }

func ExpSlice[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Exp(float64(a[i])))
	}
}

func ExpConst[T Float](a T) T { return T(math.Exp(float64(a))) }

func SqrtSlice[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Sqrt(float64(a[i])))
	}
}

func SqrtConst[T Float](a T) T { return T(math.Sqrt(float64(a))) }

func SinSlice[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Sin(float64(a[i])))
	}
}

func SinConst[T Float](a T) T { return T(math.Sin(float64(a))) }

func CosSlice[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Cos(float64(a[i])))
	}
}

func CosConst[T Float](a T) T { return T(math.Cos(float64(a))) }
