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

// Conversion kernels (C7, spec.md §4.4): for every ordered pair (S, D)
// of scalar types there is a cast from S to D. Identity casts never
// reach this file at all — the router (vec.promoteOperand) recognizes
// src_ty == dst_ty and returns the input borrow unchanged, per spec.md
// "Identity (S == D): zero-copy." Everything below handles the
// remaining non-identity pairs:
//
//   - numeric -> numeric: one generic function, valid for any pair of
//     the ten native Go numeric element types (Go permits T(v)
//     conversions between type-parameterized numeric types directly).
//   - bool -> numeric / numeric -> bool: compare-with-zero / select-0-or-1.
//   - anything -> U128/I128 and back: the cases that need sign extension
//     or float rounding go through math/big (i128.go), since Go has no
//     128-bit integer to convert through directly; the rest copy
//     64-bit words directly.
package kernel

import "math/big"

// ConvertSlice casts src into dst elementwise, dst[i] = D(src[i]),
// using the platform's usual truncating/rounding numeric conversion
// rules (no saturation), per spec.md §4.4.
func ConvertSlice[S, D Numeric](dst []D, src []S) {
	for i := range src {
		dst[i] = D(src[i])
	}
}

func ConvertConst[S, D Numeric](v S) D { return D(v) }

// BoolToNumericSlice and NumericToBoolSlice implement the bool<->numeric
// casts: false->0/true->1, and zero->false/nonzero->true.
func BoolToNumericSlice[D Numeric](dst []D, src []uint8) {
	for i, v := range src {
		if v != 0 {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

func BoolToNumericConst[D Numeric](v uint8) D {
	if v != 0 {
		return 1
	}
	return 0
}

func NumericToBoolSlice[S Numeric](dst []uint8, src []S) {
	for i, v := range src {
		dst[i] = b2u8(v != 0)
	}
}

func NumericToBoolConst[S Numeric](v S) uint8 { return b2u8(v != 0) }

// --- 128-bit conversions: routed through math/big (see i128.go). ---

func SignedToI128Slice[T SignedInt](dst []I128, src []T) {
	for i, v := range src {
		dst[i] = bigToI128(big.NewInt(int64(v)))
	}
}
func SignedToI128Const[T SignedInt](v T) I128 { return bigToI128(big.NewInt(int64(v))) }

func UnsignedToU128Slice[T UnsignedInt](dst []U128, src []T) {
	for i, v := range src {
		dst[i] = U128{uint64(v), 0}
	}
}
func UnsignedToU128Const[T UnsignedInt](v T) U128 { return U128{uint64(v), 0} }

func UnsignedToI128Slice[T UnsignedInt](dst []I128, src []T) {
	for i, v := range src {
		dst[i] = I128{uint64(v), 0}
	}
}
func UnsignedToI128Const[T UnsignedInt](v T) I128 { return I128{uint64(v), 0} }

func SignedToU128Slice[T SignedInt](dst []U128, src []T) {
	for i, v := range src {
		dst[i] = bigToU128(big.NewInt(int64(v)))
	}
}
func SignedToU128Const[T SignedInt](v T) U128 { return bigToU128(big.NewInt(int64(v))) }

func FloatToI128Slice[T Float](dst []I128, src []T) {
	for i, v := range src {
		bi, _ := big.NewFloat(float64(v)).Int(nil)
		dst[i] = bigToI128(bi)
	}
}
func FloatToI128Const[T Float](v T) I128 {
	bi, _ := big.NewFloat(float64(v)).Int(nil)
	return bigToI128(bi)
}

func FloatToU128Slice[T Float](dst []U128, src []T) {
	for i, v := range src {
		bi, _ := big.NewFloat(float64(v)).Int(nil)
		dst[i] = bigToU128(bi)
	}
}
func FloatToU128Const[T Float](v T) U128 {
	bi, _ := big.NewFloat(float64(v)).Int(nil)
	return bigToU128(bi)
}

func I128ToSignedSlice[T SignedInt](dst []T, src []I128) {
	for i, v := range src {
		dst[i] = T(i128ToBig(v).Int64())
	}
}
func I128ToSignedConst[T SignedInt](v I128) T { return T(i128ToBig(v).Int64()) }

func I128ToUnsignedSlice[T UnsignedInt](dst []T, src []I128) {
	for i, v := range src {
		dst[i] = T(v[0])
	}
}
func I128ToUnsignedConst[T UnsignedInt](v I128) T { return T(v[0]) }

func U128ToSignedSlice[T SignedInt](dst []T, src []U128) {
	for i, v := range src {
		dst[i] = T(v[0])
	}
}
func U128ToSignedConst[T SignedInt](v U128) T { return T(v[0]) }

func U128ToUnsignedSlice[T UnsignedInt](dst []T, src []U128) {
	for i, v := range src {
		dst[i] = T(v[0])
	}
}
func U128ToUnsignedConst[T UnsignedInt](v U128) T { return T(v[0]) }

func I128ToFloatSlice[T Float](dst []T, src []I128) {
	for i, v := range src {
		f := new(big.Float).SetInt(i128ToBig(v))
		r, _ := f.Float64()
		dst[i] = T(r)
	}
}
func I128ToFloatConst[T Float](v I128) T {
	f := new(big.Float).SetInt(i128ToBig(v))
	r, _ := f.Float64()
	return T(r)
}

func U128ToFloatSlice[T Float](dst []T, src []U128) {
	for i, v := range src {
		f := new(big.Float).SetInt(u128ToBig(v))
		r, _ := f.Float64()
		dst[i] = T(r)
	}
}
func U128ToFloatConst[T Float](v U128) T {
	f := new(big.Float).SetInt(u128ToBig(v))
	r, _ := f.Float64()
	return T(r)
}

func U128ToI128Slice(dst []I128, src []U128) {
	for i, v := range src {
		dst[i] = v
	}
}
func I128ToU128Slice(dst []U128, src []I128) {
	for i, v := range src {
		dst[i] = v
	}
}

func BoolToU128Slice(dst []U128, src []uint8) {
	for i, v := range src {
		dst[i] = U128{uint64(b2u8(v != 0)), 0}
	}
}
func BoolToU128Const(v uint8) U128 { return U128{uint64(b2u8(v != 0)), 0} }
func BoolToI128Slice(dst []I128, src []uint8) {
	for i, v := range src {
		dst[i] = I128{uint64(b2u8(v != 0)), 0}
	}
}
func BoolToI128Const(v uint8) I128 { return I128{uint64(b2u8(v != 0)), 0} }

func U128ToBoolSlice(dst []uint8, src []U128) {
	for i, v := range src {
		dst[i] = b2u8(!IsZero128(v))
	}
}
func U128ToBoolConst(v U128) uint8 { return b2u8(!IsZero128(v)) }
func I128ToBoolSlice(dst []uint8, src []I128) {
	for i, v := range src {
		dst[i] = b2u8(!IsZero128(v))
	}
}
func I128ToBoolConst(v I128) uint8 { return b2u8(!IsZero128(v)) }
