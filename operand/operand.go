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

// Package operand implements the tagged-union operand model (Const,
// Slice, Operand) of spec.md §3. The tag of each variant is a true
// witness of its element type: there is no union aliasing across types
// at this layer, only at the unsafe byte-reinterpretation boundary in
// internal/simd.
package operand

import (
	"fmt"

	"github.com/SnellerInc/vecker/scalar"
)

// Const is a single scalar value of one of the thirteen recognized types.
type Const struct {
	ty  scalar.Ty
	u64 uint64   // Bool, U8..U64, I8..I64 payload (sign/zero-extended)
	f64 float64  // F32, F64 payload
	lo  uint64   // U128/I128 low 64 bits
	hi  uint64   // U128/I128 high 64 bits
}

func (c Const) Ty() scalar.Ty { return c.ty }

func ConstBool(v bool) Const {
	u := uint64(0)
	if v {
		u = 1
	}
	return Const{ty: scalar.Bool, u64: u}
}

func ConstU8(v uint8) Const   { return Const{ty: scalar.U8, u64: uint64(v)} }
func ConstU16(v uint16) Const { return Const{ty: scalar.U16, u64: uint64(v)} }
func ConstU32(v uint32) Const { return Const{ty: scalar.U32, u64: uint64(v)} }
func ConstU64(v uint64) Const { return Const{ty: scalar.U64, u64: v} }
func ConstU128(lo, hi uint64) Const { return Const{ty: scalar.U128, lo: lo, hi: hi} }
func ConstI8(v int8) Const   { return Const{ty: scalar.I8, u64: uint64(v)} }
func ConstI16(v int16) Const { return Const{ty: scalar.I16, u64: uint64(v)} }
func ConstI32(v int32) Const { return Const{ty: scalar.I32, u64: uint64(v)} }
func ConstI64(v int64) Const { return Const{ty: scalar.I64, u64: uint64(v)} }
func ConstI128(lo uint64, hi int64) Const {
	return Const{ty: scalar.I128, lo: lo, hi: uint64(hi)}
}
func ConstF32(v float32) Const { return Const{ty: scalar.F32, f64: float64(v)} }
func ConstF64(v float64) Const { return Const{ty: scalar.F64, f64: v} }

func (c Const) Bool() bool    { return c.u64 != 0 }
func (c Const) U8() uint8     { return uint8(c.u64) }
func (c Const) U16() uint16   { return uint16(c.u64) }
func (c Const) U32() uint32   { return uint32(c.u64) }
func (c Const) U64() uint64   { return c.u64 }
func (c Const) U128() (lo, hi uint64) { return c.lo, c.hi }
func (c Const) I8() int8      { return int8(c.u64) }
func (c Const) I16() int16    { return int16(c.u64) }
func (c Const) I32() int32    { return int32(c.u64) }
func (c Const) I64() int64    { return int64(c.u64) }
func (c Const) I128() (lo uint64, hi int64) { return c.lo, int64(c.hi) }
func (c Const) F32() float32  { return float32(c.f64) }
func (c Const) F64() float64  { return c.f64 }

func (c Const) String() string {
	switch c.ty {
	case scalar.Bool:
		return fmt.Sprintf("const Bool %v", c.Bool())
	case scalar.F32, scalar.F64:
		return fmt.Sprintf("const %s %v", c.ty, c.f64)
	case scalar.U128:
		return fmt.Sprintf("const U128 {%#x,%#x}", c.lo, c.hi)
	case scalar.I128:
		return fmt.Sprintf("const I128 {%#x,%#x}", c.lo, c.hi)
	default:
		return fmt.Sprintf("const %s %v", c.ty, int64(c.u64))
	}
}

// Slice is a borrowed, homogeneous, typed sequence. Exactly one of the
// typed fields is populated; which one is determined by ty.
type Slice struct {
	ty   scalar.Ty
	bool8 []uint8 // Bool stored 1 byte/lane, matching spec.md §3
	u8   []uint8
	u16  []uint16
	u32  []uint32
	u64  []uint64
	u128 [][2]uint64
	i8   []int8
	i16  []int16
	i32  []int32
	i64  []int64
	i128 [][2]uint64
	f32  []float32
	f64  []float64
}

func (s Slice) Ty() scalar.Ty { return s.ty }

func SliceBool(v []uint8) Slice  { return Slice{ty: scalar.Bool, bool8: v} }
func SliceU8(v []uint8) Slice    { return Slice{ty: scalar.U8, u8: v} }
func SliceU16(v []uint16) Slice  { return Slice{ty: scalar.U16, u16: v} }
func SliceU32(v []uint32) Slice  { return Slice{ty: scalar.U32, u32: v} }
func SliceU64(v []uint64) Slice  { return Slice{ty: scalar.U64, u64: v} }
func SliceU128(v [][2]uint64) Slice { return Slice{ty: scalar.U128, u128: v} }
func SliceI8(v []int8) Slice    { return Slice{ty: scalar.I8, i8: v} }
func SliceI16(v []int16) Slice  { return Slice{ty: scalar.I16, i16: v} }
func SliceI32(v []int32) Slice  { return Slice{ty: scalar.I32, i32: v} }
func SliceI64(v []int64) Slice  { return Slice{ty: scalar.I64, i64: v} }
func SliceI128(v [][2]uint64) Slice { return Slice{ty: scalar.I128, i128: v} }
func SliceF32(v []float32) Slice { return Slice{ty: scalar.F32, f32: v} }
func SliceF64(v []float64) Slice { return Slice{ty: scalar.F64, f64: v} }

func (s Slice) Bool() []uint8   { return s.bool8 }
func (s Slice) U8() []uint8     { return s.u8 }
func (s Slice) U16() []uint16   { return s.u16 }
func (s Slice) U32() []uint32   { return s.u32 }
func (s Slice) U64() []uint64   { return s.u64 }
func (s Slice) U128() [][2]uint64 { return s.u128 }
func (s Slice) I8() []int8      { return s.i8 }
func (s Slice) I16() []int16    { return s.i16 }
func (s Slice) I32() []int32    { return s.i32 }
func (s Slice) I64() []int64    { return s.i64 }
func (s Slice) I128() [][2]uint64 { return s.i128 }
func (s Slice) F32() []float32  { return s.f32 }
func (s Slice) F64() []float64  { return s.f64 }

// Len returns the element count of the populated variant.
func (s Slice) Len() int {
	switch s.ty {
	case scalar.Bool:
		return len(s.bool8)
	case scalar.U8:
		return len(s.u8)
	case scalar.U16:
		return len(s.u16)
	case scalar.U32:
		return len(s.u32)
	case scalar.U64:
		return len(s.u64)
	case scalar.U128:
		return len(s.u128)
	case scalar.I8:
		return len(s.i8)
	case scalar.I16:
		return len(s.i16)
	case scalar.I32:
		return len(s.i32)
	case scalar.I64:
		return len(s.i64)
	case scalar.I128:
		return len(s.i128)
	case scalar.F32:
		return len(s.f32)
	case scalar.F64:
		return len(s.f64)
	default:
		panic(fmt.Sprintf("operand: invalid Ty %d", s.ty))
	}
}

// Shape classifies the (lhs, rhs) pair of a binary operation into one
// of the four cases the router dispatches on (spec.md §4.1 step 3).
type Shape uint8

const (
	SliceSlice Shape = iota
	SliceConst
	ConstSlice
	ConstConst
)

func (s Shape) String() string {
	switch s {
	case SliceSlice:
		return "slice_slice"
	case SliceConst:
		return "slice_const"
	case ConstSlice:
		return "const_slice"
	case ConstConst:
		return "const_const"
	default:
		return "invalid_shape"
	}
}

// Operand is OperandConst(Const) | OperandSlice(Slice).
type Operand struct {
	isSlice bool
	c       Const
	s       Slice
}

func FromConst(c Const) Operand { return Operand{isSlice: false, c: c} }
func FromSlice(s Slice) Operand { return Operand{isSlice: true, s: s} }

func (o Operand) IsSlice() bool { return o.isSlice }
func (o Operand) IsConst() bool { return !o.isSlice }

func (o Operand) Ty() scalar.Ty {
	if o.isSlice {
		return o.s.Ty()
	}
	return o.c.Ty()
}

// AsConst returns the operand's Const payload; it panics if o is a slice.
func (o Operand) AsConst() Const {
	if o.isSlice {
		panic("operand: AsConst on a slice operand")
	}
	return o.c
}

// AsSlice returns the operand's Slice payload; it panics if o is a const.
func (o Operand) AsSlice() Slice {
	if !o.isSlice {
		panic("operand: AsSlice on a const operand")
	}
	return o.s
}

// Len returns the operand's slice length, or -1 for a constant.
func (o Operand) Len() int {
	if !o.isSlice {
		return -1
	}
	return o.s.Len()
}

func (o Operand) String() string {
	if o.isSlice {
		return fmt.Sprintf("slice %s[%d]", o.Ty(), o.s.Len())
	}
	return o.c.String()
}

// ShapeOf classifies an (lhs, rhs) pair into its dispatch Shape.
func ShapeOf(lhs, rhs Operand) Shape {
	switch {
	case lhs.IsSlice() && rhs.IsSlice():
		return SliceSlice
	case lhs.IsSlice() && rhs.IsConst():
		return SliceConst
	case lhs.IsConst() && rhs.IsSlice():
		return ConstSlice
	default:
		return ConstConst
	}
}
