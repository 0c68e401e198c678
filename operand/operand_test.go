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

package operand

import (
	"testing"

	"github.com/SnellerInc/vecker/scalar"
)

func TestConstRoundTrip(t *testing.T) {
	if v := ConstBool(true).Bool(); v != true {
		t.Errorf("ConstBool(true).Bool() = %v", v)
	}
	if v := ConstU8(200).U8(); v != 200 {
		t.Errorf("ConstU8(200).U8() = %v", v)
	}
	if v := ConstI64(-12345).I64(); v != -12345 {
		t.Errorf("ConstI64(-12345).I64() = %v", v)
	}
	if v := ConstF32(1.5).F32(); v != 1.5 {
		t.Errorf("ConstF32(1.5).F32() = %v", v)
	}
	if v := ConstF64(2.25).F64(); v != 2.25 {
		t.Errorf("ConstF64(2.25).F64() = %v", v)
	}
	lo, hi := ConstU128(1, 2).U128()
	if lo != 1 || hi != 2 {
		t.Errorf("ConstU128(1, 2).U128() = (%d, %d)", lo, hi)
	}
	lo2, hi2 := ConstI128(3, -4).I128()
	if lo2 != 3 || hi2 != -4 {
		t.Errorf("ConstI128(3, -4).I128() = (%d, %d)", lo2, hi2)
	}
}

func TestConstTy(t *testing.T) {
	cases := []struct {
		c  Const
		ty scalar.Ty
	}{
		{ConstBool(false), scalar.Bool},
		{ConstU8(0), scalar.U8},
		{ConstU128(0, 0), scalar.U128},
		{ConstI128(0, 0), scalar.I128},
		{ConstF64(0), scalar.F64},
	}
	for _, c := range cases {
		if got := c.c.Ty(); got != c.ty {
			t.Errorf("Ty() = %s, want %s", got, c.ty)
		}
	}
}

func TestSliceLen(t *testing.T) {
	cases := []struct {
		s    Slice
		want int
	}{
		{SliceBool([]uint8{1, 0, 1}), 3},
		{SliceU8([]uint8{1, 2}), 2},
		{SliceU128([][2]uint64{{1, 2}, {3, 4}, {5, 6}}), 3},
		{SliceF64(nil), 0},
	}
	for _, c := range cases {
		if got := c.s.Len(); got != c.want {
			t.Errorf("Len() = %d, want %d", got, c.want)
		}
	}
}

func TestOperandAccessors(t *testing.T) {
	s := FromSlice(SliceU32([]uint32{1, 2, 3}))
	if !s.IsSlice() || s.IsConst() {
		t.Error("FromSlice operand misclassified")
	}
	if s.Ty() != scalar.U32 {
		t.Errorf("Ty() = %s, want U32", s.Ty())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	c := FromConst(ConstI16(-7))
	if !c.IsConst() || c.IsSlice() {
		t.Error("FromConst operand misclassified")
	}
	if c.Len() != -1 {
		t.Errorf("Len() on const = %d, want -1", c.Len())
	}
}

func TestAsConstAsSlicePanic(t *testing.T) {
	s := FromSlice(SliceU8([]uint8{1}))
	func() {
		defer func() {
			if recover() == nil {
				t.Error("AsConst on a slice operand did not panic")
			}
		}()
		s.AsConst()
	}()

	c := FromConst(ConstU8(1))
	func() {
		defer func() {
			if recover() == nil {
				t.Error("AsSlice on a const operand did not panic")
			}
		}()
		c.AsSlice()
	}()
}

func TestShapeOf(t *testing.T) {
	sliceOp := FromSlice(SliceU8([]uint8{1, 2}))
	constOp := FromConst(ConstU8(1))

	cases := []struct {
		lhs, rhs Operand
		want     Shape
	}{
		{sliceOp, sliceOp, SliceSlice},
		{sliceOp, constOp, SliceConst},
		{constOp, sliceOp, ConstSlice},
		{constOp, constOp, ConstConst},
	}
	for _, c := range cases {
		if got := ShapeOf(c.lhs, c.rhs); got != c.want {
			t.Errorf("ShapeOf(...) = %s, want %s", got, c.want)
		}
	}
}

func TestShapeString(t *testing.T) {
	for _, s := range []Shape{SliceSlice, SliceConst, ConstSlice, ConstConst} {
		if s.String() == "invalid_shape" {
			t.Errorf("Shape %d stringified as invalid_shape", s)
		}
	}
	if Shape(255).String() != "invalid_shape" {
		t.Error("out-of-range Shape did not stringify as invalid_shape")
	}
}
