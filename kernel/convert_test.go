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

import "testing"

func TestConvertNumericTruncates(t *testing.T) {
	if got := ConvertConst[int32, uint8](300); got != 44 {
		t.Errorf("ConvertConst[int32,uint8](300) = %d, want 44 (truncating)", got)
	}
	dst := make([]float32, 2)
	ConvertSlice(dst, []int16{1, -1})
	if dst[0] != 1 || dst[1] != -1 {
		t.Errorf("ConvertSlice int16->float32 = %v", dst)
	}
}

func TestBoolNumericRoundTrip(t *testing.T) {
	if BoolToNumericConst[int32](1) != 1 || BoolToNumericConst[int32](0) != 0 {
		t.Error("BoolToNumericConst wrong")
	}
	if NumericToBoolConst(int32(0)) != 0 || NumericToBoolConst(int32(5)) != 1 {
		t.Error("NumericToBoolConst wrong")
	}
	dst := make([]uint8, 3)
	NumericToBoolSlice(dst, []float64{0, 1, -2})
	if dst[0] != 0 || dst[1] != 1 || dst[2] != 1 {
		t.Errorf("NumericToBoolSlice = %v", dst)
	}
}

func TestSignedUnsignedTo128(t *testing.T) {
	if got := SignedToI128Const[int32](-5); got != NegI128(I128{5, 0}) {
		t.Errorf("SignedToI128Const(-5) = %v, want -5", got)
	}
	if got := UnsignedToU128Const[uint32](42); got != (U128{42, 0}) {
		t.Errorf("UnsignedToU128Const(42) = %v", got)
	}
	if got := SignedToU128Const[int32](7); got != (U128{7, 0}) {
		t.Errorf("SignedToU128Const(7) = %v", got)
	}
}

func TestFloatTo128(t *testing.T) {
	if got := FloatToI128Const[float64](-9.9); got != NegI128(I128{9, 0}) {
		t.Errorf("FloatToI128Const(-9.9) = %v, want -9 (truncating toward zero)", got)
	}
	if got := FloatToU128Const[float64](12.9); got != (U128{12, 0}) {
		t.Errorf("FloatToU128Const(12.9) = %v, want 12", got)
	}
}

func TestFrom128(t *testing.T) {
	v := I128{100, 0}
	if got := I128ToSignedConst[int32](v); got != 100 {
		t.Errorf("I128ToSignedConst = %d, want 100", got)
	}
	if got := I128ToFloatConst[float64](v); got != 100 {
		t.Errorf("I128ToFloatConst = %v, want 100", got)
	}
	u := U128{200, 0}
	if got := U128ToUnsignedConst[uint16](u); got != 200 {
		t.Errorf("U128ToUnsignedConst = %d, want 200", got)
	}
	if got := U128ToFloatConst[float32](u); got != 200 {
		t.Errorf("U128ToFloatConst = %v, want 200", got)
	}
}

func TestU128I128Crossover(t *testing.T) {
	dst := make([]I128, 1)
	U128ToI128Slice(dst, []U128{{7, 0}})
	if dst[0] != (I128{7, 0}) {
		t.Errorf("U128ToI128Slice = %v", dst[0])
	}
	dst2 := make([]U128, 1)
	I128ToU128Slice(dst2, []I128{{7, 0}})
	if dst2[0] != (U128{7, 0}) {
		t.Errorf("I128ToU128Slice = %v", dst2[0])
	}
}

func TestBool128(t *testing.T) {
	if BoolToU128Const(1) != (U128{1, 0}) {
		t.Error("BoolToU128Const(1) wrong")
	}
	if BoolToI128Const(0) != (I128{0, 0}) {
		t.Error("BoolToI128Const(0) wrong")
	}
	if U128ToBoolConst(U128{0, 0}) != 0 {
		t.Error("U128ToBoolConst(0) should be false")
	}
	if U128ToBoolConst(U128{0, 1}) != 1 {
		t.Error("U128ToBoolConst(nonzero) should be true")
	}
	if I128ToBoolConst(NegI128(I128{1, 0})) != 1 {
		t.Error("I128ToBoolConst(-1) should be true")
	}
}
