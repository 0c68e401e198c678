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

import (
	"math"
	"testing"
)

func TestNegBitNot(t *testing.T) {
	if NegConst(int32(5)) != -5 {
		t.Error("NegConst(5) != -5")
	}
	if NegConst(-5.5) != 5.5 {
		t.Error("NegConst(-5.5) != 5.5")
	}
	if BitNotConst(uint8(0)) != 0xFF {
		t.Error("BitNotConst(0 u8) != 0xFF")
	}

	dst := make([]int16, 3)
	NegSlice(dst, []int16{1, -2, 0})
	if want := []int16{-1, 2, 0}; dst[0] != want[0] || dst[1] != want[1] || dst[2] != want[2] {
		t.Errorf("NegSlice = %v, want %v", dst, want)
	}
}

func TestAbsLnExpSqrt(t *testing.T) {
	if AbsConst(-3.5) != 3.5 {
		t.Error("AbsConst(-3.5) != 3.5")
	}
	if got := LnConst(math.E); math.Abs(got-1) > 1e-12 {
		t.Errorf("LnConst(e) = %v, want 1", got)
	}
	if got := ExpConst(0.0); got != 1 {
		t.Errorf("ExpConst(0) = %v, want 1", got)
	}
	if got := SqrtConst(9.0); got != 3 {
		t.Errorf("SqrtConst(9) = %v, want 3", got)
	}
}

func TestSinCos(t *testing.T) {
	if got := SinConst(0.0); got != 0 {
		t.Errorf("SinConst(0) = %v, want 0", got)
	}
	if got := CosConst(0.0); got != 1 {
		t.Errorf("CosConst(0) = %v, want 1", got)
	}
	dst := make([]float64, 1)
	SinSlice(dst, []float64{math.Pi / 2})
	if math.Abs(dst[0]-1) > 1e-12 {
		t.Errorf("SinSlice(pi/2) = %v, want 1", dst[0])
	}
}
