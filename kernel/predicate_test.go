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

func TestComparisons(t *testing.T) {
	a, b := int32(3), int32(5)
	if LtConst(a, b) != true || LtConst(b, a) != false {
		t.Error("LtConst wrong")
	}
	if LeConst(a, a) != true {
		t.Error("LeConst(a, a) should be true")
	}
	if EqConst(a, a) != true || EqConst(a, b) != false {
		t.Error("EqConst wrong")
	}
	if NeConst(a, b) != true || NeConst(a, a) != false {
		t.Error("NeConst wrong")
	}
	if GeConst(b, a) != true || GeConst(a, b) != false {
		t.Error("GeConst wrong")
	}
	if GtConst(b, a) != true || GtConst(a, b) != false {
		t.Error("GtConst wrong")
	}
}

func TestComparisonSlices(t *testing.T) {
	dst := make([]uint8, 3)
	a := []float64{1, 2, 3}
	b := []float64{3, 2, 1}
	LtSlice(dst, a, b)
	if dst[0] != 1 || dst[1] != 0 || dst[2] != 0 {
		t.Errorf("LtSlice = %v", dst)
	}
	EqSlice(dst, a, b)
	if dst[0] != 0 || dst[1] != 1 || dst[2] != 0 {
		t.Errorf("EqSlice = %v", dst)
	}
}

func TestIsNaNIsInfIsFin(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	fin := 1.5

	if !IsNaNConst(nan) || IsNaNConst(fin) {
		t.Error("IsNaNConst wrong")
	}
	if !IsInfConst(inf) || IsInfConst(fin) {
		t.Error("IsInfConst wrong")
	}
	if !IsFinConst(fin) || IsFinConst(nan) || IsFinConst(inf) {
		t.Error("IsFinConst wrong")
	}

	dst := make([]uint8, 3)
	IsFinSlice(dst, []float64{fin, nan, inf})
	if dst[0] != 1 || dst[1] != 0 || dst[2] != 0 {
		t.Errorf("IsFinSlice = %v", dst)
	}
}
