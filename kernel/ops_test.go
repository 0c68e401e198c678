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
	"testing"

	"github.com/SnellerInc/vecker/scalar"
)

var allTy = []scalar.Ty{
	scalar.Bool, scalar.U8, scalar.U16, scalar.U32, scalar.U64, scalar.U128,
	scalar.I8, scalar.I16, scalar.I32, scalar.I64, scalar.I128, scalar.F32, scalar.F64,
}

func TestSupportsValBinOpMatrix(t *testing.T) {
	for _, ty := range allTy {
		for _, op := range []ValBinOp{Add, Sub, Mul, Div, Rem, Min, Max} {
			want := ty != scalar.Bool
			if got := SupportsValBinOp(op, ty); got != want {
				t.Errorf("SupportsValBinOp(%s, %s) = %v, want %v", op, ty, got, want)
			}
		}
		if got := SupportsValBinOp(Pow, ty); got != ty.Float() {
			t.Errorf("SupportsValBinOp(Pow, %s) = %v, want %v", ty, got, ty.Float())
		}
		for _, op := range []ValBinOp{BitAnd, BitOr, BitXor} {
			if got := SupportsValBinOp(op, ty); got != ty.Integer() {
				t.Errorf("SupportsValBinOp(%s, %s) = %v, want %v", op, ty, got, ty.Integer())
			}
		}
	}
}

func TestSupportsValUnOpMatrix(t *testing.T) {
	for _, ty := range allTy {
		if got := SupportsValUnOp(Neg, ty); got != (ty.Signed() || ty.Float()) {
			t.Errorf("SupportsValUnOp(Neg, %s) = %v", ty, got)
		}
		if got := SupportsValUnOp(BitNot, ty); got != ty.Integer() {
			t.Errorf("SupportsValUnOp(BitNot, %s) = %v", ty, got)
		}
		for _, op := range []ValUnOp{Abs, Ln, Exp, Sqrt, Sin, Cos} {
			if got := SupportsValUnOp(op, ty); got != ty.Float() {
				t.Errorf("SupportsValUnOp(%s, %s) = %v, want %v", op, ty, got, ty.Float())
			}
		}
	}
}

func TestSupportsBoolBinOpMatrix(t *testing.T) {
	for _, ty := range allTy {
		want := ty != scalar.Bool
		for _, op := range []BoolBinOp{Lt, Le, Eq, Ne, Ge, Gt} {
			if got := SupportsBoolBinOp(op, ty); got != want {
				t.Errorf("SupportsBoolBinOp(%s, %s) = %v, want %v", op, ty, got, want)
			}
		}
	}
}

func TestSupportsBoolUnOpMatrix(t *testing.T) {
	for _, ty := range allTy {
		for _, op := range []BoolUnOp{IsNaN, IsInf, IsFin} {
			if got := SupportsBoolUnOp(op, ty); got != ty.Float() {
				t.Errorf("SupportsBoolUnOp(%s, %s) = %v, want %v", op, ty, got, ty.Float())
			}
		}
	}
}

func TestOpcodeStringersCoverAllValues(t *testing.T) {
	for op := ValBinOp(0); op <= BitXor; op++ {
		if op.String() == "" {
			t.Errorf("ValBinOp(%d).String() is empty", op)
		}
	}
	for op := ValUnOp(0); op <= Cos; op++ {
		if op.String() == "" {
			t.Errorf("ValUnOp(%d).String() is empty", op)
		}
	}
	for op := BoolBinOp(0); op <= Gt; op++ {
		if op.String() == "" {
			t.Errorf("BoolBinOp(%d).String() is empty", op)
		}
	}
	for op := BoolUnOp(0); op <= IsFin; op++ {
		if op.String() == "" {
			t.Errorf("BoolUnOp(%d).String() is empty", op)
		}
	}
}

func TestOpcodeStringerUnknownValue(t *testing.T) {
	if got := ValBinOp(200).String(); got == "" {
		t.Error("unknown ValBinOp should still render a non-empty string")
	}
}
