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

// Kernel family dispatch (C6): bridges the router's ScalarTy switch to
// the generic kernel bodies in package kernel. Because Add/Sub/Mul/Div/
// Min/Max/comparisons are valid across both integer and float type
// parameters but Rem/BitAnd/BitOr/BitXor/BitNot/Neg/the transcendentals
// are not (Go rejects %, &, unary - etc. on a type parameter whose
// constraint's type set includes an incompatible kind), the dispatch
// functions below are split by category exactly the way the kernel
// package's own constraints are split: Integer (8 types), Float (2
// types), Signed/Unsigned integer subsets, plus dedicated,
// non-generic paths for U128/I128 (kernel/i128.go).
//
// Each returned function value is a single, separately-compiled kernel
// body selected once per call by an opcode switch here; the router's
// switch on scalar.Ty reaches these through its per-category entry
// points (valBinopInteger etc. in router.go), which carry
// //go:noinline so they stay out-of-line calls.
package vec

import (
	"github.com/SnellerInc/vecker/kernel"
)

// --- ValBinOp ---

func integerBinopSliceBody[T kernel.Integer](op kernel.ValBinOp) (func(dst, a, b []T), error) {
	switch op {
	case kernel.Add:
		return kernel.AddSlice[T], nil
	case kernel.Sub:
		return kernel.SubSlice[T], nil
	case kernel.Mul:
		return kernel.MulSlice[T], nil
	case kernel.Div:
		return kernel.DivSlice[T], nil
	case kernel.Rem:
		return kernel.RemIntegerSlice[T], nil
	case kernel.Min:
		return kernel.MinSlice[T], nil
	case kernel.Max:
		return kernel.MaxSlice[T], nil
	case kernel.BitAnd:
		return kernel.BitAndSlice[T], nil
	case kernel.BitOr:
		return kernel.BitOrSlice[T], nil
	case kernel.BitXor:
		return kernel.BitXorSlice[T], nil
	default:
		return nil, nil
	}
}

func integerBinopElem[T kernel.Integer](op kernel.ValBinOp) (func(a, b T) T, error) {
	switch op {
	case kernel.Add:
		return kernel.AddConst[T], nil
	case kernel.Sub:
		return kernel.SubConst[T], nil
	case kernel.Mul:
		return kernel.MulConst[T], nil
	case kernel.Div:
		return kernel.DivConst[T], nil
	case kernel.Rem:
		return kernel.RemIntegerConst[T], nil
	case kernel.Min:
		return kernel.MinConst[T], nil
	case kernel.Max:
		return kernel.MaxConst[T], nil
	case kernel.BitAnd:
		return kernel.BitAndConst[T], nil
	case kernel.BitOr:
		return kernel.BitOrConst[T], nil
	case kernel.BitXor:
		return kernel.BitXorConst[T], nil
	default:
		return nil, nil
	}
}

func floatBinopSliceBody[T kernel.Float](op kernel.ValBinOp) (func(dst, a, b []T), error) {
	switch op {
	case kernel.Add:
		return kernel.AddSlice[T], nil
	case kernel.Sub:
		return kernel.SubSlice[T], nil
	case kernel.Mul:
		return kernel.MulSlice[T], nil
	case kernel.Div:
		return kernel.DivSlice[T], nil
	case kernel.Rem:
		return kernel.RemFloatSlice[T], nil
	case kernel.Min:
		return kernel.MinSlice[T], nil
	case kernel.Max:
		return kernel.MaxSlice[T], nil
	case kernel.Pow:
		return kernel.PowSlice[T], nil
	default:
		return nil, nil
	}
}

func floatBinopElem[T kernel.Float](op kernel.ValBinOp) (func(a, b T) T, error) {
	switch op {
	case kernel.Add:
		return kernel.AddConst[T], nil
	case kernel.Sub:
		return kernel.SubConst[T], nil
	case kernel.Mul:
		return kernel.MulConst[T], nil
	case kernel.Div:
		return kernel.DivConst[T], nil
	case kernel.Rem:
		return kernel.RemFloatConst[T], nil
	case kernel.Min:
		return kernel.MinConst[T], nil
	case kernel.Max:
		return kernel.MaxConst[T], nil
	case kernel.Pow:
		return kernel.PowConst[T], nil
	default:
		return nil, nil
	}
}

// u128BinopElem and i128BinopElem cover the 128-bit types, which have
// no native Go numeric kind to instantiate the generic dispatchers
// above with.
func u128BinopElem(op kernel.ValBinOp) (func(a, b kernel.U128) kernel.U128, error) {
	switch op {
	case kernel.Add:
		return kernel.AddU128, nil
	case kernel.Sub:
		return kernel.SubU128, nil
	case kernel.Mul:
		return kernel.MulU128, nil
	case kernel.Div:
		return kernel.DivU128, nil
	case kernel.Rem:
		return kernel.RemU128, nil
	case kernel.Min:
		return kernel.MinU128, nil
	case kernel.Max:
		return kernel.MaxU128, nil
	case kernel.BitAnd:
		return kernel.BitAndU128, nil
	case kernel.BitOr:
		return kernel.BitOrU128, nil
	case kernel.BitXor:
		return kernel.BitXorU128, nil
	default:
		return nil, nil
	}
}

func u128BinopSliceBody(op kernel.ValBinOp) (func(dst, a, b []kernel.U128), error) {
	elem, err := u128BinopElem(op)
	if elem == nil || err != nil {
		return nil, err
	}
	return func(dst, a, b []kernel.U128) {
		for i := range dst {
			dst[i] = elem(a[i], b[i])
		}
	}, nil
}

func i128BinopSliceBody(op kernel.ValBinOp) (func(dst, a, b []kernel.I128), error) {
	elem, err := i128BinopElem(op)
	if elem == nil || err != nil {
		return nil, err
	}
	return func(dst, a, b []kernel.I128) {
		for i := range dst {
			dst[i] = elem(a[i], b[i])
		}
	}, nil
}

func i128BinopElem(op kernel.ValBinOp) (func(a, b kernel.I128) kernel.I128, error) {
	switch op {
	case kernel.Add:
		return kernel.AddI128, nil
	case kernel.Sub:
		return kernel.SubI128, nil
	case kernel.Mul:
		return kernel.MulI128, nil
	case kernel.Div:
		return kernel.DivI128, nil
	case kernel.Rem:
		return kernel.RemI128, nil
	case kernel.Min:
		return kernel.MinI128, nil
	case kernel.Max:
		return kernel.MaxI128, nil
	case kernel.BitAnd:
		return kernel.BitAndU128, nil
	case kernel.BitOr:
		return kernel.BitOrU128, nil
	case kernel.BitXor:
		return kernel.BitXorU128, nil
	default:
		return nil, nil
	}
}

// --- ValUnOp ---

// unsignedUnopElem covers U8/U16/U32/U64: only BitNot is supported,
// since Neg is gated out for unsigned integers at the type level
// (kernel.NegConst requires kernel.Signed).
func unsignedUnopElem[T kernel.UnsignedInt](op kernel.ValUnOp) (func(T) T, error) {
	switch op {
	case kernel.BitNot:
		return kernel.BitNotConst[T], nil
	default:
		return nil, nil
	}
}

func unsignedUnopSliceBody[T kernel.UnsignedInt](op kernel.ValUnOp) (func(dst, a []T), error) {
	switch op {
	case kernel.BitNot:
		return kernel.BitNotSlice[T], nil
	default:
		return nil, nil
	}
}

// signedIntUnopElem covers I8/I16/I32/I64, which support both Neg and
// BitNot.
func signedIntUnopElem[T kernel.SignedInt](op kernel.ValUnOp) (func(T) T, error) {
	switch op {
	case kernel.Neg:
		return kernel.NegConst[T], nil
	case kernel.BitNot:
		return kernel.BitNotConst[T], nil
	default:
		return nil, nil
	}
}

func signedIntUnopSliceBody[T kernel.SignedInt](op kernel.ValUnOp) (func(dst, a []T), error) {
	switch op {
	case kernel.Neg:
		return kernel.NegSlice[T], nil
	case kernel.BitNot:
		return kernel.BitNotSlice[T], nil
	default:
		return nil, nil
	}
}

func floatUnopElem[T kernel.Float](op kernel.ValUnOp) (func(T) T, error) {
	switch op {
	case kernel.Neg:
		return kernel.NegConst[T], nil
	case kernel.Abs:
		return kernel.AbsConst[T], nil
	case kernel.Ln:
		return kernel.LnConst[T], nil
	case kernel.Exp:
		return kernel.ExpConst[T], nil
	case kernel.Sqrt:
		return kernel.SqrtConst[T], nil
	case kernel.Sin:
		return kernel.SinConst[T], nil
	case kernel.Cos:
		return kernel.CosConst[T], nil
	default:
		return nil, nil
	}
}

func floatUnopSliceBody[T kernel.Float](op kernel.ValUnOp) (func(dst, a []T), error) {
	switch op {
	case kernel.Neg:
		return kernel.NegSlice[T], nil
	case kernel.Abs:
		return kernel.AbsSlice[T], nil
	case kernel.Ln:
		return kernel.LnSlice[T], nil
	case kernel.Exp:
		return kernel.ExpSlice[T], nil
	case kernel.Sqrt:
		return kernel.SqrtSlice[T], nil
	case kernel.Sin:
		return kernel.SinSlice[T], nil
	case kernel.Cos:
		return kernel.CosSlice[T], nil
	default:
		return nil, nil
	}
}

func u128UnopElem(op kernel.ValUnOp) (func(kernel.U128) kernel.U128, error) {
	switch op {
	case kernel.BitNot:
		return kernel.BitNotU128, nil
	default:
		return nil, nil
	}
}

func i128UnopElem(op kernel.ValUnOp) (func(kernel.I128) kernel.I128, error) {
	switch op {
	case kernel.Neg:
		return kernel.NegI128, nil
	case kernel.BitNot:
		return kernel.BitNotU128, nil
	default:
		return nil, nil
	}
}

// u128UnopSliceBody and i128UnopSliceBody wrap the 128-bit elementwise
// ops in a lane loop, mirroring the generic *Slice kernels' shape.
func u128UnopSliceBody(op kernel.ValUnOp) (func(dst, a []kernel.U128), error) {
	elem, err := u128UnopElem(op)
	if elem == nil || err != nil {
		return nil, err
	}
	return func(dst, a []kernel.U128) {
		for i := range dst {
			dst[i] = elem(a[i])
		}
	}, nil
}

func i128UnopSliceBody(op kernel.ValUnOp) (func(dst, a []kernel.I128), error) {
	elem, err := i128UnopElem(op)
	if elem == nil || err != nil {
		return nil, err
	}
	return func(dst, a []kernel.I128) {
		for i := range dst {
			dst[i] = elem(a[i])
		}
	}, nil
}

// --- BoolBinOp (predicates) ---

// numericPredicateSliceBody covers every comparison, which is defined
// over all of Numeric (spec.md §4.3: "Lt/Le/Eq/Ne/Ge/Gt -> all numeric").
func numericPredicateSliceBody[T kernel.Numeric](op kernel.BoolBinOp) (func(dst []uint8, a, b []T), error) {
	switch op {
	case kernel.Lt:
		return kernel.LtSlice[T], nil
	case kernel.Le:
		return kernel.LeSlice[T], nil
	case kernel.Eq:
		return kernel.EqSlice[T], nil
	case kernel.Ne:
		return kernel.NeSlice[T], nil
	case kernel.Ge:
		return kernel.GeSlice[T], nil
	case kernel.Gt:
		return kernel.GtSlice[T], nil
	default:
		return nil, nil
	}
}

// u128PredicateSliceBody and i128PredicateSliceBody wrap the 128-bit
// elementwise comparators in the same lane-loop shape the generic
// kernels use, since U128/I128 have no Numeric instantiation to reuse
// LtSlice/etc. with directly.
func u128PredicateSliceBody(op kernel.BoolBinOp) (func(dst []uint8, a, b []kernel.U128), error) {
	elem, err := u128PredicateElem(op)
	if elem == nil || err != nil {
		return nil, err
	}
	return func(dst []uint8, a, b []kernel.U128) {
		for i := range dst {
			dst[i] = b2u8(elem(a[i], b[i]))
		}
	}, nil
}

func i128PredicateSliceBody(op kernel.BoolBinOp) (func(dst []uint8, a, b []kernel.I128), error) {
	elem, err := i128PredicateElem(op)
	if elem == nil || err != nil {
		return nil, err
	}
	return func(dst []uint8, a, b []kernel.I128) {
		for i := range dst {
			dst[i] = b2u8(elem(a[i], b[i]))
		}
	}, nil
}

func b2u8(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func numericPredicateElem[T kernel.Numeric](op kernel.BoolBinOp) (func(a, b T) bool, error) {
	switch op {
	case kernel.Lt:
		return kernel.LtConst[T], nil
	case kernel.Le:
		return kernel.LeConst[T], nil
	case kernel.Eq:
		return kernel.EqConst[T], nil
	case kernel.Ne:
		return kernel.NeConst[T], nil
	case kernel.Ge:
		return kernel.GeConst[T], nil
	case kernel.Gt:
		return kernel.GtConst[T], nil
	default:
		return nil, nil
	}
}

func u128PredicateElem(op kernel.BoolBinOp) (func(a, b kernel.U128) bool, error) {
	cmp := kernel.CmpU128
	switch op {
	case kernel.Lt:
		return func(a, b kernel.U128) bool { return cmp(a, b) < 0 }, nil
	case kernel.Le:
		return func(a, b kernel.U128) bool { return cmp(a, b) <= 0 }, nil
	case kernel.Eq:
		return func(a, b kernel.U128) bool { return cmp(a, b) == 0 }, nil
	case kernel.Ne:
		return func(a, b kernel.U128) bool { return cmp(a, b) != 0 }, nil
	case kernel.Ge:
		return func(a, b kernel.U128) bool { return cmp(a, b) >= 0 }, nil
	case kernel.Gt:
		return func(a, b kernel.U128) bool { return cmp(a, b) > 0 }, nil
	default:
		return nil, nil
	}
}

func i128PredicateElem(op kernel.BoolBinOp) (func(a, b kernel.I128) bool, error) {
	cmp := kernel.CmpI128
	switch op {
	case kernel.Lt:
		return func(a, b kernel.I128) bool { return cmp(a, b) < 0 }, nil
	case kernel.Le:
		return func(a, b kernel.I128) bool { return cmp(a, b) <= 0 }, nil
	case kernel.Eq:
		return func(a, b kernel.I128) bool { return cmp(a, b) == 0 }, nil
	case kernel.Ne:
		return func(a, b kernel.I128) bool { return cmp(a, b) != 0 }, nil
	case kernel.Ge:
		return func(a, b kernel.I128) bool { return cmp(a, b) >= 0 }, nil
	case kernel.Gt:
		return func(a, b kernel.I128) bool { return cmp(a, b) > 0 }, nil
	default:
		return nil, nil
	}
}

// --- BoolUnOp ---

func floatPredicateUnopSliceBody[T kernel.Float](op kernel.BoolUnOp) (func(dst []uint8, a []T), error) {
	switch op {
	case kernel.IsNaN:
		return kernel.IsNaNSlice[T], nil
	case kernel.IsInf:
		return kernel.IsInfSlice[T], nil
	case kernel.IsFin:
		return kernel.IsFinSlice[T], nil
	default:
		return nil, nil
	}
}

func floatPredicateUnopElem[T kernel.Float](op kernel.BoolUnOp) (func(T) bool, error) {
	switch op {
	case kernel.IsNaN:
		return kernel.IsNaNConst[T], nil
	case kernel.IsInf:
		return kernel.IsInfConst[T], nil
	case kernel.IsFin:
		return kernel.IsFinConst[T], nil
	default:
		return nil, nil
	}
}
