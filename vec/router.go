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

// Package vec implements the router (C8): the four public entry points
// spec.md §4.1 describes (ValBinop, BoolBinop, ValUnop, BoolUnop), each
// running type promotion, shape classification, support-matrix
// checking, and the chunked dispatch into package kernel.
package vec

import (
	"github.com/SnellerInc/vecker/internal/simd"
	"github.com/SnellerInc/vecker/kernel"
	"github.com/SnellerInc/vecker/operand"
	"github.com/SnellerInc/vecker/scalar"
)

func viewOut[T any](ctx *EvalCtx, n int, srcTy, dstTy scalar.Ty) ([]T, error) {
	v, err := simd.View[T](ctx.Out, n, chunksz(srcTy, dstTy))
	if err != nil {
		return nil, badBuffer("out", err.Error())
	}
	return v, nil
}

func promoteOperand(o operand.Operand, to scalar.Ty, buf []byte) (operand.Operand, error) {
	if o.Ty() == to {
		return o, nil
	}
	if o.IsConst() {
		return operand.FromConst(convertConst(o.AsConst(), to)), nil
	}
	converted, err := convertSlice(o.AsSlice(), to, buf)
	if err != nil {
		return operand.Operand{}, err
	}
	return operand.FromSlice(converted), nil
}

func u128FromConst(c operand.Const) kernel.U128 {
	lo, hi := c.U128()
	return kernel.U128{lo, hi}
}
func constFromU128(v kernel.U128) operand.Const { return operand.ConstU128(v[0], v[1]) }

func i128FromConst(c operand.Const) kernel.I128 {
	lo, hi := c.I128()
	return kernel.I128{lo, uint64(hi)}
}
func constFromI128(v kernel.I128) operand.Const { return operand.ConstI128(v[0], int64(v[1])) }

// --- ValBinop ---

// ValBinop implements the value-returning binary family of spec.md
// §4.1: promote both operands to their joined type, verify the support
// matrix, classify the operand shape, and dispatch into the matching
// kernel family.
func ValBinop(op kernel.ValBinOp, lhs, rhs operand.Operand, ctx *EvalCtx) (operand.Operand, error) {
	if err := ctx.validateShape(); err != nil {
		return operand.Operand{}, err
	}
	ty := scalar.Join(lhs.Ty(), rhs.Ty())
	if !kernel.SupportsValBinOp(op, ty) {
		return operand.Operand{}, unsupported(op, ty)
	}
	l, err := promoteOperand(lhs, ty, ctx.Tmp1)
	if err != nil {
		return operand.Operand{}, err
	}
	r, err := promoteOperand(rhs, ty, ctx.Tmp2)
	if err != nil {
		return operand.Operand{}, err
	}
	shape := operand.ShapeOf(l, r)
	switch ty {
	case scalar.U8:
		return valBinopInteger[uint8](op, ty, l, r, shape, ctx, operand.Slice.U8, operand.SliceU8, operand.Const.U8, operand.ConstU8)
	case scalar.U16:
		return valBinopInteger[uint16](op, ty, l, r, shape, ctx, operand.Slice.U16, operand.SliceU16, operand.Const.U16, operand.ConstU16)
	case scalar.U32:
		return valBinopInteger[uint32](op, ty, l, r, shape, ctx, operand.Slice.U32, operand.SliceU32, operand.Const.U32, operand.ConstU32)
	case scalar.U64:
		return valBinopInteger[uint64](op, ty, l, r, shape, ctx, operand.Slice.U64, operand.SliceU64, operand.Const.U64, operand.ConstU64)
	case scalar.I8:
		return valBinopInteger[int8](op, ty, l, r, shape, ctx, operand.Slice.I8, operand.SliceI8, operand.Const.I8, operand.ConstI8)
	case scalar.I16:
		return valBinopInteger[int16](op, ty, l, r, shape, ctx, operand.Slice.I16, operand.SliceI16, operand.Const.I16, operand.ConstI16)
	case scalar.I32:
		return valBinopInteger[int32](op, ty, l, r, shape, ctx, operand.Slice.I32, operand.SliceI32, operand.Const.I32, operand.ConstI32)
	case scalar.I64:
		return valBinopInteger[int64](op, ty, l, r, shape, ctx, operand.Slice.I64, operand.SliceI64, operand.Const.I64, operand.ConstI64)
	case scalar.F32:
		return valBinopFloat[float32](op, ty, l, r, shape, ctx, operand.Slice.F32, operand.SliceF32, operand.Const.F32, operand.ConstF32)
	case scalar.F64:
		return valBinopFloat[float64](op, ty, l, r, shape, ctx, operand.Slice.F64, operand.SliceF64, operand.Const.F64, operand.ConstF64)
	case scalar.U128:
		return valBinopU128(op, ty, l, r, shape, ctx)
	case scalar.I128:
		return valBinopI128(op, ty, l, r, shape, ctx)
	default:
		return operand.Operand{}, unsupported(op, ty)
	}
}

// checkDivisor pre-scans the divisor (rhs) for zero ahead of Div/Rem,
// so a zero divisor surfaces as ErrDivideByZero before any output is
// written, rather than a partially-computed chunk or a platform trap.
func checkDivisor[T any](rhs operand.Operand, shape operand.Shape, getSlice func(operand.Slice) []T, getConst func(operand.Const) T, isZero func(T) bool) error {
	switch shape {
	case operand.SliceSlice, operand.ConstSlice:
		for _, v := range getSlice(rhs.AsSlice()) {
			if isZero(v) {
				return ErrDivideByZero
			}
		}
	default:
		if isZero(getConst(rhs.AsConst())) {
			return ErrDivideByZero
		}
	}
	return nil
}

// runBinopShape executes one ValBinOp across any of the four operand
// shapes once the category dispatcher has resolved the per-chunk body
// (sliceBody, for slice_slice) and the scalar elementwise op (elem, for
// the other three shapes — spec.md §4.2's broadcast-held-in-a-register
// reuse of the unary skeleton).
func runBinopShape[T any](shape operand.Shape, lhs, rhs operand.Operand, ctx *EvalCtx, ty scalar.Ty,
	getSlice func(operand.Slice) []T, mkSlice func([]T) operand.Slice,
	getConst func(operand.Const) T, mkConst func(T) operand.Const,
	sliceBody func(dst, a, b []T), elem func(a, b T) T,
) (operand.Operand, error) {
	switch shape {
	case operand.SliceSlice:
		a, b := getSlice(lhs.AsSlice()), getSlice(rhs.AsSlice())
		if len(a) != len(b) {
			return operand.Operand{}, badBuffer("operand", "lhs/rhs slice length mismatch")
		}
		n := len(a)
		dst, err := viewOut[T](ctx, n, ty, ty)
		if err != nil {
			return operand.Operand{}, err
		}
		runBinary(n, chunksz(ty, ty), a, b, dst, sliceBody)
		return operand.FromSlice(mkSlice(dst)), nil
	case operand.SliceConst:
		a := getSlice(lhs.AsSlice())
		bv := getConst(rhs.AsConst())
		n := len(a)
		dst, err := viewOut[T](ctx, n, ty, ty)
		if err != nil {
			return operand.Operand{}, err
		}
		runUnary(n, chunksz(ty, ty), a, dst, func(dst, src []T) { applySliceConst(dst, src, bv, elem) })
		return operand.FromSlice(mkSlice(dst)), nil
	case operand.ConstSlice:
		av := getConst(lhs.AsConst())
		b := getSlice(rhs.AsSlice())
		n := len(b)
		dst, err := viewOut[T](ctx, n, ty, ty)
		if err != nil {
			return operand.Operand{}, err
		}
		runUnary(n, chunksz(ty, ty), b, dst, func(dst, src []T) { applyConstSlice(dst, av, src, elem) })
		return operand.FromSlice(mkSlice(dst)), nil
	default: // ConstConst
		av, bv := getConst(lhs.AsConst()), getConst(rhs.AsConst())
		return operand.FromConst(mkConst(elem(av, bv))), nil
	}
}

//go:noinline
func valBinopInteger[T kernel.Integer](op kernel.ValBinOp, ty scalar.Ty, lhs, rhs operand.Operand, shape operand.Shape, ctx *EvalCtx,
	getSlice func(operand.Slice) []T, mkSlice func([]T) operand.Slice,
	getConst func(operand.Const) T, mkConst func(T) operand.Const,
) (operand.Operand, error) {
	if op == kernel.Div || op == kernel.Rem {
		if err := checkDivisor(rhs, shape, getSlice, getConst, func(v T) bool { return v == 0 }); err != nil {
			return operand.Operand{}, err
		}
	}
	sliceBody, _ := integerBinopSliceBody[T](op)
	elem, _ := integerBinopElem[T](op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runBinopShape(shape, lhs, rhs, ctx, ty, getSlice, mkSlice, getConst, mkConst, sliceBody, elem)
}

//go:noinline
func valBinopFloat[T kernel.Float](op kernel.ValBinOp, ty scalar.Ty, lhs, rhs operand.Operand, shape operand.Shape, ctx *EvalCtx,
	getSlice func(operand.Slice) []T, mkSlice func([]T) operand.Slice,
	getConst func(operand.Const) T, mkConst func(T) operand.Const,
) (operand.Operand, error) {
	sliceBody, _ := floatBinopSliceBody[T](op)
	elem, _ := floatBinopElem[T](op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runBinopShape(shape, lhs, rhs, ctx, ty, getSlice, mkSlice, getConst, mkConst, sliceBody, elem)
}

//go:noinline
func valBinopU128(op kernel.ValBinOp, ty scalar.Ty, lhs, rhs operand.Operand, shape operand.Shape, ctx *EvalCtx) (operand.Operand, error) {
	if op == kernel.Div || op == kernel.Rem {
		if err := checkDivisor(rhs, shape, operand.Slice.U128, u128FromConst, kernel.IsZero128); err != nil {
			return operand.Operand{}, err
		}
	}
	sliceBody, _ := u128BinopSliceBody(op)
	elem, _ := u128BinopElem(op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runBinopShape(shape, lhs, rhs, ctx, ty, operand.Slice.U128, operand.SliceU128, u128FromConst, constFromU128, sliceBody, elem)
}

//go:noinline
func valBinopI128(op kernel.ValBinOp, ty scalar.Ty, lhs, rhs operand.Operand, shape operand.Shape, ctx *EvalCtx) (operand.Operand, error) {
	if op == kernel.Div || op == kernel.Rem {
		if err := checkDivisor(rhs, shape, operand.Slice.I128, i128FromConst, kernel.IsZero128); err != nil {
			return operand.Operand{}, err
		}
	}
	sliceBody, _ := i128BinopSliceBody(op)
	elem, _ := i128BinopElem(op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runBinopShape(shape, lhs, rhs, ctx, ty, operand.Slice.I128, operand.SliceI128, i128FromConst, constFromI128, sliceBody, elem)
}

// --- BoolBinop (predicates) ---

// BoolBinop implements the predicate-returning binary family; output
// is always a one-byte-per-lane Bool slice or a single bool constant,
// regardless of the promoted input type.
func BoolBinop(op kernel.BoolBinOp, lhs, rhs operand.Operand, ctx *EvalCtx) (operand.Operand, error) {
	if err := ctx.validateShape(); err != nil {
		return operand.Operand{}, err
	}
	ty := scalar.Join(lhs.Ty(), rhs.Ty())
	if !kernel.SupportsBoolBinOp(op, ty) {
		return operand.Operand{}, unsupported(op, ty)
	}
	l, err := promoteOperand(lhs, ty, ctx.Tmp1)
	if err != nil {
		return operand.Operand{}, err
	}
	r, err := promoteOperand(rhs, ty, ctx.Tmp2)
	if err != nil {
		return operand.Operand{}, err
	}
	shape := operand.ShapeOf(l, r)
	switch ty {
	case scalar.U8:
		return predicateNumeric[uint8](op, ty, l, r, shape, ctx, operand.Slice.U8, operand.Const.U8)
	case scalar.U16:
		return predicateNumeric[uint16](op, ty, l, r, shape, ctx, operand.Slice.U16, operand.Const.U16)
	case scalar.U32:
		return predicateNumeric[uint32](op, ty, l, r, shape, ctx, operand.Slice.U32, operand.Const.U32)
	case scalar.U64:
		return predicateNumeric[uint64](op, ty, l, r, shape, ctx, operand.Slice.U64, operand.Const.U64)
	case scalar.I8:
		return predicateNumeric[int8](op, ty, l, r, shape, ctx, operand.Slice.I8, operand.Const.I8)
	case scalar.I16:
		return predicateNumeric[int16](op, ty, l, r, shape, ctx, operand.Slice.I16, operand.Const.I16)
	case scalar.I32:
		return predicateNumeric[int32](op, ty, l, r, shape, ctx, operand.Slice.I32, operand.Const.I32)
	case scalar.I64:
		return predicateNumeric[int64](op, ty, l, r, shape, ctx, operand.Slice.I64, operand.Const.I64)
	case scalar.F32:
		return predicateNumeric[float32](op, ty, l, r, shape, ctx, operand.Slice.F32, operand.Const.F32)
	case scalar.F64:
		return predicateNumeric[float64](op, ty, l, r, shape, ctx, operand.Slice.F64, operand.Const.F64)
	case scalar.U128:
		return predicateU128(op, ty, l, r, shape, ctx)
	case scalar.I128:
		return predicateI128(op, ty, l, r, shape, ctx)
	default:
		return operand.Operand{}, unsupported(op, ty)
	}
}

// runPredicateShape is the BoolBinop counterpart of runBinopShape: the
// inputs are type T but the output is always a Bool (uint8-lane) slice
// or a single bool constant.
func runPredicateShape[T any](shape operand.Shape, lhs, rhs operand.Operand, ctx *EvalCtx, ty scalar.Ty,
	getSlice func(operand.Slice) []T, getConst func(operand.Const) T,
	sliceBody func(dst []uint8, a, b []T), elem func(a, b T) bool,
) (operand.Operand, error) {
	switch shape {
	case operand.SliceSlice:
		a, b := getSlice(lhs.AsSlice()), getSlice(rhs.AsSlice())
		if len(a) != len(b) {
			return operand.Operand{}, badBuffer("operand", "lhs/rhs slice length mismatch")
		}
		n := len(a)
		dst, err := viewOut[uint8](ctx, n, ty, scalar.Bool)
		if err != nil {
			return operand.Operand{}, err
		}
		runBinary(n, chunksz(ty, scalar.Bool), a, b, dst, sliceBody)
		return operand.FromSlice(operand.SliceBool(dst)), nil
	case operand.SliceConst:
		a := getSlice(lhs.AsSlice())
		bv := getConst(rhs.AsConst())
		n := len(a)
		dst, err := viewOut[uint8](ctx, n, ty, scalar.Bool)
		if err != nil {
			return operand.Operand{}, err
		}
		runUnary(n, chunksz(ty, scalar.Bool), a, dst, func(dst []uint8, src []T) { applySliceConst(dst, src, bv, elem) })
		return operand.FromSlice(operand.SliceBool(dst)), nil
	case operand.ConstSlice:
		av := getConst(lhs.AsConst())
		b := getSlice(rhs.AsSlice())
		n := len(b)
		dst, err := viewOut[uint8](ctx, n, ty, scalar.Bool)
		if err != nil {
			return operand.Operand{}, err
		}
		runUnary(n, chunksz(ty, scalar.Bool), b, dst, func(dst []uint8, src []T) { applyConstSlice(dst, av, src, elem) })
		return operand.FromSlice(operand.SliceBool(dst)), nil
	default: // ConstConst
		av, bv := getConst(lhs.AsConst()), getConst(rhs.AsConst())
		return operand.FromConst(operand.ConstBool(elem(av, bv))), nil
	}
}

//go:noinline
func predicateNumeric[T kernel.Numeric](op kernel.BoolBinOp, ty scalar.Ty, lhs, rhs operand.Operand, shape operand.Shape, ctx *EvalCtx,
	getSlice func(operand.Slice) []T, getConst func(operand.Const) T,
) (operand.Operand, error) {
	sliceBody, _ := numericPredicateSliceBody[T](op)
	elem, _ := numericPredicateElem[T](op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runPredicateShape(shape, lhs, rhs, ctx, ty, getSlice, getConst, sliceBody, elem)
}

//go:noinline
func predicateU128(op kernel.BoolBinOp, ty scalar.Ty, lhs, rhs operand.Operand, shape operand.Shape, ctx *EvalCtx) (operand.Operand, error) {
	sliceBody, _ := u128PredicateSliceBody(op)
	elem, _ := u128PredicateElem(op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runPredicateShape(shape, lhs, rhs, ctx, ty, operand.Slice.U128, u128FromConst, sliceBody, elem)
}

//go:noinline
func predicateI128(op kernel.BoolBinOp, ty scalar.Ty, lhs, rhs operand.Operand, shape operand.Shape, ctx *EvalCtx) (operand.Operand, error) {
	sliceBody, _ := i128PredicateSliceBody(op)
	elem, _ := i128PredicateElem(op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runPredicateShape(shape, lhs, rhs, ctx, ty, operand.Slice.I128, i128FromConst, sliceBody, elem)
}

// --- ValUnop ---

// ValUnop implements the value-returning unary family. There is no
// promotion step: a unary op's type is simply the operand's own type.
func ValUnop(op kernel.ValUnOp, operandVal operand.Operand, ctx *EvalCtx) (operand.Operand, error) {
	if err := ctx.validateShape(); err != nil {
		return operand.Operand{}, err
	}
	ty := operandVal.Ty()
	if !kernel.SupportsValUnOp(op, ty) {
		return operand.Operand{}, unsupported(op, ty)
	}
	switch ty {
	case scalar.U8:
		return valUnopUnsigned[uint8](op, ty, operandVal, ctx, operand.Slice.U8, operand.SliceU8, operand.Const.U8, operand.ConstU8)
	case scalar.U16:
		return valUnopUnsigned[uint16](op, ty, operandVal, ctx, operand.Slice.U16, operand.SliceU16, operand.Const.U16, operand.ConstU16)
	case scalar.U32:
		return valUnopUnsigned[uint32](op, ty, operandVal, ctx, operand.Slice.U32, operand.SliceU32, operand.Const.U32, operand.ConstU32)
	case scalar.U64:
		return valUnopUnsigned[uint64](op, ty, operandVal, ctx, operand.Slice.U64, operand.SliceU64, operand.Const.U64, operand.ConstU64)
	case scalar.I8:
		return valUnopSignedInt[int8](op, ty, operandVal, ctx, operand.Slice.I8, operand.SliceI8, operand.Const.I8, operand.ConstI8)
	case scalar.I16:
		return valUnopSignedInt[int16](op, ty, operandVal, ctx, operand.Slice.I16, operand.SliceI16, operand.Const.I16, operand.ConstI16)
	case scalar.I32:
		return valUnopSignedInt[int32](op, ty, operandVal, ctx, operand.Slice.I32, operand.SliceI32, operand.Const.I32, operand.ConstI32)
	case scalar.I64:
		return valUnopSignedInt[int64](op, ty, operandVal, ctx, operand.Slice.I64, operand.SliceI64, operand.Const.I64, operand.ConstI64)
	case scalar.F32:
		return valUnopFloat[float32](op, ty, operandVal, ctx, operand.Slice.F32, operand.SliceF32, operand.Const.F32, operand.ConstF32)
	case scalar.F64:
		return valUnopFloat[float64](op, ty, operandVal, ctx, operand.Slice.F64, operand.SliceF64, operand.Const.F64, operand.ConstF64)
	case scalar.U128:
		return valUnopU128(op, ty, operandVal, ctx)
	case scalar.I128:
		return valUnopI128(op, ty, operandVal, ctx)
	default:
		return operand.Operand{}, unsupported(op, ty)
	}
}

// runUnopOperand runs a unary op over whichever of Slice/Const the
// caller holds.
func runUnopOperand[T any](o operand.Operand, ctx *EvalCtx, ty scalar.Ty,
	getSlice func(operand.Slice) []T, mkSlice func([]T) operand.Slice,
	getConst func(operand.Const) T, mkConst func(T) operand.Const,
	sliceBody func(dst, a []T), elem func(T) T,
) (operand.Operand, error) {
	if o.IsConst() {
		return operand.FromConst(mkConst(elem(getConst(o.AsConst())))), nil
	}
	src := getSlice(o.AsSlice())
	n := len(src)
	dst, err := viewOut[T](ctx, n, ty, ty)
	if err != nil {
		return operand.Operand{}, err
	}
	runUnary(n, chunksz(ty, ty), src, dst, sliceBody)
	return operand.FromSlice(mkSlice(dst)), nil
}

//go:noinline
func valUnopUnsigned[T kernel.UnsignedInt](op kernel.ValUnOp, ty scalar.Ty, o operand.Operand, ctx *EvalCtx,
	getSlice func(operand.Slice) []T, mkSlice func([]T) operand.Slice,
	getConst func(operand.Const) T, mkConst func(T) operand.Const,
) (operand.Operand, error) {
	sliceBody, _ := unsignedUnopSliceBody[T](op)
	elem, _ := unsignedUnopElem[T](op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runUnopOperand(o, ctx, ty, getSlice, mkSlice, getConst, mkConst, sliceBody, elem)
}

//go:noinline
func valUnopSignedInt[T kernel.SignedInt](op kernel.ValUnOp, ty scalar.Ty, o operand.Operand, ctx *EvalCtx,
	getSlice func(operand.Slice) []T, mkSlice func([]T) operand.Slice,
	getConst func(operand.Const) T, mkConst func(T) operand.Const,
) (operand.Operand, error) {
	sliceBody, _ := signedIntUnopSliceBody[T](op)
	elem, _ := signedIntUnopElem[T](op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runUnopOperand(o, ctx, ty, getSlice, mkSlice, getConst, mkConst, sliceBody, elem)
}

//go:noinline
func valUnopFloat[T kernel.Float](op kernel.ValUnOp, ty scalar.Ty, o operand.Operand, ctx *EvalCtx,
	getSlice func(operand.Slice) []T, mkSlice func([]T) operand.Slice,
	getConst func(operand.Const) T, mkConst func(T) operand.Const,
) (operand.Operand, error) {
	sliceBody, _ := floatUnopSliceBody[T](op)
	elem, _ := floatUnopElem[T](op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runUnopOperand(o, ctx, ty, getSlice, mkSlice, getConst, mkConst, sliceBody, elem)
}

//go:noinline
func valUnopU128(op kernel.ValUnOp, ty scalar.Ty, o operand.Operand, ctx *EvalCtx) (operand.Operand, error) {
	sliceBody, _ := u128UnopSliceBody(op)
	elem, _ := u128UnopElem(op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runUnopOperand(o, ctx, ty, operand.Slice.U128, operand.SliceU128, u128FromConst, constFromU128, sliceBody, elem)
}

//go:noinline
func valUnopI128(op kernel.ValUnOp, ty scalar.Ty, o operand.Operand, ctx *EvalCtx) (operand.Operand, error) {
	sliceBody, _ := i128UnopSliceBody(op)
	elem, _ := i128UnopElem(op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	return runUnopOperand(o, ctx, ty, operand.Slice.I128, operand.SliceI128, i128FromConst, constFromI128, sliceBody, elem)
}

// --- BoolUnop ---

// BoolUnop implements the predicate-returning unary family: IsNaN,
// IsInf and IsFin, defined only for F32/F64.
func BoolUnop(op kernel.BoolUnOp, o operand.Operand, ctx *EvalCtx) (operand.Operand, error) {
	if err := ctx.validateShape(); err != nil {
		return operand.Operand{}, err
	}
	ty := o.Ty()
	if !kernel.SupportsBoolUnOp(op, ty) {
		return operand.Operand{}, unsupported(op, ty)
	}
	switch ty {
	case scalar.F32:
		return predicateUnopFloat[float32](op, ty, o, ctx, operand.Slice.F32, operand.Const.F32)
	case scalar.F64:
		return predicateUnopFloat[float64](op, ty, o, ctx, operand.Slice.F64, operand.Const.F64)
	default:
		return operand.Operand{}, unsupported(op, ty)
	}
}

//go:noinline
func predicateUnopFloat[T kernel.Float](op kernel.BoolUnOp, ty scalar.Ty, o operand.Operand, ctx *EvalCtx,
	getSlice func(operand.Slice) []T, getConst func(operand.Const) T,
) (operand.Operand, error) {
	sliceBody, _ := floatPredicateUnopSliceBody[T](op)
	elem, _ := floatPredicateUnopElem[T](op)
	if sliceBody == nil || elem == nil {
		return operand.Operand{}, unsupported(op, ty)
	}
	if o.IsConst() {
		return operand.FromConst(operand.ConstBool(elem(getConst(o.AsConst())))), nil
	}
	src := getSlice(o.AsSlice())
	n := len(src)
	dst, err := viewOut[uint8](ctx, n, ty, scalar.Bool)
	if err != nil {
		return operand.Operand{}, err
	}
	runUnary(n, chunksz(ty, scalar.Bool), src, dst, sliceBody)
	return operand.FromSlice(operand.SliceBool(dst)), nil
}
