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

// Promotion-time conversion dispatch (C7/C8 boundary): converts an
// Operand from its native type to the scalar.Join result before a
// kernel call, per spec.md §4.1 step 2 and §4.4. Identity conversions
// (src_ty == dst_ty) never reach this file — the router checks that
// first and returns the operand unchanged, zero-copy.
//
// Like dispatch.go, conversions are organized by source-type category
// (unsigned/signed/float/bool/U128/I128) so that each helper's type
// parameter satisfies exactly the constraints the underlying kernel
// conversion functions require.
package vec

import (
	"github.com/SnellerInc/vecker/internal/simd"
	"github.com/SnellerInc/vecker/kernel"
	"github.com/SnellerInc/vecker/operand"
	"github.com/SnellerInc/vecker/scalar"
)

// simdView reinterprets a conversion scratch buffer as []T, with no
// chunk-divisibility requirement: conversions run as a single pass
// ahead of the chunked kernel call, not on the worker pool. View errors
// are wrapped as BadBufferError so callers can match with errors.Is
// against ErrBadBuffer regardless of which layer detected the problem.
func simdView[T any](buf []byte, n int) ([]T, error) {
	v, err := simd.View[T](buf, n, 0)
	if err != nil {
		return nil, badBuffer("scratch", err.Error())
	}
	return v, nil
}

// wrapNumericConst packs a converted native numeric value back into an
// operand.Const tagged with its destination type.
func wrapNumericConst[D kernel.Numeric](to scalar.Ty, v D) operand.Const {
	switch to {
	case scalar.Bool:
		return operand.ConstBool(v != 0)
	case scalar.U8:
		return operand.ConstU8(uint8(v))
	case scalar.U16:
		return operand.ConstU16(uint16(v))
	case scalar.U32:
		return operand.ConstU32(uint32(v))
	case scalar.U64:
		return operand.ConstU64(uint64(v))
	case scalar.I8:
		return operand.ConstI8(int8(v))
	case scalar.I16:
		return operand.ConstI16(int16(v))
	case scalar.I32:
		return operand.ConstI32(int32(v))
	case scalar.I64:
		return operand.ConstI64(int64(v))
	case scalar.F32:
		return operand.ConstF32(float32(v))
	case scalar.F64:
		return operand.ConstF64(float64(v))
	default:
		panic("vec: wrapNumericConst called with a non-native destination")
	}
}

// wrapNumericSlice packs a filled destination slice back into an
// operand.Slice tagged with its destination type.
func wrapNumericSlice[D kernel.Numeric](to scalar.Ty, v []D) operand.Slice {
	switch to {
	case scalar.U8:
		return operand.SliceU8(any(v).([]uint8))
	case scalar.U16:
		return operand.SliceU16(any(v).([]uint16))
	case scalar.U32:
		return operand.SliceU32(any(v).([]uint32))
	case scalar.U64:
		return operand.SliceU64(any(v).([]uint64))
	case scalar.I8:
		return operand.SliceI8(any(v).([]int8))
	case scalar.I16:
		return operand.SliceI16(any(v).([]int16))
	case scalar.I32:
		return operand.SliceI32(any(v).([]int32))
	case scalar.I64:
		return operand.SliceI64(any(v).([]int64))
	case scalar.F32:
		return operand.SliceF32(any(v).([]float32))
	case scalar.F64:
		return operand.SliceF64(any(v).([]float64))
	default:
		panic("vec: wrapNumericSlice called with a non-native destination")
	}
}

func convertConst(c operand.Const, to scalar.Ty) operand.Const {
	switch c.Ty() {
	case scalar.Bool:
		return boolConstConvertTo(c.Bool(), to)
	case scalar.U8:
		return unsignedConstConvertTo(c.U8(), to)
	case scalar.U16:
		return unsignedConstConvertTo(c.U16(), to)
	case scalar.U32:
		return unsignedConstConvertTo(c.U32(), to)
	case scalar.U64:
		return unsignedConstConvertTo(c.U64(), to)
	case scalar.I8:
		return signedConstConvertTo(c.I8(), to)
	case scalar.I16:
		return signedConstConvertTo(c.I16(), to)
	case scalar.I32:
		return signedConstConvertTo(c.I32(), to)
	case scalar.I64:
		return signedConstConvertTo(c.I64(), to)
	case scalar.F32:
		return floatConstConvertTo(c.F32(), to)
	case scalar.F64:
		return floatConstConvertTo(c.F64(), to)
	case scalar.U128:
		lo, hi := c.U128()
		return u128ConstConvertTo(kernel.U128{lo, hi}, to)
	case scalar.I128:
		lo, hi := c.I128()
		return i128ConstConvertTo(kernel.I128{lo, uint64(hi)}, to)
	default:
		panic("vec: convertConst on invalid Ty")
	}
}

func boolConstConvertTo(v bool, to scalar.Ty) operand.Const {
	raw := b2u8(v)
	switch to {
	case scalar.U128:
		p := kernel.BoolToU128Const(raw)
		return operand.ConstU128(p[0], p[1])
	case scalar.I128:
		p := kernel.BoolToI128Const(raw)
		return operand.ConstI128(p[0], int64(p[1]))
	default:
		return wrapNumericConst(to, kernel.BoolToNumericConst[float64](raw))
	}
}

func unsignedConstConvertTo[S kernel.UnsignedInt](v S, to scalar.Ty) operand.Const {
	switch to {
	case scalar.Bool:
		return operand.ConstBool(kernel.NumericToBoolConst(v) != 0)
	case scalar.U8:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint8](v))
	case scalar.U16:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint16](v))
	case scalar.U32:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint32](v))
	case scalar.U64:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint64](v))
	case scalar.I8:
		return wrapNumericConst(to, kernel.ConvertConst[S, int8](v))
	case scalar.I16:
		return wrapNumericConst(to, kernel.ConvertConst[S, int16](v))
	case scalar.I32:
		return wrapNumericConst(to, kernel.ConvertConst[S, int32](v))
	case scalar.I64:
		return wrapNumericConst(to, kernel.ConvertConst[S, int64](v))
	case scalar.F32:
		return wrapNumericConst(to, kernel.ConvertConst[S, float32](v))
	case scalar.F64:
		return wrapNumericConst(to, kernel.ConvertConst[S, float64](v))
	case scalar.U128:
		p := kernel.UnsignedToU128Const(v)
		return operand.ConstU128(p[0], p[1])
	case scalar.I128:
		p := kernel.UnsignedToI128Const(v)
		return operand.ConstI128(p[0], int64(p[1]))
	default:
		panic("vec: unsignedConstConvertTo invalid destination")
	}
}

func signedConstConvertTo[S kernel.SignedInt](v S, to scalar.Ty) operand.Const {
	switch to {
	case scalar.Bool:
		return operand.ConstBool(kernel.NumericToBoolConst(v) != 0)
	case scalar.U8:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint8](v))
	case scalar.U16:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint16](v))
	case scalar.U32:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint32](v))
	case scalar.U64:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint64](v))
	case scalar.I8:
		return wrapNumericConst(to, kernel.ConvertConst[S, int8](v))
	case scalar.I16:
		return wrapNumericConst(to, kernel.ConvertConst[S, int16](v))
	case scalar.I32:
		return wrapNumericConst(to, kernel.ConvertConst[S, int32](v))
	case scalar.I64:
		return wrapNumericConst(to, kernel.ConvertConst[S, int64](v))
	case scalar.F32:
		return wrapNumericConst(to, kernel.ConvertConst[S, float32](v))
	case scalar.F64:
		return wrapNumericConst(to, kernel.ConvertConst[S, float64](v))
	case scalar.U128:
		p := kernel.SignedToU128Const(v)
		return operand.ConstU128(p[0], p[1])
	case scalar.I128:
		p := kernel.SignedToI128Const(v)
		return operand.ConstI128(p[0], int64(p[1]))
	default:
		panic("vec: signedConstConvertTo invalid destination")
	}
}

func floatConstConvertTo[S kernel.Float](v S, to scalar.Ty) operand.Const {
	switch to {
	case scalar.Bool:
		return operand.ConstBool(kernel.NumericToBoolConst(v) != 0)
	case scalar.U8:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint8](v))
	case scalar.U16:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint16](v))
	case scalar.U32:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint32](v))
	case scalar.U64:
		return wrapNumericConst(to, kernel.ConvertConst[S, uint64](v))
	case scalar.I8:
		return wrapNumericConst(to, kernel.ConvertConst[S, int8](v))
	case scalar.I16:
		return wrapNumericConst(to, kernel.ConvertConst[S, int16](v))
	case scalar.I32:
		return wrapNumericConst(to, kernel.ConvertConst[S, int32](v))
	case scalar.I64:
		return wrapNumericConst(to, kernel.ConvertConst[S, int64](v))
	case scalar.F32:
		return wrapNumericConst(to, kernel.ConvertConst[S, float32](v))
	case scalar.F64:
		return wrapNumericConst(to, kernel.ConvertConst[S, float64](v))
	case scalar.U128:
		p := kernel.FloatToU128Const(v)
		return operand.ConstU128(p[0], p[1])
	case scalar.I128:
		p := kernel.FloatToI128Const(v)
		return operand.ConstI128(p[0], int64(p[1]))
	default:
		panic("vec: floatConstConvertTo invalid destination")
	}
}

func u128ConstConvertTo(v kernel.U128, to scalar.Ty) operand.Const {
	switch to {
	case scalar.Bool:
		return operand.ConstBool(kernel.U128ToBoolConst(v) != 0)
	case scalar.U8:
		return operand.ConstU8(kernel.U128ToUnsignedConst[uint8](v))
	case scalar.U16:
		return operand.ConstU16(kernel.U128ToUnsignedConst[uint16](v))
	case scalar.U32:
		return operand.ConstU32(kernel.U128ToUnsignedConst[uint32](v))
	case scalar.U64:
		return operand.ConstU64(kernel.U128ToUnsignedConst[uint64](v))
	case scalar.I8:
		return operand.ConstI8(kernel.U128ToSignedConst[int8](v))
	case scalar.I16:
		return operand.ConstI16(kernel.U128ToSignedConst[int16](v))
	case scalar.I32:
		return operand.ConstI32(kernel.U128ToSignedConst[int32](v))
	case scalar.I64:
		return operand.ConstI64(kernel.U128ToSignedConst[int64](v))
	case scalar.F32:
		return operand.ConstF32(kernel.U128ToFloatConst[float32](v))
	case scalar.F64:
		return operand.ConstF64(kernel.U128ToFloatConst[float64](v))
	case scalar.I128:
		return operand.ConstI128(v[0], int64(v[1]))
	default:
		panic("vec: u128ConstConvertTo invalid destination")
	}
}

func i128ConstConvertTo(v kernel.I128, to scalar.Ty) operand.Const {
	switch to {
	case scalar.Bool:
		return operand.ConstBool(kernel.I128ToBoolConst(v) != 0)
	case scalar.U8:
		return operand.ConstU8(kernel.I128ToUnsignedConst[uint8](v))
	case scalar.U16:
		return operand.ConstU16(kernel.I128ToUnsignedConst[uint16](v))
	case scalar.U32:
		return operand.ConstU32(kernel.I128ToUnsignedConst[uint32](v))
	case scalar.U64:
		return operand.ConstU64(kernel.I128ToUnsignedConst[uint64](v))
	case scalar.I8:
		return operand.ConstI8(kernel.I128ToSignedConst[int8](v))
	case scalar.I16:
		return operand.ConstI16(kernel.I128ToSignedConst[int16](v))
	case scalar.I32:
		return operand.ConstI32(kernel.I128ToSignedConst[int32](v))
	case scalar.I64:
		return operand.ConstI64(kernel.I128ToSignedConst[int64](v))
	case scalar.F32:
		return operand.ConstF32(kernel.I128ToFloatConst[float32](v))
	case scalar.F64:
		return operand.ConstF64(kernel.I128ToFloatConst[float64](v))
	case scalar.U128:
		return operand.ConstU128(v[0], v[1])
	default:
		panic("vec: i128ConstConvertTo invalid destination")
	}
}

// convertSlice converts src into a freshly-viewed destination backed by
// buf, per spec.md §4.4/§5. buf must be large enough for n elements of
// the destination type and aligned for it; simdView checks both, but
// not chunk divisibility.
func convertSlice(src operand.Slice, to scalar.Ty, buf []byte) (operand.Slice, error) {
	n := src.Len()
	switch src.Ty() {
	case scalar.Bool:
		return boolSliceConvertTo(src.Bool(), to, buf, n)
	case scalar.U8:
		return unsignedSliceConvertTo(src.U8(), to, buf, n)
	case scalar.U16:
		return unsignedSliceConvertTo(src.U16(), to, buf, n)
	case scalar.U32:
		return unsignedSliceConvertTo(src.U32(), to, buf, n)
	case scalar.U64:
		return unsignedSliceConvertTo(src.U64(), to, buf, n)
	case scalar.I8:
		return signedSliceConvertTo(src.I8(), to, buf, n)
	case scalar.I16:
		return signedSliceConvertTo(src.I16(), to, buf, n)
	case scalar.I32:
		return signedSliceConvertTo(src.I32(), to, buf, n)
	case scalar.I64:
		return signedSliceConvertTo(src.I64(), to, buf, n)
	case scalar.F32:
		return floatSliceConvertTo(src.F32(), to, buf, n)
	case scalar.F64:
		return floatSliceConvertTo(src.F64(), to, buf, n)
	case scalar.U128:
		return u128SliceConvertTo(src.U128(), to, buf, n)
	case scalar.I128:
		return i128SliceConvertTo(src.I128(), to, buf, n)
	default:
		panic("vec: convertSlice on invalid Ty")
	}
}

func boolSliceConvertTo(src []uint8, to scalar.Ty, buf []byte, n int) (operand.Slice, error) {
	switch to {
	case scalar.U128:
		dst, err := simdView[kernel.U128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.BoolToU128Slice(dst, src)
		return operand.SliceU128(dst), nil
	case scalar.I128:
		dst, err := simdView[kernel.I128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.BoolToI128Slice(dst, src)
		return operand.SliceI128(dst), nil
	default:
		return numericDestFromBool(src, to, buf, n)
	}
}

func numericDestFromBool(src []uint8, to scalar.Ty, buf []byte, n int) (operand.Slice, error) {
	switch to {
	case scalar.U8:
		return convertBoolTo[uint8](src, to, buf, n)
	case scalar.U16:
		return convertBoolTo[uint16](src, to, buf, n)
	case scalar.U32:
		return convertBoolTo[uint32](src, to, buf, n)
	case scalar.U64:
		return convertBoolTo[uint64](src, to, buf, n)
	case scalar.I8:
		return convertBoolTo[int8](src, to, buf, n)
	case scalar.I16:
		return convertBoolTo[int16](src, to, buf, n)
	case scalar.I32:
		return convertBoolTo[int32](src, to, buf, n)
	case scalar.I64:
		return convertBoolTo[int64](src, to, buf, n)
	case scalar.F32:
		return convertBoolTo[float32](src, to, buf, n)
	case scalar.F64:
		return convertBoolTo[float64](src, to, buf, n)
	default:
		panic("vec: numericDestFromBool invalid destination")
	}
}

func convertBoolTo[D kernel.Numeric](src []uint8, to scalar.Ty, buf []byte, n int) (operand.Slice, error) {
	dst, err := simdView[D](buf, n)
	if err != nil {
		return operand.Slice{}, err
	}
	kernel.BoolToNumericSlice(dst, src)
	return wrapNumericSlice(to, dst), nil
}

func unsignedSliceConvertTo[S kernel.UnsignedInt](src []S, to scalar.Ty, buf []byte, n int) (operand.Slice, error) {
	switch to {
	case scalar.Bool:
		dst, err := simdView[uint8](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.NumericToBoolSlice(dst, src)
		return operand.SliceBool(dst), nil
	case scalar.U8:
		return convertNumericTo[S, uint8](src, to, buf, n)
	case scalar.U16:
		return convertNumericTo[S, uint16](src, to, buf, n)
	case scalar.U32:
		return convertNumericTo[S, uint32](src, to, buf, n)
	case scalar.U64:
		return convertNumericTo[S, uint64](src, to, buf, n)
	case scalar.I8:
		return convertNumericTo[S, int8](src, to, buf, n)
	case scalar.I16:
		return convertNumericTo[S, int16](src, to, buf, n)
	case scalar.I32:
		return convertNumericTo[S, int32](src, to, buf, n)
	case scalar.I64:
		return convertNumericTo[S, int64](src, to, buf, n)
	case scalar.F32:
		return convertNumericTo[S, float32](src, to, buf, n)
	case scalar.F64:
		return convertNumericTo[S, float64](src, to, buf, n)
	case scalar.U128:
		dst, err := simdView[kernel.U128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.UnsignedToU128Slice(dst, src)
		return operand.SliceU128(dst), nil
	case scalar.I128:
		dst, err := simdView[kernel.I128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.UnsignedToI128Slice(dst, src)
		return operand.SliceI128(dst), nil
	default:
		panic("vec: unsignedSliceConvertTo invalid destination")
	}
}

func signedSliceConvertTo[S kernel.SignedInt](src []S, to scalar.Ty, buf []byte, n int) (operand.Slice, error) {
	switch to {
	case scalar.Bool:
		dst, err := simdView[uint8](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.NumericToBoolSlice(dst, src)
		return operand.SliceBool(dst), nil
	case scalar.U8:
		return convertNumericTo[S, uint8](src, to, buf, n)
	case scalar.U16:
		return convertNumericTo[S, uint16](src, to, buf, n)
	case scalar.U32:
		return convertNumericTo[S, uint32](src, to, buf, n)
	case scalar.U64:
		return convertNumericTo[S, uint64](src, to, buf, n)
	case scalar.I8:
		return convertNumericTo[S, int8](src, to, buf, n)
	case scalar.I16:
		return convertNumericTo[S, int16](src, to, buf, n)
	case scalar.I32:
		return convertNumericTo[S, int32](src, to, buf, n)
	case scalar.I64:
		return convertNumericTo[S, int64](src, to, buf, n)
	case scalar.F32:
		return convertNumericTo[S, float32](src, to, buf, n)
	case scalar.F64:
		return convertNumericTo[S, float64](src, to, buf, n)
	case scalar.U128:
		dst, err := simdView[kernel.U128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.SignedToU128Slice(dst, src)
		return operand.SliceU128(dst), nil
	case scalar.I128:
		dst, err := simdView[kernel.I128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.SignedToI128Slice(dst, src)
		return operand.SliceI128(dst), nil
	default:
		panic("vec: signedSliceConvertTo invalid destination")
	}
}

func floatSliceConvertTo[S kernel.Float](src []S, to scalar.Ty, buf []byte, n int) (operand.Slice, error) {
	switch to {
	case scalar.Bool:
		dst, err := simdView[uint8](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.NumericToBoolSlice(dst, src)
		return operand.SliceBool(dst), nil
	case scalar.U8:
		return convertNumericTo[S, uint8](src, to, buf, n)
	case scalar.U16:
		return convertNumericTo[S, uint16](src, to, buf, n)
	case scalar.U32:
		return convertNumericTo[S, uint32](src, to, buf, n)
	case scalar.U64:
		return convertNumericTo[S, uint64](src, to, buf, n)
	case scalar.I8:
		return convertNumericTo[S, int8](src, to, buf, n)
	case scalar.I16:
		return convertNumericTo[S, int16](src, to, buf, n)
	case scalar.I32:
		return convertNumericTo[S, int32](src, to, buf, n)
	case scalar.I64:
		return convertNumericTo[S, int64](src, to, buf, n)
	case scalar.F32:
		return convertNumericTo[S, float32](src, to, buf, n)
	case scalar.F64:
		return convertNumericTo[S, float64](src, to, buf, n)
	case scalar.U128:
		dst, err := simdView[kernel.U128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.FloatToU128Slice(dst, src)
		return operand.SliceU128(dst), nil
	case scalar.I128:
		dst, err := simdView[kernel.I128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.FloatToI128Slice(dst, src)
		return operand.SliceI128(dst), nil
	default:
		panic("vec: floatSliceConvertTo invalid destination")
	}
}

func convertNumericTo[S, D kernel.Numeric](src []S, to scalar.Ty, buf []byte, n int) (operand.Slice, error) {
	dst, err := simdView[D](buf, n)
	if err != nil {
		return operand.Slice{}, err
	}
	kernel.ConvertSlice[S, D](dst, src)
	return wrapNumericSlice(to, dst), nil
}

func u128SliceConvertTo(src [][2]uint64, to scalar.Ty, buf []byte, n int) (operand.Slice, error) {
	u := src
	switch to {
	case scalar.Bool:
		dst, err := simdView[uint8](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.U128ToBoolSlice(dst, u)
		return operand.SliceBool(dst), nil
	case scalar.U8:
		return convertFromU128[uint8](u, to, buf, n, kernel.U128ToUnsignedSlice[uint8])
	case scalar.U16:
		return convertFromU128[uint16](u, to, buf, n, kernel.U128ToUnsignedSlice[uint16])
	case scalar.U32:
		return convertFromU128[uint32](u, to, buf, n, kernel.U128ToUnsignedSlice[uint32])
	case scalar.U64:
		return convertFromU128[uint64](u, to, buf, n, kernel.U128ToUnsignedSlice[uint64])
	case scalar.I8:
		return convertFromU128[int8](u, to, buf, n, kernel.U128ToSignedSlice[int8])
	case scalar.I16:
		return convertFromU128[int16](u, to, buf, n, kernel.U128ToSignedSlice[int16])
	case scalar.I32:
		return convertFromU128[int32](u, to, buf, n, kernel.U128ToSignedSlice[int32])
	case scalar.I64:
		return convertFromU128[int64](u, to, buf, n, kernel.U128ToSignedSlice[int64])
	case scalar.F32:
		return convertFromU128[float32](u, to, buf, n, kernel.U128ToFloatSlice[float32])
	case scalar.F64:
		return convertFromU128[float64](u, to, buf, n, kernel.U128ToFloatSlice[float64])
	case scalar.I128:
		dst, err := simdView[kernel.I128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.U128ToI128Slice(dst, u)
		return operand.SliceI128(dst), nil
	default:
		panic("vec: u128SliceConvertTo invalid destination")
	}
}

func i128SliceConvertTo(src [][2]uint64, to scalar.Ty, buf []byte, n int) (operand.Slice, error) {
	v := src
	switch to {
	case scalar.Bool:
		dst, err := simdView[uint8](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.I128ToBoolSlice(dst, v)
		return operand.SliceBool(dst), nil
	case scalar.U8:
		return convertFromU128[uint8](v, to, buf, n, kernel.I128ToUnsignedSlice[uint8])
	case scalar.U16:
		return convertFromU128[uint16](v, to, buf, n, kernel.I128ToUnsignedSlice[uint16])
	case scalar.U32:
		return convertFromU128[uint32](v, to, buf, n, kernel.I128ToUnsignedSlice[uint32])
	case scalar.U64:
		return convertFromU128[uint64](v, to, buf, n, kernel.I128ToUnsignedSlice[uint64])
	case scalar.I8:
		return convertFromU128[int8](v, to, buf, n, kernel.I128ToSignedSlice[int8])
	case scalar.I16:
		return convertFromU128[int16](v, to, buf, n, kernel.I128ToSignedSlice[int16])
	case scalar.I32:
		return convertFromU128[int32](v, to, buf, n, kernel.I128ToSignedSlice[int32])
	case scalar.I64:
		return convertFromU128[int64](v, to, buf, n, kernel.I128ToSignedSlice[int64])
	case scalar.F32:
		return convertFromU128[float32](v, to, buf, n, kernel.I128ToFloatSlice[float32])
	case scalar.F64:
		return convertFromU128[float64](v, to, buf, n, kernel.I128ToFloatSlice[float64])
	case scalar.U128:
		dst, err := simdView[kernel.U128](buf, n)
		if err != nil {
			return operand.Slice{}, err
		}
		kernel.I128ToU128Slice(dst, v)
		return operand.SliceU128(dst), nil
	default:
		panic("vec: i128SliceConvertTo invalid destination")
	}
}

// convertFromU128 shares the "view buf as []D, run fill, wrap" steps
// common to every 128-bit-source conversion; fill is one of the
// U128ToXSlice/I128ToXSlice kernel functions, already bound to its
// 128-bit source type by the caller.
func convertFromU128[D kernel.Numeric](src []kernel.U128, to scalar.Ty, buf []byte, n int, fill func(dst []D, src []kernel.U128)) (operand.Slice, error) {
	dst, err := simdView[D](buf, n)
	if err != nil {
		return operand.Slice{}, err
	}
	fill(dst, src)
	return wrapNumericSlice(to, dst), nil
}
