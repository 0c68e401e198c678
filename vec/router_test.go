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

package vec

import (
	"errors"
	"math"
	"testing"

	"github.com/SnellerInc/vecker/kernel"
	"github.com/SnellerInc/vecker/operand"
	"github.com/SnellerInc/vecker/scalar"
)

func newScratch(t *testing.T) *EvalCtx {
	t.Helper()
	ctx, err := NewAlignedScratch(16 * CHUNKBYTES)
	if err != nil {
		t.Fatalf("NewAlignedScratch: %v", err)
	}
	return ctx
}

func TestValBinopUnsignedSameTypeAdd(t *testing.T) {
	const n = 64 * 1024
	a := make([]uint32, n)
	b := make([]uint32, n)
	for i := range a {
		a[i] = uint32(i + 1)
		b[i] = uint32(n - i)
	}
	ctx := newScratch(t)
	out, err := ValBinop(kernel.Add, operand.FromSlice(operand.SliceU32(a)), operand.FromSlice(operand.SliceU32(b)), ctx)
	if err != nil {
		t.Fatalf("ValBinop(Add): %v", err)
	}
	if out.Ty() != scalar.U32 {
		t.Fatalf("result type = %s, want U32", out.Ty())
	}
	got := out.AsSlice().U32()
	for i := range got {
		want := a[i] + b[i]
		if got[i] != want {
			t.Fatalf("out[%d] = %d, want %d", i, got[i], want)
		}
	}
}

func TestValBinopCrossTypePromotion(t *testing.T) {
	const n = 64 * 1024
	a := make([]uint8, n)
	b := make([]int8, n)
	for i := range a {
		a[i] = 100
		b[i] = 50
	}
	ctx := newScratch(t)
	lhs := operand.FromSlice(operand.SliceU8(a))
	rhs := operand.FromSlice(operand.SliceI8(b))
	if got := scalar.Join(lhs.Ty(), rhs.Ty()); got != scalar.I16 {
		t.Fatalf("Join(U8,I8) = %s, want I16", got)
	}
	out, err := ValBinop(kernel.Add, lhs, rhs, ctx)
	if err != nil {
		t.Fatalf("ValBinop(Add): %v", err)
	}
	if out.Ty() != scalar.I16 {
		t.Fatalf("result type = %s, want I16", out.Ty())
	}
	got := out.AsSlice().I16()
	for i := range got {
		if got[i] != 150 {
			t.Fatalf("out[%d] = %d, want 150", i, got[i])
		}
	}
}

func TestBoolBinopPredicateBroadcastConst(t *testing.T) {
	const n = 64 * 1024
	a := make([]uint16, n)
	for i := range a {
		a[i] = uint16(i)
	}
	ctx := newScratch(t)
	lhs := operand.FromSlice(operand.SliceU16(a))
	rhs := operand.FromConst(operand.ConstU16(0x100))
	out, err := BoolBinop(kernel.Lt, lhs, rhs, ctx)
	if err != nil {
		t.Fatalf("BoolBinop(Lt): %v", err)
	}
	got := out.AsSlice().Bool()
	for i := range got {
		want := uint8(0)
		if i < 0x100 {
			want = 1
		}
		if got[i] != want {
			t.Fatalf("out[%d] = %d, want %d", i, got[i], want)
		}
	}
}

func TestBoolBinopFloatEqNaN(t *testing.T) {
	const n = 8192 // chunksz(F64, Bool)
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		if i%2 == 0 {
			a[i] = math.NaN()
			b[i] = 1.0
		} else {
			a[i] = float64(i)
			b[i] = float64(i)
		}
	}
	ctx := newScratch(t)
	out, err := BoolBinop(kernel.Eq, operand.FromSlice(operand.SliceF64(a)), operand.FromSlice(operand.SliceF64(b)), ctx)
	if err != nil {
		t.Fatalf("BoolBinop(Eq): %v", err)
	}
	got := out.AsSlice().Bool()
	for i := range got {
		want := uint8(0)
		if a[i] == b[i] {
			want = 1
		}
		if got[i] != want {
			t.Fatalf("out[%d] = %d, want %d (a=%v b=%v)", i, got[i], want, a[i], b[i])
		}
		if i%2 == 0 && got[i] != 0 {
			t.Fatalf("NaN compared equal at index %d", i)
		}
	}
}

func TestValBinopUnsupportedOpLeavesOutputUntouched(t *testing.T) {
	const n = 8192
	a := make([]float64, n)
	b := make([]float64, n)
	ctx := newScratch(t)
	for i := range ctx.Out {
		ctx.Out[i] = 0xAB
	}
	sentinel := make([]byte, len(ctx.Out))
	copy(sentinel, ctx.Out)

	_, err := ValBinop(kernel.BitAnd, operand.FromSlice(operand.SliceF64(a)), operand.FromSlice(operand.SliceF64(b)), ctx)
	if err == nil {
		t.Fatal("expected an error for BitAnd on F64")
	}
	if !errors.Is(err, ErrUnsupportedOp) {
		t.Errorf("error %v does not match ErrUnsupportedOp", err)
	}
	var uo *UnsupportedOpError
	if !errors.As(err, &uo) || uo.Type != scalar.F64 {
		t.Errorf("error %v does not carry the F64 type", err)
	}
	for i := range ctx.Out {
		if ctx.Out[i] != sentinel[i] {
			t.Fatalf("Out buffer was written to despite an unsupported op, at byte %d", i)
		}
	}
}

func TestValBinopBadBufferMisalignment(t *testing.T) {
	raw := make([]byte, CHUNKBYTES+64)
	base := alignedBase(raw)
	offset := 0
	for o := 1; o < 16; o++ {
		if (base+uintptr(o))%16 != 0 {
			offset = o
			break
		}
	}
	if offset == 0 {
		t.Skip("could not find a misaligned offset in this allocation")
	}
	ctx := &EvalCtx{
		Tmp1: raw[offset : offset+CHUNKBYTES],
		Tmp2: make([]byte, CHUNKBYTES),
		Out:  make([]byte, CHUNKBYTES),
	}
	a := operand.FromSlice(operand.SliceU64(make([]uint64, 4)))
	b := operand.FromSlice(operand.SliceU64(make([]uint64, 4)))
	_, err := ValBinop(kernel.Add, a, b, ctx)
	if err == nil {
		t.Fatal("expected BadBuffer for a misaligned scratch buffer")
	}
	if !errors.Is(err, ErrBadBuffer) {
		t.Errorf("error %v does not match ErrBadBuffer", err)
	}
}

func TestValBinopIntegerDivideByZero(t *testing.T) {
	ctx := newScratch(t)
	a := operand.FromSlice(operand.SliceI32([]int32{10, 20, 30}))
	b := operand.FromSlice(operand.SliceI32([]int32{5, 0, 3}))
	_, err := ValBinop(kernel.Div, a, b, ctx)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("ValBinop(Div) with a zero divisor = %v, want ErrDivideByZero", err)
	}

	cv := operand.FromConst(operand.ConstI32(100))
	_, err = ValBinop(kernel.Rem, cv, b, ctx)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("const_slice ValBinop(Rem) with a zero divisor = %v, want ErrDivideByZero", err)
	}
}

func TestValBinopConstConstFold(t *testing.T) {
	ctx := newScratch(t)
	out, err := ValBinop(kernel.Mul, operand.FromConst(operand.ConstI32(7)), operand.FromConst(operand.ConstI32(3)), ctx)
	if err != nil {
		t.Fatalf("ValBinop(Mul) on consts: %v", err)
	}
	if out.IsSlice() {
		t.Fatal("const_const shape produced a slice result")
	}
	if out.AsConst().I32() != 21 {
		t.Errorf("7*3 = %d, want 21", out.AsConst().I32())
	}
}

func TestValUnopNegAbs(t *testing.T) {
	const n = 8192 // chunksz(F64, F64)
	a := make([]float64, n)
	for i := range a {
		a[i] = float64(i) - float64(n)/2
	}
	ctx := newScratch(t)
	neg, err := ValUnop(kernel.Neg, operand.FromSlice(operand.SliceF64(a)), ctx)
	if err != nil {
		t.Fatalf("ValUnop(Neg): %v", err)
	}
	gotNeg := neg.AsSlice().F64()
	for i := range gotNeg {
		if gotNeg[i] != -a[i] {
			t.Fatalf("neg[%d] = %v, want %v", i, gotNeg[i], -a[i])
		}
	}
	abs, err := ValUnop(kernel.Abs, operand.FromSlice(operand.SliceF64(a)), ctx)
	if err != nil {
		t.Fatalf("ValUnop(Abs): %v", err)
	}
	gotAbs := abs.AsSlice().F64()
	for i := range gotAbs {
		if gotAbs[i] != math.Abs(a[i]) {
			t.Fatalf("abs[%d] = %v, want %v", i, gotAbs[i], math.Abs(a[i]))
		}
	}
}

func TestValUnopBitNot(t *testing.T) {
	const n = 16384 // chunksz(U32, U32)
	a := make([]uint32, n)
	for i := range a {
		a[i] = uint32(i * 7)
	}
	ctx := newScratch(t)
	out, err := ValUnop(kernel.BitNot, operand.FromSlice(operand.SliceU32(a)), ctx)
	if err != nil {
		t.Fatalf("ValUnop(BitNot): %v", err)
	}
	got := out.AsSlice().U32()
	for i := range got {
		if got[i] != ^a[i] {
			t.Fatalf("out[%d] = %#x, want %#x", i, got[i], ^a[i])
		}
	}
}

func TestValUnopConstFold(t *testing.T) {
	ctx := newScratch(t)
	out, err := ValUnop(kernel.Neg, operand.FromConst(operand.ConstI32(-5)), ctx)
	if err != nil {
		t.Fatalf("ValUnop(Neg) on const: %v", err)
	}
	if out.IsSlice() || out.AsConst().I32() != 5 {
		t.Errorf("Neg(-5) = %v, want const 5", out)
	}
}

func TestBoolUnopIsNaN(t *testing.T) {
	const n = 16384 // chunksz(F32, Bool)
	a := make([]float32, n)
	for i := range a {
		if i%3 == 0 {
			a[i] = float32(math.NaN())
		} else {
			a[i] = float32(i)
		}
	}
	ctx := newScratch(t)
	out, err := BoolUnop(kernel.IsNaN, operand.FromSlice(operand.SliceF32(a)), ctx)
	if err != nil {
		t.Fatalf("BoolUnop(IsNaN): %v", err)
	}
	got := out.AsSlice().Bool()
	for i := range got {
		want := uint8(0)
		if i%3 == 0 {
			want = 1
		}
		if got[i] != want {
			t.Fatalf("out[%d] = %d, want %d", i, got[i], want)
		}
	}
}

func TestBoolUnopUnsupportedOnInteger(t *testing.T) {
	ctx := newScratch(t)
	_, err := BoolUnop(kernel.IsNaN, operand.FromConst(operand.ConstI32(1)), ctx)
	if !errors.Is(err, ErrUnsupportedOp) {
		t.Fatalf("BoolUnop(IsNaN) on I32 = %v, want ErrUnsupportedOp", err)
	}
}

// TestSupportMatrixNeverPanics sweeps every (op, type) combination across
// all four entry points using the const_const shape, so no buffer sizing
// is involved, and checks that no combination panics; the returned
// results and errors are not inspected.
func TestSupportMatrixNeverPanics(t *testing.T) {
	types := []scalar.Ty{
		scalar.Bool, scalar.U8, scalar.U16, scalar.U32, scalar.U64, scalar.U128,
		scalar.I8, scalar.I16, scalar.I32, scalar.I64, scalar.I128, scalar.F32, scalar.F64,
	}
	oneConst := func(ty scalar.Ty) operand.Const {
		switch ty {
		case scalar.Bool:
			return operand.ConstBool(true)
		case scalar.U8:
			return operand.ConstU8(1)
		case scalar.U16:
			return operand.ConstU16(1)
		case scalar.U32:
			return operand.ConstU32(1)
		case scalar.U64:
			return operand.ConstU64(1)
		case scalar.U128:
			return operand.ConstU128(1, 0)
		case scalar.I8:
			return operand.ConstI8(1)
		case scalar.I16:
			return operand.ConstI16(1)
		case scalar.I32:
			return operand.ConstI32(1)
		case scalar.I64:
			return operand.ConstI64(1)
		case scalar.I128:
			return operand.ConstI128(1, 0)
		case scalar.F32:
			return operand.ConstF32(1)
		default:
			return operand.ConstF64(1)
		}
	}
	ctx := newScratch(t)
	run := func(name string, f func()) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("%s panicked: %v", name, r)
			}
		}()
		f()
	}
	for _, ty := range types {
		lhs := operand.FromConst(oneConst(ty))
		for op := kernel.ValBinOp(0); op <= kernel.BitXor; op++ {
			op := op
			run("ValBinop", func() { ValBinop(op, lhs, lhs, ctx) })
		}
		for op := kernel.BoolBinOp(0); op <= kernel.Gt; op++ {
			op := op
			run("BoolBinop", func() { BoolBinop(op, lhs, lhs, ctx) })
		}
		for op := kernel.ValUnOp(0); op <= kernel.Cos; op++ {
			op := op
			run("ValUnop", func() { ValUnop(op, lhs, ctx) })
		}
		for op := kernel.BoolUnOp(0); op <= kernel.IsFin; op++ {
			op := op
			run("BoolUnop", func() { BoolUnop(op, lhs, ctx) })
		}
	}
}
