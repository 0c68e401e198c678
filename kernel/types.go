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

// Package kernel implements the kernel traits (C3), the kernel family
// instantiations (C6) and the conversion kernels (C7) of spec.md §4.3/§4.4.
//
// Each (opcode, element-type) kernel body lives exactly once in the
// binary, per spec.md §9's monomorphization discipline; this is
// achieved with Go generics rather than macro expansion, parameterized
// over Numeric (the ten native Go scalar types) with U128/I128 handled
// by dedicated non-generic bodies in i128.go, since Go has no native
// 128-bit integer type.
//
// Every kernel body here is the direct generalization of the teacher's
// scalar ("*go"-suffixed) fallback kernels (vm/interpi64.go,
// vm/interpfloat.go): a single indexed loop over one chunk's worth of
// lanes. The teacher's own fallback kernels are themselves plain Go
// loops, not hand-unrolled assembly, so no further manual "SIMD step"
// subdivision is performed inside a chunk body — stepsz/chunksz govern
// the *size* invariants the router and skeleton must enforce, not the
// shape of the loop itself.
package kernel

import "golang.org/x/exp/constraints"

// Numeric covers the ten scalar element types Go can represent
// natively (everything in scalar.Ty except Bool, U128, I128). Through
// constraints.Integer it also admits int, uint and uintptr, which no
// scalar.Ty maps to.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Signed is the subset of Numeric that supports negation.
type Signed interface {
	constraints.Signed | constraints.Float
}

// U128 and I128 represent the two 128-bit scalar types as a
// (low, high) pair of 64-bit words, little-endian; I128's high word is
// the two's-complement sign-extended half. Go has no native 128-bit
// integer, so these are handled by dedicated bodies (i128.go) rather
// than generic instantiation.
type U128 = [2]uint64
type I128 = [2]uint64
