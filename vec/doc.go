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

// Package vec implements the router/evaluator (C8) and the chunked
// SIMD execution skeletons (C5) that sit on top of the scalar type
// lattice (package scalar), the operand model (package operand) and
// the kernel families (package kernel).
//
// A caller constructs an Operand pair (or single operand) with an
// opcode and hands them, with an EvalCtx scratch context, to one of
// the four entry points (ValBinop, BoolBinop, ValUnop, BoolUnop). The
// router joins the operand types to a promotion type T, converts
// inputs into T-typed views in the scratch buffers, invokes the
// (opcode, T) kernel through its skeleton, and wraps the result back
// into an Operand.
package vec
