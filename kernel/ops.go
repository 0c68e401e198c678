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
	"fmt"

	"github.com/SnellerInc/vecker/scalar"
)

// ValBinOp enumerates the value-returning binary opcodes (spec.md §4.3).
type ValBinOp uint8

const (
	Add ValBinOp = iota
	Sub
	Mul
	Div
	Rem
	Min
	Max
	Pow
	BitAnd
	BitOr
	BitXor
)

var valBinOpNames = [...]string{
	Add: "Add", Sub: "Sub", Mul: "Mul", Div: "Div", Rem: "Rem",
	Min: "Min", Max: "Max", Pow: "Pow",
	BitAnd: "BitAnd", BitOr: "BitOr", BitXor: "BitXor",
}

func (o ValBinOp) String() string {
	if int(o) < len(valBinOpNames) {
		return valBinOpNames[o]
	}
	return fmt.Sprintf("ValBinOp(%d)", uint8(o))
}

// ValUnOp enumerates the value-returning unary opcodes (spec.md §4.3).
type ValUnOp uint8

const (
	Neg ValUnOp = iota
	BitNot
	Abs
	Ln
	Exp
	Sqrt
	Sin
	Cos
)

var valUnOpNames = [...]string{
	Neg: "Neg", BitNot: "BitNot", Abs: "Abs", Ln: "Ln",
	Exp: "Exp", Sqrt: "Sqrt", Sin: "Sin", Cos: "Cos",
}

func (o ValUnOp) String() string {
	if int(o) < len(valUnOpNames) {
		return valUnOpNames[o]
	}
	return fmt.Sprintf("ValUnOp(%d)", uint8(o))
}

// BoolBinOp enumerates the predicate-returning binary opcodes.
type BoolBinOp uint8

const (
	Lt BoolBinOp = iota
	Le
	Eq
	Ne
	Ge
	Gt
)

var boolBinOpNames = [...]string{
	Lt: "Lt", Le: "Le", Eq: "Eq", Ne: "Ne", Ge: "Ge", Gt: "Gt",
}

func (o BoolBinOp) String() string {
	if int(o) < len(boolBinOpNames) {
		return boolBinOpNames[o]
	}
	return fmt.Sprintf("BoolBinOp(%d)", uint8(o))
}

// BoolUnOp enumerates the predicate-returning unary opcodes.
type BoolUnOp uint8

const (
	IsNaN BoolUnOp = iota
	IsInf
	IsFin
)

var boolUnOpNames = [...]string{
	IsNaN: "IsNaN", IsInf: "IsInf", IsFin: "IsFin",
}

func (o BoolUnOp) String() string {
	if int(o) < len(boolUnOpNames) {
		return boolUnOpNames[o]
	}
	return fmt.Sprintf("BoolUnOp(%d)", uint8(o))
}

// SupportsValBinOp reports whether (op, t) has a kernel per the support
// matrix of spec.md §4.3.
func SupportsValBinOp(op ValBinOp, t scalar.Ty) bool {
	switch op {
	case Add, Sub, Mul, Div, Rem, Min, Max:
		return t != scalar.Bool
	case Pow:
		return t.Float()
	case BitAnd, BitOr, BitXor:
		return t.Integer()
	default:
		return false
	}
}

// SupportsValUnOp reports whether (op, t) has a kernel.
func SupportsValUnOp(op ValUnOp, t scalar.Ty) bool {
	switch op {
	case Neg:
		return t.Signed() || t.Float()
	case BitNot:
		return t.Integer()
	case Abs, Ln, Exp, Sqrt, Sin, Cos:
		return t.Float()
	default:
		return false
	}
}

// SupportsBoolBinOp reports whether (op, t) has a kernel.
func SupportsBoolBinOp(op BoolBinOp, t scalar.Ty) bool {
	switch op {
	case Lt, Le, Eq, Ne, Ge, Gt:
		return t != scalar.Bool
	default:
		return false
	}
}

// SupportsBoolUnOp reports whether (op, t) has a kernel.
func SupportsBoolUnOp(op BoolUnOp, t scalar.Ty) bool {
	switch op {
	case IsNaN, IsInf, IsFin:
		return t.Float()
	default:
		return false
	}
}
