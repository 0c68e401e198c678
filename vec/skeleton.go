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

// Chunked SIMD execution skeletons (C5, spec.md §4.2). There are two
// shapes — unary (one input slice) and binary (two input slices) —
// each partitioning its input(s) and output into disjoint,
// chunk-aligned windows and running one body call per window on the
// process-wide worker pool (internal/pool). slice_const and
// const_slice shapes reuse the unary skeleton with the constant
// broadcast ahead of time by the caller (vec/router.go), exactly as
// spec.md §4.2 describes.
package vec

import (
	"github.com/SnellerInc/vecker/internal/pool"
	"github.com/SnellerInc/vecker/ints"
)

// runUnary partitions src/dst (both length n, a multiple of
// chunkElems) into n/chunkElems windows and calls body once per
// window on the shared worker pool, blocking until every window has
// completed.
func runUnary[S, D any](n, chunkElems int, src []S, dst []D, body func(dst []D, src []S)) {
	if n == 0 {
		return
	}
	nChunks := int(ints.ChunkCount(uint(n), uint(chunkElems)))
	if nChunks <= 1 {
		body(dst[:n], src[:n])
		return
	}
	pool.Run(nChunks, func(i int) {
		lo, hi := i*chunkElems, (i+1)*chunkElems
		body(dst[lo:hi], src[lo:hi])
	})
}

// runBinary is the two-input counterpart of runUnary.
func runBinary[S, D any](n, chunkElems int, lhs, rhs []S, dst []D, body func(dst []D, lhs, rhs []S)) {
	if n == 0 {
		return
	}
	nChunks := int(ints.ChunkCount(uint(n), uint(chunkElems)))
	if nChunks <= 1 {
		body(dst[:n], lhs[:n], rhs[:n])
		return
	}
	pool.Run(nChunks, func(i int) {
		lo, hi := i*chunkElems, (i+1)*chunkElems
		body(dst[lo:hi], lhs[lo:hi], rhs[lo:hi])
	})
}

// applySliceConst implements the slice_const per-step body: the
// constant b is held outside the loop (spec.md §4.2: "broadcast to a
// vector outside the loop... held in a register") rather than
// materialized into a scratch buffer, since nothing here needs it to
// occupy memory.
func applySliceConst[T, U any](dst []U, a []T, b T, op func(T, T) U) {
	for i := range dst {
		dst[i] = op(a[i], b)
	}
}

// applyConstSlice implements the const_slice per-step body.
func applyConstSlice[T, U any](dst []U, a T, b []T, op func(T, T) U) {
	for i := range dst {
		dst[i] = op(a, b[i])
	}
}
