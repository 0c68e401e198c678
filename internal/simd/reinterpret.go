// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package simd holds the single unsafe operation in the evaluator core:
// reinterpreting a caller-supplied byte buffer as a typed slice of a
// fixed-width scalar element, guarded by the three preconditions spec.md
// §5 names (alignment, size-multiple, chunk-divisibility). Everything
// above this package works with plain Go slices; only this package
// reaches for unsafe.Pointer, and only at the byte<->typed boundary.
package simd

import (
	"fmt"
	"unsafe"
)

// VECBYTES is the logical SIMD vector width in bytes (spec.md §3).
const VECBYTES = 64

// CHUNKBYTES is the per-worker-chunk byte size (spec.md §3).
const CHUNKBYTES = 65536

// Stepsz returns the vector-step element count for a kernel with input
// element size a and output element size b, in bytes.
func Stepsz(a, b int) int {
	m := a
	if b > m {
		m = b
	}
	return VECBYTES / m
}

// Chunksz returns the chunk-step element count for a kernel with input
// element size a and output element size b, in bytes.
func Chunksz(a, b int) int {
	m := a
	if b > m {
		m = b
	}
	return CHUNKBYTES / m
}

// ViewError reports which of View's three preconditions failed
// (alignment, size, or chunk-divisibility); callers (vec's viewOut and simdView)
// translate any ViewError into a single BadBuffer error kind but the
// Reason string keeps the distinction for diagnostics.
type ViewError struct {
	Reason string
}

func (e *ViewError) Error() string { return e.Reason }

// checkPreconditions validates that buf can be reinterpreted as a
// slice of n elements of size elemSize and alignment elemAlign,
// checking:
//  1. buf's base address is aligned to elemAlign;
//  2. n*elemSize <= len(buf);
//  3. n is a multiple of chunkElems (when chunkElems > 0).
//
// It returns a *ViewError describing which precondition failed, or nil.
// The caller is responsible for actually casting the validated byte
// window with unsafe.Slice, keeping the unsafe cast itself a one-line
// operation at each call site (View).
func checkPreconditions(buf []byte, n, elemSize, elemAlign, chunkElems int) error {
	if n == 0 {
		return nil
	}
	if len(buf) == 0 {
		return &ViewError{Reason: "buffer is empty but element count is not zero"}
	}
	base := uintptr(unsafe.Pointer(&buf[0]))
	if base%uintptr(elemAlign) != 0 {
		return &ViewError{Reason: fmt.Sprintf("buffer base not aligned to %d bytes", elemAlign)}
	}
	need := n * elemSize
	if need > len(buf) {
		return &ViewError{Reason: fmt.Sprintf("buffer has %d bytes, need %d", len(buf), need)}
	}
	if chunkElems > 0 && n%chunkElems != 0 {
		return &ViewError{Reason: fmt.Sprintf("element count %d is not a multiple of chunk size %d", n, chunkElems)}
	}
	return nil
}

// View reinterprets the first n*sizeof(T) bytes of buf as a []T, after
// validating alignment, size and chunk-divisibility. chunkElems == 0
// skips the chunk-divisibility check (used for const-shape conversions,
// which never touch the parallel skeleton).
func View[T any](buf []byte, n, chunkElems int) ([]T, error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	elemAlign := int(unsafe.Alignof(zero))
	if err := checkPreconditions(buf, n, elemSize, elemAlign, chunkElems); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), n), nil
}
