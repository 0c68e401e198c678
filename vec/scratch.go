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
	"unsafe"

	"github.com/SnellerInc/vecker/ints"
)

// minScratchAlign is the minimum alignment spec.md §3 requires of the
// scratch buffers ("aligned to at least 16 bytes").
const minScratchAlign = 16

// EvalCtx is the scratch context of spec.md §3: three contiguous byte
// buffers the caller supplies, borrowed exclusively for the duration
// of one evaluation and consumed by it. A single EvalCtx must not be
// reused concurrently or across calls without the caller explicitly
// re-acquiring it (spec.md §5, "No reentrancy").
type EvalCtx struct {
	Tmp1, Tmp2, Out []byte
}

func alignedBase(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&buf[0]))
}

// validateShape checks the two structural preconditions every one
// of the three buffers must satisfy regardless of which promotion
// type a given call uses: length is a multiple of CHUNKBYTES, and the
// base address is aligned to at least minScratchAlign bytes.
func (c *EvalCtx) validateShape() error {
	return errors.Join(
		validateBuf("tmp1", c.Tmp1),
		validateBuf("tmp2", c.Tmp2),
		validateBuf("out", c.Out),
	)
}

func validateBuf(name string, buf []byte) error {
	if len(buf) == 0 {
		return nil // an empty buffer is legal; see the empty-column Open Question.
	}
	if !ints.IsAligned64(uint64(len(buf)), CHUNKBYTES) {
		return badBuffer(name, "length is not a multiple of CHUNKBYTES")
	}
	if !ints.IsAligned64(uint64(alignedBase(buf)), minScratchAlign) {
		return badBuffer(name, "base address is not aligned to 16 bytes")
	}
	return nil
}
