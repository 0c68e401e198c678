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

import "github.com/SnellerInc/vecker/ints"

// NewAlignedScratch allocates an EvalCtx whose three buffers are each
// at least minBytes long, rounded up to a whole number of CHUNKBYTES
// and mapped via an OS-native page-aligned allocation (see
// scratch_alloc_unix.go / scratch_alloc_windows.go), so every caller
// need not hand-roll alignment bookkeeping. This is a convenience on
// top of the manual "caller supplies three buffers" protocol of §3/§6
// — EvalCtx's zero value built from ordinary byte slices works exactly
// as well, provided the caller enforces the same invariants itself.
func NewAlignedScratch(minBytes int) (*EvalCtx, error) {
	n := int(ints.AlignUp64(uint64(minBytes), CHUNKBYTES))
	if n == 0 {
		n = CHUNKBYTES
	}
	tmp1, err := mmapAligned(n)
	if err != nil {
		return nil, err
	}
	tmp2, err := mmapAligned(n)
	if err != nil {
		return nil, err
	}
	out, err := mmapAligned(n)
	if err != nil {
		return nil, err
	}
	return &EvalCtx{Tmp1: tmp1, Tmp2: tmp2, Out: out}, nil
}
