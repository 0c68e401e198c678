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
	"fmt"
	"runtime"

	"github.com/SnellerInc/vecker/internal/simd"
	"github.com/SnellerInc/vecker/scalar"
)

// VECBYTES is the logical SIMD vector width in bytes (spec.md §3, §6).
const VECBYTES = simd.VECBYTES

// CHUNKBYTES is the per-worker-chunk byte size (spec.md §3, §6).
const CHUNKBYTES = simd.CHUNKBYTES

// stepsz returns the vector-step element count for a kernel whose
// input element type is a and output element type is b.
func stepsz(a, b scalar.Ty) int { return simd.Stepsz(a.Size(), b.Size()) }

// chunksz returns the chunk-step element count for a kernel whose
// input element type is a and output element type is b.
func chunksz(a, b scalar.Ty) int { return simd.Chunksz(a.Size(), b.Size()) }

// Describe returns a one-line diagnostic summary of the evaluator's
// static configuration, useful for a hosting interpreter's startup
// log; not part of the required surface of spec.md, purely additive
// (see SPEC_FULL.md's "Supplemented features").
func Describe() string {
	return fmt.Sprintf("vecker: VECBYTES=%d CHUNKBYTES=%d workers=%d",
		VECBYTES, CHUNKBYTES, runtime.GOMAXPROCS(0))
}
