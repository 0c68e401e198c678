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
	"fmt"

	"github.com/SnellerInc/vecker/scalar"
)

// ErrUnsupportedOp and ErrBadBuffer are the two error kinds of spec.md
// §7; match against them with errors.Is, the same idiom vm/table.go
// uses against io.EOF.
var ErrUnsupportedOp = errors.New("unsupported op")

// ErrBadBuffer is the sentinel for scratch-buffer validation failures.
var ErrBadBuffer = errors.New("bad buffer")

// ErrDivideByZero is the third error kind the Open Question in
// spec.md §9 invites: integer division/remainder by a zero divisor is
// surfaced as a checked error rather than reaching the caller as a
// platform trap, and rather than being misreported as UnsupportedOp
// (the operation itself is supported; the operands are not).
var ErrDivideByZero = errors.New("integer divide by zero")

// UnsupportedOpError reports that an (opcode, type) combination has no
// kernel, per the support matrix of spec.md §4.3.
type UnsupportedOpError struct {
	Op   fmt.Stringer
	Type scalar.Ty
}

func (e *UnsupportedOpError) Error() string {
	return fmt.Sprintf("unsupported op %s on %s", e.Op, e.Type)
}

func (e *UnsupportedOpError) Unwrap() error { return ErrUnsupportedOp }

func unsupported(op fmt.Stringer, t scalar.Ty) error {
	errorf("unsupported op %s on %s", op, t)
	return &UnsupportedOpError{Op: op, Type: t}
}

// BadBufferError reports that a scratch buffer failed alignment,
// size-multiple, or chunk-divisibility validation (spec.md §5, §7).
type BadBufferError struct {
	Buffer string
	Reason string
}

func (e *BadBufferError) Error() string {
	return fmt.Sprintf("%s: %s", e.Buffer, e.Reason)
}

func (e *BadBufferError) Unwrap() error { return ErrBadBuffer }

func badBuffer(buffer, reason string) error {
	errorf("bad buffer %s: %s", buffer, reason)
	return &BadBufferError{Buffer: buffer, Reason: reason}
}
