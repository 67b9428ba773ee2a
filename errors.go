// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import (
	"errors"
	"io"
)

var (
	// ErrUnrecognizedFormat is returned when a stream does not start
	// with Magic.
	ErrUnrecognizedFormat = errors.New("huffproc: unrecognized format")
	// ErrCorruptHeader is returned when the serialized tree is truncated
	// or malformed.
	ErrCorruptHeader = errors.New("huffproc: corrupt header")
	// ErrTruncatedStream is returned when the input ends before the
	// pseudo-EOF symbol is decoded.
	ErrTruncatedStream = errors.New("huffproc: truncated stream, no pseudo-EOF")
	// ErrInputChanged is returned when the encoding pass reads a byte
	// that was not seen when counting frequencies.
	ErrInputChanged = errors.New("huffproc: input changed between passes")
)

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
