// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitstream provides bit level readers and writers over io.Reader
// and io.Writer. Bits are packed into bytes with the most significant bit
// being the first bit, that is, the bitstream can be visualized as flowing
// from left to right.
package bitstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// ErrNotRewindable is returned by Reset for a Reader created by NewReader.
var ErrNotRewindable = errors.New("bitstream: reader cannot be reset")

// Reader reads values of up to 64 bits from an underlying io.Reader. The
// end of the stream is signaled by io.EOF, including the case where fewer
// bits than requested remain.
type Reader struct {
	br     *bitio.Reader
	rewind func() (io.Reader, error)
	bits   uint64
}

// NewReader returns a Reader that reads rd exactly once.
func NewReader(rd io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(rd)}
}

// NewRewindableReader returns a Reader whose Reset method restarts reading
// from the beginning of rd. If rd implements io.Seeker, Reset seeks back to
// the offset rd was at when NewRewindableReader was called. Otherwise, the
// bytes are retained in memory as they are read and Reset replays them.
func NewRewindableReader(rd io.Reader) *Reader {
	if rs, ok := rd.(io.ReadSeeker); ok {
		if start, err := rs.Seek(0, io.SeekCurrent); err == nil {
			return &Reader{
				br: bitio.NewReader(rs),
				rewind: func() (io.Reader, error) {
					if _, err := rs.Seek(start, io.SeekStart); err != nil {
						return nil, err
					}
					return rs, nil
				},
			}
		}
	}
	buf := &bytes.Buffer{}
	return &Reader{
		br: bitio.NewReader(io.TeeReader(rd, buf)),
		rewind: func() (io.Reader, error) {
			// Drain anything not yet read so that the replay is complete.
			if _, err := io.Copy(buf, rd); err != nil {
				return nil, err
			}
			return bytes.NewReader(buf.Bytes()), nil
		},
	}
}

// ReadBits reads the next n bits, 1 <= n <= 64, as an unsigned value.
func (r *Reader) ReadBits(n uint8) (uint64, error) {
	v, err := r.br.ReadBits(n)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	r.bits += uint64(n)
	return v, nil
}

// Reset rewinds the reader to the start of its stream.
func (r *Reader) Reset() error {
	if r.rewind == nil {
		return ErrNotRewindable
	}
	rd, err := r.rewind()
	if err != nil {
		return fmt.Errorf("bitstream: reset: %w", err)
	}
	r.br = bitio.NewReader(rd)
	r.bits = 0
	return nil
}

// BitsRead returns the number of bits read since the reader was created
// or last Reset.
func (r *Reader) BitsRead() uint64 {
	return r.bits
}

// Writer appends values of up to 64 bits to an underlying io.Writer.
// Close must be called to write out any trailing partial byte, which is
// padded with zero bits. Close does not close the underlying io.Writer.
type Writer struct {
	bw   *bitio.Writer
	bits uint64
}

// NewWriter returns a Writer that writes to wr.
func NewWriter(wr io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(wr)}
}

// WriteBits writes the low n bits of v, 0 <= n <= 64. Writing zero bits
// is a no-op.
func (w *Writer) WriteBits(v uint64, n uint8) error {
	if n == 0 {
		return nil
	}
	if n < 64 {
		v &= 1<<n - 1
	}
	if err := w.bw.WriteBits(v, n); err != nil {
		return err
	}
	w.bits += uint64(n)
	return nil
}

// Close flushes any partially filled trailing byte.
func (w *Writer) Close() error {
	return w.bw.Close()
}

// BitsWritten returns the number of bits written so far, excluding any
// padding added by Close.
func (w *Writer) BitsWritten() uint64 {
	return w.bits
}
