// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import (
	"io"

	"github.com/cosnicolaou/huffproc/internal/bitstream"
)

// Stats records the sizes involved in a single compression or
// decompression.
type Stats struct {
	// Bytes is the number of uncompressed bytes read or written.
	Bytes uint64
	// Leaves is the number of leaves in the tree.
	Leaves int
	// HeaderBits is the size of the magic number and the tree.
	HeaderBits uint64
	// BodyBits is the size of the codes, including the pseudo-EOF code.
	BodyBits uint64
}

// CompressedBytes returns the size of the compressed stream including
// the padding of the final byte.
func (s Stats) CompressedBytes() uint64 {
	return (s.HeaderBits + s.BodyBits + 7) / 8
}

// Compress compresses rd to wr. If rd implements io.Seeker it is read
// twice, otherwise its contents are held in memory for the second pass.
// wr is not closed.
func Compress(rd io.Reader, wr io.Writer, opts ...Option) (Stats, error) {
	return Encode(bitstream.NewRewindableReader(rd), bitstream.NewWriter(wr), opts...)
}

// Decompress decompresses rd to wr. wr is not closed.
func Decompress(rd io.Reader, wr io.Writer, opts ...Option) (Stats, error) {
	return Decode(bitstream.NewReader(rd), bitstream.NewWriter(wr), opts...)
}
