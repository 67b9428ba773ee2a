// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

// BitReader is the source of bits for compression and decompression.
// ReadBits returns the next n bits as an unsigned value, or io.EOF once
// fewer than n bits remain.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// RewindableBitReader is a BitReader that can be restarted from the
// beginning of its stream. Compression reads its input twice.
type RewindableBitReader interface {
	BitReader
	Reset() error
}

// BitWriter is the sink for compressed and decompressed bits. WriteBits
// appends the low n bits of v and Close flushes any partial trailing byte.
type BitWriter interface {
	WriteBits(v uint64, n uint8) error
	Close() error
}
