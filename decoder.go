// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import (
	"fmt"
	"io"

	"github.com/cosnicolaou/huffproc/internal/bitstream"
)

// readHeader reads and validates the magic number and then reads the tree.
func readHeader(in BitReader) (*Node, error) {
	magic, err := in.ReadBits(BitsPerInt)
	if err != nil {
		if isEOF(err) {
			return nil, fmt.Errorf("%w: too short for a magic number", ErrUnrecognizedFormat)
		}
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if got, want := uint32(magic), Magic; got != want {
		return nil, fmt.Errorf("%w: magic %#08x, want %#08x", ErrUnrecognizedFormat, got, want)
	}
	return ReadTree(in)
}

// ReadHeader reads the header of a compressed stream and returns the tree
// it describes.
func ReadHeader(rd io.Reader) (*Node, error) {
	return readHeader(bitstream.NewReader(rd))
}

// Decode decompresses in to out. It reads the header and then follows the
// tree from the root a bit at a time, writing the symbol at each leaf
// reached and returning to the root, until the PseudoEOF leaf is reached.
// Any bits following the PseudoEOF code are never read. out is closed on
// return, whether or not an error occurred; the contents of out are
// undefined if an error is returned.
func Decode(in BitReader, out BitWriter, opts ...Option) (stats Stats, err error) {
	o := newOptions(opts)
	defer closeOutput(out, &err)

	root, err := readHeader(in)
	if err != nil {
		return
	}
	stats.Leaves = root.Leaves()
	stats.HeaderBits = BitsPerInt + serializedBits(root)

	if root.IsLeaf() {
		// The only code is the empty one.
		if root.Symbol != PseudoEOF {
			err = fmt.Errorf("%w: single leaf %v and no pseudo-EOF", ErrCorruptHeader, root.Symbol)
			return
		}
		o.report("decompress", stats)
		return
	}

	current := root
	for {
		bit, rerr := in.ReadBits(1)
		if rerr != nil {
			if isEOF(rerr) {
				err = fmt.Errorf("%w: after %v bytes", ErrTruncatedStream, stats.Bytes)
				return
			}
			err = fmt.Errorf("reading input: %w", rerr)
			return
		}
		stats.BodyBits++
		if bit == 0 {
			current = current.Left
		} else {
			current = current.Right
		}
		if !current.IsLeaf() {
			continue
		}
		if current.Symbol == PseudoEOF {
			break
		}
		if err = out.WriteBits(uint64(current.Symbol), BitsPerWord); err != nil {
			err = fmt.Errorf("writing output: %w", err)
			return
		}
		stats.Bytes++
		current = root
	}
	o.report("decompress", stats)
	return
}
