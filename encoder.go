// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import (
	"fmt"
)

// Encode compresses in to out. The input is read twice: once to count
// byte frequencies, then, after in.Reset, to emit the code for each byte.
// The output is the magic number, the tree, the code for every input byte
// and finally the code for PseudoEOF. out is closed on return, whether or
// not an error occurred.
func Encode(in RewindableBitReader, out BitWriter, opts ...Option) (stats Stats, err error) {
	o := newOptions(opts)
	defer closeOutput(out, &err)

	hist, err := CountFrequencies(in)
	if err != nil {
		return
	}
	root := BuildTree(hist)
	table := NewCodeTable(root)
	if err = in.Reset(); err != nil {
		err = fmt.Errorf("rewinding input: %w", err)
		return
	}

	if err = out.WriteBits(uint64(Magic), BitsPerInt); err != nil {
		err = fmt.Errorf("writing magic: %w", err)
		return
	}
	if err = WriteTree(out, root); err != nil {
		return
	}
	stats.Leaves = root.Leaves()
	stats.HeaderBits = BitsPerInt + serializedBits(root)

	for {
		v, rerr := in.ReadBits(BitsPerWord)
		if rerr != nil {
			if isEOF(rerr) {
				break
			}
			err = fmt.Errorf("reading input: %w", rerr)
			return
		}
		code, ok := table.Lookup(Symbol(v))
		if !ok {
			err = fmt.Errorf("%w: byte %v at offset %v", ErrInputChanged, Symbol(v), stats.Bytes)
			return
		}
		if err = code.writeTo(out); err != nil {
			err = fmt.Errorf("writing code for %v: %w", Symbol(v), err)
			return
		}
		stats.Bytes++
		stats.BodyBits += uint64(code.Len())
	}
	if stats.Bytes != hist.Total() {
		err = fmt.Errorf("%w: read %v bytes, counted %v", ErrInputChanged, stats.Bytes, hist.Total())
		return
	}

	eof, _ := table.Lookup(PseudoEOF)
	if err = eof.writeTo(out); err != nil {
		err = fmt.Errorf("writing pseudo-EOF: %w", err)
		return
	}
	stats.BodyBits += uint64(eof.Len())
	o.report("compress", stats)
	return
}

func closeOutput(out BitWriter, errp *error) {
	if err := out.Close(); err != nil && *errp == nil {
		*errp = fmt.Errorf("closing output: %w", err)
	}
}
