// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import "fmt"

const (
	// BitsPerWord is the size of an uncompressed symbol.
	BitsPerWord = 8
	// BitsPerInt is the size of the magic number.
	BitsPerInt = 32
	// AlphabetSize is the number of literal symbols.
	AlphabetSize = 1 << BitsPerWord
	// LeafValueBits is the size of a leaf's symbol in the header, large
	// enough to hold PseudoEOF.
	LeafValueBits = BitsPerWord + 1
	// NumSymbols is the number of literal symbols plus PseudoEOF.
	NumSymbols = AlphabetSize + 1

	// Magic identifies a stream with a tree header.
	Magic uint32 = 0xface8200 | 1
)

// Symbol is either a literal byte value or PseudoEOF.
type Symbol int

// PseudoEOF marks the logical end of the compressed data.
const PseudoEOF = Symbol(AlphabetSize)

// String implements fmt.Stringer.
func (s Symbol) String() string {
	if s == PseudoEOF {
		return "EOF"
	}
	return fmt.Sprintf("0x%02x", int(s))
}
