// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents the path from the root of a tree to a leaf, 0 for left
// and 1 for right. Codes are packed most significant bit first and may be
// longer than 64 bits.
type Code struct {
	packed []byte
	size   int
}

// Len returns the number of bits in the code.
func (c Code) Len() int {
	return c.size
}

// Bit returns the i'th bit of the code, counting from the root.
func (c Code) Bit(i int) uint8 {
	assert.Assertf(i >= 0 && i < c.size, "bit %d out of range for code of length %d", i, c.size)
	return (c.packed[i/8] >> (7 - uint(i%8))) & 1
}

// Append returns a new Code with bit appended; c is unchanged.
func (c Code) Append(bit uint8) Code {
	packed := make([]byte, c.size/8+1)
	copy(packed, c.packed)
	if bit != 0 {
		packed[c.size/8] |= 0x80 >> uint(c.size%8)
	}
	return Code{packed: packed, size: c.size + 1}
}

// HasPrefix returns true if p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.size > c.size {
		return false
	}
	for i := 0; i < p.size; i++ {
		if c.Bit(i) != p.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the code as a quoted string of 0s and 1s.
func (c Code) String() string {
	var out strings.Builder
	for i := 0; i < c.size; i++ {
		out.WriteByte('0' + c.Bit(i))
	}
	return strconv.Quote(out.String())
}

var _ fmt.Stringer = Code{}

// writeTo writes the code to w a byte at a time, a zero length code writes
// nothing.
func (c Code) writeTo(w BitWriter) error {
	full := c.size / 8
	for i := 0; i < full; i++ {
		if err := w.WriteBits(uint64(c.packed[i]), 8); err != nil {
			return err
		}
	}
	if rem := c.size % 8; rem > 0 {
		return w.WriteBits(uint64(c.packed[full]>>uint(8-rem)), uint8(rem))
	}
	return nil
}

// CodeTable maps each leaf Symbol of a tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
}

// NewCodeTable derives the code for every leaf of the tree rooted at root.
// A tree consisting of a single leaf assigns it the empty code.
func NewCodeTable(root *Node) *CodeTable {
	t := &CodeTable{}
	t.walk(root, make([]byte, maxTreeDepth/8+1), 0)
	return t
}

// walk shares path between all of the nodes it visits; only the leaves
// take a copy of it.
func (t *CodeTable) walk(n *Node, path []byte, size int) {
	if n.IsLeaf() {
		assert.Assertf(n.Symbol >= 0 && n.Symbol <= PseudoEOF, "symbol %d out of range", n.Symbol)
		assert.Assertf(!t.present[n.Symbol], "symbol %v appears twice", n.Symbol)
		packed := make([]byte, (size+7)/8)
		copy(packed, path)
		if rem := size % 8; rem > 0 {
			packed[len(packed)-1] &= 0xff << uint(8-rem)
		}
		t.codes[n.Symbol] = Code{packed: packed, size: size}
		t.present[n.Symbol] = true
		return
	}
	assert.Assertf(size/8 < len(path), "tree deeper than %d", maxTreeDepth)
	mask := byte(0x80) >> uint(size%8)
	path[size/8] &^= mask
	t.walk(n.Left, path, size+1)
	path[size/8] |= mask
	t.walk(n.Right, path, size+1)
}

// Lookup returns the code for s and whether s is a leaf of the tree.
func (t *CodeTable) Lookup(s Symbol) (Code, bool) {
	if s < 0 || s > PseudoEOF {
		return Code{}, false
	}
	return t.codes[s], t.present[s]
}

// Symbols returns the symbols in the table in ascending order.
func (t *CodeTable) Symbols() []Symbol {
	var syms []Symbol
	for s := Symbol(0); s <= PseudoEOF; s++ {
		if t.present[s] {
			syms = append(syms, s)
		}
	}
	return syms
}

// Dump writes a programmer-readable listing of the table to w.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, s := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", s, t.codes[s])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
