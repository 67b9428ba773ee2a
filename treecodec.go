// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import (
	"fmt"
	"io"
)

// maxTreeDepth is the depth of the deepest possible tree over NumSymbols
// leaves.
const maxTreeDepth = NumSymbols - 1

// WriteTree writes the tree rooted at root to w in preorder. An internal
// node is written as a single 0 bit followed by its left and right
// subtrees, a leaf as a 1 bit followed by its symbol in LeafValueBits bits.
func WriteTree(w BitWriter, root *Node) error {
	if root.IsLeaf() {
		if err := w.WriteBits(1, 1); err != nil {
			return fmt.Errorf("writing tree: %w", err)
		}
		if err := w.WriteBits(uint64(root.Symbol), LeafValueBits); err != nil {
			return fmt.Errorf("writing tree: %w", err)
		}
		return nil
	}
	if err := w.WriteBits(0, 1); err != nil {
		return fmt.Errorf("writing tree: %w", err)
	}
	if err := WriteTree(w, root.Left); err != nil {
		return err
	}
	return WriteTree(w, root.Right)
}

// ReadTree reads a tree written by WriteTree. The returned tree has the
// same shape and leaf symbols as the one written, weights are not
// recorded in the header and are left as zero. ErrCorruptHeader is
// returned if r is exhausted before the tree is complete, if a leaf holds
// a symbol larger than PseudoEOF, if a symbol appears in more than one leaf
// or if the tree is deeper than any tree over NumSymbols leaves can be.
func ReadTree(r BitReader) (*Node, error) {
	var seen [NumSymbols]bool
	return readTree(r, 0, &seen)
}

func readTree(r BitReader, depth int, seen *[NumSymbols]bool) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: tree deeper than %v", ErrCorruptHeader, maxTreeDepth)
	}
	tag, err := r.ReadBits(1)
	if err != nil {
		return nil, headerReadError("node tag", err)
	}
	if tag == 0 {
		left, err := readTree(r, depth+1, seen)
		if err != nil {
			return nil, err
		}
		right, err := readTree(r, depth+1, seen)
		if err != nil {
			return nil, err
		}
		return &Node{Left: left, Right: right}, nil
	}
	v, err := r.ReadBits(LeafValueBits)
	if err != nil {
		return nil, headerReadError("leaf symbol", err)
	}
	sym := Symbol(v)
	if sym > PseudoEOF {
		return nil, fmt.Errorf("%w: leaf symbol %d out of range", ErrCorruptHeader, v)
	}
	if seen[sym] {
		return nil, fmt.Errorf("%w: symbol %v appears twice", ErrCorruptHeader, sym)
	}
	seen[sym] = true
	return &Node{Symbol: sym}, nil
}

func headerReadError(what string, err error) error {
	if isEOF(err) {
		return fmt.Errorf("%w: reading %v: %v", ErrCorruptHeader, what, io.EOF)
	}
	return fmt.Errorf("reading %v: %w", what, err)
}

// serializedBits returns the number of bits WriteTree writes for the tree
// rooted at n.
func serializedBits(n *Node) uint64 {
	if n.IsLeaf() {
		return 1 + LeafValueBits
	}
	return 1 + serializedBits(n.Left) + serializedBits(n.Right)
}
