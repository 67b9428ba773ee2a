// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import (
	"errors"
	"io"
	"strings"
)

// bitRecorder is a BitWriter that records the bits written to it as a
// string of 0s and 1s.
type bitRecorder struct {
	bits   strings.Builder
	closed bool
	err    error
}

func (r *bitRecorder) WriteBits(v uint64, n uint8) error {
	if r.err != nil {
		return r.err
	}
	for i := int(n) - 1; i >= 0; i-- {
		r.bits.WriteByte('0' + byte(v>>uint(i)&1))
	}
	return nil
}

func (r *bitRecorder) Close() error {
	r.closed = true
	return nil
}

func (r *bitRecorder) String() string {
	return r.bits.String()
}

// bitPlayer is a BitReader over a string of 0s and 1s.
type bitPlayer struct {
	bits string
	pos  int
}

func (p *bitPlayer) ReadBits(n uint8) (uint64, error) {
	if p.pos+int(n) > len(p.bits) {
		p.pos = len(p.bits)
		return 0, io.EOF
	}
	var v uint64
	for _, c := range p.bits[p.pos : p.pos+int(n)] {
		v = v<<1 | uint64(c-'0')
	}
	p.pos += int(n)
	return v, nil
}

// byteSource is a RewindableBitReader that returns a different slice of
// bytes on each pass.
type byteSource struct {
	passes [][]byte
	pass   int
	pos    int
	err    error
}

func (s *byteSource) ReadBits(n uint8) (uint64, error) {
	if s.err != nil {
		return 0, s.err
	}
	data := s.passes[s.pass]
	if s.pos >= len(data) {
		return 0, io.EOF
	}
	s.pos++
	return uint64(data[s.pos-1]), nil
}

func (s *byteSource) Reset() error {
	if s.pass+1 >= len(s.passes) {
		return errors.New("no more passes")
	}
	s.pass++
	s.pos = 0
	return nil
}

func leaf(s Symbol) *Node {
	return &Node{Symbol: s}
}

func internalNode(l, r *Node) *Node {
	return &Node{Left: l, Right: r}
}

func sameShape(a, b *Node) bool {
	if a.IsLeaf() || b.IsLeaf() {
		return a.IsLeaf() && b.IsLeaf() && a.Symbol == b.Symbol
	}
	return sameShape(a.Left, b.Left) && sameShape(a.Right, b.Right)
}
