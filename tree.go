// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree. A leaf has neither child and holds a
// Symbol; an internal node always has both children and its Symbol is
// unused. Weight is the symbol count for a leaf and the sum of the
// children's weights for an internal node; it is only meaningful for trees
// created by BuildTree.
type Node struct {
	Symbol      Symbol
	Weight      uint64
	Left, Right *Node
}

// IsLeaf returns true if n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func newInternalNode(left, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node requires two children")
	return &Node{Weight: left.Weight + right.Weight, Left: left, Right: right}
}

// Leaves returns the number of leaves in the tree rooted at n.
func (n *Node) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Depth returns the length of the longest path from n to a leaf.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// BuildTree builds a Huffman tree with one leaf for every byte value with
// a non-zero count plus a leaf for PseudoEOF with a weight of 1. The two
// lowest weight nodes are repeatedly merged, the first becoming the left
// child, until a single root remains. Nodes of equal weight are merged in
// the order they were created, leaves in ascending symbol order, so the
// same histogram always yields the same tree.
func BuildTree(h Histogram) *Node {
	nodes := &nodeHeap{}
	for sym, count := range h {
		if count > 0 {
			nodes.add(&Node{Symbol: Symbol(sym), Weight: count})
		}
	}
	nodes.add(&Node{Symbol: PseudoEOF, Weight: 1})
	heap.Init(nodes)
	for nodes.Len() > 1 {
		left := heap.Pop(nodes).(orderedNode)
		right := heap.Pop(nodes).(orderedNode)
		heap.Push(nodes, nodes.next(newInternalNode(left.node, right.node)))
	}
	return heap.Pop(nodes).(orderedNode).node
}

// Dump writes a programmer-readable listing of the tree to w, one node per
// line indented by depth.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.dump(&buf, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat("\t", depth))
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%v\n", n.Symbol)
		return
	}
	buf.WriteString("*\n")
	n.Left.dump(buf, depth+1)
	n.Right.dump(buf, depth+1)
}

// type orderedNode + type nodeHeap {{{

type orderedNode struct {
	node *Node
	seq  int
}

type nodeHeap struct {
	list []orderedNode
	seq  int
}

func (h *nodeHeap) next(n *Node) orderedNode {
	on := orderedNode{node: n, seq: h.seq}
	h.seq++
	return on
}

func (h *nodeHeap) add(n *Node) {
	h.list = append(h.list, h.next(n))
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(orderedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
