// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package huffproc implements loss-less compression using static Huffman
// coding with the encoding tree stored in the stream header.
//
// A compressed stream is laid out as follows, with all fields packed most
// significant bit first:
//
//	magic       32 bits, 0xface8201
//	tree        preorder: 0 for an internal node followed by its left and
//	            right subtrees, 1 for a leaf followed by its 9 bit symbol
//	body        the code for each input byte
//	terminator  the code for the pseudo-EOF symbol (256)
//	padding     zero bits up to the next byte boundary
//
// Compression requires two passes over its input, one to count byte
// frequencies and one to encode. Decompression is a single pass that
// stops at the pseudo-EOF symbol rather than at the end of the input.
package huffproc
