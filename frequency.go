// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import "fmt"

// Histogram holds the number of occurrences of each byte value.
type Histogram [AlphabetSize]uint64

// CountFrequencies reads 8 bit values from in until it is exhausted.
// The caller must Reset in before reading from it again.
func CountFrequencies(in BitReader) (Histogram, error) {
	var h Histogram
	for {
		v, err := in.ReadBits(BitsPerWord)
		if err != nil {
			if isEOF(err) {
				return h, nil
			}
			return h, fmt.Errorf("counting frequencies: %w", err)
		}
		h[byte(v)]++
	}
}

// Total returns the number of bytes counted.
func (h *Histogram) Total() uint64 {
	var t uint64
	for _, c := range h {
		t += c
	}
	return t
}

// Distinct returns the number of byte values with a non-zero count.
func (h *Histogram) Distinct() int {
	n := 0
	for _, c := range h {
		if c > 0 {
			n++
		}
	}
	return n
}
