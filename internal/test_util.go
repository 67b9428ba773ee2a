// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package internal

import (
	"fmt"
	"math/rand"
	"time"
)

// Seed for the pseudorandom generator used by GenPredictableRandomData.
const fixdRandSeed = 0x1234

var randSource rand.Source

func init() {
	randSeed := time.Now().UnixNano()
	fmt.Printf("rand seed for GenReproducibleRandomData: %v\n", randSeed)
	randSource = rand.NewSource(randSeed)
}

// GenPredictableRandomData generates random data starting with a fixed
// known seed.
func GenPredictableRandomData(size int) []byte {
	gen := rand.New(rand.NewSource(fixdRandSeed))
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(gen.Intn(256))
	}
	return out
}

// GenReproducibleRandomData uses the random # seed printed out by this
// file's init function.
func GenReproducibleRandomData(size int) []byte {
	gen := rand.New(randSource)
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(gen.Intn(256))
	}
	return out
}

// GenSkewedData generates size bytes of which approximately percent are
// the dominant byte and the remainder are spread over all other values.
func GenSkewedData(size int, dominant byte, percent int) []byte {
	gen := rand.New(rand.NewSource(fixdRandSeed))
	out := make([]byte, size)
	for i := range out {
		if gen.Intn(100) < percent {
			out[i] = dominant
			continue
		}
		b := byte(gen.Intn(255))
		if b >= dominant {
			b++
		}
		out[i] = b
	}
	return out
}

// FirstN returns at most the first n bytes of b.
func FirstN(n int, b []byte) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
