// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cosnicolaou/huffproc/internal/bitstream"
)

func TestCountFrequencies(t *testing.T) {
	h, err := CountFrequencies(bitstream.NewReader(bytes.NewReader([]byte("abracadabra"))))
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		b     byte
		count uint64
	}{
		{'a', 5}, {'b', 2}, {'r', 2}, {'c', 1}, {'d', 1}, {'z', 0},
	} {
		if got, want := h[tc.b], tc.count; got != want {
			t.Errorf("%c: got %v, want %v", tc.b, got, want)
		}
	}
	if got, want := h.Total(), uint64(11); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Distinct(), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	h, err = CountFrequencies(bitstream.NewReader(bytes.NewReader(nil)))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := h.Total(), uint64(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCountFrequenciesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := CountFrequencies(&byteSource{passes: [][]byte{nil}, err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
}
