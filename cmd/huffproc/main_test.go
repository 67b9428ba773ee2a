// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cosnicolaou/huffproc"
	"github.com/cosnicolaou/huffproc/internal"
)

func huffprocCmd(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCmd(t *testing.T) {
	tmpdir := t.TempDir()
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"hello", []byte("hello world\n")},
		{"800KB1", internal.GenReproducibleRandomData(800 * 1024)},
	} {
		filename := filepath.Join(tmpdir, tc.name)
		if err := os.WriteFile(filename, tc.data, 0600); err != nil {
			t.Fatal(err)
		}
		if out, err := huffprocCmd("compress", "--progress=false",
			"--input="+filename, "--output="+filename+".huff"); err != nil {
			t.Fatalf("%v: %v: %v", tc.name, out, err)
		}
		if out, err := huffprocCmd("decompress", "--progress=false",
			"--input="+filename+".huff", "--output="+filename+".test"); err != nil {
			t.Fatalf("%v: %v: %v", tc.name, out, err)
		}
		data, err := os.ReadFile(filename + ".test")
		if err != nil {
			t.Fatal(err)
		}
		if got, want := data, tc.data; !bytes.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", tc.name, internal.FirstN(20, got), internal.FirstN(20, want))
		}
	}
}

func TestInspect(t *testing.T) {
	tmpdir := t.TempDir()
	filename := filepath.Join(tmpdir, "aab")
	if err := os.WriteFile(filename, []byte("aab"), 0600); err != nil {
		t.Fatal(err)
	}
	if out, err := huffprocCmd("compress", "--progress=false",
		"--input="+filename, "--output="+filename+".huff"); err != nil {
		t.Fatalf("%v: %v", out, err)
	}
	out, err := huffprocCmd("inspect", filename+".huff")
	if err != nil {
		t.Fatalf("%v: %v", out, err)
	}
	for _, want := range []string{
		"=== " + filename + ".huff ===",
		"Leaves: 3, Depth: 2",
		`Encode(0x61) = "0"`,
		`Encode(0x62) = "10"`,
		`Encode(EOF) = "11"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestErrors(t *testing.T) {
	tmpdir := t.TempDir()

	if _, err := huffprocCmd("compress", "--progress=false"); err == nil ||
		!strings.Contains(err.Error(), "please specify an input file") {
		t.Fatalf("missing or wrong error: %v", err)
	}

	empty := filepath.Join(tmpdir, "empty.huff")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatal(err)
	}
	_, err := huffprocCmd("decompress", "--progress=false",
		"--input="+empty, "--output="+filepath.Join(tmpdir, "empty.test"))
	if !errors.Is(err, huffproc.ErrUnrecognizedFormat) {
		t.Fatalf("missing or wrong error: %v", err)
	}

	plain := filepath.Join(tmpdir, "plain")
	if err := os.WriteFile(plain, []byte("not compressed"), 0600); err != nil {
		t.Fatal(err)
	}
	// A header whose two leaves both hold 0x61.
	repeated := filepath.Join(tmpdir, "repeated.huff")
	if err := os.WriteFile(repeated, []byte{0xfa, 0xce, 0x82, 0x01, 0x4c, 0x33, 0x08}, 0600); err != nil {
		t.Fatal(err)
	}
	_, err = huffprocCmd("inspect", plain, empty, repeated)
	if err == nil || !strings.Contains(err.Error(), plain) || !strings.Contains(err.Error(), empty) {
		t.Fatalf("missing or wrong error: %v", err)
	}
	if !strings.Contains(err.Error(), "appears twice") {
		t.Fatalf("missing or wrong error: %v", err)
	}
}
