// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/errors"
	"github.com/cosnicolaou/huffproc"
)

func inspectFile(ctx context.Context, out io.Writer, name string) error {
	rd, _, readerCleanup, err := openFileOrURL(ctx, name)
	if err != nil {
		return err
	}
	defer readerCleanup(ctx)
	root, err := huffproc.ReadHeader(rd)
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	fmt.Fprintf(out, "=== %v ===\n", name)
	fmt.Fprintf(out, "Leaves: %v, Depth: %v\n", root.Leaves(), root.Depth())
	if _, err := root.Dump(out); err != nil {
		return err
	}
	_, err = huffproc.NewCodeTable(root).Dump(out)
	return err
}

func inspect(ctx context.Context, out io.Writer, args []string) error {
	errs := errors.M{}
	for _, arg := range args {
		errs.Append(inspectFile(ctx, out, arg))
	}
	return errs.Err()
}
