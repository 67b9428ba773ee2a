// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/cosnicolaou/huffproc"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/must"
	"github.com/schollz/progressbar/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
	"v.io/x/lib/cmd/flagvar"
)

type ioFlags struct {
	InputFile   string `cmd:"input,,'input file, s3 path, or url'"`
	OutputFile  string `cmd:"output,,'output file or s3 path, omit for stdout'"`
	ProgressBar bool   `cmd:"progress,true,display a progress bar"`
	Verbose     bool   `cmd:"verbose,false,verbose debug/trace information"`
}

func init() {
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

// registerFlags registers the tagged fields of values with cmd.
func registerFlags(cmd *cobra.Command, values interface{}) {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	must.Nil(flagvar.RegisterFlagsInStruct(fs, "cmd", values, nil, nil))
	cmd.Flags().AddGoFlagSet(fs)
}

func newRootCmd() *cobra.Command {
	var compressFlags, decompressFlags ioFlags
	root := &cobra.Command{
		Use:          "huffproc",
		Short:        "huffproc compresses and decompresses using static Huffman coding",
		SilenceUsage: true,
	}
	compress := &cobra.Command{
		Use:   "compress",
		Short: "compress a file, s3 object or url",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return compressFile(cmd.Context(), &compressFlags)
		},
	}
	registerFlags(compress, &compressFlags)
	decompress := &cobra.Command{
		Use:   "decompress",
		Short: "decompress a file, s3 object or url",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return decompressFile(cmd.Context(), &decompressFlags)
		},
	}
	registerFlags(decompress, &decompressFlags)
	inspectCmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "print the tree and code table stored in the header of compressed files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
	root.AddCommand(compress, decompress, inspectCmd)
	return root
}

func openFileOrURL(ctx context.Context, name string) (io.Reader, int64, func(context.Context) error, error) {
	if strings.HasPrefix(name, "http") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, name, nil)
		if err != nil {
			return nil, 0, nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, 0, nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, 0, nil, fmt.Errorf("%v: %v", name, resp.Status)
		}
		return resp.Body,
			resp.ContentLength,
			func(context.Context) error {
				return resp.Body.Close()
			},
			nil
	}
	info, err := file.Stat(ctx, name)
	if err != nil {
		return nil, 0, nil, err
	}
	file, err := file.Open(ctx, name)
	if err != nil {
		return nil, 0, nil, err
	}
	return file.Reader(ctx), info.Size(), file.Close, nil
}

func createFile(ctx context.Context, name string) (io.Writer, func(context.Context) error, error) {
	if len(name) == 0 {
		return os.Stdout,
			func(context.Context) error {
				return nil
			},
			nil
	}
	file, err := file.Create(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	return file.Writer(ctx), file.Close, nil
}

type progressReader struct {
	io.Reader
	bar *progressbar.ProgressBar
}

func (pr *progressReader) Read(buf []byte) (int, error) {
	n, err := pr.Reader.Read(buf)
	pr.bar.Add(n)
	return n, err
}

// progressReadSeeker retains the io.Seeker implementation of the reader
// it wraps so that compression can rewind rather than buffer its input.
type progressReadSeeker struct {
	*progressReader
	io.Seeker
}

// withProgress wraps rd so that a progress bar is updated as it is read,
// if one was requested and the output is not being written to a terminal.
// size is the total number of bytes expected to be read.
func withProgress(rd io.Reader, fl *ioFlags, size int64) (io.Reader, func()) {
	showProgressBar := len(fl.OutputFile) > 0
	isTTY := terminal.IsTerminal(int(os.Stdout.Fd()))
	if !fl.ProgressBar || size <= 0 || (!showProgressBar && isTTY) {
		return rd, func() {}
	}
	progressBarWr := os.Stdout
	if !isTTY {
		progressBarWr = os.Stderr
	}
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetBytes64(size),
		progressbar.OptionSetWriter(progressBarWr),
		progressbar.OptionSetPredictTime(true))
	bar.RenderBlank()
	done := func() {
		fmt.Fprintf(progressBarWr, "\n")
	}
	pr := &progressReader{Reader: rd, bar: bar}
	if rs, ok := rd.(io.ReadSeeker); ok {
		return &progressReadSeeker{progressReader: pr, Seeker: rs}, done
	}
	return pr, done
}

func libraryOptions(fl *ioFlags) []huffproc.Option {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	return []huffproc.Option{
		huffproc.WithLogger(logger),
		huffproc.Verbose(fl.Verbose),
	}
}

type operation func(io.Reader, io.Writer, ...huffproc.Option) (huffproc.Stats, error)

// run applies op to the input and output named in fl. passes is the number
// of times op reads its input and is used to size the progress bar.
func run(ctx context.Context, fl *ioFlags, passes int64, op operation) (returnErr error) {
	if len(fl.InputFile) == 0 {
		return fmt.Errorf("please specify an input file, s3 path or url")
	}

	rd, size, readerCleanup, err := openFileOrURL(ctx, fl.InputFile)
	if err != nil {
		return err
	}
	defer readerCleanup(ctx)

	wr, writerCleanup, err := createFile(ctx, fl.OutputFile)
	if err != nil {
		return err
	}

	defer func() {
		if err := writerCleanup(ctx); err != nil {
			log.Printf("writer cleanup: %v", err)
			if returnErr == nil {
				returnErr = err
			}
		}
	}()

	rd, done := withProgress(rd, fl, size*passes)
	defer done()

	if _, err := op(rd, wr, libraryOptions(fl)...); err != nil {
		return fmt.Errorf("%v: %w", fl.InputFile, err)
	}
	return nil
}

func compressFile(ctx context.Context, fl *ioFlags) error {
	return run(ctx, fl, 2, huffproc.Compress)
}

func decompressFile(ctx context.Context, fl *ioFlags) error {
	return run(ctx, fl, 1, huffproc.Decompress)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	cmdutil.HandleSignals(cancel, os.Interrupt)
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
