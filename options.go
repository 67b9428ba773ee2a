// Copyright 2026 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huffproc

import "github.com/sirupsen/logrus"

type options struct {
	log     logrus.FieldLogger
	verbose bool
}

// Option represents an option to Encode, Decode, Compress and Decompress.
type Option func(o *options)

// WithLogger sets the logger used to report on each operation, the
// default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Verbose controls logging of per-operation statistics at info rather
// than debug level.
func Verbose(v bool) Option {
	return func(o *options) {
		o.verbose = v
	}
}

func newOptions(opts []Option) *options {
	o := &options{log: logrus.StandardLogger()}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

func (o *options) report(op string, stats Stats) {
	entry := o.log.WithFields(logrus.Fields{
		"bytes":       stats.Bytes,
		"leaves":      stats.Leaves,
		"header_bits": stats.HeaderBits,
		"body_bits":   stats.BodyBits,
		"compressed":  stats.CompressedBytes(),
	})
	if o.verbose {
		entry.Info(op)
		return
	}
	entry.Debug(op)
}
