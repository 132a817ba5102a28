// SPDX-License-Identifier: MIT

package session

import (
	"io"

	"github.com/katalvlaran/lvtpsa/registry"
	"go.uber.org/zap"
)

// Option configures Run.
type Option func(*options)

type options struct {
	module *registry.Module // registry.Default() when nil
	out    io.Writer        // io.Discard when nil
	logger *zap.Logger      // zap.NewNop() when nil
}

// WithModule evaluates against m instead of registry.Default(). Panics on nil.
func WithModule(m *registry.Module) Option {
	if m == nil {
		panic("session: WithModule: nil module")
	}

	return func(o *options) { o.module = m }
}

// WithOutput sends print steps to w. Panics on nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("session: WithOutput: nil writer")
	}

	return func(o *options) { o.out = w }
}

// WithLogger traces each step at debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("session: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.module == nil {
		o.module = registry.Default()
	}
	if o.out == nil {
		o.out = io.Discard
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}
