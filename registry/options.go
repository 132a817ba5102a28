// SPDX-License-Identifier: MIT

package registry

import "go.uber.org/zap"

// DefaultModuleName is the namespace name of Default().
const DefaultModuleName = "tpsa"

// Option configures a Module under construction.
type Option func(*options)

type options struct {
	logger *zap.Logger // nil means Logger()
}

// WithLogger overrides the package logger for one module. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("registry: WithLogger: nil logger")
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
	if o.logger == nil {
		o.logger = Logger()
	}

	return o
}
