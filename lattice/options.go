// SPDX-License-Identifier: MIT

package lattice

import "go.uber.org/zap"

// Option configures optional behavior of Compute.
type Option func(*options)

// options holds the per-call knobs. Defaults: no-op logger, no hook.
type options struct {
	logger   *zap.Logger
	onAttach func(SiteInfo)
}

func newOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithLogger routes transition traces (Debug) and the run summary (Debug)
// to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnAttach installs fn, invoked once per parent→child attachment after
// the child's aggregate has been refreshed. Attachments are reported in
// construction order: every child of a node before the node's own parent
// sees it.
func WithOnAttach(fn func(SiteInfo)) Option {
	return func(o *options) {
		o.onAttach = fn
	}
}
