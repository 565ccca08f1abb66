// SPDX-License-Identifier: MIT

package oracle

import "context"

// ELV is an edge length vector of length ⌊n/2⌋: entry i−1 holds the drop
// g(k−1) − g(k) assigned to edge length i, zero when i is unused.
type ELV []int

// Option configures a counter.
type Option func(*options)

type options struct {
	ctx   context.Context
	visit func(ELV) error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

func collect(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithVisitor makes SmartCount enumerate every ELV and pass it to fn.
// Each ELV is a fresh slice owned by the callee. A non-nil error from fn
// aborts the walk and is returned. GreedyCount ignores this option.
func WithVisitor(fn func(ELV) error) Option {
	return func(o *options) {
		o.visit = fn
	}
}
