package duplo

import (
	"reflect"
	"time"
)

// options holds resolved engine configuration. Engines are immutable after
// construction; all of this is read-only during a walk.
type options struct {
	policy      Policy
	maxDepth    int
	opaqueTypes map[reflect.Type]bool
}

// Option configures an Engine.
type Option func(*options)

// defaultOptions returns the baseline configuration: opaque policy, no depth
// bound, and time.Time treated as a primitive. time.Time carries only
// unexported state and is immutable for practical purposes, so traversing it
// would lose the wall clock reading.
func defaultOptions() options {
	return options{
		policy: PolicyOpaque,
		opaqueTypes: map[reflect.Type]bool{
			reflect.TypeOf(time.Time{}): true,
		},
	}
}

// WithPolicy sets how non-cloneable kinds (funcs, channels, unsafe pointers)
// are handled. See Policy.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithMaxDepth bounds container nesting during a walk. Exceeding the bound
// yields ErrMaxDepth. Zero means unbounded.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithOpaqueType marks a type to be copied by assignment without traversal,
// in addition to the built-in opaque set.
func WithOpaqueType(t reflect.Type) Option {
	return func(o *options) {
		o.opaqueTypes[t] = true
	}
}
