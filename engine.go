package duplo

import (
	"context"
	"reflect"
	"time"
)

// Engine provides configured cloning for a single type. Per-type field plans
// are validated at construction, so configuration errors surface before the
// first Clone rather than mid-walk.
//
// Engines are immutable after construction and safe for concurrent use; all
// per-call state lives in a call-local walk.
type Engine[T any] struct {
	opts     options
	typeName string
}

// NewEngine creates an Engine for type T.
//
// Construction scans T's struct tags (if T is a struct), validates every
// clone directive, and validates the configured policy. An invalid directive
// anywhere in T's immediate fields yields ErrInvalidTag.
func NewEngine[T any](opts ...Option) (*Engine[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !IsValidPolicy(o.policy) {
		return nil, newPlanError(ErrInvalidPolicy, "", string(o.policy))
	}

	plan, err := buildRootPlan[T]()
	if err != nil {
		return nil, err
	}

	e := &Engine[T]{
		opts:     o,
		typeName: plan.typeName,
	}

	emitEngineCreated(context.Background(), e.typeName)
	return e, nil
}

// Clone returns a deep copy of v under the engine's configuration.
//
// Aliasing and cycles in v are reproduced in the copy. Under PolicyStrict
// the walk fails with ErrUnsupportedKind on funcs, channels, and unsafe
// pointers; with WithMaxDepth it fails with ErrMaxDepth past the bound.
func (e *Engine[T]) Clone(ctx context.Context, v T) (T, error) {
	start := time.Now()
	emitCloneStart(ctx, e.typeName)

	var zero T
	st := newWalkState(&e.opts)

	out, err := st.clone(reflect.ValueOf(v))
	emitCloneComplete(ctx, e.typeName, time.Since(start), st.nodes, st.reused, err)
	if err != nil {
		return zero, err
	}
	if !out.IsValid() {
		return zero, nil
	}
	return out.Interface().(T), nil
}

// Fingerprint returns a deterministic digest of v's structure and content,
// including its aliasing and cycle topology. See the package-level
// Fingerprint for the encoding contract.
func (e *Engine[T]) Fingerprint(ctx context.Context, v T) string {
	start := time.Now()

	digest := Fingerprint(v)
	emitFingerprint(ctx, e.typeName, time.Since(start), digest)
	return digest
}
