package duplo

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedKind indicates the walk met a func, channel, or unsafe
	// pointer under PolicyStrict.
	ErrUnsupportedKind = errors.New("unsupported kind")

	// ErrMaxDepth indicates container nesting exceeded the configured bound.
	ErrMaxDepth = errors.New("max depth exceeded")

	// ErrCyclic indicates a snapshot was requested for a cyclic value graph.
	ErrCyclic = errors.New("cyclic value graph")

	// ErrInvalidTag indicates a clone struct tag carries an unknown directive.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrInvalidPolicy indicates an engine was configured with an unknown policy.
	ErrInvalidPolicy = errors.New("invalid policy")

	// ErrMarshal indicates the codec failed to marshal a snapshot.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal a snapshot.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// CloneError represents a failure during a value graph walk.
// It wraps a sentinel error with the type that triggered it.
type CloneError struct {
	Err  error  // Underlying sentinel error (ErrUnsupportedKind, ErrMaxDepth)
	Type string // Type that triggered the failure
}

func (e *CloneError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s (type %s)", e.Err.Error(), e.Type)
	}
	return e.Err.Error()
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// PlanError represents an engine configuration error. It wraps a sentinel
// error with the field and directive that triggered it.
type PlanError struct {
	Err       error  // Underlying sentinel error (ErrInvalidTag, ErrInvalidPolicy)
	Field     string // Field name that triggered the error, if any
	Directive string // Tag directive or policy that was rejected
}

func (e *PlanError) Error() string {
	if e.Field != "" && e.Directive != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Directive, e.Field)
	}
	if e.Directive != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Directive)
	}
	return e.Err.Error()
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// CodecError represents a snapshot marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal, ErrCyclic)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newCloneError creates a CloneError for walk failures.
func newCloneError(sentinel error, t reflect.Type) error {
	name := ""
	if t != nil {
		name = t.String()
	}
	return &CloneError{
		Err:  sentinel,
		Type: name,
	}
}

// newPlanError creates a PlanError for configuration failures.
func newPlanError(sentinel error, field, directive string) error {
	return &PlanError{
		Err:       sentinel,
		Field:     field,
		Directive: directive,
	}
}

// newCodecError creates a CodecError for snapshot failures.
func newCodecError(sentinel, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
