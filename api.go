package lensmeta

import (
	"context"

	js "github.com/reoring/lensmeta/jsonschema"
)

// Schema is an immutable validation node. Parse turns an untyped input into T
// or returns Issues describing every violation found.
type Schema[T any] interface {
	// Parse validates v and returns the (possibly transformed) value. The
	// returned error is an Issues value whose paths are relative to v.
	Parse(ctx context.Context, v any) (T, error)

	// JSONSchema projects the node into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Codec converts between a wire representation A and a domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}

// Result is the outcome of a validation: either a value or the issues that
// prevented producing one.
type Result[T any] struct {
	Value  T
	Issues Issues
}

// Success reports whether validation produced a value.
func (r Result[T]) Success() bool { return len(r.Issues) == 0 }

// Err returns the issues as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.Success() {
		return nil
	}
	return r.Issues
}

// Validate runs s against v and always returns a Result; invalid input never
// panics.
func Validate[T any](ctx context.Context, s Schema[T], v any) Result[T] {
	val, err := s.Parse(ctx, v)
	if err != nil {
		return Result[T]{Issues: ToIssues(err)}
	}
	return Result[T]{Value: val}
}

// ValidateWith is Validate with explicit parse options.
func ValidateWith[T any](ctx context.Context, s Schema[T], v any, opt ParseOpt) Result[T] {
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	return Validate(ctx, s, v)
}

// Normalizer provides an optional hook to normalize typed values after
// validation. If it is not implemented, the phase is skipped.
type Normalizer[T any] interface {
	Normalize(ctx context.Context, v T) (T, error)
}

// Refiner provides an optional hook at the end of parsing to perform
// cross-field validation on the typed value. If it is not implemented, the
// phase is skipped.
type Refiner[T any] interface {
	Refine(ctx context.Context, v T) error
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	_, err := s.Parse(ctx, v)
	return err == nil
}

// ---- Parse-time context options (exported for subpackages) ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that makes object and array nodes stop
// at the first failing member instead of accumulating every issue.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
