package dsl

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/reoring/lensmeta"
	js "github.com/reoring/lensmeta/jsonschema"
)

// Bound projects the validated tree of a node into T through its JSON form.
// It implements lensmeta.Schema[T], lensmeta.Normalizer[T] and
// lensmeta.Refiner[T]: after projection the value is normalized, then
// refined.
type Bound[T any] struct {
	node      Node
	normalize func(context.Context, T) (T, error)
	refine    func(context.Context, T) error
}

// Bind binds n to the Go type T. T must decode the JSON form of n's output,
// typically a struct with json tags.
func Bind[T any](n Node) *Bound[T] { return &Bound[T]{node: n} }

// WithNormalize returns a copy rewriting the typed value with fn before the
// refinement runs.
func (b *Bound[T]) WithNormalize(fn func(context.Context, T) (T, error)) *Bound[T] {
	c := *b
	c.normalize = fn
	return &c
}

// WithRefine returns a copy running fn on the typed value after projection.
func (b *Bound[T]) WithRefine(fn func(context.Context, T) error) *Bound[T] {
	c := *b
	c.refine = fn
	return &c
}

// Node returns the untyped node.
func (b *Bound[T]) Node() Node { return b.node }

func (b *Bound[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	out, err := b.node.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	t, err := Project[T](out)
	if err != nil {
		return zero, err
	}
	t, err = lensmeta.ApplyNormalize[T](ctx, t, b)
	if ni := issuesOf(err, "normalize"); len(ni) > 0 {
		return zero, ni
	}
	if ri := issuesOf(lensmeta.ApplyRefine[T](ctx, t, b), "typed"); len(ri) > 0 {
		return zero, ri
	}
	return t, nil
}

// Normalize implements lensmeta.Normalizer[T].
func (b *Bound[T]) Normalize(ctx context.Context, v T) (T, error) {
	if b.normalize == nil {
		return v, nil
	}
	return b.normalize(ctx, v)
}

// Refine implements lensmeta.Refiner[T].
func (b *Bound[T]) Refine(ctx context.Context, v T) error {
	if b.refine == nil {
		return nil
	}
	return b.refine(ctx, v)
}

func (b *Bound[T]) JSONSchema() (*js.Schema, error) { return b.node.JSONSchema() }

// Project converts an already validated tree into T.
func Project[T any](tree any) (T, error) {
	var t T
	data, err := json.Marshal(tree)
	if err != nil {
		return t, lensmeta.Issues{lensmeta.Issue{Code: lensmeta.CodeParseError, Message: err.Error(), Cause: err}}
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, lensmeta.Issues{lensmeta.Issue{Code: lensmeta.CodeParseError, Message: err.Error(), Cause: err}}
	}
	return t, nil
}
