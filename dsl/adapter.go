package dsl

import (
	"context"

	"github.com/reoring/lensmeta"
	js "github.com/reoring/lensmeta/jsonschema"
)

// ---- nullable ----

type nullableSchema struct{ inner Node }

// Nullable accepts null in addition to what inner accepts.
func Nullable(inner Node) Node { return nullableSchema{inner: inner} }

func (n nullableSchema) Parse(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return n.inner.Parse(ctx, v)
}

func (n nullableSchema) unwrap() Node { return n.inner }

func (n nullableSchema) JSONSchema() (*js.Schema, error) {
	s, err := n.inner.JSONSchema()
	if err != nil {
		return nil, err
	}
	return js.Nullable(s), nil
}

// ---- transform ----

type transformSchema struct {
	inner Node
	fn    func(context.Context, any) (any, error)
}

// Transform maps the validated value with fn. fn runs only when inner
// succeeded; an error from fn is reported like a refinement failure.
func Transform(inner Node, fn func(context.Context, any) (any, error)) Node {
	return transformSchema{inner: inner, fn: fn}
}

func (t transformSchema) Parse(ctx context.Context, v any) (any, error) {
	out, err := t.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	res, err := t.fn(ctx, out)
	if ti := issuesOf(err, "transform"); len(ti) > 0 {
		return nil, ti
	}
	return res, nil
}

func (t transformSchema) unwrap() Node                    { return t.inner }
func (t transformSchema) JSONSchema() (*js.Schema, error) { return t.inner.JSONSchema() }

// ---- preprocess ----

type preprocessSchema struct {
	fn    func(any) any
	inner Node
}

// Preprocess rewrites the raw input with fn before inner validates it.
func Preprocess(fn func(any) any, inner Node) Node {
	return preprocessSchema{fn: fn, inner: inner}
}

func (p preprocessSchema) Parse(ctx context.Context, v any) (any, error) {
	return p.inner.Parse(ctx, p.fn(v))
}

func (p preprocessSchema) unwrap() Node                    { return p.inner }
func (p preprocessSchema) JSONSchema() (*js.Schema, error) { return p.inner.JSONSchema() }

// ---- refine ----

type refineSchema struct {
	inner Node
	name  string
	fn    func(context.Context, any) error
}

// Refine runs fn after inner succeeded. Issues returned by fn are relative to
// the value; other errors become a cross-field violation at the value.
func Refine(inner Node, name string, fn func(context.Context, any) error) Node {
	return refineSchema{inner: inner, name: name, fn: fn}
}

func (r refineSchema) Parse(ctx context.Context, v any) (any, error) {
	out, err := r.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	if ri := issuesOf(r.fn(ctx, out), r.name); len(ri) > 0 {
		return nil, ri
	}
	return out, nil
}

func (r refineSchema) unwrap() Node                    { return r.inner }
func (r refineSchema) JSONSchema() (*js.Schema, error) { return r.inner.JSONSchema() }

// ---- describe ----

type describedSchema struct {
	inner Node
	text  string
}

// Describe attaches a description exported to JSON Schema.
func Describe(inner Node, text string) Node { return describedSchema{inner: inner, text: text} }

func (d describedSchema) Parse(ctx context.Context, v any) (any, error) {
	return d.inner.Parse(ctx, v)
}

func (d describedSchema) unwrap() Node { return d.inner }

func (d describedSchema) JSONSchema() (*js.Schema, error) {
	s, err := d.inner.JSONSchema()
	if err != nil || s == nil {
		return s, err
	}
	s.Description = d.text
	return s, nil
}

// Issues is shorthand for building refinement results.
func Issues(items ...lensmeta.Issue) lensmeta.Issues { return lensmeta.Issues(items) }
