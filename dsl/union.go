package dsl

import (
	"context"

	"github.com/reoring/lensmeta"
	js "github.com/reoring/lensmeta/jsonschema"
)

// unionSchema is a discriminated union over objects. Simple variants are
// resolved by map lookup; families are resolved by set membership in
// declaration order.
type unionSchema struct {
	discriminator string
	lookup        map[string]Node
	families      []UnionFamily
	branches      []Node
	options       []string // every accepted value, declaration order
	description   string
}

func (u *unionSchema) Parse(ctx context.Context, v any) (any, error) {
	s, err := u.Resolve(v)
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, v)
}

// Resolve selects the branch for v without validating it. It fails with a
// single invalid_discriminator issue when the discriminant is absent, not a
// string, or not one of the declared values.
func (u *unionSchema) Resolve(v any) (Node, error) {
	m, ok := lensmeta.AsObject(v)
	if !ok {
		return nil, lensmeta.Issues{typeIssue("object", v)}
	}
	if tag, ok := m[u.discriminator].(string); ok {
		if s, ok := u.lookup[tag]; ok {
			return s, nil
		}
		for _, fam := range u.families {
			if _, ok := fam.set[tag]; ok {
				return fam.schema, nil
			}
		}
	}
	it := newIssue(lensmeta.CodeInvalidDiscriminator,
		map[string]string{"options": quoteOptions(u.options)},
		map[string]any{"options": u.options})
	it.Path = lensmeta.PathOf(u.discriminator)
	return nil, lensmeta.Issues{it}
}

// Options lists every accepted discriminant value.
func (u *unionSchema) Options() []string { return append([]string(nil), u.options...) }

func (u *unionSchema) fieldValues(key string) ([]string, bool) {
	if key == u.discriminator {
		return u.options, true
	}
	var out []string
	for _, b := range u.branches {
		vals, ok := fieldValues(b, key)
		if !ok {
			return nil, false
		}
		out = append(out, vals...)
	}
	return dedupe(out), true
}

func (u *unionSchema) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{
		Description:   u.description,
		Discriminator: &js.Discriminator{PropertyName: u.discriminator},
	}
	for _, b := range u.branches {
		bs, err := b.JSONSchema()
		if err != nil {
			return nil, err
		}
		s.OneOf = append(s.OneOf, bs)
	}
	return s, nil
}

// ---- plain unions ----

type anyOfSchema struct {
	alternatives []Node
}

// Union accepts the first alternative that validates. When none does, a
// single invalid_union issue carries every alternative's issues as a group.
func Union(alternatives ...Node) Node {
	return &anyOfSchema{alternatives: alternatives}
}

func (a *anyOfSchema) Parse(ctx context.Context, v any) (any, error) {
	groups := make([]lensmeta.Issues, 0, len(a.alternatives))
	for _, alt := range a.alternatives {
		out, err := alt.Parse(ctx, v)
		if err == nil {
			return out, nil
		}
		groups = append(groups, lensmeta.ToIssues(err))
	}
	it := newIssue(lensmeta.CodeInvalidUnion, nil, nil)
	it.Groups = groups
	return nil, lensmeta.Issues{it}
}

func (a *anyOfSchema) fieldValues(key string) ([]string, bool) {
	var out []string
	for _, alt := range a.alternatives {
		vals, ok := fieldValues(alt, key)
		if !ok {
			return nil, false
		}
		out = append(out, vals...)
	}
	return dedupe(out), true
}

func (a *anyOfSchema) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{}
	for _, alt := range a.alternatives {
		as, err := alt.JSONSchema()
		if err != nil {
			return nil, err
		}
		s.AnyOf = append(s.AnyOf, as)
	}
	return s, nil
}

// Resolver is implemented by discriminated unions built with
// Object().Discriminator(...).
type Resolver interface {
	Resolve(v any) (Node, error)
	Options() []string
}

var _ Resolver = (*unionSchema)(nil)
