package dsl

import (
	"context"
	"fmt"

	"github.com/reoring/lensmeta"
)

// ObjectBuilder assembles an object node. Fields are validated in the order
// they are declared and are required unless marked otherwise.
type ObjectBuilder struct {
	fields        []*objField
	index         map[string]int
	unknownPolicy lensmeta.UnknownPolicy
	refines       []objRefine
	description   string
	discriminator string
	variants      []UnionVariant
	families      []UnionFamily
}

type objField struct {
	name        string
	node        Node
	optional    bool
	hasCatch    bool
	catch       any
	hasDefault  bool
	def         any
	description string
}

type objRefine struct {
	name string
	fn   func(context.Context, map[string]any) error
}

// FieldStep configures the field declared last. Builder methods remain
// reachable through the embedded ObjectBuilder.
type FieldStep struct {
	*ObjectBuilder
	f *objField
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		index:         map[string]int{},
		unknownPolicy: lensmeta.UnknownStrict,
	}
}

// Field declares a field. Declaring a name twice replaces the earlier
// definition but keeps its position.
func (b *ObjectBuilder) Field(name string, n Node) *FieldStep {
	f := &objField{name: name, node: n}
	if i, ok := b.index[name]; ok {
		b.fields[i] = f
	} else {
		b.index[name] = len(b.fields)
		b.fields = append(b.fields, f)
	}
	return &FieldStep{ObjectBuilder: b, f: f}
}

// Optional lets the field be absent. A present null still has to satisfy the
// field node unless it is Nullable.
func (f *FieldStep) Optional() *FieldStep { f.f.optional = true; return f }

// Nullable accepts null for the field.
func (f *FieldStep) Nullable() *FieldStep { f.f.node = Nullable(f.f.node); return f }

// Catch marks the field recoverable: when it is missing or fails validation
// the issue is suppressed and a copy of v is used instead.
func (f *FieldStep) Catch(v any) *FieldStep {
	f.f.hasCatch = true
	f.f.catch = v
	return f
}

// Default sets a value used when the field is absent. The default is parsed
// through the field node like any input.
func (f *FieldStep) Default(v any) *FieldStep {
	f.f.hasDefault = true
	f.f.def = v
	return f
}

// Describe documents the field in the exported JSON Schema.
func (f *FieldStep) Describe(text string) *FieldStep { f.f.description = text; return f }

// Strict rejects unknown keys (the default).
func (b *ObjectBuilder) Strict() *ObjectBuilder {
	b.unknownPolicy = lensmeta.UnknownStrict
	return b
}

// Strip drops unknown keys.
func (b *ObjectBuilder) Strip() *ObjectBuilder {
	b.unknownPolicy = lensmeta.UnknownStrip
	return b
}

// Passthrough keeps unknown keys in the output unchanged.
func (b *ObjectBuilder) Passthrough() *ObjectBuilder {
	b.unknownPolicy = lensmeta.UnknownPassthrough
	return b
}

// Refine adds an object-level check. It runs only after every field
// validated; returned Issues are relative to the object, any other error is
// reported as a cross-field violation at the object itself.
func (b *ObjectBuilder) Refine(name string, fn func(context.Context, map[string]any) error) *ObjectBuilder {
	if fn == nil {
		return b
	}
	b.refines = append(b.refines, objRefine{name: name, fn: fn})
	return b
}

// Description documents the object in the exported JSON Schema.
func (b *ObjectBuilder) Description(text string) *ObjectBuilder {
	b.description = text
	return b
}

// Discriminator sets the discriminator key for a discriminated union.
func (b *ObjectBuilder) Discriminator(key string) *ObjectBuilder {
	b.discriminator = key
	return b
}

// UnionVariant maps one or more discriminant values to a schema.
type UnionVariant struct {
	values []string
	schema Node
}

// Variant constructs a UnionVariant for a single discriminant value.
func Variant(value string, s Node) UnionVariant {
	return UnionVariant{values: []string{value}, schema: s}
}

// VariantOf maps several discriminant values to the same schema.
func VariantOf(values []string, s Node) UnionVariant {
	return UnionVariant{values: values, schema: s}
}

// UnionFamily is a named set of discriminant values sharing one schema.
// Families are tried in declaration order by set membership.
type UnionFamily struct {
	name   string
	values []string
	set    map[string]struct{}
	schema Node
}

// Family constructs a UnionFamily.
func Family(name string, values []string, s Node) UnionFamily {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return UnionFamily{name: name, values: values, set: set, schema: s}
}

// Name returns the family name.
func (f UnionFamily) Name() string { return f.name }

// OneOf registers union variants when a discriminator is set.
func (b *ObjectBuilder) OneOf(vars ...UnionVariant) *ObjectBuilder {
	b.variants = append(b.variants, vars...)
	return b
}

// Families registers value-set families when a discriminator is set.
func (b *ObjectBuilder) Families(fams ...UnionFamily) *ObjectBuilder {
	b.families = append(b.families, fams...)
	return b
}

// Build validates the builder and returns a Node.
func (b *ObjectBuilder) Build() (Node, error) {
	if b.discriminator != "" {
		return b.buildUnion()
	}
	if len(b.variants) > 0 || len(b.families) > 0 {
		return nil, fmt.Errorf("dsl: variants declared without a discriminator")
	}
	for _, f := range b.fields {
		if f.node == nil {
			return nil, fmt.Errorf("dsl: field %q has no schema", f.name)
		}
	}
	fields := make([]objField, len(b.fields))
	for i, f := range b.fields {
		fields[i] = *f
	}
	refines := append([]objRefine(nil), b.refines...)
	return &objectSchema{
		fields:        fields,
		known:         knownSet(fields),
		unknownPolicy: b.unknownPolicy,
		refines:       refines,
		description:   b.description,
	}, nil
}

// MustBuild is Build that panics on construction errors.
func (b *ObjectBuilder) MustBuild() Node {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *ObjectBuilder) buildUnion() (Node, error) {
	u := &unionSchema{
		discriminator: b.discriminator,
		lookup:        map[string]Node{},
		description:   b.description,
	}
	seen := map[string]struct{}{}
	claim := func(v string) error {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("dsl: discriminant %q of %q declared twice", v, b.discriminator)
		}
		seen[v] = struct{}{}
		u.options = append(u.options, v)
		return nil
	}
	for _, vr := range b.variants {
		if vr.schema == nil || len(vr.values) == 0 {
			return nil, fmt.Errorf("dsl: empty variant for %q", b.discriminator)
		}
		accepted, ok := fieldValues(vr.schema, b.discriminator)
		if !ok {
			return nil, fmt.Errorf("dsl: variant %v does not declare %q as a literal field", vr.values, b.discriminator)
		}
		for _, v := range vr.values {
			if !contains(accepted, v) {
				return nil, fmt.Errorf("dsl: variant schema does not accept %q=%q", b.discriminator, v)
			}
			if err := claim(v); err != nil {
				return nil, err
			}
			u.lookup[v] = vr.schema
		}
		u.branches = append(u.branches, vr.schema)
	}
	for _, fam := range b.families {
		if fam.schema == nil || len(fam.values) == 0 {
			return nil, fmt.Errorf("dsl: empty family %q", fam.name)
		}
		accepted, ok := fieldValues(fam.schema, b.discriminator)
		if !ok {
			return nil, fmt.Errorf("dsl: family %q does not declare %q as an enum field", fam.name, b.discriminator)
		}
		for _, v := range fam.values {
			if !contains(accepted, v) {
				return nil, fmt.Errorf("dsl: family %q schema does not accept %q", fam.name, v)
			}
			if err := claim(v); err != nil {
				return nil, err
			}
		}
		u.families = append(u.families, fam)
		u.branches = append(u.branches, fam.schema)
	}
	if len(u.options) == 0 {
		return nil, fmt.Errorf("dsl: discriminator %q has no variants", b.discriminator)
	}
	return u, nil
}

func knownSet(fields []objField) map[string]struct{} {
	m := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		m[f.name] = struct{}{}
	}
	return m
}
