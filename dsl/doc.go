// Package dsl builds immutable schema nodes and runs them against untyped
// trees.
//
// Overview
//   - Primitives: String()/Number()/Bool()/Literal()/Enum()/Any().
//   - Objects: Object().Field(name, node) declares fields in validation order.
//     Fields are required unless Optional(); Nullable() accepts null;
//     Catch(v) makes a field recoverable; Default(v) fills absent fields.
//   - Unknown keys: Strict() (default) reports each, Strip() drops them,
//     Passthrough() keeps them.
//   - Discriminated unions: Object().Discriminator(key).OneOf(Variant(...))
//     resolves by map lookup; Families(Family(...)) resolves by value-set
//     membership across disjoint enums, tried in declaration order.
//   - Plain unions: Union(a, b) reports every alternative as a group.
//   - Arrays: Array(elem).Min(n).Max(n).Unique(key).
//   - Wrappers: Nullable, Transform, Preprocess, Refine, Describe.
//   - Typed projection: Bind[T](node) implements lensmeta.Schema[T].
//
// Error model
//
// Parse never panics on invalid input. It returns lensmeta.Issues whose
// paths are relative to the parsed value, in discovery order: depth-first,
// fields in declaration order, unknown keys sorted after the declared ones.
// Object refinements run only when every field validated, and a failed
// discriminator lookup never validates the branch fields.
//
// Example
//
//	attr := dsl.Object().
//	    Field("type", dsl.Literal("Boolean")).
//	    Field("key", dsl.String().Trim().Min(1)).
//	    Field("value", dsl.Enum("true", "false")).
//	    MustBuild()
//	out, err := attr.Parse(ctx, map[string]any{"type": "Boolean", "key": "nsfw", "value": "true"})
//
// Construction errors (a union branch that does not declare its
// discriminant, a value claimed twice) are returned from Build and panic in
// MustBuild.
package dsl
