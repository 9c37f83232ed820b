package jsonschema

// Draft is the JSON Schema dialect emitted by exporters.
const Draft = "http://json-schema.org/draft-07/schema#"

// Schema is a minimal JSON Schema representation used for export.
// Only keywords produced by the dsl nodes are modelled.
type Schema struct {
	// Document
	Schema      string `json:"$schema,omitempty"`
	ID          string `json:"$id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Core
	Type    string `json:"type,omitempty"`
	Format  string `json:"format,omitempty"`
	Default any    `json:"default,omitempty"`
	Const   any    `json:"const,omitempty"`
	Enum    []any  `json:"enum,omitempty"`

	// String
	Pattern   string `json:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items       *Schema `json:"items,omitempty"`
	MinItems    *int    `json:"minItems,omitempty"`
	MaxItems    *int    `json:"maxItems,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`

	// Discriminator names the property that selects a OneOf branch. It is an
	// annotation only; validators ignore unknown keywords.
	Discriminator *Discriminator `json:"discriminator,omitempty"`
}

// Discriminator annotates a discriminated union.
type Discriminator struct {
	PropertyName string `json:"propertyName"`
}

// Int returns a pointer to n, for the optional integer keywords.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for the optional number keywords.
func Float(f float64) *float64 { return &f }

// Null is the schema of the JSON null value.
func Null() *Schema { return &Schema{Type: "null"} }

// Nullable wraps s so that null is accepted too.
func Nullable(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	return &Schema{AnyOf: []*Schema{s, Null()}, Description: s.Description}
}
