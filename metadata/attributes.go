package metadata

import (
	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/primitives"
)

// AttributeType selects how the string value of an attribute is meant to be
// read. Values are always carried as strings on the wire.
type AttributeType string

const (
	BooleanAttribute AttributeType = "Boolean"
	DateAttribute    AttributeType = "Date"
	NumberAttribute  AttributeType = "Number"
	StringAttribute  AttributeType = "String"
	JSONAttribute    AttributeType = "JSON"
)

// MetadataAttribute is a typed key/value pair.
type MetadataAttribute struct {
	Type  AttributeType             `json:"type"`
	Key   primitives.NonEmptyString `json:"key"`
	Value string                    `json:"value"`
}

const maxAttributes = 20

func attributeVariant(t AttributeType, value dsl.Node) dsl.UnionVariant {
	return dsl.Variant(string(t), dsl.Object().
		Field("type", dsl.Literal(string(t))).
		Field("key", primitives.NonEmptyStringSchema()).
		Field("value", value).
		MustBuild())
}

// MetadataAttributeSchema resolves an attribute by its type. Payloads other
// than Boolean and Date are not interpreted.
func MetadataAttributeSchema() dsl.Node {
	return dsl.Object().Discriminator("type").
		Description("A key/value attribute whose value is a string typed by `type`.").
		OneOf(
			attributeVariant(BooleanAttribute, dsl.Enum("true", "false")),
			attributeVariant(DateAttribute, primitives.DateTimeSchema()),
			attributeVariant(NumberAttribute, primitives.NonEmptyStringSchema()),
			attributeVariant(StringAttribute, primitives.NonEmptyStringSchema()),
			attributeVariant(JSONAttribute, primitives.NonEmptyStringSchema()),
		).
		MustBuild()
}

func attributesSchema() dsl.Node {
	return dsl.Array(MetadataAttributeSchema()).Min(1).Max(maxAttributes)
}
