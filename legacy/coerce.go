// Package legacy validates the version-tagged publication and profile
// metadata that predates the `$schema` documents. It shares the dsl engine
// and the primitives with package metadata but is looser: attribute values
// are coerced to strings instead of rejected, most fields are nullable, and
// unknown keys are preserved.
//
// Legacy documents are never upgraded to the current model.
package legacy

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/reoring/lensmeta/dsl"
)

// Stringify renders any value the way legacy producers serialized attribute
// values: null becomes "", strings are kept, everything else is written as
// JSON.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	b, err := json.MarshalNoEscape(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func stringified() dsl.Node {
	return dsl.Preprocess(func(v any) any { return Stringify(v) }, dsl.String())
}

// Attribute is a legacy key/value trait.
type Attribute struct {
	DisplayType *string `json:"displayType,omitempty"`
	TraitType   *string `json:"traitType,omitempty"`
	Key         string  `json:"key"`
	Value       string  `json:"value"`
}

// AttributeSchema coerces key and value to strings. A missing value reads
// as the empty string.
func AttributeSchema() dsl.Node {
	return dsl.Object().
		Field("displayType", dsl.Enum("number", "string", "date")).Optional().Nullable().
		Field("traitType", stringified()).Optional().
		Field("key", stringified()).
		Field("value", stringified()).Default("").
		Strip().
		MustBuild()
}
