package metadata

import (
	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/primitives"
)

// MarketplaceAttribute is an OpenSea-style trait.
type MarketplaceAttribute struct {
	DisplayType string `json:"display_type,omitempty"`
	TraitType   string `json:"trait_type,omitempty"`
	Value       any    `json:"value,omitempty"`
}

// Marketplace is the NFT marketplace envelope sharing the top level with
// `$schema` and `lens`. Every field degrades to null or an empty list when
// invalid; it never fails a document.
type Marketplace struct {
	Description  *primitives.Markdown   `json:"description,omitempty"`
	ExternalURL  *primitives.URI        `json:"external_url,omitempty"`
	Name         *string                `json:"name,omitempty"`
	Image        *primitives.URI        `json:"image,omitempty"`
	AnimationURL *primitives.URI        `json:"animation_url,omitempty"`
	Attributes   []MarketplaceAttribute `json:"attributes,omitempty"`
}

func marketplaceAttributeSchema() dsl.Node {
	return dsl.Object().
		Field("display_type", dsl.Enum("number", "string", "date")).Optional().
		Field("trait_type", dsl.String()).Optional().
		Field("value", dsl.Union(dsl.String(), dsl.Number(), dsl.Bool())).Optional().
		Strip().
		MustBuild()
}

// withMarketplace adds the recoverable marketplace fields to a document.
func withMarketplace(b *dsl.ObjectBuilder) *dsl.ObjectBuilder {
	b.Field("description", primitives.MarkdownSchema()).Optional().Nullable().Catch(nil)
	b.Field("external_url", primitives.URISchema()).Optional().Nullable().Catch(nil)
	b.Field("name", dsl.String()).Optional().Nullable().Catch(nil)
	b.Field("attributes", dsl.Array(marketplaceAttributeSchema())).Optional().Catch([]any{})
	b.Field("image", primitives.URISchema()).Optional().Nullable().Catch(nil)
	b.Field("animation_url", primitives.URISchema()).Optional().Nullable().Catch(nil)
	return b
}
