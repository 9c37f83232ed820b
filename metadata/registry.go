package metadata

import (
	"context"
	"fmt"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/dsl"
	js "github.com/reoring/lensmeta/jsonschema"
	"github.com/reoring/lensmeta/primitives"
)

type entry struct {
	id    SchemaID
	node  dsl.Node
	parse func(context.Context, any) (AnyMetadata, error)
}

var (
	registry []entry
	byID     = map[SchemaID]entry{}
)

// documentSchema wraps lens details into a full document. Post documents
// carry the marketplace envelope and tolerate unknown top-level keys.
func documentSchema(id SchemaID, lens dsl.Node, marketplace bool) dsl.Node {
	b := dsl.Object()
	b.Field("$schema", dsl.Literal(string(id)))
	b.Field("lens", lens)
	b.Field("signature", primitives.SignatureSchema()).Optional()
	if marketplace {
		withMarketplace(b).Passthrough()
	}
	return b.MustBuild()
}

func register[D any](id SchemaID, lens dsl.Node, marketplace bool) *dsl.Bound[Metadata[D]] {
	bound := dsl.Bind[Metadata[D]](documentSchema(id, lens, marketplace))
	e := entry{
		id:   id,
		node: bound.Node(),
		parse: func(ctx context.Context, v any) (AnyMetadata, error) {
			m, err := bound.Parse(ctx, v)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	}
	registry = append(registry, e)
	byID[id] = e
	return bound
}

// Typed document schemas, one per registered `$schema`.
var (
	ArticleMetadataSchema     = register[ArticleDetails](ArticleSchema, articleDetails(), true)
	AudioMetadataSchema       = register[AudioDetails](AudioSchema, audioDetails(), true)
	CheckingInMetadataSchema  = register[CheckingInDetails](CheckingInSchema, checkingInDetails(), true)
	EmbedMetadataSchema       = register[EmbedDetails](EmbedSchema, embedDetails(), true)
	EventMetadataSchema       = register[EventDetails](EventSchema, eventDetails(), true)
	ImageMetadataSchema       = register[ImageDetails](ImageSchema, imageDetails(), true)
	LinkMetadataSchema        = register[LinkDetails](LinkSchema, linkDetails(), true)
	LivestreamMetadataSchema  = register[LivestreamDetails](LivestreamSchema, livestreamDetails(), true)
	MintMetadataSchema        = register[MintDetails](MintSchema, mintDetails(), true)
	SpaceMetadataSchema       = register[SpaceDetails](SpaceSchema, spaceDetails(), true)
	StoryMetadataSchema       = register[StoryDetails](StorySchema, storyDetails(), true)
	TextOnlyMetadataSchema    = register[TextOnlyDetails](TextOnlySchema, textOnlyDetails(), true)
	ThreeDMetadataSchema      = register[ThreeDDetails](ThreeDSchema, threeDDetails(), true)
	TransactionMetadataSchema = register[TransactionDetails](TransactionSchema, transactionDetails(), true)
	VideoMetadataSchema       = register[VideoDetails](VideoSchema, videoDetails(), true)
	ProfileMetadataSchema     = register[ProfileDetails](ProfileSchema, profileDetails(), false)
	AppMetadataSchema         = register[AppDetails](AppSchema, appDetails(), false)
)

var anyMetadata dsl.Node

func init() {
	vars := make([]dsl.UnionVariant, len(registry))
	for i, e := range registry {
		vars[i] = dsl.Variant(string(e.id), e.node)
	}
	anyMetadata = dsl.Object().Discriminator("$schema").
		Description("Any metadata document, selected by its $schema.").
		OneOf(vars...).
		MustBuild()
}

// AnyMetadataSchema returns the union of every registered document keyed by
// `$schema`.
func AnyMetadataSchema() dsl.Node { return anyMetadata }

// SchemaIDs lists every registered schema id in registration order.
func SchemaIDs() []SchemaID {
	out := make([]SchemaID, len(registry))
	for i, e := range registry {
		out[i] = e.id
	}
	return out
}

// Parse validates any metadata document and returns its typed form. An
// unknown or missing `$schema` yields a single invalid_discriminator issue
// and no further validation.
func Parse(ctx context.Context, v any) (AnyMetadata, error) {
	r := anyMetadata.(dsl.Resolver)
	if _, err := r.Resolve(v); err != nil {
		log.Debugf("metadata: unresolved $schema: %v", err)
		return nil, err
	}
	m, _ := lensmeta.AsObject(v)
	e := byID[SchemaID(m["$schema"].(string))]
	log.Tracef("metadata: resolved %s", e.id)
	out, err := e.parse(ctx, v)
	if err != nil {
		if iss, ok := lensmeta.AsIssues(err); ok {
			log.Debugf("metadata: %s rejected with %d issue(s)", e.id, len(iss))
		}
		return nil, err
	}
	return out, nil
}

// Validate is Parse returning a Result.
func Validate(ctx context.Context, v any) lensmeta.Result[AnyMetadata] {
	m, err := Parse(ctx, v)
	if err != nil {
		return lensmeta.Result[AnyMetadata]{Issues: lensmeta.ToIssues(err)}
	}
	return lensmeta.Result[AnyMetadata]{Value: m}
}

// ExportJSONSchema renders the JSON Schema document of a registered schema.
func ExportJSONSchema(id SchemaID) (*js.Schema, error) {
	e, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("metadata: unknown schema %q", id)
	}
	s, err := e.node.JSONSchema()
	if err != nil {
		return nil, err
	}
	s.Schema = js.Draft
	s.ID = string(id)
	return s, nil
}
