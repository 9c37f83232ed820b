package legacy

import (
	"context"
	"fmt"
	"strings"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/metadata"
	"github.com/reoring/lensmeta/primitives"
)

const (
	Version1 = "1.0.0"
	Version2 = "2.0.0"
)

// Media is a legacy media item.
type Media struct {
	Item   string  `json:"item"`
	AltTag *string `json:"altTag,omitempty"`
	Cover  *string `json:"cover,omitempty"`
	Type   *string `json:"type,omitempty"`
}

// Publication is the typed form of a v1 or v2 publication. The v2-only fields
// are empty for v1.
type Publication struct {
	Version          string      `json:"version"`
	MetadataID       string      `json:"metadata_id"`
	Description      *string     `json:"description,omitempty"`
	Content          *string     `json:"content,omitempty"`
	ExternalURL      *string     `json:"external_url,omitempty"`
	Name             string      `json:"name"`
	Image            *string     `json:"image,omitempty"`
	ImageMimeType    *string     `json:"imageMimeType,omitempty"`
	Media            []Media     `json:"media,omitempty"`
	AnimationURL     *string     `json:"animation_url,omitempty"`
	Attributes       []Attribute `json:"attributes"`
	AppID            *string     `json:"appId,omitempty"`
	Locale           string      `json:"locale,omitempty"`
	Tags             []string    `json:"tags,omitempty"`
	ContentWarning   *string     `json:"contentWarning,omitempty"`
	MainContentFocus string      `json:"mainContentFocus,omitempty"`
}

const oneOfContentMessage = "At least one between content, image, and media must be present."

func mediaSchema() dsl.Node {
	return dsl.Object().
		Field("item", primitives.URISchema()).
		Field("altTag", dsl.String()).Optional().Nullable().
		Field("cover", primitives.URISchema()).Optional().Nullable().
		Field("type", dsl.String()).Optional().Nullable().
		Passthrough().
		MustBuild()
}

// publicationFields declares the fields both versions share.
func publicationFields(version string) *dsl.ObjectBuilder {
	b := dsl.Object()
	b.Field("version", dsl.Literal(version))
	b.Field("metadata_id", primitives.NonEmptyStringSchema())
	b.Field("description", primitives.MarkdownSchema()).Optional().Nullable()
	b.Field("content", dsl.String()).Optional().Nullable()
	b.Field("external_url", primitives.URISchema()).Optional().Nullable()
	b.Field("name", dsl.String())
	b.Field("image", primitives.URISchema()).Optional().Nullable()
	b.Field("imageMimeType", dsl.String()).Optional().Nullable()
	b.Field("media", dsl.Array(mediaSchema())).Optional().Nullable()
	b.Field("animation_url", primitives.URISchema()).Optional().Nullable()
	b.Field("attributes", dsl.Array(AttributeSchema()))
	b.Field("appId", dsl.String()).Optional().Nullable()
	return b.Passthrough()
}

// PublicationV1Schema validates the flat v1 shape. When none of content,
// image or media carries anything, the same issue is reported at all three
// paths.
func PublicationV1Schema() dsl.Node {
	return publicationFields(Version1).
		Refine("content_image_or_media", func(_ context.Context, m map[string]any) error {
			if hasContent(m) || m["image"] != nil || len(mediaOf(m)) > 0 {
				return nil
			}
			return lensmeta.Issues{
				lensmeta.CrossField(oneOfContentMessage, "content"),
				lensmeta.CrossField(oneOfContentMessage, "image"),
				lensmeta.CrossField(oneOfContentMessage, "media"),
			}
		}).
		MustBuild()
}

// Focus values accepted by v2 publications.
var v2Focus = []string{"VIDEO", "IMAGE", "ARTICLE", "TEXT_ONLY", "AUDIO", "LINK", "EMBED"}

func v2Variant(focus string, rule func(map[string]any) lensmeta.Issues) dsl.UnionVariant {
	b := publicationFields(Version2)
	b.Field("locale", primitives.LocaleSchema())
	b.Field("tags", dsl.Array(dsl.String())).Optional().Nullable()
	b.Field("contentWarning", dsl.Enum("NSFW", "SENSITIVE", "SPOILER")).Optional().Nullable()
	b.Field("mainContentFocus", dsl.Literal(focus))
	b.Refine("focus_"+strings.ToLower(focus), func(_ context.Context, m map[string]any) error {
		if iss := rule(m); len(iss) > 0 {
			return iss
		}
		return nil
	})
	return dsl.Variant(focus, b.MustBuild())
}

func requireMediaOf(focus string, fam metadata.MediaFamily) func(map[string]any) lensmeta.Issues {
	return func(m map[string]any) lensmeta.Issues {
		for _, e := range mediaOf(m) {
			mm, _ := e.(map[string]any)
			if t, ok := mm["type"].(string); ok {
				if f, ok := metadata.FamilyOf(t); ok && f == fam {
					return nil
				}
			}
		}
		return lensmeta.Issues{lensmeta.CrossField(
			fmt.Sprintf("mainContentFocus %s requires at least one %s media", focus, fam), "media")}
	}
}

func requireContent(focus string) func(map[string]any) lensmeta.Issues {
	return func(m map[string]any) lensmeta.Issues {
		if hasContent(m) {
			return nil
		}
		return lensmeta.Issues{lensmeta.CrossField(
			fmt.Sprintf("mainContentFocus %s requires content", focus), "content")}
	}
}

func textOnlyRule(m map[string]any) lensmeta.Issues {
	iss := requireContent("TEXT_ONLY")(m)
	if len(mediaOf(m)) > 0 {
		iss = append(iss, lensmeta.CrossField("mainContentFocus TEXT_ONLY must not have media", "media"))
	}
	return iss
}

func linkRule(m map[string]any) lensmeta.Issues {
	if c, _ := m["content"].(string); strings.Contains(c, "https://") {
		return nil
	}
	return lensmeta.Issues{lensmeta.CrossField("mainContentFocus LINK requires content with an https:// link", "content")}
}

func embedRule(m map[string]any) lensmeta.Issues {
	if m["animation_url"] != nil {
		return nil
	}
	return lensmeta.Issues{lensmeta.CrossField("mainContentFocus EMBED requires animation_url", "animation_url")}
}

// PublicationV2Schema validates v2 publications, resolved by
// mainContentFocus. Every focus adds its own shape rule.
func PublicationV2Schema() dsl.Node {
	return dsl.Object().Discriminator("mainContentFocus").
		OneOf(
			v2Variant("VIDEO", requireMediaOf("VIDEO", metadata.VideoFamily)),
			v2Variant("IMAGE", requireMediaOf("IMAGE", metadata.ImageFamily)),
			v2Variant("ARTICLE", requireContent("ARTICLE")),
			v2Variant("TEXT_ONLY", textOnlyRule),
			v2Variant("AUDIO", requireMediaOf("AUDIO", metadata.AudioFamily)),
			v2Variant("LINK", linkRule),
			v2Variant("EMBED", embedRule),
		).
		MustBuild()
}

// PublicationNode dispatches on version.
func PublicationNode() dsl.Node {
	return dsl.Object().Discriminator("version").
		OneOf(
			dsl.Variant(Version1, PublicationV1Schema()),
			dsl.Variant(Version2, PublicationV2Schema()),
		).
		MustBuild()
}

var publication = dsl.Bind[Publication](PublicationNode())

// PublicationSchema is the typed legacy publication schema.
func PublicationSchema() *dsl.Bound[Publication] { return publication }

// ParsePublication validates a v1 or v2 publication.
func ParsePublication(ctx context.Context, v any) (Publication, error) {
	p, err := publication.Parse(ctx, v)
	if err != nil {
		log.Debugf("legacy: publication rejected: %v", err)
		return Publication{}, err
	}
	log.Tracef("legacy: publication %s (version %s)", p.MetadataID, p.Version)
	return p, nil
}

func hasContent(m map[string]any) bool {
	c, _ := m["content"].(string)
	return dsl.TrimInvisible(c) != ""
}

func mediaOf(m map[string]any) []any {
	media, _ := m["media"].([]any)
	return media
}
