package legacy

import (
	"context"

	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/primitives"
)

// Profile is a v1 profile. Name, bio and cover picture must be present but
// may be null.
type Profile struct {
	Version      string      `json:"version"`
	MetadataID   string      `json:"metadata_id"`
	Name         *string     `json:"name"`
	Bio          *string     `json:"bio"`
	CoverPicture *string     `json:"cover_picture"`
	Attributes   []Attribute `json:"attributes"`
}

// ProfileNode validates v1 profiles.
func ProfileNode() dsl.Node {
	return dsl.Object().
		Field("version", dsl.Literal(Version1)).
		Field("metadata_id", primitives.NonEmptyStringSchema()).
		Field("name", dsl.String()).Nullable().
		Field("bio", dsl.String()).Nullable().
		Field("cover_picture", dsl.String()).Nullable().
		Field("attributes", dsl.Array(AttributeSchema())).
		Passthrough().
		MustBuild()
}

var profile = dsl.Bind[Profile](ProfileNode())

// ProfileSchema is the typed legacy profile schema.
func ProfileSchema() *dsl.Bound[Profile] { return profile }

// ParseProfile validates a v1 profile.
func ParseProfile(ctx context.Context, v any) (Profile, error) {
	return profile.Parse(ctx, v)
}
