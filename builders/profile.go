package builders

import (
	"context"

	"github.com/google/uuid"

	"github.com/reoring/lensmeta/metadata"
)

type ProfileOptions struct {
	ID           string
	Name         string
	Bio          string
	Picture      string
	CoverPicture string
	Attributes   []Attribute
	AppID        string
}

// Profile builds profile metadata. Profiles carry no marketplace fields.
func Profile(ctx context.Context, o ProfileOptions) (metadata.ProfileMetadata, error) {
	lens := map[string]any{"id": orDefault(o.ID, uuid.NewString)}
	setString(lens, "name", o.Name)
	setString(lens, "bio", o.Bio)
	setString(lens, "picture", o.Picture)
	setString(lens, "coverPicture", o.CoverPicture)
	if o.Attributes != nil {
		lens["attributes"] = attributes(o.Attributes)
	}
	setString(lens, "appId", o.AppID)
	return build(ctx, metadata.ProfileMetadataSchema, metadata.ProfileSchema, lens, nil)
}
