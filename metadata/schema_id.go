package metadata

import (
	"fmt"
	"regexp"

	"github.com/blang/semver/v4"
)

// SchemaID is the `$schema` URI that discriminates every metadata document.
type SchemaID string

const schemaHost = "https://json-schemas.lens.dev"

const (
	ArticleSchema     SchemaID = schemaHost + "/posts/article/3.0.0.json"
	AudioSchema       SchemaID = schemaHost + "/posts/audio/3.0.0.json"
	CheckingInSchema  SchemaID = schemaHost + "/posts/checking-in/3.0.0.json"
	EmbedSchema       SchemaID = schemaHost + "/posts/embed/3.0.0.json"
	EventSchema       SchemaID = schemaHost + "/posts/event/3.0.0.json"
	ImageSchema       SchemaID = schemaHost + "/posts/image/3.0.0.json"
	LinkSchema        SchemaID = schemaHost + "/posts/link/3.0.0.json"
	LivestreamSchema  SchemaID = schemaHost + "/posts/livestream/3.0.0.json"
	MintSchema        SchemaID = schemaHost + "/posts/mint/3.0.0.json"
	SpaceSchema       SchemaID = schemaHost + "/posts/space/3.0.0.json"
	StorySchema       SchemaID = schemaHost + "/posts/story/3.0.0.json"
	TextOnlySchema    SchemaID = schemaHost + "/posts/text-only/3.0.0.json"
	ThreeDSchema      SchemaID = schemaHost + "/posts/3d/3.0.0.json"
	TransactionSchema SchemaID = schemaHost + "/posts/transaction/3.0.0.json"
	VideoSchema       SchemaID = schemaHost + "/posts/video/3.0.0.json"

	ProfileSchema SchemaID = schemaHost + "/profile/2.0.0.json"
	AppSchema     SchemaID = schemaHost + "/app/1.0.0.json"
)

var versionRe = regexp.MustCompile(`(\d+\.\d+\.\d+)`)

// Version extracts the semantic version embedded in the schema URI.
func (id SchemaID) Version() (semver.Version, error) {
	m := versionRe.FindString(string(id))
	if m == "" {
		return semver.Version{}, fmt.Errorf("metadata: no version in schema id %q", id)
	}
	v, err := semver.Parse(m)
	if err != nil {
		return semver.Version{}, fmt.Errorf("metadata: schema id %q: %w", id, err)
	}
	return v, nil
}

func (id SchemaID) String() string { return string(id) }

// ExtractVersion returns the version of the schema a metadata document
// conforms to, e.g. "3.0.0".
func ExtractVersion(m AnyMetadata) (string, error) {
	v, err := m.SchemaID().Version()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
