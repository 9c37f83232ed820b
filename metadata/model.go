package metadata

import (
	"bytes"
	"maps"

	json "github.com/goccy/go-json"

	"github.com/reoring/lensmeta/primitives"
)

// Metadata is a validated metadata document: the `$schema` discriminant, the
// variant specific lens details and an optional signature, sharing the top
// level with the marketplace envelope. Keys outside the known set are kept in
// Extra and written back on marshal.
type Metadata[D any] struct {
	Schema    SchemaID             `json:"$schema"`
	Lens      D                    `json:"lens"`
	Signature primitives.Signature `json:"signature,omitempty"`
	Marketplace
	Extra map[string]any `json:"-"`
}

// AnyMetadata is implemented by every Metadata instantiation.
type AnyMetadata interface {
	SchemaID() SchemaID
	LensDetails() any
	Signed() (primitives.Signature, bool)
	WithSignature(sig primitives.Signature) AnyMetadata
}

type (
	ArticleMetadata     = Metadata[ArticleDetails]
	AudioMetadata       = Metadata[AudioDetails]
	CheckingInMetadata  = Metadata[CheckingInDetails]
	EmbedMetadata       = Metadata[EmbedDetails]
	EventMetadata       = Metadata[EventDetails]
	ImageMetadata       = Metadata[ImageDetails]
	LinkMetadata        = Metadata[LinkDetails]
	LivestreamMetadata  = Metadata[LivestreamDetails]
	MintMetadata        = Metadata[MintDetails]
	SpaceMetadata       = Metadata[SpaceDetails]
	StoryMetadata       = Metadata[StoryDetails]
	TextOnlyMetadata    = Metadata[TextOnlyDetails]
	ThreeDMetadata      = Metadata[ThreeDDetails]
	TransactionMetadata = Metadata[TransactionDetails]
	VideoMetadata       = Metadata[VideoDetails]
	ProfileMetadata     = Metadata[ProfileDetails]
	AppMetadata         = Metadata[AppDetails]
)

func (m Metadata[D]) SchemaID() SchemaID { return m.Schema }

func (m Metadata[D]) LensDetails() any { return m.Lens }

func (m Metadata[D]) Signed() (primitives.Signature, bool) {
	return m.Signature, m.Signature != ""
}

// WithSignature returns a copy carrying sig. The receiver is not modified.
func (m Metadata[D]) WithSignature(sig primitives.Signature) AnyMetadata {
	out := m
	out.Signature = sig
	out.Extra = maps.Clone(m.Extra)
	return out
}

var knownKeys = map[string]struct{}{
	"$schema": {}, "lens": {}, "signature": {},
	"description": {}, "external_url": {}, "name": {}, "attributes": {}, "image": {}, "animation_url": {},
}

type metadataPlain[D any] Metadata[D]

func (m Metadata[D]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(metadataPlain[D](m))
	if err != nil || len(m.Extra) == 0 {
		return data, err
	}
	var tree map[string]any
	if err := decodeNumber(data, &tree); err != nil {
		return nil, err
	}
	for k, v := range m.Extra {
		if _, known := knownKeys[k]; !known {
			tree[k] = v
		}
	}
	return json.Marshal(tree)
}

func (m *Metadata[D]) UnmarshalJSON(data []byte) error {
	var plain metadataPlain[D]
	if err := json.Unmarshal(data, &plain); err != nil {
		return err
	}
	var tree map[string]any
	if err := decodeNumber(data, &tree); err != nil {
		return err
	}
	for k, v := range tree {
		if _, known := knownKeys[k]; known {
			continue
		}
		if plain.Extra == nil {
			plain.Extra = map[string]any{}
		}
		plain.Extra[k] = v
	}
	*m = Metadata[D](plain)
	return nil
}

func decodeNumber(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
