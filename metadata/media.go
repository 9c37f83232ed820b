package metadata

import (
	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/primitives"
)

// MimeType is the media type of an attached file.
type MimeType string

var (
	audioMimeTypes = []string{
		"audio/wav", "audio/vnd.wave", "audio/mpeg", "audio/ogg",
		"audio/mp4", "audio/aac", "audio/webm", "audio/flac",
	}
	imageMimeTypes = []string{
		"image/bmp", "image/gif", "image/heic", "image/jpeg", "image/png",
		"image/svg+xml", "image/tiff", "image/webp", "image/x-ms-bmp", "image/avif",
	}
	videoMimeTypes = []string{
		"model/gltf+json", "model/gltf-binary", "video/x-m4v", "video/mov", "video/mp4",
		"video/mpeg", "video/ogg", "video/ogv", "video/quicktime", "video/webm",
	}
)

// MediaFamily names one of the disjoint MIME families.
type MediaFamily string

const (
	AudioFamily MediaFamily = "audio"
	ImageFamily MediaFamily = "image"
	VideoFamily MediaFamily = "video"
)

// MimeTypes returns the MIME types accepted for a family.
func MimeTypes(f MediaFamily) []string {
	switch f {
	case AudioFamily:
		return append([]string(nil), audioMimeTypes...)
	case ImageFamily:
		return append([]string(nil), imageMimeTypes...)
	case VideoFamily:
		return append([]string(nil), videoMimeTypes...)
	}
	return nil
}

// FamilyOf returns the family of a MIME type, checking audio, image and video
// in that order.
func FamilyOf(mime string) (MediaFamily, bool) {
	for _, f := range []MediaFamily{AudioFamily, ImageFamily, VideoFamily} {
		for _, m := range MimeTypes(f) {
			if m == mime {
				return f, true
			}
		}
	}
	return "", false
}

// AudioKind classifies audio content.
type AudioKind string

const (
	AudioMusic     AudioKind = "MUSIC"
	AudioPodcast   AudioKind = "PODCAST"
	AudioAudiobook AudioKind = "AUDIOBOOK"
	AudioVoiceNote AudioKind = "VOICE_NOTE"
	AudioSound     AudioKind = "SOUND"
	AudioOther     AudioKind = "OTHER"
)

// AnyMedia is the flattened typed form of an audio, image or video item.
// Fields that do not belong to the item's family are always empty.
type AnyMedia struct {
	Item        primitives.URI            `json:"item"`
	Type        MimeType                  `json:"type"`
	Cover       primitives.URI            `json:"cover,omitempty"`
	Duration    *int64                    `json:"duration,omitempty"`
	AltTag      primitives.NonEmptyString `json:"altTag,omitempty"`
	Credits     primitives.NonEmptyString `json:"credits,omitempty"`
	Artist      primitives.NonEmptyString `json:"artist,omitempty"`
	Genre       primitives.NonEmptyString `json:"genre,omitempty"`
	RecordLabel primitives.NonEmptyString `json:"recordLabel,omitempty"`
	Kind        AudioKind                 `json:"kind,omitempty"`
	Lyrics      primitives.URI            `json:"lyrics,omitempty"`
}

// Family reports which family the media type belongs to.
func (m AnyMedia) Family() MediaFamily {
	f, _ := FamilyOf(string(m.Type))
	return f
}

func durationSchema() dsl.Node { return dsl.Number().Int().Positive() }

// MediaAudioSchema validates an audio item.
func MediaAudioSchema() dsl.Node {
	return dsl.Object().
		Field("item", primitives.URISchema()).
		Field("type", dsl.Enum(audioMimeTypes...)).
		Field("cover", primitives.URISchema()).Optional().
		Field("duration", durationSchema()).Optional().
		Field("credits", primitives.NonEmptyStringSchema()).Optional().
		Field("artist", primitives.NonEmptyStringSchema()).Optional().
		Field("genre", primitives.NonEmptyStringSchema()).Optional().
		Field("recordLabel", primitives.NonEmptyStringSchema()).Optional().
		Field("kind", dsl.Enum(string(AudioMusic), string(AudioPodcast), string(AudioAudiobook),
			string(AudioVoiceNote), string(AudioSound), string(AudioOther))).Optional().
		Field("lyrics", primitives.URISchema()).Optional().
		MustBuild()
}

// MediaImageSchema validates an image item.
func MediaImageSchema() dsl.Node {
	return dsl.Object().
		Field("item", primitives.URISchema()).
		Field("type", dsl.Enum(imageMimeTypes...)).
		Field("altTag", primitives.NonEmptyStringSchema()).Optional().
		MustBuild()
}

// MediaVideoSchema validates a video item. 3D models travel as video.
func MediaVideoSchema() dsl.Node {
	return dsl.Object().
		Field("item", primitives.URISchema()).
		Field("type", dsl.Enum(videoMimeTypes...)).
		Field("cover", primitives.URISchema()).Optional().
		Field("duration", durationSchema()).Optional().
		Field("altTag", primitives.NonEmptyStringSchema()).Optional().
		MustBuild()
}

// AnyMediaSchema resolves a media item by testing its type against the
// audio, image and video MIME families in that order.
func AnyMediaSchema() dsl.Node {
	return dsl.Object().Discriminator("type").
		Description("An audio, image or video item selected by its MIME type.").
		Families(
			dsl.Family(string(AudioFamily), audioMimeTypes, MediaAudioSchema()),
			dsl.Family(string(ImageFamily), imageMimeTypes, MediaImageSchema()),
			dsl.Family(string(VideoFamily), videoMimeTypes, MediaVideoSchema()),
		).
		MustBuild()
}

func attachmentsSchema() dsl.Node { return dsl.Array(AnyMediaSchema()).Min(1) }
