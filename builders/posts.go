package builders

import (
	"context"
	"time"

	"github.com/reoring/lensmeta/codec"
	"github.com/reoring/lensmeta/metadata"
	"github.com/reoring/lensmeta/primitives"
)

type TextOnlyOptions struct {
	Common
	Content string
}

// TextOnly builds a text-only post.
func TextOnly(ctx context.Context, o TextOnlyOptions) (metadata.TextOnlyMetadata, error) {
	lens := o.lens(metadata.FocusTextOnly)
	lens["content"] = o.Content
	return build(ctx, metadata.TextOnlyMetadataSchema, metadata.TextOnlySchema, lens, o.Marketplace)
}

type ArticleOptions struct {
	Common
	Content     string
	Title       string
	Attachments []Media
}

// Article builds a long-form post.
func Article(ctx context.Context, o ArticleOptions) (metadata.ArticleMetadata, error) {
	lens := o.lens(metadata.FocusArticle)
	lens["content"] = o.Content
	setString(lens, "title", o.Title)
	setAttachments(lens, o.Attachments)
	return build(ctx, metadata.ArticleMetadataSchema, metadata.ArticleSchema, lens, o.Marketplace)
}

// MediaOptions is shared by the image, audio and video builders.
type MediaOptions struct {
	Common
	Title       string
	Content     string
	Attachments []Media
}

func (o MediaOptions) lensWith(focus metadata.PostMainFocus, key string, md Media) map[string]any {
	lens := o.lens(focus)
	lens[key] = md.tree()
	setString(lens, "title", o.Title)
	setString(lens, "content", o.Content)
	setAttachments(lens, o.Attachments)
	return lens
}

type ImageOptions struct {
	MediaOptions
	Image Media
}

// Image builds an image post.
func Image(ctx context.Context, o ImageOptions) (metadata.ImageMetadata, error) {
	lens := o.lensWith(metadata.FocusImage, "image", o.Image)
	return build(ctx, metadata.ImageMetadataSchema, metadata.ImageSchema, lens, o.Marketplace)
}

type AudioOptions struct {
	MediaOptions
	Audio Media
}

// Audio builds an audio post.
func Audio(ctx context.Context, o AudioOptions) (metadata.AudioMetadata, error) {
	lens := o.lensWith(metadata.FocusAudio, "audio", o.Audio)
	return build(ctx, metadata.AudioMetadataSchema, metadata.AudioSchema, lens, o.Marketplace)
}

type VideoOptions struct {
	MediaOptions
	Video Media
	// Short marks the post as a short video.
	Short bool
}

// Video builds a video or short video post.
func Video(ctx context.Context, o VideoOptions) (metadata.VideoMetadata, error) {
	focus := metadata.FocusVideo
	if o.Short {
		focus = metadata.FocusShortVideo
	}
	lens := o.lensWith(focus, "video", o.Video)
	return build(ctx, metadata.VideoMetadataSchema, metadata.VideoSchema, lens, o.Marketplace)
}

type LinkOptions struct {
	Common
	SharingLink string
	Content     string
	Attachments []Media
}

// Link builds a post sharing a link.
func Link(ctx context.Context, o LinkOptions) (metadata.LinkMetadata, error) {
	lens := o.lens(metadata.FocusLink)
	lens["sharingLink"] = o.SharingLink
	setString(lens, "content", o.Content)
	setAttachments(lens, o.Attachments)
	return build(ctx, metadata.LinkMetadataSchema, metadata.LinkSchema, lens, o.Marketplace)
}

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Lat, Lng float64
}

type EventOptions struct {
	Common
	Title    string
	Location string
	Position *GeoPoint
	StartsAt time.Time
	EndsAt   time.Time
	Links    []string
	Content  string
}

// Event builds an event post. Zero times are reported as missing.
func Event(ctx context.Context, o EventOptions) (metadata.EventMetadata, error) {
	lens := o.lens(metadata.FocusEvent)
	setString(lens, "title", o.Title)
	lens["location"] = o.Location
	if o.Position != nil {
		lens["position"] = primitives.FormatGeoURI(o.Position.Lat, o.Position.Lng)
	}
	dt := codec.DateTime()
	if s, err := dt.Encode(ctx, o.StartsAt); err == nil {
		lens["startsAt"] = s
	}
	if s, err := dt.Encode(ctx, o.EndsAt); err == nil {
		lens["endsAt"] = s
	}
	if o.Links != nil {
		lens["links"] = anyList(o.Links)
	}
	setString(lens, "content", o.Content)
	return build(ctx, metadata.EventMetadataSchema, metadata.EventSchema, lens, o.Marketplace)
}

func setAttachments(lens map[string]any, list []Media) {
	if list != nil {
		lens["attachments"] = mediaList(list)
	}
}
