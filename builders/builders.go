// Package builders assembles metadata documents from plain Go values.
//
// Each builder fills the `$schema`, the main content focus and the defaults
// (a random id, locale "en"), validates the result with the matching
// document schema and returns the typed document. Invalid input yields a
// *lensmeta.ValidationError listing every issue.
package builders

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/metadata"
)

// DefaultLocale is used when Common.Locale is empty.
const DefaultLocale = "en"

// Common holds the fields shared by every post builder.
type Common struct {
	// ID defaults to a random UUID.
	ID string
	// Locale defaults to DefaultLocale.
	Locale         string
	Tags           []string
	Attributes     []Attribute
	ContentWarning metadata.ContentWarning
	HideFromFeed   bool
	AppID          string
	// Marketplace sets the top-level NFT marketplace fields.
	Marketplace *Marketplace
}

// Attribute is a typed key/value pair attached to a post or profile.
type Attribute struct {
	Type  metadata.AttributeType
	Key   string
	Value string
}

// Marketplace holds the optional NFT marketplace fields of a post.
type Marketplace struct {
	Name         string
	Description  string
	ExternalURL  string
	Image        string
	AnimationURL string
	Attributes   []metadata.MarketplaceAttribute
}

// Media describes an attached file. Cover, Duration and the audio specific
// fields apply to the families that accept them.
type Media struct {
	Item     string
	Type     string
	Cover    string
	AltTag   string
	Duration int64
	Artist   string
	Genre    string
	Credits  string
	Kind     metadata.AudioKind
}

func (c Common) lens(focus metadata.PostMainFocus) map[string]any {
	m := map[string]any{
		"id":               orDefault(c.ID, uuid.NewString),
		"locale":           orDefault(c.Locale, func() string { return DefaultLocale }),
		"mainContentFocus": string(focus),
	}
	if c.Tags != nil {
		m["tags"] = anyList(c.Tags)
	}
	if c.Attributes != nil {
		m["attributes"] = attributes(c.Attributes)
	}
	setString(m, "contentWarning", string(c.ContentWarning))
	if c.HideFromFeed {
		m["hideFromFeed"] = true
	}
	setString(m, "appId", c.AppID)
	return m
}

func (mp *Marketplace) into(doc map[string]any) error {
	if mp == nil {
		return nil
	}
	setString(doc, "name", mp.Name)
	setString(doc, "description", mp.Description)
	setString(doc, "external_url", mp.ExternalURL)
	setString(doc, "image", mp.Image)
	setString(doc, "animation_url", mp.AnimationURL)
	if mp.Attributes != nil {
		tree, err := toTree(mp.Attributes)
		if err != nil {
			return err
		}
		doc["attributes"] = tree
	}
	return nil
}

func (md Media) tree() map[string]any {
	m := map[string]any{"item": md.Item, "type": md.Type}
	setString(m, "cover", md.Cover)
	setString(m, "altTag", md.AltTag)
	setString(m, "artist", md.Artist)
	setString(m, "genre", md.Genre)
	setString(m, "credits", md.Credits)
	setString(m, "kind", string(md.Kind))
	if md.Duration != 0 {
		m["duration"] = md.Duration
	}
	return m
}

func mediaList(list []Media) []any {
	out := make([]any, len(list))
	for i, md := range list {
		out[i] = md.tree()
	}
	return out
}

func attributes(list []Attribute) []any {
	out := make([]any, len(list))
	for i, a := range list {
		out[i] = map[string]any{"type": string(a.Type), "key": a.Key, "value": a.Value}
	}
	return out
}

func anyList(list []string) []any {
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = s
	}
	return out
}

func setString(m map[string]any, key, v string) {
	if v != "" {
		m[key] = v
	}
}

func orDefault(v string, def func() string) string {
	if v == "" {
		return def()
	}
	return v
}

// toTree converts typed values into the untyped form the schemas validate.
func toTree(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// build wraps lens into a document, validates it and converts validation
// failures into a ValidationError.
func build[D any](ctx context.Context, schema *dsl.Bound[metadata.Metadata[D]], id metadata.SchemaID, lens map[string]any, mp *Marketplace) (metadata.Metadata[D], error) {
	doc := map[string]any{"$schema": string(id), "lens": lens}
	if err := mp.into(doc); err != nil {
		return metadata.Metadata[D]{}, err
	}
	m, err := schema.Parse(ctx, doc)
	if err != nil {
		if iss, ok := lensmeta.AsIssues(err); ok {
			return m, lensmeta.NewValidationError(iss)
		}
		return m, err
	}
	return m, nil
}
