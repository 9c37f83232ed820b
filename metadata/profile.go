package metadata

import (
	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/primitives"
)

// ProfileDetails describes an account.
type ProfileDetails struct {
	ID           primitives.NonEmptyString `json:"id"`
	Name         primitives.NonEmptyString `json:"name,omitempty"`
	Bio          primitives.Markdown       `json:"bio,omitempty"`
	Picture      primitives.URI            `json:"picture,omitempty"`
	CoverPicture primitives.URI            `json:"coverPicture,omitempty"`
	Attributes   []MetadataAttribute       `json:"attributes,omitempty"`
	AppID        primitives.EvmAddress     `json:"appId,omitempty"`
}

func profileDetails() dsl.Node {
	return dsl.Object().
		Field("id", primitives.NonEmptyStringSchema()).
		Field("name", primitives.NonEmptyStringSchema()).Optional().
		Field("bio", primitives.MarkdownSchema()).Optional().
		Field("picture", primitives.URISchema()).Optional().
		Field("coverPicture", primitives.URISchema()).Optional().
		Field("attributes", attributesSchema()).Optional().
		Field("appId", primitives.EvmAddressSchema()).Optional().
		MustBuild()
}

// Platform is a platform an app ships on.
type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// AppDetails describes an application built on the protocol.
type AppDetails struct {
	Name           primitives.NonEmptyString `json:"name"`
	Tagline        primitives.NonEmptyString `json:"tagline,omitempty"`
	Description    primitives.Markdown       `json:"description,omitempty"`
	Logo           primitives.URI            `json:"logo,omitempty"`
	URL            primitives.URI            `json:"url"`
	Developer      primitives.NonEmptyString `json:"developer"`
	Platforms      []Platform                `json:"platforms"`
	TermsOfService primitives.URI            `json:"termsOfService,omitempty"`
	PrivacyPolicy  primitives.URI            `json:"privacyPolicy,omitempty"`
}

func appDetails() dsl.Node {
	return dsl.Object().
		Field("name", primitives.NonEmptyStringSchema()).
		Field("tagline", primitives.NonEmptyStringSchema()).Optional().
		Field("description", primitives.MarkdownSchema()).Optional().
		Field("logo", primitives.URISchema()).Optional().
		Field("url", primitives.URISchema()).
		Field("developer", primitives.NonEmptyStringSchema()).
		Field("platforms", dsl.Array(dsl.Enum(string(PlatformWeb), string(PlatformIOS), string(PlatformAndroid))).
			Min(1).Unique(dsl.StringKey)).
		Field("termsOfService", primitives.URISchema()).Optional().
		Field("privacyPolicy", primitives.URISchema()).Optional().
		MustBuild()
}
