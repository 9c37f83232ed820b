package metadata

import (
	"context"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/codec"
	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/primitives"
)

// PostMainFocus is the main content focus of a post.
type PostMainFocus string

const (
	FocusArticle     PostMainFocus = "ARTICLE"
	FocusAudio       PostMainFocus = "AUDIO"
	FocusCheckingIn  PostMainFocus = "CHECKING_IN"
	FocusEmbed       PostMainFocus = "EMBED"
	FocusEvent       PostMainFocus = "EVENT"
	FocusImage       PostMainFocus = "IMAGE"
	FocusLink        PostMainFocus = "LINK"
	FocusLivestream  PostMainFocus = "LIVESTREAM"
	FocusMint        PostMainFocus = "MINT"
	FocusSpace       PostMainFocus = "SPACE"
	FocusStory       PostMainFocus = "STORY"
	FocusTextOnly    PostMainFocus = "TEXT_ONLY"
	FocusThreeD      PostMainFocus = "THREE_D"
	FocusTransaction PostMainFocus = "TRANSACTION"
	FocusVideo       PostMainFocus = "VIDEO"
	FocusShortVideo  PostMainFocus = "SHORT_VIDEO"
)

type TextOnlyDetails struct {
	PostCommon
	Content primitives.Markdown `json:"content"`
}

func textOnlyDetails() dsl.Node {
	return postDetails(FocusTextOnly).
		Field("content", primitives.MarkdownSchema()).
		MustBuild()
}

type ArticleDetails struct {
	PostCommon
	Content     primitives.Markdown       `json:"content"`
	Title       primitives.NonEmptyString `json:"title,omitempty"`
	Attachments []AnyMedia                `json:"attachments,omitempty"`
}

func articleDetails() dsl.Node {
	return postDetails(FocusArticle).
		Field("content", primitives.MarkdownSchema()).
		Field("title", primitives.NonEmptyStringSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

type AudioDetails struct {
	PostCommon
	Audio       AnyMedia                  `json:"audio"`
	Title       primitives.NonEmptyString `json:"title,omitempty"`
	Content     primitives.Markdown       `json:"content,omitempty"`
	Attachments []AnyMedia                `json:"attachments,omitempty"`
}

func audioDetails() dsl.Node {
	return postDetails(FocusAudio).
		Field("audio", MediaAudioSchema()).
		Field("title", primitives.NonEmptyStringSchema()).Optional().
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

type ImageDetails struct {
	PostCommon
	Image       AnyMedia                  `json:"image"`
	Title       primitives.NonEmptyString `json:"title,omitempty"`
	Content     primitives.Markdown       `json:"content,omitempty"`
	Attachments []AnyMedia                `json:"attachments,omitempty"`
}

func imageDetails() dsl.Node {
	return postDetails(FocusImage).
		Field("image", MediaImageSchema()).
		Field("title", primitives.NonEmptyStringSchema()).Optional().
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

type VideoDetails struct {
	PostCommon
	Video       AnyMedia                  `json:"video"`
	Title       primitives.NonEmptyString `json:"title,omitempty"`
	Content     primitives.Markdown       `json:"content,omitempty"`
	Attachments []AnyMedia                `json:"attachments,omitempty"`
}

func videoDetails() dsl.Node {
	return postDetails(FocusVideo, FocusShortVideo).
		Field("video", MediaVideoSchema()).
		Field("title", primitives.NonEmptyStringSchema()).Optional().
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

type LinkDetails struct {
	PostCommon
	SharingLink primitives.URI      `json:"sharingLink"`
	Content     primitives.Markdown `json:"content,omitempty"`
	Attachments []AnyMedia          `json:"attachments,omitempty"`
}

func linkDetails() dsl.Node {
	return postDetails(FocusLink).
		Field("sharingLink", primitives.URISchema()).
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

type EmbedDetails struct {
	PostCommon
	Embed       primitives.URI      `json:"embed"`
	Content     primitives.Markdown `json:"content,omitempty"`
	Attachments []AnyMedia          `json:"attachments,omitempty"`
}

func embedDetails() dsl.Node {
	return postDetails(FocusEmbed).
		Field("embed", primitives.URISchema()).
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

// PhysicalAddress is a postal address.
type PhysicalAddress struct {
	Formatted     string                    `json:"formatted,omitempty"`
	StreetAddress string                    `json:"streetAddress"`
	Locality      primitives.NonEmptyString `json:"locality"`
	Region        string                    `json:"region,omitempty"`
	PostalCode    string                    `json:"postalCode,omitempty"`
	Country       primitives.NonEmptyString `json:"country"`
}

func physicalAddressSchema() dsl.Node {
	return dsl.Object().
		Field("formatted", primitives.NonEmptyStringSchema()).Optional().
		Field("streetAddress", primitives.NonEmptyStringSchema()).
		Field("locality", primitives.NonEmptyStringSchema()).
		Field("region", primitives.NonEmptyStringSchema()).Optional().
		Field("postalCode", primitives.NonEmptyStringSchema()).Optional().
		Field("country", primitives.NonEmptyStringSchema()).
		MustBuild()
}

// locationSchema accepts either a URI (for online events) or free text.
func locationSchema() dsl.Node {
	return dsl.Union(primitives.URISchema(), primitives.NonEmptyStringSchema())
}

type EventDetails struct {
	PostCommon
	Title       primitives.NonEmptyString `json:"title,omitempty"`
	Location    string                    `json:"location"`
	Position    primitives.GeoURI         `json:"position,omitempty"`
	Address     *PhysicalAddress          `json:"address,omitempty"`
	StartsAt    primitives.DateTime       `json:"startsAt"`
	EndsAt      primitives.DateTime       `json:"endsAt"`
	Links       []primitives.URI          `json:"links,omitempty"`
	Content     primitives.Markdown       `json:"content,omitempty"`
	Attachments []AnyMedia                `json:"attachments,omitempty"`
}

func eventDetails() dsl.Node {
	return postDetails(FocusEvent).
		Field("title", primitives.NonEmptyStringSchema()).Optional().
		Field("location", locationSchema()).
		Field("position", primitives.GeoURISchema()).Optional().
		Field("address", physicalAddressSchema()).Optional().
		Field("startsAt", primitives.DateTimeSchema()).
		Field("endsAt", primitives.DateTimeSchema()).
		Field("links", dsl.Array(primitives.URISchema()).Min(1)).Optional().
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		Refine("event_time_range", eventTimeRange).
		MustBuild()
}

func eventTimeRange(_ context.Context, m map[string]any) error {
	start, err1 := codec.ParseDateTime(m["startsAt"].(string))
	end, err2 := codec.ParseDateTime(m["endsAt"].(string))
	if err1 != nil || err2 != nil || end.After(start) {
		return nil
	}
	return lensmeta.Issues{lensmeta.CrossField("endsAt must be after startsAt", "endsAt")}
}

type LivestreamDetails struct {
	PostCommon
	Title        primitives.NonEmptyString `json:"title,omitempty"`
	StartsAt     primitives.DateTime       `json:"startsAt"`
	EndsAt       primitives.DateTime       `json:"endsAt,omitempty"`
	PlaybackURL  primitives.URI            `json:"playbackUrl"`
	LiveURL      primitives.URI            `json:"liveUrl"`
	CheckLiveAPI primitives.URI            `json:"checkLiveAPI,omitempty"`
	Content      primitives.Markdown       `json:"content,omitempty"`
	Attachments  []AnyMedia                `json:"attachments,omitempty"`
}

func livestreamDetails() dsl.Node {
	return postDetails(FocusLivestream).
		Field("title", primitives.NonEmptyStringSchema()).Optional().
		Field("startsAt", primitives.DateTimeSchema()).
		Field("endsAt", primitives.DateTimeSchema()).Optional().
		Field("playbackUrl", primitives.URISchema()).
		Field("liveUrl", primitives.URISchema()).
		Field("checkLiveAPI", primitives.URISchema()).Optional().
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

type MintDetails struct {
	PostCommon
	MintLink    primitives.URI      `json:"mintLink"`
	Content     primitives.Markdown `json:"content,omitempty"`
	Attachments []AnyMedia          `json:"attachments,omitempty"`
}

func mintDetails() dsl.Node {
	return postDetails(FocusMint).
		Field("mintLink", primitives.URISchema()).
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

type SpaceDetails struct {
	PostCommon
	Title       primitives.NonEmptyString `json:"title"`
	Link        primitives.URI            `json:"link"`
	StartsAt    primitives.DateTime       `json:"startsAt"`
	Content     primitives.Markdown       `json:"content,omitempty"`
	Attachments []AnyMedia                `json:"attachments,omitempty"`
}

func spaceDetails() dsl.Node {
	return postDetails(FocusSpace).
		Field("title", primitives.NonEmptyStringSchema()).
		Field("link", primitives.URISchema()).
		Field("startsAt", primitives.DateTimeSchema()).
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

type StoryDetails struct {
	PostCommon
	Asset AnyMedia `json:"asset"`
}

func storyDetails() dsl.Node {
	return postDetails(FocusStory).
		Field("asset", AnyMediaSchema()).
		MustBuild()
}

type CheckingInDetails struct {
	PostCommon
	Location    string              `json:"location"`
	Position    primitives.GeoURI   `json:"position,omitempty"`
	Address     *PhysicalAddress    `json:"address,omitempty"`
	Content     primitives.Markdown `json:"content,omitempty"`
	Attachments []AnyMedia          `json:"attachments,omitempty"`
}

func checkingInDetails() dsl.Node {
	return postDetails(FocusCheckingIn).
		Field("location", locationSchema()).
		Field("position", primitives.GeoURISchema()).Optional().
		Field("address", physicalAddressSchema()).Optional().
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

// ThreeDFormat is the file format of a 3D asset.
type ThreeDFormat string

const (
	ThreeDVRM  ThreeDFormat = "VRM"
	ThreeDGLTF ThreeDFormat = "GLTF"
	ThreeDGLB  ThreeDFormat = "GLB"
	ThreeDFBX  ThreeDFormat = "FBX"
	ThreeDOBJ  ThreeDFormat = "OBJ"
)

// ThreeDAsset is one 3D model.
type ThreeDAsset struct {
	URI       primitives.URI            `json:"uri"`
	ZipPath   string                    `json:"zipPath,omitempty"`
	PlayerURL primitives.URI            `json:"playerUrl"`
	Format    ThreeDFormat              `json:"format"`
	License   primitives.NonEmptyString `json:"license,omitempty"`
}

type ThreeDDetails struct {
	PostCommon
	Assets      []ThreeDAsset       `json:"assets"`
	Content     primitives.Markdown `json:"content,omitempty"`
	Attachments []AnyMedia          `json:"attachments,omitempty"`
}

func threeDAssetSchema() dsl.Node {
	return dsl.Object().
		Field("uri", primitives.URISchema()).
		Field("zipPath", primitives.NonEmptyStringSchema()).Optional().
		Field("playerUrl", primitives.URISchema()).
		Field("format", dsl.Enum(string(ThreeDVRM), string(ThreeDGLTF), string(ThreeDGLB),
			string(ThreeDFBX), string(ThreeDOBJ))).
		Field("license", primitives.NonEmptyStringSchema()).Optional().
		MustBuild()
}

func threeDDetails() dsl.Node {
	return postDetails(FocusThreeD).
		Field("assets", dsl.Array(threeDAssetSchema()).Min(1)).
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}

// TransactionType classifies the transaction a post shares.
type TransactionType string

const (
	TransactionERC721 TransactionType = "ERC721"
	TransactionERC20  TransactionType = "ERC20"
	TransactionOther  TransactionType = "OTHER"
)

type TransactionDetails struct {
	PostCommon
	TxHash      string              `json:"txHash"`
	Type        TransactionType     `json:"type"`
	ChainID     primitives.ChainID  `json:"chainId"`
	Content     primitives.Markdown `json:"content,omitempty"`
	Attachments []AnyMedia          `json:"attachments,omitempty"`
}

func transactionDetails() dsl.Node {
	return postDetails(FocusTransaction).
		Field("txHash", dsl.String().Regex(txHashRe, "Invalid transaction hash")).
		Field("type", dsl.Enum(string(TransactionERC721), string(TransactionERC20), string(TransactionOther))).
		Field("chainId", primitives.ChainIDSchema()).
		Field("content", primitives.MarkdownSchema()).Optional().
		Field("attachments", attachmentsSchema()).Optional().
		MustBuild()
}
