package metadata

import (
	"regexp"

	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/primitives"
)

var (
	decimalRe   = regexp.MustCompile(`^\d+(\.\d+)?$`)
	profileIDRe = regexp.MustCompile(`^0x[a-fA-F0-9]+$`)
	txHashRe    = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
)

func profileIDSchema() *dsl.StringSchema {
	return dsl.String().Regex(profileIDRe, "Invalid profile id")
}

// ContentWarning flags sensitive content.
type ContentWarning string

const (
	ContentWarningNSFW      ContentWarning = "NSFW"
	ContentWarningSensitive ContentWarning = "SENSITIVE"
	ContentWarningSpoiler   ContentWarning = "SPOILER"
)

// EncryptionStrategy describes how parts of a post were encrypted and who
// may decrypt them.
type EncryptionStrategy struct {
	Scheme                string                      `json:"scheme"`
	EncryptionKey         primitives.NonEmptyString   `json:"encryptionKey"`
	AccessCondition       AccessCondition             `json:"accessCondition"`
	EncryptedPaths        []primitives.NonEmptyString `json:"encryptedPaths"`
	AccessControlContract NetworkAddress              `json:"accessControlContract"`
}

// EncryptionStrategySchema validates the Lit Protocol encryption envelope.
func EncryptionStrategySchema() dsl.Node {
	return dsl.Object().
		Field("scheme", dsl.Literal("LIT_PROTOCOL")).
		Field("encryptionKey", primitives.NonEmptyStringSchema()).
		Field("accessCondition", AnyConditionSchema()).
		Field("encryptedPaths", dsl.Array(primitives.NonEmptyStringSchema()).Min(1)).
		Field("accessControlContract", networkAddressSchema()).
		MustBuild()
}

// PostCommon holds the fields shared by every post variant.
type PostCommon struct {
	ID               primitives.NonEmptyString `json:"id"`
	Locale           primitives.Locale         `json:"locale"`
	Tags             []primitives.Tag          `json:"tags,omitempty"`
	Attributes       []MetadataAttribute       `json:"attributes,omitempty"`
	ContentWarning   ContentWarning            `json:"contentWarning,omitempty"`
	HideFromFeed     *bool                     `json:"hideFromFeed,omitempty"`
	AppID            primitives.EvmAddress     `json:"appId,omitempty"`
	EncryptedWith    *EncryptionStrategy       `json:"encryptedWith,omitempty"`
	MainContentFocus PostMainFocus             `json:"mainContentFocus"`
}

// postDetails starts the lens object of a post: the shared fields followed
// by the main content focus, which accepts one or more values.
func postDetails(focus ...PostMainFocus) *dsl.ObjectBuilder {
	var focusNode dsl.Node
	if len(focus) == 1 {
		focusNode = dsl.Literal(string(focus[0]))
	} else {
		vals := make([]string, len(focus))
		for i, f := range focus {
			vals[i] = string(f)
		}
		focusNode = dsl.Enum(vals...)
	}
	b := dsl.Object()
	b.Field("id", primitives.NonEmptyStringSchema()).Describe("A unique identifier that in storages like IPFS ensures the uniqueness of the metadata URI.")
	b.Field("locale", primitives.LocaleSchema())
	b.Field("tags", primitives.TagsSchema()).Optional()
	b.Field("attributes", attributesSchema()).Optional()
	b.Field("contentWarning", dsl.Enum(string(ContentWarningNSFW), string(ContentWarningSensitive),
		string(ContentWarningSpoiler))).Optional()
	b.Field("hideFromFeed", dsl.Bool()).Optional()
	b.Field("appId", primitives.EvmAddressSchema()).Optional()
	b.Field("encryptedWith", EncryptionStrategySchema()).Optional()
	b.Field("mainContentFocus", focusNode)
	return b
}
