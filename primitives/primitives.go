// Package primitives holds the single-field validators of the metadata
// standard and the brand types they produce.
//
// A brand is a plain string type that only the matching ParseX function (or a
// schema node built here) hands out. Code outside the validation path should
// never convert arbitrary strings into a brand.
package primitives

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/dsl"
	js "github.com/reoring/lensmeta/jsonschema"
)

type (
	// NonEmptyString is a string that is not empty after trimming invisible
	// characters.
	NonEmptyString string
	// Markdown is a non-empty Markdown text.
	Markdown string
	// URI is an absolute URI, custom schemes (ipfs:, ar:, lens:) included.
	URI string
	// DateTime is an ISO-8601 date-time with timezone.
	DateTime string
	// Locale is a language or language-REGION tag.
	Locale string
	// EvmAddress is a 0x-prefixed, 20-byte hex address.
	EvmAddress string
	// GeoURI is a geo:<lat>,<lng> URI with in-range coordinates.
	GeoURI string
	// Signature is an opaque signature produced by an external signer.
	Signature string
	// Tag is a lowercase tag of at most 50 characters.
	Tag string
	// TokenID is a decimal token id.
	TokenID string
	// ChainID is a positive EVM chain id.
	ChainID int64
)

const (
	MaxTagLength = 50
	MaxTags      = 20
)

var (
	localeRe         = regexp.MustCompile(`(?i)^[a-z]{2}(-[a-z]{2})?$`)
	localeRecoveryRe = regexp.MustCompile(`^([a-zA-Z]{2})[-_]`)
	evmAddressRe     = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	geoURIRe         = regexp.MustCompile(`^geo:(-?\d+(?:\.\d+)?),\s*(-?\d+(?:\.\d+)?)$`)
	tokenIDRe        = regexp.MustCompile(`^[0-9]+$`)
)

// NonEmptyStringSchema trims and requires at least one character.
func NonEmptyStringSchema() *dsl.StringSchema { return dsl.String().Trim().Min(1) }

// MarkdownSchema is a non-empty Markdown string.
func MarkdownSchema() *dsl.StringSchema {
	return NonEmptyStringSchema().Format("markdown")
}

// URISchema accepts absolute URIs of at least 6 characters.
func URISchema() *dsl.StringSchema { return dsl.String().URL(6) }

// DateTimeSchema accepts ISO-8601 date-times with a timezone designator.
func DateTimeSchema() *dsl.StringSchema { return dsl.String().DateTime() }

// EvmAddressSchema accepts exactly 42 characters of 0x-prefixed hex.
func EvmAddressSchema() *dsl.StringSchema {
	return dsl.String().Length(42).Regex(evmAddressRe, "Invalid EVM address")
}

// SignatureSchema accepts any non-empty string.
func SignatureSchema() *dsl.StringSchema { return dsl.String().Min(1) }

// TagSchema accepts a non-empty tag of at most 50 characters.
func TagSchema() *dsl.StringSchema { return NonEmptyStringSchema().Max(MaxTagLength) }

// TokenIDSchema accepts decimal token ids.
func TokenIDSchema() *dsl.StringSchema {
	return dsl.String().Regex(tokenIDRe, "Invalid token id")
}

// ChainIDSchema accepts positive integers.
func ChainIDSchema() dsl.Node { return dsl.Number().Int().Positive() }

// TagsSchema accepts up to 20 tags and returns them lowercased with
// duplicates removed, first occurrence kept.
func TagsSchema() dsl.Node {
	return dsl.Transform(dsl.Array(TagSchema()).Max(MaxTags), func(_ context.Context, v any) (any, error) {
		in, _ := v.([]any)
		out := make([]any, 0, len(in))
		seen := make(map[string]struct{}, len(in))
		for _, e := range in {
			t := strings.ToLower(e.(string))
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
		return out, nil
	})
}

// ---- locale ----

type localeSchema struct{ strict *dsl.StringSchema }

// LocaleSchema accepts language or language-REGION tags. Malformed values
// such as "en-USA" or "en_US" are recovered to their language part, which
// then goes through the same rules; when recovery is impossible the original
// issue is reported.
func LocaleSchema() dsl.Node {
	return localeSchema{strict: dsl.String().Regex(localeRe, "Invalid locale").Format("locale")}
}

func (l localeSchema) Parse(ctx context.Context, v any) (any, error) {
	out, err := l.strict.Parse(ctx, v)
	if err == nil {
		return out, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, err
	}
	m := localeRecoveryRe.FindStringSubmatch(s)
	if m == nil {
		return nil, err
	}
	rec, rerr := l.strict.Parse(ctx, m[1])
	if rerr != nil {
		return nil, err
	}
	return rec, nil
}

func (l localeSchema) JSONSchema() (*js.Schema, error) { return l.strict.JSONSchema() }

// ---- geo ----

// GeoURISchema accepts geo:<lat>,<lng>. Out-of-range coordinates are reported
// separately at the sub-paths lat and lng.
func GeoURISchema() *dsl.StringSchema {
	return dsl.String().Regex(geoURIRe, "Invalid Geo URI").Format("geo-uri").Refine(geoRange)
}

func geoRange(s string) lensmeta.Issues {
	lat, lng, ok := splitGeo(s)
	if !ok {
		return nil
	}
	var iss lensmeta.Issues
	if lat < -90 || lat > 90 {
		iss = append(iss, lensmeta.IssueAt(lensmeta.PathOf("lat"), lensmeta.CodeInvalidFormat,
			"Latitude must be between -90 and 90", map[string]any{"lat": lat}))
	}
	if lng < -180 || lng > 180 {
		iss = append(iss, lensmeta.IssueAt(lensmeta.PathOf("lng"), lensmeta.CodeInvalidFormat,
			"Longitude must be between -180 and 180", map[string]any{"lng": lng}))
	}
	return iss
}

func splitGeo(s string) (lat, lng float64, ok bool) {
	m := geoURIRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(m[1], 64)
	lng, err2 := strconv.ParseFloat(m[2], 64)
	return lat, lng, err1 == nil && err2 == nil
}

// Coordinates returns the latitude and longitude of a validated GeoURI.
func (g GeoURI) Coordinates() (lat, lng float64) {
	lat, lng, _ = splitGeo(string(g))
	return lat, lng
}

// FormatGeoURI renders coordinates as a geo URI. The result still has to be
// validated with ParseGeoURI.
func FormatGeoURI(lat, lng float64) string {
	return fmt.Sprintf("geo:%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64))
}

// ---- ParseX entry points ----

func parseAs[B ~string](n dsl.Node, raw any) lensmeta.Result[B] {
	res := lensmeta.Validate(context.Background(), n, raw)
	if !res.Success() {
		return lensmeta.Result[B]{Issues: res.Issues}
	}
	return lensmeta.Result[B]{Value: B(res.Value.(string))}
}

func ParseNonEmptyString(raw any) lensmeta.Result[NonEmptyString] {
	return parseAs[NonEmptyString](NonEmptyStringSchema(), raw)
}

func ParseMarkdown(raw any) lensmeta.Result[Markdown] {
	return parseAs[Markdown](MarkdownSchema(), raw)
}

func ParseURI(raw any) lensmeta.Result[URI] { return parseAs[URI](URISchema(), raw) }

func ParseDateTime(raw any) lensmeta.Result[DateTime] {
	return parseAs[DateTime](DateTimeSchema(), raw)
}

func ParseLocale(raw any) lensmeta.Result[Locale] { return parseAs[Locale](LocaleSchema(), raw) }

func ParseEvmAddress(raw any) lensmeta.Result[EvmAddress] {
	return parseAs[EvmAddress](EvmAddressSchema(), raw)
}

func ParseGeoURI(raw any) lensmeta.Result[GeoURI] { return parseAs[GeoURI](GeoURISchema(), raw) }

func ParseSignature(raw any) lensmeta.Result[Signature] {
	return parseAs[Signature](SignatureSchema(), raw)
}

func ParseTag(raw any) lensmeta.Result[Tag] {
	res := parseAs[Tag](TagSchema(), raw)
	res.Value = Tag(strings.ToLower(string(res.Value)))
	return res
}

func ParseTokenID(raw any) lensmeta.Result[TokenID] {
	return parseAs[TokenID](TokenIDSchema(), raw)
}

func ParseChainID(raw any) lensmeta.Result[ChainID] {
	res := lensmeta.Validate(context.Background(), ChainIDSchema(), raw)
	if !res.Success() {
		return lensmeta.Result[ChainID]{Issues: res.Issues}
	}
	n, err := res.Value.(json.Number).Int64()
	if err != nil {
		return lensmeta.Result[ChainID]{Issues: lensmeta.ToIssues(err)}
	}
	return lensmeta.Result[ChainID]{Value: ChainID(n)}
}
