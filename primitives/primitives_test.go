package primitives_test

import (
	"context"
	"testing"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/primitives"
)

func TestNonEmptyString_TrimsInvisible(t *testing.T) {
	res := primitives.ParseNonEmptyString("\u200b\t GM! \ufeff\x00")
	if !res.Success() || res.Value != "GM!" {
		t.Fatalf("unexpected result: %+v", res)
	}
	res = primitives.ParseNonEmptyString(" \u200b\u200d\n")
	if res.Success() || res.Issues[0].Code != lensmeta.CodeTooShort {
		t.Fatalf("expected too_short, got %+v", res)
	}
	if res.Issues[0].Message != "String must contain at least 1 character(s)" {
		t.Fatalf("unexpected message: %q", res.Issues[0].Message)
	}
}

func TestURI(t *testing.T) {
	ok := []string{"https://example.com/a.png", "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", "ar://abcdef", "lens://4f91c"}
	for _, s := range ok {
		if res := primitives.ParseURI(s); !res.Success() {
			t.Fatalf("%q rejected: %v", s, res.Issues)
		}
	}
	bad := []any{"ab:c", "not a url", "", 42}
	for _, s := range bad {
		res := primitives.ParseURI(s)
		if res.Success() {
			t.Fatalf("%v accepted", s)
		}
	}
	res := primitives.ParseURI("example.com")
	if res.Issues[0].Code != lensmeta.CodeInvalidFormat || res.Issues[0].Message != "Invalid url" {
		t.Fatalf("unexpected issue: %+v", res.Issues[0])
	}
}

func TestDateTime(t *testing.T) {
	if res := primitives.ParseDateTime("2024-03-01T10:00:00Z"); !res.Success() {
		t.Fatalf("rejected: %v", res.Issues)
	}
	if res := primitives.ParseDateTime("2024-03-01T10:00:00+02:00"); !res.Success() {
		t.Fatalf("rejected offset form: %v", res.Issues)
	}
	res := primitives.ParseDateTime("2024-03-01")
	if res.Success() || res.Issues[0].Code != lensmeta.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %+v", res)
	}
}

func TestLocale_StrictAndRecovery(t *testing.T) {
	cases := []struct {
		in   any
		want primitives.Locale
		ok   bool
	}{
		{"en", "en", true},
		{"en-GB", "en-GB", true},
		{"EN-gb", "EN-gb", true},
		{"en-USA", "en", true},
		{"it_IT", "it", true},
		{"english", "", false},
		{"e", "", false},
		{42, "", false},
	}
	for _, c := range cases {
		res := primitives.ParseLocale(c.in)
		if res.Success() != c.ok {
			t.Fatalf("%v: success=%v, want %v (%v)", c.in, res.Success(), c.ok, res.Issues)
		}
		if c.ok && res.Value != c.want {
			t.Fatalf("%v: got %q, want %q", c.in, res.Value, c.want)
		}
	}
	// the original strict error surfaces when recovery is impossible
	res := primitives.ParseLocale("english")
	if len(res.Issues) != 1 || res.Issues[0].Message != "Invalid locale" {
		t.Fatalf("unexpected issues: %v", res.Issues)
	}
}

func TestEvmAddress(t *testing.T) {
	if res := primitives.ParseEvmAddress("0x1234567890123456789012345678901234567890"); !res.Success() {
		t.Fatalf("rejected: %v", res.Issues)
	}
	res := primitives.ParseEvmAddress("0x1234")
	if res.Success() || res.Issues[0].Message != "String must contain exactly 42 character(s)" {
		t.Fatalf("unexpected: %+v", res.Issues)
	}
	res = primitives.ParseEvmAddress("0xZZ34567890123456789012345678901234567890")
	if res.Success() || len(res.Issues) != 1 || res.Issues[0].Code != lensmeta.CodeInvalidFormat {
		t.Fatalf("unexpected: %+v", res.Issues)
	}
}

func TestGeoURI_RangeIssuesAtSubPaths(t *testing.T) {
	res := primitives.ParseGeoURI("geo:41.40338,2.17403")
	if !res.Success() {
		t.Fatalf("rejected: %v", res.Issues)
	}
	lat, lng := res.Value.Coordinates()
	if lat != 41.40338 || lng != 2.17403 {
		t.Fatalf("coordinates: %v %v", lat, lng)
	}

	res = primitives.ParseGeoURI("geo:91,-181")
	if len(res.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", res.Issues)
	}
	if res.Issues[0].Path.String() != "lat" || res.Issues[1].Path.String() != "lng" {
		t.Fatalf("unexpected paths: %s, %s", res.Issues[0].Path, res.Issues[1].Path)
	}

	res = primitives.ParseGeoURI("geo:0,200")
	if len(res.Issues) != 1 || res.Issues[0].Path.String() != "lng" {
		t.Fatalf("unexpected issues: %v", res.Issues)
	}

	res = primitives.ParseGeoURI("41.4,2.1")
	if len(res.Issues) != 1 || res.Issues[0].Message != "Invalid Geo URI" {
		t.Fatalf("unexpected issues: %v", res.Issues)
	}

	if got := primitives.FormatGeoURI(-33.5, 151); got != "geo:-33.5,151" {
		t.Fatalf("FormatGeoURI: %s", got)
	}
}

func TestSignatureAndTokenID(t *testing.T) {
	if res := primitives.ParseSignature(""); res.Success() {
		t.Fatalf("empty signature accepted")
	}
	if res := primitives.ParseSignature("0xdeadbeef"); !res.Success() {
		t.Fatalf("rejected: %v", res.Issues)
	}
	if res := primitives.ParseTokenID("12"); !res.Success() {
		t.Fatalf("rejected: %v", res.Issues)
	}
	if res := primitives.ParseTokenID("0x0c"); res.Success() {
		t.Fatalf("hex token id accepted")
	}
}

func TestChainID(t *testing.T) {
	if res := primitives.ParseChainID(137); !res.Success() || res.Value != 137 {
		t.Fatalf("unexpected: %+v", res)
	}
	for _, in := range []any{0, -1, 1.5, "137"} {
		if res := primitives.ParseChainID(in); res.Success() {
			t.Fatalf("%v accepted", in)
		}
	}
}

func TestTags_LowercasedDedupedBounded(t *testing.T) {
	ctx := context.Background()
	out, err := primitives.TagsSchema().Parse(ctx, []any{"GM", "gm", "Lens", "  web3 "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := out.([]any)
	want := []string{"gm", "lens", "web3"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	many := make([]any, 21)
	for i := range many {
		many[i] = "t"
	}
	_, err = primitives.TagsSchema().Parse(ctx, many)
	iss, _ := lensmeta.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != lensmeta.CodeTooLong || len(iss[0].Path) != 0 {
		t.Fatalf("expected a single too_long at the array, got %v", iss)
	}

	if res := primitives.ParseTag("Music"); res.Value != "music" {
		t.Fatalf("ParseTag did not lowercase: %q", res.Value)
	}
}
