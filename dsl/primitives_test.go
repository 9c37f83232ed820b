package dsl_test

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reoring/lensmeta"
	g "github.com/reoring/lensmeta/dsl"
)

func messages(iss lensmeta.Issues) []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Message
	}
	return out
}

func TestString_ChecksAccumulate(t *testing.T) {
	ctx := context.Background()
	s := g.String().Min(5).Regex(regexp.MustCompile(`^[a-z]+$`))

	_, err := s.Parse(ctx, "AB")
	iss := mustIssues(t, err)
	want := []string{"String must contain at least 5 character(s)", "Invalid"}
	if got := messages(iss); !reflect.DeepEqual(got, want) {
		t.Fatalf("messages = %q", got)
	}

	_, err = s.Parse(lensmeta.WithFailFast(ctx, true), "AB")
	if iss := mustIssues(t, err); len(iss) != 1 {
		t.Fatalf("fail-fast should stop after the first check: %v", iss)
	}

	_, err = g.String().Length(3).Parse(ctx, "ab")
	if iss := mustIssues(t, err); iss[0].Message != "String must contain exactly 3 character(s)" {
		t.Fatalf("unexpected message: %q", iss[0].Message)
	}

	_, err = g.String().Parse(ctx, 1)
	if iss := mustIssues(t, err); iss[0].Message != "Expected string, received number" {
		t.Fatalf("unexpected message: %q", iss[0].Message)
	}
}

func TestString_Trim(t *testing.T) {
	ctx := context.Background()
	s := g.String().Trim().Min(1)

	out, err := s.Parse(ctx, " \u200Bhi\t\n")
	if err != nil || out != "hi" {
		t.Fatalf("got %q %v", out, err)
	}
	if _, err := s.Parse(ctx, "\u200B \uFEFF"); err == nil {
		t.Fatal("blank input should be too short after trimming")
	}
	if got := g.TrimInvisible("\x00 ok \u200D"); got != "ok" {
		t.Fatalf("TrimInvisible = %q", got)
	}
}

func TestString_Formats(t *testing.T) {
	ctx := context.Background()
	url := g.String().URL(6)
	for _, ok := range []string{"ipfs://QmHash", "https://example.com", "ar://tx", "lens:0x01a4"} {
		if _, err := url.Parse(ctx, ok); err != nil {
			t.Errorf("%q: %v", ok, err)
		}
	}
	for _, bad := range []string{"nope", "a:b", "example.com/path", "https://", "http:///path"} {
		_, err := url.Parse(ctx, bad)
		if iss := mustIssues(t, err); iss[0].Message != "Invalid url" {
			t.Errorf("%q: unexpected issues %v", bad, iss)
		}
	}

	dt := g.String().DateTime()
	if _, err := dt.Parse(ctx, "2024-05-01T18:00:00+02:00"); err != nil {
		t.Fatal(err)
	}
	_, err := dt.Parse(ctx, "2024-05-01")
	if iss := mustIssues(t, err); iss[0].Message != "Invalid datetime" {
		t.Fatalf("unexpected issues: %v", iss)
	}

	even := g.String().Check(func(s string) bool { return len(s)%2 == 0 }, "Must have an even length")
	_, err = even.Parse(ctx, "abc")
	if iss := mustIssues(t, err); iss[0].Code != lensmeta.CodeInvalidFormat || iss[0].Message != "Must have an even length" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestString_RefineReportsSubPaths(t *testing.T) {
	s := g.String().Refine(func(v string) lensmeta.Issues {
		if strings.HasPrefix(v, "geo:") {
			return nil
		}
		return g.Issues(lensmeta.IssueAt(lensmeta.PathOf("scheme"), lensmeta.CodeInvalidFormat, "Expected geo:", nil))
	})
	_, err := g.Object().Field("position", s).MustBuild().Parse(context.Background(), map[string]any{"position": "x"})
	if iss := mustIssues(t, err); iss[0].Path.String() != "position.scheme" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestNumber(t *testing.T) {
	ctx := context.Background()

	out, err := g.Number().Int().Positive().Parse(ctx, 3)
	if err != nil || out != json.Number("3") {
		t.Fatalf("got %v %v", out, err)
	}

	cases := []struct {
		schema *g.NumberSchema
		in     any
		want   []string
	}{
		{g.Number().Int(), json.Number("1.5"), []string{"Expected integer, received float"}},
		{g.Number().Positive(), json.Number("0"), []string{"Number must be greater than 0"}},
		{g.Number().Int().Positive(), -1.5, []string{"Expected integer, received float", "Number must be greater than 0"}},
		{g.Number().Min(1).Max(3), 5, []string{"Number must be less than or equal to 3"}},
		{g.Number().Min(1.5), 1, []string{"Number must be greater than or equal to 1.5"}},
		{g.Number(), "1", []string{"Expected number, received string"}},
	}
	for _, c := range cases {
		_, err := c.schema.Parse(ctx, c.in)
		if got := messages(mustIssues(t, err)); !reflect.DeepEqual(got, c.want) {
			t.Errorf("%v: messages = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNumber_IntCanonicalForm(t *testing.T) {
	ctx := context.Background()
	cases := map[any]json.Number{
		json.Number("137.0"): "137",
		json.Number("1e3"):   "1000",
		json.Number("-2.00"): "-2",
		json.Number("42"):    "42",
		float64(7):           "7",
	}
	for in, want := range cases {
		out, err := g.Number().Int().Parse(ctx, in)
		if err != nil || out != want {
			t.Errorf("%v: got %v %v, want %s", in, out, err, want)
		}
	}

	// without Int the spelling is kept
	if out, _ := g.Number().Parse(ctx, json.Number("137.0")); out != json.Number("137.0") {
		t.Fatalf("plain number rewritten: %v", out)
	}

	_, err := g.Number().Int().Parse(ctx, json.Number("1e19"))
	iss := mustIssues(t, err)
	if len(iss) != 1 || iss[0].Code != lensmeta.CodeTooLong || iss[0].Message != "Number must be less than or equal to 9223372036854775807" {
		t.Fatalf("unexpected issues: %v", iss)
	}
	_, err = g.Number().Int().Parse(ctx, json.Number("-1e19"))
	if iss := mustIssues(t, err); iss[0].Code != lensmeta.CodeTooShort {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestBind_IntegralSpellingsProject(t *testing.T) {
	type chain struct {
		ChainID int64 `json:"chainId"`
	}
	s := g.Bind[chain](g.Object().Field("chainId", g.Number().Int().Positive()).MustBuild())
	for _, in := range []json.Number{"137.0", "1.37e2"} {
		v, err := s.Parse(context.Background(), map[string]any{"chainId": in})
		if err != nil || v.ChainID != 137 {
			t.Fatalf("%s: got %+v %v", in, v, err)
		}
	}
}

func TestBoolAndAny(t *testing.T) {
	ctx := context.Background()
	_, err := g.Bool().Parse(ctx, "true")
	if iss := mustIssues(t, err); iss[0].Message != "Expected boolean, received string" {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if out, err := g.Any().Parse(ctx, nil); err != nil || out != nil {
		t.Fatalf("Any rejected null: %v", err)
	}
}

func TestLiteral(t *testing.T) {
	ctx := context.Background()
	s := g.Object().Field("version", g.Literal("1.0.0")).MustBuild()

	for _, in := range []map[string]any{{}, {"version": "2.0.0"}, {"version": 1}} {
		_, err := s.Parse(ctx, in)
		iss := mustIssues(t, err)
		if len(iss) != 1 || iss[0].Code != lensmeta.CodeInvalidLiteral || iss[0].Message != `Invalid literal value, expected "1.0.0"` {
			t.Fatalf("%v: unexpected issues %v", in, iss)
		}
	}

	if out, err := g.Literal(3).Parse(ctx, json.Number("3")); err != nil || out != 3 {
		t.Fatalf("numeric literal: %v %v", out, err)
	}
	if _, err := g.Literal(true).Parse(ctx, "true"); err == nil {
		t.Fatal("bool literal accepted a string")
	}
}

func TestEnum(t *testing.T) {
	ctx := context.Background()
	e := g.Enum("a", "b")

	_, err := e.Parse(ctx, "x")
	iss := mustIssues(t, err)
	if iss[0].Code != lensmeta.CodeInvalidEnum || iss[0].Message != "Invalid enum value. Expected 'a' | 'b', received 'x'" {
		t.Fatalf("unexpected issues: %v", iss)
	}

	_, err = e.Parse(ctx, 1)
	iss = mustIssues(t, err)
	if iss[0].Code != lensmeta.CodeInvalidType || iss[0].Message != "Expected 'a' | 'b', received number" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestWrappers(t *testing.T) {
	ctx := context.Background()

	upper := g.Transform(g.String(), func(_ context.Context, v any) (any, error) {
		return strings.ToUpper(v.(string)), nil
	})
	if out, err := upper.Parse(ctx, "gm"); err != nil || out != "GM" {
		t.Fatalf("transform: %v %v", out, err)
	}

	lower := g.Preprocess(func(v any) any {
		if s, ok := v.(string); ok {
			return strings.ToLower(s)
		}
		return v
	}, g.Enum("image/png"))
	if _, err := lower.Parse(ctx, "IMAGE/PNG"); err != nil {
		t.Fatalf("preprocess: %v", err)
	}

	positive := g.Refine(g.Number(), "not-zero", func(_ context.Context, v any) error {
		if v.(json.Number) == "0" {
			return errors.New("must not be zero")
		}
		return nil
	})
	_, err := positive.Parse(ctx, 0)
	iss := mustIssues(t, err)
	if iss[0].Code != lensmeta.CodeCrossField || iss[0].Params["rule"] != "not-zero" {
		t.Fatalf("unexpected issues: %+v", iss)
	}

	if out, err := g.Nullable(g.String()).Parse(ctx, nil); err != nil || out != nil {
		t.Fatalf("nullable: %v %v", out, err)
	}

	doc, err := g.Describe(g.String(), "Display name").JSONSchema()
	if err != nil || doc.Description != "Display name" || doc.Type != "string" {
		t.Fatalf("describe: %+v %v", doc, err)
	}
}
