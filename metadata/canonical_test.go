package metadata_test

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/metadata"
)

func TestCanonicalize_KeyOrderIndependent(t *testing.T) {
	a, err := metadata.Canonicalize(json.RawMessage(`{"b":{"y":1,"x":[true,null]},"a":"é"}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := metadata.Canonicalize(json.RawMessage(`{"a":"é","b":{"x":[true,null],"y":1}}`))
	if err != nil {
		t.Fatal(err)
	}
	if a != b || a != `{"a":"é","b":{"x":[true,null],"y":1}}` {
		t.Fatalf("unexpected canonical forms:\n%s\n%s", a, b)
	}
}

func TestCanonicalize_TypedAndUntypedAgree(t *testing.T) {
	m, err := metadata.Parse(context.Background(), textOnly(minimalLens()))
	if err != nil {
		t.Fatal(err)
	}
	typed, err := metadata.Canonicalize(m.LensDetails())
	if err != nil {
		t.Fatal(err)
	}
	untyped, err := metadata.Canonicalize(minimalLens())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"content":"GM!","id":"42","locale":"en","mainContentFocus":"TEXT_ONLY"}`
	if typed != want || untyped != want {
		t.Fatalf("got %s and %s, want %s", typed, untyped, want)
	}
}

func TestSign_ReturnsSignedCopy(t *testing.T) {
	ctx := context.Background()
	m, err := metadata.TextOnlyMetadataSchema.Parse(ctx, textOnly(minimalLens()))
	if err != nil {
		t.Fatal(err)
	}
	var seen string
	signer := func(_ context.Context, msg string) (string, error) {
		seen = msg
		return "0xsigned", nil
	}
	signed, err := metadata.Sign(ctx, m, signer)
	if err != nil {
		t.Fatal(err)
	}
	if signed.Signature != "0xsigned" || m.Signature != "" {
		t.Fatalf("signature %q, original %q", signed.Signature, m.Signature)
	}
	want, _ := metadata.Canonicalize(m.Lens)
	if seen != want {
		t.Fatalf("signer saw %s, want %s", seen, want)
	}
	if sig, ok := signed.Signed(); !ok || sig != "0xsigned" {
		t.Fatalf("Signed() = %q, %v", sig, ok)
	}
}

func TestSign_Failures(t *testing.T) {
	ctx := context.Background()
	m, err := metadata.Parse(ctx, textOnly(minimalLens()))
	if err != nil {
		t.Fatal(err)
	}
	_, err = metadata.SignAny(ctx, m, func(context.Context, string) (string, error) { return "", nil })
	iss, ok := lensmeta.AsIssues(err)
	if !ok || iss[0].Path.String() != "signature" {
		t.Fatalf("expected an issue at signature, got %v", err)
	}

	boom := errors.New("hsm offline")
	_, err = metadata.SignAny(ctx, m, func(context.Context, string) (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped signer error, got %v", err)
	}
	if _, err := metadata.SignAny(ctx, m, nil); err == nil {
		t.Fatalf("expected error for nil signer")
	}
}

func TestSignedDocumentRoundTrips(t *testing.T) {
	ctx := context.Background()
	m, _ := metadata.Parse(ctx, textOnly(minimalLens()))
	signed, err := metadata.SignAny(ctx, m, func(context.Context, string) (string, error) { return "0xabc", nil })
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(signed)
	if err != nil {
		t.Fatal(err)
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatal(err)
	}
	again, err := metadata.Parse(ctx, tree)
	if err != nil {
		t.Fatalf("signed document does not validate: %v", err)
	}
	if sig, _ := again.Signed(); sig != "0xabc" {
		t.Fatalf("signature lost: %q", sig)
	}
}

func TestExportJSONSchema_ValidatesDocuments(t *testing.T) {
	s, err := metadata.ExportJSONSchema(metadata.TextOnlySchema)
	if err != nil {
		t.Fatal(err)
	}
	if s.ID != string(metadata.TextOnlySchema) {
		t.Fatalf("unexpected $id %s", s.ID)
	}
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	loader := gojsonschema.NewBytesLoader(raw)

	good, _ := json.Marshal(textOnly(minimalLens()))
	res, err := gojsonschema.Validate(loader, gojsonschema.NewBytesLoader(good))
	if err != nil {
		t.Fatalf("schema does not compile: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("valid document rejected: %v", res.Errors())
	}

	lens := minimalLens()
	delete(lens, "content")
	bad, _ := json.Marshal(textOnly(lens))
	res, err = gojsonschema.Validate(loader, gojsonschema.NewBytesLoader(bad))
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid() {
		t.Fatalf("document without content accepted")
	}

	if _, err := metadata.ExportJSONSchema("https://example.com/x.json"); err == nil {
		t.Fatalf("expected error for unknown schema")
	}
}

func TestExportJSONSchema_EveryRegisteredSchema(t *testing.T) {
	for _, id := range metadata.SchemaIDs() {
		s, err := metadata.ExportJSONSchema(id)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		raw, _ := json.Marshal(s)
		if _, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw)); err != nil {
			t.Fatalf("%s: schema does not compile: %v", id, err)
		}
	}
}
