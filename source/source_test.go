package source_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/source"
)

func TestDecodeJSON_Tree(t *testing.T) {
	doc, err := source.DecodeJSON([]byte(`{"a":[1,2.5,"x",true,null],"b":{"c":{}}}`), source.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := doc.Value.(map[string]any)
	arr := m["a"].([]any)
	if arr[0] != json.Number("1") || arr[1] != json.Number("2.5") || arr[2] != "x" || arr[3] != true || arr[4] != nil {
		t.Fatalf("unexpected array: %#v", arr)
	}
	if _, ok := m["b"].(map[string]any)["c"].(map[string]any); !ok {
		t.Fatalf("nested object lost: %#v", m["b"])
	}
	if len(doc.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", doc.Warnings)
	}
}

func TestDecodeJSON_DuplicateKeys(t *testing.T) {
	in := []byte(`{"lens":{"id":"1","id":"2"}}`)

	_, err := source.DecodeJSON(in, source.Options{OnDuplicateKey: lensmeta.Error})
	iss, ok := lensmeta.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Code != lensmeta.CodeDuplicateValue || iss[0].Path.String() != "lens.id" || iss[0].Message != "Duplicate key 'id'" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}

	doc, err := source.DecodeJSON(in, source.Options{OnDuplicateKey: lensmeta.Warn})
	if err != nil {
		t.Fatalf("warn policy failed: %v", err)
	}
	if len(doc.Warnings) != 1 || doc.Value.(map[string]any)["lens"].(map[string]any)["id"] != "2" {
		t.Fatalf("expected last value and a warning, got %+v", doc)
	}

	doc, err = source.DecodeJSON(in, source.Options{OnDuplicateKey: lensmeta.Ignore})
	if err != nil || len(doc.Warnings) != 0 {
		t.Fatalf("ignore policy: %+v %v", doc, err)
	}
}

func TestDecodeJSON_Limits(t *testing.T) {
	_, err := source.DecodeJSON([]byte(`{"a":{"b":{}}}`), source.Options{MaxDepth: 2})
	iss, _ := lensmeta.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != lensmeta.CodeTruncated || iss[0].Path.String() != "a.b" {
		t.Fatalf("unexpected depth issues: %v", err)
	}

	_, err = source.DecodeJSONReader(strings.NewReader(`{"a":1}`), source.Options{MaxBytes: 4})
	iss, _ = lensmeta.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != lensmeta.CodeTruncated {
		t.Fatalf("unexpected size issues: %v", err)
	}

	if _, err := source.DecodeJSONReader(strings.NewReader(`{"a":1}`), source.Options{MaxBytes: 7}); err != nil {
		t.Fatalf("document at the limit rejected: %v", err)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	for _, in := range []string{`{"a":`, `{} {}`, ``} {
		_, err := source.DecodeJSON([]byte(in), source.DefaultOptions())
		iss, ok := lensmeta.AsIssues(err)
		if !ok || len(iss) != 1 || iss[0].Code != lensmeta.CodeParseError || iss[0].Cause == nil {
			t.Fatalf("%q: expected parse_error, got %v", in, err)
		}
	}
}

func TestDecodeYAML(t *testing.T) {
	in := []byte("name: x\ncount: 3\nratio: 1.5\nok: true\nnothing: null\nwhen: 2024-01-01T00:00:00Z\ntags:\n  - a\n  - b\n")
	doc, err := source.DecodeYAML(in, source.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := doc.Value.(map[string]any)
	if m["name"] != "x" || m["count"] != json.Number("3") || m["ratio"] != json.Number("1.5") || m["ok"] != true {
		t.Fatalf("unexpected scalars: %#v", m)
	}
	if v, ok := m["nothing"]; !ok || v != nil {
		t.Fatalf("null lost: %#v", m)
	}
	if m["when"] != "2024-01-01T00:00:00Z" {
		t.Fatalf("timestamp should stay a string: %#v", m["when"])
	}
	if tags := m["tags"].([]any); len(tags) != 2 || tags[1] != "b" {
		t.Fatalf("unexpected tags: %#v", m["tags"])
	}
}

func TestDecodeYAML_DuplicateKeyCarriesLine(t *testing.T) {
	doc, err := source.DecodeYAML([]byte("a: 1\nb: 2\na: 3\n"), source.Options{OnDuplicateKey: lensmeta.Warn})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Warnings) != 1 || doc.Warnings[0].Params["line"] != 3 {
		t.Fatalf("unexpected warnings: %+v", doc.Warnings)
	}
	if doc.Value.(map[string]any)["a"] != json.Number("3") {
		t.Fatalf("last value should win: %#v", doc.Value)
	}
}

func TestDecodeYAML_RejectsNonFinite(t *testing.T) {
	_, err := source.DecodeYAML([]byte("x: .inf\n"), source.DefaultOptions())
	iss, _ := lensmeta.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != lensmeta.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestSniff(t *testing.T) {
	cur := []byte(`{"$schema":"https://json-schemas.lens.dev/posts/text-only/3.0.0.json","lens":{}}`)
	if v, ok := source.Sniff(cur, "$schema"); !ok || !strings.HasSuffix(v, "3.0.0.json") {
		t.Fatalf("Sniff = %q, %v", v, ok)
	}
	cases := []struct {
		in   string
		want source.Kind
	}{
		{string(cur), source.KindCurrent},
		{`{"version":"2.0.0"}`, source.KindLegacy},
		{`{"version":2}`, source.KindUnknown},
		{`name: x`, source.KindUnknown},
		{`{"a":`, source.KindUnknown},
	}
	for _, c := range cases {
		if got := source.SniffKind([]byte(c.in)); got != c.want {
			t.Fatalf("SniffKind(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestDecode_PicksFormat(t *testing.T) {
	for _, in := range []string{`  {"a":"b"}`, "a: b\n"} {
		doc, err := source.Decode([]byte(in), source.DefaultOptions())
		if err != nil || doc.Value.(map[string]any)["a"] != "b" {
			t.Fatalf("%q: %+v %v", in, doc, err)
		}
	}
}
