package main

import (
	"testing"

	"github.com/reoring/lensmeta/metadata"
	"github.com/reoring/lensmeta/source"
)

func TestLookupSchema(t *testing.T) {
	cases := map[string]metadata.SchemaID{
		"text-only":                  metadata.TextOnlySchema,
		"3d":                         metadata.ThreeDSchema,
		"profile":                    metadata.ProfileSchema,
		"app":                        metadata.AppSchema,
		string(metadata.EventSchema): metadata.EventSchema,
	}
	for in, want := range cases {
		got, err := lookupSchema(in)
		if err != nil || got != want {
			t.Fatalf("lookupSchema(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := lookupSchema("posts"); err == nil {
		t.Fatal("expected unknown schema error")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		data string
		tree any
		want source.Kind
	}{
		{`{"$schema":"x"}`, nil, source.KindCurrent},
		{`{"version":"1.0.0"}`, nil, source.KindLegacy},
		{"version: 2.0.0\n", map[string]any{"version": "2.0.0"}, source.KindLegacy},
		{"$schema: x\n", map[string]any{"$schema": "x"}, source.KindCurrent},
		{"- a\n", []any{"a"}, source.KindUnknown},
	}
	for _, c := range cases {
		if got := kindOf([]byte(c.data), c.tree); got != c.want {
			t.Fatalf("kindOf(%q) = %s, want %s", c.data, got, c.want)
		}
	}
}
