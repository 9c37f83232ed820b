package lensmeta_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/reoring/lensmeta"
)

func sampleIssues() lensmeta.Issues {
	return lensmeta.Issues{
		lensmeta.IssueAt(lensmeta.PathOf("a"), lensmeta.CodeRequired, "Required", nil),
		lensmeta.IssueAt(lensmeta.PathOf("b", 0), lensmeta.CodeInvalidType, "Expected string, received number", nil),
		lensmeta.IssueAt(nil, lensmeta.CodeCrossField, "Invalid input", nil),
		lensmeta.IssueAt(lensmeta.PathOf("c"), lensmeta.CodeTooShort, "Too short", map[string]any{"min": 1}),
	}
}

func TestIssues_Error(t *testing.T) {
	iss := sampleIssues()
	want := "required at /a; invalid_type at /b/0; cross_field_violation at /; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if got := iss[:1].Error(); got != "required at /a" {
		t.Fatalf("Error() = %q", got)
	}
	if got := (lensmeta.Issues{}).Error(); got != "" {
		t.Fatalf("empty Error() = %q", got)
	}
}

func TestIssues_Codes(t *testing.T) {
	want := []string{"required", "invalid_type", "cross_field_violation", "too_short"}
	if got := sampleIssues().Codes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Codes() = %v", got)
	}
	if got := lensmeta.AppendIssues(nil); got == nil || len(got) != 0 {
		t.Fatalf("AppendIssues(nil) = %#v", got)
	}
}

func TestIssues_WithPrefixRebasesGroups(t *testing.T) {
	union := lensmeta.Issue{
		Code: lensmeta.CodeInvalidUnion,
		Groups: []lensmeta.Issues{
			{lensmeta.IssueAt(lensmeta.PathOf("x"), lensmeta.CodeRequired, "Required", nil)},
			{lensmeta.IssueAt(nil, lensmeta.CodeInvalidType, "Expected number, received string", nil)},
		},
	}
	orig := lensmeta.Issues{union}
	got := orig.WithPrefix(lensmeta.PathOf("lens", 1))

	if got[0].Path.String() != "lens[1]" {
		t.Fatalf("path = %s", got[0].Path)
	}
	if got[0].Groups[0][0].Path.String() != "lens[1].x" || got[0].Groups[1][0].Path.String() != "lens[1]" {
		t.Fatalf("groups not rebased: %v", got[0].Groups)
	}
	if orig[0].Groups[0][0].Path.String() != "x" {
		t.Fatal("WithPrefix mutated its receiver")
	}
}

func TestAsIssuesAndToIssues(t *testing.T) {
	iss := sampleIssues()

	wrapped := fmt.Errorf("decode: %w", lensmeta.NewValidationError(iss))
	got, ok := lensmeta.AsIssues(wrapped)
	if !ok || len(got) != len(iss) {
		t.Fatalf("AsIssues through ValidationError: %v %v", got, ok)
	}
	var ve *lensmeta.ValidationError
	if !errors.As(wrapped, &ve) || ve.Error() != lensmeta.FormatIssues(iss) {
		t.Fatal("ValidationError should render the formatted list")
	}

	if _, ok := lensmeta.AsIssues(nil); ok {
		t.Fatal("AsIssues(nil) reported issues")
	}
	if lensmeta.ToIssues(nil) != nil {
		t.Fatal("ToIssues(nil) should be nil")
	}

	plain := errors.New("boom")
	conv := lensmeta.ToIssues(plain)
	if len(conv) != 1 || conv[0].Code != lensmeta.CodeParseError || conv[0].Message != "boom" || !errors.Is(conv[0].Cause, plain) {
		t.Fatalf("ToIssues(plain) = %+v", conv)
	}
}

func TestCrossField(t *testing.T) {
	it := lensmeta.CrossField("endsAt must be after startsAt", "lens", "endsAt")
	if it.Code != lensmeta.CodeCrossField || it.Path.Pointer() != "/lens/endsAt" {
		t.Fatalf("unexpected issue: %+v", it)
	}
}

func TestParseSeverity(t *testing.T) {
	cases := map[string]lensmeta.Severity{
		"ignore": lensmeta.Ignore,
		"warn":   lensmeta.Warn,
		"error":  lensmeta.Error,
		"":       lensmeta.Error,
		"loud":   lensmeta.Error,
	}
	for in, want := range cases {
		if got := lensmeta.ParseSeverity(in); got != want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", in, got, want)
		}
	}
	if lensmeta.UnknownPassthrough.String() != "passthrough" || lensmeta.UnknownStrict.String() != "strict" {
		t.Fatal("unexpected UnknownPolicy names")
	}
}
