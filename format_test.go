package lensmeta_test

import (
	"testing"

	"github.com/reoring/lensmeta"
)

func TestFormatIssues(t *testing.T) {
	iss := lensmeta.Issues{
		lensmeta.IssueAt(lensmeta.PathOf("lens", "content"), lensmeta.CodeTooShort, "String must contain at least 1 character(s)", nil),
		{
			Path:    lensmeta.PathOf("lens", "location"),
			Code:    lensmeta.CodeInvalidUnion,
			Message: "Invalid input",
			Groups: []lensmeta.Issues{
				{lensmeta.IssueAt(lensmeta.PathOf("lens", "location"), lensmeta.CodeInvalidFormat, "Invalid url", nil)},
				{
					lensmeta.IssueAt(lensmeta.PathOf("lens", "location", "lat"), lensmeta.CodeRequired, "Required", nil),
					lensmeta.IssueAt(lensmeta.PathOf("lens", "location", "lng"), lensmeta.CodeRequired, "Required", nil),
				},
			},
		},
		lensmeta.IssueAt(lensmeta.PathOf("lens", "attachments", 0, "type"), lensmeta.CodeInvalidEnum, "Invalid enum value", nil),
	}

	want := "fix the following issues" +
		"\n· \"lens.content\": String must contain at least 1 character(s)" +
		"\n· \"lens.location\": expected to match one of the following groups:" +
		"\n\t\t· \"lens.location\": Invalid url" +
		"\n\tOR:" +
		"\n\t\t· \"lens.location.lat\": Required" +
		"\n\t\t· \"lens.location.lng\": Required" +
		"\n· \"lens.attachments[0].type\": Invalid enum value"

	if got := lensmeta.FormatIssues(iss); got != want {
		t.Fatalf("FormatIssues mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatIssues_UnionWithoutGroups(t *testing.T) {
	iss := lensmeta.Issues{{Code: lensmeta.CodeInvalidUnion, Message: "Invalid input"}}
	want := "fix the following issues\n· \"\": Invalid input"
	if got := lensmeta.FormatIssues(iss); got != want {
		t.Fatalf("got %q", got)
	}
	if got := lensmeta.FormatIssues(nil); got != "fix the following issues" {
		t.Fatalf("got %q", got)
	}
}
