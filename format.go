package lensmeta

import (
	"strings"
)

const formatHeader = "fix the following issues"

// FormatIssues renders issues as a deterministic bullet list. Issues keep the
// order in which they were collected; alternatives of a failed union are
// rendered as indented groups separated by OR.
//
//	fix the following issues
//	· "lens.content": String must contain at least 1 character(s)
//	· "lens.location": expected to match one of the following groups:
//			· "lens.location": Invalid url
//		OR:
//			· "lens.location": Expected string, received number
func FormatIssues(iss Issues) string {
	b := &strings.Builder{}
	b.WriteString(formatHeader)
	for _, it := range iss {
		writeIssue(b, it, 0)
	}
	return b.String()
}

func writeIssue(b *strings.Builder, it Issue, level int) {
	indent := strings.Repeat("\t", level)
	b.WriteByte('\n')
	b.WriteString(indent)
	b.WriteString(`· "`)
	b.WriteString(it.Path.String())
	b.WriteString(`": `)
	if it.Code != CodeInvalidUnion || len(it.Groups) == 0 {
		b.WriteString(it.Message)
		return
	}
	b.WriteString("expected to match one of the following groups:")
	for g, group := range it.Groups {
		if g > 0 {
			b.WriteByte('\n')
			b.WriteString(indent)
			b.WriteString("\tOR:")
		}
		for _, sub := range group {
			writeIssue(b, sub, level+2)
		}
	}
}
