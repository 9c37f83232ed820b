package lensmeta

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p Path, code, msg string, params map[string]any) Issue {
	return Issue{Path: p, Code: code, Message: msg, Params: params}
}

// CrossField reports a refinement failure at the path built from elems.
func CrossField(msg string, elems ...any) Issue {
	return Issue{Path: PathOf(elems...), Code: CodeCrossField, Message: msg}
}
