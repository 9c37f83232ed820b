// Package lensmeta validates, resolves and canonicalizes versioned social
// metadata documents.
//
// The root package holds the public error and result model:
//
//   - Schema[T] nodes parse untyped trees (map[string]any, []any, string,
//     bool, json.Number, nil) into typed values
//   - Issues accumulate every violation with a Path, a code and a message
//   - FormatIssues renders issues as a stable, human-readable bullet list
//
// Schema construction lives in dsl/, brand primitives in primitives/, the
// current metadata standard in metadata/ and the historical shapes in legacy/.
// Raw documents are decoded by source/ and the command-line tool lives under
// cmd/lensmeta.
//
// Typical usage:
//
//	raw, err := source.DecodeJSON(data, source.DefaultOptions())
//	md, err := metadata.Parse(ctx, raw.Value)
//	if iss, ok := lensmeta.AsIssues(err); ok {
//		fmt.Println(lensmeta.FormatIssues(iss))
//	}
package lensmeta
