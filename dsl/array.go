package dsl

import (
	"context"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/i18n"
	js "github.com/reoring/lensmeta/jsonschema"
)

// ArraySchema validates arrays. Length bounds are checked first, at the
// array's own path, then every element is validated at its index.
type ArraySchema struct {
	elem      Node
	minLen    int
	maxLen    int
	minMsg    string
	maxMsg    string
	uniqueKey func(any) (string, bool)
}

// Array returns an array schema with the given element schema.
func Array(elem Node) *ArraySchema {
	return &ArraySchema{elem: elem, minLen: -1, maxLen: -1}
}

// Min sets the minimum length, optionally with a custom message.
func (a *ArraySchema) Min(n int, msg ...string) *ArraySchema {
	a.minLen, a.minMsg = n, firstOr(msg)
	return a
}

// Max sets the maximum length, optionally with a custom message.
func (a *ArraySchema) Max(n int, msg ...string) *ArraySchema {
	a.maxLen, a.maxMsg = n, firstOr(msg)
	return a
}

// NonEmpty is Min(1).
func (a *ArraySchema) NonEmpty(msg ...string) *ArraySchema { return a.Min(1, msg...) }

// Unique reports duplicate_value for every element whose key was already seen.
// Elements for which key returns false are not compared.
func (a *ArraySchema) Unique(key func(any) (string, bool)) *ArraySchema {
	a.uniqueKey = key
	return a
}

func (a *ArraySchema) Parse(ctx context.Context, v any) (any, error) {
	src, ok := lensmeta.AsSlice(v)
	if !ok {
		return nil, lensmeta.Issues{typeIssue("array", v)}
	}
	var iss lensmeta.Issues
	if a.minLen >= 0 && len(src) < a.minLen {
		iss = append(iss, withMessage(lengthIssue(lensmeta.CodeTooShort, "array", a.minLen, false), a.minMsg))
	}
	if a.maxLen >= 0 && len(src) > a.maxLen {
		iss = append(iss, withMessage(lengthIssue(lensmeta.CodeTooLong, "array", a.maxLen, false), a.maxMsg))
	}
	if len(iss) > 0 && lensmeta.IsFailFast(ctx) {
		return nil, iss
	}
	out := make([]any, 0, len(src))
	elemFailed := false
	for i := range src {
		ev, err := a.elem.Parse(ctx, src[i])
		if err != nil {
			elemFailed = true
			iss = append(iss, lensmeta.ToIssues(err).WithPrefix(lensmeta.PathOf(i))...)
			if lensmeta.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out = append(out, ev)
	}
	if !elemFailed && a.uniqueKey != nil {
		iss = append(iss, a.duplicates(out)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a *ArraySchema) duplicates(vals []any) lensmeta.Issues {
	var iss lensmeta.Issues
	seen := make(map[string]int, len(vals))
	for i, v := range vals {
		k, ok := a.uniqueKey(v)
		if !ok {
			continue
		}
		if first, dup := seen[k]; dup {
			iss = append(iss, lensmeta.Issue{
				Path:    lensmeta.PathOf(i),
				Code:    lensmeta.CodeDuplicateValue,
				Message: i18n.T(lensmeta.CodeDuplicateValue, nil),
				Params:  map[string]any{"first": first},
			})
			continue
		}
		seen[k] = i
	}
	return iss
}

func (a *ArraySchema) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	s := &js.Schema{Type: "array", Items: es, UniqueItems: a.uniqueKey != nil}
	if a.minLen >= 0 {
		s.MinItems = js.Int(a.minLen)
	}
	if a.maxLen >= 0 {
		s.MaxItems = js.Int(a.maxLen)
	}
	return s, nil
}

// StringKey is a Unique key function comparing string elements.
func StringKey(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
