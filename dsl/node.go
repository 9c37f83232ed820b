package dsl

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/i18n"
)

// Node is an untyped schema node. Every builder in this package produces one;
// Parse accepts the trees produced by the source package (map[string]any,
// []any, string, bool, json.Number, nil) and returns a tree of the same kind.
type Node = lensmeta.Schema[any]

// missingReporter lets a node choose the issue reported when a required field
// holding it is absent. Literals report invalid_literal instead of required.
type missingReporter interface {
	missingIssue() lensmeta.Issue
}

// valueSet is implemented by nodes accepting a finite set of strings.
type valueSet interface {
	values() []string
}

// discriminable is implemented by nodes that know which string values they
// accept for one of their fields.
type discriminable interface {
	fieldValues(key string) ([]string, bool)
}

// wrapper is implemented by nodes that decorate another node.
type wrapper interface {
	unwrap() Node
}

// nodeValues returns the literal values a node accepts, looking through
// wrappers. Wrapped discriminable nodes are not considered.
func nodeValues(n Node) ([]string, bool) {
	for {
		if vs, ok := n.(valueSet); ok {
			return vs.values(), true
		}
		w, ok := n.(wrapper)
		if !ok {
			return nil, false
		}
		n = w.unwrap()
	}
}

// fieldValues returns the values n accepts at field key.
func fieldValues(n Node, key string) ([]string, bool) {
	for {
		if d, ok := n.(discriminable); ok {
			return d.fieldValues(key)
		}
		w, ok := n.(wrapper)
		if !ok {
			return nil, false
		}
		n = w.unwrap()
	}
}

func missingIssueOf(n Node) lensmeta.Issue {
	for {
		if m, ok := n.(missingReporter); ok {
			return m.missingIssue()
		}
		w, ok := n.(wrapper)
		if !ok {
			return newIssue(lensmeta.CodeRequired, nil, nil)
		}
		n = w.unwrap()
	}
}

func newIssue(code string, data map[string]string, params map[string]any) lensmeta.Issue {
	return lensmeta.Issue{Code: code, Message: i18n.T(code, data), Params: params}
}

// withMessage overrides the catalogue message when a custom one was given.
func withMessage(it lensmeta.Issue, custom string) lensmeta.Issue {
	if custom != "" {
		it.Message = custom
	}
	return it
}

func typeIssue(expected string, v any) lensmeta.Issue {
	received := lensmeta.TypeName(v)
	return newIssue(lensmeta.CodeInvalidType,
		map[string]string{"expected": expected, "received": received},
		map[string]any{"expected": expected, "received": received})
}

func firstOr(msgs []string) string {
	if len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// quoteOptions renders 'a' | 'b' | 'c'.
func quoteOptions(vals []string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = "'" + v + "'"
	}
	return strings.Join(parts, " | ")
}

// literalText renders a literal the way it appears in JSON.
func literalText(v any) string {
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return strconv.Quote(lensmeta.TypeName(v))
}

// issuesOf converts an error returned by user hooks into issues. Errors that
// are not Issues become a single cross-field violation at the root. An empty
// Issues value counts as success.
func issuesOf(err error, rule string) lensmeta.Issues {
	if err == nil {
		return nil
	}
	if iss, ok := lensmeta.AsIssues(err); ok {
		return iss
	}
	it := lensmeta.Issue{Code: lensmeta.CodeCrossField, Message: err.Error(), Cause: err}
	if rule != "" {
		it.Params = map[string]any{"rule": rule}
	}
	return lensmeta.Issues{it}
}

// deepCopy clones the maps and slices of an untyped tree so that recovered
// defaults are never shared between results.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return v
	}
}

func dedupe(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func contains(vals []string, s string) bool {
	for _, v := range vals {
		if v == s {
			return true
		}
	}
	return false
}
