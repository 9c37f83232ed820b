package dsl

import (
	"context"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/codec"
	js "github.com/reoring/lensmeta/jsonschema"
)

// ---- string ----

type stringCheck func(s string) (lensmeta.Issues, bool)

// StringSchema validates strings. Every configured check runs; their issues
// accumulate in declaration order.
type StringSchema struct {
	trim   bool
	checks []stringCheck
	doc    js.Schema
}

// String returns a string schema with no constraints.
func String() *StringSchema { return &StringSchema{doc: js.Schema{Type: "string"}} }

// Trim strips leading and trailing whitespace, control characters and
// zero-width characters before the checks run. The trimmed value is returned.
func (s *StringSchema) Trim() *StringSchema { s.trim = true; return s }

// Min requires at least n characters.
func (s *StringSchema) Min(n int, msg ...string) *StringSchema {
	s.doc.MinLength = js.Int(n)
	custom := firstOr(msg)
	s.checks = append(s.checks, func(v string) (lensmeta.Issues, bool) {
		if utf8.RuneCountInString(v) >= n {
			return nil, true
		}
		return lensmeta.Issues{withMessage(lengthIssue(lensmeta.CodeTooShort, "string", n, false), custom)}, false
	})
	return s
}

// Max allows at most n characters.
func (s *StringSchema) Max(n int, msg ...string) *StringSchema {
	s.doc.MaxLength = js.Int(n)
	custom := firstOr(msg)
	s.checks = append(s.checks, func(v string) (lensmeta.Issues, bool) {
		if utf8.RuneCountInString(v) <= n {
			return nil, true
		}
		return lensmeta.Issues{withMessage(lengthIssue(lensmeta.CodeTooLong, "string", n, false), custom)}, false
	})
	return s
}

// Length requires exactly n characters.
func (s *StringSchema) Length(n int, msg ...string) *StringSchema {
	s.doc.MinLength, s.doc.MaxLength = js.Int(n), js.Int(n)
	custom := firstOr(msg)
	s.checks = append(s.checks, func(v string) (lensmeta.Issues, bool) {
		switch c := utf8.RuneCountInString(v); {
		case c < n:
			return lensmeta.Issues{withMessage(lengthIssue(lensmeta.CodeTooShort, "string", n, true), custom)}, false
		case c > n:
			return lensmeta.Issues{withMessage(lengthIssue(lensmeta.CodeTooLong, "string", n, true), custom)}, false
		}
		return nil, true
	})
	return s
}

// Regex requires the value to match re.
func (s *StringSchema) Regex(re *regexp.Regexp, msg ...string) *StringSchema {
	s.doc.Pattern = re.String()
	custom := firstOr(msg)
	s.checks = append(s.checks, func(v string) (lensmeta.Issues, bool) {
		if re.MatchString(v) {
			return nil, true
		}
		it := newIssue(lensmeta.CodeInvalidFormat, nil, map[string]any{"pattern": re.String()})
		return lensmeta.Issues{withMessage(it, custom)}, false
	})
	return s
}

// URL requires an absolute URI with a scheme, a host or opaque part and at
// least minLen characters. Custom schemes such as ipfs: and ar: are accepted.
func (s *StringSchema) URL(minLen int, msg ...string) *StringSchema {
	s.doc.Format = "uri"
	return s.formatCheck("url", firstOr(msg), func(v string) bool {
		if utf8.RuneCountInString(v) < minLen {
			return false
		}
		u, err := url.Parse(v)
		if err != nil || u.Scheme == "" {
			return false
		}
		// ipfs://Qm... and lens:... carry a host or an opaque part
		return u.Host != "" || u.Opaque != ""
	})
}

// DateTime requires an ISO-8601 date-time with a timezone designator.
func (s *StringSchema) DateTime(msg ...string) *StringSchema {
	s.doc.Format = "date-time"
	return s.formatCheck("datetime", firstOr(msg), func(v string) bool {
		_, err := codec.ParseDateTime(v)
		return err == nil
	})
}

// Check adds a custom predicate reported as invalid_format with msg.
func (s *StringSchema) Check(fn func(string) bool, msg string) *StringSchema {
	return s.formatCheck("", msg, fn)
}

// Refine adds a check returning issues relative to the string itself; it
// may report sub-paths.
func (s *StringSchema) Refine(fn func(string) lensmeta.Issues) *StringSchema {
	s.checks = append(s.checks, func(v string) (lensmeta.Issues, bool) {
		iss := fn(v)
		return iss, len(iss) == 0
	})
	return s
}

// Format sets the JSON Schema format annotation only.
func (s *StringSchema) Format(name string) *StringSchema { s.doc.Format = name; return s }

func (s *StringSchema) formatCheck(format, custom string, ok func(string) bool) *StringSchema {
	s.checks = append(s.checks, func(v string) (lensmeta.Issues, bool) {
		if ok(v) {
			return nil, true
		}
		var data map[string]string
		if format != "" {
			data = map[string]string{"format": format}
		}
		return lensmeta.Issues{withMessage(newIssue(lensmeta.CodeInvalidFormat, data, nil), custom)}, false
	})
	return s
}

func (s *StringSchema) Parse(ctx context.Context, v any) (any, error) {
	str, ok := v.(string)
	if !ok {
		return nil, lensmeta.Issues{typeIssue("string", v)}
	}
	if s.trim {
		str = TrimInvisible(str)
	}
	var iss lensmeta.Issues
	for _, c := range s.checks {
		if ci, ok := c(str); !ok {
			iss = append(iss, ci...)
			if lensmeta.IsFailFast(ctx) {
				break
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return str, nil
}

func (s *StringSchema) JSONSchema() (*js.Schema, error) {
	out := s.doc
	return &out, nil
}

// TrimInvisible removes leading and trailing whitespace, C0/C1 control
// characters, zero-width spaces/joiners and the byte order mark.
func TrimInvisible(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			return true
		}
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}

func lengthIssue(code, typ string, n int, exact bool) lensmeta.Issue {
	key := "min"
	if code == lensmeta.CodeTooLong {
		key = "max"
	}
	data := map[string]string{"type": typ, key: strconv.Itoa(n)}
	if exact {
		data["exact"] = "true"
	}
	return newIssue(code, data, map[string]any{key: n, "exact": exact})
}

// ---- number ----

// NumberSchema accepts JSON numbers (json.Number or any Go numeric type) and
// returns them as json.Number.
type NumberSchema struct {
	integer  bool
	positive bool
	min, max *float64
}

// Number returns a number schema.
func Number() *NumberSchema { return &NumberSchema{} }

// Int requires an integral value within the int64 range. Accepted values are
// returned as plain digits (137.0 and 1.37e2 become 137).
func (n *NumberSchema) Int() *NumberSchema { n.integer = true; return n }

// Positive requires a value greater than zero.
func (n *NumberSchema) Positive() *NumberSchema { n.positive = true; return n }

// Min requires a value >= v.
func (n *NumberSchema) Min(v float64) *NumberSchema { n.min = &v; return n }

// Max requires a value <= v.
func (n *NumberSchema) Max(v float64) *NumberSchema { n.max = &v; return n }

func (n *NumberSchema) Parse(ctx context.Context, v any) (any, error) {
	num, f, ok := toNumber(v)
	if !ok {
		return nil, lensmeta.Issues{typeIssue("number", v)}
	}
	var iss lensmeta.Issues
	if n.integer {
		switch {
		case math.Trunc(f) != f:
			iss = append(iss, typeIssueNamed("integer", "float"))
		case f >= int64Limit:
			iss = append(iss, intBoundIssue(lensmeta.CodeTooLong, "max", math.MaxInt64))
		case f < -int64Limit:
			iss = append(iss, intBoundIssue(lensmeta.CodeTooShort, "min", math.MinInt64))
		default:
			num = canonicalInt(num, f)
		}
	}
	if n.positive && f <= 0 {
		iss = append(iss, newIssue(lensmeta.CodeInvalidFormat, map[string]string{"format": "nonpositive"}, nil))
	}
	if n.min != nil && f < *n.min {
		iss = append(iss, boundIssue(lensmeta.CodeTooShort, "min", *n.min))
	}
	if n.max != nil && f > *n.max {
		iss = append(iss, boundIssue(lensmeta.CodeTooLong, "max", *n.max))
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return num, nil
}

func (n *NumberSchema) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Type: "number", Minimum: n.min, Maximum: n.max}
	if n.integer {
		s.Type = "integer"
	}
	if n.positive {
		s.ExclusiveMinimum = js.Float(0)
	}
	return s, nil
}

// int64Limit is 2^63, the first float64 outside the int64 range.
const int64Limit = float64(1 << 63)

// canonicalInt rewrites integral spellings such as 137.0 or 1e3 into plain
// digits so they project into Go integer fields.
func canonicalInt(num json.Number, f float64) json.Number {
	if i, err := num.Int64(); err == nil {
		return json.Number(strconv.FormatInt(i, 10))
	}
	return json.Number(strconv.FormatInt(int64(f), 10))
}

func intBoundIssue(code, key string, bound int64) lensmeta.Issue {
	b := strconv.FormatInt(bound, 10)
	return newIssue(code, map[string]string{"type": "number", key: b}, map[string]any{key: bound})
}

func typeIssueNamed(expected, received string) lensmeta.Issue {
	return newIssue(lensmeta.CodeInvalidType,
		map[string]string{"expected": expected, "received": received},
		map[string]any{"expected": expected, "received": received})
}

func boundIssue(code, key string, bound float64) lensmeta.Issue {
	b := strconv.FormatFloat(bound, 'f', -1, 64)
	return newIssue(code, map[string]string{"type": "number", key: b}, map[string]any{key: bound})
}

// toNumber normalizes any numeric input to json.Number plus its float value.
func toNumber(v any) (json.Number, float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return "", 0, false
		}
		return t, f, true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "", 0, false
		}
		return json.Number(strconv.FormatFloat(t, 'f', -1, 64)), t, true
	case float32:
		return toNumber(float64(t))
	case int:
		return json.Number(strconv.Itoa(t)), float64(t), true
	case int8:
		return toNumber(int64(t))
	case int16:
		return toNumber(int64(t))
	case int32:
		return toNumber(int64(t))
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), float64(t), true
	case uint:
		return toNumber(uint64(t))
	case uint8:
		return toNumber(uint64(t))
	case uint16:
		return toNumber(uint64(t))
	case uint32:
		return toNumber(uint64(t))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), float64(t), true
	}
	return "", 0, false
}

// ---- bool ----

type boolSchema struct{}

// Bool returns a boolean schema.
func Bool() Node { return boolSchema{} }

func (boolSchema) Parse(ctx context.Context, v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, lensmeta.Issues{typeIssue("boolean", v)}
}

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

// ---- any ----

type anySchema struct{}

// Any accepts every value, including null.
func Any() Node { return anySchema{} }

func (anySchema) Parse(ctx context.Context, v any) (any, error) { return v, nil }
func (anySchema) JSONSchema() (*js.Schema, error)               { return &js.Schema{}, nil }

// ---- literal ----

type literalSchema struct{ value any }

// Literal accepts exactly one string, bool or number value.
func Literal(v any) Node { return literalSchema{value: v} }

func (l literalSchema) Parse(ctx context.Context, v any) (any, error) {
	if literalEqual(l.value, v) {
		return l.value, nil
	}
	return nil, lensmeta.Issues{l.missingIssue()}
}

func (l literalSchema) missingIssue() lensmeta.Issue {
	exp := literalText(l.value)
	return newIssue(lensmeta.CodeInvalidLiteral, map[string]string{"expected": exp}, map[string]any{"expected": l.value})
}

func (l literalSchema) values() []string {
	if s, ok := l.value.(string); ok {
		return []string{s}
	}
	return nil
}

func (l literalSchema) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Const: l.value}
	switch l.value.(type) {
	case string:
		s.Type = "string"
	case bool:
		s.Type = "boolean"
	default:
		s.Type = "number"
	}
	return s, nil
}

func literalEqual(want, got any) bool {
	switch w := want.(type) {
	case string:
		g, ok := got.(string)
		return ok && g == w
	case bool:
		g, ok := got.(bool)
		return ok && g == w
	}
	_, wf, ok1 := toNumber(want)
	_, gf, ok2 := toNumber(got)
	return ok1 && ok2 && wf == gf
}

// ---- enum ----

type enumSchema struct {
	options []string
	set     map[string]struct{}
}

// Enum accepts one of the given strings.
func Enum(options ...string) Node {
	set := make(map[string]struct{}, len(options))
	for _, o := range options {
		set[o] = struct{}{}
	}
	return enumSchema{options: options, set: set}
}

func (e enumSchema) Parse(ctx context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, lensmeta.Issues{typeIssue(quoteOptions(e.options), v)}
	}
	if _, ok := e.set[s]; !ok {
		return nil, lensmeta.Issues{newIssue(lensmeta.CodeInvalidEnum,
			map[string]string{"options": quoteOptions(e.options), "received": s},
			map[string]any{"options": e.options, "received": s})}
	}
	return s, nil
}

func (e enumSchema) values() []string { return e.options }

func (e enumSchema) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.options))
	for i, o := range e.options {
		vals[i] = o
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}
