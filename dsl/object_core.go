package dsl

import (
	"context"
	"sort"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/i18n"
	js "github.com/reoring/lensmeta/jsonschema"
)

type objectSchema struct {
	fields        []objField
	known         map[string]struct{}
	unknownPolicy lensmeta.UnknownPolicy
	refines       []objRefine
	description   string
}

func (o *objectSchema) Parse(ctx context.Context, v any) (any, error) {
	m, ok := lensmeta.AsObject(v)
	if !ok {
		return nil, lensmeta.Issues{typeIssue("object", v)}
	}
	out := make(map[string]any, len(m))
	var iss lensmeta.Issues
	for i := range o.fields {
		f := &o.fields[i]
		val, set, fiss := f.resolve(ctx, m)
		if len(fiss) > 0 {
			iss = append(iss, fiss.WithPrefix(lensmeta.PathOf(f.name))...)
			if lensmeta.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		if set {
			out[f.name] = val
		}
	}
	iss = append(iss, o.collectUnknown(m, out)...)
	if len(iss) > 0 {
		return nil, iss
	}
	for _, r := range o.refines {
		if ri := issuesOf(r.fn(ctx, out), r.name); len(ri) > 0 {
			iss = append(iss, ri...)
			if lensmeta.IsFailFast(ctx) {
				break
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// resolve validates one field. set reports whether the field belongs in the
// output (absent optional fields do not).
func (f *objField) resolve(ctx context.Context, m map[string]any) (val any, set bool, iss lensmeta.Issues) {
	raw, present := m[f.name]
	if !present {
		switch {
		case f.hasDefault:
			val, err := f.node.Parse(ctx, deepCopy(f.def))
			if err != nil {
				return nil, false, lensmeta.ToIssues(err)
			}
			return val, true, nil
		case f.optional:
			return nil, false, nil
		case f.hasCatch:
			return deepCopy(f.catch), true, nil
		}
		return nil, false, lensmeta.Issues{missingIssueOf(f.node)}
	}
	val, err := f.node.Parse(ctx, raw)
	if err != nil {
		if f.hasCatch {
			return deepCopy(f.catch), true, nil
		}
		return nil, false, lensmeta.ToIssues(err)
	}
	return val, true, nil
}

// collectUnknown applies the unknown-key policy. Unknown keys are visited in
// sorted order so strict reports are deterministic.
func (o *objectSchema) collectUnknown(m map[string]any, out map[string]any) lensmeta.Issues {
	if o.unknownPolicy == lensmeta.UnknownStrip {
		return nil
	}
	var unknown []string
	for k := range m {
		if _, ok := o.known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	var iss lensmeta.Issues
	for _, k := range unknown {
		switch o.unknownPolicy {
		case lensmeta.UnknownPassthrough:
			out[k] = m[k]
		default:
			iss = append(iss, lensmeta.Issue{
				Path:    lensmeta.PathOf(k),
				Code:    lensmeta.CodeUnrecognizedKey,
				Message: i18n.T(lensmeta.CodeUnrecognizedKey, map[string]string{"key": k}),
				Params:  map[string]any{"key": k},
			})
		}
	}
	return iss
}

func (o *objectSchema) fieldValues(key string) ([]string, bool) {
	for i := range o.fields {
		if o.fields[i].name == key {
			return nodeValues(o.fields[i].node)
		}
	}
	return nil, false
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}, Description: o.description}
	for i := range o.fields {
		f := &o.fields[i]
		fs, err := f.node.JSONSchema()
		if err != nil {
			return nil, err
		}
		if fs == nil {
			fs = &js.Schema{}
		}
		if f.hasDefault {
			fs.Default = f.def
		}
		if f.description != "" {
			fs.Description = f.description
		}
		s.Properties[f.name] = fs
		if !f.optional && !f.hasCatch && !f.hasDefault {
			s.Required = append(s.Required, f.name)
		}
	}
	if o.unknownPolicy == lensmeta.UnknownStrict {
		s.AdditionalProperties = false
	}
	return s, nil
}
