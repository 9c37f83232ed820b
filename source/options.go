// Package source turns raw documents (JSON or YAML bytes) into the untyped
// trees the dsl nodes validate: map[string]any, []any, string, bool,
// json.Number and nil.
//
// Decoding enforces what a tree can no longer show: duplicate object keys
// and size limits.
package source

import (
	"github.com/reoring/lensmeta"
)

// Options controls decoding.
type Options struct {
	// OnDuplicateKey decides what a repeated object key does. With Error the
	// document is rejected, with Warn the issues are returned as warnings.
	// The last value wins in both non-error cases.
	OnDuplicateKey lensmeta.Severity
	// MaxDepth bounds container nesting; 0 disables the check.
	MaxDepth int
	// MaxBytes bounds the document size; 0 disables the check.
	MaxBytes int64
}

// DefaultOptions rejects duplicate keys and nests at most 64 levels.
func DefaultOptions() Options { return FromParseOpt(lensmeta.DefaultParseOpt()) }

// FromParseOpt maps the engine parse options onto decoding options.
func FromParseOpt(o lensmeta.ParseOpt) Options {
	return Options{
		OnDuplicateKey: o.Strictness.OnDuplicateKey,
		MaxDepth:       o.MaxDepth,
		MaxBytes:       o.MaxBytes,
	}
}

// Document is a decoded tree plus the non-fatal findings of decoding.
type Document struct {
	Value    any
	Warnings lensmeta.Issues
}

// state is shared by the JSON and YAML walkers.
type state struct {
	opt   Options
	depth int
	dups  lensmeta.Issues
}

func (s *state) enter(p lensmeta.Path) error {
	s.depth++
	if s.opt.MaxDepth > 0 && s.depth > s.opt.MaxDepth {
		return lensmeta.Issues{truncated(p, "depth", s.opt.MaxDepth)}
	}
	return nil
}

func (s *state) leave() { s.depth-- }

func (s *state) duplicate(p lensmeta.Path, key string, params map[string]any) {
	if s.opt.OnDuplicateKey == lensmeta.Ignore {
		return
	}
	if params == nil {
		params = map[string]any{}
	}
	params["key"] = key
	it := lensmeta.IssueAt(p, lensmeta.CodeDuplicateValue, dupMessage(key), params)
	s.dups = append(s.dups, it)
	log.Debugf("source: duplicate key %q at %s", key, p.Pointer())
}

// finish applies the duplicate policy to a successfully walked tree.
func (s *state) finish(v any) (Document, error) {
	if len(s.dups) == 0 {
		return Document{Value: v}, nil
	}
	if s.opt.OnDuplicateKey == lensmeta.Error {
		return Document{}, s.dups
	}
	log.Warnf("source: %d duplicate key(s) ignored", len(s.dups))
	return Document{Value: v, Warnings: s.dups}, nil
}

func (s *state) checkSize(n int64) error {
	if s.opt.MaxBytes > 0 && n > s.opt.MaxBytes {
		return lensmeta.Issues{truncated(nil, "size", s.opt.MaxBytes)}
	}
	return nil
}
