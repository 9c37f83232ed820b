package source

import (
	"bytes"

	"github.com/tidwall/gjson"
)

// Kind tells which family of schemas a raw document belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindCurrent      // carries `$schema`
	KindLegacy       // carries `version`
)

func (k Kind) String() string {
	switch k {
	case KindCurrent:
		return "current"
	case KindLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Sniff reads one top-level string field of a JSON document without
// decoding it. field uses gjson path syntax.
func Sniff(data []byte, field string) (string, bool) {
	r := gjson.GetBytes(data, field)
	if r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

// SniffKind classifies a JSON document by its discriminating field. Invalid
// JSON and YAML input are KindUnknown.
func SniffKind(data []byte) Kind {
	if !gjson.ValidBytes(data) {
		return KindUnknown
	}
	if _, ok := Sniff(data, "$schema"); ok {
		return KindCurrent
	}
	if _, ok := Sniff(data, "version"); ok {
		return KindLegacy
	}
	return KindUnknown
}

// Decode picks JSON when the input starts with an object or array and YAML
// otherwise.
func Decode(data []byte, opt Options) (Document, error) {
	if IsJSON(data) {
		return DecodeJSON(data, opt)
	}
	return DecodeYAML(data, opt)
}

// IsJSON reports whether data looks like a JSON container.
func IsJSON(data []byte) bool {
	t := bytes.TrimLeft(data, " \t\r\n\ufeff")
	return len(t) > 0 && (t[0] == '{' || t[0] == '[')
}
