package lensmeta

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path locates a value inside a validated tree as a sequence of field names
// and array indexes.
type Path []Segment

// PathOf builds a Path from strings (keys) and ints (indexes). Other element
// types are rendered with strconv-like formatting as keys.
func PathOf(elems ...any) Path {
	p := make(Path, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case int:
			p = append(p, Segment{Index: v, IsIndex: true})
		case string:
			p = append(p, Segment{Key: v})
		case Segment:
			p = append(p, v)
		}
	}
	return p
}

// Field returns a new path extended with a key.
func (p Path) Field(name string) Path {
	return append(append(make(Path, 0, len(p)+1), p...), Segment{Key: name})
}

// Index returns a new path extended with an array index.
func (p Path) Index(i int) Path {
	return append(append(make(Path, 0, len(p)+1), p...), Segment{Index: i, IsIndex: true})
}

// Join returns p followed by q.
func (p Path) Join(q Path) Path {
	out := make(Path, 0, len(p)+len(q))
	out = append(out, p...)
	return append(out, q...)
}

// Equal reports whether both paths address the same location.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Pointer renders the path as an RFC6901 JSON Pointer ("/" for the root).
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.IsIndex {
			b.WriteString(strconv.Itoa(s.Index))
			continue
		}
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.Key, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// String renders the path in dotted notation with bracketed indexes, e.g.
// lens.attachments[0].type.
func (p Path) String() string {
	b := &strings.Builder{}
	for i, s := range p {
		if s.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Key)
	}
	return b.String()
}
