package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/i18n"
)

// DecodeJSON decodes exactly one JSON value.
func DecodeJSON(data []byte, opt Options) (Document, error) {
	s := &state{opt: opt}
	if err := s.checkSize(int64(len(data))); err != nil {
		return Document{}, err
	}
	return s.decodeJSON(bytes.NewReader(data))
}

// DecodeJSONReader is DecodeJSON for a stream. With MaxBytes set, at most
// MaxBytes+1 bytes are read.
func DecodeJSONReader(r io.Reader, opt Options) (Document, error) {
	s := &state{opt: opt}
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return Document{}, parseError(err)
		}
		if err := s.checkSize(int64(len(data))); err != nil {
			return Document{}, err
		}
		r = bytes.NewReader(data)
	}
	return s.decodeJSON(r)
}

func (s *state) decodeJSON(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	w := &jsonWalker{state: s, dec: dec}
	v, err := w.value(nil)
	if err != nil {
		return Document{}, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected %v after top-level value", tok)
		}
		return Document{}, parseError(err)
	}
	return s.finish(v)
}

type jsonWalker struct {
	*state
	dec *json.Decoder
}

func (w *jsonWalker) value(p lensmeta.Path) (any, error) {
	tok, err := w.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, parseError(err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return w.object(p)
		case '[':
			return w.array(p)
		}
		return nil, parseError(fmt.Errorf("unexpected %q", rune(t)))
	case string, bool, json.Number, nil:
		return t, nil
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	}
	return nil, parseError(fmt.Errorf("unexpected token %T", tok))
}

func (w *jsonWalker) object(p lensmeta.Path) (any, error) {
	if err := w.enter(p); err != nil {
		return nil, err
	}
	defer w.leave()
	out := map[string]any{}
	for w.dec.More() {
		tok, err := w.dec.Token()
		if err != nil {
			return nil, parseError(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, parseError(fmt.Errorf("object key is %T", tok))
		}
		kp := p.Field(key)
		v, err := w.value(kp)
		if err != nil {
			return nil, err
		}
		if _, dup := out[key]; dup {
			w.duplicate(kp, key, nil)
		}
		out[key] = v
	}
	if _, err := w.dec.Token(); err != nil {
		return nil, parseError(err)
	}
	return out, nil
}

func (w *jsonWalker) array(p lensmeta.Path) (any, error) {
	if err := w.enter(p); err != nil {
		return nil, err
	}
	defer w.leave()
	out := []any{}
	for i := 0; w.dec.More(); i++ {
		v, err := w.value(p.Index(i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if _, err := w.dec.Token(); err != nil {
		return nil, parseError(err)
	}
	return out, nil
}

func parseError(err error) lensmeta.Issues {
	return lensmeta.Issues{{
		Code:    lensmeta.CodeParseError,
		Message: i18n.T(lensmeta.CodeParseError, map[string]string{"detail": err.Error()}),
		Cause:   err,
	}}
}

func truncated(p lensmeta.Path, kind string, limit any) lensmeta.Issue {
	text := fmt.Sprintf("%s %v", kind, limit)
	return lensmeta.IssueAt(p, lensmeta.CodeTruncated,
		i18n.T(lensmeta.CodeTruncated, map[string]string{"limit": text}),
		map[string]any{kind: limit})
}

func dupMessage(key string) string {
	return i18n.T(lensmeta.CodeDuplicateValue, map[string]string{"key": key})
}
