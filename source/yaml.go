package source

import (
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/lensmeta"
)

// DecodeYAML decodes the first document of a YAML stream. Integers and
// floats become json.Number; timestamps and binary values stay strings so
// that they validate like their JSON spelling.
func DecodeYAML(data []byte, opt Options) (Document, error) {
	s := &state{opt: opt}
	if err := s.checkSize(int64(len(data))); err != nil {
		return Document{}, err
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Document{}, parseError(err)
	}
	if root.Kind == 0 {
		return s.finish(nil)
	}
	v, err := s.yamlValue(&root, nil)
	if err != nil {
		return Document{}, err
	}
	return s.finish(v)
}

func (s *state) yamlValue(n *yaml.Node, p lensmeta.Path) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return s.yamlValue(n.Content[0], p)
	case yaml.AliasNode:
		if err := s.enter(p); err != nil {
			return nil, err
		}
		defer s.leave()
		return s.yamlValue(n.Alias, p)
	case yaml.MappingNode:
		return s.yamlMapping(n, p)
	case yaml.SequenceNode:
		if err := s.enter(p); err != nil {
			return nil, err
		}
		defer s.leave()
		out := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := s.yamlValue(c, p.Index(i))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return nil, parseError(fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind))
}

func (s *state) yamlMapping(n *yaml.Node, p lensmeta.Path) (any, error) {
	if err := s.enter(p); err != nil {
		return nil, err
	}
	defer s.leave()
	out := make(map[string]any, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, vn := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, parseError(fmt.Errorf("line %d: non-scalar mapping key", k.Line))
		}
		kp := p.Field(k.Value)
		v, err := s.yamlValue(vn, kp)
		if err != nil {
			return nil, err
		}
		if _, dup := out[k.Value]; dup {
			s.duplicate(kp, k.Value, map[string]any{"line": k.Line})
		}
		out[k.Value] = v
	}
	return out, nil
}

func yamlScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, parseError(err)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, parseError(err)
		}
		return json.Number(strconv.FormatInt(i, 10)), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, parseError(err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, parseError(fmt.Errorf("line %d: %s is not a JSON number", n.Line, n.Value))
		}
		return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	}
	return n.Value, nil
}
