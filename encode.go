package skemadesc

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/skemadesc/schema"
)

// MarshalJSON writes the descriptor as a JSON object with keys in emission order.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	return marshalEntries(d.entries())
}

// MarshalJSON writes the properties as a JSON object in declaration order.
func (ps Properties) MarshalJSON() ([]byte, error) {
	es := make([]entry, len(ps))
	for i, p := range ps {
		es[i] = entry{p.Name, p.Descriptor}
	}
	return marshalEntries(es)
}

func marshalEntries(es []entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range es {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(e.value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", e.key, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the descriptor as an ordered YAML mapping.
func (d *Descriptor) MarshalYAML() (any, error) {
	if d == nil {
		return nil, nil
	}
	return yamlMapping(d.entries())
}

// MarshalYAML renders the properties as an ordered YAML mapping.
func (ps Properties) MarshalYAML() (any, error) {
	es := make([]entry, len(ps))
	for i, p := range ps {
		es[i] = entry{p.Name, p.Descriptor}
	}
	return yamlMapping(es)
}

func yamlMapping(es []entry) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range es {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key}
		vn, err := yamlValue(e.value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", e.key, err)
		}
		n.Content = append(n.Content, kn, vn)
	}
	return n, nil
}

func yamlValue(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *Descriptor:
		if t == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
		}
		return yamlMapping(t.entries())
	case Properties:
		es := make([]entry, len(t))
		for i, p := range t {
			es[i] = entry{p.Name, p.Descriptor}
		}
		return yamlMapping(es)
	case []*Descriptor:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, d := range t {
			dn, err := yamlValue(d)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, dn)
		}
		return seq, nil
	default:
		vn := &yaml.Node{}
		if err := vn.Encode(v); err != nil {
			return nil, err
		}
		return vn, nil
	}
}

// EncodeJSON serializes n and encodes the descriptor as JSON.
func EncodeJSON(n schema.Node) ([]byte, error) {
	d, err := Serialize(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(d)
}

// EncodeYAML serializes n and encodes the descriptor as YAML.
func EncodeYAML(n schema.Node) ([]byte, error) {
	d, err := Serialize(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(d)
}
