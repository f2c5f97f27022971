package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Quantity is one named amount.
type Quantity struct {
	Name  string
	Value float64
}

// Quantities is an ordered name to amount mapping. It serializes as a JSON or
// YAML object whose keys keep insertion order.
type Quantities []Quantity

// Get returns the value stored under name.
func (q Quantities) Get(name string) (float64, bool) {
	for _, item := range q {
		if item.Name == name {
			return item.Value, true
		}
	}
	return 0, false
}

// Has reports whether name is present.
func (q Quantities) Has(name string) bool {
	_, ok := q.Get(name)
	return ok
}

// Set replaces the value for an existing name in place or appends a new entry.
func (q *Quantities) Set(name string, value float64) {
	for i := range *q {
		if (*q)[i].Name == name {
			(*q)[i].Value = value
			return
		}
	}
	*q = append(*q, Quantity{Name: name, Value: value})
}

// Names returns the keys in insertion order.
func (q Quantities) Names() []string {
	names := make([]string, 0, len(q))
	for _, item := range q {
		names = append(names, item.Name)
	}
	return names
}

// Clone returns an independent copy.
func (q Quantities) Clone() Quantities {
	if q == nil {
		return nil
	}
	out := make(Quantities, len(q))
	copy(out, q)
	return out
}

// Map returns the quantities as an unordered map.
func (q Quantities) Map() map[string]float64 {
	out := make(map[string]float64, len(q))
	for _, item := range q {
		out[item.Name] = item.Value
	}
	return out
}

// MarshalJSON encodes the quantities as an object in insertion order.
func (q Quantities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range q {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(item.Value)
		if err != nil {
			return nil, fmt.Errorf("quantity %q: %w", item.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of numbers, keeping key order. A repeated
// key keeps its first position and its last value.
func (q *Quantities) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("quantities: %w", err)
	}
	out := Quantities{}
	for dec.More() {
		name, err := objectKey(dec)
		if err != nil {
			return fmt.Errorf("quantities: %w", err)
		}
		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("quantity %q: %w", name, err)
		}
		out.Set(name, value)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return fmt.Errorf("quantities: %w", err)
	}
	*q = out
	return nil
}

// MarshalYAML encodes the quantities as a mapping node in insertion order.
func (q Quantities) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, item := range q {
		key := &yaml.Node{}
		key.SetString(item.Name)
		value := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(item.Value, 'f', -1, 64),
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
