package maps

import (
	"bytes"
	"encoding/json"
)

// Ordered is a map with string keys, which remembers the order of insertion.
//
// It is marshalled into a JSON object with keys in that order.
type Ordered[V any] struct {
	keys []string
	m    map[string]V
}

// NewOrdered creates an empty ordered map.
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{m: map[string]V{}}
}

// Set puts a value.
//
// Updating an existing key keeps its position.
func (o *Ordered[V]) Set(k string, v V) *Ordered[V] {
	if _, ok := o.m[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.m[k] = v
	return o
}

func (o *Ordered[V]) Get(k string) (V, bool) {
	v, ok := o.m[k]
	return v, ok
}

func (o *Ordered[V]) Keys() []string {
	return append([]string{}, o.keys...)
}

func (o *Ordered[V]) Len() int {
	return len(o.keys)
}

func (o *Ordered[V]) Iter() func(yield func(string, V) bool) {
	return func(yield func(string, V) bool) {
		for _, k := range o.keys {
			if !yield(k, o.m[k]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as a JSON object, without escaping HTML characters.
func (o *Ordered[V]) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	encode := func(v any) ([]byte, error) {
		buf.Reset()
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	}

	out := &bytes.Buffer{}
	out.WriteByte('{')
	for i, k := range o.keys {
		if i != 0 {
			out.WriteByte(',')
		}
		key, err := encode(k)
		if err != nil {
			return nil, err
		}
		out.Write(key)
		out.WriteByte(':')

		val, err := encode(o.m[k])
		if err != nil {
			return nil, err
		}
		out.Write(val)
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}
