package idscrape

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// NullValues is a set of extracted values that are treated as "no data".
type NullValues []string

// DefaultNullValues are dropped from results unless a caller configures otherwise.
var DefaultNullValues = NullValues{"", "nan"}

// Contains reports whether v is one of the null sentinels.
func (n NullValues) Contains(v string) bool {
	return slices.Contains(n, v)
}

// Result maps element identifiers to their extracted text.
// Iteration order follows the order in which identifiers were first set.
type Result struct {
	ids    []string
	values map[string]string

	// Missing lists requested identifiers that matched no element,
	// in request order. They are never keys of the result.
	Missing []string
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{values: make(map[string]string)}
}

// Set records text under id. Setting an existing id replaces its value
// but keeps its original position.
func (r *Result) Set(id, text string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.values[id] = text
}

// Get returns the text recorded for id.
func (r *Result) Get(id string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.values[id]
	return v, ok
}

// Delete removes id from the result.
func (r *Result) Delete(id string) {
	if _, ok := r.values[id]; !ok {
		return
	}
	delete(r.values, id)
	r.ids = slices.DeleteFunc(r.ids, func(s string) bool { return s == id })
}

// Len returns the number of identifiers in the result.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.ids)
}

// IDs returns the identifiers in insertion order.
func (r *Result) IDs() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.ids)
}

// All iterates over id/text pairs in insertion order.
func (r *Result) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if r == nil {
			return
		}
		for _, id := range r.ids {
			if !yield(id, r.values[id]) {
				return
			}
		}
	}
}

// Map returns a copy of the result as a plain map.
func (r *Result) Map() map[string]string {
	m := make(map[string]string, r.Len())
	for id, text := range r.All() {
		m[id] = text
	}
	return m
}

// MarshalJSON encodes the result as a JSON object with keys in insertion order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for id, text := range r.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(text)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FilterNull returns a copy of r without the entries whose value is in nulls.
// Filtering an already filtered result is a no-op.
func FilterNull(r *Result, nulls NullValues) *Result {
	out := NewResult()
	if r == nil {
		return out
	}
	for id, text := range r.All() {
		if nulls.Contains(text) {
			continue
		}
		out.Set(id, text)
	}
	out.Missing = slices.Clone(r.Missing)
	return out
}
