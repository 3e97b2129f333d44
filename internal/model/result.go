package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is a single name→value pair of a Result.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Result is the run-scoped mapping from catalog name to captured value.
//
// Go maps do not keep insertion order, and encoding/json sorts map keys,
// so Result tracks the order explicitly. The JSON form is a plain object
// whose keys appear in first-captured order. Entries are never updated or
// removed once added.
//
// The zero value is an empty Result ready to use.
type Result struct {
	order  []string
	values map[string]string
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{values: make(map[string]string)}
}

// Set records value under name. It returns false, leaving the Result
// unchanged, if name is already present.
func (r *Result) Set(name, value string) bool {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, exists := r.values[name]; exists {
		return false
	}
	r.values[name] = value
	r.order = append(r.order, name)
	return true
}

// Get returns the value recorded under name.
func (r *Result) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Len returns the number of recorded entries.
func (r *Result) Len() int {
	return len(r.order)
}

// Names returns the recorded names in insertion order.
func (r *Result) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Entries returns the recorded pairs in insertion order.
func (r *Result) Entries() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, Entry{Name: name, Value: r.values[name]})
	}
	return entries
}

// MarshalJSON encodes the Result as a JSON object, keeping insertion order.
// An empty Result encodes as {}.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string values, keeping the key
// order of the document. Duplicate keys and non-string values are rejected.
func (r *Result) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("result: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("result: expected a JSON object, got %v", tok)
	}

	fresh := NewResult()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("result: %w", err)
		}
		// Object keys are always decoded as strings by encoding/json.
		name, _ := tok.(string)

		// Token rather than Decode: decoding null into a string is a no-op.
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("result: value for %q: %w", name, err)
		}
		value, ok := tok.(string)
		if !ok {
			return fmt.Errorf("result: value for %q: expected a string, got %v", name, tok)
		}
		if !fresh.Set(name, value) {
			return fmt.Errorf("result: duplicate key %q", name)
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("result: %w", err)
	}

	*r = *fresh
	return nil
}
