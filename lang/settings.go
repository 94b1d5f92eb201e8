package lang

import (
	"iter"
	"slices"
)

// Settings is an ordered mapping of variable names to resolved values.
//
// Keys are kept in the order they were first set; assigning an existing key
// replaces its value in place.
type Settings struct {
	keys   []string
	values map[string]string
}

// NewSettings returns an empty Settings.
func NewSettings() *Settings {
	return &Settings{values: make(map[string]string)}
}

// Set assigns value to key.
func (s *Settings) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}

	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.values[key] = value
}

// Get returns the value of key and whether it is present.
func (s *Settings) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}

	v, ok := s.values[key]

	return v, ok
}

// Len returns the number of keys.
func (s *Settings) Len() int {
	if s == nil {
		return 0
	}

	return len(s.keys)
}

// Keys returns a copy of the keys in insertion order.
func (s *Settings) Keys() []string {
	if s == nil {
		return nil
	}

	return slices.Clone(s.keys)
}

// All returns an iterator over key/value pairs in insertion order.
func (s *Settings) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if s == nil {
			return
		}

		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// Merge sets every pair of other into s, in order.
func (s *Settings) Merge(other *Settings) {
	for k, v := range other.All() {
		s.Set(k, v)
	}
}
