// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package asset

import (
	"fmt"
	"sort"
	"strings"
)

// allowedChars is the set of characters permitted in asset key
// segments: a-z, A-Z, 0-9, and the symbols . _ - /.
var allowedChars [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		allowedChars[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		allowedChars[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		allowedChars[c] = true
	}
	allowedChars['.'] = true
	allowedChars['_'] = true
	allowedChars['-'] = true
	allowedChars['/'] = true
}

// Key identifies a data asset by a slash-separated hierarchical path
// (e.g., "warehouse/events/signups"). Keys are validated, immutable
// value types: construct one with NewKey, compare with ==, and use
// directly as a map key.
//
// The zero Key is invalid and reports IsZero. A zero Key in a used-data
// mapping means "identity unknown", not "root asset".
type Key struct {
	path string
}

// NewKey constructs a validated Key from a slash-separated path.
func NewKey(path string) (Key, error) {
	if path == "" {
		return Key{}, fmt.Errorf("invalid asset key: path is empty")
	}
	if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return Key{}, fmt.Errorf("invalid asset key %q: leading or trailing /", path)
	}
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			return Key{}, fmt.Errorf("invalid asset key %q: empty path segment", path)
		}
		if strings.HasPrefix(segment, ".") {
			return Key{}, fmt.Errorf("invalid asset key %q: segment starts with '.'", path)
		}
	}
	for i := 0; i < len(path); i++ {
		if !allowedChars[path[i]] {
			return Key{}, fmt.Errorf("invalid asset key %q: character %q not allowed", path, path[i])
		}
	}
	return Key{path: path}, nil
}

// MustKey constructs a Key from a path known to be valid, panicking
// otherwise. For tests and compiled-in fixtures only.
func MustKey(path string) Key {
	key, err := NewKey(path)
	if err != nil {
		panic(err)
	}
	return key
}

// String returns the slash-separated path.
func (k Key) String() string { return k.path }

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.path == "" }

// Parts returns the path segments.
func (k Key) Parts() []string {
	if k.path == "" {
		return nil
	}
	return strings.Split(k.path, "/")
}

// MarshalText implements encoding.TextMarshaler. The canonical
// serialized form is the slash-separated path.
func (k Key) MarshalText() ([]byte, error) {
	if k.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero asset key")
	}
	return []byte(k.path), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with validation.
func (k *Key) UnmarshalText(data []byte) error {
	key, err := NewKey(string(data))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// KeySet is a sorted, deduplicated set of asset keys. Construct with
// NewKeySet and treat as read-only; the constructor copies its input,
// so a KeySet is safe to share across concurrent evaluations.
type KeySet []Key

// NewKeySet builds a KeySet from keys, sorting and deduplicating.
func NewKeySet(keys ...Key) KeySet {
	set := make(KeySet, 0, len(keys))
	seen := make(map[Key]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			continue
		}
		seen[key] = true
		set = append(set, key)
	}
	sort.Slice(set, func(i, j int) bool { return set[i].path < set[j].path })
	return set
}

// Contains reports whether key is a member of the set.
func (s KeySet) Contains(key Key) bool {
	index := sort.Search(len(s), func(i int) bool { return s[i].path >= key.path })
	return index < len(s) && s[index] == key
}

// Equal reports whether two sets have identical membership.
func (s KeySet) Equal(other KeySet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Strings returns the members as sorted path strings.
func (s KeySet) Strings() []string {
	paths := make([]string, len(s))
	for i, key := range s {
		paths[i] = key.path
	}
	return paths
}
