package zipmap

import (
	"bytes"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Map is an ordered mapping from string keys to byte blobs.
//
// Keys keep insertion order for Keys, All, String, and archive record
// order. Non-string keys passed to Set, Get, Delete, or Contains are
// converted to their string form first, so Set(1, v) and Get("1") address
// the same entry.
//
// A Map is not safe for concurrent use; callers must provide external
// synchronization when sharing one instance across goroutines.
type Map struct {
	keys        []string
	entries     map[string][]byte
	compression Compression
}

// New creates an empty Map. Compression defaults to CompressionDeflate;
// use WithCompression(CompressionNone) to store payloads uncompressed.
func New(opts ...Option) *Map {
	m := &Map{
		entries:     make(map[string][]byte),
		compression: CompressionDeflate,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FromMap creates a Map holding a copy of every entry in src.
//
// Go map iteration order is random, so entries are inserted in sorted key
// order to keep the result deterministic.
func FromMap(src map[string][]byte, opts ...Option) *Map {
	m := New(opts...)
	for _, k := range slices.Sorted(maps.Keys(src)) {
		m.Set(k, src[k])
	}
	return m
}

// Clone returns an independent copy of the Map: same entries, same order,
// same compression. Mutating the clone never affects the source.
func (m *Map) Clone() *Map {
	c := &Map{
		keys:        slices.Clone(m.keys),
		entries:     make(map[string][]byte, len(m.entries)),
		compression: m.compression,
	}
	for k, v := range m.entries {
		c.entries[k] = bytes.Clone(v)
	}
	return c
}

// Set stores value under the stringified key, overwriting any existing
// entry. New keys are appended to the iteration order; overwrites keep the
// key's original position. The value is copied, so later mutation of the
// caller's slice does not affect the map.
func (m *Map) Set(key any, value []byte) {
	k := keyString(key)
	if _, ok := m.entries[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.entries[k] = bytes.Clone(value)
}

// Get returns a copy of the value stored under the stringified key.
// Returns ErrKeyNotFound when the key has no entry; absence is never
// silently defaulted.
func (m *Map) Get(key any) ([]byte, error) {
	k := keyString(key)
	v, ok := m.entries[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, k)
	}
	return bytes.Clone(v), nil
}

// Delete removes the entry for the stringified key.
// Returns ErrKeyNotFound when the key has no entry.
func (m *Map) Delete(key any) error {
	k := keyString(key)
	if _, ok := m.entries[k]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, k)
	}
	delete(m.entries, k)
	m.keys = slices.DeleteFunc(m.keys, func(s string) bool { return s == k })
	return nil
}

// Contains reports whether the stringified key has an entry.
func (m *Map) Contains(key any) bool {
	_, ok := m.entries[keyString(key)]
	return ok
}

// Keys returns all keys in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// All returns an iterator over entries in insertion order.
//
// Each call yields a fresh walk over the current entries. Yielded values
// alias map state and must be treated as immutable. Mutating the Map while
// iterating is not supported.
func (m *Map) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// String renders the quoted key list in insertion order, for debugging and
// logging rather than data interchange.
func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(k))
	}
	sb.WriteByte(']')
	return sb.String()
}
