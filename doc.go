// Package zipmap provides an in-memory, ordered map of named byte blobs
// backed by a zip archive representation.
//
// A [Map] behaves like a dictionary of byte slices: entries are assigned,
// read, deleted, and iterated by key, in insertion order. At any point the
// whole map serializes to a single portable zip byte stream (or file), one
// record per entry, optionally deflate-compressed; deserializing the stream
// reproduces the map exactly.
//
// # Quick Start
//
// Build a map and serialize it:
//
//	m := zipmap.New()
//	m.Set("config", configBytes)
//	m.Set(42, payload) // non-string keys are stringified
//	data, err := m.Bytes()
//
// Load it back:
//
//	m, err := zipmap.FromBytes(data)
//	if err != nil {
//	    return err
//	}
//	payload, err := m.Get("42")
//
// # Random Access
//
// A [Reader] reads single records from an archive on demand without
// materializing every entry, using the archive's central directory:
//
//	r, err := zipmap.OpenReader("blobs.zip", zipmap.ReaderWithCache(true))
//	if err != nil {
//	    return err
//	}
//	content, err := r.Get("config")
//
// A Map is not safe for concurrent mutation; callers must provide their own
// synchronization. A Reader is safe for concurrent reads.
package zipmap
