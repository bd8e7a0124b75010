// Package xmlpick implements a path-addressed streaming XML
// dispatcher: it consumes XML incrementally and invokes registered
// callbacks whenever the element whose path matches a registered
// path closes, passing the fully reconstructed subtree rooted at
// that path. Large or continuously arriving documents can be picked
// apart without materializing the whole tree.
//
// Paths are plain, case-insensitive tag sequences such as
// "/root/item/"; namespace prefixes are part of the tag name and are
// not resolved.
package xmlpick

import (
	"context"
	"io"
)

const Version = "0.1.0"

// Parse registers a single (path, callback) pair on a fresh Reader
// and parses the given buffer with it.
func Parse(ctx context.Context, data []byte, path string, cb Callback, options ...ParseOption) error {
	r := New()
	if err := r.RegisterCallback(path, cb); err != nil {
		return err
	}
	return r.Parse(ctx, data, options...)
}

// ParseString is like Parse, but takes a string.
func ParseString(ctx context.Context, s string, path string, cb Callback, options ...ParseOption) error {
	r := New()
	if err := r.RegisterCallback(path, cb); err != nil {
		return err
	}
	return r.ParseString(ctx, s, options...)
}

// ParseReader is like Parse, but takes a stream source.
func ParseReader(ctx context.Context, src io.Reader, path string, cb Callback, options ...ParseOption) error {
	r := New()
	if err := r.RegisterCallback(path, cb); err != nil {
		return err
	}
	return r.ParseReader(ctx, src, options...)
}
