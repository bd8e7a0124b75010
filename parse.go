package xmlpick

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
)

// DefaultChunkSize is the per-read byte limit applied to stream
// sources when WithChunkSize is not given.
const DefaultChunkSize = 1024

// Parse parses a complete in-memory document, feeding it to the
// tokenizer in one final chunk. Dispatcher state is reset first;
// registered callbacks are kept.
func (r *Reader) Parse(ctx context.Context, data []byte, options ...ParseOption) error {
	if data == nil {
		return ErrNilSource
	}
	_, charset, err := resolveParseOptions(options)
	if err != nil {
		return err
	}
	size := len(data)
	if size < 1 {
		size = 1
	}
	return r.parse(ctx, bytes.NewReader(data), size, charset)
}

// ParseString is like Parse, but takes a string.
func (r *Reader) ParseString(ctx context.Context, s string, options ...ParseOption) error {
	_, charset, err := resolveParseOptions(options)
	if err != nil {
		return err
	}
	size := len(s)
	if size < 1 {
		size = 1
	}
	return r.parse(ctx, strings.NewReader(s), size, charset)
}

// ParseReader parses a stream source in chunk-size-bounded reads.
// Seekable sources are rewound to the start first (best effort:
// pipes and other unseekable files are read from their current
// position). Once a callback stops the parse, no further chunks are
// read even if the stream has more data.
func (r *Reader) ParseReader(ctx context.Context, src io.Reader, options ...ParseOption) error {
	if src == nil {
		return ErrNilSource
	}
	size, charset, err := resolveParseOptions(options)
	if err != nil {
		return err
	}
	if s, ok := src.(io.Seeker); ok {
		_, _ = s.Seek(0, io.SeekStart)
	}
	return r.parse(ctx, src, size, charset)
}

func (r *Reader) parse(ctx context.Context, src io.Reader, chunkSize int, charset CharsetReaderFunc) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if ctx == nil {
		ctx = context.Background()
	}

	r.reset()

	f := newFeeder(src, chunkSize, r)
	t := newTokenizer(f, r.saxEvents(), nil, charset)
	if err := t.Run(ctx); err != nil {
		var merr *ErrMalformedInput
		if errors.As(err, &merr) {
			return err
		}
		return errors.Wrap(err, `failed to parse input`)
	}
	return nil
}

func resolveParseOptions(options []ParseOption) (int, CharsetReaderFunc, error) {
	size := DefaultChunkSize
	charset := CharsetReaderFunc(DefaultCharsetReader)
	for _, o := range options {
		switch o.Ident() {
		case identChunkSize{}:
			size = o.Value().(int)
		case identCharsetReader{}:
			charset = o.Value().(CharsetReaderFunc)
		}
	}
	if size < 1 {
		return 0, nil, ErrInvalidChunkSize
	}
	return size, charset, nil
}
