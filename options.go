package xmlpick

import (
	"io"

	"github.com/lestrrat-go/option"
)

type Option = option.Interface

type identChunkSize struct{}
type identCharsetReader struct{}

// ParseOption is an option accepted by the parse methods.
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// CharsetReaderFunc converts a source declaring a non-UTF-8 charset
// into UTF-8. It has the same shape as xml.Decoder.CharsetReader.
type CharsetReaderFunc func(charset string, input io.Reader) (io.Reader, error)

// WithChunkSize specifies how many bytes may be read from a stream
// source per read. Only meaningful for ParseReader; buffer parses
// always feed the whole input in one go.
func WithChunkSize(v int) ParseOption {
	return &parseOption{option.New(identChunkSize{}, v)}
}

// WithCharsetReader specifies the charset conversion applied when a
// document declares a non-UTF-8 encoding.
func WithCharsetReader(v CharsetReaderFunc) ParseOption {
	return &parseOption{option.New(identCharsetReader{}, v)}
}
