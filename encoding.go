package xmlpick

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultCharsetReader resolves declared charsets through the WHATWG
// encoding index, so documents declaring e.g. iso-8859-1 or
// shift_jis decode without caller setup. Override per parse with
// WithCharsetReader.
func DefaultCharsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, errors.Wrapf(err, `unsupported charset %q`, charset)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
