package xmlpick

import (
	"context"
	"encoding/xml"
	"io"

	"github.com/lestrrat-go/xmlpick/sax"
	"github.com/pkg/errors"
)

// tokenizer drives an encoding/xml decoder and translates its raw
// tokens into sax.Handler events. Raw tokens are used deliberately:
// namespace prefixes stay verbatim in tag and attribute names, which
// is what plain path matching and markup reconstruction need. The
// price is that the decoder no longer verifies element nesting, so
// the tokenizer keeps its own stack of open names and reports
// unbalanced markup itself.
type tokenizer struct {
	dec  *xml.Decoder
	src  *feeder
	sax  sax.Handler
	user sax.Context
	open []string
}

func newTokenizer(src *feeder, h sax.Handler, user sax.Context, charset CharsetReaderFunc) *tokenizer {
	dec := xml.NewDecoder(src)
	dec.CharsetReader = charset
	return &tokenizer{
		dec:  dec,
		src:  src,
		sax:  h,
		user: user,
	}
}

// Run pumps tokens until end of input, a malformed-input failure, or
// a handler requesting a stop via sax.ErrStopParsing.
func (t *tokenizer) Run(ctx context.Context) error {
	if err := t.emit(t.sax.StartDocument(t.user)); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tok, err := t.dec.RawToken()
		if err == io.EOF {
			if n := len(t.open); n > 0 {
				return &ErrMalformedInput{
					Err:        errors.Errorf(`unexpected end of input: element <%s> is not closed`, t.open[n-1]),
					LineNumber: t.src.Line(),
				}
			}
			return t.emit(t.sax.EndDocument(t.user))
		}
		if err != nil {
			return t.malformed(err)
		}

		switch v := tok.(type) {
		case xml.StartElement:
			t.open = append(t.open, rawName(v.Name))
			err = t.sax.StartElement(t.user, parsedElement{el: v})
		case xml.EndElement:
			name := rawName(v.Name)
			if n := len(t.open); n == 0 || t.open[n-1] != name {
				return &ErrMalformedInput{
					Err:        errors.Errorf(`unexpected end tag </%s>`, name),
					LineNumber: t.src.Line(),
				}
			}
			t.open = t.open[:len(t.open)-1]
			err = t.sax.EndElement(t.user, name)
		case xml.CharData:
			err = t.sax.Characters(t.user, []byte(v))
		case xml.Comment:
			err = t.sax.Comment(t.user, []byte(v))
		case xml.ProcInst:
			err = t.sax.ProcessingInstruction(t.user, v.Target, string(v.Inst))
		case xml.Directive:
			err = t.sax.Directive(t.user, []byte(v))
		}

		if err := t.emit(err); err != nil {
			if errors.Is(err, sax.ErrStopParsing) {
				return nil
			}
			return err
		}
	}
}

// emit filters handler results: an unspecified handler is not an
// error for the tokenizer.
func (t *tokenizer) emit(err error) error {
	if err == nil || errors.Is(err, sax.ErrHandlerUnspecified) {
		return nil
	}
	return err
}

func (t *tokenizer) malformed(err error) error {
	var serr *xml.SyntaxError
	if errors.As(err, &serr) {
		return &ErrMalformedInput{Err: err, LineNumber: serr.Line}
	}
	if rerr := t.src.Err(); rerr != nil && rerr != io.EOF {
		return errors.Wrap(rerr, `failed to read from source`)
	}
	return &ErrMalformedInput{Err: err, LineNumber: t.src.Line()}
}

// rawName renders an xml.Name the way it appeared in the document.
// With RawToken the Space field holds the literal prefix.
func rawName(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}

type parsedElement struct {
	el xml.StartElement
}

func (e parsedElement) Name() string {
	return rawName(e.el.Name)
}

func (e parsedElement) Attributes() []sax.ParsedAttribute {
	if len(e.el.Attr) == 0 {
		return nil
	}
	attrs := make([]sax.ParsedAttribute, 0, len(e.el.Attr))
	for _, a := range e.el.Attr {
		attrs = append(attrs, parsedAttribute{attr: a})
	}
	return attrs
}

type parsedAttribute struct {
	attr xml.Attr
}

func (a parsedAttribute) Name() string {
	return rawName(a.attr.Name)
}

func (a parsedAttribute) Value() string {
	return a.attr.Value
}
