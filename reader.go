package xmlpick

import (
	"bytes"
	"strings"

	"github.com/beevik/etree"
	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/xmlpick/internal/orderedmap"
	"github.com/lestrrat-go/xmlpick/internal/stack"
	"github.com/lestrrat-go/xmlpick/sax"
	"github.com/pkg/errors"
)

// Callback receives the dispatcher that matched an element together
// with the materialized subtree for the path that just closed.
// Callbacks run synchronously on the goroutine that called the parse
// method; a callback may call r.StopParsing() to end the parse
// early, and stopping is its only feedback channel.
type Callback func(r *Reader, elem *etree.Element)

// Reader is the path-addressed dispatcher. Registered callbacks
// persist across parse calls; everything else (current path,
// accumulators, the continue flag) is reset when a parse starts.
//
// A Reader is not safe for concurrent use: one parse must complete
// or abort before the next one starts. Independent Reader instances
// do not share state.
type Reader struct {
	callbacks *orderedmap.Map[string, []Callback]
	tags      *stack.Tags
	accum     map[string]*bytes.Buffer
	keepGoing bool
}

func New() *Reader {
	return &Reader{
		callbacks: orderedmap.New[string, []Callback](),
		tags:      stack.New(),
		accum:     make(map[string]*bytes.Buffer),
		keepGoing: true,
	}
}

// RegisterCallback appends cb to the callback list for path. The
// path is normalized to lower case with a leading and trailing
// delimiter, so "/Foo/Bar" and "/foo/bar/" register identically.
// Callbacks for the same path fire in registration order. Callbacks
// registered while a parse is in progress are not guaranteed to
// observe elements of that parse.
func (r *Reader) RegisterCallback(path string, cb Callback) error {
	if cb == nil {
		return ErrNilCallback
	}
	p, err := normalizePath(path)
	if err != nil {
		return err
	}
	list, _ := r.callbacks.Get(p)
	r.callbacks.Set(p, append(list, cb))
	return nil
}

// Paths returns the registered paths in normalized form, ordered by
// first registration.
func (r *Reader) Paths() []string {
	paths := make([]string, 0, r.callbacks.Len())
	for p := range r.callbacks.Range() {
		paths = append(paths, p)
	}
	return paths
}

// StopParsing tells the dispatcher to stop as soon as safely
// possible: the callback list currently unwinding finishes its
// element, then no further buffering, dispatch, or chunk reads
// happen. Safe to call from within a callback or between parses.
// Stopping early is not an error.
func (r *Reader) StopParsing() {
	r.keepGoing = false
}

func (r *Reader) reset() {
	r.tags.Reset()
	r.accum = make(map[string]*bytes.Buffer)
	r.keepGoing = true
}

func normalizePath(path string) (string, error) {
	p := strings.Trim(strings.ToLower(path), stack.Delimiter)
	if p == "" {
		return "", ErrInvalidPath
	}
	return stack.Delimiter + p + stack.Delimiter, nil
}

// saxEvents wires the dispatcher's event handlers into a sax.Events
// value for the tokenizer to drive.
func (r *Reader) saxEvents() *sax.Events {
	h := sax.New()
	h.StartElementHandler = func(_ sax.Context, elem sax.ParsedElement) error {
		return r.startElement(elem)
	}
	h.EndElementHandler = func(_ sax.Context, name string) error {
		return r.endElement(name)
	}
	h.CharactersHandler = func(_ sax.Context, data []byte) error {
		return r.characters(data)
	}
	h.CDataBlockHandler = func(_ sax.Context, data []byte) error {
		return r.cdataBlock(data)
	}
	h.CommentHandler = func(_ sax.Context, data []byte) error {
		return r.comment(data)
	}
	h.ProcessingInstructionHandler = func(_ sax.Context, target, data string) error {
		return r.processingInstruction(target, data)
	}
	h.DirectiveHandler = func(_ sax.Context, data []byte) error {
		return r.directive(data)
	}
	return h
}

func (r *Reader) startElement(elem sax.ParsedElement) error {
	if !r.keepGoing {
		return sax.ErrStopParsing
	}

	name := strings.ToLower(elem.Name())
	r.tags.Push(name)

	cur := r.tags.Path()
	if _, registered := r.callbacks.Get(cur); registered {
		if _, open := r.accum[cur]; !open {
			r.accum[cur] = &bytes.Buffer{}
		}
	}

	r.buffer(openTag(name, elem.Attributes()))
	return nil
}

func (r *Reader) endElement(name string) error {
	if !r.keepGoing {
		return sax.ErrStopParsing
	}

	// The closing markup must land in the accumulator being closed,
	// so buffer it before the path is popped.
	r.buffer(closeTag(strings.ToLower(name)))

	cur := r.tags.Path()
	buf, open := r.accum[cur]
	if open {
		err := r.dispatch(cur, buf.Bytes())
		delete(r.accum, cur)
		if err != nil {
			r.tags.Pop()
			return err
		}
	}
	r.tags.Pop()

	if !r.keepGoing {
		return sax.ErrStopParsing
	}
	return nil
}

func (r *Reader) dispatch(path string, markup []byte) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	cbs, ok := r.callbacks.Get(path)
	if !ok {
		return nil
	}

	elem, err := materialize(markup)
	if err != nil {
		return errors.Wrap(err, `failed to materialize captured markup`)
	}

	for _, cb := range cbs {
		cb(r, elem)
		if !r.keepGoing {
			break
		}
	}
	return nil
}

func (r *Reader) characters(data []byte) error {
	if !r.keepGoing {
		return sax.ErrStopParsing
	}
	if len(r.accum) == 0 {
		return nil
	}
	r.buffer(escapedText(data))
	return nil
}

func (r *Reader) cdataBlock(data []byte) error {
	if !r.keepGoing {
		return sax.ErrStopParsing
	}
	if len(r.accum) == 0 {
		return nil
	}
	r.buffer(cdataSection(data))
	return nil
}

func (r *Reader) comment(data []byte) error {
	if !r.keepGoing {
		return sax.ErrStopParsing
	}
	if len(r.accum) == 0 {
		return nil
	}
	r.buffer(commentSection(data))
	return nil
}

func (r *Reader) processingInstruction(target, data string) error {
	if !r.keepGoing {
		return sax.ErrStopParsing
	}
	if len(r.accum) == 0 {
		return nil
	}
	r.buffer(procInst(target, data))
	return nil
}

func (r *Reader) directive(data []byte) error {
	if !r.keepGoing {
		return sax.ErrStopParsing
	}
	if len(r.accum) == 0 {
		return nil
	}
	r.buffer(directiveSection(data))
	return nil
}

// buffer appends frag to every accumulator whose path is an
// ancestor-or-self of the live current path. Accumulators only exist
// for registered paths that are currently open, so a trailing
// delimiter on every key makes the prefix test segment-safe.
func (r *Reader) buffer(frag []byte) {
	cur := r.tags.Path()
	for path, buf := range r.accum {
		if strings.HasPrefix(cur, path) {
			buf.Write(frag)
		}
	}
}
