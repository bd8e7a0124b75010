package sax

import "errors"

// ErrHandlerUnspecified is returned when there is no handler
// registered for that particular event callback. This is not
// a fatal error per se, and can be ignored if the implementation
// chooses to do so.
var ErrHandlerUnspecified = errors.New("handler unspecified")

// ErrStopParsing is returned by a handler to tell the tokenizer to
// stop delivering events. The tokenizer treats it as a clean
// termination, not a failure.
var ErrStopParsing = errors.New("stop parsing")

// Events is the callback based Handler implementation. Unset
// callbacks report ErrHandlerUnspecified.
type Events struct {
	StartDocumentHandler         StartDocumentFunc
	EndDocumentHandler           EndDocumentFunc
	StartElementHandler          StartElementFunc
	EndElementHandler            EndElementFunc
	CharactersHandler            CharactersFunc
	CDataBlockHandler            CDataBlockFunc
	CommentHandler               CommentFunc
	ProcessingInstructionHandler ProcessingInstructionFunc
	DirectiveHandler             DirectiveFunc
}

// New creates a new instance of Events. All callbacks are
// uninitialized.
func New() *Events {
	return &Events{}
}

func (s *Events) StartDocument(ctx Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return ErrHandlerUnspecified
}

func (s *Events) EndDocument(ctx Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return ErrHandlerUnspecified
}

func (s *Events) StartElement(ctx Context, elem ParsedElement) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, elem)
	}
	return ErrHandlerUnspecified
}

func (s *Events) EndElement(ctx Context, name string) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, name)
	}
	return ErrHandlerUnspecified
}

func (s *Events) Characters(ctx Context, data []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, data)
	}
	return ErrHandlerUnspecified
}

func (s *Events) CDataBlock(ctx Context, data []byte) error {
	if h := s.CDataBlockHandler; h != nil {
		return h(ctx, data)
	}
	return ErrHandlerUnspecified
}

func (s *Events) Comment(ctx Context, data []byte) error {
	if h := s.CommentHandler; h != nil {
		return h(ctx, data)
	}
	return ErrHandlerUnspecified
}

func (s *Events) ProcessingInstruction(ctx Context, target, data string) error {
	if h := s.ProcessingInstructionHandler; h != nil {
		return h(ctx, target, data)
	}
	return ErrHandlerUnspecified
}

func (s *Events) Directive(ctx Context, data []byte) error {
	if h := s.DirectiveHandler; h != nil {
		return h(ctx, data)
	}
	return ErrHandlerUnspecified
}
