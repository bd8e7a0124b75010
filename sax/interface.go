package sax

// Context is an opaque value that is passed back to every handler
// invocation. The tokenizer does not inspect it; it exists so the
// owner of the handler can thread its own state through the event
// stream.
type Context interface{}

// ParsedElement represents the element reported by a start-tag event.
type ParsedElement interface {
	Name() string
	Attributes() []ParsedAttribute
}

// ParsedAttribute represents a single attribute on a start-tag.
// Attribute order follows document order.
type ParsedAttribute interface {
	Name() string
	Value() string
}

// Handler is the set of callbacks a tokenizer drives while it walks
// an XML stream. Every method is a synchronous, same-goroutine
// invocation.
type Handler interface {
	StartDocument(ctx Context) error
	EndDocument(ctx Context) error
	StartElement(ctx Context, elem ParsedElement) error
	EndElement(ctx Context, name string) error
	Characters(ctx Context, data []byte) error
	CDataBlock(ctx Context, data []byte) error
	Comment(ctx Context, data []byte) error
	ProcessingInstruction(ctx Context, target, data string) error
	Directive(ctx Context, data []byte) error
}
