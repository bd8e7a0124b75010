package sax

// StartDocumentFunc defines the function type for Events.StartDocumentHandler
type StartDocumentFunc func(ctx Context) error

// EndDocumentFunc defines the function type for Events.EndDocumentHandler
type EndDocumentFunc func(ctx Context) error

// StartElementFunc defines the function type for Events.StartElementHandler
type StartElementFunc func(ctx Context, elem ParsedElement) error

// EndElementFunc defines the function type for Events.EndElementHandler
type EndElementFunc func(ctx Context, name string) error

// CharactersFunc defines the function type for Events.CharactersHandler
type CharactersFunc func(ctx Context, data []byte) error

// CDataBlockFunc defines the function type for Events.CDataBlockHandler
type CDataBlockFunc func(ctx Context, data []byte) error

// CommentFunc defines the function type for Events.CommentHandler
type CommentFunc func(ctx Context, data []byte) error

// ProcessingInstructionFunc defines the function type for Events.ProcessingInstructionHandler
type ProcessingInstructionFunc func(ctx Context, target, data string) error

// DirectiveFunc defines the function type for Events.DirectiveHandler
type DirectiveFunc func(ctx Context, data []byte) error
