// Package stack implements the element name stack that tracks where
// the dispatcher currently is in the document. The stack owns the
// rendered path representation: tag names joined by the delimiter,
// with a leading and trailing delimiter, so "/" means the document
// root and "/root/item/" means an open <item> inside <root>.
package stack

// Delimiter separates path segments in the rendered form.
const Delimiter = "/"

type Tags struct {
	names    []string
	rendered string
}

func New() *Tags {
	return &Tags{rendered: Delimiter}
}

// Push appends a tag name and extends the rendered path.
func (s *Tags) Push(name string) {
	s.names = append(s.names, name)
	s.rendered += name + Delimiter
}

// Pop removes the most recently pushed tag name and returns it.
// Popping an empty stack returns the empty string.
func (s *Tags) Pop() string {
	l := len(s.names)
	if l == 0 {
		return ""
	}
	last := s.names[l-1]
	s.names = s.names[:l-1]
	s.rendered = s.rendered[:len(s.rendered)-len(last)-len(Delimiter)]

	if c := cap(s.names); c > 20 && c > len(s.names)*2 {
		s.names = append([]string(nil), s.names...)
	}
	return last
}

func (s *Tags) Len() int {
	return len(s.names)
}

// Path returns the rendered current path.
func (s *Tags) Path() string {
	return s.rendered
}

// Reset empties the stack back to the document root.
func (s *Tags) Reset() {
	s.names = s.names[:0]
	s.rendered = Delimiter
}
