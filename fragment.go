package xmlpick

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/lestrrat-go/xmlpick/sax"
)

// openTag reconstructs start-tag markup. Tag and attribute names are
// lower-cased; attribute values arrive unescaped from the tokenizer
// and are re-escaped so values containing quotes or markup
// characters survive the round trip through the materializer.
func openTag(name string, attrs []sax.ParsedAttribute) []byte {
	buf := bytes.Buffer{}
	buf.WriteByte('<')
	buf.WriteString(name)
	for _, attr := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(strings.ToLower(attr.Name()))
		buf.WriteString(`="`)
		_ = xml.EscapeText(&buf, []byte(attr.Value()))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
	return buf.Bytes()
}

func closeTag(name string) []byte {
	buf := bytes.Buffer{}
	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
	return buf.Bytes()
}

// escapedText re-escapes character data that the tokenizer has
// already resolved, so the accumulated markup stays well formed.
func escapedText(data []byte) []byte {
	buf := bytes.Buffer{}
	_ = xml.EscapeText(&buf, data)
	return buf.Bytes()
}

// cdataSection wraps data in a CDATA section, splitting around any
// embedded "]]>" terminator.
func cdataSection(data []byte) []byte {
	buf := bytes.Buffer{}
	buf.WriteString("<![CDATA[")
	for {
		i := bytes.Index(data, []byte("]]>"))
		if i < 0 {
			buf.Write(data)
			break
		}
		buf.Write(data[:i+2])
		buf.WriteString("]]><![CDATA[")
		data = data[i+2:]
	}
	buf.WriteString("]]>")
	return buf.Bytes()
}

func commentSection(data []byte) []byte {
	buf := bytes.Buffer{}
	buf.WriteString("<!--")
	buf.Write(data)
	buf.WriteString("-->")
	return buf.Bytes()
}

func procInst(target, data string) []byte {
	buf := bytes.Buffer{}
	buf.WriteString("<?")
	buf.WriteString(target)
	if data != "" {
		buf.WriteByte(' ')
		buf.WriteString(data)
	}
	buf.WriteString("?>")
	return buf.Bytes()
}

func directiveSection(data []byte) []byte {
	buf := bytes.Buffer{}
	buf.WriteString("<!")
	buf.Write(data)
	buf.WriteByte('>')
	return buf.Bytes()
}
