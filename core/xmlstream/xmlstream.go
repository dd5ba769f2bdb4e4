// Package xmlstream provides a forward-only pull reader over an XML byte
// stream: start/end-element traversal, attribute access, and element text
// extraction. It is the tokenizer driven by the score readers; the
// DOM-level utilities in core/xml are for small side-documents only.
//
// The reader carries a "custom error" state that collaborators (element
// parsers) can set to mark a stream as unrecoverably corrupted, distinct
// from ordinary syntax errors reported by the underlying decoder.
package xmlstream

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Reader is a forward-only XML pull reader.
// It is not safe for concurrent use.
type Reader struct {
	dec     *xml.Decoder
	docName string

	name  string
	attrs []xml.Attr

	err       error
	customErr string
}

// NewReader creates a Reader over the given XML data.
func NewReader(data []byte) *Reader {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// XXE Protection (CWE-611): never expand entities.
	dec.Entity = map[string]string{}
	return &Reader{dec: dec}
}

// SetDocName records a document name used in diagnostics.
func (r *Reader) SetDocName(name string) { r.docName = name }

// DocName returns the document name set via SetDocName.
func (r *Reader) DocName() string { return r.docName }

// ReadNextStartElement advances to the next start element within the
// currently open element. It returns false when the current element ends,
// when the stream is exhausted, or on a decoding error.
func (r *Reader) ReadNextStartElement() bool {
	if r.err != nil || r.customErr != "" {
		return false
	}
	for {
		tok, err := r.dec.Token()
		if err != nil {
			if err != io.EOF {
				r.err = err
			} else {
				r.err = io.EOF
			}
			return false
		}
		switch t := tok.(type) {
		case xml.StartElement:
			r.name = t.Name.Local
			r.attrs = t.Attr
			return true
		case xml.EndElement:
			return false
		}
		// Character data, comments, and processing instructions between
		// elements are not significant at this level.
	}
}

// Name returns the local name of the current element.
func (r *Reader) Name() string { return r.name }

// Attribute returns the value of the named attribute of the current
// element, or "" if absent.
func (r *Reader) Attribute(name string) string {
	for _, a := range r.attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether the current element carries the attribute.
func (r *Reader) HasAttribute(name string) bool {
	for _, a := range r.attrs {
		if a.Name.Local == name {
			return true
		}
	}
	return false
}

// IntAttribute parses the named attribute as a decimal integer,
// returning def when the attribute is absent or malformed.
func (r *Reader) IntAttribute(name string, def int) int {
	v := r.Attribute(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// ReadText consumes the current element and returns its trimmed text
// content. Nested elements are skipped.
func (r *Reader) ReadText() string {
	var sb strings.Builder
	for {
		tok, err := r.dec.Token()
		if err != nil {
			if err != io.EOF {
				r.err = err
			}
			return strings.TrimSpace(sb.String())
		}
		switch tok.(type) {
		case xml.CharData:
			sb.Write([]byte(tok.(xml.CharData)))
		case xml.StartElement:
			if err := r.dec.Skip(); err != nil {
				r.err = err
				return strings.TrimSpace(sb.String())
			}
		case xml.EndElement:
			return strings.TrimSpace(sb.String())
		}
	}
}

// ReadInt consumes the current element and parses its text in the given
// base. A malformed value yields 0.
func (r *Reader) ReadInt(base int) int64 {
	text := r.ReadText()
	n, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return 0
	}
	return n
}

// SkipCurrentElement consumes the current element and all of its children.
func (r *Reader) SkipCurrentElement() {
	if r.err != nil {
		return
	}
	if err := r.dec.Skip(); err != nil && err != io.EOF {
		r.err = err
	}
}

// Unknown skips an unrecognized element. Unknown elements are not errors;
// files written by newer versions may carry fields this version ignores.
func (r *Reader) Unknown() {
	r.SkipCurrentElement()
}

// SetCustomError marks the stream as failed with a collaborator-supplied
// diagnostic, distinct from decoder syntax errors.
func (r *Reader) SetCustomError(msg string) {
	r.customErr = msg
}

// CustomError reports whether a collaborator marked the stream as failed.
func (r *Reader) CustomError() bool { return r.customErr != "" }

// Err returns the underlying decoder error, if any. io.EOF is reported
// as nil; running off the end of a document is not itself an error.
func (r *Reader) Err() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}

// ErrorString returns the diagnostic text for the stream: the custom
// error if one was set, otherwise the decoder's error text.
func (r *Reader) ErrorString() string {
	if r.customErr != "" {
		return r.customErr
	}
	if r.err != nil && r.err != io.EOF {
		return r.err.Error()
	}
	if r.err == io.EOF {
		return "unexpected end of document"
	}
	return ""
}
