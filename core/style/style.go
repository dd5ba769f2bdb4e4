// Package style holds a document's formatting defaults: an open key/value
// store replayed from a style sub-document, layered over a baseline preset
// matched to the format generation the document was saved with.
package style

import (
	"sort"

	"github.com/cantusworks/cantus/core/errors"
	"github.com/cantusworks/cantus/core/xml"
)

// Style is a key-value store of formatting defaults. Each master score
// and each part document owns its own Style.
type Style struct {
	values map[string]string
}

// New returns an empty Style.
func New() *Style {
	return &Style{values: make(map[string]string)}
}

// Set stores a value, replacing any previous one.
func (s *Style) Set(key, value string) {
	s.values[key] = value
}

// Get returns the value for key, or "" if unset.
func (s *Style) Get(key string) string {
	return s.values[key]
}

// Has reports whether key is set.
func (s *Style) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of set keys.
func (s *Style) Len() int { return len(s.values) }

// Keys returns the set keys, sorted.
func (s *Style) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two styles hold the same key/value pairs.
func (s *Style) Equal(other *Style) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for k, v := range s.values {
		if other.values[k] != v {
			return false
		}
	}
	return true
}

// Read replays a style sub-document onto s. The document's values layer
// over whatever is already set; keys absent from the document are left
// alone. Accepted shapes are a bare <Style> root or a <cantus> root
// containing one <Style> child (the form written into packs).
func (s *Style) Read(data []byte) error {
	doc, err := xml.Parse(data)
	if err != nil {
		return errors.NewParse("style", "", err.Error())
	}
	root := doc.Root()
	if root == nil {
		return errors.NewParse("style", "", "document has no root element")
	}

	styleNode := root
	if root.Name() != "Style" {
		node, err := doc.XPathFirst("//Style")
		if err != nil {
			return errors.NewParse("style", "", err.Error())
		}
		if node == nil {
			return errors.NewParse("style", "", "no Style element found")
		}
		styleNode = node
	}

	for _, child := range styleNode.Children() {
		s.Set(child.Name(), child.Text())
	}
	return nil
}
