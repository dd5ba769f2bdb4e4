// Package chords holds the chord symbol list of a score: the set of
// chord-name descriptions available for harmony rendering. Packs may ship
// their own list; when a current-generation file lacks one, the built-in
// default list is used so harmony elements always resolve.
package chords

import (
	"github.com/cantusworks/cantus/core/errors"
	"github.com/cantusworks/cantus/core/xml"
)

// Entry describes one chord symbol.
type Entry struct {
	ID   int
	Name string
}

// ChordList is an ordered chord symbol table.
type ChordList struct {
	entries []Entry
	byID    map[int]int // id -> index into entries
}

// New returns an empty ChordList.
func New() *ChordList {
	return &ChordList{byID: make(map[int]int)}
}

// Default returns the built-in chord list shipped with the application.
func Default() *ChordList {
	cl := New()
	for _, e := range builtin {
		cl.Add(e)
	}
	return cl
}

var builtin = []Entry{
	{ID: 1, Name: "maj"},
	{ID: 2, Name: "m"},
	{ID: 3, Name: "7"},
	{ID: 4, Name: "maj7"},
	{ID: 5, Name: "m7"},
	{ID: 6, Name: "dim"},
	{ID: 7, Name: "aug"},
	{ID: 8, Name: "sus2"},
	{ID: 9, Name: "sus4"},
	{ID: 10, Name: "6"},
	{ID: 11, Name: "m6"},
	{ID: 12, Name: "9"},
}

// Add appends an entry, replacing any previous entry with the same id.
func (c *ChordList) Add(e Entry) {
	if idx, ok := c.byID[e.ID]; ok {
		c.entries[idx] = e
		return
	}
	c.byID[e.ID] = len(c.entries)
	c.entries = append(c.entries, e)
}

// Get returns the entry with the given id.
func (c *ChordList) Get(id int) (Entry, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// Entries returns the entries in document order.
func (c *ChordList) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// IsEmpty reports whether the list holds no entries.
func (c *ChordList) IsEmpty() bool { return len(c.entries) == 0 }

// Len returns the number of entries.
func (c *ChordList) Len() int { return len(c.entries) }

// Read replays a chord-list sub-document onto c. Existing entries with
// matching ids are replaced; everything else is kept.
func (c *ChordList) Read(data []byte) error {
	doc, err := xml.Parse(data)
	if err != nil {
		return errors.NewParse("chord list", "", err.Error())
	}
	root := doc.Root()
	if root == nil || root.Name() != "ChordList" {
		return errors.NewParse("chord list", "", "no ChordList root element")
	}

	for _, node := range root.Children() {
		if node.Name() != "chord" {
			continue
		}
		id := 0
		if v := node.Attr("id"); v != "" {
			id = atoiOrZero(v)
		}
		if id == 0 {
			continue
		}
		c.Add(Entry{ID: id, Name: node.Attr("name")})
	}
	return nil
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
