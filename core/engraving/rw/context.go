package rw

import (
	"github.com/cantusworks/cantus/core/engraving"
)

// CompatSettings accumulates non-fatal compatibility findings made while
// reading a legacy file. The loader moves them out to the caller, which
// may surface them as a migration prompt.
type CompatSettings struct {
	// SourceVersion is the format version the file declared.
	SourceVersion int
	// StyleMigrated reports that a generation-matched style baseline was
	// installed before the document's own deltas were replayed.
	StyleMigrated bool
	// Diagnostics are human-readable compatibility notes.
	Diagnostics []string
}

// ReadContext is the per-document mutable state of one load: the
// document being populated, the link table shared across the master and
// its parts, version-error policy, and accumulated compatibility
// settings. One context exists per document; a part's context is seeded
// from the master's so cross-document identities resolve.
type ReadContext struct {
	score              *engraving.Score
	links              *engraving.LinkTable
	ignoreVersionError bool
	settings           CompatSettings
	tracks             engraving.TracksMap
}

// NewReadContext creates a context bound to the document being read.
func NewReadContext(score *engraving.Score) *ReadContext {
	return &ReadContext{
		score:  score,
		links:  engraving.NewLinkTable(),
		tracks: make(engraving.TracksMap),
	}
}

// Score returns the document this context populates.
func (c *ReadContext) Score() *engraving.Score { return c.score }

// Links returns the link table used to resolve cross-document ids.
func (c *ReadContext) Links() *engraving.LinkTable { return c.links }

// InitLinks makes this context share the master context's link table, so
// an id stored in either document resolves to one group.
func (c *ReadContext) InitLinks(master *ReadContext) {
	c.links = master.links
}

// IgnoreVersionError reports whether version-acceptance errors are
// suppressed for this load.
func (c *ReadContext) IgnoreVersionError() bool { return c.ignoreVersionError }

// SetIgnoreVersionError sets the version-error policy.
func (c *ReadContext) SetIgnoreVersionError(v bool) { c.ignoreVersionError = v }

// AddDiagnostic records a compatibility note.
func (c *ReadContext) AddDiagnostic(msg string) {
	c.settings.Diagnostics = append(c.settings.Diagnostics, msg)
}

// TakeSettings moves the accumulated compatibility settings out of the
// context. The context's own copy is reset.
func (c *ReadContext) TakeSettings() CompatSettings {
	s := c.settings
	c.settings = CompatSettings{}
	return s
}

// Tracks returns the source-to-destination track mapping observed while
// parsing the document's content.
func (c *ReadContext) Tracks() engraving.TracksMap { return c.tracks }

// MapTrack records one source-to-destination track correspondence.
func (c *ReadContext) MapTrack(src, dst int) { c.tracks[src] = dst }
