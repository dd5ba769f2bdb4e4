// Package engraving defines the in-memory document graph produced by
// loading a score pack: a master score owning its style, chord list,
// audio payload and element tree, plus derived part documents (excerpts)
// linked back to the master through shared link groups.
package engraving

import (
	"github.com/google/uuid"

	"github.com/cantusworks/cantus/core/chords"
	"github.com/cantusworks/cantus/core/style"
)

// Score is one notation document: either a master score or a part
// document derived from one. A part owns its own style and chord list;
// it never shares the master's objects, only link identities.
type Score struct {
	id        uuid.UUID
	master    *MasterScore
	name      string
	style     *style.Style
	chordList *chords.ChordList
	parts     []*Part
	measures  []*Measure
	audio     *Audio
}

func newScore(master *MasterScore) *Score {
	return &Score{
		id:        uuid.New(),
		master:    master,
		style:     style.New(),
		chordList: chords.New(),
	}
}

// ID returns the document's process-unique identity.
func (s *Score) ID() uuid.UUID { return s.id }

// Master returns the owning master score. A master score returns itself.
func (s *Score) Master() *MasterScore { return s.master }

// Name returns the document name used in diagnostics.
func (s *Score) Name() string { return s.name }

// SetName sets the document name used in diagnostics.
func (s *Score) SetName(name string) { s.name = name }

// Style returns the document's style object.
func (s *Score) Style() *style.Style { return s.style }

// ChordList returns the document's chord list.
func (s *Score) ChordList() *chords.ChordList { return s.chordList }

// CheckChordList guarantees a usable chord list: if the document has
// none, the built-in default list is installed.
func (s *Score) CheckChordList() {
	if s.chordList == nil || s.chordList.IsEmpty() {
		s.chordList = chords.Default()
	}
}

// AddPart appends a part to the document.
func (s *Score) AddPart(p *Part) { s.parts = append(s.parts, p) }

// Parts returns the document's parts in document order.
func (s *Score) Parts() []*Part { return s.parts }

// AddMeasure appends a measure to the document's timeline.
func (s *Score) AddMeasure(m *Measure) {
	m.Index = len(s.measures)
	s.measures = append(s.measures, m)
}

// Measures returns the document's timeline in order.
func (s *Score) Measures() []*Measure { return s.measures }

// Audio returns the document's audio payload, or nil when the document
// declares none.
func (s *Score) Audio() *Audio { return s.audio }

// SetAudio attaches an audio payload declaration to the document.
func (s *Score) SetAudio(a *Audio) { s.audio = a }

// NTracks returns the number of tracks implied by the document's parts
// (one track per staff).
func (s *Score) NTracks() int {
	n := 0
	for _, p := range s.parts {
		n += len(p.Staves)
	}
	return n
}

// MasterScore is the root document of a loaded pack.
type MasterScore struct {
	Score
	version         int
	versionSet      bool
	appVersion      string
	appRevision     int64
	filePath        string
	excerpts        []*Excerpt
	excerptsChanged bool
	autosaveDirty   bool
}

// NewMasterScore creates an empty master score.
func NewMasterScore() *MasterScore {
	m := &MasterScore{}
	m.Score = *newScore(nil)
	m.Score.master = m
	return m
}

// NewPartScore creates a fresh part document owned by this master.
func (m *MasterScore) NewPartScore() *Score {
	return newScore(m)
}

// Version returns the declared format version (major*100+minor), or 0
// before the main score stream has been read.
func (m *MasterScore) Version() int { return m.version }

// SetVersion records the declared format version. The version is
// immutable once set; later calls are ignored.
func (m *MasterScore) SetVersion(v int) {
	if m.versionSet {
		return
	}
	m.version = v
	m.versionSet = true
}

// AppVersion returns the program-version string stored in the file.
func (m *MasterScore) AppVersion() string { return m.appVersion }

// SetAppVersion stores the program-version string verbatim.
func (m *MasterScore) SetAppVersion(v string) { m.appVersion = v }

// AppRevision returns the program revision stored in the file.
func (m *MasterScore) AppRevision() int64 { return m.appRevision }

// SetAppRevision stores the program revision.
func (m *MasterScore) SetAppRevision(r int64) { m.appRevision = r }

// FilePath returns the path the master was loaded from.
func (m *MasterScore) FilePath() string { return m.filePath }

// SetFilePath records the path the master was loaded from.
func (m *MasterScore) SetFilePath(p string) { m.filePath = p }

// AddExcerpt appends an excerpt to the master.
func (m *MasterScore) AddExcerpt(e *Excerpt) { m.excerpts = append(m.excerpts, e) }

// Excerpts returns the master's excerpts in load order.
func (m *MasterScore) Excerpts() []*Excerpt { return m.excerpts }

// ExcerptsChanged reports whether the excerpt set diverged from the
// saved state.
func (m *MasterScore) ExcerptsChanged() bool { return m.excerptsChanged }

// SetExcerptsChanged sets the excerpt-divergence flag.
func (m *MasterScore) SetExcerptsChanged(v bool) { m.excerptsChanged = v }

// AutosaveDirty reports whether the document needs an autosave pass.
func (m *MasterScore) AutosaveDirty() bool { return m.autosaveDirty }

// SetAutosaveDirty sets the autosave flag.
func (m *MasterScore) SetAutosaveDirty(v bool) { m.autosaveDirty = v }
