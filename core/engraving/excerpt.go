package engraving

import "sort"

// TracksMap records how instrument tracks of a part document correspond
// to tracks of the master: source track index -> destination track index.
type TracksMap map[int]int

// Clone returns a copy of the mapping.
func (m TracksMap) Clone() TracksMap {
	out := make(TracksMap, len(m))
	for src, dst := range m {
		out[src] = dst
	}
	return out
}

// Sources returns the source track indices, sorted.
func (m TracksMap) Sources() []int {
	srcs := make([]int, 0, len(m))
	for src := range m {
		srcs = append(srcs, src)
	}
	sort.Ints(srcs)
	return srcs
}

// Equal reports whether two mappings are identical.
func (m TracksMap) Equal(other TracksMap) bool {
	if len(m) != len(other) {
		return false
	}
	for src, dst := range m {
		if o, ok := other[src]; !ok || o != dst {
			return false
		}
	}
	return true
}

// Excerpt names a part document extracted from a master score and
// records how the part's tracks map onto the master's.
type Excerpt struct {
	master *MasterScore
	score  *Score
	name   string
	tracks TracksMap
}

// NewExcerpt creates an excerpt bound to its master.
func NewExcerpt(master *MasterScore) *Excerpt {
	return &Excerpt{master: master}
}

// Master returns the owning master score.
func (e *Excerpt) Master() *MasterScore { return e.master }

// ExcerptScore returns the part document.
func (e *Excerpt) ExcerptScore() *Score { return e.score }

// SetExcerptScore attaches the part document.
func (e *Excerpt) SetExcerptScore(s *Score) { e.score = s }

// Name returns the excerpt's display name.
func (e *Excerpt) Name() string { return e.name }

// SetName sets the excerpt's display name.
func (e *Excerpt) SetName(name string) { e.name = name }

// Tracks returns the source-to-destination track mapping.
func (e *Excerpt) Tracks() TracksMap { return e.tracks }

// SetTracks copies the given mapping into the excerpt.
func (e *Excerpt) SetTracks(m TracksMap) { e.tracks = m.Clone() }
