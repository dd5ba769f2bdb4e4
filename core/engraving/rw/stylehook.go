package rw

import (
	"github.com/cantusworks/cantus/core/engraving"
)

// Global switches. TestMode forces the third-generation read path and
// baseline injection so fixtures compare stably across generations;
// SkipImages leaves pack images out of the process image store.
var (
	TestMode   bool
	SkipImages bool
)

// StyleHook stages the version-matched default style for a document. The
// dispatcher invokes it after the declared version is known but before
// any element parsing: legacy files store only the user's style deltas,
// so the baseline that generation shipped with must be in place first.
type StyleHook struct {
	master *engraving.MasterScore
}

// NewStyleHook binds a hook to the master document about to be read.
func NewStyleHook(master *engraving.MasterScore) *StyleHook {
	return &StyleHook{master: master}
}

// Setup installs the baseline matching the document's declared version.
func (h *StyleHook) Setup() {
	h.master.Style().ApplyDefaults(h.master.Version())
}

// SetupDefaultStyle installs the current-generation baseline on an
// arbitrary document. Part documents always take this baseline; their
// own stored style is replayed over it.
func SetupDefaultStyle(score *engraving.Score) {
	score.Style().ApplyDefaults(CurrentVersion)
}
