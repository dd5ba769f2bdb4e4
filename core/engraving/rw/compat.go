package rw

// Helpers shared by the legacy readers.

import (
	"github.com/cantusworks/cantus/core/engraving"
	"github.com/cantusworks/cantus/core/xmlstream"
)

// readStyleDeltas replays an in-body <Style> element onto the score's
// style object. Legacy generations stored the user's changed values
// inside the score document itself.
func readStyleDeltas(score *engraving.Score, r *xmlstream.Reader) {
	for r.ReadNextStartElement() {
		score.Style().Set(r.Name(), r.ReadText())
	}
}

// classifyElementFailure converts an element reader's failure into the
// load error taxonomy: an explicit custom-error state means the stream
// is unrecoverable, anything else is a generic bad format.
func classifyElementFailure(r *xmlstream.Reader) error {
	if r.CustomError() {
		return ErrFileCriticallyCorrupted
	}
	return ErrFileBadFormat
}
