package rw

// Third-generation reading (versions 208..399, and every generation in
// test mode). Close to the current format, but the file stores only
// style deltas and knows no track list.

import (
	"github.com/cantusworks/cantus/core/engraving"
	"github.com/cantusworks/cantus/core/xmlstream"
)

func read302(master *engraving.MasterScore, r *xmlstream.Reader, ctx *ReadContext) error {
	ctx.AddDiagnostic("file written by a generation 3.x application")

	for r.ReadNextStartElement() {
		switch r.Name() {
		case "programVersion":
			master.SetAppVersion(r.ReadText())
		case "programRevision":
			master.SetAppRevision(r.ReadInt(16))
		case "Score":
			if !readScoreElement302(&master.Score, r, ctx) {
				return classifyElementFailure(r)
			}
		case "Revision":
			r.SkipCurrentElement()
		default:
			r.Unknown()
		}
	}
	if r.Err() != nil {
		return ErrFileBadFormat
	}
	return nil
}

func readScoreElement302(score *engraving.Score, r *xmlstream.Reader, ctx *ReadContext) bool {
	for r.ReadNextStartElement() {
		switch r.Name() {
		case "name":
			score.SetName(r.ReadText())
		case "Style":
			// The user's deltas, replayed over the staged baseline.
			readStyleDeltas(score, r)
		case "Division":
			r.ReadText()
		case "Part":
			if !readPart(score, r, ctx, "trackName") {
				return false
			}
		case "Staff":
			if !readStaffMeasures(score, r, ctx, "ticks", 480) {
				return false
			}
		case "Audio":
			score.SetAudio(engraving.NewAudio())
			r.SkipCurrentElement()
		default:
			r.Unknown()
		}
		if r.CustomError() {
			return false
		}
	}
	return r.Err() == nil && !r.CustomError()
}
