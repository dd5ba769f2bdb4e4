package rw

// Second-generation reading (versions 115..207). Parts are named by a
// <name> child, and measure lengths are stored relative to a declared
// division instead of raw ticks.

import (
	"fmt"

	"github.com/cantusworks/cantus/core/engraving"
	"github.com/cantusworks/cantus/core/xmlstream"
)

func read206(master *engraving.MasterScore, r *xmlstream.Reader, ctx *ReadContext) error {
	ctx.AddDiagnostic("file written by a generation 2.x application")

	for r.ReadNextStartElement() {
		switch r.Name() {
		case "programVersion":
			master.SetAppVersion(r.ReadText())
		case "programRevision":
			master.SetAppRevision(r.ReadInt(16))
		case "Score":
			if !readScoreElement206(&master.Score, r, ctx) {
				return classifyElementFailure(r)
			}
		default:
			r.Unknown()
		}
	}
	if r.Err() != nil {
		return ErrFileBadFormat
	}
	return nil
}

func readScoreElement206(score *engraving.Score, r *xmlstream.Reader, ctx *ReadContext) bool {
	division := 480
	for r.ReadNextStartElement() {
		switch r.Name() {
		case "name":
			score.SetName(r.ReadText())
		case "Style":
			readStyleDeltas(score, r)
		case "Division":
			if d := int(r.ReadInt(10)); d > 0 {
				division = d
			}
			if division != 480 {
				ctx.AddDiagnostic(fmt.Sprintf("converted legacy division %d to 480", division))
			}
		case "Part":
			if !readPart(score, r, ctx, "name") {
				return false
			}
		case "Staff":
			if !readStaffMeasures(score, r, ctx, "len", division) {
				return false
			}
		default:
			r.Unknown()
		}
		if r.CustomError() {
			return false
		}
	}
	return r.Err() == nil && !r.CustomError()
}
