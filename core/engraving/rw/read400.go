package rw

// Current-generation element reading. The format's complete structure
// lives here: parts with linked staves, the measure timeline, the
// excerpt track list, and the audio declaration.

import (
	"fmt"

	"github.com/cantusworks/cantus/core/engraving"
	"github.com/cantusworks/cantus/core/xmlstream"
)

// readScoreElement400 parses a <Score> element into score. It reports
// false on failure; the caller distinguishes critical corruption (the
// reader's custom-error state) from a generic bad format.
func readScoreElement400(score *engraving.Score, r *xmlstream.Reader, ctx *ReadContext) bool {
	for r.ReadNextStartElement() {
		switch r.Name() {
		case "name":
			score.SetName(r.ReadText())
		case "Division":
			// Fixed at 480 since the current generation; the value is
			// informational.
			r.ReadText()
		case "Part":
			if !readPart(score, r, ctx, "trackName") {
				return false
			}
		case "Staff":
			if !readStaffMeasures(score, r, ctx, "ticks", 480) {
				return false
			}
		case "Tracklist":
			readTracklist(r, ctx)
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

// readPart parses a <Part> and its staves. nameTag is the element
// holding the part's name; it changed across generations. Staves
// carrying a link attribute join the shared link group under that id,
// whichever document registered it first.
func readPart(score *engraving.Score, r *xmlstream.Reader, ctx *ReadContext, nameTag string) bool {
	part := &engraving.Part{ID: r.IntAttribute("id", 0)}
	for r.ReadNextStartElement() {
		switch r.Name() {
		case nameTag:
			part.Name = r.ReadText()
		case "Staff":
			staff := &engraving.Staff{ID: r.IntAttribute("id", 0)}
			if r.HasAttribute("link") {
				g := ctx.Links().Group(r.IntAttribute("link", 0))
				staff.LinkTo(g, staff)
			}
			part.AddStaff(staff)
			r.SkipCurrentElement()
		default:
			r.Unknown()
		}
	}
	if len(part.Staves) == 0 {
		r.SetCustomError(fmt.Sprintf("part %d has no staves", part.ID))
		return false
	}
	score.AddPart(part)
	return true
}

// readStaffMeasures parses a measure container. lenAttr names the
// attribute carrying the measure length; legacy generations wrote "len"
// in division-relative units, converted to ticks via division.
func readStaffMeasures(score *engraving.Score, r *xmlstream.Reader, ctx *ReadContext, lenAttr string, division int) bool {
	for r.ReadNextStartElement() {
		switch r.Name() {
		case "Measure":
			ticks := r.IntAttribute(lenAttr, 480)
			if ticks <= 0 {
				r.SetCustomError(fmt.Sprintf("measure with non-positive length %d", ticks))
				return false
			}
			if division != 480 {
				ticks = ticks * 480 / division
			}
			m := &engraving.Measure{
				Tick:  r.IntAttribute("tick", 0),
				Ticks: ticks,
			}
			if r.HasAttribute("link") {
				g := ctx.Links().Group(r.IntAttribute("link", 0))
				m.LinkTo(g, m)
			}
			score.AddMeasure(m)
			r.SkipCurrentElement()
		default:
			r.Unknown()
		}
	}
	return !r.CustomError()
}

// readTracklist records the part-to-master track correspondences stored
// in an excerpt document.
func readTracklist(r *xmlstream.Reader, ctx *ReadContext) {
	for r.ReadNextStartElement() {
		if r.Name() != "track" {
			r.Unknown()
			continue
		}
		src := r.IntAttribute("src", -1)
		dst := r.IntAttribute("dst", -1)
		if src >= 0 && dst >= 0 {
			ctx.MapTrack(src, dst)
		}
		r.SkipCurrentElement()
	}
}
