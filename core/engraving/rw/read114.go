package rw

// First-generation reading (versions <= 114). The oldest supported
// format: no <Score> wrapper, score content sits directly under the
// root, and measure lengths are division-relative.

import (
	"fmt"

	"github.com/cantusworks/cantus/core/engraving"
	"github.com/cantusworks/cantus/core/xmlstream"
)

func read114(master *engraving.MasterScore, r *xmlstream.Reader, ctx *ReadContext) error {
	ctx.AddDiagnostic("file written by a generation 1.x application")

	division := 480
	for r.ReadNextStartElement() {
		switch r.Name() {
		case "programVersion":
			master.SetAppVersion(r.ReadText())
		case "division":
			if d := int(r.ReadInt(10)); d > 0 {
				division = d
			}
			if division != 480 {
				ctx.AddDiagnostic(fmt.Sprintf("converted legacy division %d to 480", division))
			}
		case "Style":
			readStyleDeltas(&master.Score, r)
		case "Part":
			if !readPart(&master.Score, r, ctx, "Name") {
				return classifyElementFailure(r)
			}
		case "Staff":
			if !readStaffMeasures(&master.Score, r, ctx, "len", division) {
				return classifyElementFailure(r)
			}
		default:
			r.Unknown()
		}
		if r.CustomError() {
			return classifyElementFailure(r)
		}
	}
	if r.Err() != nil {
		return ErrFileBadFormat
	}
	return nil
}
