package style

// Baseline presets per format generation. Legacy files store only the
// user's deltas, so rendering a legacy file faithfully requires first
// installing the defaults that shipped with the generation it was saved
// by. Values here are the shipped defaults of each generation and must
// not be edited retroactively.

const (
	gen1Threshold = 115 // versions <= 114
	gen2Threshold = 208 // versions <= 207
	gen4Threshold = 400 // current generation
)

var defaults114 = map[string]string{
	"spatium":         "1.76",
	"pageWidth":       "210",
	"pageHeight":      "297",
	"staffDistance":   "6.5",
	"systemDistance":  "9.25",
	"measureSpacing":  "1.2",
	"beamWidth":       "0.48",
	"lyricsFontSize":  "11",
	"chordSymbolFont": "Times",
	"showFooter":      "0",
}

var defaults206 = map[string]string{
	"spatium":         "1.76",
	"pageWidth":       "210",
	"pageHeight":      "297",
	"staffDistance":   "6.5",
	"systemDistance":  "9.25",
	"measureSpacing":  "1.2",
	"beamWidth":       "0.5",
	"lyricsFontSize":  "11",
	"chordSymbolFont": "FreeSerif",
	"showFooter":      "1",
}

var defaults302 = map[string]string{
	"spatium":         "1.75",
	"pageWidth":       "210",
	"pageHeight":      "297",
	"staffDistance":   "6.5",
	"systemDistance":  "9.25",
	"measureSpacing":  "1.2",
	"beamWidth":       "0.5",
	"lyricsFontSize":  "10",
	"chordSymbolFont": "Edwin",
	"showFooter":      "1",
}

var defaults400 = map[string]string{
	"spatium":         "1.75",
	"pageWidth":       "210",
	"pageHeight":      "297",
	"staffDistance":   "7.0",
	"systemDistance":  "9.5",
	"measureSpacing":  "1.3",
	"beamWidth":       "0.5",
	"lyricsFontSize":  "10",
	"chordSymbolFont": "Edwin",
	"showFooter":      "1",
}

// DefaultsForVersion returns the baseline preset for the generation that
// produced the given format version (major*100+minor).
func DefaultsForVersion(version int) map[string]string {
	switch {
	case version < gen1Threshold:
		return defaults114
	case version < gen2Threshold:
		return defaults206
	case version < gen4Threshold:
		return defaults302
	default:
		return defaults400
	}
}

// ApplyDefaults installs the baseline preset for version onto s. Preset
// keys overwrite existing values; the document's own deltas are replayed
// afterwards by Read.
func (s *Style) ApplyDefaults(version int) {
	for k, v := range DefaultsForVersion(version) {
		s.Set(k, v)
	}
}
